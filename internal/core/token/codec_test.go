package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/schnackhq/forum-api/internal/core/domain"
)

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec("secret")

	signed, err := c.Issue("alice@example.com", "alice", "administrator", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := c.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "alice@example.com" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Username != "alice" {
		t.Fatalf("unexpected username: %s", claims.Username)
	}
	if claims.Role != "administrator" {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		t.Fatalf("expected iat and exp to be set")
	}
}

func TestCodec_Verify_WrongSecret(t *testing.T) {
	signed, err := NewCodec("secret").Issue("alice@example.com", "alice", "user", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewCodec("other").Verify(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCodec_Verify_TamperedSignature(t *testing.T) {
	c := NewCodec("secret")
	signed, err := c.Issue("alice@example.com", "alice", "user", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := c.Verify(tampered); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCodec_Verify_Malformed(t *testing.T) {
	c := NewCodec("secret")
	for _, tok := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		if _, err := c.Verify(tok); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", tok, err)
		}
	}
}

func TestCodec_Expiry(t *testing.T) {
	c := NewCodec("secret")
	issuedAt := time.Now().UTC()
	c.now = func() time.Time { return issuedAt }

	zeroTTL, err := c.Issue("alice@example.com", "alice", "user", 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	hourTTL, err := c.Issue("alice@example.com", "alice", "user", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Expiry is not part of Verify; both tokens must still verify.
	zeroClaims, err := c.Verify(zeroTTL)
	if err != nil {
		t.Fatalf("verify zero-ttl token: %v", err)
	}
	hourClaims, err := c.Verify(hourTTL)
	if err != nil {
		t.Fatalf("verify one-hour token: %v", err)
	}

	c.now = func() time.Time { return issuedAt.Add(time.Second) }
	if !c.IsExpired(zeroClaims) {
		t.Fatalf("zero-ttl token should be expired immediately")
	}
	if c.IsExpired(hourClaims) {
		t.Fatalf("one-hour token should not be expired yet")
	}

	c.now = func() time.Time { return issuedAt.Add(time.Hour + time.Second) }
	if !c.IsExpired(hourClaims) {
		t.Fatalf("one-hour token should be expired after an hour")
	}
}

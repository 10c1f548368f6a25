package password

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-passw0rd")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret-passw0rd" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !h.Verify("s3cret-passw0rd", hash) {
		t.Fatalf("expected password to verify against its hash")
	}
	if h.Verify("wrong-password", hash) {
		t.Fatalf("wrong password must not verify")
	}
}

func TestBcryptHasher_TooLong(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	if _, err := h.Hash(strings.Repeat("x", 73)); !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
}

func TestNewBcryptHasher_CostClamped(t *testing.T) {
	h := NewBcryptHasher(99)

	hash, err := h.Hash("password")
	if err != nil {
		t.Fatalf("hash with clamped cost: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("read cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}

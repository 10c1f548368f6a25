package domain

import "errors"

var (
	// ErrInvalidCredentials means the password did not match the stored hash,
	// or a register/login payload was structurally unusable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound means no account exists for the given email.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailExists means registration hit the unique email constraint.
	ErrEmailExists = errors.New("email already registered")

	// ErrInvalidToken means a bearer token was malformed or its signature
	// did not verify against the server secret.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired means the token verified but its expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrSubjectMismatch means the token's embedded username no longer
	// matches the account loaded for its subject.
	ErrSubjectMismatch = errors.New("token subject mismatch")

	// ErrTooManyAttempts means login for this email is temporarily locked out.
	ErrTooManyAttempts = errors.New("too many login attempts")

	ErrForbidden      = errors.New("access forbidden")
	ErrThreadNotFound = errors.New("thread not found")
	ErrPostNotFound   = errors.New("post not found")
)

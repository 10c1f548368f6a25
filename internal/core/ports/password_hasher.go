package ports

// PasswordHasher produces and checks one-way credential digests.
// Verify must be constant-time with respect to the plaintext.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

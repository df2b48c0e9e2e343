package ports

// PasswordHasher produces and verifies salted one-way password digests.
type PasswordHasher interface {
	// Hash returns a randomly salted digest of plaintext. Fails on empty input.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored digest. A malformed
	// digest yields false, never an error.
	Verify(plaintext, hash string) bool
}

package ports

// PasswordHasher derives one-way password hashes for user accounts. The
// produced hash is opaque to the domain; aggregates only store it. There is
// no verification counterpart: no use case checks a password, login happens
// outside this system.
type PasswordHasher interface {
	// Hash derives a one-way hash from a plaintext password.
	Hash(password string) (string, error)
}

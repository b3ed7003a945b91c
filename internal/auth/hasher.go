package auth

// PasswordHasher abstracts the hashing algorithm away from the services.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, encodedHash string) (bool, error)
}

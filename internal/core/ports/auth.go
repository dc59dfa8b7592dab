package ports

// PasswordHasher derives and verifies salted one-way password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches encodedHash. False covers both
	// a wrong password and an unparseable hash.
	Verify(password, encodedHash string) bool
}

// TokenService issues and validates signed bearer tokens.
type TokenService interface {
	Issue(subject string) (string, error)
	// Validate returns the subject vouched for by raw, stripping an optional
	// "Bearer " prefix first.
	Validate(raw string) (string, error)
}

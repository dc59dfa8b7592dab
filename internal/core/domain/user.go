package domain

const (
	RoleStandard = "standard"
	RoleAdmin    = "administrator"
)

// User models an account holder. PasswordHash always carries the encoded
// Argon2id string, never the plaintext; the registration flow performs the
// one and only hashing step before a User reaches the repository.
type User struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstname"`
	LastName     string `json:"lastname"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// UserUpdate carries the fields of a partial account update. Nil fields are
// left untouched in the stored record. The identifier is never part of an
// update.
type UserUpdate struct {
	FirstName    *string
	LastName     *string
	Username     *string
	Email        *string
	PasswordHash *string
	Role         *string
}

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleStandard || role == RoleAdmin
}

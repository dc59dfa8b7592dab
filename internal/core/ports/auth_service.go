package ports

import (
	"context"

	"github.com/docuvault/docstore/internal/core/domain"
)

// RegisterInput is the payload for account creation. Password is the
// plaintext; Register is the only place it gets hashed.
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
	Role      string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login authenticates the credential pair and returns a bearer token plus
	// the sanitized profile. Every failure surfaces as
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

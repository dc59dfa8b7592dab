package ports

import (
	"context"

	"github.com/docuvault/docstore/internal/core/domain"
)

// UserUpdateInput is a partial account update as received from a client.
// Password, when present, is plaintext and is hashed by the service before
// it reaches the repository.
type UserUpdateInput struct {
	FirstName *string
	LastName  *string
	Username  *string
	Email     *string
	Password  *string
	Role      *string
}

type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// Update applies the partial update and returns the post-update record.
	Update(ctx context.Context, id string, input UserUpdateInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

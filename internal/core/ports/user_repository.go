package ports

import (
	"context"

	"github.com/docuvault/docstore/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Implementations own
// the store handle; callers never hash passwords through this interface —
// whatever PasswordHash they pass is persisted as-is.
type UserRepository interface {
	// Create inserts the user and returns the store-generated identifier.
	Create(ctx context.Context, user *domain.User) (string, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update merges the non-nil fields of upd into the stored record and
	// returns how many records matched (0 or 1).
	Update(ctx context.Context, id string, upd domain.UserUpdate) (int64, error)
	// Delete removes the record, returning how many were deleted (0 or 1).
	Delete(ctx context.Context, id string) (int64, error)
	// FindAll returns every user in store-native order.
	FindAll(ctx context.Context) ([]domain.User, error)
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/docuvault/docstore/internal/core/domain"
	"github.com/docuvault/docstore/internal/core/ports"
)

// UserService orchestrates account CRUD on top of the repository.
type UserService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{users: users, hasher: hasher, logger: logger}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

// Update merges the non-nil fields of input into the account and returns the
// post-update record. A plaintext password in the input is hashed here; a
// zero match count maps to not-found.
func (s *UserService) Update(ctx context.Context, id string, input ports.UserUpdateInput) (*domain.User, error) {
	upd := domain.UserUpdate{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Username:  input.Username,
		Email:     input.Email,
	}

	if input.Role != nil {
		if !domain.ValidRole(*input.Role) {
			return nil, domain.ErrInvalidRole
		}
		upd.Role = input.Role
	}

	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		upd.PasswordHash = &hash
	}

	matched, err := s.users.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, domain.ErrUserNotFound
	}

	s.logger.Info().Str("user_id", id).Msg("account updated")
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrUserNotFound
	}

	s.logger.Info().Str("user_id", id).Msg("account deleted")
	return nil
}

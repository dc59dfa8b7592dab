package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/docuvault/docstore/internal/core/domain"
	"github.com/docuvault/docstore/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	logger zerolog.Logger

	// decoyHash is verified against when the username does not exist, so a
	// login miss costs the same as a password mismatch.
	decoyHash string
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	decoy, err := hasher.Hash("docstore-decoy-credential")
	if err != nil {
		// An unusable hasher would fail every registration anyway.
		panic("auth: hasher cannot produce a hash: " + err.Error())
	}
	return &AuthService{users: users, hasher: hasher, tokens: tokens, logger: logger, decoyHash: decoy}
}

// Register creates a new account. This is the single place where a plaintext
// password is turned into a hash; the repository persists whatever it is
// given and never hashes.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Role == "" {
		input.Role = domain.RoleStandard
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
	}

	id, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info().Str("username", user.Username).Str("user_id", id).Msg("account registered")
	return user, nil
}

// Login authenticates the credential pair and issues a bearer token for the
// account's email. Unknown username and wrong password both come back as
// ErrInvalidCredentials, with matching cost on each path.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.hasher.Verify(password, s.decoyHash)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Info().Str("username", username).Msg("login rejected")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", username).Msg("login succeeded")
	return token, user, nil
}

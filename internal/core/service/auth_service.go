package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mitienda/catalog-api/internal/api/metrics"
	"github.com/mitienda/catalog-api/internal/core/domain"
	"github.com/mitienda/catalog-api/internal/core/ports"
)

// AuthService implements registration and login on top of the user
// directory, the credential hasher, and the token issuer.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// Register hashes the password and persists the new user with the default
// role. Only non-sensitive fields come back — never the hash.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.RegisterResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Age:          input.Age,
		Role:         domain.RoleUser,
	})
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.logger.Info().Int64("user_id", created.ID).Str("email", created.Email).Msg("user registered")

	return &ports.RegisterResult{ID: created.ID, Email: created.Email}, nil
}

// Login verifies the credentials and issues an access token. Unknown email
// and wrong password are logged with distinct reasons but both surface as
// ErrInvalidCredentials so the response does not reveal which field failed.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (string, error) {
	if input.Email == "" || input.Password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			s.logger.Debug().Str("email", input.Email).Msg("login rejected: unknown email")
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		s.logger.Debug().Str("email", input.Email).Msg("login rejected: wrong password")
		return "", domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID, user.Name, user.Email, user.Role)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Int64("user_id", user.ID).Msg("login successful")

	return tok, nil
}

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitienda/catalog-api/internal/core/domain"
	"github.com/mitienda/catalog-api/internal/core/ports"
)

// UserService implements CRUD over the user directory. Every mutation is
// recorded on the audit trail.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, audit ports.AuditSink, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, audit: audit, logger: logger}
}

func (s *UserService) FindAll(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Create persists a new user. Role defaults to domain.RoleUser when empty;
// the plaintext password is hashed before it ever reaches the repository.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Age:          input.Age,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("role", created.Role).Msg("user created")
	s.recordAudit(ctx, "user.create", created.ID)

	return created, nil
}

// Update applies a partial overwrite: nil input fields keep their prior
// values. A provided password is re-hashed before persisting.
func (s *UserService) Update(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Age != nil {
		user.Age = input.Age
	}
	if input.Role != nil {
		if !domain.ValidRole(*input.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *input.Role
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", id).Msg("user updated")
	s.recordAudit(ctx, "user.update", id)

	return user, nil
}

// Remove hard-deletes the user.
func (s *UserService) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", id).Msg("user removed")
	s.recordAudit(ctx, "user.remove", id)

	return nil
}

func (s *UserService) recordAudit(ctx context.Context, action string, id int64) {
	s.audit.Enqueue(ports.AuditEntryInput{
		Actor:     actorFrom(ctx),
		Action:    action,
		Entity:    "user",
		EntityID:  id,
		Timestamp: time.Now().UTC(),
	})
}

// actorFrom names the caller for audit purposes; unauthenticated callers
// (self-service registration) record as "anonymous".
func actorFrom(ctx context.Context) string {
	if id, ok := domain.IdentityFrom(ctx); ok {
		return id.Email
	}
	return "anonymous"
}

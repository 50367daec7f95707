package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/teampulse/admin-console/internal/api/metrics"
	"github.com/teampulse/admin-console/internal/core/domain"
	"github.com/teampulse/admin-console/internal/core/ports"
)

// IdempotencyStore abstracts the retry-safety store (Redis). A create
// carrying an already seen key returns the entity created the first time.
type IdempotencyStore interface {
	// Lookup returns the entity id remembered for key, or "" when unseen.
	Lookup(ctx context.Context, key string) (string, error)
	Remember(ctx context.Context, key, entityID string) error
}

// UserService implements user management use cases.
type UserService struct {
	repo   ports.UserRepository
	idem   IdempotencyStore
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, idem IdempotencyStore, audit ports.AuditSink, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, idem: idem, audit: audit, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrUserNotFound
	}
	return s.repo.FindByID(ctx, id)
}

// Create inserts a new managed user. If an idempotency key is provided and
// already seen, the previously created user is returned without side effects.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || !input.Role.Valid() {
		return nil, domain.ErrInvalidInput
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		id, err := s.idem.Lookup(ctx, input.IdempotencyKey)
		if err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("idempotency lookup failed, creating anyway")
		} else if id != "" {
			existing, err := s.repo.FindByID(ctx, id)
			if err == nil {
				metrics.IdempotentReplaysTotal.WithLabelValues("user").Inc()
				s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Str("user_id", id).Msg("idempotent replay")
				return existing, nil
			}
		}
	}

	if existing, err := s.repo.FindByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:         uuid.NewString(),
		Name:       input.Name,
		Email:      input.Email,
		Role:       input.Role,
		Phone:      input.Phone,
		Department: input.Department,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, fmt.Errorf("create user: %w", err)
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Remember(ctx, input.IdempotencyKey, user.ID); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("failed to remember idempotency key")
		}
	}

	metrics.MutationsTotal.WithLabelValues("user", string(domain.AuditCreated)).Inc()
	s.record(domain.AuditEvent{EntityKind: "user", EntityID: user.ID, Action: domain.AuditCreated, PrincipalID: input.PrincipalID, Timestamp: now})
	s.logger.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("user created")
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || !input.Role.Valid() {
		return nil, domain.ErrInvalidInput
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != user.Email {
		if existing, err := s.repo.FindByEmail(ctx, input.Email); err == nil && existing != nil && existing.ID != id {
			return nil, domain.ErrEmailTaken
		}
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Role = input.Role
	user.Phone = input.Phone
	user.Department = input.Department
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to update user")
		return nil, fmt.Errorf("update user: %w", err)
	}

	metrics.MutationsTotal.WithLabelValues("user", string(domain.AuditUpdated)).Inc()
	s.record(domain.AuditEvent{EntityKind: "user", EntityID: id, Action: domain.AuditUpdated, PrincipalID: input.PrincipalID, Timestamp: user.UpdatedAt})
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id, principalID string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to delete user")
		return fmt.Errorf("delete user: %w", err)
	}
	metrics.MutationsTotal.WithLabelValues("user", string(domain.AuditDeleted)).Inc()
	s.record(domain.AuditEvent{EntityKind: "user", EntityID: id, Action: domain.AuditDeleted, PrincipalID: principalID, Timestamp: time.Now().UTC()})
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) record(e domain.AuditEvent) {
	if s.audit != nil {
		s.audit.Enqueue(e)
	}
}

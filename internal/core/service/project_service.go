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

// ProjectService implements project management use cases.
type ProjectService struct {
	repo   ports.ProjectRepository
	idem   IdempotencyStore
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, idem IdempotencyStore, audit ports.AuditSink, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, idem: idem, audit: audit, logger: logger}
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	if id == "" {
		return nil, domain.ErrProjectNotFound
	}
	return s.repo.FindByID(ctx, id)
}

// Create inserts a new project, honouring the idempotency key when present.
func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	if input.Title == "" || input.Manager == "" || !input.Status.Valid() {
		return nil, domain.ErrInvalidInput
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		id, err := s.idem.Lookup(ctx, input.IdempotencyKey)
		if err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("idempotency lookup failed, creating anyway")
		} else if id != "" {
			existing, err := s.repo.FindByID(ctx, id)
			if err == nil {
				metrics.IdempotentReplaysTotal.WithLabelValues("project").Inc()
				s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Str("project_id", id).Msg("idempotent replay")
				return existing, nil
			}
		}
	}

	now := time.Now().UTC()
	project := &domain.Project{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Manager:     input.Manager,
		Budget:      input.Budget,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Team:        input.Team,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, project); err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, fmt.Errorf("create project: %w", err)
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Remember(ctx, input.IdempotencyKey, project.ID); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("failed to remember idempotency key")
		}
	}

	metrics.MutationsTotal.WithLabelValues("project", string(domain.AuditCreated)).Inc()
	s.record(domain.AuditEvent{EntityKind: "project", EntityID: project.ID, Action: domain.AuditCreated, PrincipalID: input.PrincipalID, Timestamp: now})
	s.logger.Info().Str("project_id", project.ID).Str("title", project.Title).Msg("project created")
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	if input.Title == "" || input.Manager == "" || !input.Status.Valid() {
		return nil, domain.ErrInvalidInput
	}

	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.Title = input.Title
	project.Description = input.Description
	project.Status = input.Status
	project.Manager = input.Manager
	project.Budget = input.Budget
	project.StartDate = input.StartDate
	project.EndDate = input.EndDate
	project.Team = input.Team
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		s.logger.Error().Err(err).Str("project_id", id).Msg("failed to update project")
		return nil, fmt.Errorf("update project: %w", err)
	}

	metrics.MutationsTotal.WithLabelValues("project", string(domain.AuditUpdated)).Inc()
	s.record(domain.AuditEvent{EntityKind: "project", EntityID: id, Action: domain.AuditUpdated, PrincipalID: input.PrincipalID, Timestamp: project.UpdatedAt})
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id, principalID string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("project_id", id).Msg("failed to delete project")
		return fmt.Errorf("delete project: %w", err)
	}
	metrics.MutationsTotal.WithLabelValues("project", string(domain.AuditDeleted)).Inc()
	s.record(domain.AuditEvent{EntityKind: "project", EntityID: id, Action: domain.AuditDeleted, PrincipalID: principalID, Timestamp: time.Now().UTC()})
	s.logger.Info().Str("project_id", id).Msg("project deleted")
	return nil
}

func (s *ProjectService) record(e domain.AuditEvent) {
	if s.audit != nil {
		s.audit.Enqueue(e)
	}
}

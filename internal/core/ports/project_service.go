package ports

import (
	"context"

	"github.com/teampulse/admin-console/internal/core/domain"
)

// CreateProjectInput carries all data needed to create a project.
type CreateProjectInput struct {
	Title          string
	Description    string
	Status         domain.ProjectStatus
	Manager        string
	Budget         float64
	StartDate      string
	EndDate        string
	Team           []string
	PrincipalID    string
	IdempotencyKey string
}

// UpdateProjectInput carries the mutable fields of a project.
type UpdateProjectInput struct {
	Title       string
	Description string
	Status      domain.ProjectStatus
	Manager     string
	Budget      float64
	StartDate   string
	EndDate     string
	Team        []string
	PrincipalID string
}

// ProjectService defines use-case operations for project management.
type ProjectService interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id string, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id, principalID string) error
}

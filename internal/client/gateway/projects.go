package gateway

import (
	"context"
	"net/http"

	"github.com/teampulse/admin-console/internal/client/apiclient"
	"github.com/teampulse/admin-console/internal/client/notify"
	"github.com/teampulse/admin-console/internal/core/domain"
)

// ProjectInput carries the fields of a project create/update form.
type ProjectInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Manager     string   `json:"manager"`
	Budget      float64  `json:"budget,omitempty"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate,omitempty"`
	Team        []string `json:"team,omitempty"`
}

// Projects is the resource gateway for the /projects endpoints.
type Projects struct {
	api    *apiclient.Client
	notify notify.Sink
}

func NewProjects(api *apiclient.Client, sink notify.Sink) *Projects {
	return &Projects{api: api, notify: sink}
}

func (g *Projects) List(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	if err := g.api.Do(ctx, http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, wrap(err, "Failed to fetch projects. Please try again.", g.notify)
	}
	return projects, nil
}

func (g *Projects) Get(ctx context.Context, id string) (*domain.Project, error) {
	var project domain.Project
	if err := g.api.Do(ctx, http.MethodGet, "/projects/"+id, nil, &project); err != nil {
		return nil, wrap(err, "Failed to fetch project details.", g.notify)
	}
	return &project, nil
}

func (g *Projects) Create(ctx context.Context, input ProjectInput) (*domain.Project, error) {
	var project domain.Project
	if err := g.api.Do(ctx, http.MethodPost, "/projects", input, &project); err != nil {
		return nil, wrap(err, "Failed to create project. Please try again.", g.notify)
	}
	return &project, nil
}

func (g *Projects) Update(ctx context.Context, id string, input ProjectInput) (*domain.Project, error) {
	var project domain.Project
	if err := g.api.Do(ctx, http.MethodPut, "/projects/"+id, input, &project); err != nil {
		return nil, wrap(err, "Failed to update project. Please try again.", g.notify)
	}
	return &project, nil
}

// Delete returns no body on the happy path.
func (g *Projects) Delete(ctx context.Context, id string) error {
	if err := g.api.Do(ctx, http.MethodDelete, "/projects/"+id, nil, nil); err != nil {
		return wrap(err, "Failed to delete project. Please try again.", g.notify)
	}
	return nil
}

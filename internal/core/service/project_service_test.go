package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/teampulse/admin-console/internal/core/domain"
	"github.com/teampulse/admin-console/internal/core/ports"
)

type stubProjectRepo struct {
	projects map[string]*domain.Project
	inserted []*domain.Project
	deleted  []string
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: map[string]*domain.Project{}}
}

func (r *stubProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProjectRepo) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return p, nil
}

func (r *stubProjectRepo) Insert(ctx context.Context, p *domain.Project) error {
	r.inserted = append(r.inserted, p)
	r.projects[p.ID] = p
	return nil
}

func (r *stubProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	r.projects[p.ID] = p
	return nil
}

func (r *stubProjectRepo) Delete(ctx context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	delete(r.projects, id)
	return nil
}

func TestProjectService_Create(t *testing.T) {
	repo := newStubProjectRepo()
	audit := &stubAuditSink{}
	svc := NewProjectService(repo, newStubIdemStore(), audit, zerolog.Nop())

	project, err := svc.Create(context.Background(), ports.CreateProjectInput{
		Title: "Replatform", Status: domain.StatusActive, Manager: "Alice",
		StartDate: "2026-01-01", PrincipalID: "op-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if project.ID == "" {
		t.Fatalf("expected generated id")
	}
	if len(audit.events) != 1 || audit.events[0].EntityKind != "project" || audit.events[0].Action != domain.AuditCreated {
		t.Fatalf("unexpected audit events: %+v", audit.events)
	}
}

func TestProjectService_Create_InvalidInput(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), nil, nil, zerolog.Nop())

	tests := []ports.CreateProjectInput{
		{Status: domain.StatusActive, Manager: "Alice"},
		{Title: "Replatform", Status: domain.StatusActive},
		{Title: "Replatform", Status: domain.ProjectStatus("cancelled"), Manager: "Alice"},
	}
	for _, input := range tests {
		if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}
}

func TestProjectService_Create_IdempotentReplay(t *testing.T) {
	repo := newStubProjectRepo()
	repo.projects["pr1"] = &domain.Project{ID: "pr1", Title: "Replatform", Status: domain.StatusActive, Manager: "Alice"}
	idem := newStubIdemStore()
	idem.seen["key-1"] = "pr1"
	svc := NewProjectService(repo, idem, nil, zerolog.Nop())

	project, err := svc.Create(context.Background(), ports.CreateProjectInput{
		Title: "Replatform", Status: domain.StatusActive, Manager: "Alice",
		StartDate: "2026-01-01", IdempotencyKey: "key-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if project.ID != "pr1" {
		t.Fatalf("expected replayed project pr1, got %s", project.ID)
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("replay must not insert")
	}
}

func TestProjectService_Update(t *testing.T) {
	repo := newStubProjectRepo()
	repo.projects["pr1"] = &domain.Project{ID: "pr1", Title: "Replatform", Status: domain.StatusActive, Manager: "Alice"}
	audit := &stubAuditSink{}
	svc := NewProjectService(repo, nil, audit, zerolog.Nop())

	project, err := svc.Update(context.Background(), "pr1", ports.UpdateProjectInput{
		Title: "Replatform v2", Status: domain.StatusCompleted, Manager: "Bob",
		StartDate: "2026-01-01", EndDate: "2026-06-30", PrincipalID: "op-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if project.Title != "Replatform v2" || project.Status != domain.StatusCompleted {
		t.Fatalf("unexpected project after update: %+v", project)
	}
	if len(audit.events) != 1 || audit.events[0].Action != domain.AuditUpdated {
		t.Fatalf("expected one updated audit event, got %+v", audit.events)
	}
}

func TestProjectService_Update_NotFound(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), nil, nil, zerolog.Nop())

	_, err := svc.Update(context.Background(), "missing", ports.UpdateProjectInput{
		Title: "Replatform", Status: domain.StatusActive, Manager: "Alice",
	})
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectService_Delete(t *testing.T) {
	repo := newStubProjectRepo()
	repo.projects["pr1"] = &domain.Project{ID: "pr1", Title: "Replatform", Status: domain.StatusActive, Manager: "Alice"}
	audit := &stubAuditSink{}
	svc := NewProjectService(repo, nil, audit, zerolog.Nop())

	if err := svc.Delete(context.Background(), "pr1", "op-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "pr1" {
		t.Fatalf("unexpected deletes: %v", repo.deleted)
	}
	if len(audit.events) != 1 || audit.events[0].Action != domain.AuditDeleted {
		t.Fatalf("expected one deleted audit event, got %+v", audit.events)
	}
}

package gateway

import (
	"context"
	"net/http"

	"github.com/teampulse/admin-console/internal/client/apiclient"
	"github.com/teampulse/admin-console/internal/client/notify"
	"github.com/teampulse/admin-console/internal/core/domain"
)

// UserInput carries the fields of a user create/update form.
type UserInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department,omitempty"`
}

// Users is the resource gateway for the /users endpoints.
type Users struct {
	api    *apiclient.Client
	notify notify.Sink
}

func NewUsers(api *apiclient.Client, sink notify.Sink) *Users {
	return &Users{api: api, notify: sink}
}

func (g *Users) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := g.api.Do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, wrap(err, "Failed to fetch users. Please try again.", g.notify)
	}
	return users, nil
}

func (g *Users) Get(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := g.api.Do(ctx, http.MethodGet, "/users/"+id, nil, &user); err != nil {
		return nil, wrap(err, "Failed to fetch user details.", g.notify)
	}
	return &user, nil
}

func (g *Users) Create(ctx context.Context, input UserInput) (*domain.User, error) {
	var user domain.User
	if err := g.api.Do(ctx, http.MethodPost, "/users", input, &user); err != nil {
		return nil, wrap(err, "Failed to create user. Please try again.", g.notify)
	}
	return &user, nil
}

func (g *Users) Update(ctx context.Context, id string, input UserInput) (*domain.User, error) {
	var user domain.User
	if err := g.api.Do(ctx, http.MethodPut, "/users/"+id, input, &user); err != nil {
		return nil, wrap(err, "Failed to update user. Please try again.", g.notify)
	}
	return &user, nil
}

// Delete returns no body on the happy path.
func (g *Users) Delete(ctx context.Context, id string) error {
	if err := g.api.Do(ctx, http.MethodDelete, "/users/"+id, nil, nil); err != nil {
		return wrap(err, "Failed to delete user. Please try again.", g.notify)
	}
	return nil
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teampulse/admin-console/internal/api/middleware"
	"github.com/teampulse/admin-console/internal/core/domain"
	"github.com/teampulse/admin-console/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project management.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type projectRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=100"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Status      string   `json:"status" validate:"required,oneof=active completed on-hold"`
	Manager     string   `json:"manager" validate:"required,min=2,max=50"`
	Budget      float64  `json:"budget" validate:"omitempty,gte=0"`
	StartDate   string   `json:"startDate" validate:"required"`
	EndDate     string   `json:"endDate"`
	Team        []string `json:"team"`
}

func (r projectRequest) createInput(c echo.Context) ports.CreateProjectInput {
	return ports.CreateProjectInput{
		Title:          r.Title,
		Description:    r.Description,
		Status:         domain.ProjectStatus(r.Status),
		Manager:        r.Manager,
		Budget:         r.Budget,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Team:           r.Team,
		PrincipalID:    middleware.PrincipalID(c),
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	}
}

func (r projectRequest) updateInput(c echo.Context) ports.UpdateProjectInput {
	return ports.UpdateProjectInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      domain.ProjectStatus(r.Status),
		Manager:     r.Manager,
		Budget:      r.Budget,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Team:        r.Team,
		PrincipalID: middleware.PrincipalID(c),
	}
}

// List handles GET /projects.
//
// @Summary      List all projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Project
// @Failure      401  {object}  map[string]string
// @Router       /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Get handles GET /projects/:id.
//
// @Summary      Get a project by id
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Create handles POST /projects.
//
// @Summary      Create a new project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string          false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      projectRequest  true   "Project details"
// @Success      201              {object}  domain.Project
// @Failure      400              {object}  map[string]string
// @Router       /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.Create(c.Request().Context(), req.createInput(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, project)
}

// Update handles PUT /projects/:id.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Project id"
// @Param        body  body      projectRequest  true  "Project details"
// @Success      200   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.Update(c.Request().Context(), c.Param("id"), req.updateInput(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /projects/:id. Success carries no body.
//
// @Summary      Delete a project
// @Tags         projects
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      204  "No Content"
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), middleware.PrincipalID(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/obrasys/backoffice/internal/core/ports"
)

// ProjectHandler serves the project CRUD routes. Creation and mutation are
// admin-only (enforced by route middleware); reads apply the owner-or-admin
// rule inside the service.
type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type createProjectRequest struct {
	ClientID    string `json:"client_id"   validate:"required"`
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
	StartsAt    string `json:"starts_at,omitempty"`
	EndsAt      string `json:"ends_at,omitempty"`
}

type updateProjectRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
	Status      string `json:"status"      validate:"required,oneof=PLANNING IN_PROGRESS PAUSED DONE"`
	Progress    int    `json:"progress"    validate:"gte=0,lte=100"`
}

// Create handles POST /v1/projects (admin only).
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projectService.Create(c.Request().Context(), ports.CreateProjectInput{
		ClientID:    req.ClientID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

// Get handles GET /v1/projects/:id.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	project, err := h.projectService.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// List handles GET /v1/projects. Clients always see their own projects;
// admins see everything, or one client's via ?client_id=.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     string  false  "Filter by owning client (admin only)"
// @Success      200        {array}   domain.Project
// @Router       /v1/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	projects, err := h.projectService.List(c.Request().Context(), actor, c.QueryParam("client_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Update handles PUT /v1/projects/:id (admin only).
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      updateProjectRequest  true  "New project state"
// @Success      200   {object}  domain.Project
// @Failure      404   {object}  map[string]string
// @Router       /v1/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projectService.Update(c.Request().Context(), c.Param("id"), ports.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Status:      req.Status,
		Progress:    req.Progress,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /v1/projects/:id (admin only).
//
// @Summary      Delete a project
// @Tags         projects
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.projectService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

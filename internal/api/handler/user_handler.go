package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/obrasys/backoffice/internal/core/ports"
)

// UserHandler serves /v1/me plus the admin-only account management routes.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=ADMIN CLIENT"`
	Document string `json:"document,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Me returns the authenticated user's own profile.
//
// @Summary      Current user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Router       /v1/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// List returns all accounts; ?pending=true narrows to clients awaiting
// approval.
//
// @Summary      List user accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        pending  query     bool  false  "Only clients awaiting approval"
// @Success      200      {array}   domain.User
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	pendingOnly := c.QueryParam("pending") == "true"
	users, err := h.userService.List(c.Request().Context(), pendingOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create provisions an account directly; it is active immediately.
//
// @Summary      Create a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  domain.User
// @Failure      409   {object}  map[string]string
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Create(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Document: req.Document,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Get returns one account by id.
//
// @Summary      Get a user account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Approve activates a pending client account and notifies the client.
//
// @Summary      Approve a pending account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /v1/users/{id}/approve [patch]
func (h *UserHandler) Approve(c echo.Context) error {
	user, err := h.userService.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Promote grants a user the administrator role.
//
// @Summary      Promote a user to admin
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /v1/users/{id}/promote [patch]
func (h *UserHandler) Promote(c echo.Context) error {
	user, err := h.userService.Promote(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Deactivate disables an account. The guard rejects its tokens on the next
// resolution, once the cache entry is invalidated.
//
// @Summary      Deactivate a user account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /v1/users/{id}/deactivate [patch]
func (h *UserHandler) Deactivate(c echo.Context) error {
	user, err := h.userService.Deactivate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

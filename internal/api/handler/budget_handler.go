package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/obrasys/backoffice/internal/core/domain"
	"github.com/obrasys/backoffice/internal/core/ports"
)

// BudgetHandler serves budget requests and reviews. Clients open requests
// for themselves; only admins change the status.
type BudgetHandler struct {
	budgetService ports.BudgetService
}

func NewBudgetHandler(budgetService ports.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

type createBudgetRequest struct {
	ClientID  string  `json:"client_id,omitempty"` // admins may request on behalf of a client
	ProjectID string  `json:"project_id,omitempty"`
	Title     string  `json:"title"  validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Notes     string  `json:"notes,omitempty"`
}

type reviewBudgetRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	Notes  string `json:"notes,omitempty"`
}

// Request handles POST /v1/budgets.
//
// @Summary      Request a budget
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBudgetRequest  true  "Budget request"
// @Success      201   {object}  domain.Budget
// @Router       /v1/budgets [post]
func (h *BudgetHandler) Request(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createBudgetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	budget, err := h.budgetService.Request(c.Request().Context(), actor, ports.CreateBudgetInput{
		ClientID:  req.ClientID,
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Amount:    req.Amount,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, budget)
}

// Get handles GET /v1/budgets/:id.
//
// @Summary      Get a budget
// @Tags         budgets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Budget id"
// @Success      200  {object}  domain.Budget
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/budgets/{id} [get]
func (h *BudgetHandler) Get(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	budget, err := h.budgetService.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, budget)
}

// List handles GET /v1/budgets.
//
// @Summary      List budgets
// @Tags         budgets
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     string  false  "Filter by owning client (admin only)"
// @Success      200        {array}   domain.Budget
// @Router       /v1/budgets [get]
func (h *BudgetHandler) List(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	budgets, err := h.budgetService.List(c.Request().Context(), actor, c.QueryParam("client_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, budgets)
}

// Review handles POST /v1/budgets/:id/review (admin only). The owning
// client is notified of the decision.
//
// @Summary      Approve or reject a budget
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Budget id"
// @Param        body  body      reviewBudgetRequest  true  "Review decision"
// @Success      200   {object}  domain.Budget
// @Failure      404   {object}  map[string]string
// @Router       /v1/budgets/{id}/review [post]
func (h *BudgetHandler) Review(c echo.Context) error {
	var req reviewBudgetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	budget, err := h.budgetService.SetStatus(c.Request().Context(), c.Param("id"), domain.BudgetStatus(req.Status), req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, budget)
}

// Delete handles DELETE /v1/budgets/:id (admin only).
//
// @Summary      Delete a budget
// @Tags         budgets
// @Security     BearerAuth
// @Param        id  path  string  true  "Budget id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/budgets/{id} [delete]
func (h *BudgetHandler) Delete(c echo.Context) error {
	if err := h.budgetService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

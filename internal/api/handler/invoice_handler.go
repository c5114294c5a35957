package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/obrasys/backoffice/internal/core/ports"
)

// InvoiceHandler serves invoice routes. All writes are admin-only; clients
// read their own invoices.
type InvoiceHandler struct {
	invoiceService ports.InvoiceService
}

func NewInvoiceHandler(invoiceService ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

type createInvoiceRequest struct {
	ClientID  string  `json:"client_id"  validate:"required"`
	ProjectID string  `json:"project_id,omitempty"`
	Number    string  `json:"number"     validate:"required"`
	Amount    float64 `json:"amount"     validate:"required,gt=0"`
	DueAt     string  `json:"due_at"     validate:"required"` // RFC 3339
}

// Create handles POST /v1/invoices (admin only). The client is notified.
//
// @Summary      Issue an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInvoiceRequest  true  "Invoice details"
// @Success      201   {object}  domain.Invoice
// @Router       /v1/invoices [post]
func (h *InvoiceHandler) Create(c echo.Context) error {
	var req createInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dueAt, err := time.Parse(time.RFC3339, req.DueAt)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "due_at must be an RFC 3339 timestamp")
	}

	invoice, err := h.invoiceService.Create(c.Request().Context(), ports.CreateInvoiceInput{
		ClientID:  req.ClientID,
		ProjectID: req.ProjectID,
		Number:    req.Number,
		Amount:    req.Amount,
		DueAt:     dueAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, invoice)
}

// Get handles GET /v1/invoices/:id.
//
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {object}  domain.Invoice
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/invoices/{id} [get]
func (h *InvoiceHandler) Get(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	invoice, err := h.invoiceService.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoice)
}

// List handles GET /v1/invoices.
//
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     string  false  "Filter by owning client (admin only)"
// @Success      200        {array}   domain.Invoice
// @Router       /v1/invoices [get]
func (h *InvoiceHandler) List(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	invoices, err := h.invoiceService.List(c.Request().Context(), actor, c.QueryParam("client_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoices)
}

// MarkPaid handles POST /v1/invoices/:id/pay (admin only).
//
// @Summary      Mark an invoice paid
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {object}  domain.Invoice
// @Failure      404  {object}  map[string]string
// @Router       /v1/invoices/{id}/pay [post]
func (h *InvoiceHandler) MarkPaid(c echo.Context) error {
	invoice, err := h.invoiceService.MarkPaid(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoice)
}

// Delete handles DELETE /v1/invoices/:id (admin only).
//
// @Summary      Delete an invoice
// @Tags         invoices
// @Security     BearerAuth
// @Param        id  path  string  true  "Invoice id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c echo.Context) error {
	if err := h.invoiceService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

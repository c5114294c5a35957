package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/obrasys/backoffice/internal/core/ports"
)

// ReportHandler serves the aggregated summary. Clients get their own
// numbers; admins get the firm-wide picture, or one client's via
// ?client_id=.
type ReportHandler struct {
	reportService ports.ReportService
}

func NewReportHandler(reportService ports.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary handles GET /v1/reports/summary.
//
// @Summary      Financial and progress summary
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     string  false  "Scope to one client (admin only)"
// @Success      200        {object}  ports.ReportSummary
// @Router       /v1/reports/summary [get]
func (h *ReportHandler) Summary(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	summary, err := h.reportService.Summary(c.Request().Context(), actor, c.QueryParam("client_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

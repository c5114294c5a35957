package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/obrasys/backoffice/internal/core/ports"
)

// NotificationHandler serves the caller's own feed. There is no cross-user
// feed route, not even for admins.
type NotificationHandler struct {
	notificationService ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List handles GET /v1/notifications.
//
// @Summary      List own notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Notification
// @Router       /v1/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	feed, err := h.notificationService.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feed)
}

// MarkRead handles PATCH /v1/notifications/:id/read. Only the recipient may
// mark a notification read.
//
// @Summary      Mark a notification read
// @Tags         notifications
// @Security     BearerAuth
// @Param        id  path  string  true  "Notification id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.notificationService.MarkRead(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

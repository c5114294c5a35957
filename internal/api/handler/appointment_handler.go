package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/obrasys/backoffice/internal/core/ports"
)

// AppointmentHandler serves appointment scheduling. Clients book for
// themselves; admins may book for any client, which notifies the client.
type AppointmentHandler struct {
	appointmentService ports.AppointmentService
}

func NewAppointmentHandler(appointmentService ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

type appointmentRequest struct {
	ClientID string `json:"client_id,omitempty"` // admins only; clients are pinned to themselves
	Title    string `json:"title"     validate:"required"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
	StartsAt string `json:"starts_at" validate:"required"` // RFC 3339
}

func (r appointmentRequest) input() (ports.CreateAppointmentInput, error) {
	startsAt, err := time.Parse(time.RFC3339, r.StartsAt)
	if err != nil {
		return ports.CreateAppointmentInput{}, echo.NewHTTPError(http.StatusBadRequest, "starts_at must be an RFC 3339 timestamp")
	}
	return ports.CreateAppointmentInput{
		ClientID: r.ClientID,
		Title:    r.Title,
		Location: r.Location,
		Notes:    r.Notes,
		StartsAt: startsAt,
	}, nil
}

// Create handles POST /v1/appointments.
//
// @Summary      Schedule an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      appointmentRequest  true  "Appointment details"
// @Success      201   {object}  domain.Appointment
// @Router       /v1/appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	input, err := req.input()
	if err != nil {
		return err
	}

	appointment, err := h.appointmentService.Create(c.Request().Context(), actor, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, appointment)
}

// Get handles GET /v1/appointments/:id.
//
// @Summary      Get an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  domain.Appointment
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/appointments/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	appointment, err := h.appointmentService.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointment)
}

// List handles GET /v1/appointments.
//
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     string  false  "Filter by owning client (admin only)"
// @Success      200        {array}   domain.Appointment
// @Router       /v1/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	appointments, err := h.appointmentService.List(c.Request().Context(), actor, c.QueryParam("client_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// Update handles PUT /v1/appointments/:id (owner or admin).
//
// @Summary      Reschedule or edit an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Appointment id"
// @Param        body  body      appointmentRequest  true  "New appointment state"
// @Success      200   {object}  domain.Appointment
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/appointments/{id} [put]
func (h *AppointmentHandler) Update(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	input, err := req.input()
	if err != nil {
		return err
	}

	appointment, err := h.appointmentService.Update(c.Request().Context(), actor, c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointment)
}

// Delete handles DELETE /v1/appointments/:id (owner or admin).
//
// @Summary      Cancel an appointment
// @Tags         appointments
// @Security     BearerAuth
// @Param        id  path  string  true  "Appointment id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.appointmentService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

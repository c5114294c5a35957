package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/obrasys/backoffice/internal/core/ports"
)

// DiaryHandler serves work-diary entries. Writes are admin-only (entries
// come from site engineers); clients read the diary of their own projects.
type DiaryHandler struct {
	diaryService ports.DiaryService
}

func NewDiaryHandler(diaryService ports.DiaryService) *DiaryHandler {
	return &DiaryHandler{diaryService: diaryService}
}

type diaryEntryRequest struct {
	ClientID   string `json:"client_id"  validate:"required"`
	ProjectID  string `json:"project_id" validate:"required"`
	EntryDate  string `json:"entry_date" validate:"required"` // RFC 3339
	Weather    string `json:"weather,omitempty"`
	Workforce  int    `json:"workforce"  validate:"gte=0"`
	Activities string `json:"activities" validate:"required"`
}

func (r diaryEntryRequest) input() (ports.CreateDiaryEntryInput, error) {
	entryDate, err := time.Parse(time.RFC3339, r.EntryDate)
	if err != nil {
		return ports.CreateDiaryEntryInput{}, echo.NewHTTPError(http.StatusBadRequest, "entry_date must be an RFC 3339 timestamp")
	}
	return ports.CreateDiaryEntryInput{
		ClientID:   r.ClientID,
		ProjectID:  r.ProjectID,
		EntryDate:  entryDate,
		Weather:    r.Weather,
		Workforce:  r.Workforce,
		Activities: r.Activities,
	}, nil
}

// Create handles POST /v1/diaries (admin only).
//
// @Summary      Add a work diary entry
// @Tags         diaries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      diaryEntryRequest  true  "Diary entry"
// @Success      201   {object}  domain.DiaryEntry
// @Router       /v1/diaries [post]
func (h *DiaryHandler) Create(c echo.Context) error {
	var req diaryEntryRequest
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

	entry, err := h.diaryService.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, entry)
}

// Get handles GET /v1/diaries/:id.
//
// @Summary      Get a diary entry
// @Tags         diaries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Diary entry id"
// @Success      200  {object}  domain.DiaryEntry
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/diaries/{id} [get]
func (h *DiaryHandler) Get(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	entry, err := h.diaryService.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// List handles GET /v1/diaries.
//
// @Summary      List diary entries
// @Tags         diaries
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     string  false  "Filter by owning client (admin only)"
// @Success      200        {array}   domain.DiaryEntry
// @Router       /v1/diaries [get]
func (h *DiaryHandler) List(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	entries, err := h.diaryService.List(c.Request().Context(), actor, c.QueryParam("client_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Update handles PUT /v1/diaries/:id (admin only).
//
// @Summary      Edit a diary entry
// @Tags         diaries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Diary entry id"
// @Param        body  body      diaryEntryRequest  true  "New entry state"
// @Success      200   {object}  domain.DiaryEntry
// @Failure      404   {object}  map[string]string
// @Router       /v1/diaries/{id} [put]
func (h *DiaryHandler) Update(c echo.Context) error {
	var req diaryEntryRequest
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

	entry, err := h.diaryService.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /v1/diaries/:id (admin only).
//
// @Summary      Delete a diary entry
// @Tags         diaries
// @Security     BearerAuth
// @Param        id  path  string  true  "Diary entry id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/diaries/{id} [delete]
func (h *DiaryHandler) Delete(c echo.Context) error {
	if err := h.diaryService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

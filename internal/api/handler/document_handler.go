package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/obrasys/backoffice/internal/core/ports"
)

// DocumentHandler serves document metadata records. The binary itself lives
// in external storage; the API stores name, kind, and URL only.
type DocumentHandler struct {
	documentService ports.DocumentService
}

func NewDocumentHandler(documentService ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

type createDocumentRequest struct {
	ClientID  string `json:"client_id"  validate:"required"`
	ProjectID string `json:"project_id,omitempty"`
	Name      string `json:"name"       validate:"required"`
	Kind      string `json:"kind,omitempty"`
	URL       string `json:"url"        validate:"required,url"`
}

// Create handles POST /v1/documents (admin only).
//
// @Summary      Register a document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDocumentRequest  true  "Document metadata"
// @Success      201   {object}  domain.Document
// @Router       /v1/documents [post]
func (h *DocumentHandler) Create(c echo.Context) error {
	var req createDocumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doc, err := h.documentService.Create(c.Request().Context(), ports.CreateDocumentInput{
		ClientID:  req.ClientID,
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Kind:      req.Kind,
		URL:       req.URL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, doc)
}

// Get handles GET /v1/documents/:id.
//
// @Summary      Get a document record
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Document id"
// @Success      200  {object}  domain.Document
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/documents/{id} [get]
func (h *DocumentHandler) Get(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	doc, err := h.documentService.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// List handles GET /v1/documents.
//
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     string  false  "Filter by owning client (admin only)"
// @Success      200        {array}   domain.Document
// @Router       /v1/documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	docs, err := h.documentService.List(c.Request().Context(), actor, c.QueryParam("client_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// Delete handles DELETE /v1/documents/:id (admin only).
//
// @Summary      Delete a document record
// @Tags         documents
// @Security     BearerAuth
// @Param        id  path  string  true  "Document id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/documents/{id} [delete]
func (h *DocumentHandler) Delete(c echo.Context) error {
	if err := h.documentService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

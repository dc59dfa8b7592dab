package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/docstore/internal/api/metrics"
	"github.com/docuvault/docstore/internal/core/ports"
)

// DocumentHandler handles HTTP requests for document resources.
type DocumentHandler struct {
	docService ports.DocumentService
}

func NewDocumentHandler(docService ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{docService: docService}
}

// Create handles POST /documents. The owner is the authenticated subject;
// nothing in the payload can set it.
//
// @Summary      Create a document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDocumentRequest  true  "Document"
// @Success      201   {object}  domain.Document
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /documents [post]
func (h *DocumentHandler) Create(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	var req createDocumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doc, err := h.docService.Create(c.Request().Context(), subject, ports.CreateDocumentInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	metrics.DocumentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, doc)
}

// Get handles GET /documents/:id.
//
// @Summary      Get a document by id
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Document id (hex)"
// @Success      200  {object}  domain.Document
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /documents/{id} [get]
func (h *DocumentHandler) Get(c echo.Context) error {
	doc, err := h.docService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// List handles GET /documents.
//
// @Summary      List all documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Document
// @Router       /documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	docs, err := h.docService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// Update handles PUT /documents/:id.
//
// @Summary      Partially update a document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Document id (hex)"
// @Param        body  body      updateDocumentRequest  true  "Fields to merge"
// @Success      200   {object}  domain.Document
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /documents/{id} [put]
func (h *DocumentHandler) Update(c echo.Context) error {
	var req updateDocumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	doc, err := h.docService.Update(c.Request().Context(), c.Param("id"), ports.DocumentUpdateInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// Delete handles DELETE /documents/:id.
//
// @Summary      Delete a document
// @Tags         documents
// @Security     BearerAuth
// @Param        id  path  string  true  "Document id (hex)"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /documents/{id} [delete]
func (h *DocumentHandler) Delete(c echo.Context) error {
	if err := h.docService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

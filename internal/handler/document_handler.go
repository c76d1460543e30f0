package handler

import (
	"errors"
	"net/http"

	apperrors "carkeep/internal/errors"
	"carkeep/internal/middleware"
	"carkeep/internal/models"
	"carkeep/internal/service"
	"carkeep/pkg/response"

	"github.com/gin-gonic/gin"
)

// DocumentHandler handles HTTP requests for document operations.
type DocumentHandler struct {
	service service.DocumentServicer
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(service service.DocumentServicer) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// ListByCar godoc
// @Summary      List a car's documents
// @Description  Returns the authenticated user's documents for one car, newest first
// @Tags         documents
// @Produce      json
// @Param        carId  path      string  true  "Car ID"
// @Success      200    {array}   models.Document
// @Failure      401    {object}  response.ErrorResponse
// @Failure      404    {object}  response.ErrorResponse
// @Failure      500    {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /documents/car/{carId} [get]
func (h *DocumentHandler) ListByCar(c *gin.Context) {
	docs, err := h.service.ListByCar(c.Request.Context(), middleware.GetUserID(c), c.Param("carId"))
	if err != nil {
		h.documentError(c, err, "view")
		return
	}

	c.JSON(http.StatusOK, docs)
}

// GetDocument godoc
// @Summary      Get a single document
// @Tags         documents
// @Produce      json
// @Param        id  path      string  true  "Document ID"
// @Success      200  {object}  models.Document
// @Failure      401  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	doc, err := h.service.Get(c.Request.Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		h.documentError(c, err, "view")
		return
	}

	c.JSON(http.StatusOK, doc)
}

// CreateDocument godoc
// @Summary      Add a document
// @Description  Create a document for one of the user's cars, with an optional file upload
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        carId        formData  string  true   "Car ID"
// @Param        type         formData  string  true   "Document type"  Enums(insurance, registration, tax, maintenance, other)
// @Param        title        formData  string  true   "Title"
// @Param        description  formData  string  false  "Description"
// @Param        expiryDate   formData  string  false  "Expiry date (YYYY-MM-DD)"
// @Param        file         formData  file    false  "Attachment (image, pdf, doc, docx, max 10MB)"
// @Success      201  {object}  models.Document
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /documents [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	trimFormValues(c, "title", "description")
	var req models.DocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	file, closer, err := formUpload(c, "file")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if closer != nil {
		defer closer.Close()
	}

	doc, err := h.service.Add(c.Request.Context(), middleware.GetUserID(c), &req, file)
	if err != nil {
		h.documentError(c, err, "add")
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// UpdateDocument godoc
// @Summary      Update a document
// @Description  Replace a document's fields; a new file replaces the stored one, removeFile clears it
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        id           path      string  true   "Document ID"
// @Param        carId        formData  string  true   "Car ID"
// @Param        type         formData  string  true   "Document type"  Enums(insurance, registration, tax, maintenance, other)
// @Param        title        formData  string  true   "Title"
// @Param        description  formData  string  false  "Description"
// @Param        expiryDate   formData  string  false  "Expiry date (YYYY-MM-DD)"
// @Param        removeFile   formData  bool    false  "Remove the stored file"
// @Param        file         formData  file    false  "Attachment (image, pdf, doc, docx, max 10MB)"
// @Success      200  {object}  models.Document
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /documents/{id} [put]
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	trimFormValues(c, "title", "description")
	var req models.UpdateDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	file, closer, err := formUpload(c, "file")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if closer != nil {
		defer closer.Close()
	}

	doc, err := h.service.Update(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), &req, file)
	if err != nil {
		h.documentError(c, err, "update")
		return
	}

	c.JSON(http.StatusOK, doc)
}

// DeleteDocument godoc
// @Summary      Delete a document
// @Description  Remove a document and its stored file
// @Tags         documents
// @Produce      json
// @Param        id  path      string  true  "Document ID"
// @Success      200  {object}  models.DeleteResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		h.documentError(c, err, "delete")
		return
	}

	c.JSON(http.StatusOK, models.DeleteResponse{Msg: "Document removed"})
}

// documentError maps service errors onto the uniform error body.
func (h *DocumentHandler) documentError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrDocumentNotFound):
		response.NotFound(c, "Document not found")
	case errors.Is(err, apperrors.ErrCarNotFound), errors.Is(err, apperrors.ErrInvalidCarID):
		response.NotFound(c, "Car not found")
	case errors.Is(err, apperrors.ErrDocumentForbidden):
		response.Unauthorized(c, "Not authorized to "+action+" this document")
	case errors.Is(err, apperrors.ErrCarForbidden):
		response.Unauthorized(c, "Not authorized to add documents to this car")
	case errors.Is(err, apperrors.ErrFileTooLarge):
		response.BadRequest(c, "File cannot exceed 10MB")
	case errors.Is(err, apperrors.ErrFileTypeNotAllowed):
		response.BadRequest(c, "Only jpeg, jpg, png, pdf, doc, and docx files are allowed")
	default:
		response.InternalError(c, err)
	}
}

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

// CarHandler handles HTTP requests for car operations.
type CarHandler struct {
	service service.CarServicer
}

// NewCarHandler creates a new CarHandler.
func NewCarHandler(service service.CarServicer) *CarHandler {
	return &CarHandler{service: service}
}

// ListCars godoc
// @Summary      List the authenticated user's cars
// @Description  Returns the user's cars sorted newest first
// @Tags         cars
// @Produce      json
// @Success      200  {array}   models.Car
// @Failure      401  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /cars [get]
func (h *CarHandler) ListCars(c *gin.Context) {
	cars, err := h.service.List(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, cars)
}

// GetCar godoc
// @Summary      Get a single car
// @Tags         cars
// @Produce      json
// @Param        id  path      string  true  "Car ID"
// @Success      200  {object}  models.Car
// @Failure      401  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /cars/{id} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	car, err := h.service.Get(c.Request.Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		h.carError(c, err, "view")
		return
	}

	c.JSON(http.StatusOK, car)
}

// CreateCar godoc
// @Summary      Add a car
// @Description  Create a car from a multipart form, with an optional image upload
// @Tags         cars
// @Accept       multipart/form-data
// @Produce      json
// @Param        make          formData  string  true   "Manufacturer"
// @Param        model         formData  string  true   "Model name"
// @Param        year          formData  string  true   "Model year"
// @Param        vin           formData  string  false  "Vehicle identification number"
// @Param        licensePlate  formData  string  true   "License plate"
// @Param        image         formData  file    false  "Car photo (jpeg, png, webp, max 5MB)"
// @Success      201  {object}  models.Car
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /cars [post]
func (h *CarHandler) CreateCar(c *gin.Context) {
	trimFormValues(c, "make", "model", "licensePlate")
	var req models.CarRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	image, closer, err := formUpload(c, "image")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if closer != nil {
		defer closer.Close()
	}

	car, err := h.service.Add(c.Request.Context(), middleware.GetUserID(c), &req, image)
	if err != nil {
		h.carError(c, err, "add")
		return
	}

	c.JSON(http.StatusCreated, car)
}

// UpdateCar godoc
// @Summary      Update a car
// @Description  Replace a car's fields from a multipart form; a new image replaces the stored one
// @Tags         cars
// @Accept       multipart/form-data
// @Produce      json
// @Param        id            path      string  true   "Car ID"
// @Param        make          formData  string  true   "Manufacturer"
// @Param        model         formData  string  true   "Model name"
// @Param        year          formData  string  true   "Model year"
// @Param        vin           formData  string  false  "Vehicle identification number"
// @Param        licensePlate  formData  string  true   "License plate"
// @Param        image         formData  file    false  "Car photo (jpeg, png, webp, max 5MB)"
// @Success      200  {object}  models.Car
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /cars/{id} [put]
func (h *CarHandler) UpdateCar(c *gin.Context) {
	trimFormValues(c, "make", "model", "licensePlate")
	var req models.CarRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	image, closer, err := formUpload(c, "image")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if closer != nil {
		defer closer.Close()
	}

	car, err := h.service.Update(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), &req, image)
	if err != nil {
		h.carError(c, err, "update")
		return
	}

	c.JSON(http.StatusOK, car)
}

// DeleteCar godoc
// @Summary      Delete a car
// @Description  Remove a car along with its documents and stored files
// @Tags         cars
// @Produce      json
// @Param        id  path      string  true  "Car ID"
// @Success      200  {object}  models.DeleteResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /cars/{id} [delete]
func (h *CarHandler) DeleteCar(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		h.carError(c, err, "delete")
		return
	}

	c.JSON(http.StatusOK, models.DeleteResponse{Msg: "Car removed"})
}

// carError maps service errors onto the uniform error body. The action names
// the attempted operation in ownership failures.
func (h *CarHandler) carError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrCarNotFound):
		response.NotFound(c, "Car not found")
	case errors.Is(err, apperrors.ErrCarForbidden):
		response.Unauthorized(c, "Not authorized to "+action+" this car")
	case errors.Is(err, apperrors.ErrInvalidYear):
		response.FieldErrors(c, http.StatusBadRequest, []response.FieldError{
			{Msg: "Please enter a valid year", Param: "year"},
		})
	case errors.Is(err, apperrors.ErrFileTooLarge):
		response.BadRequest(c, "Image cannot exceed 5MB")
	case errors.Is(err, apperrors.ErrFileTypeNotAllowed):
		response.BadRequest(c, "Only jpeg, jpg, png, and webp images are allowed")
	default:
		response.InternalError(c, err)
	}
}

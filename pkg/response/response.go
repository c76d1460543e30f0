// Package response provides standard API response helpers.
//
// Every error body has the same shape:
//
//	{"errors": [{"msg": "...", "param": "..."}]}
//
// where param is present only for field-level validation failures.
package response

import (
	"errors"
	"fmt"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError is a single itemized error, optionally tied to a request field.
type FieldError struct {
	Msg   string `json:"msg" example:"Make must be between 2 and 30 characters"`
	Param string `json:"param,omitempty" example:"make"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// Error sends an error response with a single message.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Errors: []FieldError{{Msg: message}}})
}

// FieldErrors sends an itemized error response.
func FieldErrors(c *gin.Context, status int, errs []FieldError) {
	c.JSON(status, ErrorResponse{Errors: errs})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError sends a 500 error response. The underlying error is echoed
// only in debug mode; production gets a generic message.
func InternalError(c *gin.Context, err error) {
	msg := "Server Error"
	if gin.Mode() == gin.DebugMode && err != nil {
		msg = err.Error()
	}
	Error(c, http.StatusInternalServerError, msg)
}

// ValidationFailed translates a binding error into an itemized 400 response.
func ValidationFailed(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		BadRequest(c, err.Error())
		return
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Msg:   messageFor(fe),
			Param: paramName(fe.Field()),
		})
	}
	FieldErrors(c, http.StatusBadRequest, out)
}

// paramOverrides maps struct field names whose parameter name does not
// follow the plain lower-camel convention.
var paramOverrides = map[string]string{
	"CarID": "carId",
}

// paramName converts a struct field name to its form/json parameter name.
func paramName(field string) string {
	if field == "" {
		return field
	}
	if p, ok := paramOverrides[field]; ok {
		return p
	}
	r := []rune(field)
	// All-uppercase names (VIN, CarID prefix) lowercase fully at the head.
	i := 0
	for i < len(r) && unicode.IsUpper(r[i]) {
		i++
	}
	if i > 1 && i < len(r) {
		i-- // keep the last uppercase rune as the start of the next word
	}
	for j := 0; j < i; j++ {
		r[j] = unicode.ToLower(r[j])
	}
	return string(r)
}

// messageFor builds a human-readable message for a failed validation tag.
func messageFor(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Please include a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("Invalid %s", paramName(field))
	case "vin":
		return "VIN must be exactly 17 characters and contain no I, O, or Q"
	case "plate":
		return "License plate can only contain letters, numbers, spaces, and hyphens"
	case "username":
		return "Username can only contain letters, numbers, and underscores"
	case "password":
		return "Password must contain at least one uppercase letter and one number"
	case "notpast":
		return "Expiry date cannot be in the past"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

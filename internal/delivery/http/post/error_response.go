package post_http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"bannylog-post-service/internal/custom_errors"
)

// ErrorResponse is the wire shape of every failure. Validation is only
// populated for field-level request validation errors.
type ErrorResponse struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Validation map[string]string `json:"validation"`
}

func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:       code,
		Message:    message,
		Validation: make(map[string]string),
	}
}

func (e *ErrorResponse) AddValidation(field, message string) {
	e.Validation[field] = message
}

// validationErrorResponse assembles the field→message map before the
// service is ever invoked.
func validationErrorResponse(err error) *ErrorResponse {
	resp := NewErrorResponse("400", "invalid request")

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			resp.AddValidation(strings.ToLower(fieldErr.Field()), validationMessage(fieldErr))
		}
	}

	return resp
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required", "notblank":
		return "must not be blank"
	default:
		return "is invalid"
	}
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, custom_errors.ErrPostNotFound):
		c.JSON(http.StatusNotFound, NewErrorResponse("404", "post not found"))
	case errors.Is(err, custom_errors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, NewErrorResponse("400", "invalid request"))
	default:
		c.JSON(http.StatusInternalServerError, NewErrorResponse("500", "internal server error"))
	}
}

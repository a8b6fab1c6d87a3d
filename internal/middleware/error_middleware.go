package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/yigit/studentdesk/internal/app/models/dto"
	"github.com/yigit/studentdesk/internal/pkg/apperrors"
	"github.com/yigit/studentdesk/internal/pkg/logger"
)

// HandleAPIError writes the error body for err.
// Missing students answer 404; every other failure answers 500 with the error text.
func HandleAPIError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.MessageStudentNotFound))
		return
	}

	message := err.Error()
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		message = formatValidationErrors(validationErrs)
	}

	var event *zerolog.Event
	if apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrConflict) || len(validationErrs) > 0 {
		event = logger.Warn()
	} else {
		event = logger.Error()
	}
	event.Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("requestID", c.GetString(RequestIDKey)).
		Msg("Request failed")

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(message))
}

// HandleNotFound answers a mutation that matched no row
func HandleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.MessageStudentNotFound))
}

func formatValidationErrors(errs validator.ValidationErrors) string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, formatValidationError(e))
	}
	return strings.Join(messages, "; ")
}

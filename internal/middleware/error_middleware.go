package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/personnel/internal/app/models/dto"
	"github.com/yigit/personnel/internal/pkg/apperrors"
	"github.com/yigit/personnel/internal/pkg/logger"
)

const (
	msgInternalError    = "Internal server error"
	msgEndpointNotFound = "API endpoint not found"
)

// HandleAPIError maps err onto a status code and writes the failure envelope.
// Unclassified errors are logged and reported with a generic message.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(apperrors.Message(err, "Validation failed")))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(apperrors.Message(err, "Resource not found")))
	case errors.Is(err, apperrors.ErrConflict):
		// Duplicates are reported as bad input, not 409
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(apperrors.Message(err, "Conflict")))
	default:
		logger.Ctx(c.Request.Context()).Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(msgInternalError))
	}
}

// NotFound answers requests that matched no route
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(msgEndpointNotFound))
	}
}

// Recovery turns a panic into the generic 500 envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Ctx(c.Request.Context()).Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(msgInternalError))
	})
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"shoply-be/internal/apperrors"
)

// writeError converts a service error into the JSON error body. Typed
// application errors keep their status and code; anything else is logged
// and becomes a generic 500 so internals never leak to clients.
func writeError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{
			"message": appErr.Message,
			"code":    appErr.Code,
		})
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": "Something went wrong",
		"code":    "INTERNAL",
	})
}

// writeBindingError reports request-body validation failures.
func writeBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Invalid request body",
		"code":    "VALIDATION",
		"details": err.Error(),
	})
}

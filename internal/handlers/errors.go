// internal/handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/custom-creations-api/internal/database"
	"github.com/javajoker/custom-creations-api/internal/utils"
)

// respondError maps service errors onto the API error envelope.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	var validationErr *utils.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.ValidationErrorResponse(c, validationErr)
	case errors.Is(err, database.ErrStoreUnavailable):
		logrus.WithError(err).Warn("Database not available")
		utils.ServiceUnavailableResponse(c)
	default:
		logrus.WithError(err).Error("Unhandled service error")
		utils.InternalErrorResponse(c, "")
	}
}

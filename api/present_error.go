package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/utils"
)

type APIErrorResponse struct {
	Message string `json:"message"`
}

// presentError maps domain errors to HTTP statuses and reports whether an
// error was written. Handlers return right after a true result.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var validationErrors validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		c.JSON(http.StatusBadRequest, APIErrorResponse{Message: validationErrors.Error()})
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, APIErrorResponse{Message: err.Error()})
	case errors.Is(err, models.UnAuthorizedError):
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Message: err.Error()})
	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, APIErrorResponse{Message: err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, APIErrorResponse{Message: err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, APIErrorResponse{Message: err.Error()})
	default:
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "unexpected error",
			"error", err.Error())
		c.JSON(http.StatusInternalServerError, APIErrorResponse{
			Message: "an unexpected error occurred",
		})
	}
	return true
}

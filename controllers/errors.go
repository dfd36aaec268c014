package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"order-gateway/models"
)

// respondError translates orchestrator outcomes to HTTP statuses.
func respondError(c *gin.Context, err error) {
	var validation *models.ValidationError
	var upstream *models.UpstreamError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: validation.Error()})
	case errors.Is(err, models.ErrEmailTaken):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "Email already exists"})
	case errors.Is(err, models.ErrUserNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "User not found"})
	case errors.Is(err, models.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Payment not found"})
	case errors.Is(err, models.ErrExternalUnavailable):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "External service unavailable"})
	case errors.As(err, &upstream):
		c.JSON(upstream.Status, models.ErrorResponse{Error: "External service error"})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
}

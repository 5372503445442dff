// Package controllers translates HTTP requests into service calls and
// domain errors back into status codes.
package controllers

import (
	"errors"
	"net/http"

	"github.com/dpramana/apotek/app/models"
	"github.com/dpramana/apotek/app/services"
	"github.com/dpramana/apotek/pkg/ctx"
	"github.com/dpramana/apotek/pkg/logger"
)

// respondError maps an error from the service layer onto the wire:
// missing entities are 404, business rule violations are 422, bad
// credentials are 401, everything else is a logged 500.
func respondError(c *ctx.Context, err error) {
	switch {
	case models.IsNotFound(err):
		c.NotFound(err.Error())
	case models.IsDomainViolation(err),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidPrice):
		c.Error(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		c.Unauthorized(err.Error())
	default:
		logger.WithCtx(c.Context()).Error("unhandled service error", "error", err)
		c.Error(http.StatusInternalServerError, "internal server error")
	}
}

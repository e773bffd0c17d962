// Package handlers implements HTTP handlers for the account API.
package handlers

import (
	"log/slog"

	"github.com/benx421/account-service/internal/service"
)

// Handler implements the api.StrictServerInterface for all endpoints
type Handler struct {
	accountService service.AccountManager
	healthChecker  service.HealthChecker
	logger         *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	accountService service.AccountManager,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		accountService: accountService,
		healthChecker:  healthChecker,
		logger:         logger,
	}
}

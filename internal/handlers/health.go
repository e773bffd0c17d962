package handlers

import (
	"context"
	"time"

	"github.com/benx421/account-service/internal/api"
)

const healthCheckTimeout = 2 * time.Second

// GetHealth handles GET /health
func (h *Handler) GetHealth(
	ctx context.Context,
	request api.GetHealthRequestObject,
) (api.GetHealthResponseObject, error) {
	pingCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := h.healthChecker.PingContext(pingCtx); err != nil {
		h.logger.Error("health check failed: database unreachable", "error", err)
		return api.GetHealth503JSONResponse{
			Status: api.UNAVAILABLE,
		}, nil
	}

	return api.GetHealth200JSONResponse{
		Status: api.OK,
	}, nil
}

package service

import (
	"context"

	"github.com/benx421/account-service/internal/models"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// AccountManager handles account lifecycle operations
type AccountManager interface {
	CreateAccount(ctx context.Context, input AccountInput) (*models.Account, error)
	GetAccount(ctx context.Context, id int64) (*models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	UpdateAccount(ctx context.Context, id int64, input AccountInput) (*models.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
}

// Ensure concrete types implement interfaces
var _ AccountManager = (*AccountService)(nil)

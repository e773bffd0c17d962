package repository

import (
	"context"
	"io"
	"log"
	"log/slog"
	"testing"

	"github.com/benx421/account-service/internal/config"
	"github.com/benx421/account-service/internal/db"
	"github.com/benx421/account-service/internal/models"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	database, err := db.Connect(context.Background(), &cfg.Database, logger)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.ResetForTest(context.Background()); err != nil {
		t.Fatalf("failed to reset test database: %v", err)
	}

	return database
}

func cleanupTestDB(t *testing.T, database *db.DB) {
	t.Helper()
	if err := database.Close(); err != nil {
		log.Printf("failed to close test database: %v", err)
	}
}

func seedAccount(t *testing.T, repo AccountRepository, name string) *models.Account {
	t.Helper()

	account := &models.Account{
		Name:        name,
		Email:       name + "@example.com",
		Address:     "1 Main Street",
		PhoneNumber: "555-0100",
	}
	require.NoError(t, repo.Create(context.Background(), account), "failed to seed account")
	return account
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/benx421/account-service/internal/db"
	"github.com/benx421/account-service/internal/models"
	"github.com/benx421/account-service/internal/repository"
)

// AccountService handles account create, read, update, list and delete
type AccountService struct {
	db  *db.DB
	now func() time.Time
}

// NewAccountService creates a new AccountService
func NewAccountService(database *db.DB) *AccountService {
	return &AccountService{
		db:  database,
		now: time.Now,
	}
}

// CreateAccount validates the input and stores a new account
func (s *AccountService) CreateAccount(ctx context.Context, input AccountInput) (*models.Account, error) {
	if err := ValidateAccountInput(input); err != nil {
		return nil, validationError(err)
	}

	var account *models.Account
	err := s.withTx(ctx, func(accountRepo repository.AccountRepository) error {
		var err error
		account, err = s.performCreate(ctx, accountRepo, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// performCreate contains the core create logic
func (s *AccountService) performCreate(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	input AccountInput,
) (*models.Account, error) {
	account := &models.Account{
		Name:        input.Name,
		Email:       input.Email,
		Address:     input.Address,
		PhoneNumber: input.PhoneNumber,
		DateJoined:  truncateToDate(s.now()),
	}
	if input.DateJoined != nil {
		account.DateJoined = truncateToDate(*input.DateJoined)
	}

	if err := accountRepo.Create(ctx, account); err != nil {
		return nil, internalError("failed to create account", err)
	}

	return account, nil
}

// GetAccount returns the account with the given id
func (s *AccountService) GetAccount(ctx context.Context, id int64) (*models.Account, error) {
	return s.performGet(ctx, repository.NewAccountRepository(s.db), id)
}

func (s *AccountService) performGet(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	id int64,
) (*models.Account, error) {
	account, err := accountRepo.FindByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, accountNotFound(id)
	}
	if err != nil {
		return nil, internalError("failed to read account", err)
	}

	return account, nil
}

// ListAccounts returns every stored account
func (s *AccountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return s.performList(ctx, repository.NewAccountRepository(s.db))
}

func (s *AccountService) performList(
	ctx context.Context,
	accountRepo repository.AccountRepository,
) ([]models.Account, error) {
	accounts, err := accountRepo.List(ctx)
	if err != nil {
		return nil, internalError("failed to list accounts", err)
	}
	if accounts == nil {
		accounts = []models.Account{}
	}

	return accounts, nil
}

// UpdateAccount replaces the mutable fields of an existing account
func (s *AccountService) UpdateAccount(ctx context.Context, id int64, input AccountInput) (*models.Account, error) {
	var account *models.Account
	err := s.withTx(ctx, func(accountRepo repository.AccountRepository) error {
		var err error
		account, err = s.performUpdate(ctx, accountRepo, id, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// performUpdate locks the row, checks it exists, then validates and applies
// the replacement.
func (s *AccountService) performUpdate(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	id int64,
	input AccountInput,
) (*models.Account, error) {
	account, err := accountRepo.FindByIDForUpdate(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, accountNotFound(id)
	}
	if err != nil {
		return nil, internalError("failed to read account", err)
	}

	if err := ValidateAccountInput(input); err != nil {
		return nil, validationError(err)
	}

	account.Name = input.Name
	account.Email = input.Email
	account.Address = input.Address
	account.PhoneNumber = input.PhoneNumber
	if input.DateJoined != nil {
		account.DateJoined = truncateToDate(*input.DateJoined)
	}

	if err := accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, accountNotFound(id)
		}
		return nil, internalError("failed to update account", err)
	}

	return account, nil
}

// DeleteAccount removes the account. An absent account counts as deleted.
func (s *AccountService) DeleteAccount(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(accountRepo repository.AccountRepository) error {
		return s.performDelete(ctx, accountRepo, id)
	})
}

func (s *AccountService) performDelete(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	id int64,
) error {
	if err := accountRepo.Delete(ctx, id); err != nil {
		return internalError("failed to delete account", err)
	}
	return nil
}

// withTx runs fn against a transaction-scoped repository and commits only if
// fn succeeds.
func (s *AccountService) withTx(ctx context.Context, fn func(repository.AccountRepository) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return internalError("failed to start transaction", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	if err := fn(repository.NewAccountRepository(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return internalError("failed to commit transaction", err)
	}

	return nil
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

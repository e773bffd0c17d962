package handlers

import (
	"context"
	"fmt"

	"github.com/benx421/account-service/internal/api"
	"github.com/benx421/account-service/internal/service"
)

// CreateAccount handles POST /accounts
func (h *Handler) CreateAccount(
	ctx context.Context,
	request api.CreateAccountRequestObject,
) (api.CreateAccountResponseObject, error) {
	account, err := h.accountService.CreateAccount(ctx, toAccountInput(request.Body))
	if err != nil {
		return h.handleCreateError(err)
	}

	return api.CreateAccount201JSONResponse{
		Body: toAPIAccount(account),
		Headers: api.CreateAccount201ResponseHeaders{
			Location: fmt.Sprintf("/accounts/%d", account.ID),
		},
	}, nil
}

// GetAccount handles GET /accounts/{id}
func (h *Handler) GetAccount(
	ctx context.Context,
	request api.GetAccountRequestObject,
) (api.GetAccountResponseObject, error) {
	account, err := h.accountService.GetAccount(ctx, request.Id)
	if err != nil {
		svcErr := extractServiceError(err)
		if svcErr != nil && svcErr.Code == service.ErrCodeNotFound {
			return api.GetAccount404JSONResponse{
				NotFoundJSONResponse: api.NotFoundJSONResponse{
					Error:   api.ErrorCodeNotFound,
					Message: svcErr.Message,
				},
			}, nil
		}
		h.logInternal("unexpected error reading account", err)
		return api.GetAccount500JSONResponse{InternalErrorJSONResponse: internalErrorBody()}, nil
	}

	return api.GetAccount200JSONResponse(toAPIAccount(account)), nil
}

// ListAccounts handles GET /accounts
func (h *Handler) ListAccounts(
	ctx context.Context,
	request api.ListAccountsRequestObject,
) (api.ListAccountsResponseObject, error) {
	accounts, err := h.accountService.ListAccounts(ctx)
	if err != nil {
		h.logInternal("unexpected error listing accounts", err)
		return api.ListAccounts500JSONResponse{InternalErrorJSONResponse: internalErrorBody()}, nil
	}

	response := make(api.ListAccounts200JSONResponse, 0, len(accounts))
	for i := range accounts {
		response = append(response, toAPIAccount(&accounts[i]))
	}

	return response, nil
}

// UpdateAccount handles PUT /accounts/{id}
func (h *Handler) UpdateAccount(
	ctx context.Context,
	request api.UpdateAccountRequestObject,
) (api.UpdateAccountResponseObject, error) {
	account, err := h.accountService.UpdateAccount(ctx, request.Id, toAccountInput(request.Body))
	if err != nil {
		return h.handleUpdateError(err)
	}

	return api.UpdateAccount200JSONResponse(toAPIAccount(account)), nil
}

// DeleteAccount handles DELETE /accounts/{id}
func (h *Handler) DeleteAccount(
	ctx context.Context,
	request api.DeleteAccountRequestObject,
) (api.DeleteAccountResponseObject, error) {
	if err := h.accountService.DeleteAccount(ctx, request.Id); err != nil {
		h.logInternal("unexpected error deleting account", err)
		return api.DeleteAccount500JSONResponse{InternalErrorJSONResponse: internalErrorBody()}, nil
	}

	return api.DeleteAccount204Response{}, nil
}

// handleCreateError maps service errors to appropriate HTTP responses
func (h *Handler) handleCreateError(err error) (api.CreateAccountResponseObject, error) {
	svcErr := extractServiceError(err)
	if svcErr != nil && svcErr.Code == service.ErrCodeValidation {
		return api.CreateAccount400JSONResponse{
			BadRequestJSONResponse: api.BadRequestJSONResponse{
				Error:   api.ErrorCodeValidationError,
				Message: svcErr.Message,
			},
		}, nil
	}

	h.logInternal("unexpected error creating account", err)
	return api.CreateAccount500JSONResponse{InternalErrorJSONResponse: internalErrorBody()}, nil
}

func (h *Handler) handleUpdateError(err error) (api.UpdateAccountResponseObject, error) {
	svcErr := extractServiceError(err)
	if svcErr != nil {
		switch svcErr.Code {
		case service.ErrCodeNotFound:
			return api.UpdateAccount404JSONResponse{
				NotFoundJSONResponse: api.NotFoundJSONResponse{
					Error:   api.ErrorCodeNotFound,
					Message: svcErr.Message,
				},
			}, nil
		case service.ErrCodeValidation:
			return api.UpdateAccount400JSONResponse{
				BadRequestJSONResponse: api.BadRequestJSONResponse{
					Error:   api.ErrorCodeValidationError,
					Message: svcErr.Message,
				},
			}, nil
		}
	}

	h.logInternal("unexpected error updating account", err)
	return api.UpdateAccount500JSONResponse{InternalErrorJSONResponse: internalErrorBody()}, nil
}

func (h *Handler) logInternal(msg string, err error) {
	h.logger.Error(msg, "error", err)
}

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/benx421/account-service/internal/api"
	"github.com/benx421/account-service/internal/config"
	"github.com/benx421/account-service/internal/middleware"
	"github.com/benx421/account-service/internal/models"
	"github.com/benx421/account-service/internal/service"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const accountsPath = "/accounts"

func toAPIAccount(account *models.Account) api.Account {
	return api.Account{
		Id:          account.ID,
		Name:        account.Name,
		Email:       account.Email,
		Address:     account.Address,
		PhoneNumber: account.PhoneNumber,
		DateJoined:  openapi_types.Date{Time: account.DateJoined},
	}
}

// toAccountInput drops the body id; the path id addresses the record.
func toAccountInput(body *api.AccountRequest) service.AccountInput {
	if body == nil {
		return service.AccountInput{}
	}

	input := service.AccountInput{
		Name:        body.Name,
		Email:       body.Email,
		Address:     body.Address,
		PhoneNumber: body.PhoneNumber,
	}
	if body.DateJoined != nil {
		joined := body.DateJoined.Time
		input.DateJoined = &joined
	}

	return input
}

func internalErrorBody() api.InternalErrorJSONResponse {
	return api.InternalErrorJSONResponse{
		Error:   api.ErrorCodeInternalError,
		Message: "internal error",
	}
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

func writeJSONError(w http.ResponseWriter, status int, code api.ErrorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Nothing useful to do if write fails
	json.NewEncoder(w).Encode(api.Error{Error: code, Message: message})
}

// requestErrorHandler answers bodies the strict handler could not decode.
func requestErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	middleware.LoggerFromContext(r.Context()).Debug("rejected request body", "error", err)
	writeJSONError(w, http.StatusBadRequest, api.ErrorCodeValidationError, err.Error())
}

// paramErrorHandler answers path or header parameters that failed to bind,
// such as a non-integer account id.
func paramErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	middleware.LoggerFromContext(r.Context()).Debug("rejected request parameter", "error", err)
	writeJSONError(w, http.StatusBadRequest, api.ErrorCodeBadRequest, err.Error())
}

func responseErrorHandler(logger *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Error("failed to write response", "error", err, "path", r.URL.Path)
		writeJSONError(w, http.StatusInternalServerError, api.ErrorCodeInternalError, "internal error")
	}
}

type indexResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Paths   string `json:"paths"`
}

// indexHandler serves the service banner on GET /.
func indexHandler(app *config.AppConfig, logger *slog.Logger) http.HandlerFunc {
	body := indexResponse{
		Name:    app.Name,
		Version: app.Version,
		Paths:   accountsPath,
	}

	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("failed to encode index response", "error", err)
		}
	}
}

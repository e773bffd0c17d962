// Package middleware provides HTTP middleware components for the account API.
package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/benx421/account-service/internal/models"
	"github.com/benx421/account-service/internal/repository"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "X-Idempotent-Replayed"

	// reservationLease bounds how long an abandoned reservation blocks its key.
	reservationLease = time.Minute
)

// idempotentPaths lists the collection endpoints whose POST creates a record.
// PUT and DELETE on an account are idempotent by themselves.
var idempotentPaths = []string{
	"/accounts",
}

type responseCapture struct {
	http.ResponseWriter
	body       bytes.Buffer
	statusCode int
}

func newResponseCapture(w http.ResponseWriter) *responseCapture {
	return &responseCapture{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // Default if WriteHeader not called
	}
}

func (rc *responseCapture) WriteHeader(code int) {
	rc.statusCode = code
	rc.ResponseWriter.WriteHeader(code)
}

func (rc *responseCapture) Write(b []byte) (int, error) {
	rc.body.Write(b) // Capture for replay
	return rc.ResponseWriter.Write(b)
}

// Idempotency creates middleware that handles idempotent request replay.
//
// The key is reserved before the handler runs, so of several concurrent
// requests sharing a key only one reaches the handler. The others get the
// stored response once it exists, or 409 while it is still being produced.
func Idempotency(repo repository.IdempotencyRepository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requiresIdempotency(r) {
				next.ServeHTTP(w, r)
				return
			}

			idempotencyKey := r.Header.Get(idempotencyKeyHeader)
			if idempotencyKey == "" {
				// Without a key every POST creates a new record
				next.ServeHTTP(w, r)
				return
			}

			requestPath := normalizeRequestPath(r.URL.Path)
			ctx := r.Context()

			log := loggerOr(ctx, logger)

			reserved, err := repo.Reserve(ctx, idempotencyKey, requestPath, reservationLease)
			if err != nil {
				log.Error("failed to reserve idempotency key", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if !reserved {
				cached, err := repo.Get(ctx, idempotencyKey, requestPath)
				if err != nil {
					log.Error("failed to check idempotency cache", "error", err)
					next.ServeHTTP(w, r)
					return
				}

				if cached == nil || !cached.Completed {
					log.Debug("idempotent request already in progress",
						"key", idempotencyKey,
						"path", requestPath,
					)
					writeConflict(w)
					return
				}

				log.Debug("returning cached idempotent response",
					"key", idempotencyKey,
					"path", requestPath,
					"status", cached.ResponseStatus,
				)
				replay(w, cached)
				return
			}

			capture := newResponseCapture(w)
			next.ServeHTTP(capture, r)

			// The reservation must be settled even if the client went away.
			settleCtx := context.WithoutCancel(ctx)

			if !shouldCacheResponse(capture.statusCode) {
				if err := repo.Release(settleCtx, idempotencyKey, requestPath); err != nil {
					log.Error("failed to release idempotency key",
						"error", err,
						"key", idempotencyKey,
					)
				}
				return
			}

			idemKey := &models.IdempotencyKey{
				Key:            idempotencyKey,
				RequestPath:    requestPath,
				ResponseStatus: capture.statusCode,
				ResponseBody:   capture.body.String(),
				CreatedAt:      time.Now(),
				Completed:      true,
			}

			if err := repo.Complete(settleCtx, idemKey); err != nil {
				log.Error("failed to store idempotency key",
					"error", err,
					"key", idempotencyKey,
				)
			}
		})
	}
}

func replay(w http.ResponseWriter, cached *models.IdempotencyKey) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(replayedHeader, "true")
	if cached.ResponseStatus == http.StatusCreated {
		if location := locationFromBody(cached.RequestPath, cached.ResponseBody); location != "" {
			w.Header().Set("Location", location)
		}
	}
	w.WriteHeader(cached.ResponseStatus)
	//nolint:errcheck // Best effort response writing
	w.Write([]byte(cached.ResponseBody))
}

func writeConflict(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", "1")
	w.WriteHeader(http.StatusConflict)
	//nolint:errcheck // Best effort response writing
	json.NewEncoder(w).Encode(map[string]string{
		"error":   "conflict",
		"message": "a request with this Idempotency-Key is still being processed",
	})
}

func requiresIdempotency(r *http.Request) bool {
	if r.Method != http.MethodPost {
		return false
	}

	for _, path := range idempotentPaths {
		if r.URL.Path == path {
			return true
		}
	}
	return false
}

func normalizeRequestPath(urlPath string) string {
	return strings.TrimSuffix(urlPath, "/")
}

func shouldCacheResponse(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// locationFromBody rebuilds the Location header of a replayed create from
// the stored record's id.
func locationFromBody(requestPath, body string) string {
	var created struct {
		ID *int64 `json:"id"`
	}
	if err := json.Unmarshal([]byte(body), &created); err != nil || created.ID == nil {
		return ""
	}
	return requestPath + "/" + strconv.FormatInt(*created.ID, 10)
}

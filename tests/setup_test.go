//nolint:errcheck // unchecked errors are acceptable in test files
package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/benx421/account-service/internal/config"
	"github.com/benx421/account-service/internal/db"
	"github.com/benx421/account-service/internal/handlers"
	"github.com/stretchr/testify/require"
)

// TestServer wraps the HTTP test server and database for integration tests.
type TestServer struct {
	Server   *httptest.Server
	Database *db.DB
	t        *testing.T
}

// SetupTest creates a new test server with a migrated, empty database.
func SetupTest(t *testing.T) *TestServer {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err, "failed to load config")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	database, err := db.Connect(context.Background(), &cfg.Database, logger)
	require.NoError(t, err, "failed to connect to database")

	require.NoError(t, database.ResetForTest(context.Background()), "failed to reset test data")

	router := handlers.NewRouter(database, cfg, logger)
	server := httptest.NewServer(router)

	return &TestServer{
		Server:   server,
		Database: database,
		t:        t,
	}
}

// Close shuts down the test server and database connection.
func (ts *TestServer) Close() {
	ts.Server.Close()
	_ = ts.Database.Close()
}

// URL returns the full URL for a given path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

// Do sends a request with an optional JSON body and extra headers.
func (ts *TestServer) Do(t *testing.T, method, path string, body any, headers map[string]string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL(path), reader)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

// CreateAccount sends a POST request to create an account.
func (ts *TestServer) CreateAccount(t *testing.T, payload map[string]any) *http.Response {
	t.Helper()
	return ts.Do(t, http.MethodPost, "/accounts", payload, nil)
}

// UpdateAccount sends a PUT request to replace an account.
func (ts *TestServer) UpdateAccount(t *testing.T, id int64, payload map[string]any) *http.Response {
	t.Helper()
	return ts.Do(t, http.MethodPut, fmt.Sprintf("/accounts/%d", id), payload, nil)
}

// GetAccount sends a GET request for a single account.
func (ts *TestServer) GetAccount(t *testing.T, id int64) *http.Response {
	t.Helper()
	return ts.Do(t, http.MethodGet, fmt.Sprintf("/accounts/%d", id), nil, nil)
}

// DeleteAccount sends a DELETE request for a single account.
func (ts *TestServer) DeleteAccount(t *testing.T, id int64) *http.Response {
	t.Helper()
	return ts.Do(t, http.MethodDelete, fmt.Sprintf("/accounts/%d", id), nil, nil)
}

// MustCreate creates an account and returns the decoded record.
func (ts *TestServer) MustCreate(t *testing.T, payload map[string]any) map[string]any {
	t.Helper()

	resp := ts.CreateAccount(t, payload)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	return decodeObject(t, resp)
}

var accountSeq atomic.Int64

// newAccountPayload returns a valid create payload with unique values.
func newAccountPayload() map[string]any {
	n := accountSeq.Add(1)
	return map[string]any{
		"name":         fmt.Sprintf("Account Holder %d", n),
		"email":        fmt.Sprintf("holder%d@example.com", n),
		"address":      fmt.Sprintf("%d Main Street, Springfield", n),
		"phone_number": fmt.Sprintf("555-%04d", n%10000),
		"date_joined":  "2021-06-15",
	}
}

func decodeObject(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func decodeArray(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()

	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func idOf(t *testing.T, record map[string]any) int64 {
	t.Helper()

	id, ok := record["id"].(float64)
	require.True(t, ok, "record has no numeric id: %v", record)
	return int64(id)
}

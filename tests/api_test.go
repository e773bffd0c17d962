//nolint:errcheck // unchecked errors are acceptable in test files
package tests

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountFields = []string{"name", "email", "address", "phone_number", "date_joined"}

func TestIndex(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	resp := ts.Do(t, http.MethodGet, "/", nil, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"name":"Account REST API Service","version":"1.0","paths":"/accounts"}`, string(body))
}

func TestHealth(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	resp := ts.Do(t, http.MethodGet, "/health", nil, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", decodeObject(t, resp)["status"])
}

func TestCreateAccount(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	payload := newAccountPayload()
	resp := ts.CreateAccount(t, payload)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decodeObject(t, resp)
	id := idOf(t, created)
	assert.Equal(t, fmt.Sprintf("/accounts/%d", id), resp.Header.Get("Location"))
	for _, field := range accountFields {
		assert.Equal(t, payload[field], created[field], field)
	}

	location := ts.Do(t, http.MethodGet, resp.Header.Get("Location"), nil, nil)
	defer location.Body.Close()
	assert.Equal(t, http.StatusOK, location.StatusCode)
}

func TestCreateAccount_DefaultsDateJoined(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	payload := newAccountPayload()
	delete(payload, "date_joined")

	created := ts.MustCreate(t, payload)

	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, created["date_joined"])
}

func TestCreateAccount_IgnoresSuppliedID(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	payload := newAccountPayload()
	payload["id"] = 424242

	created := ts.MustCreate(t, payload)

	assert.NotEqual(t, int64(424242), idOf(t, created))
}

func TestCreateAccount_BadRequest(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	resp := ts.CreateAccount(t, map[string]any{"name": "not enough data"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeObject(t, resp)
	assert.Equal(t, "validation_error", body["error"])
	assert.NotEmpty(t, body["message"])
}

func TestCreateAccount_FieldTooLong(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	payload := newAccountPayload()
	payload["name"] = strings.Repeat("n", 65)

	resp := ts.CreateAccount(t, payload)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateAccount_UnsupportedMediaType(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	req, err := http.NewRequest(http.MethodPost, ts.URL("/accounts"), strings.NewReader("name=x"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "text/plain")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	assert.Equal(t, "unsupported_media_type", decodeObject(t, resp)["error"])
}

func TestCreateAccount_IdempotentReplay(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	headers := map[string]string{"Idempotency-Key": "create-once"}
	payload := newAccountPayload()

	first := ts.Do(t, http.MethodPost, "/accounts", payload, headers)
	defer first.Body.Close()
	require.Equal(t, http.StatusCreated, first.StatusCode)
	firstBody := decodeObject(t, first)

	second := ts.Do(t, http.MethodPost, "/accounts", payload, headers)
	defer second.Body.Close()
	require.Equal(t, http.StatusCreated, second.StatusCode)
	assert.Equal(t, "true", second.Header.Get("X-Idempotent-Replayed"))
	assert.Equal(t, first.Header.Get("Location"), second.Header.Get("Location"))
	assert.Equal(t, firstBody, decodeObject(t, second))

	list := ts.Do(t, http.MethodGet, "/accounts", nil, nil)
	defer list.Body.Close()
	assert.Len(t, decodeArray(t, list), 1)
}

func TestCreateAccount_ConcurrentSameIdempotencyKey(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	const workers = 8

	headers := map[string]string{"Idempotency-Key": "create-concurrently"}
	payload := newAccountPayload()

	var wg sync.WaitGroup
	statuses := make(chan int, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := ts.Do(t, http.MethodPost, "/accounts", payload, headers)
			defer resp.Body.Close()
			io.Copy(io.Discard, resp.Body)
			statuses <- resp.StatusCode
		}()
	}

	wg.Wait()
	close(statuses)

	created := 0
	for status := range statuses {
		switch status {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
		default:
			t.Errorf("unexpected status %d", status)
		}
	}
	assert.GreaterOrEqual(t, created, 1)

	list := ts.Do(t, http.MethodGet, "/accounts", nil, nil)
	defer list.Body.Close()
	assert.Len(t, decodeArray(t, list), 1, "a shared key must create exactly one account")
}

// TestGetAccount creates an account, then reads it back by id.
func TestGetAccount(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	payload := newAccountPayload()
	created := ts.MustCreate(t, payload)
	id := idOf(t, created)

	resp := ts.GetAccount(t, id)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeObject(t, resp)
	assert.Equal(t, id, idOf(t, got))
	assert.Equal(t, payload["name"], got["name"])
}

func TestReadRoundTrip(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	for range 5 {
		payload := newAccountPayload()
		created := ts.MustCreate(t, payload)

		resp := ts.GetAccount(t, idOf(t, created))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		got := decodeObject(t, resp)
		resp.Body.Close()

		assert.Equal(t, created, got)
		for _, field := range accountFields {
			assert.Equal(t, payload[field], got[field], field)
		}
	}
}

func TestGetAccount_NotFound(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	resp := ts.GetAccount(t, 99999)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeObject(t, resp)
	assert.Equal(t, "not_found", body["error"])
	assert.Contains(t, body["message"], "99999")
}

func TestAccountIDBeyondInt32(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	const id = int64(3000000000)

	read := ts.GetAccount(t, id)
	defer read.Body.Close()
	assert.Equal(t, http.StatusNotFound, read.StatusCode)

	update := ts.UpdateAccount(t, id, newAccountPayload())
	defer update.Body.Close()
	assert.Equal(t, http.StatusNotFound, update.StatusCode)

	del := ts.DeleteAccount(t, id)
	defer del.Body.Close()
	assert.Equal(t, http.StatusNoContent, del.StatusCode)
}

func TestGetAccount_NonIntegerID(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	resp := ts.Do(t, http.MethodGet, "/accounts/abc", nil, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListAccounts(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	empty := ts.Do(t, http.MethodGet, "/accounts", nil, nil)
	require.Equal(t, http.StatusOK, empty.StatusCode)
	assert.Empty(t, decodeArray(t, empty))
	empty.Body.Close()

	for range 3 {
		ts.MustCreate(t, newAccountPayload())
	}

	resp := ts.Do(t, http.MethodGet, "/accounts", nil, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	records := decodeArray(t, resp)
	require.Len(t, records, 3)
	for i := 1; i < len(records); i++ {
		assert.Less(t, idOf(t, records[i-1]), idOf(t, records[i]), "records are ordered by id")
	}
}

func TestUpdateAccount(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	created := ts.MustCreate(t, newAccountPayload())
	id := idOf(t, created)

	update := map[string]any{
		"name":         "Something Known",
		"email":        "known@example.com",
		"address":      created["address"],
		"phone_number": created["phone_number"],
	}

	first := ts.UpdateAccount(t, id, update)
	defer first.Body.Close()
	require.Equal(t, http.StatusOK, first.StatusCode)
	firstBody := decodeObject(t, first)

	assert.Equal(t, id, idOf(t, firstBody))
	assert.Equal(t, "Something Known", firstBody["name"])
	assert.Equal(t, "known@example.com", firstBody["email"])
	assert.Equal(t, created["date_joined"], firstBody["date_joined"], "omitted date_joined keeps the stored value")

	second := ts.UpdateAccount(t, id, update)
	defer second.Body.Close()
	require.Equal(t, http.StatusOK, second.StatusCode)
	assert.Equal(t, firstBody, decodeObject(t, second), "repeating an update yields the same record")

	read := ts.GetAccount(t, id)
	defer read.Body.Close()
	assert.Equal(t, firstBody, decodeObject(t, read))
}

func TestUpdateAccount_PathIDWins(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	target := ts.MustCreate(t, newAccountPayload())
	other := ts.MustCreate(t, newAccountPayload())

	update := newAccountPayload()
	update["id"] = other["id"]

	resp := ts.UpdateAccount(t, idOf(t, target), update)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, idOf(t, target), idOf(t, decodeObject(t, resp)))

	untouched := ts.GetAccount(t, idOf(t, other))
	defer untouched.Body.Close()
	assert.Equal(t, other, decodeObject(t, untouched))
}

func TestUpdateAccount_NotFound(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	resp := ts.UpdateAccount(t, 0, newAccountPayload())
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateAccount_NotFoundBeforeValidation(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	resp := ts.UpdateAccount(t, 99999, map[string]any{"name": "only a name"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateAccount_BadRequest(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	created := ts.MustCreate(t, newAccountPayload())

	resp := ts.UpdateAccount(t, idOf(t, created), map[string]any{"name": "only a name"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateAccount_UnsupportedMediaType(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	created := ts.MustCreate(t, newAccountPayload())

	req, err := http.NewRequest(http.MethodPut, ts.URL(fmt.Sprintf("/accounts/%d", idOf(t, created))), strings.NewReader("name=x"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "text/html")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestDeleteAccount(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	created := ts.MustCreate(t, newAccountPayload())
	id := idOf(t, created)

	resp := ts.DeleteAccount(t, id)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body)

	read := ts.GetAccount(t, id)
	defer read.Body.Close()
	assert.Equal(t, http.StatusNotFound, read.StatusCode)

	again := ts.DeleteAccount(t, id)
	defer again.Body.Close()
	assert.Equal(t, http.StatusNoContent, again.StatusCode, "deleting an absent account still succeeds")
}

func TestConcurrentCreates(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	const workers = 10

	var wg sync.WaitGroup
	ids := make(chan int64, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := ts.CreateAccount(t, newAccountPayload())
			defer resp.Body.Close()
			if resp.StatusCode == http.StatusCreated {
				ids <- idOf(t, decodeObject(t, resp))
			}
		}()
	}

	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}

func TestRequestIDEchoed(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	resp := ts.Do(t, http.MethodGet, "/accounts", nil, map[string]string{"X-Request-ID": "e2e-trace"})
	defer resp.Body.Close()

	assert.Equal(t, "e2e-trace", resp.Header.Get("X-Request-ID"))
}

func TestDocsServed(t *testing.T) {
	ts := SetupTest(t)
	defer ts.Close()

	resp := ts.Do(t, http.MethodGet, "/docs/openapi", nil, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, decodeObject(t, resp)["paths"], "/accounts/{id}")
}

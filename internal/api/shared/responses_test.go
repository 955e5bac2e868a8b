package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/mart-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRespondWithData(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/branch/1", nil)

	t.Run("with message and data", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RespondWithData(rec, req, http.StatusCreated, "Branch created successfully", map[string]any{"id": 1})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, map[string]any{
			"status":      "success",
			"message":     "Branch created successfully",
			"data":        map[string]any{"id": float64(1)},
			"status_code": float64(201),
		}, decodeBody(t, rec))
	})

	t.Run("message only", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RespondWithData(rec, req, http.StatusOK, "Successfully logged out", nil)

		body := decodeBody(t, rec)
		assert.NotContains(t, body, "data")
		assert.Equal(t, "Successfully logged out", body["message"])
	})
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/products/5", nil)
	rec := httptest.NewRecorder()

	RespondWithError(rec, req, http.StatusNotFound, "Product not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{
		"status":      "error",
		"error":       "Product not found",
		"status_code": float64(404),
	}, decodeBody(t, rec))
}

func TestRespondWithValidationErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/categories", nil)
	rec := httptest.NewRecorder()

	RespondWithValidationErrors(rec, req, map[string]string{"name": "The name field is required."})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, map[string]any{
		"status":      "error",
		"errors":      map[string]any{"name": "The name field is required."},
		"status_code": float64(422),
	}, decodeBody(t, rec))
}

func TestRespondWithErrorAndLog(t *testing.T) {
	logBuf, log := logger.SetupTestLogger(t)

	req := httptest.NewRequest(http.MethodGet, "/staff", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), log))
	rec := httptest.NewRecorder()

	err := errors.New("dial postgres://mart:hunter2@db:5432/mart failed")
	RespondWithErrorAndLog(rec, req, http.StatusInternalServerError, "An unexpected error occurred", err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "An unexpected error occurred", body["error"])
	assert.NotContains(t, rec.Body.String(), "postgres://")

	entries, parseErr := logBuf.GetLogEntries()
	require.NoError(t, parseErr)
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1]
	assert.Equal(t, "ERROR", last["level"])
	assert.NotContains(t, logBuf.String(), "hunter2")
}

func TestRespondWithErrorAndLogLevels(t *testing.T) {
	logBuf, log := logger.SetupTestLogger(t)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), log))

	RespondWithErrorAndLog(httptest.NewRecorder(), req, http.StatusUnauthorized, "Unauthorized", nil)
	RespondWithErrorAndLog(httptest.NewRecorder(), req, http.StatusUnauthorized, "Unauthorized", nil, WithElevatedLogLevel())

	entries, err := logBuf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "DEBUG", entries[0]["level"])
	assert.Equal(t, "WARN", entries[1]["level"])
}

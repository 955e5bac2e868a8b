package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/mart-api/internal/platform/logger"
	"github.com/phrazzld/mart-api/internal/redact"
)

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// SuccessResponse is the envelope of every successful resource response.
type SuccessResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	Data       any    `json:"data,omitempty"`
	StatusCode int    `json:"status_code"`
}

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
}

// ValidationErrorResponse carries one message per invalid field.
type ValidationErrorResponse struct {
	Status     string            `json:"status"`
	Errors     map[string]string `json:"errors"`
	StatusCode int               `json:"status_code"`
}

// ResponseOption defines a function to customize response behavior.
type ResponseOption func(*responseOptions)

type responseOptions struct {
	elevateLogLevel bool
}

// WithElevatedLogLevel returns a ResponseOption that raises 4xx errors to WARN level
// instead of the default DEBUG level.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context()).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithData writes a success envelope. message and data are omitted
// when empty.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	RespondWithJSON(w, r, status, SuccessResponse{
		Status:     StatusSuccess,
		Message:    message,
		Data:       data,
		StatusCode: status,
	})
}

// RespondWithValidationErrors writes the 422 envelope.
func RespondWithValidationErrors(w http.ResponseWriter, r *http.Request, errs map[string]string) {
	logger.FromContextOrDefault(r.Context()).Debug("validation failed",
		"path", r.URL.Path,
		"fields", len(errs))

	RespondWithJSON(w, r, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Status:     StatusError,
		Errors:     errs,
		StatusCode: http.StatusUnprocessableEntity,
	})
}

// RespondWithError writes a JSON error response with the given status code and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logger.FromContextOrDefault(r.Context()).Debug("sending error response",
		"status_code", status,
		"message", message,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{
		Status:     StatusError,
		Error:      message,
		StatusCode: status,
	})
}

// RespondWithErrorAndLog writes a JSON error response and also logs the detailed error.
// The client only ever sees userMessage; err is redacted before it is logged.
//
// 5xx errors are logged at ERROR, 4xx at DEBUG unless WithElevatedLogLevel is given.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	logAttrs := []slog.Attr{
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	responseOpts := responseOptions{}
	for _, opt := range opts {
		opt(&responseOpts)
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	} else if responseOpts.elevateLogLevel && status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}

	logger.FromContextOrDefault(r.Context()).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Status:     StatusError,
		Error:      userMessage,
		StatusCode: status,
	})
}

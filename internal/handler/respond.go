package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/templui/piggypanic/internal/ctxkeys"
	"github.com/templui/piggypanic/internal/repository"
	"github.com/templui/piggypanic/internal/savings"
	"github.com/templui/piggypanic/internal/service"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v before sending the status line, so a value that
// cannot be encoded turns into a 500 instead of an empty success.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorResponse{Error: errorDetail{Code: "internal_error", Message: err.Error()}})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(append(body, '\n'))
	if err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// decodeJSON reads a JSON body into v, rejecting unknown fields and
// trailing data.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	err := dec.Decode(v)
	if err == nil && dec.Decode(&struct{}{}) != io.EOF {
		err = errors.New("unexpected data after JSON body")
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "request body must be a single JSON object")
		return false
	}
	return true
}

// sentinel maps domain errors to HTTP status and error code.
type sentinel struct {
	err    error
	status int
	code   string
}

var sentinels = []sentinel{
	{savings.ErrInvalidInput, http.StatusUnprocessableEntity, "invalid_input"},
	{savings.ErrUnrecognizedFrequency, http.StatusUnprocessableEntity, "unrecognized_frequency"},
	{savings.ErrInsufficientBalance, http.StatusConflict, "insufficient_balance"},
	{repository.ErrDuplicateEmail, http.StatusConflict, "email_taken"},
	{repository.ErrGoalNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrUserNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrProfileNotFound, http.StatusNotFound, "not_found"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{service.ErrInvalidResetToken, http.StatusUnprocessableEntity, "invalid_token"},
	{service.ErrInvalidCurrentPassword, http.StatusUnprocessableEntity, "invalid_current_password"},
	{service.ErrStorageDisabled, http.StatusNotImplemented, "not_implemented"},
}

// respondError writes err as an API error. Unknown errors are collaborator
// failures: logged, and passed to the caller with their message unchanged.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	for _, s := range sentinels {
		if errors.Is(err, s.err) {
			writeError(w, s.status, s.code, errorMessage(err, s.err))
			return
		}
	}

	slog.Error("request failed",
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", ctxkeys.RequestID(r.Context()),
		"user_id", ctxkeys.UserID(r.Context()),
	)

	writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
}

// errorMessage drops everything up to and including the sentinel text, so
// "failed to check in: invalid input: amount is required" reads
// "amount is required".
func errorMessage(err, target error) string {
	msg := err.Error()
	prefix := target.Error() + ": "
	if i := strings.LastIndex(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return target.Error()
}

// NotFound answers unknown routes in the API error format.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not_found", "no such endpoint")
}

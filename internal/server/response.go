package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/horae/internal/lib/apperr"
	"github.com/UnknownOlympus/horae/internal/lib/logger/sl"
)

const msgInternal = "Internal server error"

// Response is the envelope of every API reply.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK wraps a successful result.
func OK[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: &data}
}

// Fail wraps an error message.
func Fail(message string) Response[struct{}] {
	return Response[struct{}]{Success: false, Message: message}
}

func writeJSON[T any](writer http.ResponseWriter, log *slog.Logger, status int, body Response[T]) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	if err := json.NewEncoder(writer).Encode(body); err != nil {
		log.Error("Failed to write response", sl.Err(err))
	}
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(writer http.ResponseWriter, req *http.Request, log *slog.Logger, err error) {
	status := statusFor(err)

	message, ok := apperr.Message(err)
	if !ok || status == http.StatusInternalServerError {
		log.ErrorContext(req.Context(), "Request failed", "method", req.Method, "path", req.URL.Path, sl.Err(err))
		message = msgInternal
	}

	writeJSON(writer, log, status, Fail(message))
}

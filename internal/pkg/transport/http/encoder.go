package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ijalalfrz/hotel-price-query-service/internal/app/dto"
	"github.com/ijalalfrz/hotel-price-query-service/internal/pkg/exception"
)

// FallbackErrorMessage is shown when an error carries no message of its own.
const FallbackErrorMessage = "An unknown error occurred."

// ResponseWithBody is the common method to encode all response types to the client.
func ResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

// ErrorResponse encodes the error response to the client. it will check if it's a sentinel error or unknown error.
// Every failure has the same {"success":false,"error":...} shape.
func ErrorResponse(ctx context.Context, err error, respWriter http.ResponseWriter) {
	var (
		appErr     exception.ApplicationError
		message    string
		statusCode int
	)

	if errors.As(err, &appErr) {
		statusCode = appErr.StatusCode
		message = appErr.Message

		if statusCode >= http.StatusInternalServerError {
			slog.ErrorContext(ctx, message, slog.Any("error", err))
		}
	} else {
		statusCode = http.StatusInternalServerError
		message = err.Error()

		slog.ErrorContext(ctx, message, slog.Any("error", err))
	}

	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}

	if message == "" {
		message = FallbackErrorMessage
	}

	respWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
	respWriter.WriteHeader(statusCode)

	//nolint:errcheck,errchkjson
	json.NewEncoder(respWriter).Encode(dto.ErrorResponse{
		Success: false,
		Error:   message,
	})
}

package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/ijalalfrz/hotel-price-query-service/internal/pkg/logger"
)

type MiddlewareFunc func(http.Handler) http.Handler

var (
	corsAllowedMethods = []string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
	}
	corsAllowedHeaders = []string{"Content-Type", "Authorization"}
)

func Recoverer(logger *slog.Logger) MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if err, _ := rvr.(error); errors.Is(err, http.ErrAbortHandler) {
						// we don't recover http.ErrAbortHandler so the response
						// to the client is aborted, this should not be logged
						panic(rvr)
					}

					logger.ErrorContext(req.Context(), "panic occurred", slog.Any("message", rvr), slog.String("stack_trace", string(debug.Stack())))
					ErrorResponse(req.Context(), errors.New(FallbackErrorMessage), respWriter)
				}
			}()

			next.ServeHTTP(respWriter, req)
		})
	}
}

// CORSMiddleware allows any origin, the search form may be served from anywhere.
func CORSMiddleware() func(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: corsAllowedMethods,
		AllowedHeaders: corsAllowedHeaders,
	})
}

// Preflight answers every OPTIONS request with an empty 200, including the
// ones without Access-Control-Request-Method that CORSMiddleware passes on.
func Preflight() MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			headers := w.Header()
			if headers.Get("Access-Control-Allow-Origin") == "" {
				headers.Set("Access-Control-Allow-Origin", "*")
			}
			headers.Set("Access-Control-Allow-Methods", strings.Join(corsAllowedMethods, ","))
			headers.Set("Access-Control-Allow-Headers", strings.Join(corsAllowedHeaders, ", "))

			w.WriteHeader(http.StatusOK)
		})
	}
}

// RequestID add request id to context and response header.
func RequestID() MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-Id")
			if requestID == "" {
				requestID = uuid.New().String()
			}

			ctx := context.WithValue(r.Context(), logger.RequestIDKey, requestID)
			w.Header().Set("X-Request-Id", requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

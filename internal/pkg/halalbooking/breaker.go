package halalbooking

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ijalalfrz/hotel-price-query-service/internal/pkg/exception"
	"github.com/sony/gobreaker"
)

// StatusError is the cause attached to a non-2xx upstream response.
type StatusError struct {
	StatusCode int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("upstream responded %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// BreakerConfig trips the breaker after MaxFailures consecutive upstream
// failures and probes again after Timeout. MaxFailures <= 0 disables it.
type BreakerConfig struct {
	MaxFailures int
	Timeout     time.Duration
}

func newCircuitBreaker(name string, config BreakerConfig) *gobreaker.CircuitBreaker {
	if config.MaxFailures <= 0 {
		return nil
	}

	maxFailures := uint32(config.MaxFailures) //nolint:gosec

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
		IsSuccessful: isBreakerSuccess,
	})
}

// isBreakerSuccess counts only network errors and upstream 5xx as failures,
// a 4xx means the upstream is alive.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}

	var statusErr StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode < http.StatusInternalServerError
	}

	return false
}

func breakerError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return exception.Internal(fmt.Sprintf("API request failed: %v", err), err)
	}

	return err
}

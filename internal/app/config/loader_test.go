//go:build unit

package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, slog.LevelInfo, cfg.LogLevel.Level())
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 60*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "https://tr.halalbooking.com/api/v2/tr", cfg.HalalBooking.BaseURL)
	assert.Equal(t, "Turkey", cfg.HalalBooking.Location)
	assert.Equal(t, 30*time.Second, cfg.HalalBooking.Timeout)
	assert.Equal(t, 5, cfg.HalalBooking.BreakerMaxFailures)
	assert.Equal(t, 30*time.Second, cfg.HalalBooking.BreakerTimeout)
	assert.Empty(t, cfg.Redis.Addr)

	if diff := cmp.Diff(DefaultHotels, cfg.Hotels); diff != "" {
		t.Fatalf("hotels mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HALALBOOKING_PARTNER_CODE", "partner")
	t.Setenv("HALALBOOKING_SECRET_KEY", "secret")
	t.Setenv("HALALBOOKING_TIMEOUT", "5s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("HOTEL_CATALOG", `[{"id":10,"name":"Test Hotel","location":"Antalya"}]`)

	cfg, err := LoadConfig("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.LogLevel.Level())
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "partner", cfg.HalalBooking.PartnerCode)
	assert.Equal(t, "secret", cfg.HalalBooking.SecretKey)
	assert.Equal(t, 5*time.Second, cfg.HalalBooking.Timeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)

	want := []Hotel{{ID: 10, Name: "Test Hotel", Location: "Antalya"}}
	if diff := cmp.Diff(want, cfg.Hotels); diff != "" {
		t.Fatalf("hotels mismatch (-want +got):\n%s", diff)
	}
}

func TestLogLeveler_Level(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, LogLeveler("warn").Level())
	assert.Equal(t, slog.LevelInfo, LogLeveler("nonsense").Level())
}

package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel     LogLeveler   `mapstructure:"LOG_LEVEL"`
	LogFormat    string       `mapstructure:"LOG_FORMAT"`
	HTTP         HTTP         `mapstructure:",squash"`
	HalalBooking HalalBooking `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	Hotels       []Hotel      `mapstructure:"HOTEL_CATALOG"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

// HalalBooking holds the upstream booking API configuration. Credentials are
// passed through as is, an empty value is rejected by the upstream itself.
type HalalBooking struct {
	BaseURL     string        `mapstructure:"HALALBOOKING_BASE_URL"`
	PartnerCode string        `mapstructure:"HALALBOOKING_PARTNER_CODE"`
	SecretKey   string        `mapstructure:"HALALBOOKING_SECRET_KEY"`
	Location    string        `mapstructure:"HALALBOOKING_LOCATION"`
	Timeout     time.Duration `mapstructure:"HALALBOOKING_TIMEOUT"`

	BreakerMaxFailures int           `mapstructure:"HALALBOOKING_BREAKER_MAX_FAILURES"`
	BreakerTimeout     time.Duration `mapstructure:"HALALBOOKING_BREAKER_TIMEOUT"`
}

// Redis is optional, an empty address disables the catalog overlay.
type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

type Hotel struct {
	ID       int    `mapstructure:"id"`
	Name     string `mapstructure:"name"`
	Location string `mapstructure:"location"`
}

// DefaultHotels is the catalog shown in the search form when HOTEL_CATALOG is not set.
var DefaultHotels = []Hotel{
	{ID: 227, Name: "Wome Deluxe"},
	{ID: 2, Name: "Adenya Resort"},
	{ID: 31, Name: "Angels Marmaris"},
	{ID: 8729, Name: "The Oba"},
	{ID: 135, Name: "Adin Beach"},
	{ID: 1, Name: "Bera Alanya"},
	{ID: 325448, Name: "Rizom Beach"},
	{ID: 142, Name: "Selge Beach"},
	{ID: 465835, Name: "Royal Teos"},
	{ID: 716488, Name: "Rizom Tatil Köyü"},
	{ID: 716355, Name: "Zeyda Kemer"},
	{ID: 716356, Name: "Zeyda Lara"},
}

package config

import (
	"encoding/json"
	"log/slog"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

var defaults = map[string]any{
	"LOG_LEVEL":             "info",
	"LOG_FORMAT":            "json",
	"HTTP_PORT":             8080,
	"HTTP_TIMEOUT":          "60s",
	"HALALBOOKING_BASE_URL": "https://tr.halalbooking.com/api/v2/tr",
	"HALALBOOKING_LOCATION": "Turkey",
	"HALALBOOKING_TIMEOUT":  "30s",

	"HALALBOOKING_BREAKER_MAX_FAILURES": 5,
	"HALALBOOKING_BREAKER_TIMEOUT":      "30s",
	"REDIS_TIMEOUT":         "500ms",
}

// MustInitConfig initializes configuration from .env file or environment variables.
// If configFile exists, it loads from the file. Otherwise, it automatically binds
// environment variables based on the Config struct's mapstructure tags.
func MustInitConfig(configFile string) Config {
	cfg, err := LoadConfig(configFile)
	if err != nil {
		slog.Error("cannot unmarshal config", slog.String("error", err.Error()))
		panic(err)
	}

	return cfg
}

// LoadConfig is MustInitConfig without the panic. A missing config file is not
// an error, environment variables and defaults are used instead.
func LoadConfig(configFile string) (Config, error) {
	var (
		vpr = viper.New()
		cfg Config
	)

	for key, value := range defaults {
		vpr.SetDefault(key, value)
	}

	vpr.AutomaticEnv()

	if configFile != "" {
		vpr.SetConfigFile(configFile)
		vpr.SetConfigType("env")

		if err := vpr.ReadInConfig(); err != nil {
			slog.Warn("config file not found or cannot be read, using environment variables",
				slog.String("file", configFile),
				slog.String("error", err.Error()))
		} else {
			slog.Info("config file loaded successfully", slog.String("file", configFile))
		}
	}

	bindEnvFromType(vpr, reflect.TypeOf(Config{}))

	if err := vpr.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	if len(cfg.Hotels) == 0 {
		cfg.Hotels = DefaultHotels
	}

	return cfg, nil
}

// bindEnvFromType binds every mapstructure tag of t as an environment variable.
// Struct and slice-of-struct fields accept a JSON string, e.g. HOTEL_CATALOG.
func bindEnvFromType(vpr *viper.Viper, t reflect.Type) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" || tag == "-" {
			if field.Anonymous && field.Type.Kind() == reflect.Struct {
				bindEnvFromType(vpr, field.Type)
			}
			continue
		}

		parts := strings.Split(tag, ",")
		envVar := parts[0]

		if hasSquash(parts[1:]) && field.Type.Kind() == reflect.Struct {
			bindEnvFromType(vpr, field.Type)
			continue
		}

		if envVar == "" {
			continue
		}

		_ = vpr.BindEnv(envVar)

		if isStructLike(field.Type) {
			if s, ok := vpr.Get(envVar).(string); ok && s != "" {
				var jsonVal interface{}
				if err := json.Unmarshal([]byte(s), &jsonVal); err == nil {
					vpr.Set(envVar, jsonVal)
				} else {
					slog.Warn("config value is not valid JSON",
						slog.String("key", envVar),
						slog.String("error", err.Error()))
				}
			}
		}
	}
}

func hasSquash(opts []string) bool {
	for _, opt := range opts {
		if strings.TrimSpace(opt) == "squash" {
			return true
		}
	}

	return false
}

func isStructLike(t reflect.Type) bool {
	return t.Kind() == reflect.Struct ||
		(t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Struct)
}

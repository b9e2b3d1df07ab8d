package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ijalalfrz/hotel-price-query-service/internal/app/config"
	"github.com/ijalalfrz/hotel-price-query-service/internal/app/dto"
	"github.com/ijalalfrz/hotel-price-query-service/internal/app/endpoints"
	"github.com/ijalalfrz/hotel-price-query-service/internal/app/service"
	"github.com/ijalalfrz/hotel-price-query-service/internal/app/transport"
	"github.com/ijalalfrz/hotel-price-query-service/internal/pkg/halalbooking"
	"github.com/ijalalfrz/hotel-price-query-service/internal/pkg/hotel"
	"github.com/ijalalfrz/hotel-price-query-service/internal/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// @title           Hotel Price Query Service API
// @version         0.0.1
// @description     hotel-price-query-service
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel, cfg.LogFormat)

	slog.Debug("config loaded successfully",
		slog.String("log_level", string(cfg.LogLevel)),
		slog.Int("http_port", cfg.HTTP.Port),
		slog.String("halalbooking_base_url", cfg.HalalBooking.BaseURL),
		slog.Bool("redis_enabled", cfg.Redis.Addr != ""),
		slog.Int("catalog_size", len(cfg.Hotels)))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts, closeFn := makeEndpoints(ctx, &cfg)
	defer closeFn()

	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) (endpoints.Endpoints, func()) {
	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	catalog, closeFn := initHotelCatalog(ctx, cfg)

	client := halalbooking.NewClient(halalbooking.ClientConfig{
		BaseURL:     cfg.HalalBooking.BaseURL,
		Location:    cfg.HalalBooking.Location,
		PartnerCode: cfg.HalalBooking.PartnerCode,
		SecretKey:   cfg.HalalBooking.SecretKey,
		Timeout:     cfg.HalalBooking.Timeout,
		Breaker: halalbooking.BreakerConfig{
			MaxFailures: cfg.HalalBooking.BreakerMaxFailures,
			Timeout:     cfg.HalalBooking.BreakerTimeout,
		},
	})

	hotelService := service.NewHotelService(client, catalog)

	return endpoints.Endpoints{
		HotelEndpoint: endpoints.MakeHotelEndpoint(hotelService),
	}, closeFn
}

// redis is only used when REDIS_ADDR is set
func initHotelCatalog(ctx context.Context, cfg *config.Config) (*hotel.Catalog, func()) {
	hotels := make([]dto.Hotel, len(cfg.Hotels))
	for i, h := range cfg.Hotels {
		hotels[i] = dto.Hotel{ID: h.ID, Name: h.Name, Location: h.Location}
	}

	if cfg.Redis.Addr == "" {
		return hotel.NewCatalog(hotels, nil), func() {}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.WarnContext(ctx, "redis not reachable, hotel names fall back to the static catalog",
			slog.String("addr", cfg.Redis.Addr), slog.String("error", err.Error()))
	}

	return hotel.NewCatalog(hotels, redisClient), func() {
		if err := redisClient.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close redis client", slog.String("error", err.Error()))
		}
	}
}

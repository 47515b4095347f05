package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ecolinkdev/ecolink-back/api/routes"
	"github.com/ecolinkdev/ecolink-back/internal/auth"
	"github.com/ecolinkdev/ecolink-back/internal/collections"
	"github.com/ecolinkdev/ecolink-back/internal/cooperatives"
	"github.com/ecolinkdev/ecolink-back/internal/users"
	"github.com/ecolinkdev/ecolink-back/pkg/config"
	"github.com/ecolinkdev/ecolink-back/pkg/db"
	"github.com/ecolinkdev/ecolink-back/pkg/geocode"
	"github.com/ecolinkdev/ecolink-back/pkg/logger"
	"github.com/ecolinkdev/ecolink-back/pkg/metrics"
	"github.com/ecolinkdev/ecolink-back/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	geocoder := geocode.NewClient(
		cfg.Geocoder,
		logg,
		geocode.WithMetrics(metrics.NewGeocoderMetrics(prometheus.DefaultRegisterer)),
	)

	userRepo := users.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:  userRepo,
		JWTConfig: cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	usersService, err := users.NewService(users.ServiceParams{
		Repo:           userRepo,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	collectionsService, err := collections.NewService(collections.ServiceParams{
		Repo:     collections.NewRepository(dbClient.DB()),
		Geocoder: geocoder,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create collections service", err)
		os.Exit(1)
	}

	cooperativesService, err := cooperatives.NewService(cooperatives.ServiceParams{
		Repo:     cooperatives.NewRepository(dbClient.DB()),
		Geocoder: geocoder,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cooperatives service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			authService,
			usersService,
			collectionsService,
			cooperativesService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

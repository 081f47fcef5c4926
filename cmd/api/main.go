package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"donatehub/internal/adapter/repo"
	"donatehub/internal/http/handlers"
	"donatehub/internal/http/httpapi"
	"donatehub/internal/infra"
	"donatehub/internal/infra/geoip"
	"donatehub/internal/middleware"
	"donatehub/internal/security"
	"donatehub/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	// Optional GeoIP country resolver for access logs.
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	var lookup middleware.CountryLookup
	if resolver != nil {
		lookup = resolver.CountryCode
	}

	users := repo.NewUserRepository(dbpool)
	campaigns := repo.NewCampaignRepository(dbpool)
	donations := repo.NewDonationRepository(dbpool)

	hasher := security.NewPasswordHasher(security.DefaultArgon2Params())
	tokens := security.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	app := handlers.NewApp(
		service.NewIdentityService(users, hasher, tokens),
		service.NewCampaignService(campaigns),
		service.NewLedger(campaigns, donations, users, logger),
		service.NewReportService(campaigns, donations),
		logger,
	)

	router := httpapi.NewRouter(app, httpapi.Options{
		Verifier:        tokens,
		Logger:          logger,
		CORSOrigins:     cfg.CORSOrigins,
		DefaultLocale:   cfg.DefaultLocale,
		CountryLookup:   lookup,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

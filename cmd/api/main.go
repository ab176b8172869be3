package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/saberviver/mentorship-api/internal/api"
	"github.com/saberviver/mentorship-api/internal/core/ports"
	"github.com/saberviver/mentorship-api/internal/infrastructure/config"
	"github.com/saberviver/mentorship-api/internal/infrastructure/db/memory"
	mongodb "github.com/saberviver/mentorship-api/internal/infrastructure/db/mongo"
	redisdb "github.com/saberviver/mentorship-api/internal/infrastructure/db/redis"
	"github.com/saberviver/mentorship-api/pkg/logger"
)

// @title           Saber Viver Mentorship API
// @version         1.0
// @description     Marketplace API connecting mentors with learners who book paid lessons.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "saberviver-dev-secret"
		log.Warn().Msg("JWT_SECRET not set, using development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := api.Dependencies{
		Config:   cfg,
		Logger:   log,
		Bookings: memory.NewBookingRepository(),
	}

	creds, err := memory.NewCredentialRepository()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build credential table")
	}
	deps.Credentials = creds

	// Session store: Redis when configured, process memory otherwise.
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()

		deps.Redis = rdb
		deps.Sessions = redisdb.NewSessionStore(rdb, cfg.SessionTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("sessions backed by redis")
	} else {
		deps.Sessions = memory.NewSessionStore()
		log.Info().Msg("sessions kept in process memory")
	}

	// Mentor catalog: Mongo when configured, static dataset otherwise.
	var mentors ports.MentorRepository = memory.NewMentorRepository()
	if cfg.Mongo.URI != "" {
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		deps.Mongo = db
		mentors = mongodb.NewMentorRepository(db)
		log.Info().Str("database", cfg.Mongo.Database).Msg("catalog backed by mongodb")
	}
	deps.Mentors = mentors

	e := api.NewRouter(deps)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

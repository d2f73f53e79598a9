// Package main is the entry point for the bookstore API server.
package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bookstore/bookstore-api/internal/api"
	"github.com/bookstore/bookstore-api/internal/core/service"
	"github.com/bookstore/bookstore-api/internal/infrastructure/config"
	mongodb "github.com/bookstore/bookstore-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bookstore/bookstore-api/internal/infrastructure/db/redis"
	"github.com/bookstore/bookstore-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Bookstore API
// @version      1.0
// @description  Book catalog with JWT authentication and role-based authorization.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		// Tokens issued before a restart will not verify against a fresh key;
		// set JWT_SECRET to keep sessions across redeploys.
		cfg.JWTSecret = randomSecret()
		log.Warn().Msg("JWT_SECRET not set; generated a random per-process signing key")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := mongodb.NewBookRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create book indexes")
	}

	if err := service.EnsureAdminAccount(ctx, mongodb.NewUserRepository(db), cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin account")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting bookstore API")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// randomSecret generates a 256-bit signing key for single-process use.
func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate signing key: " + err.Error())
	}
	return base64.StdEncoding.EncodeToString(b)
}

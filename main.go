package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rpupo63/corporate-site-backend/api"
	"github.com/rpupo63/corporate-site-backend/config"
	"github.com/rpupo63/corporate-site-backend/database"
	"github.com/rpupo63/corporate-site-backend/services"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped with error")
	}
}

func run() error {
	loaded := config.Load()
	cfg := config.New()
	setupLogging(cfg)

	log.Info().Strs("envFiles", loaded).Msg("Initializing app...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	db := database.NewSelector(database.Options{
		URL:        config.GetString(cfg, "DATABASE_URL", ""),
		ReplicaURL: config.GetString(cfg, "DATABASE_REPLICA_URL", ""),
	}, database.Open).Resolve(connectCtx)
	cancel()
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing database")
		}
	}()

	images, err := services.NewImageStorage(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Msg("Image storage unavailable, uploads will be returned inline")
		images = services.NewInlineImageStorage()
	}

	server, err := api.NewServer(cfg, api.Dependencies{
		Blog:       services.NewBlogService(db),
		Images:     images,
		Newsletter: services.NewNewsletterService(cfg),
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("mode", string(db.Mode())).
		Str("imageStorage", images.Backend()).
		Msg("Blog backend ready")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Closing server")
		return server.ShutdownGracefully(shutdownTimeout)
	})

	return g.Wait()
}

// setupLogging switches to console output when LOG_FORMAT=console and applies LOG_LEVEL
func setupLogging(cfg map[string]string) {
	zerolog.TimeFieldFormat = time.RFC3339
	if config.GetString(cfg, "LOG_FORMAT", "json") == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	level, err := zerolog.ParseLevel(config.GetString(cfg, "LOG_LEVEL", "info"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

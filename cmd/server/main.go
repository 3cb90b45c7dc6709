package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tablequeue/waitlist/internal/config"
	"github.com/tablequeue/waitlist/internal/database"
	"github.com/tablequeue/waitlist/internal/handler"
	"github.com/tablequeue/waitlist/internal/logger"
	"github.com/tablequeue/waitlist/internal/queue"
	"github.com/tablequeue/waitlist/internal/repository"
	"github.com/tablequeue/waitlist/internal/router"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("host", cfg.DBHost).Msg("database connection failed")
	}
	defer func() { _ = db.Close() }()

	if cfg.DBAutomigrate {
		mctx, cancel := context.WithTimeout(ctx, time.Minute)
		n, err := database.Migrate(mctx, db)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("schema migration failed")
		}
		log.Info().Int("applied", n).Msg("schema migrations applied")
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable; cache and rate limit disabled")
	} else {
		defer func() { _ = rdb.Close() }()
	}

	var events handler.EventPublisher
	if ev := config.LoadEventsConfig(); ev.Enabled {
		events = queue.NewPublisher(ev.URL, ev.Queue)
		consumer := &queue.Consumer{URL: ev.URL, Queue: ev.Queue, LogDir: ev.LogDir, Log: log}
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("waitlist-consumer stopped")
			}
		}()
		log.Info().Str("queue", ev.Queue).Msg("waitlist events enabled")
	}

	repo := repository.NewWaitlistRepo(db, cfg.DBQueryTimeout)
	h := handler.NewWaitlistHandler(repo, events, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	router.RegisterRoutes(e, router.Deps{
		Waitlist:  h,
		DB:        db,
		Redis:     rdb,
		Log:       log,
		App:       cfg,
		Cache:     config.LoadCacheConfig(),
		RateLimit: config.LoadRateLimitConfig(),
	})

	addr := ":" + cfg.Port
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

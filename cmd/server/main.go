package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jaksoftwares/ReceiptPro/internal/config"
	"github.com/jaksoftwares/ReceiptPro/internal/infra"
	"github.com/jaksoftwares/ReceiptPro/internal/mail"
	"github.com/jaksoftwares/ReceiptPro/internal/model"
	"github.com/jaksoftwares/ReceiptPro/internal/repository"
	"github.com/jaksoftwares/ReceiptPro/internal/router"
	"github.com/jaksoftwares/ReceiptPro/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kv := repository.NewRedisKV(rdb)
	settingsRepo := repository.NewSettingsRepository(kv)
	seedEmailSettings(ctx, settingsRepo, cfg)

	// Start goroutine worker pool for async email delivery. The worker is
	// wired here (composition root) with the settings store so delivery
	// credentials are read fresh on every job.
	emailWorker := worker.NewEmailWorker(settingsRepo, mail.NewMailer(), rdb)
	worker.StartWorkerPool(ctx, rdb, cfg.WorkerPoolSize, emailWorker)

	r := router.New(cfg, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("ReceiptPro backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}

// seedEmailSettings copies the SMTP env vars into the stored settings once,
// so a fresh deployment can send email before anyone opens the settings page.
// Settings saved through the API are never overwritten.
func seedEmailSettings(ctx context.Context, repo repository.SettingsRepository, cfg *config.Config) {
	if cfg.SMTPHost == "" {
		return
	}
	settings, err := repo.Get(ctx)
	if err != nil || settings.Email.Configured() {
		return
	}
	settings.Email = model.EmailSettings{
		SMTPHost:     cfg.SMTPHost,
		SMTPPort:     cfg.SMTPPort,
		SMTPUsername: cfg.SMTPUser,
		SMTPPassword: cfg.SMTPPassword,
	}
	if err := repo.Save(ctx, settings); err != nil {
		log.Warn().Err(err).Msg("failed to seed SMTP settings from environment")
		return
	}
	log.Info().Str("host", cfg.SMTPHost).Msg("seeded SMTP settings from environment")
}

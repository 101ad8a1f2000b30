package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"campaign-wizard/internal/adapter/ai"
	"campaign-wizard/internal/adapter/bolt"
	"campaign-wizard/internal/adapter/googleauth"
	httpadapter "campaign-wizard/internal/adapter/http"
	"campaign-wizard/internal/adapter/photos"
	"campaign-wizard/internal/adapter/postgres"
	"campaign-wizard/internal/adapter/storage"
	"campaign-wizard/internal/adapter/system"
	"campaign-wizard/internal/adapter/tts"
	"campaign-wizard/internal/adapter/usecase"
	"campaign-wizard/internal/adapter/webhook"
	"campaign-wizard/internal/config"
	"campaign-wizard/internal/core/domain"
	"campaign-wizard/internal/core/port"
	"campaign-wizard/internal/db"
	"campaign-wizard/internal/metrics"
)

// runServe loads configuration, wires adapters and use cases, then serves
// HTTP until SIGINT or SIGTERM and shuts down gracefully.
func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return err
	}
	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore, err := openKV(ctx, cfg, logger)
	if err != nil {
		logger.Error("kv store error", slog.Any("error", err))
		return err
	}
	defer closeStore()

	objects, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		logger.Error("object storage error", slog.Any("error", err))
		return err
	}

	workers := ai.NewWorkers(cfg.AI)
	var text port.TextGenerator = workers
	if cfg.AI.TextProvider == "gemini" {
		gemini, err := ai.NewGemini(ctx, cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
		if err != nil {
			logger.Error("gemini client error", slog.Any("error", err))
			return err
		}
		defer gemini.Close()
		text = gemini
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	rnd, sleeper := system.Rand{}, system.Sleeper{}
	keywords := usecase.NewKeywordGenerator(text, rnd, logger)
	selector := usecase.NewPhotoSelector(keywords, photos.NewClient(cfg.Photos, logger), rnd, sleeper, logger,
		usecase.WithBatching(cfg.Photos.BatchSize, cfg.Photos.BatchDelay),
		usecase.WithSelectorMetrics(m),
	)
	pipeline := usecase.NewCampaignPipeline(text, workers, objects, store, logger, m)
	speech := usecase.NewSpeechService(newTokenSource(cfg, logger), tts.NewClient(cfg.TTS.APIURL, cfg.TTS.Timeout), logger)
	workflow := usecase.NewWorkflowService(newWebhook(cfg, logger), sleeper, logger, cfg.Webhook.PublishDelay)
	state := usecase.NewStateService(store)

	opts := []httpadapter.Option{httpadapter.WithMetrics(m, cfg.Metrics.Path)}
	if local, ok := objects.(*storage.Local); ok {
		opts = append(opts, httpadapter.WithFiles(local.Dir()))
	}
	handler := httpadapter.NewHandler(httpadapter.Services{
		Photos:    selector,
		Campaigns: pipeline,
		Speech:    speech,
		Workflow:  workflow,
		State:     state,
	}, logger, opts...)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			logger.Error("server error", slog.Any("error", err))
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}

// openKV returns the metadata store chosen by KV_DRIVER and its closer.
func openKV(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.KVStore, func(), error) {
	driver, err := cfg.KV.NormalizedDriver()
	if err != nil {
		return nil, nil, err
	}
	if driver == "bolt" {
		s, err := bolt.Open(cfg.KV.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	}

	if cfg.Psql.RunMigrations {
		if previous, err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied", slog.Uint64("from", uint64(previous)))
		}
	}
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection: %w", err)
	}
	return postgres.NewKVRepository(pool), pool.Close, nil
}

func newTokenSource(cfg config.Config, logger *slog.Logger) port.TokenSource {
	if cfg.TTS.ServiceAccountKey == "" {
		logger.Warn("TTS_SERVICE_ACCOUNT_KEY not set, speech synthesis disabled")
		return unavailable("TTS_SERVICE_ACCOUNT_KEY is not set")
	}
	key, err := googleauth.ParseServiceAccountKey([]byte(cfg.TTS.ServiceAccountKey))
	if err != nil {
		logger.Error("invalid service account key, speech synthesis disabled", slog.Any("error", err))
		return unavailable(err.Error())
	}
	ts, err := googleauth.NewTokenSource(key, cfg.TTS.TokenURL, cfg.TTS.Timeout)
	if err != nil {
		logger.Error("invalid service account key, speech synthesis disabled", slog.Any("error", err))
		return unavailable(err.Error())
	}
	return ts
}

func newWebhook(cfg config.Config, logger *slog.Logger) port.WebhookClient {
	client, err := webhook.NewClient(cfg.Webhook.BaseURL, cfg.Webhook.Secret, cfg.Webhook.Timeout)
	if err != nil {
		logger.Warn("workflow webhook disabled", slog.Any("error", err))
		return unavailable(err.Error())
	}
	return client
}

// unavailable stands in for a collaborator whose configuration is missing,
// so the rest of the server still starts.
type unavailable string

func (u unavailable) Token(context.Context) (string, error) {
	return "", errors.New(string(u))
}

func (u unavailable) Post(context.Context, string, json.RawMessage) (json.RawMessage, error) {
	return nil, fmt.Errorf("%w: %s", domain.ErrUpstream, string(u))
}

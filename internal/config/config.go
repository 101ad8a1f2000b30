package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"campaign-wizard/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Each nested struct is parsed with its envPrefix, see the configs package
// for variable names and defaults. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP    configs.HTTP     `envPrefix:"HTTP_"`
	Log     configs.Logger   `envPrefix:"LOG_"`
	Psql    configs.Postgres `envPrefix:"PSQL_"`
	KV      configs.KV       `envPrefix:"KV_"`
	AI      configs.AI       `envPrefix:"AI_"`
	Storage configs.Storage  `envPrefix:"STORAGE_"`
	Photos  configs.Photos   `envPrefix:"PHOTOS_"`
	Webhook configs.Webhook  `envPrefix:"WEBHOOK_"`
	TTS     configs.TTS      `envPrefix:"TTS_"`
	Metrics configs.Metrics  `envPrefix:"METRICS_"`
}

// Load reads configuration from environment variables into a Config. Files
// named in dotenv are loaded into the environment first; missing files are
// ignored, variables already set in the environment take precedence.
func Load(dotenv ...string) (Config, error) {
	var cfg Config
	if len(dotenv) > 0 {
		if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if cfg.Photos.BatchSize <= 0 {
		return cfg, errors.New("PHOTOS_BATCH_SIZE must be positive")
	}
	if _, err := cfg.KV.NormalizedDriver(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

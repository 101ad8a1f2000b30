package configs

import "time"

// Photos configures the stock-photo search provider and the batching used
// by the photo selector.
type Photos struct {
	BaseURL    string        `env:"BASE_URL" envDefault:"https://api.unsplash.com"`
	AccessKey  string        `env:"ACCESS_KEY"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"15s"`
	BatchSize  int           `env:"BATCH_SIZE" envDefault:"5"`
	BatchDelay time.Duration `env:"BATCH_DELAY" envDefault:"1s"`
}

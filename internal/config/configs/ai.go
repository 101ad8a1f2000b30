package configs

import "time"

// AI configures the inference providers. Images are always rendered by the
// Workers AI REST endpoint; text generation uses it too unless TextProvider
// is "gemini".
type AI struct {
	TextProvider string        `env:"TEXT_PROVIDER" envDefault:"workers"`
	BaseURL      string        `env:"BASE_URL" envDefault:"https://api.cloudflare.com/client/v4"`
	AccountID    string        `env:"ACCOUNT_ID"`
	APIToken     string        `env:"API_TOKEN"`
	TextModel    string        `env:"TEXT_MODEL" envDefault:"@cf/meta/llama-3.1-8b-instruct"`
	ImageModel   string        `env:"IMAGE_MODEL" envDefault:"@cf/black-forest-labs/flux-1-schnell"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"60s"`

	// GeminiAPIKey and GeminiModel are only read when TextProvider is "gemini".
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
}

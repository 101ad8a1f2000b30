package configs

import "time"

// Webhook configures the workflow automation endpoint that performs the
// real campaign creation. PublishDelay is the artificial latency of the
// mocked publish endpoint.
type Webhook struct {
	BaseURL      string        `env:"BASE_URL"`
	Secret       string        `env:"SECRET"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"30s"`
	PublishDelay time.Duration `env:"PUBLISH_DELAY" envDefault:"1s"`
}

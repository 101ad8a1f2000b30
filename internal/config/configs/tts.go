package configs

import "time"

// TTS configures the speech synthesis bridge. ServiceAccountKey holds the
// Google service-account key JSON; TokenURL overrides the token_uri found in
// the key when set.
type TTS struct {
	ServiceAccountKey string        `env:"SERVICE_ACCOUNT_KEY"`
	APIURL            string        `env:"API_URL" envDefault:"https://texttospeech.googleapis.com/v1/text:synthesize"`
	TokenURL          string        `env:"TOKEN_URL"`
	Timeout           time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

package port

import (
	"context"
	"encoding/json"
	"time"

	"campaign-wizard/internal/core/domain"
)

// TextGenerator runs a single prompt through a text-generation model.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ImageGenerator renders a prompt with an image model. The result carries
// either base64 text or raw bytes, depending on the model.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (domain.GeneratedImage, error)
}

// ImageSearcher queries a stock-photo provider. Implementations never fail:
// any provider error yields an empty slice.
type ImageSearcher interface {
	Search(ctx context.Context, keywords []string) []domain.ImageDescriptor
}

// TokenSource returns an OAuth2 bearer token for the speech provider.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// SpeechSynthesizer forwards a fully defaulted request to the speech
// provider and returns the base64 audio content.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, token string, req domain.TTSRequest) (string, error)
}

// WebhookClient relays a JSON body to the workflow automation endpoint and
// returns the upstream body verbatim.
type WebhookClient interface {
	Post(ctx context.Context, path string, body json.RawMessage) (json.RawMessage, error)
}

// RandSource is the randomness used for enhancer, fallback and photo picks.
// *math/rand/v2.Rand satisfies it.
type RandSource interface {
	IntN(n int) int
}

// Sleeper pauses between photo batches and in the mocked publish path.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

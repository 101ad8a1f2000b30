package port

import (
	"context"
	"encoding/json"

	"campaign-wizard/internal/core/domain"
)

// PhotoSelector picks one stock photo per post. It always returns exactly
// one result per input post, in input order.
type PhotoSelector interface {
	SelectPhotos(ctx context.Context, posts []domain.Post, brand *domain.BrandData) []domain.PhotoSelectionResult
}

// CampaignGenerator runs the campaign content pipeline.
type CampaignGenerator interface {
	// Generate produces and persists a campaign. Input validation failures
	// wrap domain.ErrValidation, text-model failures wrap domain.ErrUpstream.
	Generate(ctx context.Context, in domain.CampaignInput) (*domain.CampaignOutput, error)
	// Get reads a persisted campaign record. Unknown ids return
	// domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.CampaignOutput, error)
}

// SpeechUseCase is the speech synthesis bridge.
type SpeechUseCase interface {
	Synthesize(ctx context.Context, req domain.TTSRequest) (*domain.TTSResponse, error)
}

// WorkflowUseCase relays campaign lifecycle requests to the workflow
// automation system.
type WorkflowUseCase interface {
	CreateCampaign(ctx context.Context, body json.RawMessage) (json.RawMessage, error)
	PublishCampaign(ctx context.Context, req domain.PublishRequest) (*domain.PublishResponse, error)
}

// StateUseCase stores and retrieves opaque JSON state blobs by name.
type StateUseCase interface {
	Store(ctx context.Context, name string, blob []byte) error
	Retrieve(ctx context.Context, name string) ([]byte, error)
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"campaign-wizard/internal/core/domain"
	"campaign-wizard/internal/core/port"
)

const createCampaignPath = "/create-campaing"

// DefaultPublishDelay is how long the mocked publish pretends to work.
const DefaultPublishDelay = time.Second

var defaultPublishPlatforms = []string{"facebook", "instagram", "twitter"}

// WorkflowService relays campaign creation to the workflow webhook.
// Publishing is not wired to any platform yet and only synthesizes a
// confirmation.
type WorkflowService struct {
	webhook      port.WebhookClient
	sleeper      port.Sleeper
	logger       *slog.Logger
	publishDelay time.Duration
	now          func() time.Time
}

// NewWorkflowService creates a workflow service. A non-positive
// publishDelay disables the pause.
func NewWorkflowService(webhook port.WebhookClient, sleeper port.Sleeper, logger *slog.Logger, publishDelay time.Duration) *WorkflowService {
	return &WorkflowService{
		webhook:      webhook,
		sleeper:      sleeper,
		logger:       logger,
		publishDelay: publishDelay,
		now:          time.Now,
	}
}

// CreateCampaign forwards body unchanged and returns the upstream body.
func (s *WorkflowService) CreateCampaign(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	if len(body) == 0 || !json.Valid(body) {
		return nil, fmt.Errorf("%w: request body must be valid JSON", domain.ErrValidation)
	}
	resp, err := s.webhook.Post(ctx, createCampaignPath, body)
	if err != nil {
		s.logger.Error("workflow create-campaign failed", slog.Any("error", err))
		return nil, err
	}
	return resp, nil
}

// PublishCampaign always succeeds unless ctx is cancelled during the pause.
func (s *WorkflowService) PublishCampaign(ctx context.Context, req domain.PublishRequest) (*domain.PublishResponse, error) {
	if s.publishDelay > 0 {
		if err := s.sleeper.Sleep(ctx, s.publishDelay); err != nil {
			return nil, err
		}
	}

	platforms := slices.Clone(defaultPublishPlatforms)
	if req.Schedule != nil && len(req.Schedule.Platforms) > 0 {
		platforms = slices.Clone(req.Schedule.Platforms)
	}

	s.logger.Info("campaign publish simulated", slog.String("campaign_id", req.CampaignID), slog.Any("platforms", platforms))
	return &domain.PublishResponse{
		Success:     true,
		CampaignID:  req.CampaignID,
		PublishedAt: s.now().UTC().Format(time.RFC3339),
		Platforms:   platforms,
		Message:     "Campaign publishing simulated; no platform was contacted",
	}, nil
}

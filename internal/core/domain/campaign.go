package domain

import "time"

// Goal is the marketing objective of a campaign.
type Goal string

const (
	GoalAwareness  Goal = "awareness"
	GoalEngagement Goal = "engagement"
	GoalConversion Goal = "conversion"
	GoalTraffic    Goal = "traffic"
)

// Status is the lifecycle state recorded in campaign metadata.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusProcessing Status = "processing"
	StatusFailed     Status = "failed"
)

const (
	// MaxImagePrompts bounds how many image prompts are kept.
	MaxImagePrompts = 5
	// MaxRenderedImages bounds how many prompts are rendered into images.
	MaxRenderedImages = 3
	// PlaceholderImagePath replaces an image that failed to render.
	PlaceholderImagePath = "/images/placeholder.png"
)

// Brand describes who the campaign speaks for.
type Brand struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Tone        string `json:"tone"`
	VisualStyle string `json:"visualStyle"`
}

// Product describes what the campaign sells.
type Product struct {
	Name           string `json:"name" validate:"required"`
	Description    string `json:"description"`
	TargetAudience string `json:"targetAudience"`
}

// CampaignDetails holds the objective and distribution of a campaign.
type CampaignDetails struct {
	Goal         Goal     `json:"goal" validate:"required"`
	Platforms    []string `json:"platforms" validate:"required,min=1,dive,required"`
	CallToAction string   `json:"callToAction"`
}

// CampaignInput is the caller-supplied description of a campaign. Only
// presence is validated. GenerateImages defaults to true when omitted.
type CampaignInput struct {
	Brand          Brand           `json:"brand"`
	Product        Product         `json:"product"`
	Campaign       CampaignDetails `json:"campaign"`
	Sources        []string        `json:"sources,omitempty"`
	GenerateImages *bool           `json:"generateImages,omitempty"`
}

// WantsImages reports whether the image stage should run.
func (in CampaignInput) WantsImages() bool {
	return in.GenerateImages == nil || *in.GenerateImages
}

// CampaignMetadata is stored alongside the generated content.
type CampaignMetadata struct {
	CreatedAt time.Time `json:"createdAt"`
	Status    Status    `json:"status"`
	Sources   []string  `json:"sources"`
}

// CampaignOutput is the result of the content pipeline. It is written once
// and never updated.
type CampaignOutput struct {
	ID           string            `json:"id"`
	BrandVoice   string            `json:"brandVoice"`
	AdContent    map[string]string `json:"adContent"`
	ImagePrompts []string          `json:"imagePrompts"`
	Images       []string          `json:"images,omitempty"`
	Metadata     CampaignMetadata  `json:"metadata"`
}

// CampaignKey is the metadata store key of a campaign record.
func CampaignKey(id string) string {
	return "campaign:" + id
}

package domain

// Schedule is the optional publishing plan sent by the wizard.
type Schedule struct {
	Platforms []string `json:"platforms,omitempty"`
	PublishAt string   `json:"publishAt,omitempty"`
}

// PublishRequest asks for a campaign to be published.
type PublishRequest struct {
	CampaignID string    `json:"campaign_id"`
	Schedule   *Schedule `json:"schedule,omitempty"`
}

// PublishResponse is the synthesized publish confirmation.
type PublishResponse struct {
	Success     bool     `json:"success"`
	CampaignID  string   `json:"campaign_id"`
	PublishedAt string   `json:"published_at"`
	Platforms   []string `json:"platforms"`
	Message     string   `json:"message"`
}

// Package photos is the stock-photo search client.
package photos

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"campaign-wizard/internal/config/configs"
	"campaign-wizard/internal/core/domain"
)

const (
	searchPath  = "/search/photos"
	perPage     = "5"
	orientation = "landscape"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9 ]+`)

type searchResponse struct {
	Results []photo `json:"results"`
}

type photo struct {
	ID             string `json:"id"`
	Description    string `json:"description"`
	AltDescription string `json:"alt_description"`
	URLs           struct {
		Regular string `json:"regular"`
		Small   string `json:"small"`
	} `json:"urls"`
	Links struct {
		Download string `json:"download"`
	} `json:"links"`
	User struct {
		Name string `json:"name"`
	} `json:"user"`
}

// Client searches an Unsplash compatible API. It implements
// port.ImageSearcher and never returns an error.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// NewClient creates a client for cfg.BaseURL authenticated with
// cfg.AccessKey.
func NewClient(cfg configs.Photos, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Authorization", "Client-ID "+cfg.AccessKey).
		SetHeader("Accept-Version", "v1")
	return &Client{http: rc, logger: logger}
}

// Search returns up to five landscape photos for keywords. Any failure is
// logged and yields an empty slice.
func (c *Client) Search(ctx context.Context, keywords []string) []domain.ImageDescriptor {
	query := buildQuery(keywords)
	if query == "" {
		return nil
	}

	var body searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":       query,
			"per_page":    perPage,
			"orientation": orientation,
		}).
		SetResult(&body).
		Get(searchPath)
	if err != nil {
		c.logger.Warn("photo search request failed", slog.String("query", query), slog.Any("error", err))
		return nil
	}
	if !resp.IsSuccess() {
		c.logger.Warn("photo search rejected", slog.String("query", query), slog.Int("status", resp.StatusCode()))
		return nil
	}

	images := make([]domain.ImageDescriptor, 0, len(body.Results))
	for _, p := range body.Results {
		images = append(images, p.descriptor())
	}
	return images
}

func (p photo) descriptor() domain.ImageDescriptor {
	description := p.Description
	if description == "" {
		description = p.AltDescription
	}
	if description == "" {
		description = "Stock photo"
	}
	photographer := p.User.Name
	if photographer == "" {
		photographer = "Unknown"
	}
	return domain.ImageDescriptor{
		ID:           p.ID,
		URL:          p.URLs.Regular,
		ThumbnailURL: p.URLs.Small,
		Description:  description,
		Photographer: photographer,
		DownloadURL:  p.Links.Download,
	}
}

// buildQuery joins keywords with spaces after stripping punctuation.
func buildQuery(keywords []string) string {
	parts := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(nonAlphanumeric.ReplaceAllString(kw, ""))
		if kw != "" {
			parts = append(parts, kw)
		}
	}
	return strings.Join(parts, " ")
}

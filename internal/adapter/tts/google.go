// Package tts is the Google Cloud Text-to-Speech REST client.
package tts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"campaign-wizard/internal/core/domain"
)

// DefaultAPIURL is the v1 synthesize endpoint.
const DefaultAPIURL = "https://texttospeech.googleapis.com/v1/text:synthesize"

type synthesizeRequest struct {
	Input       synthesisInput        `json:"input"`
	Voice       domain.VoiceSelection `json:"voice"`
	AudioConfig domain.AudioConfig    `json:"audioConfig"`
}

type synthesisInput struct {
	Text string `json:"text"`
}

type synthesizeResponse struct {
	AudioContent string `json:"audioContent"`
	Error        struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Client implements port.SpeechSynthesizer.
type Client struct {
	http   *resty.Client
	apiURL string
}

// NewClient creates a client posting to apiURL, DefaultAPIURL when empty.
func NewClient(apiURL string, timeout time.Duration) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{http: resty.New().SetTimeout(timeout), apiURL: apiURL}
}

// Synthesize sends req with bearer token and returns the base64 audio.
// Voice and AudioConfig must already be set.
func (c *Client) Synthesize(ctx context.Context, token string, req domain.TTSRequest) (string, error) {
	if req.Voice == nil || req.AudioConfig == nil {
		return "", errors.New("voice and audio config are required")
	}

	var body synthesizeResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(synthesizeRequest{
			Input:       synthesisInput{Text: req.Text},
			Voice:       *req.Voice,
			AudioConfig: *req.AudioConfig,
		}).
		SetResult(&body).
		SetError(&body).
		Post(c.apiURL)
	if err != nil {
		return "", fmt.Errorf("synthesize request: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("synthesize status %d: %s", resp.StatusCode(), body.Error.Message)
	}
	if body.AudioContent == "" {
		return "", errors.New("synthesize returned no audio")
	}
	return body.AudioContent, nil
}

// Package ai adapts hosted inference providers to the text and image
// generation ports.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"campaign-wizard/internal/config/configs"
	"campaign-wizard/internal/core/domain"
)

type workersMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type workersTextRequest struct {
	Messages []workersMessage `json:"messages"`
}

type workersImageRequest struct {
	Prompt string `json:"prompt"`
}

type workersError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type workersResponse struct {
	Success bool `json:"success"`
	Result  struct {
		Response string `json:"response"`
		Image    string `json:"image"`
	} `json:"result"`
	Errors []workersError `json:"errors"`
}

// Workers calls the Workers AI REST API. It implements port.TextGenerator
// and port.ImageGenerator.
type Workers struct {
	http       *resty.Client
	account    string
	textModel  string
	imageModel string
}

// NewWorkers creates a client from cfg.
func NewWorkers(cfg configs.AI) *Workers {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIToken)
	return &Workers{
		http:       rc,
		account:    cfg.AccountID,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
	}
}

func (w *Workers) runPath(model string) string {
	return "/accounts/" + url.PathEscape(w.account) + "/ai/run/" + model
}

// Generate runs prompt as a single user message.
func (w *Workers) Generate(ctx context.Context, prompt string) (string, error) {
	var body workersResponse
	resp, err := w.http.R().
		SetContext(ctx).
		SetBody(workersTextRequest{Messages: []workersMessage{{Role: "user", Content: prompt}}}).
		SetResult(&body).
		SetError(&body).
		Post(w.runPath(w.textModel))
	if err != nil {
		return "", fmt.Errorf("workers ai text: %w", err)
	}
	if !resp.IsSuccess() {
		return "", statusError("text", resp.StatusCode(), body.Errors)
	}
	if body.Result.Response == "" {
		return "", errors.New("workers ai text: empty response")
	}
	return body.Result.Response, nil
}

// GenerateImage renders prompt. Models answer either with the image bytes
// or with JSON carrying base64 under result.image.
func (w *Workers) GenerateImage(ctx context.Context, prompt string) (domain.GeneratedImage, error) {
	resp, err := w.http.R().
		SetContext(ctx).
		SetBody(workersImageRequest{Prompt: prompt}).
		Post(w.runPath(w.imageModel))
	if err != nil {
		return domain.GeneratedImage{}, fmt.Errorf("workers ai image: %w", err)
	}

	raw := resp.Body()
	if strings.HasPrefix(resp.Header().Get("Content-Type"), "image/") {
		if !resp.IsSuccess() || len(raw) == 0 {
			return domain.GeneratedImage{}, fmt.Errorf("workers ai image: status %d", resp.StatusCode())
		}
		return domain.GeneratedImage{Binary: raw}, nil
	}

	var body workersResponse
	if err = json.Unmarshal(raw, &body); err != nil {
		return domain.GeneratedImage{}, fmt.Errorf("workers ai image: decode: %w", err)
	}
	if !resp.IsSuccess() {
		return domain.GeneratedImage{}, statusError("image", resp.StatusCode(), body.Errors)
	}
	if body.Result.Image == "" {
		return domain.GeneratedImage{}, errors.New("workers ai image: no image in response")
	}
	return domain.GeneratedImage{Base64: body.Result.Image}, nil
}

func statusError(kind string, status int, errs []workersError) error {
	if len(errs) > 0 {
		return fmt.Errorf("workers ai %s: status %d: %s", kind, status, errs[0].Message)
	}
	return fmt.Errorf("workers ai %s: status %d", kind, status)
}

package usecase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"campaign-wizard/internal/core/domain"
	"campaign-wizard/internal/core/port"
	"campaign-wizard/internal/metrics"
)

// CampaignPipeline generates campaign content in four strictly sequential
// stages: brand voice, per-platform ad copy, image prompts and images. The
// finished record is persisted once under domain.CampaignKey and never
// updated.
type CampaignPipeline struct {
	text     port.TextGenerator
	images   port.ImageGenerator
	storage  port.ObjectStorage
	store    port.KVStore
	validate *validator.Validate
	logger   *slog.Logger
	metrics  *metrics.Metrics

	newID func() string
	now   func() time.Time
}

// NewCampaignPipeline wires the pipeline. m may be nil.
func NewCampaignPipeline(text port.TextGenerator, images port.ImageGenerator, storage port.ObjectStorage, store port.KVStore, logger *slog.Logger, m *metrics.Metrics) *CampaignPipeline {
	return &CampaignPipeline{
		text:     text,
		images:   images,
		storage:  storage,
		store:    store,
		validate: newValidator(),
		logger:   logger,
		metrics:  m,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// Generate runs the pipeline. Text stage failures abort the run; image
// failures are replaced by domain.PlaceholderImagePath. The stored status
// is always completed, including runs where every image fell back.
func (p *CampaignPipeline) Generate(ctx context.Context, in domain.CampaignInput) (*domain.CampaignOutput, error) {
	if err := p.validateInput(in); err != nil {
		return nil, err
	}

	id := p.newID()
	logger := p.logger.With(slog.String("campaign_id", id))

	brandVoice, err := p.generateText(ctx, "brand voice", brandVoicePrompt(in))
	if err != nil {
		return nil, err
	}

	adContent := make(map[string]string, len(in.Campaign.Platforms))
	for _, platform := range in.Campaign.Platforms {
		copyText, err := p.generateText(ctx, platform+" ad copy", adCopyPrompt(in, brandVoice, platform))
		if err != nil {
			return nil, err
		}
		adContent[platform] = copyText
	}

	promptsResp, err := p.generateText(ctx, "image prompts", imagePromptsPrompt(in, brandVoice))
	if err != nil {
		return nil, err
	}
	prompts := parseImagePrompts(promptsResp)

	var images []string
	if in.WantsImages() {
		images = p.renderImages(ctx, logger, id, prompts)
	}

	sources := in.Sources
	if sources == nil {
		sources = []string{}
	}
	out := &domain.CampaignOutput{
		ID:           id,
		BrandVoice:   brandVoice,
		AdContent:    adContent,
		ImagePrompts: prompts,
		Images:       images,
		Metadata: domain.CampaignMetadata{
			CreatedAt: p.now().UTC(),
			Status:    domain.StatusCompleted,
			Sources:   sources,
		},
	}

	p.persist(ctx, logger, out)
	p.metrics.CampaignGenerated()
	logger.Info("campaign generated", slog.Int("platforms", len(adContent)), slog.Int("images", len(images)))
	return out, nil
}

// Get returns a persisted campaign record.
func (p *CampaignPipeline) Get(ctx context.Context, id string) (*domain.CampaignOutput, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: campaign id is required", domain.ErrValidation)
	}
	raw, err := p.store.Get(ctx, domain.CampaignKey(id))
	if err != nil {
		return nil, err
	}
	var out domain.CampaignOutput
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode campaign %s: %w", id, err)
	}
	return &out, nil
}

func (p *CampaignPipeline) generateText(ctx context.Context, stage, prompt string) (string, error) {
	resp, err := p.text.Generate(ctx, prompt)
	if err != nil {
		p.metrics.UpstreamError("text")
		return "", fmt.Errorf("%w: generate %s: %w", domain.ErrUpstream, stage, err)
	}
	resp = strings.TrimSpace(resp)
	if resp == "" {
		p.metrics.UpstreamError("text")
		return "", fmt.Errorf("%w: generate %s: empty response", domain.ErrUpstream, stage)
	}
	return resp, nil
}

// renderImages handles at most domain.MaxRenderedImages prompts. It never
// fails; each broken image becomes the placeholder path.
func (p *CampaignPipeline) renderImages(ctx context.Context, logger *slog.Logger, id string, prompts []string) []string {
	prompts = prompts[:min(domain.MaxRenderedImages, len(prompts))]
	urls := make([]string, 0, len(prompts))
	placeholders := 0
	for i, prompt := range prompts {
		url, err := p.renderImage(ctx, id, i, prompt)
		if err != nil {
			logger.Warn("image generation failed, using placeholder", slog.Int("index", i), slog.Any("error", err))
			p.metrics.CampaignImage("placeholder")
			urls = append(urls, domain.PlaceholderImagePath)
			placeholders++
			continue
		}
		p.metrics.CampaignImage("rendered")
		urls = append(urls, url)
	}
	if len(prompts) > 0 && placeholders == len(prompts) {
		logger.Warn("every campaign image fell back to the placeholder; status stays completed")
	}
	return urls
}

func (p *CampaignPipeline) renderImage(ctx context.Context, id string, index int, prompt string) (string, error) {
	img, err := p.images.GenerateImage(ctx, prompt)
	if err != nil {
		p.metrics.UpstreamError("image")
		return "", err
	}
	data, err := decodeGeneratedImage(img)
	if err != nil {
		return "", err
	}
	return p.storage.Put(ctx, imageKey(id, index), data, "image/png")
}

func (p *CampaignPipeline) persist(ctx context.Context, logger *slog.Logger, out *domain.CampaignOutput) {
	raw, err := json.Marshal(out)
	if err != nil {
		logger.Error("encode campaign record", slog.Any("error", err))
		return
	}
	if err = p.store.Put(ctx, domain.CampaignKey(out.ID), raw); err != nil {
		logger.Error("persist campaign record", slog.Any("error", err))
	}
}

func (p *CampaignPipeline) validateInput(in domain.CampaignInput) error {
	err := p.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		switch fe.Tag() {
		case "min":
			msgs = append(msgs, field+" must not be empty")
		default:
			msgs = append(msgs, field+" is required")
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, ", "))
}

// imageKey is the object key of the index-th image of a campaign.
func imageKey(id string, index int) string {
	return fmt.Sprintf("campaigns/%s/image-%d.png", id, index)
}

// decodeGeneratedImage accepts base64 text (optionally a data URI) or raw
// bytes.
func decodeGeneratedImage(img domain.GeneratedImage) ([]byte, error) {
	switch {
	case img.Base64 != "":
		payload := img.Base64
		if strings.HasPrefix(payload, "data:") {
			i := strings.Index(payload, ",")
			if i < 0 {
				return nil, errors.New("malformed data URI")
			}
			payload = payload[i+1:]
		}
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("decode base64 image: %w", err)
		}
		return data, nil
	case len(img.Binary) > 0:
		return img.Binary, nil
	default:
		return nil, errors.New("unsupported image payload")
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

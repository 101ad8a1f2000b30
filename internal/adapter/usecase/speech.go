package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"campaign-wizard/internal/core/domain"
	"campaign-wizard/internal/core/port"
)

// SpeechService turns text into audio through the speech provider. Every
// failure is reported as domain.ErrSynthesis; there is no retry.
type SpeechService struct {
	tokens      port.TokenSource
	synthesizer port.SpeechSynthesizer
	logger      *slog.Logger
}

// NewSpeechService creates a speech service.
func NewSpeechService(tokens port.TokenSource, synthesizer port.SpeechSynthesizer, logger *slog.Logger) *SpeechService {
	return &SpeechService{tokens: tokens, synthesizer: synthesizer, logger: logger}
}

// Synthesize fills default voice and audio settings, obtains a token and
// forwards the request. Empty text is rejected before any token work.
func (s *SpeechService) Synthesize(ctx context.Context, req domain.TTSRequest) (*domain.TTSResponse, error) {
	if req.Text == "" {
		return nil, fmt.Errorf("%w: %w: text is required", domain.ErrSynthesis, domain.ErrValidation)
	}

	voice := domain.DefaultVoice
	if req.Voice != nil {
		voice = *req.Voice
	}
	audio := domain.DefaultAudioConfig
	if req.AudioConfig != nil {
		audio = *req.AudioConfig
	}
	req.Voice, req.AudioConfig = &voice, &audio

	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.logger.Error("speech token request failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: obtain access token: %w", domain.ErrSynthesis, err)
	}

	content, err := s.synthesizer.Synthesize(ctx, token, req)
	if err != nil {
		s.logger.Error("speech synthesis failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", domain.ErrSynthesis, err)
	}

	return &domain.TTSResponse{AudioContent: content, AudioConfig: audio, Voice: voice}, nil
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-wizard/internal/core/domain"
	"campaign-wizard/internal/core/port/mocks"
)

func TestSpeechServiceAppliesDefaults(t *testing.T) {
	tokens := mocks.NewMockTokenSource(t)
	tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	synth := mocks.NewMockSpeechSynthesizer(t)
	synth.EXPECT().Synthesize(mock.Anything, "tok", mock.MatchedBy(func(req domain.TTSRequest) bool {
		return req.Text == "hello" && *req.Voice == domain.DefaultVoice && *req.AudioConfig == domain.DefaultAudioConfig
	})).Return("QVVESU8=", nil).Once()

	resp, err := NewSpeechService(tokens, synth, discardLogger()).Synthesize(context.Background(), domain.TTSRequest{Text: "hello"})
	require.NoError(t, err)

	assert.Equal(t, "QVVESU8=", resp.AudioContent)
	assert.Equal(t, domain.DefaultVoice, resp.Voice)
	assert.Equal(t, domain.DefaultAudioConfig, resp.AudioConfig)
}

func TestSpeechServiceKeepsCallerSettings(t *testing.T) {
	voice := domain.VoiceSelection{LanguageCode: "de-DE", Name: "de-DE-Neural2-B", SSMLGender: "MALE"}
	audio := domain.AudioConfig{AudioEncoding: "OGG_OPUS", SpeakingRate: 1.2, Pitch: -2}

	tokens := mocks.NewMockTokenSource(t)
	tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
	synth := mocks.NewMockSpeechSynthesizer(t)
	synth.EXPECT().Synthesize(mock.Anything, "tok", mock.Anything).Return("b64", nil).Once()

	resp, err := NewSpeechService(tokens, synth, discardLogger()).Synthesize(context.Background(),
		domain.TTSRequest{Text: "hallo", Voice: &voice, AudioConfig: &audio})
	require.NoError(t, err)

	assert.Equal(t, voice, resp.Voice)
	assert.Equal(t, audio, resp.AudioConfig)
}

func TestSpeechServiceRejectsEmptyTextBeforeTokenWork(t *testing.T) {
	tokens := mocks.NewMockTokenSource(t)
	synth := mocks.NewMockSpeechSynthesizer(t)

	_, err := NewSpeechService(tokens, synth, discardLogger()).Synthesize(context.Background(), domain.TTSRequest{Text: ""})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, err, domain.ErrSynthesis)
	tokens.AssertNotCalled(t, "Token", mock.Anything)
}

func TestSpeechServiceWrapsFailures(t *testing.T) {
	t.Run("token", func(t *testing.T) {
		tokens := mocks.NewMockTokenSource(t)
		tokens.EXPECT().Token(mock.Anything).Return("", errors.New("invalid_grant")).Once()

		_, err := NewSpeechService(tokens, mocks.NewMockSpeechSynthesizer(t), discardLogger()).
			Synthesize(context.Background(), domain.TTSRequest{Text: "hi"})

		require.ErrorIs(t, err, domain.ErrSynthesis)
		assert.NotErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "invalid_grant")
	})
	t.Run("synthesize", func(t *testing.T) {
		tokens := mocks.NewMockTokenSource(t)
		tokens.EXPECT().Token(mock.Anything).Return("tok", nil).Once()
		synth := mocks.NewMockSpeechSynthesizer(t)
		synth.EXPECT().Synthesize(mock.Anything, "tok", mock.Anything).Return("", errors.New("403")).Once()

		_, err := NewSpeechService(tokens, synth, discardLogger()).
			Synthesize(context.Background(), domain.TTSRequest{Text: "hi"})

		require.ErrorIs(t, err, domain.ErrSynthesis)
	})
}

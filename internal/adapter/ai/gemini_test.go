package ai

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiRequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "gemini-2.5-flash")
	assert.ErrorContains(t, err, "AI_GEMINI_API_KEY")
}

func TestCandidateText(t *testing.T) {
	content := func(parts ...genai.Part) *genai.GenerateContentResponse {
		return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}}}
	}
	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		want    string
		wantErr string
	}{
		{name: "joins text parts", resp: content(genai.Text("coffee, "), genai.Text("latte")), want: "coffee, latte"},
		{name: "skips non-text parts", resp: content(genai.Blob{MIMEType: "image/png", Data: []byte{1}}, genai.Text("ok")), want: "ok"},
		{name: "only the first candidate", resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("first")}}},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("second")}}},
		}}, want: "first"},
		{name: "nil response", wantErr: "no candidates"},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, wantErr: "no candidates"},
		{name: "candidate without content", resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}, wantErr: "no candidates"},
		{name: "no text", resp: content(genai.Blob{MIMEType: "image/png"}), wantErr: "empty response"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := candidateText(tt.resp)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

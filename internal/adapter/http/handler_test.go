package httpadapter

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-wizard/internal/core/domain"
	"campaign-wizard/internal/core/port/mocks"
	"campaign-wizard/internal/metrics"
)

type testServices struct {
	photos    *mocks.MockPhotoSelector
	campaigns *mocks.MockCampaignGenerator
	speech    *mocks.MockSpeechUseCase
	workflow  *mocks.MockWorkflowUseCase
	state     *mocks.MockStateUseCase
}

func newTestHandler(t *testing.T, opts ...Option) (http.Handler, testServices) {
	t.Helper()
	s := testServices{
		photos:    mocks.NewMockPhotoSelector(t),
		campaigns: mocks.NewMockCampaignGenerator(t),
		speech:    mocks.NewMockSpeechUseCase(t),
		workflow:  mocks.NewMockWorkflowUseCase(t),
		state:     mocks.NewMockStateUseCase(t),
	}
	h := NewHandler(Services{
		Photos:    s.photos,
		Campaigns: s.campaigns,
		Speech:    s.speech,
		Workflow:  s.workflow,
		State:     s.state,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)), opts...)
	return h.Router(), s
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestPreflightIsAnsweredOnEveryRoute(t *testing.T) {
	h, _ := newTestHandler(t)
	for _, path := range []string{"/api/campaign/create", "/api/tts/synthesize", "/store", "/retrieve", "/nowhere"} {
		rec := do(t, h, http.MethodOptions, path, "")
		assert.Equal(t, http.StatusNoContent, rec.Code, path)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"), path)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST", path)
	}
}

func TestStockPhotos(t *testing.T) {
	h, s := newTestHandler(t)
	results := []domain.PhotoSelectionResult{
		{PostID: "1", Image: domain.PlaceholderImage, Keywords: []string{"business"}},
		{PostID: "2", Image: domain.PlaceholderImage, Keywords: []string{"business"}},
	}
	s.photos.EXPECT().SelectPhotos(mock.Anything, mock.MatchedBy(func(p []domain.Post) bool { return len(p) == 2 }),
		&domain.BrandData{Industry: "coffee"}).Return(results).Once()

	rec := do(t, h, http.MethodPost, "/api/workflow/stock-photos",
		`{"posts":[{"id":"1","text":"a"},{"id":"2","text":"b"}],"brandData":{"industry":"coffee"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 2, body["totalProcessed"])
	assert.Len(t, body["results"], 2)
}

func TestStockPhotosRequiresPosts(t *testing.T) {
	h, _ := newTestHandler(t)
	for _, payload := range []string{`{}`, `{"posts":[]}`} {
		rec := do(t, h, http.MethodPost, "/api/workflow/stock-photos", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Posts array is required", decodeBody(t, rec)["error"])
	}
}

func TestCampaignCreateRelaysUpstream(t *testing.T) {
	h, s := newTestHandler(t)
	s.workflow.EXPECT().CreateCampaign(mock.Anything, json.RawMessage(`{"brand":{"name":"B"}}`)).
		Return(json.RawMessage(`{"executionId":"e-1"}`), nil).Once()

	rec := do(t, h, http.MethodPost, "/api/campaign/create", `{"brand":{"name":"B"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"executionId":"e-1"}`, rec.Body.String())
}

func TestCampaignCreateFailure(t *testing.T) {
	h, s := newTestHandler(t)
	s.workflow.EXPECT().CreateCampaign(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: status 502", domain.ErrUpstream)).Once()

	rec := do(t, h, http.MethodPost, "/api/campaign/create", `{}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Failed to create campaign", body["error"])
	assert.Contains(t, body["details"], "status 502")
}

func TestCampaignPublish(t *testing.T) {
	h, s := newTestHandler(t)
	s.workflow.EXPECT().PublishCampaign(mock.Anything, domain.PublishRequest{CampaignID: "c-1"}).
		Return(&domain.PublishResponse{Success: true, CampaignID: "c-1", Platforms: []string{"facebook"}}, nil).Once()

	rec := do(t, h, http.MethodPost, "/api/campaign/publish", `{"campaign_id":"c-1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "c-1", body["campaign_id"])
}

func TestCampaignGenerate(t *testing.T) {
	h, s := newTestHandler(t)
	s.campaigns.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(in domain.CampaignInput) bool {
		return in.Brand.Name == "Brewline" && len(in.Campaign.Platforms) == 1
	})).Return(&domain.CampaignOutput{ID: "c-1", AdContent: map[string]string{"x": "copy"}}, nil).Once()

	rec := do(t, h, http.MethodPost, "/api/campaign/generate",
		`{"brand":{"name":"Brewline"},"product":{"name":"Kit"},"campaign":{"goal":"awareness","platforms":["x"]}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "c-1", decodeBody(t, rec)["id"])
}

func TestCampaignGenerateErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "validation", err: fmt.Errorf("%w: brand.name is required", domain.ErrValidation), status: http.StatusBadRequest},
		{name: "upstream", err: fmt.Errorf("%w: generate brand voice", domain.ErrUpstream), status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s := newTestHandler(t)
			s.campaigns.EXPECT().Generate(mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			rec := do(t, h, http.MethodPost, "/api/campaign/generate", `{}`)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.err.Error(), decodeBody(t, rec)["error"])
		})
	}
}

func TestCampaignGet(t *testing.T) {
	h, s := newTestHandler(t)
	s.campaigns.EXPECT().Get(mock.Anything, "c-1").Return(&domain.CampaignOutput{ID: "c-1"}, nil).Once()
	s.campaigns.EXPECT().Get(mock.Anything, "gone").Return(nil, domain.ErrNotFound).Once()

	rec := do(t, h, http.MethodGet, "/api/campaign/c-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "c-1", decodeBody(t, rec)["id"])

	rec = do(t, h, http.MethodGet, "/api/campaign/gone", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSynthesize(t *testing.T) {
	h, s := newTestHandler(t)
	s.speech.EXPECT().Synthesize(mock.Anything, domain.TTSRequest{Text: "hello"}).
		Return(&domain.TTSResponse{AudioContent: "QUJD", Voice: domain.DefaultVoice, AudioConfig: domain.DefaultAudioConfig}, nil).Once()

	rec := do(t, h, http.MethodPost, "/api/tts/synthesize", `{"text":"hello"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "QUJD", body["audioContent"])
	assert.Equal(t, "en-US-Neural2-D", body["voice"].(map[string]any)["name"])
}

func TestSynthesizeErrors(t *testing.T) {
	h, s := newTestHandler(t)
	s.speech.EXPECT().Synthesize(mock.Anything, domain.TTSRequest{Text: ""}).
		Return(nil, fmt.Errorf("%w: %w: text is required", domain.ErrSynthesis, domain.ErrValidation)).Once()
	s.speech.EXPECT().Synthesize(mock.Anything, domain.TTSRequest{Text: "hi"}).
		Return(nil, fmt.Errorf("%w: token", domain.ErrSynthesis)).Once()

	rec := do(t, h, http.MethodPost, "/api/tts/synthesize", `{"text":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Text is required", decodeBody(t, rec)["error"])

	rec = do(t, h, http.MethodPost, "/api/tts/synthesize", `{"text":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStateRoundTrip(t *testing.T) {
	h, s := newTestHandler(t)
	blob := `{ "phase": 2, "posts": [1, 2] }`
	s.state.EXPECT().Store(mock.Anything, "wizard", []byte(blob)).Return(nil).Once()
	s.state.EXPECT().Retrieve(mock.Anything, "wizard").Return([]byte(blob), nil).Once()

	rec := do(t, h, http.MethodPost, "/store?name=wizard", blob)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/retrieve?name=wizard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, blob, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestStateStoreInvalid(t *testing.T) {
	h, s := newTestHandler(t)
	s.state.EXPECT().Store(mock.Anything, "", mock.Anything).
		Return(fmt.Errorf("%w: state must be valid JSON", domain.ErrValidation)).Once()

	rec := do(t, h, http.MethodPost, "/store", `{nope`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	h, _ := newTestHandler(t, WithMetrics(metrics.New(), "/metrics"))

	rec := do(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])

	rec = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `campaign_wizard_http_requests_total{method="GET",path="/healthz",status="200"} 1`)
}

func TestFilesAreServed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "campaigns", "c-1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "campaigns", "c-1", "image-0.png"), []byte("png"), 0o644))
	h, _ := newTestHandler(t, WithFiles(dir))

	rec := do(t, h, http.MethodGet, "/files/campaigns/c-1/image-0.png", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png", rec.Body.String())
}

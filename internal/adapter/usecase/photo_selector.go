package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"campaign-wizard/internal/core/domain"
	"campaign-wizard/internal/core/port"
	"campaign-wizard/internal/metrics"
)

const (
	// minSearchResults is the result count below which the search widens.
	minSearchResults = 3
	// topResults is how many leading results the random pick draws from.
	topResults = 3

	DefaultBatchSize  = 5
	DefaultBatchDelay = time.Second
)

var (
	finalFallbackKeywords = []string{"business", "professional", "office"}
	placeholderKeywords   = []string{"business", "professional"}
	errorKeywords         = []string{"business"}
)

// alternativeKeywordGroups are themed sets used by the third search
// attempt; one is picked from the numeric suffix of the post id.
var alternativeKeywordGroups = [][]string{
	{"workspace", "laptop", "coffee"},
	{"teamwork", "meeting", "collaboration"},
	{"city", "skyline", "architecture"},
	{"nature", "landscape", "outdoors"},
	{"technology", "computer", "innovation"},
	{"people", "smiling", "portrait"},
	{"abstract", "colorful", "texture"},
	{"startup", "entrepreneur", "office"},
}

var alternativeModifiers = []string{"modern", "bright", "minimal", "vibrant"}

var trailingDigits = regexp.MustCompile(`(\d+)$`)

// PhotoSelector picks one stock photo for each post. Posts are processed in
// fixed size batches; the posts of one batch run concurrently and batches
// are separated by a fixed pause, which bounds outbound concurrency to the
// batch size.
type PhotoSelector struct {
	keywords *KeywordGenerator
	search   port.ImageSearcher
	rnd      port.RandSource
	sleeper  port.Sleeper
	logger   *slog.Logger
	metrics  *metrics.Metrics

	batchSize  int
	batchDelay time.Duration
}

// PhotoSelectorOption customises a PhotoSelector.
type PhotoSelectorOption func(*PhotoSelector)

// WithBatching overrides the batch size and the pause between batches.
// Non-positive sizes are ignored.
func WithBatching(size int, delay time.Duration) PhotoSelectorOption {
	return func(s *PhotoSelector) {
		if size > 0 {
			s.batchSize = size
		}
		s.batchDelay = delay
	}
}

// WithSelectorMetrics records selection outcomes on m.
func WithSelectorMetrics(m *metrics.Metrics) PhotoSelectorOption {
	return func(s *PhotoSelector) { s.metrics = m }
}

// NewPhotoSelector creates a selector with batches of DefaultBatchSize
// posts separated by DefaultBatchDelay.
func NewPhotoSelector(keywords *KeywordGenerator, search port.ImageSearcher, rnd port.RandSource, sleeper port.Sleeper, logger *slog.Logger, opts ...PhotoSelectorOption) *PhotoSelector {
	s := &PhotoSelector{
		keywords:   keywords,
		search:     search,
		rnd:        rnd,
		sleeper:    sleeper,
		logger:     logger,
		batchSize:  DefaultBatchSize,
		batchDelay: DefaultBatchDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectPhotos returns exactly one result per post, in input order. A
// failure while handling one post is converted into a placeholder result
// for that post and never affects the others.
func (s *PhotoSelector) SelectPhotos(ctx context.Context, posts []domain.Post, brand *domain.BrandData) []domain.PhotoSelectionResult {
	results := make([]domain.PhotoSelectionResult, len(posts))
	for start := 0; start < len(posts); start += s.batchSize {
		if start > 0 {
			if err := s.sleeper.Sleep(ctx, s.batchDelay); err != nil {
				s.logger.Warn("batch pause interrupted", slog.Any("error", err))
			}
		}
		end := min(start+s.batchSize, len(posts))
		s.logger.Debug("selecting photos for batch", slog.Int("from", start), slog.Int("to", end))

		var g errgroup.Group
		for i := start; i < end; i++ {
			g.Go(func() error {
				results[i] = s.selectIsolated(ctx, posts[i], brand)
				return nil
			})
		}
		_ = g.Wait()
	}
	return results
}

// selectIsolated shields the batch from errors and panics of one post.
func (s *PhotoSelector) selectIsolated(ctx context.Context, post domain.Post, brand *domain.BrandData) (res domain.PhotoSelectionResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("photo selection panicked", slog.String("post_id", post.ID), slog.Any("panic", r))
			res = errorResult(post.ID)
			s.metrics.PhotoSelected("error")
		}
	}()

	res, err := s.selectOne(ctx, post, brand)
	if err != nil {
		s.logger.Error("photo selection failed", slog.String("post_id", post.ID), slog.Any("error", err))
		s.metrics.PhotoSelected("error")
		return errorResult(post.ID)
	}
	return res
}

func (s *PhotoSelector) selectOne(ctx context.Context, post domain.Post, brand *domain.BrandData) (domain.PhotoSelectionResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.PhotoSelectionResult{}, err
	}

	keywords := s.keywords.Generate(ctx, post, brand)
	images := s.searchImages(ctx, keywords)
	used, outcome := keywords, "original"

	// Each widening attempt only replaces the working set when it found more.
	if len(images) < minSearchResults {
		enhanced := append(slices.Clone(keywords), enhancers[s.rnd.IntN(len(enhancers))])
		if more := s.searchImages(ctx, enhanced); len(more) > len(images) {
			images, used, outcome = more, enhanced, "enhanced"
		}
	}
	if len(images) < minSearchResults {
		alternative := s.alternativeKeywords(post.ID)
		if more := s.searchImages(ctx, alternative); len(more) > len(images) {
			images, used, outcome = more, alternative, "alternative"
		}
	}
	if err := ctx.Err(); err != nil {
		return domain.PhotoSelectionResult{}, err
	}

	if len(images) == 0 {
		fallback := slices.Clone(finalFallbackKeywords)
		images = s.searchImages(ctx, fallback)
		if len(images) == 0 {
			s.metrics.PhotoSelected("placeholder")
			return domain.PhotoSelectionResult{
				PostID:    post.ID,
				Image:     domain.PlaceholderImage,
				Keywords:  slices.Clone(placeholderKeywords),
				Reasoning: "No stock photos found for any keyword set; using placeholder image",
			}, nil
		}
		used, outcome = fallback, "fallback"
	}

	top := images[:min(topResults, len(images))]
	chosen := top[s.rnd.IntN(len(top))]
	s.metrics.PhotoSelected(outcome)

	return domain.PhotoSelectionResult{
		PostID:    post.ID,
		Image:     chosen,
		Keywords:  used,
		Reasoning: fmt.Sprintf("Selected from top %d of %d results using %s keywords: %s", len(top), len(images), outcome, strings.Join(used, ", ")),
	}, nil
}

func (s *PhotoSelector) searchImages(ctx context.Context, keywords []string) []domain.ImageDescriptor {
	images := s.search.Search(ctx, keywords)
	s.metrics.PhotoSearched(len(images) == 0)
	return images
}

// alternativeKeywords maps the numeric suffix of postID onto one of the
// themed groups and adds a random modifier. Ids without digits use group 0.
func (s *PhotoSelector) alternativeKeywords(postID string) []string {
	n := 0
	if m := trailingDigits.FindString(postID); m != "" {
		if len(m) > 9 {
			m = m[len(m)-9:]
		}
		n, _ = strconv.Atoi(m)
	}
	group := alternativeKeywordGroups[n%len(alternativeKeywordGroups)]
	return append(slices.Clone(group), alternativeModifiers[s.rnd.IntN(len(alternativeModifiers))])
}

func errorResult(postID string) domain.PhotoSelectionResult {
	return domain.PhotoSelectionResult{
		PostID:    postID,
		Image:     domain.PlaceholderImage,
		Keywords:  slices.Clone(errorKeywords),
		Reasoning: "Photo selection failed; using placeholder image",
	}
}

package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-wizard/internal/core/domain"
	"campaign-wizard/internal/core/port/mocks"
)

func newTestSelector(t *testing.T, llm *mocks.MockTextGenerator, search *mocks.MockImageSearcher, sleeper *mocks.MockSleeper) *PhotoSelector {
	t.Helper()
	keywords := NewKeywordGenerator(llm, fixedRand(0), discardLogger())
	return NewPhotoSelector(keywords, search, fixedRand(0), sleeper, discardLogger())
}

func makePosts(n int) []domain.Post {
	posts := make([]domain.Post, n)
	for i := range posts {
		posts[i] = domain.Post{ID: fmt.Sprintf("post-%d", i), Text: "text"}
	}
	return posts
}

func TestSelectPhotosBatchesWithPauses(t *testing.T) {
	llm := mocks.NewMockTextGenerator(t)
	llm.EXPECT().Generate(mock.Anything, mock.Anything).Return("coffee, laptop, office, desk", nil)
	search := mocks.NewMockImageSearcher(t)
	search.EXPECT().Search(mock.Anything, mock.Anything).Return(stockImages(5))
	sleeper := mocks.NewMockSleeper(t)
	// 12 posts are three batches, so two pauses.
	sleeper.EXPECT().Sleep(mock.Anything, time.Second).Return(nil).Times(2)

	results := newTestSelector(t, llm, search, sleeper).SelectPhotos(context.Background(), makePosts(12), nil)

	require.Len(t, results, 12)
	for i, res := range results {
		assert.Equal(t, fmt.Sprintf("post-%d", i), res.PostID)
		assert.Equal(t, "a", res.Image.ID)
		assert.Equal(t, []string{"coffee", "laptop", "office", "desk"}, res.Keywords)
	}
	search.AssertNumberOfCalls(t, "Search", 12)
}

func TestSelectPhotosSingleBatchDoesNotPause(t *testing.T) {
	llm := mocks.NewMockTextGenerator(t)
	llm.EXPECT().Generate(mock.Anything, mock.Anything).Return("coffee, laptop, office, desk", nil)
	search := mocks.NewMockImageSearcher(t)
	search.EXPECT().Search(mock.Anything, mock.Anything).Return(stockImages(3))
	sleeper := mocks.NewMockSleeper(t)

	results := newTestSelector(t, llm, search, sleeper).SelectPhotos(context.Background(), makePosts(5), nil)

	assert.Len(t, results, 5)
	sleeper.AssertNotCalled(t, "Sleep", mock.Anything, mock.Anything)
}

func TestSelectPhotosEmptyInput(t *testing.T) {
	sel := newTestSelector(t, mocks.NewMockTextGenerator(t), mocks.NewMockImageSearcher(t), mocks.NewMockSleeper(t))

	assert.Empty(t, sel.SelectPhotos(context.Background(), nil, nil))
}

func TestSelectPhotosWidensToEnhancedKeywords(t *testing.T) {
	llm := mocks.NewMockTextGenerator(t)
	llm.EXPECT().Generate(mock.Anything, mock.Anything).Return("coffee, laptop, office, desk", nil)
	search := mocks.NewMockImageSearcher(t)
	search.EXPECT().Search(mock.Anything, []string{"coffee", "laptop", "office", "desk"}).Return(stockImages(1)).Once()
	search.EXPECT().Search(mock.Anything, []string{"coffee", "laptop", "office", "desk", "modern"}).Return(stockImages(4)).Once()

	results := newTestSelector(t, llm, search, mocks.NewMockSleeper(t)).SelectPhotos(context.Background(), makePosts(1), nil)

	require.Len(t, results, 1)
	assert.Equal(t, []string{"coffee", "laptop", "office", "desk", "modern"}, results[0].Keywords)
	assert.Contains(t, results[0].Reasoning, "enhanced")
	assert.Contains(t, results[0].Reasoning, "top 3 of 4")
}

func TestSelectPhotosUsesAlternativeGroup(t *testing.T) {
	llm := mocks.NewMockTextGenerator(t)
	llm.EXPECT().Generate(mock.Anything, mock.Anything).Return("coffee, laptop, office, desk", nil)
	search := mocks.NewMockImageSearcher(t)
	search.EXPECT().Search(mock.Anything, []string{"coffee", "laptop", "office", "desk"}).Return(nil).Once()
	search.EXPECT().Search(mock.Anything, []string{"coffee", "laptop", "office", "desk", "modern"}).Return(nil).Once()
	// post-10 maps to group 10 % 8 = 2
	search.EXPECT().Search(mock.Anything, []string{"city", "skyline", "architecture", "modern"}).Return(stockImages(2)).Once()

	posts := []domain.Post{{ID: "post-10", Text: "downtown"}}
	results := newTestSelector(t, llm, search, mocks.NewMockSleeper(t)).SelectPhotos(context.Background(), posts, nil)

	require.Len(t, results, 1)
	assert.Equal(t, []string{"city", "skyline", "architecture", "modern"}, results[0].Keywords)
	assert.Contains(t, results[0].Reasoning, "alternative")
}

func TestSelectPhotosFinalFallbackSearch(t *testing.T) {
	llm := mocks.NewMockTextGenerator(t)
	llm.EXPECT().Generate(mock.Anything, mock.Anything).Return("coffee, laptop, office, desk", nil)
	search := mocks.NewMockImageSearcher(t)
	search.EXPECT().Search(mock.Anything, []string{"business", "professional", "office"}).Return(stockImages(2)).Once()
	search.EXPECT().Search(mock.Anything, mock.Anything).Return(nil).Times(3)

	results := newTestSelector(t, llm, search, mocks.NewMockSleeper(t)).SelectPhotos(context.Background(), makePosts(1), nil)

	require.Len(t, results, 1)
	assert.Equal(t, []string{"business", "professional", "office"}, results[0].Keywords)
	assert.NotEqual(t, domain.PlaceholderImage.ID, results[0].Image.ID)
}

func TestSelectPhotosPlaceholderWhenNothingFound(t *testing.T) {
	llm := mocks.NewMockTextGenerator(t)
	llm.EXPECT().Generate(mock.Anything, mock.Anything).Return("coffee, laptop, office, desk", nil)
	search := mocks.NewMockImageSearcher(t)
	search.EXPECT().Search(mock.Anything, mock.Anything).Return(nil)

	results := newTestSelector(t, llm, search, mocks.NewMockSleeper(t)).SelectPhotos(context.Background(), makePosts(2), nil)

	require.Len(t, results, 2)
	for _, res := range results {
		assert.Equal(t, domain.PlaceholderImage, res.Image)
		assert.Equal(t, []string{"business", "professional"}, res.Keywords)
	}
	// original, enhanced, alternative and final fallback per post
	search.AssertNumberOfCalls(t, "Search", 8)
}

func TestSelectPhotosIsolatesPanics(t *testing.T) {
	llm := mocks.NewMockTextGenerator(t)
	llm.EXPECT().Generate(mock.Anything, mock.Anything).Return("coffee, laptop, office, desk", nil)
	search := mocks.NewMockImageSearcher(t)
	search.EXPECT().Search(mock.Anything, mock.Anything).RunAndReturn(func(context.Context, []string) []domain.ImageDescriptor {
		panic("provider exploded")
	})

	results := newTestSelector(t, llm, search, mocks.NewMockSleeper(t)).SelectPhotos(context.Background(), makePosts(3), nil)

	require.Len(t, results, 3)
	for i, res := range results {
		assert.Equal(t, fmt.Sprintf("post-%d", i), res.PostID)
		assert.Equal(t, domain.PlaceholderImage, res.Image)
		assert.Equal(t, []string{"business"}, res.Keywords)
	}
}

func TestWithBatchingOverridesDefaults(t *testing.T) {
	llm := mocks.NewMockTextGenerator(t)
	llm.EXPECT().Generate(mock.Anything, mock.Anything).Return("coffee, laptop, office, desk", nil)
	search := mocks.NewMockImageSearcher(t)
	search.EXPECT().Search(mock.Anything, mock.Anything).Return(stockImages(3))
	sleeper := mocks.NewMockSleeper(t)
	sleeper.EXPECT().Sleep(mock.Anything, 10*time.Millisecond).Return(nil).Times(3)

	keywords := NewKeywordGenerator(llm, fixedRand(0), discardLogger())
	sel := NewPhotoSelector(keywords, search, fixedRand(0), sleeper, discardLogger(), WithBatching(2, 10*time.Millisecond))

	assert.Len(t, sel.SelectPhotos(context.Background(), makePosts(7), nil), 7)
}

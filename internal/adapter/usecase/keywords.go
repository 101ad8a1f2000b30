package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"campaign-wizard/internal/core/domain"
	"campaign-wizard/internal/core/port"
)

const (
	minKeywords   = 4
	maxKeywords   = 6
	minKeywordLen = 3
	maxKeywordLen = 30 // exclusive, in runes
)

// enhancers widen a thin keyword list or a search that returned too little.
var enhancers = []string{"modern", "professional", "diverse", "bright", "creative", "minimal"}

// fallbackKeywordSets are used when the text model cannot be reached or
// returns nothing usable.
var fallbackKeywordSets = [][]string{
	{"business", "professional", "team"},
	{"technology", "innovation", "digital"},
	{"success", "growth", "achievement"},
	{"creative", "workspace", "modern"},
	{"marketing", "strategy", "planning"},
}

// categoryKeywordSets override the random fallback when the post category
// contains the key.
var categoryKeywordSets = []struct {
	match    string
	keywords []string
}{
	{match: "education", keywords: []string{"education", "learning", "books"}},
	{match: "promotional", keywords: []string{"shopping", "product", "sale"}},
	{match: "engagement", keywords: []string{"community", "people", "conversation"}},
}

// KeywordGenerator turns a post into stock-photo search keywords with a
// text model. It never fails: any problem yields a canned keyword set.
type KeywordGenerator struct {
	llm    port.TextGenerator
	rnd    port.RandSource
	logger *slog.Logger
}

// NewKeywordGenerator creates a keyword generator.
func NewKeywordGenerator(llm port.TextGenerator, rnd port.RandSource, logger *slog.Logger) *KeywordGenerator {
	return &KeywordGenerator{llm: llm, rnd: rnd, logger: logger}
}

// Generate returns between 1 and 6 lower-case, de-duplicated keywords for
// post. brand may be nil.
func (g *KeywordGenerator) Generate(ctx context.Context, post domain.Post, brand *domain.BrandData) []string {
	resp, err := g.llm.Generate(ctx, buildKeywordPrompt(post, brand))
	if err != nil {
		g.logger.Warn("keyword generation failed, using fallback", slog.String("post_id", post.ID), slog.Any("error", err))
		return g.fallback(post)
	}
	keywords := parseKeywords(resp)
	if len(keywords) == 0 {
		g.logger.Warn("keyword generation returned nothing usable", slog.String("post_id", post.ID))
		return g.fallback(post)
	}
	if len(keywords) < minKeywords {
		keywords = appendEnhancer(keywords, g.rnd)
	}
	return keywords
}

func (g *KeywordGenerator) fallback(post domain.Post) []string {
	category := strings.ToLower(post.Category)
	for _, set := range categoryKeywordSets {
		if strings.Contains(category, set.match) {
			return slices.Clone(set.keywords)
		}
	}
	return slices.Clone(fallbackKeywordSets[g.rnd.IntN(len(fallbackKeywordSets))])
}

// parseKeywords splits a comma separated model answer into clean keywords.
func parseKeywords(resp string) []string {
	keywords := make([]string, 0, maxKeywords)
	for _, raw := range strings.Split(resp, ",") {
		kw := strings.TrimSpace(strings.ToLower(raw))
		if n := utf8.RuneCountInString(kw); n < minKeywordLen || n >= maxKeywordLen {
			continue
		}
		if slices.Contains(keywords, kw) {
			continue
		}
		keywords = append(keywords, kw)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

// appendEnhancer adds one random enhancer that is not already present.
func appendEnhancer(keywords []string, rnd port.RandSource) []string {
	start := rnd.IntN(len(enhancers))
	for i := range enhancers {
		candidate := enhancers[(start+i)%len(enhancers)]
		if !slices.Contains(keywords, candidate) {
			return append(slices.Clone(keywords), candidate)
		}
	}
	return keywords
}

func buildKeywordPrompt(post domain.Post, brand *domain.BrandData) string {
	var b strings.Builder
	b.WriteString("You pick search keywords for stock photography.\n")
	b.WriteString("Suggest 4-6 specific, visual keywords that would find a fitting photo for this social media post.\n\n")
	fmt.Fprintf(&b, "Post: %s\n", post.Text)
	if post.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", post.Category)
	}
	if post.Platform != "" {
		fmt.Fprintf(&b, "Platform: %s\n", post.Platform)
	}
	if brand != nil {
		if brand.Industry != "" {
			fmt.Fprintf(&b, "Industry: %s\n", brand.Industry)
		}
		if brand.VisualStyle != "" {
			fmt.Fprintf(&b, "Visual style: %s\n", brand.VisualStyle)
		}
	}
	b.WriteString("\nRespond with the keywords only, comma-separated, no numbering and no explanations.")
	return b.String()
}

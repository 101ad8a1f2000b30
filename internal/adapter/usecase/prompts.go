package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"campaign-wizard/internal/core/domain"
)

func brandVoicePrompt(in domain.CampaignInput) string {
	var b strings.Builder
	b.WriteString("You are a brand strategist. Write a concise brand voice profile that later copywriting will follow.\n\n")
	fmt.Fprintf(&b, "Brand: %s\n", in.Brand.Name)
	writeOptional(&b, "Description", in.Brand.Description)
	writeOptional(&b, "Tone", in.Brand.Tone)
	writeOptional(&b, "Visual style", in.Brand.VisualStyle)
	fmt.Fprintf(&b, "Product: %s\n", in.Product.Name)
	writeOptional(&b, "Product description", in.Product.Description)
	writeOptional(&b, "Target audience", in.Product.TargetAudience)
	if len(in.Sources) > 0 {
		fmt.Fprintf(&b, "Reference material: %s\n", strings.Join(in.Sources, "; "))
	}
	b.WriteString("\nDescribe personality, vocabulary, sentence style and what to avoid. Keep it under 200 words.")
	return b.String()
}

func adCopyPrompt(in domain.CampaignInput, brandVoice, platform string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a %s ad for %s by %s.\n\n", platform, in.Product.Name, in.Brand.Name)
	fmt.Fprintf(&b, "Brand voice:\n%s\n\n", brandVoice)
	fmt.Fprintf(&b, "Campaign goal: %s\n", in.Campaign.Goal)
	writeOptional(&b, "Product description", in.Product.Description)
	writeOptional(&b, "Target audience", in.Product.TargetAudience)
	writeOptional(&b, "Call to action", in.Campaign.CallToAction)
	fmt.Fprintf(&b, "\nFollow %s conventions for length, hashtags and formatting. Return only the ad text.", platform)
	return b.String()
}

func imagePromptsPrompt(in domain.CampaignInput, brandVoice string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create %d distinct prompts for an image generation model to illustrate a campaign for %s by %s.\n\n",
		domain.MaxImagePrompts, in.Product.Name, in.Brand.Name)
	fmt.Fprintf(&b, "Brand voice:\n%s\n\n", brandVoice)
	writeOptional(&b, "Visual style", in.Brand.VisualStyle)
	writeOptional(&b, "Target audience", in.Product.TargetAudience)
	fmt.Fprintf(&b, "Campaign goal: %s\n", in.Campaign.Goal)
	b.WriteString("\nWrite one prompt per line describing subject, setting, lighting and composition. No numbering, no extra text.")
	return b.String()
}

func writeOptional(b *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(b, "%s: %s\n", label, value)
	}
}

// minPromptRunes is the shortest image prompt line kept.
const minPromptRunes = 11

// parseImagePrompts keeps trimmed lines of at least 11 characters, at most
// domain.MaxImagePrompts of them.
func parseImagePrompts(resp string) []string {
	prompts := make([]string, 0, domain.MaxImagePrompts)
	for _, line := range strings.Split(resp, "\n") {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) < minPromptRunes {
			continue
		}
		prompts = append(prompts, line)
		if len(prompts) == domain.MaxImagePrompts {
			break
		}
	}
	return prompts
}

package domain

// Post is a generated social media post waiting for a photo. Category and
// Platform are optional hints.
type Post struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
	Platform string `json:"platform,omitempty"`
}

// BrandData carries the optional brand metadata that sharpens keyword
// generation.
type BrandData struct {
	Name        string `json:"name,omitempty"`
	Industry    string `json:"industry,omitempty"`
	VisualStyle string `json:"visualStyle,omitempty"`
}

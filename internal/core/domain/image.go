package domain

// ImageDescriptor is the provider-independent shape of a stock photo.
type ImageDescriptor struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Description  string `json:"description"`
	Photographer string `json:"photographer"`
	DownloadURL  string `json:"downloadUrl"`
}

// PhotoSelectionResult pairs a post with the photo chosen for it.
type PhotoSelectionResult struct {
	PostID    string          `json:"postId"`
	Image     ImageDescriptor `json:"image"`
	Keywords  []string        `json:"keywords"`
	Reasoning string          `json:"reasoning"`
}

// PlaceholderImage is returned when no search attempt produced a photo.
var PlaceholderImage = ImageDescriptor{
	ID:           "placeholder",
	URL:          "https://images.unsplash.com/photo-1497366216548-37526070297c?w=1080",
	ThumbnailURL: "https://images.unsplash.com/photo-1497366216548-37526070297c?w=400",
	Description:  "Professional office workspace",
	Photographer: "Unsplash",
	DownloadURL:  "https://images.unsplash.com/photo-1497366216548-37526070297c",
}

// GeneratedImage is the raw output of an image model. Exactly one of the
// fields is expected to be set: Base64 holds an encoded PNG, optionally as a
// data URI, Binary holds the image bytes.
type GeneratedImage struct {
	Base64 string
	Binary []byte
}

package usecase

import (
	"io"
	"log/slog"

	"campaign-wizard/internal/core/domain"
)

// fixedRand always returns the same index, clamped to n.
type fixedRand int

func (r fixedRand) IntN(n int) int {
	return min(int(r), n-1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func stockImages(n int) []domain.ImageDescriptor {
	images := make([]domain.ImageDescriptor, n)
	for i := range images {
		images[i] = domain.ImageDescriptor{ID: string(rune('a' + i)), URL: "https://img.example/" + string(rune('a'+i))}
	}
	return images
}

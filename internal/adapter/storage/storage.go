// Package storage holds the object storage drivers for rendered campaign
// images.
package storage

import (
	"context"
	"fmt"
	"strings"

	"campaign-wizard/internal/config/configs"
	"campaign-wizard/internal/core/port"
)

// New returns the driver selected by cfg.Driver.
func New(ctx context.Context, cfg configs.Storage) (port.ObjectStorage, error) {
	switch strings.ToLower(cfg.Driver) {
	case "s3", "r2":
		return NewS3(ctx, cfg)
	case "local", "":
		return NewLocal(cfg.LocalDir, cfg.PublicDomain)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

func publicURL(domain, key string) string {
	return strings.TrimRight(domain, "/") + "/" + strings.TrimLeft(key, "/")
}

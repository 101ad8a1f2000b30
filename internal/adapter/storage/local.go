package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Local writes objects below a directory. The HTTP server exposes the
// directory so the returned URLs resolve.
type Local struct {
	dir          string
	publicDomain string
}

// NewLocal creates dir if needed.
func NewLocal(dir, publicDomain string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Local{dir: dir, publicDomain: publicDomain}, nil
}

// Dir is the root directory of stored objects.
func (l *Local) Dir() string {
	return l.dir
}

// Put writes data to dir/key. Keys escaping the directory are rejected.
func (l *Local) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	if key == "" || strings.Contains(key, "..") {
		return "", errors.New("invalid object key")
	}
	path := filepath.Join(l.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create object dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write object %s: %w", key, err)
	}
	return publicURL(l.publicDomain, key), nil
}

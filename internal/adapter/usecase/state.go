package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"campaign-wizard/internal/core/domain"
	"campaign-wizard/internal/core/port"
)

// DefaultStateName is used when a caller does not name its state blob.
const DefaultStateName = "default"

var emptyState = []byte("{}")

// StateService persists opaque wizard state. Blobs are stored byte for
// byte so a retrieve returns exactly what was stored.
type StateService struct {
	store port.KVStore
}

// NewStateService creates a state service.
func NewStateService(store port.KVStore) *StateService {
	return &StateService{store: store}
}

// Store replaces the blob stored under name.
func (s *StateService) Store(ctx context.Context, name string, blob []byte) error {
	if !json.Valid(blob) {
		return fmt.Errorf("%w: state must be valid JSON", domain.ErrValidation)
	}
	if err := s.store.Put(ctx, stateKey(name), blob); err != nil {
		return fmt.Errorf("store state %q: %w", name, err)
	}
	return nil
}

// Retrieve returns the blob stored under name, or an empty JSON object when
// nothing was stored yet.
func (s *StateService) Retrieve(ctx context.Context, name string) ([]byte, error) {
	blob, err := s.store.Get(ctx, stateKey(name))
	if errors.Is(err, domain.ErrNotFound) {
		return emptyState, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieve state %q: %w", name, err)
	}
	return blob, nil
}

func stateKey(name string) string {
	if name == "" {
		name = DefaultStateName
	}
	return "state:" + name
}

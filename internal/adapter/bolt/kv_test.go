package bolt

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-wizard/internal/core/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStorePutGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "state:default", []byte(`{"step":1}`)))
	require.NoError(t, s.Put(ctx, "state:default", []byte(`{"step":2}`)))

	got, err := s.Get(ctx, "state:default")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"step":2}`), got)
}

func TestStoreMissingKey(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(context.Background(), "campaign:absent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(context.Background(), "k", []byte("v")))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

package db

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-wizard/internal/config/configs"
)

func mustURL(t *testing.T, raw string) url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return *u
}

func TestPoolConfigAppliesBounds(t *testing.T) {
	cfg := configs.Postgres{
		Addr:     mustURL(t, "postgres://u:p@db:5432/wizard?sslmode=disable"),
		MaxConns: 8,
		MinConns: 20,
	}

	conf, err := poolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "db", conf.ConnConfig.Host)
	assert.Equal(t, "wizard", conf.ConnConfig.Database)
	assert.EqualValues(t, 8, conf.MaxConns)
	// min is capped by max
	assert.EqualValues(t, 8, conf.MinConns)
}

func TestPoolConfigKeepsDefaults(t *testing.T) {
	conf, err := poolConfig(configs.Postgres{Addr: mustURL(t, "postgres://u:p@db:5432/wizard")})
	require.NoError(t, err)

	assert.Positive(t, conf.MaxConns)
	assert.Zero(t, conf.MinConns)
}

func TestPoolConfigRejectsBadAddress(t *testing.T) {
	_, err := poolConfig(configs.Postgres{Addr: mustURL(t, "postgres://u:p@db:notaport/wizard")})
	assert.Error(t, err)
}

package configs

import (
	"fmt"
	"strings"
)

// KV selects the backend holding campaign metadata records and the
// durable state blobs. Driver is either "postgres" or "bolt". BoltPath is
// the database file used by the bolt driver.
type KV struct {
	Driver   string `env:"DRIVER" envDefault:"bolt"`
	BoltPath string `env:"BOLT_PATH" envDefault:"campaign-wizard.db"`
}

// NormalizedDriver returns the lower-cased driver name or an error when the
// driver is not supported.
func (c KV) NormalizedDriver() (string, error) {
	switch d := strings.ToLower(strings.TrimSpace(c.Driver)); d {
	case "postgres", "bolt":
		return d, nil
	default:
		return "", fmt.Errorf("unsupported kv driver %q", c.Driver)
	}
}

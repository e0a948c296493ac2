// Package config loads cmd/ercrypt's optional defaults file. The three
// primitive packages (viper1, nacha, kobra) never read it; only the CLI
// does, keeping the core pure per spec.md's concurrency & resource model.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// NachaAdapter names one of NACHA's fixed-width adapters by output size.
type NachaAdapter string

const (
	Nacha128 NachaAdapter = "128"
	Nacha256 NachaAdapter = "256"
	Nacha384 NachaAdapter = "384"
	Nacha512 NachaAdapter = "512"
	Nacha768 NachaAdapter = "768"
)

// Config holds cmd/ercrypt's defaults, overridable per-invocation by flags.
type Config struct {
	// DefaultAdapter selects which fixed-width NACHA adapter the "hash"
	// subcommand uses when no --width flag is given.
	DefaultAdapter NachaAdapter `toml:"default_adapter"`
	// Extended selects the "E" (extended-denominator) variant of
	// DefaultAdapter when true.
	Extended bool `toml:"extended"`
	// DefaultIV is the KOBRA IV byte used when --iv is not given on the
	// conceal/reveal subcommands.
	DefaultIV byte `toml:"default_iv"`
}

// Default returns the configuration cmd/ercrypt falls back to when no file
// is present.
func Default() Config {
	return Config{
		DefaultAdapter: Nacha256,
		Extended:       false,
		DefaultIV:      0x00,
	}
}

// Load reads a TOML config file at path, overlaying it onto Default(). A
// missing file is not an error: Default() is returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: decoding %s", path)
	}
	return cfg, nil
}

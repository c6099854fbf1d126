// Package config loads the engine's run-time options from an optional
// TOML file next to the binary.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// EngineOptions holds the tunables a host may override at startup.
// Anything left unset in the file keeps its DefaultOptions value, and
// Load also replaces a zero or negative value with the default.
type EngineOptions struct {
	Depth      int `toml:"depth"`
	HashSizeMB int `toml:"hash_size_mb"`
}

// DefaultOptions returns the engine's defaults: depth 6, a 64MB table.
func DefaultOptions() EngineOptions {
	return EngineOptions{
		Depth:      6,
		HashSizeMB: 64,
	}
}

// Load reads path and overlays its values onto DefaultOptions. A
// missing file is not an error — the engine just runs with defaults.
func Load(path string) (EngineOptions, error) {
	opts := DefaultOptions()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return opts, nil
	}

	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return EngineOptions{}, err
	}

	if opts.Depth <= 0 {
		opts.Depth = DefaultOptions().Depth
	}
	if opts.HashSizeMB <= 0 {
		opts.HashSizeMB = DefaultOptions().HashSizeMB
	}

	return opts, nil
}

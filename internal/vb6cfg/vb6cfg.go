// Package vb6cfg loads vb6p's on-disk configuration: default source
// encoding, diagnostic verbosity, and the settings internal/vb6server
// needs to listen and persist data. Configuration files are TOML, decoded
// with BurntSushi/toml the same way internal/tqw unmarshals its own
// text-based data files.
package vb6cfg

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is vb6p's full configuration tree.
type Config struct {
	Encoding    EncodingConfig    `toml:"encoding"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Server      ServerConfig      `toml:"server"`
}

// EncodingConfig controls how vb6p decodes source files before lexing.
type EncodingConfig struct {
	// Default names a code page for a source file with no BOM and content
	// that isn't valid UTF-8, e.g. "windows-1252". vb6p does not read this
	// field: internal/vb6enc always falls back to Windows-1252.
	Default string `toml:"default"`
}

// DiagnosticsConfig controls how vb6p reports non-fatal diagnostics.
type DiagnosticsConfig struct {
	// MaxPerFile is a per-file cap on printed diagnostics, zero meaning
	// unlimited. vb6p does not read this field; it prints every diagnostic.
	MaxPerFile int `toml:"max_per_file"`
	// FailOnAny is a switch for exiting non-zero on any diagnostic. vb6p
	// does not read this field; it exits non-zero whenever any file
	// produced a diagnostic.
	FailOnAny bool `toml:"fail_on_any"`
}

// ServerConfig holds internal/vb6server settings for `vb6p --serve`. Of
// these, vb6p reads only JWTSecretEnv; the listen address comes from the
// --serve flag and the database directory from --db.
type ServerConfig struct {
	ListenAddress string `toml:"listen_address"`
	DatabasePath  string `toml:"database_path"`
	JWTSecretEnv  string `toml:"jwt_secret_env"`
}

// Default returns the configuration vb6p assumes when no config file is
// given.
func Default() Config {
	return Config{
		Diagnostics: DiagnosticsConfig{MaxPerFile: 0, FailOnAny: false},
		Server: ServerConfig{
			ListenAddress: ":8080",
			DatabasePath:  "vb6p.db",
			JWTSecretEnv:  "VB6P_JWT_SECRET",
		},
	}
}

// Load reads and decodes a TOML config file at path, starting from
// Default() so an on-disk file only needs to set what it cares about
// overriding.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

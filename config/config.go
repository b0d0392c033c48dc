// Package config loads cminify's TOML configuration file: reserved
// identifiers that must never be renamed, reprinter formatting options,
// and lexer ignore-character overrides. Grounded on dekarrin-tunaq's use
// of github.com/BurntSushi/toml for its own settings files, and on
// project/'s shape for "a config struct loaded from one file on disk."
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds everything that tunes a minify run beyond the grammar,
// which is fixed.
type Config struct {
	// Reserved lists identifiers that must pass through renaming
	// unchanged, beyond "main" (e.g. symbols an external linker or test
	// harness depends on by name).
	Reserved []string `toml:"reserved"`

	Reprint ReprintOptions `toml:"reprint"`

	// LexerIgnore lists extra characters the lexer skips between tokens,
	// on top of the built-in whitespace set (space, tab, CR, LF).
	LexerIgnore string `toml:"lexer_ignore"`
}

// ReprintOptions tunes the final token-to-text pass.
type ReprintOptions struct {
	// KeepPreprocessorNewlines controls whether PREPROCESSOR tokens are
	// newline-terminated (the default) or left to run into the next
	// token with a single space, for callers that post-process the
	// output through another formatter anyway.
	KeepPreprocessorNewlines bool `toml:"keep_preprocessor_newlines"`
}

// Default returns the configuration used when no file is given: no
// extra reserved identifiers, preprocessor newlines kept.
func Default() Config {
	return Config{Reprint: ReprintOptions{KeepPreprocessorNewlines: true}}
}

// Load reads and decodes a TOML configuration file, starting from
// Default() so an omitted table keeps its default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// WriteDefault writes the default configuration to path, for `cminify
// config init`.
func WriteDefault(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(Default())
}

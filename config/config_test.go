package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultKeepsPreprocessorNewlines(t *testing.T) {
	cfg := Default()
	if !cfg.Reprint.KeepPreprocessorNewlines {
		t.Error("expected default to keep preprocessor newlines")
	}
	if len(cfg.Reserved) != 0 {
		t.Errorf("expected no reserved identifiers by default, got %v", cfg.Reserved)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cminify.toml")
	contents := "reserved = [\"shim_entry\"]\n" +
		"lexer_ignore = \"\\f\\u000B\"\n\n" +
		"[reprint]\nkeep_preprocessor_newlines = false\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Reserved) != 1 || cfg.Reserved[0] != "shim_entry" {
		t.Errorf("Reserved = %v, want [shim_entry]", cfg.Reserved)
	}
	if cfg.Reprint.KeepPreprocessorNewlines {
		t.Error("expected keep_preprocessor_newlines = false to be honored")
	}
	if cfg.LexerIgnore != "\f\v" {
		t.Errorf("LexerIgnore = %q, want %q", cfg.LexerIgnore, "\f\v")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

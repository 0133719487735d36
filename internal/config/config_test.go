package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/zoobzio/ecv1"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ecv1.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Chain != "gz>b64" || cfg.ContentType != "json" || !cfg.Pretty {
		t.Errorf("Default() = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error: %v", err)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, "chain: none\ncontent_type: text\npretty: false\nlog_level: debug\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Chain != "none" || cfg.ContentType != "text" || cfg.Pretty {
		t.Errorf("Load = %+v", cfg)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
	if got := cfg.Options(); got != (ecv1.Options{Chain: "none", ContentType: "text"}) {
		t.Errorf("Options() = %+v", got)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "content_type: text\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Chain != "gz>b64" || !cfg.Pretty {
		t.Errorf("Load = %+v, want default chain and pretty", cfg)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Chain != "gz>b64" {
		t.Errorf("Chain = %q, want default", cfg.Chain)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"unknown transform", "chain: gz>zstd\n", ecv1.ErrUnknownTransform},
		{"empty chain", "chain: \"\"\n", ecv1.ErrInvalidChain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, tt.want) {
				t.Errorf("Load error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Load(writeConfig(t, "chian: none\n")); err == nil {
		t.Error("Load should reject unknown keys")
	}
	if _, err := Load(writeConfig(t, "log_level: loud\n")); err == nil {
		t.Error("Load should reject unknown log levels")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestResolve(t *testing.T) {
	t.Setenv(EnvVar, "/from/env.yaml")

	if got := Resolve("/from/flag.yaml"); got != "/from/flag.yaml" {
		t.Errorf("Resolve(flag) = %q", got)
	}
	if got := Resolve(""); got != "/from/env.yaml" {
		t.Errorf("Resolve(\"\") = %q, want env value", got)
	}
}

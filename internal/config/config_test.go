// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Encode.InPlaceDefault {
		t.Error("default encode.in_place_default should be true")
	}
	if cfg.Encode.Backup {
		t.Error("default encode.backup should be false")
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("default ui.color_scheme = %q, want %q", cfg.UI.ColorScheme, ColorSchemeAuto)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestLoad_NoConfigFileUsesDefaults(t *testing.T) {
	t.Cleanup(Reset)
	SetConfigDirOverride(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoad_ReadsTOMLFile(t *testing.T) {
	t.Cleanup(Reset)
	dir := t.TempDir()
	SetConfigDirOverride(dir)

	content := `
[encode]
in_place_default = false
backup = true

[ui]
color_scheme = "dark"
verbose = true
`
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Encode.InPlaceDefault {
		t.Error("encode.in_place_default should be false from file")
	}
	if !cfg.Encode.Backup {
		t.Error("encode.backup should be true from file")
	}
	if cfg.UI.ColorScheme != ColorSchemeDark {
		t.Errorf("ui.color_scheme = %q, want dark", cfg.UI.ColorScheme)
	}
	if !cfg.UI.Verbose {
		t.Error("ui.verbose should be true from file")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Cleanup(Reset)
	dir := t.TempDir()
	SetConfigDirOverride(dir)

	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte("[ui]\nverbose = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.UI.Verbose {
		t.Error("ui.verbose should come from the file")
	}
	if !cfg.Encode.InPlaceDefault {
		t.Error("unset encode.in_place_default should keep its default")
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("unset ui.color_scheme = %q, want default auto", cfg.UI.ColorScheme)
	}
}

func TestLoad_InvalidColorScheme(t *testing.T) {
	t.Cleanup(Reset)
	dir := t.TempDir()
	SetConfigDirOverride(dir)

	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte("[ui]\ncolor_scheme = \"sepia\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load()
	if !errors.Is(err, ErrInvalidColorScheme) {
		t.Errorf("Load() error = %v, want ErrInvalidColorScheme", err)
	}
}

func TestLoad_ExplicitFileOverride(t *testing.T) {
	t.Cleanup(Reset)
	dir := t.TempDir()

	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("[encode]\nbackup = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigFilePathOverride(path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Encode.Backup {
		t.Error("encode.backup should come from the override file")
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	t.Cleanup(Reset)
	SetConfigFilePathOverride(filepath.Join(t.TempDir(), "nope.toml"))

	if _, err := Load(); err == nil {
		t.Error("Load() should fail when an explicit config file is missing")
	}
}

func TestProvider_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.toml")
	if err := os.WriteFile(path, []byte("[ui]\nverbose = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.UI.Verbose {
		t.Error("ui.verbose should come from the provided file")
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
}

func TestProvider_LoadDefaultsReportNoPath(t *testing.T) {
	cfg, resolved, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Error("empty config dir should yield the defaults")
	}
	if resolved != "" {
		t.Errorf("resolved path = %q, want empty for defaults", resolved)
	}
}

func TestCreateDefaultConfigAndReload(t *testing.T) {
	t.Cleanup(Reset)
	dir := t.TempDir()
	SetConfigDirOverride(dir)

	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}

	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	// Creating again is a no-op, not an error.
	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("second CreateDefaultConfig() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() after init error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("generated config loads as %+v, want defaults", cfg)
	}
}

func TestGenerateTOML(t *testing.T) {
	out, err := GenerateTOML(DefaultConfig())
	if err != nil {
		t.Fatalf("GenerateTOML() error = %v", err)
	}
	for _, want := range []string{"[encode]", "[ui]", "in_place_default", "color_scheme"} {
		if !strings.Contains(out, want) {
			t.Errorf("GenerateTOML() missing %q:\n%s", want, out)
		}
	}
}

func TestColorScheme_IsValid(t *testing.T) {
	tests := []struct {
		scheme ColorScheme
		want   bool
	}{
		{ColorSchemeAuto, true},
		{ColorSchemeDark, true},
		{ColorSchemeLight, true},
		{"sepia", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := tt.scheme.IsValid(); got != tt.want {
			t.Errorf("ColorScheme(%q).IsValid() = %v, want %v", tt.scheme, got, tt.want)
		}
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvTheme, "")
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvLogLevel, "")
	return dir
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	withConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("Load() = %+v, want defaults %+v", cfg, DefaultConfig())
	}
	if Exists() {
		t.Fatal("Exists() = true before any Save")
	}
}

func TestSaveThenLoad(t *testing.T) {
	home := withConfigHome(t)

	want := DefaultConfig()
	want.Appearance.Theme = "light"
	want.Appearance.Layout = LayoutCompact
	want.Server.Addr = "0.0.0.0:9000"

	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := Path(); got != filepath.Join(home, "taxdiff", "config.toml") {
		t.Fatalf("Path() = %q", got)
	}

	info, err := os.Stat(Path())
	if err != nil {
		t.Fatalf("stat config: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("config perms = %o, want 600", perm)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	withConfigHome(t)
	if err := Save(DefaultConfig()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	t.Setenv(EnvTheme, "light")
	t.Setenv(EnvAddr, ":7000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "light" {
		t.Fatalf("theme = %q, want light", cfg.Appearance.Theme)
	}
	if cfg.Server.Addr != ":7000" {
		t.Fatalf("addr = %q, want :7000", cfg.Server.Addr)
	}
	if cfg.Server.LogLevel != "info" {
		t.Fatalf("log level = %q, want file value info", cfg.Server.LogLevel)
	}
}

func TestLoadFile_IgnoresEnv(t *testing.T) {
	withConfigHome(t)
	t.Setenv(EnvTheme, "light")

	cfg, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Appearance.Theme != "dark" {
		t.Fatalf("LoadFile theme = %q, want file/default dark", cfg.Appearance.Theme)
	}
}

func TestValidateAddr(t *testing.T) {
	tests := []struct {
		addr string
		ok   bool
	}{
		{"127.0.0.1:8788", true},
		{":7000", true},
		{"[::1]:80", true},
		{"localhost", false},
		{"host:http", false},
		{"host:70000", false},
	}
	for _, tt := range tests {
		if err := ValidateAddr(tt.addr); (err == nil) != tt.ok {
			t.Errorf("ValidateAddr(%q) err = %v, want ok=%v", tt.addr, err, tt.ok)
		}
	}
}

func TestLoad_RejectsUnknownLayout(t *testing.T) {
	withConfigHome(t)
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	body := "[appearance]\ntheme = \"dark\"\nlayout = \"diagonal\"\n"
	if err := os.WriteFile(Path(), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "diagonal") {
		t.Fatalf("Load() err = %v, want layout error", err)
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	withConfigHome(t)
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("[appearance\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Fatalf("Load() err = %v, want parse error", err)
	}
}

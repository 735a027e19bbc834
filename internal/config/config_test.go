package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Shell != DefaultShell || cfg.MaxRows != DefaultMaxRows {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_ExpandsExtraDirs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "launchkit.yaml")
	body := "shell: bash\nextra_dirs:\n  - ~/apps\n  - /opt/apps\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Shell != "bash" {
		t.Fatalf("shell = %q", cfg.Shell)
	}
	if cfg.MaxRows != DefaultMaxRows {
		t.Fatalf("max_rows default not applied: %d", cfg.MaxRows)
	}
	if len(cfg.ExtraDirs) != 2 || cfg.ExtraDirs[0] != filepath.Join(home, "apps") || cfg.ExtraDirs[1] != "/opt/apps" {
		t.Fatalf("unexpected extra dirs: %v", cfg.ExtraDirs)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launchkit.yaml")
	if err := os.WriteFile(path, []byte("shell: [unterminated\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestSave_RoundTripsThroughLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "launchkit.yaml")
	want := DefaultConfig()
	want.ExtraDirs = []string{"/srv/apps"}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Shell != want.Shell || len(got.ExtraDirs) != 1 || got.ExtraDirs[0] != "/srv/apps" {
		t.Fatalf("unexpected config: %+v", got)
	}
}

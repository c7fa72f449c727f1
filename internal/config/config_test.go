package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "holdall.yaml", "manifest: pack.yml\nformat: table\nlimit: 3\nno_color: true\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Manifest == nil || *cfg.Manifest != "pack.yml" {
		t.Fatalf("expected manifest=pack.yml, got %#v", cfg.Manifest)
	}
	if cfg.Format == nil || *cfg.Format != "table" {
		t.Fatalf("expected format=table, got %#v", cfg.Format)
	}
	if cfg.Limit == nil || *cfg.Limit != 3 {
		t.Fatalf("expected limit=3, got %#v", cfg.Limit)
	}
	if cfg.NoColor == nil || !*cfg.NoColor {
		t.Fatalf("expected no_color=true")
	}
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	// place both, expect the dotfile to be picked first by search order
	writeTemp(t, dir, "holdall.yaml", "limit: 1\n")
	writeTemp(t, dir, ".holdall.yaml", "limit: 7\n")
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.Limit == nil || *cfg.Limit != 7 {
		t.Fatalf("expected limit=7 from .holdall.yaml, got %#v", cfg.Limit)
	}
}

func TestLoadLocal_NoConfig(t *testing.T) {
	if _, err := LoadLocal(t.TempDir()); err == nil {
		t.Fatal("expected error when no local config exists")
	}
}

func TestLoadGlobal_XDG_Config(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "holdall")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yml"), []byte("limit: 9\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if cfg.Limit == nil || *cfg.Limit != 9 {
		t.Fatalf("expected limit=9 from global config, got %#v", cfg.Limit)
	}
}

func TestLoadGlobal_NoConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")
	if _, err := LoadGlobal(); err == nil {
		t.Fatal("expected error when no global config dir exists")
	}
}

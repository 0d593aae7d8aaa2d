package config

import (
	"os"
	"path/filepath"
	"testing"

	"roomcarve/pkg/game/generator"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roomcarve.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GeneratorConfig() != generator.DefaultConfig() {
		t.Errorf("GeneratorConfig() = %+v, want %+v", cfg.GeneratorConfig(), generator.DefaultConfig())
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoad_FileMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
map:
  width: 50
  seed: 99
generator:
  attempts: 120
  placement: bsp
logging:
  format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Map.Width != 50 || cfg.Map.Height != 40 {
		t.Errorf("Map = %+v, want width 50 and default height 40", cfg.Map)
	}
	if cfg.Map.Seed != 99 {
		t.Errorf("Map.Seed = %d, want 99", cfg.Map.Seed)
	}
	gen := cfg.GeneratorConfig()
	if gen.Attempts != 120 || gen.MinRoomSize != 3 || gen.MaxRoomSize != 15 {
		t.Errorf("GeneratorConfig() = %+v", gen)
	}
	if gen.Placement != generator.PlacementBSP {
		t.Errorf("Placement = %q, want bsp", gen.Placement)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.FileMaxBackups != 5 {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "map: [unterminated")
	if _, err := Load(path); err == nil {
		t.Error("Load accepted malformed YAML")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ROOMCARVE_WIDTH", "33")
	t.Setenv("ROOMCARVE_ATTEMPTS", "7")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Map.Width != 33 {
		t.Errorf("Map.Width = %d, want 33", cfg.Map.Width)
	}
	if cfg.Generator.Attempts != 7 {
		t.Errorf("Generator.Attempts = %d, want 7", cfg.Generator.Attempts)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoad_BadEnvNumber(t *testing.T) {
	t.Setenv("ROOMCARVE_HEIGHT", "tall")
	if _, err := Load(""); err == nil {
		t.Error("Load accepted a non-numeric ROOMCARVE_HEIGHT")
	}
}

package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if cfg.Floors != NumFloors || cfg.Capacity != Capacity || cfg.StartFloor != StartFloor {
		t.Errorf("Default() = %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "sweepsim.yaml", "floors: 8\ncapacity: 4\nmanifest: people.txt\nlog_level: debug\n")

	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	want := Config{Floors: 8, Capacity: 4, StartFloor: 0, Manifest: "people.txt", LogLevel: "debug"}
	if cfg != want {
		t.Errorf("LoadFile:\n got  %+v\n want %+v", cfg, want)
	}
}

func TestLoadFileEmptyKeepsDefaults(t *testing.T) {
	path := writeFile(t, "empty.yaml", "")
	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile on empty file failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Empty file changed config to %+v", cfg)
	}
}

func TestLoadFileErrors(t *testing.T) {
	cfg := Default()
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("LoadFile on missing file succeeded")
	}
	bad := writeFile(t, "bad.yaml", "floors: [1, 2\n")
	if err := cfg.LoadFile(bad); err == nil {
		t.Errorf("LoadFile on bad YAML succeeded")
	}
}

func TestLoadEnv(t *testing.T) {
	path := writeFile(t, ".env", "SWEEPSIM_FLOORS=9\nSWEEPSIM_CAPACITY=3\nSWEEPSIM_MANIFEST=from-file.txt\n")
	t.Setenv("SWEEPSIM_CAPACITY", "6")

	cfg := Default()
	if err := cfg.LoadEnv(path, false); err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if cfg.Floors != 9 {
		t.Errorf("Floors = %d, want 9 from file", cfg.Floors)
	}
	if cfg.Capacity != 6 {
		t.Errorf("Capacity = %d, want 6 from process environment", cfg.Capacity)
	}
	if cfg.Manifest != "from-file.txt" {
		t.Errorf("Manifest = %q", cfg.Manifest)
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), ".env")
	cfg := Default()
	if err := cfg.LoadEnv(missing, true); err != nil {
		t.Errorf("Optional missing env file failed: %v", err)
	}
	if err := cfg.LoadEnv(missing, false); err == nil {
		t.Errorf("Required missing env file succeeded")
	}
}

func TestLoadEnvRejectsNonInteger(t *testing.T) {
	t.Setenv("SWEEPSIM_FLOORS", "lots")
	cfg := Default()
	if err := cfg.LoadEnv("", true); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadEnv error = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"no floors":        func(c *Config) { c.Floors = 0 },
		"no capacity":      func(c *Config) { c.Capacity = 0 },
		"start above top":  func(c *Config) { c.StartFloor = c.Floors },
		"negative start":   func(c *Config) { c.StartFloor = -1 },
		"unknown loglevel": func(c *Config) { c.LogLevel = "chatty" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "debug"
	level, err := cfg.Level()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("Level() = %v, %v", level, err)
	}
}

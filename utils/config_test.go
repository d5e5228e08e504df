package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Rows != 25 || cfg.Cols != 80 {
		t.Errorf("default dimensions = %dx%d, want 25x80", cfg.Rows, cfg.Cols)
	}
	if cfg.InputBufferSize != 255 {
		t.Errorf("default input buffer size = %d, want 255", cfg.InputBufferSize)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"rows": 10, "alive_glyph": "#", "clear_command": ""}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Rows != 10 {
		t.Errorf("Rows = %d, want 10", cfg.Rows)
	}
	if cfg.Cols != 80 {
		t.Errorf("Cols = %d, want default 80", cfg.Cols)
	}
	if cfg.AliveGlyph != "#" {
		t.Errorf("AliveGlyph = %q, want %q", cfg.AliveGlyph, "#")
	}
	if cfg.ClearCommand != "" {
		t.Errorf("ClearCommand = %q, want empty", cfg.ClearCommand)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") }},
		{"bad json", func(t *testing.T) string { return writeConfig(t, `{"rows":`) }},
		{"zero rows", func(t *testing.T) string { return writeConfig(t, `{"rows": 0}`) }},
		{"same glyphs", func(t *testing.T) string { return writeConfig(t, `{"alive_glyph": " "}`) }},
		{"tiny buffer", func(t *testing.T) string { return writeConfig(t, `{"input_buffer_size": 1}`) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(tt.path(t)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 4)
	s.Update(2, 8)
	s.Update(3, 0)

	if s.Generation != 3 || s.Population != 0 {
		t.Errorf("got generation %d population %d", s.Generation, s.Population)
	}
	if s.PeakPopulation != 8 {
		t.Errorf("PeakPopulation = %d, want 8", s.PeakPopulation)
	}
	if s.AveragePopulation != 4 {
		t.Errorf("AveragePopulation = %v, want 4", s.AveragePopulation)
	}
}

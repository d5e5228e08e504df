package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Config holds the configuration for the simulator
type Config struct {
	Rows            int    `json:"rows"`
	Cols            int    `json:"cols"`
	AliveGlyph      string `json:"alive_glyph"`
	DeadGlyph       string `json:"dead_glyph"`
	InputBufferSize int    `json:"input_buffer_size"`
	ClearCommand    string `json:"clear_command"`
	UseMemoryPool   bool   `json:"use_memory_pool"`
}

// DefaultConfig returns the classic 25x80 world drawn with asterisks
func DefaultConfig() Config {
	return Config{
		Rows:            25,
		Cols:            80,
		AliveGlyph:      "*",
		DeadGlyph:       " ",
		InputBufferSize: 255,
		ClearCommand:    "clear",
		UseMemoryPool:   true,
	}
}

// Validate reports the first setting that cannot be used to build a world
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.Errorf("[Validate] grid dimensions must be positive, got %dx%d", c.Rows, c.Cols)
	case c.InputBufferSize <= 1:
		return errors.Errorf("[Validate] input buffer size must be greater than 1, got %d", c.InputBufferSize)
	case c.AliveGlyph == "" || c.DeadGlyph == "":
		return errors.New("[Validate] glyphs must not be empty")
	case c.AliveGlyph == c.DeadGlyph:
		return errors.Errorf("[Validate] alive and dead glyphs are both %q", c.AliveGlyph)
	}
	return nil
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

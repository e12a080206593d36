// Package config loads render settings from a JSON file and merges CLI
// overrides and defaults into them.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths. Relative paths resolve against BaseDir.
	BaseDir   string `json:"base_dir"`
	SceneFile string `json:"scene_file"`
	AssetDir  string `json:"asset_dir"`
	OutputDir string `json:"output_dir"`

	// Render settings
	Width       int `json:"width"`
	Height      int `json:"height"`
	Supersample int `json:"supersample"`
	Frames      int `json:"frames"`
	Workers     int `json:"workers"`

	// Clock overrides; zero/nil keeps the scene file's values.
	CycleLength    int  `json:"cycle_length"`
	ReversalTarget *int `json:"reversal_target"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	SceneFile   string
	AssetDir    string
	OutputDir   string
	Width       int
	Height      int
	Supersample int
	Frames      int
	Workers     int
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values. BaseDir defaults to
// the directory holding the file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(path)
	}
	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.SceneFile != "" {
		c.SceneFile = flags.SceneFile
	}
	if flags.AssetDir != "" {
		c.AssetDir = flags.AssetDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	c.SceneFile = c.abs(c.SceneFile)
	sceneDir := "."
	if c.SceneFile != "" {
		sceneDir = filepath.Dir(c.SceneFile)
	}
	if c.AssetDir == "" {
		c.AssetDir = sceneDir
	} else {
		c.AssetDir = c.abs(c.AssetDir)
	}
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(sceneDir, "frames")
	} else {
		c.OutputDir = c.abs(c.OutputDir)
	}

	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// FrameCount returns Frames, or one full clock period (two cycles) when
// Frames is unset.
func (c *Config) FrameCount(cycleLength int) int {
	if c.Frames > 0 {
		return c.Frames
	}
	return 2 * cycleLength
}

// Validate reports settings Resolve cannot repair.
func (c *Config) Validate() error {
	if c.SceneFile == "" {
		return fmt.Errorf("config: no scene file")
	}
	if c.CycleLength < 0 {
		return fmt.Errorf("config: cycle_length %d is negative", c.CycleLength)
	}
	return nil
}

func (c *Config) abs(p string) string {
	if p == "" || filepath.IsAbs(p) || c.BaseDir == "" {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

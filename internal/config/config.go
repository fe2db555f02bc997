package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds reader, render and viewer settings.
type Config struct {
	// Input
	Separator string `json:"separator"`
	XColumn   string `json:"x_column"`
	YColumn   string `json:"y_column"`

	// Render settings
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Supersample int    `json:"supersample"`
	Format      string `json:"format"`
	Workers     int    `json:"workers"`

	// Initial slider positions and step sizes
	Angle     *float64 `json:"angle"`
	Scale     *float64 `json:"scale"`
	AngleStep float64  `json:"angle_step"`
	ScaleStep float64  `json:"scale_step"`

	LogLevel string `json:"log_level"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Separator string
	XColumn   string
	YColumn   string
	Width     int
	Height    int
	Angle     *float64
	Scale     *float64
	LogLevel  string
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Separator != "" {
		c.Separator = flags.Separator
	}
	if flags.XColumn != "" {
		c.XColumn = flags.XColumn
	}
	if flags.YColumn != "" {
		c.YColumn = flags.YColumn
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Angle != nil {
		c.Angle = flags.Angle
	}
	if flags.Scale != nil {
		c.Scale = flags.Scale
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	// Defaults
	if c.Separator == "" {
		c.Separator = ";"
	}
	if c.XColumn == "" {
		c.XColumn = "X"
	}
	if c.YColumn == "" {
		c.YColumn = "Y"
	}
	if c.Width <= 0 {
		c.Width = 1200
	}
	if c.Height <= 0 {
		c.Height = 800
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Format == "" {
		c.Format = "png"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Angle == nil {
		c.Angle = float(0)
	}
	if c.Scale == nil {
		c.Scale = float(1)
	}
	if c.AngleStep <= 0 {
		c.AngleStep = 1
	}
	if c.ScaleStep <= 0 {
		c.ScaleStep = 0.05
	}
	if c.LogLevel == "" {
		c.LogLevel = "warning"
	}
}

// SeparatorRune is the first character of Separator.
// A literal "\t" or "tab" selects the tab character.
func (c *Config) SeparatorRune() (rune, error) {
	switch c.Separator {
	case `\t`, "tab":
		return '\t', nil
	}
	r := []rune(c.Separator)
	if len(r) != 1 {
		return 0, fmt.Errorf("config: separator must be a single character, got %q", c.Separator)
	}
	return r[0], nil
}

func float(v float64) *float64 {
	return &v
}

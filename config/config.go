package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/javanhut/RavenGrid/fonts"
	"github.com/javanhut/RavenGrid/grid"
	"github.com/javanhut/RavenGrid/input"
)

// GridConfig holds the sheet dimensions and default sizes
type GridConfig struct {
	Rows             int `toml:"rows"`
	Cols             int `toml:"cols"`
	DefaultRowHeight int `toml:"default_row_height"`
	DefaultColWidth  int `toml:"default_col_width"`
	HeaderWidth      int `toml:"header_width"`
	HeaderHeight     int `toml:"header_height"`
}

// InteractionConfig holds pointer, keyboard and history tuning
type InteractionConfig struct {
	// ResizeTolerance is how many pixels from an edge a resize handle reaches
	ResizeTolerance   int `toml:"resize_tolerance"`
	MinColWidth       int `toml:"min_col_width"`
	MinRowHeight      int `toml:"min_row_height"`
	AutoScrollMargin  int `toml:"autoscroll_margin"`
	AutoScrollMaxStep int `toml:"autoscroll_max_step"`
	WheelStep         int `toml:"wheel_step"`
	StatsDebounceMS   int `toml:"stats_debounce_ms"`
	// HistoryLimit caps the undo depth; 0 keeps everything
	HistoryLimit  int `toml:"history_limit"`
	DoubleClickMS int `toml:"double_click_ms"`
}

// Config holds the application configuration
type Config struct {
	Grid        GridConfig        `toml:"grid"`
	Interaction InteractionConfig `toml:"interaction"`
	Theme       string            `toml:"theme"`
	Font        string            `toml:"font"`
	FontSize    float32           `toml:"font_size"`
	// Fullscreen is the window mode at the last toggle
	Fullscreen bool `toml:"fullscreen"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	opts := input.DefaultOptions()
	return &Config{
		Grid: GridConfig{
			Rows:             grid.DefaultRows,
			Cols:             grid.DefaultCols,
			DefaultRowHeight: grid.DefaultRowHeight,
			DefaultColWidth:  grid.DefaultColWidth,
			HeaderWidth:      grid.DefaultHeaderWidth,
			HeaderHeight:     grid.DefaultHeaderHeight,
		},
		Interaction: InteractionConfig{
			ResizeTolerance:   opts.ResizeTolerance,
			MinColWidth:       opts.MinColWidth,
			MinRowHeight:      opts.MinRowHeight,
			AutoScrollMargin:  opts.AutoScrollMargin,
			AutoScrollMaxStep: opts.AutoScrollMaxStep,
			WheelStep:         opts.WheelStep,
			StatsDebounceMS:   250,
			HistoryLimit:      0,
			DoubleClickMS:     400,
		},
		Theme:    "raven-blue",
		Font:     fonts.DefaultFontName(),
		FontSize: 14.0,
	}
}

// GetConfigDir returns the config directory path
func GetConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".config/raven-grid"
	}
	return filepath.Join(homeDir, ".config", "raven-grid")
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.toml")
}

// Load loads the configuration from the default path, writing the defaults
// there on first run.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads the configuration from path. Keys missing from the file
// keep their default values.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.SaveTo(path); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Save saves the configuration to the default path
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo writes the configuration to path
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}

// Normalize replaces out-of-range values with their defaults
func (c *Config) Normalize() {
	def := DefaultConfig()
	positive := func(v *int, fallback int) {
		if *v <= 0 {
			*v = fallback
		}
	}

	// A grid needs the header plus at least one data row and column
	if c.Grid.Rows < 2 {
		c.Grid.Rows = def.Grid.Rows
	}
	if c.Grid.Cols < 2 {
		c.Grid.Cols = def.Grid.Cols
	}
	positive(&c.Grid.DefaultRowHeight, def.Grid.DefaultRowHeight)
	positive(&c.Grid.DefaultColWidth, def.Grid.DefaultColWidth)
	positive(&c.Grid.HeaderWidth, def.Grid.HeaderWidth)
	positive(&c.Grid.HeaderHeight, def.Grid.HeaderHeight)

	in := &c.Interaction
	positive(&in.ResizeTolerance, def.Interaction.ResizeTolerance)
	positive(&in.MinColWidth, def.Interaction.MinColWidth)
	positive(&in.MinRowHeight, def.Interaction.MinRowHeight)
	positive(&in.AutoScrollMargin, def.Interaction.AutoScrollMargin)
	positive(&in.AutoScrollMaxStep, def.Interaction.AutoScrollMaxStep)
	positive(&in.WheelStep, def.Interaction.WheelStep)
	positive(&in.DoubleClickMS, def.Interaction.DoubleClickMS)
	if in.StatsDebounceMS < 0 {
		in.StatsDebounceMS = def.Interaction.StatsDebounceMS
	}
	if in.HistoryLimit < 0 {
		in.HistoryLimit = 0
	}

	if c.FontSize < 6 || c.FontSize > 72 {
		c.FontSize = def.FontSize
	}
	if _, ok := fonts.GetFont(c.Font); !ok {
		c.Font = def.Font
	}
	if !IsTheme(c.Theme) {
		c.Theme = def.Theme
	}
}

// GridOptions converts the grid section for grid.NewGrid
func (c *Config) GridOptions() grid.Options {
	return grid.Options{
		Rows:         c.Grid.Rows,
		Cols:         c.Grid.Cols,
		RowHeight:    c.Grid.DefaultRowHeight,
		ColWidth:     c.Grid.DefaultColWidth,
		HeaderWidth:  c.Grid.HeaderWidth,
		HeaderHeight: c.Grid.HeaderHeight,
	}
}

// InputOptions converts the interaction section for input.NewDispatcher
func (c *Config) InputOptions() input.Options {
	in := c.Interaction
	return input.Options{
		ResizeTolerance:   in.ResizeTolerance,
		MinColWidth:       in.MinColWidth,
		MinRowHeight:      in.MinRowHeight,
		AutoScrollMargin:  in.AutoScrollMargin,
		AutoScrollMaxStep: in.AutoScrollMaxStep,
		WheelStep:         in.WheelStep,
	}
}

func (c *Config) StatsDelay() time.Duration {
	return time.Duration(c.Interaction.StatsDebounceMS) * time.Millisecond
}

func (c *Config) DoubleClickInterval() time.Duration {
	return time.Duration(c.Interaction.DoubleClickMS) * time.Millisecond
}

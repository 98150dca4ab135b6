package overlay

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/overlay/retained"
	"github.com/agiangrant/overlay/shape"
)

// ConfigFile is the configuration file name looked up in the project root.
const ConfigFile = "overlay.toml"

// Config represents the overlay.toml configuration file
type Config struct {
	Window WindowConfig `toml:"window"`
	Render RenderConfig `toml:"render"`
	Input  InputConfig  `toml:"input"`
	Log    LogConfig    `toml:"log"`
	Layout LayoutConfig `toml:"layout"`
}

type WindowConfig struct {
	// Title of the window the overlay is drawn over
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	FrameRate int    `toml:"frame_rate"`
}

type RenderConfig struct {
	// Frame clear color, #RRGGBBAA. Transparent by default so the target shows through.
	ClearColor string `toml:"clear_color"`
}

type InputConfig struct {
	ClickDebounceMs   int `toml:"click_debounce_ms"`
	HotkeyRateLimitMs int `toml:"hotkey_rate_limit_ms"`
	// Gate hotkeys on their container's own visibility flag
	HotkeysFollowContainer bool `toml:"hotkeys_follow_container"`
}

type LogConfig struct {
	// debug, info, warn or error
	Level string `toml:"level"`
}

type LayoutConfig struct {
	// Layout document, .toml or .yaml, relative to the config file
	File string `toml:"file"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			FrameRate: 60,
		},
		Render: RenderConfig{
			ClearColor: "#00000000",
		},
		Input: InputConfig{
			ClickDebounceMs:   int(retained.DefaultClickDebounce / time.Millisecond),
			HotkeyRateLimitMs: int(retained.DefaultHotkeyRateLimit / time.Millisecond),
		},
		Log: LogConfig{
			Level: "info",
		},
		Layout: LayoutConfig{
			File: "layout.yaml",
		},
	}
}

// LoadConfig loads the configuration from path.
// If the file doesn't exist, returns default config
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Apply defaults for empty values
	if config.Window.FrameRate <= 0 {
		config.Window.FrameRate = DefaultConfig().Window.FrameRate
	}

	return config, nil
}

// SaveConfig saves the configuration to path
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// FindProjectRoot finds the project root by looking for overlay.toml or go.mod
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFile)); err == nil {
			return dir, nil
		}
		// Check for go.mod as fallback
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s or go.mod found", ConfigFile)
		}
		dir = parent
	}
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame_rate %d must be positive", c.Window.FrameRate))
	}
	if _, err := c.clearColor(); err != nil {
		errs = append(errs, fmt.Errorf("clear_color: %w", err))
	}
	if c.Input.ClickDebounceMs < 0 {
		errs = append(errs, fmt.Errorf("click_debounce_ms %d is negative", c.Input.ClickDebounceMs))
	}
	if c.Input.HotkeyRateLimitMs < 0 {
		errs = append(errs, fmt.Errorf("hotkey_rate_limit_ms %d is negative", c.Input.HotkeyRateLimitMs))
	}
	if _, err := c.Log.level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Options converts the [render] and [input] sections to UI options.
func (c Config) Options() ([]retained.Option, error) {
	bg, err := c.clearColor()
	if err != nil {
		return nil, fmt.Errorf("clear_color: %w", err)
	}
	return []retained.Option{
		retained.WithClearColor(bg),
		retained.WithClickDebounce(time.Duration(c.Input.ClickDebounceMs) * time.Millisecond),
		retained.WithHotkeyRateLimit(time.Duration(c.Input.HotkeyRateLimitMs) * time.Millisecond),
		retained.WithHotkeysFollowContainer(c.Input.HotkeysFollowContainer),
	}, nil
}

// FrameInterval is the time between frames at the configured frame rate.
func (c Config) FrameInterval() time.Duration {
	if c.Window.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.Window.FrameRate)
}

// LayoutPath resolves the layout file against the directory holding the config.
func (c Config) LayoutPath(configPath string) string {
	if c.Layout.File == "" || filepath.IsAbs(c.Layout.File) {
		return c.Layout.File
	}
	return filepath.Join(filepath.Dir(configPath), c.Layout.File)
}

func (c Config) clearColor() (shape.Color, error) {
	if c.Render.ClearColor == "" {
		return shape.Transparent, nil
	}
	return shape.ParseColor(c.Render.ClearColor)
}

// NewLogger returns a text logger writing to w at the configured level.
func (c LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

func (c LogConfig) level() (slog.Level, error) {
	var level slog.Level
	if c.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Level))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.Level, err)
	}
	return level, nil
}

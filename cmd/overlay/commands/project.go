package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/agiangrant/overlay"
	"github.com/agiangrant/overlay/retained"
)

// loadProject loads and validates the config at path and installs its logger.
// An empty path means overlay.toml in the project root, or the current
// directory when there is no project root.
func loadProject(path string) (overlay.Config, string, error) {
	if path == "" {
		path = overlay.ConfigFile
		if root, err := overlay.FindProjectRoot(); err == nil {
			path = filepath.Join(root, overlay.ConfigFile)
		}
	}

	config, err := overlay.LoadConfig(path)
	if err != nil {
		return config, path, err
	}
	if err := config.Validate(); err != nil {
		return config, path, fmt.Errorf("invalid %s: %w", path, err)
	}

	logger, err := config.Log.NewLogger(os.Stderr)
	if err != nil {
		return config, path, err
	}
	retained.SetLogger(logger)
	return config, path, nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (float32, float32, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid point %q (want x,y)", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return float32(x), float32(y), nil
}

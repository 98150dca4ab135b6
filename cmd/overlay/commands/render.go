package commands

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/agiangrant/overlay"
	"github.com/agiangrant/overlay/input"
	"github.com/agiangrant/overlay/internal/raster"
	"github.com/agiangrant/overlay/retained"
)

// Render implements the 'overlay render' command
func Render(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to overlay.toml")
	layoutFile := fs.String("layout", "", "Layout file (overrides the config)")
	out := fs.String("out", "frame.png", "Output PNG")
	at := fs.String("at", "", "Pointer position as x,y")
	press := fs.Bool("press", false, "Hold the primary button")
	typed := fs.String("type", "", "Text typed during the first frame")
	frames := fs.Int("frames", 1, "Number of frames to run")
	fs.Parse(args)

	config, path, err := loadProject(*configPath)
	if err != nil {
		return err
	}
	if *frames < 1 {
		return fmt.Errorf("--frames must be at least 1")
	}

	script := input.NewScript().Press(*press).Type(*typed)
	if *at != "" {
		x, y, err := parsePoint(*at)
		if err != nil {
			return err
		}
		script.MoveTo(x, y)
	}

	target := raster.New(config.Window.Width, config.Window.Height)
	clock := input.NewManualClock(time.Now())
	e, err := overlay.NewEngine(config, target, script, retained.WithClock(clock))
	if err != nil {
		return err
	}

	layoutPath := config.LayoutPath(path)
	if *layoutFile != "" {
		layoutPath = *layoutFile
	}
	if layoutPath != "" {
		if _, err := e.LoadLayout(layoutPath); err != nil {
			return err
		}
	}

	for range *frames {
		e.Frame()
		clock.Advance(config.FrameInterval())
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", *out, err)
	}
	defer f.Close()
	if err := target.WritePNG(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", *out, err)
	}

	fmt.Printf("  ✓ Rendered %d frame(s) to %s (%dx%d)\n", *frames, *out, config.Window.Width, config.Window.Height)
	return nil
}

package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/agiangrant/overlay"
	"github.com/agiangrant/overlay/internal/platform"
	"github.com/agiangrant/overlay/internal/raster"
)

// Run implements the 'overlay run' command
func Run(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to overlay.toml")
	snapshot := fs.String("snapshot", "", "Write the last frame to this PNG on exit")
	fs.Parse(args)

	config, path, err := loadProject(*configPath)
	if err != nil {
		return err
	}

	source, err := platform.NewSource()
	if err != nil {
		return fmt.Errorf("failed to open input source: %w", err)
	}

	target := raster.New(config.Window.Width, config.Window.Height)
	e, err := overlay.NewEngine(config, target, source)
	if err != nil {
		return err
	}
	if layoutPath := config.LayoutPath(path); layoutPath != "" {
		if _, err := e.LoadLayout(layoutPath); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("Overlay running (Ctrl+C to stop)")
	err = e.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		return err
	}

	if *snapshot != "" {
		f, err := os.Create(*snapshot)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", *snapshot, err)
		}
		defer f.Close()
		if err := target.WritePNG(f); err != nil {
			return fmt.Errorf("failed to write %s: %w", *snapshot, err)
		}
		fmt.Printf("  ✓ Wrote %s after %d frames\n", *snapshot, target.Frames())
	}
	return nil
}

package commands

import (
	"flag"
	"fmt"

	"github.com/agiangrant/overlay"
	"github.com/agiangrant/overlay/input"
	"github.com/agiangrant/overlay/render"
)

// Check implements the 'overlay check' command
func Check(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to overlay.toml")
	fs.Parse(args)

	config, path, err := loadProject(*configPath)
	if err != nil {
		return err
	}
	fmt.Printf("  ✓ %s\n", path)

	layoutPath := config.LayoutPath(path)
	if layoutPath == "" {
		fmt.Println("  - no layout configured")
		return nil
	}

	// Apply against a recorder so action names, keys and colors are all resolved.
	e, err := overlay.NewEngine(config, &render.Recorder{}, input.NewScript())
	if err != nil {
		return err
	}
	if _, err := e.LoadLayout(layoutPath); err != nil {
		return err
	}

	c := e.UI().Counts()
	fmt.Printf("  ✓ %s: %d containers, %d buttons, %d sliders, %d checkboxes, %d color pickers, %d input boxes, %d hotkeys, %d elements\n",
		layoutPath, c.Containers, c.Buttons, c.Sliders, c.Checkboxes, c.ColorPickers, c.InputBoxes, c.Hotkeys, e.Batches().Len())
	return nil
}

package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agiangrant/overlay"
)

// Init implements the 'overlay init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	dir := fs.String("dir", ".", "Project directory")
	title := fs.String("title", "", "Title of the window to draw over")
	force := fs.Bool("force", false, "Overwrite existing files")
	fs.Parse(args)

	if err := os.MkdirAll(*dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", *dir, err)
	}

	configPath := filepath.Join(*dir, overlay.ConfigFile)
	if _, err := os.Stat(configPath); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}

	fmt.Printf("Initializing overlay project in %s\n", *dir)

	config := overlay.DefaultConfig()
	config.Window.Title = *title
	if err := overlay.SaveConfig(configPath, config); err != nil {
		return err
	}
	fmt.Printf("  ✓ Created %s\n", overlay.ConfigFile)

	layoutPath := config.LayoutPath(configPath)
	if _, err := os.Stat(layoutPath); os.IsNotExist(err) || *force {
		if err := os.WriteFile(layoutPath, []byte(defaultLayoutYAML), 0644); err != nil {
			return fmt.Errorf("failed to create %s: %w", layoutPath, err)
		}
		fmt.Printf("  ✓ Created %s\n", config.Layout.File)
	}

	fmt.Println("\nNext steps:")
	fmt.Println("  overlay check")
	fmt.Println("  overlay render --out frame.png")
	return nil
}

const defaultLayoutYAML = `# Widget coordinates are relative to their container.
containers:
  - name: menu
    bounds: {x: 40, y: 40, w: 260, h: 230, rounding: 8, color: "#1e1e1ee6"}
    padding_x: 10
    padding_y: 10
    visible: true

buttons:
  - container: menu
    name: hide
    bounds: {x: 10, y: 10, w: 100, h: 28, rounding: 4, color: "#737373"}
    hover_color: "#b3b3b3"
    on_click: toggle:menu

sliders:
  - container: menu
    name: opacity
    track: {x: 10, y: 60, w: 200, h: 12, rounding: 6, color: "#404040"}
    thumb: {x: 0, y: 54, w: 12, h: 24, rounding: 4, color: "#e6e6e6"}
    min: 0
    max: 1
    value: 0.5

checkboxes:
  - container: menu
    name: crosshair
    bounds: {x: 10, y: 100, w: 20, h: 20, rounding: 3, color: "#737373"}
    checked: true

color_pickers:
  - container: menu
    name: tint
    bounds: {x: 10, y: 135, w: 200, h: 30}
    initial: "#ff0000"

input_boxes:
  - container: menu
    name: label
    bounds: {x: 10, y: 180, w: 200, h: 24, color: "#2a2a2a"}

hotkeys:
  - key: insert
    action: toggle:menu
  - key: home
    action: toggle-master
  - key: end
    action: quit

elements:
  - name: crosshair
    priority: 0
    shapes:
      - circle: {x: 640, y: 360, radius: 3, color: "#ff0000"}
`

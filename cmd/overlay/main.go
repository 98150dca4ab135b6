package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/overlay"
	"github.com/agiangrant/overlay/cmd/overlay/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "init":
		err = commands.Init(args)
	case "check":
		err = commands.Check(args)
	case "render":
		err = commands.Render(args)
	case "run":
		err = commands.Run(args)
	case "version", "-v", "--version":
		fmt.Printf("overlay version %s\n", overlay.Version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`overlay - retained-mode overlay toolkit

Usage: overlay <command> [options]

Commands:
  init      Create overlay.toml and a starter layout.yaml
  check     Validate the configuration and its layout
  render    Render one or more frames headlessly to a PNG
  run       Run the overlay against live pointer and keyboard input
  version   Print version information
  help      Show this help message

Examples:
  overlay init                              Scaffold a project in the current directory
  overlay check --config overlay.toml       Validate config and layout
  overlay render --at 60,60 --out hover.png Render with the pointer over (60,60)
  overlay render --at 60,60 --press         Render a click at (60,60)
  overlay run --snapshot last.png           Run until interrupted, keep the final frame`)
}

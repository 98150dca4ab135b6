// Package overlay ties the retained UI to a rasterizer, an input source and
// a frame loop, configured from overlay.toml.
package overlay

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/agiangrant/overlay/input"
	"github.com/agiangrant/overlay/layout"
	"github.com/agiangrant/overlay/render"
	"github.com/agiangrant/overlay/retained"
)

// Version is the overlay release.
const Version = "0.3.0"

// Engine drives one overlay: input is reconciled and the frame redrawn once
// per tick.
type Engine struct {
	config  Config
	ui      *retained.UI
	batches *render.Batches
	actions *layout.Actions

	frames atomic.Uint64
	exit   atomic.Bool
}

// NewEngine creates an engine drawing into target and polling source.
// Extra options are applied after the ones derived from config.
func NewEngine(config Config, target render.Rasterizer, source input.Source, opts ...retained.Option) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	base, err := config.Options()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		config:  config,
		ui:      retained.New(target, source, append(base, opts...)...),
		batches: render.NewBatches(target),
	}
	e.ui.AttachBatches(e.batches)
	e.actions = layout.NewActions(e.ui, e.RequestExit)
	return e, nil
}

func (e *Engine) UI() *retained.UI {
	return e.ui
}

func (e *Engine) Batches() *render.Batches {
	return e.batches
}

// Actions returns the action registry used by ApplyLayout. It already holds
// quit, which calls RequestExit.
func (e *Engine) Actions() *layout.Actions {
	return e.actions
}

func (e *Engine) Config() Config {
	return e.config
}

// ApplyLayout registers a layout document on the engine's UI.
func (e *Engine) ApplyLayout(doc *layout.Document) (*layout.Bindings, error) {
	b, err := layout.Apply(doc, e.ui, e.batches, e.actions)
	if err != nil {
		return nil, fmt.Errorf("failed to apply layout: %w", err)
	}
	return b, nil
}

// LoadLayout loads and applies a layout file.
func (e *Engine) LoadLayout(path string) (*layout.Bindings, error) {
	doc, err := layout.Load(path)
	if err != nil {
		return nil, err
	}
	return e.ApplyLayout(doc)
}

// Frame runs one input pass and one draw pass.
func (e *Engine) Frame() {
	e.ui.HandleInput()
	e.ui.DrawAllElements()
	e.frames.Add(1)
}

// Frames returns the number of frames run.
func (e *Engine) Frames() uint64 {
	return e.frames.Load()
}

// RequestExit stops Run after the current frame. Safe to call from any goroutine.
func (e *Engine) RequestExit() {
	e.exit.Store(true)
}

// Exiting reports whether RequestExit was called.
func (e *Engine) Exiting() bool {
	return e.exit.Load()
}

// Run calls Frame at the configured frame rate until ctx is done or
// RequestExit is called. It returns ctx.Err() when the context ended the
// loop and nil on a requested exit.
func (e *Engine) Run(ctx context.Context) error {
	interval := e.config.FrameInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger := render.Logger()
	logger.Info("overlay running",
		slog.Duration("interval", interval),
		slog.String("target", e.config.Window.Title))

	for !e.Exiting() {
		select {
		case <-ctx.Done():
			logger.Info("overlay stopped", slog.Uint64("frames", e.Frames()))
			return ctx.Err()
		case <-ticker.C:
			e.Frame()
		}
	}
	logger.Info("overlay exited", slog.Uint64("frames", e.Frames()))
	return nil
}

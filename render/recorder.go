package render

import "github.com/agiangrant/overlay/shape"

// CallKind identifies a recorded rasterizer call.
type CallKind uint8

const (
	CallClear CallKind = iota + 1
	CallDraw
	CallPresent
)

// Call is one recorded rasterizer call.
type Call struct {
	Kind    CallKind
	Clear   shape.Color       // For CallClear
	Command shape.DrawCommand // For CallDraw
}

// Recorder is a Rasterizer that records every call without drawing.
// It backs headless runs and tests.
type Recorder struct {
	Calls []Call
}

var _ Rasterizer = (*Recorder)(nil)

func (r *Recorder) ClearScreen(red, green, blue, alpha float32) {
	r.Calls = append(r.Calls, Call{Kind: CallClear, Clear: shape.RGBA(red, green, blue, alpha)})
}

func (r *Recorder) Present() {
	r.Calls = append(r.Calls, Call{Kind: CallPresent})
}

func (r *Recorder) Draw(cmd shape.DrawCommand) {
	r.Calls = append(r.Calls, Call{Kind: CallDraw, Command: cmd})
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Commands returns the draw commands recorded since the last Reset.
func (r *Recorder) Commands() []shape.DrawCommand {
	var cmds []shape.DrawCommand
	for _, c := range r.Calls {
		if c.Kind == CallDraw {
			cmds = append(cmds, c.Command)
		}
	}
	return cmds
}

// Frames returns the number of Present calls recorded.
func (r *Recorder) Frames() int {
	n := 0
	for _, c := range r.Calls {
		if c.Kind == CallPresent {
			n++
		}
	}
	return n
}

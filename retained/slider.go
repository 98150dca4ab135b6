package retained

import (
	"log/slog"

	"github.com/chewxy/math32"

	"github.com/agiangrant/overlay/input"
	"github.com/agiangrant/overlay/shape"
)

// SliderHandler receives slider events.
type SliderHandler interface {
	OnValueChanged(s *Slider)
	OnIdle(s *Slider)
}

// SliderFuncs adapts plain functions to a SliderHandler. Nil fields are skipped.
type SliderFuncs struct {
	ValueChanged func(*Slider)
	Idle         func(*Slider)
}

func (f SliderFuncs) OnValueChanged(s *Slider) {
	if f.ValueChanged != nil {
		f.ValueChanged(s)
	}
}

func (f SliderFuncs) OnIdle(s *Slider) {
	if f.Idle != nil {
		f.Idle(s)
	}
}

// Slider maps a horizontal drag along its track to a value in [Min, Max].
//
// The value lives behind a caller-owned pointer that dragging writes
// through directly, so the caller always reads the current value.
type Slider struct {
	Name       string
	Container  string
	Track      shape.Rect
	Thumb      shape.Rect
	Min, Max   float32
	Style      string // Track style
	ThumbStyle string

	value    *float32
	dragging bool
	handler  SliderHandler
}

// SliderConfig holds the optional slider attributes.
type SliderConfig struct {
	Style      string // Defaults to StyleDefaultSlider
	ThumbStyle string // Defaults to StyleDefaultButton
}

// AddSlider registers a slider under container. track and thumb are relative
// to the container origin. value may be nil, in which case the slider owns
// its value, starting at min.
// A duplicate name or an unknown container is logged and ignored.
func (u *UI) AddSlider(container, name string, track, thumb shape.Rect, minValue, maxValue float32, value *float32, h SliderHandler, cfg SliderConfig) {
	if _, exists := u.sliders.get(name); exists {
		skip("slider already registered", slog.String("name", name))
		return
	}
	c, ok := u.resolveContainer(container, "slider", name)
	if !ok {
		return
	}
	if cfg.Style == "" {
		cfg.Style = StyleDefaultSlider
	}
	if cfg.ThumbStyle == "" {
		cfg.ThumbStyle = StyleDefaultButton
	}
	if value == nil {
		v := minValue
		value = &v
	}
	if h == nil {
		h = SliderFuncs{}
	}
	u.sliders.add(name, &Slider{
		Name:       name,
		Container:  container,
		Track:      track.Offset(c.Bounds.X, c.Bounds.Y),
		Thumb:      thumb.Offset(c.Bounds.X, c.Bounds.Y),
		Min:        minValue,
		Max:        maxValue,
		Style:      cfg.Style,
		ThumbStyle: cfg.ThumbStyle,
		value:      value,
		handler:    h,
	})
}

// Slider returns the named slider, or nil.
func (u *UI) Slider(name string) *Slider {
	s, _ := u.sliders.get(name)
	return s
}

// Value returns the current value.
func (s *Slider) Value() float32 {
	return *s.value
}

// Dragging reports whether a drag is in progress.
func (s *Slider) Dragging() bool {
	return s.dragging
}

// SetValue clamps v into [Min, Max], stores it and moves the thumb.
// It reports whether the stored value changed. No event fires.
func (s *Slider) SetValue(v float32) bool {
	lo, hi := math32.Min(s.Min, s.Max), math32.Max(s.Min, s.Max)
	v = math32.Max(lo, math32.Min(hi, v))
	changed := *s.value != v
	*s.value = v
	s.placeThumb()
	return changed
}

// placeThumb centers the thumb horizontally on the current value.
func (s *Slider) placeThumb() {
	ratio := float32(0)
	if span := s.Max - s.Min; span != 0 {
		ratio = (*s.value - s.Min) / span
	}
	s.Thumb.X = s.Track.X + ratio*s.Track.Width - s.Thumb.Width/2
}

// valueAt maps a screen x coordinate to a value on the track.
func (s *Slider) valueAt(x float32) float32 {
	if s.Track.Width <= 0 {
		return s.Min
	}
	ratio := math32.Max(0, math32.Min(1, (x-s.Track.X)/s.Track.Width))
	return s.Min + ratio*(s.Max-s.Min)
}

func (u *UI) updateSlider(s *Slider, st input.State) {
	if !u.IsVisible(s.Container) {
		s.dragging = false
		return
	}

	if !st.Primary {
		s.dragging = false
	} else if !s.dragging && (s.Track.Contains(st.X, st.Y) || s.Thumb.Contains(st.X, st.Y)) {
		s.dragging = true
	}

	if s.dragging {
		if s.SetValue(s.valueAt(st.X)) {
			s.handler.OnValueChanged(s)
		}
		return
	}

	if !s.Track.Contains(st.X, st.Y) && !s.Thumb.Contains(st.X, st.Y) {
		s.handler.OnIdle(s)
	}
}

func (u *UI) drawSlider(dst []shape.DrawCommand, s *Slider) []shape.DrawCommand {
	dst = u.styles.appendResolved(dst, s.Style, s.Track, s.Track.Color)
	return u.styles.appendResolved(dst, s.ThumbStyle, s.Thumb, s.Thumb.Color)
}

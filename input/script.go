package input

// Script is a Source whose state is set directly. Tests and headless runs
// use it to stand in for the OS.
//
// Text and Backspaces are consumed by Poll, so typed input is delivered once.
type Script struct {
	state State
	keys  map[int]bool
}

var _ Source = (*Script)(nil)

// NewScript returns a Script with the pointer at the origin and nothing held.
func NewScript() *Script {
	return &Script{keys: make(map[int]bool)}
}

func (s *Script) Poll() State {
	st := s.state
	s.state.Text = nil
	s.state.Backspaces = 0
	return st
}

func (s *Script) KeyDown(vk int) bool {
	return s.keys[vk]
}

// MoveTo sets the pointer position.
func (s *Script) MoveTo(x, y float32) *Script {
	s.state.X, s.state.Y = x, y
	return s
}

// Press holds or releases the primary button.
func (s *Script) Press(down bool) *Script {
	s.state.Primary = down
	return s
}

// PressSecondary holds or releases the secondary button.
func (s *Script) PressSecondary(down bool) *Script {
	s.state.Secondary = down
	return s
}

// Type queues text for the next poll.
func (s *Script) Type(text string) *Script {
	s.state.Text = append(s.state.Text, []rune(text)...)
	return s
}

// Backspace queues n backspaces for the next poll.
func (s *Script) Backspace(n int) *Script {
	s.state.Backspaces += n
	return s
}

// Hold sets whether a virtual key is held.
func (s *Script) Hold(vk int, down bool) *Script {
	if down {
		s.keys[vk] = true
	} else {
		delete(s.keys, vk)
	}
	return s
}

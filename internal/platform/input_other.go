//go:build !windows && !(linux && !android)

package platform

import "github.com/agiangrant/overlay/input"

// NewSource reports ErrUnsupported.
func NewSource() (input.Source, error) {
	return nil, ErrUnsupported
}

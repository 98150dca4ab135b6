// Package platform polls OS pointer and keyboard state for the overlay.
//
// The pollers read global state (like GetAsyncKeyState on Windows), so they
// see input regardless of which window has focus. They do not deliver
// typed text; hosts that need text entry feed it through their own Source.
package platform

import "errors"

// ErrUnsupported is returned by NewSource on platforms without a poller.
var ErrUnsupported = errors.New("input polling is not supported on this platform")

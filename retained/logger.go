package retained

import (
	"log/slog"

	"github.com/agiangrant/overlay/render"
)

// SetLogger configures the logger used for skipped registrations and
// lookup misses. It is shared with package render. Nil restores the
// default, which discards everything.
func SetLogger(l *slog.Logger) {
	render.SetLogger(l)
}

func logger() *slog.Logger {
	return render.Logger()
}

func skip(msg string, attrs ...any) {
	logger().Debug(msg, attrs...)
}

package track

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/replay"
)

// logBuffer captures replay log output for assertions.
type logBuffer struct {
	bytes.Buffer
}

func (b *logBuffer) install(t *testing.T) func() {
	t.Helper()
	orig := replay.Logger()
	replay.SetLogger(slog.New(slog.NewTextHandler(b, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return func() { replay.SetLogger(orig) }
}

func (b *logBuffer) contains(s string) bool {
	return strings.Contains(b.String(), s)
}

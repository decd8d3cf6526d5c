package logging_test

import (
	"bytes"
	"context"
	"github.com/myrjola/ftracker/internal/logging"
	"log/slog"
	"strings"
	"testing"
)

func TestContextHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&buf, slog.LevelInfo)

	ctx := logging.WithAttrs(context.Background(), slog.String("code", "SWM"))
	child := logging.WithAttrs(ctx, slog.Int("index", 2))

	logger.InfoContext(child, "report built")
	logger.InfoContext(ctx, "parent")
	logger.DebugContext(child, "hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2:\n%s", len(lines), buf.String())
	}
	for _, want := range []string{"code=SWM", "index=2", `msg="report built"`} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line %q does not contain %q", lines[0], want)
		}
	}
	if strings.Contains(lines[1], "index=2") {
		t.Errorf("parent context leaked child attribute: %q", lines[1])
	}
}

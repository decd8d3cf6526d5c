package testhelpers

import (
	"io"
	"strings"
	"testing"
)

// Writer implements io.Writer on top of t.Log so that logs only show up for failing tests.
type Writer struct {
	t        testing.TB
	testDone chan struct{}
}

// NewWriter creates a Writer bound to t. Writing after the test has finished panics.
func NewWriter(t testing.TB) io.Writer {
	w := &Writer{
		t:        t,
		testDone: make(chan struct{}),
	}
	t.Cleanup(func() {
		close(w.testDone)
	})
	return w
}

func (w *Writer) Write(p []byte) (int, error) {
	select {
	case <-w.testDone:
		panic("testwriter: attempted to write after test completion")
	default:
		for _, line := range strings.Split(strings.TrimSuffix(string(p), "\n"), "\n") {
			if line != "" {
				w.t.Log(line)
			}
		}
		return len(p), nil
	}
}

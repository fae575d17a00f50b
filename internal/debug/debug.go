// Package debug is the project's ambient info/verbose stream: a
// package-level enable flag and a mutex-guarded writer, the same shape
// as the teacher's debug package, sized down to what a run-to-completion
// CLI needs instead of a long-lived server (no MCP mode, no log-file
// rotation - just "-q suppresses this, -v asks for more of it").
package debug

import (
	"fmt"
	"io"
	"sync"
)

var (
	mu      sync.Mutex
	out     io.Writer // the info stream; nil means suppressed ("-q")
	verbose bool       // "-v": emit Stat-style timing/throughput detail too
)

// SetOutput sets the writer info/verbose messages go to. Passing nil
// suppresses the stream entirely, the way "-q" does.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// SetVerbose toggles whether Verbosef messages are emitted at all,
// independent of the info stream itself ("-v" turns this on).
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

func writer() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return out
}

// Infof prints a line to the info stream unless it has been
// suppressed by SetOutput(nil).
func Infof(format string, args ...any) {
	w := writer()
	if w == nil {
		return
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// Verbosef prints a line only when verbose mode is enabled. Per
// bant.cc, "-v" output goes to stderr even when "-q" also suppresses
// the ordinary info stream, so callers pass an explicit writer (the
// CLI wires stderr) rather than relying on the shared info writer.
func Verbosef(w io.Writer, format string, args ...any) {
	mu.Lock()
	v := verbose
	mu.Unlock()
	if !v || w == nil {
		return
	}
	fmt.Fprintf(w, format+"\n", args...)
}

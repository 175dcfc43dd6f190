package compiler

import (
	"fmt"
	"io"
	"os"

	"github.com/KromDaniel/thompson/internal/nfa"
)

const logPrefix = "[thompson]"

// Logger writes construction statistics when verbose mode is on.
// A disabled Logger drops everything.
type Logger struct {
	enabled bool
	out     io.Writer
}

// NewLogger returns a logger writing to stderr.
func NewLogger(enabled bool) *Logger {
	return &Logger{enabled: enabled, out: os.Stderr}
}

// SetOutput redirects the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Log prints one prefixed line.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.enabled {
		fmt.Fprintf(l.out, "%s %s\n", logPrefix, fmt.Sprintf(format, args...))
	}
}

// Section prints a section header.
func (l *Logger) Section(name string) {
	if l.enabled {
		fmt.Fprintf(l.out, "\n%s === %s ===\n", logPrefix, name)
	}
}

// Stats reports the shape of a built state table.
func (l *Logger) Stats(t *nfa.Table) {
	if !l.enabled {
		return
	}
	var literals int
	for _, e := range t.States {
		if e.Symbol != nfa.Epsilon {
			literals++
		}
	}
	l.Log("NFA states: %d (%d literal, %d epsilon)", len(t.States), literals, len(t.States)-literals)
	l.Log("Dangling exits: %v", t.Exits)
	l.Log("Has repetition cycle: %v", t.Cyclic())
	l.Log("Fingerprint: %#016x", t.Fingerprint())
}

// Enabled reports whether anything will be written.
func (l *Logger) Enabled() bool {
	return l.enabled
}

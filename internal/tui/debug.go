package tui

import (
	"fmt"
	"os"
	"time"
)

// debugLogf appends one line to the debug log when PROJECTBOARD_DEBUG_LOG is
// set. Best effort: a TUI can't print diagnostics to the terminal it owns.
func (m appModel) debugLogf(format string, args ...any) {
	if m.debugLogPath == "" {
		return
	}
	f, err := os.OpenFile(m.debugLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s "+format+"\n", append([]any{time.Now().UTC().Format(time.RFC3339)}, args...)...)
}

package system

import (
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared diagnostics logger for CLI output. It reports sink
// failures and tracing, never the styled lines themselves.
var Logger = NewLogger(os.Stderr, false)

// NewLogger builds a diagnostics logger on w. Verbose lowers the level to debug.
func NewLogger(w io.Writer, verbose bool) *clog.Logger {
	l := clog.NewWithOptions(w, clog.Options{
		Prefix:          "divlog",
		ReportTimestamp: false,
	})
	if verbose {
		l.SetLevel(clog.DebugLevel)
	}
	return l
}

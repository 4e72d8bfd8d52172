package console

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/sahilm/fuzzy"
)

// Severity tags a line with a color and a weight. It never filters output.
type Severity int

const (
	Info Severity = iota
	Note
	Warning
	Error
	Fatal
)

// Severities lists every severity in declaration order.
var Severities = []Severity{Info, Note, Warning, Error, Fatal}

var severityNames = []string{"info", "note", "warning", "error", "fatal"}

// String returns the lower-case name of the severity.
func (s Severity) String() string {
	if s < Info || s > Fatal {
		return fmt.Sprintf("severity(%d)", int(s))
	}
	return severityNames[s]
}

// Color returns the foreground color used for the divider.
func (s Severity) Color() termenv.ANSIColor {
	switch s {
	case Warning:
		return termenv.ANSIYellow
	case Error, Fatal:
		return termenv.ANSIRed
	default:
		return termenv.ANSIBlue
	}
}

// ColorName is the human name of Color, used by the levels table.
func (s Severity) ColorName() string {
	switch s.Color() {
	case termenv.ANSIYellow:
		return "yellow"
	case termenv.ANSIRed:
		return "red"
	default:
		return "blue"
	}
}

// Bold reports whether the message text is rendered bold.
func (s Severity) Bold() bool {
	return s == Note || s == Fatal
}

// ParseSeverity maps a name such as "warning" to its Severity.
// Matching ignores case and surrounding space.
func ParseSeverity(name string) (Severity, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range severityNames {
		if s == n {
			return Severity(i), nil
		}
	}
	if n != "" {
		if m := fuzzy.Find(n, severityNames); len(m) > 0 {
			return 0, fmt.Errorf("unknown severity %q, did you mean %q?", name, m[0].Str)
		}
	}
	return 0, fmt.Errorf("unknown severity %q (want one of %s)", name, strings.Join(severityNames, ", "))
}

package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"divlog/internal/system"
)

// ErrorPolicy decides what a shorthand does when its sink fails.
type ErrorPolicy int

const (
	// Abort reports the failure and exits with status 1.
	Abort ErrorPolicy = iota
	// Continue reports the failure and returns.
	Continue
)

func (p ErrorPolicy) String() string {
	if p == Continue {
		return "continue"
	}
	return "abort"
}

// ParseErrorPolicy accepts "abort" or "continue".
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch s {
	case "abort":
		return Abort, nil
	case "continue":
		return Continue, nil
	}
	return Abort, fmt.Errorf("invalid error policy %q (want abort or continue)", s)
}

// Console holds one Logger per standard stream. Build it once at startup and
// pass it to whatever needs to print; all holders share the same two locks.
type Console struct {
	stdout *Logger
	stderr *Logger

	policy ErrorPolicy
	diag   *log.Logger
	exit   func(int)

	outProfile termenv.Profile
	errProfile termenv.Profile
}

// Option customizes a Console.
type Option func(*Console)

// WithErrorPolicy selects Abort (the default) or Continue.
func WithErrorPolicy(p ErrorPolicy) Option {
	return func(c *Console) { c.policy = p }
}

// WithDiagnostics sets the logger that sink failures are reported to.
func WithDiagnostics(l *log.Logger) Option {
	return func(c *Console) {
		if l != nil {
			c.diag = l
		}
	}
}

// WithExit replaces os.Exit under the Abort policy.
func WithExit(fn func(int)) Option {
	return func(c *Console) {
		if fn != nil {
			c.exit = fn
		}
	}
}

// WithProfiles sets the color profile of the stdout and stderr loggers.
func WithProfiles(stdout, stderr termenv.Profile) Option {
	return func(c *Console) {
		c.outProfile = stdout
		c.errProfile = stderr
	}
}

// New builds a Console writing to the given sinks.
func New(stdout, stderr io.Writer, opts ...Option) *Console {
	c := &Console{
		policy:     Abort,
		diag:       system.Logger,
		exit:       os.Exit,
		outProfile: termenv.ANSI,
		errProfile: termenv.ANSI,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.stdout = NewLogger(stdout, WithName("stdout"), WithProfile(c.outProfile))
	c.stderr = NewLogger(stderr, WithName("stderr"), WithProfile(c.errProfile))
	return c
}

// Std builds a Console bound to os.Stdout and os.Stderr.
func Std(opts ...Option) *Console {
	return New(os.Stdout, os.Stderr, opts...)
}

// Stdout returns the logger bound to standard output.
func (c *Console) Stdout() *Logger { return c.stdout }

// Stderr returns the logger bound to standard error.
func (c *Console) Stderr() *Logger { return c.stderr }

// Info and the other unprefixed shorthands write to stderr; the O-prefixed
// variants write to stdout. With args the format goes through fmt.Sprintf.
// With no args it is printed verbatim, so Info("50%%") prints "50%%" while
// Info("50%% of %s", "disk") prints "50% of disk".
func (c *Console) Info(format string, args ...any)     { c.print(c.stderr, Info, format, args) }
func (c *Console) OInfo(format string, args ...any)    { c.print(c.stdout, Info, format, args) }
func (c *Console) Note(format string, args ...any)     { c.print(c.stderr, Note, format, args) }
func (c *Console) ONote(format string, args ...any)    { c.print(c.stdout, Note, format, args) }
func (c *Console) Warning(format string, args ...any)  { c.print(c.stderr, Warning, format, args) }
func (c *Console) OWarning(format string, args ...any) { c.print(c.stdout, Warning, format, args) }
func (c *Console) Error(format string, args ...any)    { c.print(c.stderr, Error, format, args) }
func (c *Console) OError(format string, args ...any)   { c.print(c.stdout, Error, format, args) }
func (c *Console) Fatal(format string, args ...any)    { c.print(c.stderr, Fatal, format, args) }
func (c *Console) OFatal(format string, args ...any)   { c.print(c.stdout, Fatal, format, args) }

// Print is the shorthand for an arbitrary severity; toStdout picks the stream.
func (c *Console) Print(sev Severity, toStdout bool, format string, args ...any) {
	l := c.stderr
	if toStdout {
		l = c.stdout
	}
	c.print(l, sev, format, args)
}

func (c *Console) print(l *Logger, sev Severity, format string, args []any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if err := l.Log(sev, msg); err != nil {
		c.fail(l, err)
	}
}

func (c *Console) fail(l *Logger, err error) {
	c.diag.Error("failed to print to "+l.Name(), "err", err)
	if c.policy == Abort {
		c.exit(1)
	}
}

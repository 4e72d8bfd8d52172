// Package console writes leveled, color-styled lines to a terminal.
//
// Every line has the shape
//
//	<color>┃<reset> <message>
//
// where the color comes from the line's Severity and the message is bold for
// Note and Fatal. A Logger owns one sink and one lock; a Console pairs a
// Logger for stdout with one for stderr and adds the printf-style shorthands.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Divider prefixes every line regardless of severity.
const Divider = '┃'

type flusher interface {
	Flush() error
}

// Logger serializes styled lines to a single sink.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	name    string
	profile termenv.Profile
}

// LoggerOption customizes a Logger at construction.
type LoggerOption func(*Logger)

// WithName sets the sink name reported in WriteError.
func WithName(name string) LoggerOption {
	return func(l *Logger) {
		l.name = name
	}
}

// WithProfile sets the color profile. termenv.Ascii disables styling.
func WithProfile(p termenv.Profile) LoggerOption {
	return func(l *Logger) {
		l.profile = p
	}
}

// NewLogger wraps w. Styling defaults to the 16-color ANSI profile so escapes
// are emitted even when w is not a terminal.
func NewLogger(w io.Writer, opts ...LoggerOption) *Logger {
	if w == nil {
		panic("console: nil writer")
	}
	l := &Logger{w: w, name: "sink", profile: termenv.ANSI}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Name returns the sink name given by WithName.
func (l *Logger) Name() string { return l.name }

// Log writes msg as one line styled for sev.
func (l *Logger) Log(sev Severity, msg any) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.emit(sev, msg)
}

func (l *Logger) Info(msg any) error    { return l.Log(Info, msg) }
func (l *Logger) Note(msg any) error    { return l.Log(Note, msg) }
func (l *Logger) Warning(msg any) error { return l.Log(Warning, msg) }
func (l *Logger) Error(msg any) error   { return l.Log(Error, msg) }

// Fatal writes a bold red line. It does not exit.
func (l *Logger) Fatal(msg any) error { return l.Log(Fatal, msg) }

// Locked runs fn while holding the logger's lock, so that every line written
// through the Session comes out contiguously. The lock is released when fn
// returns or panics.
func (l *Logger) Locked(fn func(s *Session) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := &Session{l: l}
	defer func() { s.l = nil }()
	return fn(s)
}

// Format renders msg as a complete line, newline included, without writing it.
func (l *Logger) Format(sev Severity, msg any) string {
	var b strings.Builder
	l.render(&b, sev, fmt.Sprint(msg))
	return b.String()
}

// emit must be called with l.mu held.
func (l *Logger) emit(sev Severity, msg any) error {
	line := l.Format(sev, msg)
	if _, err := io.WriteString(l.w, line); err != nil {
		return &WriteError{Sink: l.name, Err: err}
	}
	if f, ok := l.w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return &WriteError{Sink: l.name, Err: err}
		}
	}
	return nil
}

func (l *Logger) render(b *strings.Builder, sev Severity, msg string) {
	divider := string(Divider)
	if l.profile == termenv.Ascii {
		b.WriteString(divider)
		b.WriteByte(' ')
		b.WriteString(msg)
		b.WriteByte('\n')
		return
	}
	b.WriteString(l.profile.String(divider).Foreground(l.profile.Convert(sev.Color())).String())
	b.WriteByte(' ')
	if sev.Bold() {
		b.WriteString(l.profile.String(msg).Bold().String())
	} else {
		b.WriteString(msg)
	}
	b.WriteByte('\n')
}

// Session is exclusive access to a Logger obtained through Locked.
// It must not be used after the callback returns.
type Session struct {
	l *Logger
}

func (s *Session) Log(sev Severity, msg any) error {
	if s.l == nil {
		panic("console: session used outside Locked")
	}
	return s.l.emit(sev, msg)
}

func (s *Session) Info(msg any) error    { return s.Log(Info, msg) }
func (s *Session) Note(msg any) error    { return s.Log(Note, msg) }
func (s *Session) Warning(msg any) error { return s.Log(Warning, msg) }
func (s *Session) Error(msg any) error   { return s.Log(Error, msg) }
func (s *Session) Fatal(msg any) error   { return s.Log(Fatal, msg) }

// Plain strips every styling escape from line.
func Plain(line string) string {
	return ansi.Strip(line)
}

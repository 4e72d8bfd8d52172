package testutil

import (
	"bytes"
	"strings"
	"sync"
)

// ErrWriter fails every write with Err.
type ErrWriter struct {
	Err error
}

func (w ErrWriter) Write(p []byte) (int, error) { return 0, w.Err }

// FlushBuffer is a bytes.Buffer that counts Flush calls and can fail them.
type FlushBuffer struct {
	bytes.Buffer
	Flushes  int
	FlushErr error
}

func (b *FlushBuffer) Flush() error {
	b.Flushes++
	return b.FlushErr
}

// SyncBuffer is a bytes.Buffer safe for concurrent use, for sinks shared
// with something other than a console.Logger.
type SyncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *SyncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *SyncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Lines splits output into lines, dropping the final terminator.
func Lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

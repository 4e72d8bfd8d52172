package console

import "fmt"

// WriteError reports a failed write or flush on a sink.
type WriteError struct {
	Sink string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write to %s: %v", e.Sink, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

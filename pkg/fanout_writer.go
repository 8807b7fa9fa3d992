package pkg

import (
	"io"
	"sync"

	"go.uber.org/multierr"
)

// FanoutWriter copies every write to all of its writers. A failing writer does
// not stop the others; the write succeeds as long as one writer took the whole
// buffer, and the failures are kept in LastErr.
type FanoutWriter struct {
	Writers []io.Writer

	mu      sync.Mutex
	lastErr error
}

func NewFanoutWriter(writers ...io.Writer) *FanoutWriter {
	fw := &FanoutWriter{}
	for _, w := range writers {
		if w != nil {
			fw.Writers = append(fw.Writers, w)
		}
	}
	return fw
}

func (fw *FanoutWriter) Write(p []byte) (int, error) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	var (
		errs     error
		complete bool
	)
	for _, w := range fw.Writers {
		n, err := w.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		complete = true
	}
	fw.lastErr = errs

	if !complete {
		if errs == nil {
			errs = io.ErrClosedPipe
		}
		return 0, errs
	}
	return len(p), nil
}

// LastErr returns the failures of the most recent write, if any.
func (fw *FanoutWriter) LastErr() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return fw.lastErr
}

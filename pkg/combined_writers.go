package pkg

import "io"

// CombinedWriter writes to all given writers, ignoring individual
// write failures so one broken sink cannot stop the others.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		writers: writers,
	}
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	for _, w := range cw.writers {
		_, _ = w.Write(p)
	}
	return len(p), nil
}

package io

import (
	"encoding/csv"
	"fmt"
	"io"
)

// NoopWriter discards everything written to it.
type NoopWriter struct{}

func (x NoopWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

// PredictionWriter writes one CSV line per evaluated record: the class, the
// under marker and the over marker. Exactly one of
// the markers is set.
type PredictionWriter struct {
	w *csv.Writer
}

func NewPredictionWriter(output io.Writer) *PredictionWriter {
	return &PredictionWriter{w: csv.NewWriter(output)}
}

func (p *PredictionWriter) Write(class, under, over string) error {
	if err := p.w.Write([]string{class, under, over}); err != nil {
		return fmt.Errorf("error writing prediction: %w", err)
	}
	return nil
}

// Flush writes any buffered predictions to the underlying writer.
func (p *PredictionWriter) Flush() error {
	p.w.Flush()
	if err := p.w.Error(); err != nil {
		return fmt.Errorf("error flushing predictions: %w", err)
	}
	return nil
}

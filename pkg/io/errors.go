package io

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset is reported when a dataset holds no records.
var ErrEmptyDataset = errors.New("dataset contains no records")

// IngestionError reports a dataset that could not be loaded. Line is the
// 1-based input line the failure refers to, or 0 when it is not tied to one.
type IngestionError struct {
	Line int
	Err  error
}

func (e *IngestionError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("error ingesting dataset at line %d: %s", e.Line, e.Err)
	}
	return fmt.Sprintf("error ingesting dataset: %s", e.Err)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}

package io

import (
	"fmt"

	"tally/pkg/model"
)

// Split cuts records into a training slice holding the first percent of the
// records and a test slice holding the remainder. Order is preserved.
func Split(records []*model.Record, percent int) (train, test []*model.Record, err error) {
	if percent < 0 || percent > 100 {
		return nil, nil, fmt.Errorf("split percentage %d out of range", percent)
	}
	cut := len(records) * percent / 100
	return records[:cut], records[cut:], nil
}

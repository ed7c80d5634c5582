package pkg

import "errors"

var (
	// ErrEmptyPartition is returned when a training slice holds no record of
	// one of the two classes, leaving that class mean undefined.
	ErrEmptyPartition = errors.New("training data contains no record of class")

	// ErrZeroPrediction is returned when no test record is predicted under,
	// leaving the accuracy undefined.
	ErrZeroPrediction = errors.New("no test record predicted under")

	// ErrEmptyTestSlice is returned when the split leaves nothing to evaluate.
	ErrEmptyTestSlice = errors.New("no test data")
)

package ggchart

import "errors"

var (
	// ErrEmptyDataset is returned when a scale is requested for zero values.
	ErrEmptyDataset = errors.New("ggchart: empty dataset")

	// ErrDegenerateRange is returned by a strict scale when every value is
	// identical. Non-strict scales snap to MinStep instead.
	ErrDegenerateRange = errors.New("ggchart: degenerate value range")

	// ErrInvalidOrientation is returned for an Orientation outside the four
	// defined values.
	ErrInvalidOrientation = errors.New("ggchart: invalid orientation")

	// ErrNonFiniteValue is returned when a dataset contains NaN or ±Inf.
	ErrNonFiniteValue = errors.New("ggchart: non-finite value")
)

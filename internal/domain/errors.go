package domain

import "errors"

// Error kinds surfaced by the data services. Callers match them with errors.Is.
var (
	// ErrNoData reports an empty or absent collection.
	ErrNoData = errors.New("no data")
	// ErrValidationFailed reports missing required input or a malformed backing dataset.
	ErrValidationFailed = errors.New("validation failed")
	// ErrInvalidFormat reports a dataset whose shape does not match the expected collection.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrFetchFailed reports that reading a dataset did not succeed.
	ErrFetchFailed = errors.New("fetch failed")
)

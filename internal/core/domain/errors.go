package domain

import "errors"

var (
	// ErrNoData is returned when an export or render is requested for an
	// empty row set. Callers surface it as a non-fatal notice.
	ErrNoData = errors.New("no data")

	ErrUnsupportedFormat = errors.New("unsupported export format")
)

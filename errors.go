package walknet

import (
	"github.com/pkg/errors"
)

// Error kinds surfaced by the pipeline. Callers match them with errors.Is
var (
	// ErrSourceUnavailable network source could not deliver a graph (transport, HTTP status or decoding failure)
	ErrSourceUnavailable = errors.New("network source unavailable")
	// ErrWriteFailure output artifact could not be written
	ErrWriteFailure = errors.New("can't write artifact")
	// ErrMalformedTag tag value can't be projected (non-numeric coordinate, negative length and so on)
	ErrMalformedTag = errors.New("malformed tag")
	// ErrInvalidRegion region descriptor is out of range or inconsistent
	ErrInvalidRegion = errors.New("invalid region")
)

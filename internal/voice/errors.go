package voice

import "errors"

// Request validation errors of the transports. Interpretation itself never fails.
var (
	ErrEmptyTranscript  = errors.New("transcript is empty")
	ErrBothInputs       = errors.New("transcript and alternatives are mutually exclusive")
	ErrInvalidTimestamp = errors.New("now must be an RFC3339 timestamp")
)

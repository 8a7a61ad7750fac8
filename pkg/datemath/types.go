package datemath

import "time"

// Span is a byte range [Start, End) of the text handed to Extract.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ParsedDate is an absolute due time recovered from free text together with
// the fragments it was read from.
type ParsedDate struct {
	At      time.Time `json:"at"`
	Text    string    `json:"text"`     // matched fragments in text order, e.g. "tomorrow at 3pm"
	Spans   []Span    `json:"spans"`    // consumed ranges, ascending and non-overlapping
	HasDate bool      `json:"has_date"` // a date keyword or pattern was found
	HasTime bool      `json:"has_time"` // a time-of-day fragment was found
}

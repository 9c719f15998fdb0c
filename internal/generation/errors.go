package generation

import "errors"

var (
	// ErrEmptyNotes reports a request whose notes are empty after trimming.
	// The user must fix the input; retrying does not help.
	ErrEmptyNotes = errors.New("notes content is required")

	// ErrMalformedResponse reports provider output that is not valid JSON.
	// Resampling the model may yield valid output, so a retry is safe.
	ErrMalformedResponse = errors.New("model response is not valid JSON")

	// ErrSchemaMismatch reports parseable output that does not match the
	// contracted schema and cannot be repaired. A retry is safe.
	ErrSchemaMismatch = errors.New("model response does not match the expected schema")
)

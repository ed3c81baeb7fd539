package ingestion

import "fmt"

// Extraction failure reasons.
const (
	ReasonInvalidFormat = "invalid-format"
	ReasonEncrypted     = "encrypted"
	ReasonUnknown       = "unknown"
)

// ExtractionError reports why text could not be pulled out of an uploaded
// document. Reason is one of the constants above and is stable for clients.
type ExtractionError struct {
	Reason string
	Cause  error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document extraction failed (%s): %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("document extraction failed (%s)", e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

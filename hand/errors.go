package hand

import "fmt"

// ValidationError describes a malformed hand record. It is fatal for the
// hand: no snapshots are produced from an invalid record.
type ValidationError struct {
	Field   string `json:"field"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("hand validation error(field=%s reason=%s): %s", e.Field, e.Reason, e.Message)
}

package node

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a missing blob or byte range in node storage.
var ErrNotFound = errors.New("node blob not found")

// DecodeError describes a corrupt or truncated node blob. Non-fatal for
// the pipeline: the affected snapshot just loses its solver data.
type DecodeError struct {
	Stage   string // "header", "decompress", "body"
	Message string
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("node decode error(stage=%s): %s", e.Stage, e.Message)
}

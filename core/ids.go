package core

import (
	"github.com/oklog/ulid/v2"
)

// NewRunID generates the identifier attached to every log line of one
// command invocation. The format is: run_ULID
// Example: core.NewRunID() returns "run_01G0EZ1XTM37C5X11SQTDNCTM1"
func NewRunID() string {
	return "run_" + ulid.Make().String()
}

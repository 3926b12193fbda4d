package types

import (
	"fmt"
	"strings"
)

// RelocationError reports a failed copy of one remapped file back over the
// source tree. Every failure observed while copying and closing is kept in
// Causes.
type RelocationError struct {
	Source       string
	Destination  string
	RemappedRoot string
	Relative     string
	Causes       []error
}

func (e *RelocationError) Error() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "%s -> %s (derived by %s & %s): failed to copy", e.Source, e.Destination, e.RemappedRoot, e.Relative)
	for _, cause := range e.Causes {
		builder.WriteString("; ")
		builder.WriteString(cause.Error())
	}
	return builder.String()
}

func (e *RelocationError) Unwrap() []error {
	return e.Causes
}

package procinfo

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed reports that the kernel returned a byte count that
	// matches neither "no data" nor the expected record layout. The buffer
	// contents are discarded; a partially written record is never exposed.
	ErrMalformed = errors.New("procinfo: reply size does not match record layout")

	// ErrInvalidString reports that a text field embedded in a record is
	// not valid UTF-8. It invalidates only the field being decoded, not
	// the record it came from.
	ErrInvalidString = errors.New("procinfo: string field is not valid UTF-8")
)

// UnknownFDTypeError reports a descriptor type tag outside the known set.
// New tags appear as the OS evolves, so callers should treat this as an
// expected condition, not a protocol violation.
type UnknownFDTypeError struct {
	Raw uint32
}

func (e *UnknownFDTypeError) Error() string {
	return fmt.Sprintf("procinfo: unknown fd type %d", e.Raw)
}

// osError wraps a kernel errno with the failing call's name. The errno is
// preserved for errors.Is (e.g. errors.Is(err, unix.ESRCH)).
func osError(call string, errno error) error {
	return fmt.Errorf("procinfo: %s: %w", call, errno)
}

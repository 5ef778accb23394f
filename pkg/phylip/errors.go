// pkg/phylip/errors.go
package phylip

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMode    = errors.New("phylip: invalid mode")
	ErrFormat         = errors.New("phylip: format error")
	ErrMissingField   = errors.New("phylip: entry missing name or sequence")
	ErrLengthMismatch = errors.New("phylip: sequence length does not match")
	ErrInvalidWrap    = errors.New("phylip: wrap width must be > 0")
	ErrClosed         = errors.New("phylip: stream closed")
	ErrNotReadable    = errors.New("phylip: stream not opened for reading")
	ErrNotWritable    = errors.New("phylip: stream not opened for writing")
)

// FormatError reports malformed input. Line is 1-based; 0 means unknown.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("phylip: line %d: %s", e.Line, e.Msg)
	}
	return "phylip: " + e.Msg
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// LengthMismatchError is returned by WriteEntry when a sequence length
// differs from the nchar fixed by the first write.
type LengthMismatchError struct {
	Name string
	Want int
	Got  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("phylip: sequence %q has length %d, want %d", e.Name, e.Got, e.Want)
}

func (e *LengthMismatchError) Is(target error) bool { return target == ErrLengthMismatch }

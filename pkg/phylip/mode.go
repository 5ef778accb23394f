// pkg/phylip/mode.go
package phylip

import (
	"fmt"
	"io"
)

// Mode selects how a Stream acquires its underlying data.
type Mode int

const (
	ModeRead Mode = iota + 1
	ModeWrite
	ModeAppend
	ModeHandle
	ModeString
)

func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	case ModeAppend:
		return "append"
	case ModeHandle:
		return "handle"
	case ModeString:
		return "string"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Writable reports whether entries written in this mode are emitted at Close.
func (m Mode) Writable() bool { return m == ModeWrite || m == ModeAppend }

// ParseMode maps a mode tag to a Mode. Both the short tags (r, w, a, f, s)
// and the long names are accepted.
func ParseMode(tag string) (Mode, error) {
	switch tag {
	case "r", "read":
		return ModeRead, nil
	case "w", "write":
		return ModeWrite, nil
	case "a", "append":
		return ModeAppend, nil
	case "f", "handle":
		return ModeHandle, nil
	case "s", "string":
		return ModeString, nil
	}
	return 0, fmt.Errorf("%w: %q (want r, w, a, f or s)", ErrInvalidMode, tag)
}

// Source describes where a Stream reads from or writes to. The concrete
// types are ReadPath, WritePath, AppendPath, Handle and Text.
type Source interface {
	Mode() Mode
}

// ReadPath reads a PHYLIP file. "-" reads stdin.
type ReadPath struct{ Path string }

// WritePath creates or truncates a file; output is written at Close.
type WritePath struct{ Path string }

// AppendPath creates a file if needed and appends output at Close.
type AppendPath struct{ Path string }

// Handle reads from a reader owned by the caller. If R is an io.Closer it is
// closed by Stream.Close.
type Handle struct{ R io.Reader }

// Text reads PHYLIP data held in memory.
type Text struct{ Data string }

func (ReadPath) Mode() Mode   { return ModeRead }
func (WritePath) Mode() Mode  { return ModeWrite }
func (AppendPath) Mode() Mode { return ModeAppend }
func (Handle) Mode() Mode     { return ModeHandle }
func (Text) Mode() Mode       { return ModeString }

// NewSource builds a Source from a mode and a path (or, for ModeString, the
// data itself). ModeHandle needs a reader and is rejected here.
func NewSource(m Mode, arg string) (Source, error) {
	switch m {
	case ModeRead:
		return ReadPath{Path: arg}, nil
	case ModeWrite:
		return WritePath{Path: arg}, nil
	case ModeAppend:
		return AppendPath{Path: arg}, nil
	case ModeString:
		return Text{Data: arg}, nil
	case ModeHandle:
		return nil, fmt.Errorf("%w: handle mode needs an io.Reader, use Handle{}", ErrInvalidMode)
	}
	return nil, fmt.Errorf("%w: %v", ErrInvalidMode, m)
}

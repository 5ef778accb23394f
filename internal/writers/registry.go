// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"phylip/pkg/phylip"
)

// Alignment is one input file after parsing.
type Alignment struct {
	Source  string
	Header  phylip.Header
	Entries []phylip.Entry
}

// Payload is everything a writer needs.
type Payload struct {
	Alignments []Alignment
	Format     phylip.Format
}

// Writer registry (format → handler). Register in init() blocks of the
// format files.
var formats = map[string]func(w io.Writer, p Payload) error{}

// Register is idempotent, last wins.
func Register(format string, fn func(io.Writer, Payload) error) { formats[format] = fn }

// Formats lists the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for k := range formats {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Known reports whether format has a writer.
func Known(format string) bool {
	_, ok := formats[format]
	return ok
}

// Write dispatches p to the writer registered for format.
func Write(format string, w io.Writer, p Payload) error {
	fn, ok := formats[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, p)
}

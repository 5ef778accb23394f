// pkg/phylip/wrap.go
package phylip

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// Format controls how Encode lays out the body.
type Format struct {
	Wrap int    // runes per output line, name field included
	Term string // line terminator
}

// DefaultFormat wraps at 80 columns with "\n" line endings.
func DefaultFormat() Format { return Format{Wrap: 80, Term: "\n"} }

// PadName truncates name to NameWidth runes or pads it with spaces.
func PadName(name string) string {
	n := 0
	for i := range name {
		if n == NameWidth {
			return name[:i]
		}
		n++
	}
	return name + strings.Repeat(" ", NameWidth-n)
}

// Wrap splits s into chunks of width runes, each followed by term. The last
// chunk may be shorter. No word boundaries are considered.
func Wrap(s string, width int, term string) []string {
	if s == "" || width <= 0 {
		return nil
	}
	chunks := make([]string, 0, utf8.RuneCountInString(s)/width+1)
	start, n := 0, 0
	for i := range s {
		if n == width {
			chunks = append(chunks, s[start:i]+term)
			start, n = i, 0
		}
		n++
	}
	return append(chunks, s[start:]+term)
}

// Encode writes the header and an interleaved body for entries: chunk 0 of
// every entry, a blank line, chunk 1 of every entry, a blank line, and so
// on. The header is computed from entries; all sequences should share the
// length of the first one.
func Encode(w io.Writer, entries []Entry, f Format) error {
	if f.Wrap <= 0 {
		return ErrInvalidWrap
	}
	if len(entries) == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)
	h := Header{NTax: len(entries), NChar: utf8.RuneCountInString(entries[0].Sequence)}
	if _, err := bw.WriteString(h.String() + "\n"); err != nil {
		return err
	}

	broken := make([][]string, len(entries))
	rounds := -1
	for i, e := range entries {
		broken[i] = Wrap(PadName(e.Name)+e.Sequence, f.Wrap, f.Term)
		if rounds < 0 || len(broken[i]) < rounds {
			rounds = len(broken[i])
		}
	}
	for r := 0; r < rounds; r++ {
		for _, chunks := range broken {
			if _, err := bw.WriteString(chunks[r]); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(f.Term); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// pkg/phylip/decode.go
package phylip

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)

// scanLines is bufio.ScanLines with CR, LF and CRLF all accepted as breaks.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// lone CR at the end of the buffer; an LF may follow
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// lineReader yields trimmed, non-empty lines and remembers the line number.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	sc.Split(scanLines)
	return &lineReader{sc: sc}
}

func (lr *lineReader) next() (string, bool) {
	for lr.sc.Scan() {
		lr.line++
		if s := strings.TrimSpace(lr.sc.Text()); s != "" {
			return s, true
		}
	}
	return "", false
}

func (lr *lineReader) err() error {
	if err := lr.sc.Err(); err != nil {
		return fmt.Errorf("phylip scan: %w", err)
	}
	return nil
}

// Decode parses a complete PHYLIP alignment from r. Sequential and
// interleaved layouts are handled alike: blocks of NTax lines are read until
// the first taxon holds NChar characters. Lines of later blocks are matched
// to taxa by position, never by name.
func Decode(r io.Reader) (Header, []Entry, error) {
	lr := newLineReader(r)
	h, err := decodeHeader(lr)
	if err != nil {
		return Header{}, nil, err
	}

	// Grown line by line: the header counts are untrusted until the body
	// backs them up.
	var (
		names []string
		seqs  []*strings.Builder
	)
	have := 0
	for first := true; have < h.NChar; first = false {
		for i := 0; i < h.NTax; i++ {
			line, ok := lr.next()
			if !ok {
				if err := lr.err(); err != nil {
					return h, nil, err
				}
				return h, nil, &FormatError{
					Line: lr.line,
					Msg:  fmt.Sprintf("unexpected end of input: taxon %d of %d, %d of %d characters", i+1, h.NTax, have, h.NChar),
				}
			}
			if first {
				name, frag := splitLine(line)
				sb := &strings.Builder{}
				sb.WriteString(frag)
				names = append(names, name)
				seqs = append(seqs, sb)
			} else {
				seqs[i].WriteString(stripSpace(line))
			}
		}
		have = utf8.RuneCountInString(seqs[0].String())
	}

	out := make([]Entry, len(names))
	for i := range out {
		out[i] = Entry{Name: names[i], Sequence: seqs[i].String()}
	}
	return h, out, nil
}

func decodeHeader(lr *lineReader) (Header, error) {
	line, ok := lr.next()
	if !ok {
		if err := lr.err(); err != nil {
			return Header{}, err
		}
		return Header{}, &FormatError{Msg: "missing header"}
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Header{}, &FormatError{Line: lr.line, Msg: fmt.Sprintf("header must hold two integers, got %q", line)}
	}
	var nums [2]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Header{}, &FormatError{Line: lr.line, Msg: fmt.Sprintf("bad header value %q", f)}
		}
		if n <= 0 {
			return Header{}, &FormatError{Line: lr.line, Msg: fmt.Sprintf("header value %d must be positive", n)}
		}
		nums[i] = n
	}
	return Header{NTax: nums[0], NChar: nums[1]}, nil
}

// splitLine cuts a first-block line into its name field and sequence
// fragment. The name is whatever falls in the first NameWidth runes.
func splitLine(line string) (name, frag string) {
	if utf8.RuneCountInString(line) <= NameWidth {
		return strings.TrimSpace(line), ""
	}
	cut := 0
	for i := 0; i < NameWidth; i++ {
		_, size := utf8.DecodeRuneInString(line[cut:])
		cut += size
	}
	return strings.TrimSpace(line[:cut]), stripSpace(line[cut:])
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

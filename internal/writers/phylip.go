// internal/writers/phylip.go
package writers

import (
	"fmt"
	"io"

	"phylip/pkg/phylip"
)

func init() {
	Register("phylip", func(w io.Writer, p Payload) error {
		entries, err := Merge(p.Alignments)
		if err != nil {
			return err
		}
		return phylip.Encode(w, entries, p.Format)
	})
}

// Merge concatenates the taxa of all alignments in order. Every alignment
// must share the nchar of the first one.
func Merge(alns []Alignment) ([]phylip.Entry, error) {
	var out []phylip.Entry
	for i, a := range alns {
		if i > 0 && a.Header.NChar != alns[0].Header.NChar {
			return nil, fmt.Errorf("%s: %w", a.Source, &phylip.LengthMismatchError{
				Name: a.Source, Want: alns[0].Header.NChar, Got: a.Header.NChar,
			})
		}
		out = append(out, a.Entries...)
	}
	return out, nil
}

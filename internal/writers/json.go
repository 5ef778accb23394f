// internal/writers/json.go
package writers

import (
	"encoding/json"
	"io"
	"unicode/utf8"

	"phylip/internal/jsonlutil"
	"phylip/internal/jsonutil"
	"phylip/pkg/api"
	"phylip/pkg/phylip"
)

func init() {
	Register("json", writeJSON)
	Register("jsonl", writeJSONL)
}

// ToAPIEntry converts an entry to the v1 wire type.
func ToAPIEntry(e phylip.Entry, source string) api.EntryV1 {
	return api.EntryV1{
		Name:       e.Name,
		Sequence:   e.Sequence,
		Length:     utf8.RuneCountInString(e.Sequence),
		SourceFile: source,
	}
}

// ToAPIAlignment converts a whole alignment to the v1 wire type.
func ToAPIAlignment(a Alignment) api.AlignmentV1 {
	out := api.AlignmentV1{
		SourceFile: a.Source,
		NTax:       a.Header.NTax,
		NChar:      a.Header.NChar,
		Entries:    make([]api.EntryV1, 0, len(a.Entries)),
	}
	for _, e := range a.Entries {
		out.Entries = append(out.Entries, ToAPIEntry(e, ""))
	}
	return out
}

func writeJSON(w io.Writer, p Payload) error {
	list := make([]api.AlignmentV1, 0, len(p.Alignments))
	for _, a := range p.Alignments {
		list = append(list, ToAPIAlignment(a))
	}
	return jsonutil.EncodePretty(w, list)
}

// writeJSONL streams one entry per line through the shared encoder goroutine.
func writeJSONL(w io.Writer, p Payload) error {
	in, done := jsonlutil.Start[api.EntryV1](w, 64,
		func(enc *json.Encoder, e api.EntryV1) error { return enc.Encode(e) },
		IsBrokenPipe,
	)
	for _, a := range p.Alignments {
		for _, e := range a.Entries {
			select {
			case in <- ToAPIEntry(e, a.Source):
			case err := <-done:
				close(in)
				return err
			}
		}
	}
	close(in)
	return <-done
}

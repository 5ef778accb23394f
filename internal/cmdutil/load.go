// internal/cmdutil/load.go
package cmdutil

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"phylip/internal/writers"
	"phylip/pkg/phylip"
)

// LoadAlignments reads every path in order. Cancellation is checked between
// files; a single file is always read to completion.
func LoadAlignments(ctx context.Context, paths []string, log *slog.Logger) ([]writers.Alignment, error) {
	out := make([]writers.Alignment, 0, len(paths))
	for _, p := range paths {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		default:
		}
		var a writers.Alignment
		err := phylip.With(phylip.ReadPath{Path: p}, func(s *phylip.Stream) error {
			entries, err := s.ReadAll()
			if err != nil {
				return err
			}
			a = writers.Alignment{Source: p, Header: s.Header(), Entries: entries}
			return nil
		}, phylip.WithLogger(log))
		if err != nil {
			return out, fmt.Errorf("%s: %w", p, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// MismatchedEntries lists entries whose sequence length differs from the header.
func MismatchedEntries(a writers.Alignment) []string {
	var names []string
	for _, e := range a.Entries {
		if n := utf8.RuneCountInString(e.Sequence); n != a.Header.NChar {
			names = append(names, fmt.Sprintf("%s (%d)", e.Name, n))
		}
	}
	return names
}

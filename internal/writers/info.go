// internal/writers/info.go
package writers

import (
	"fmt"
	"io"
)

// InfoHeader is the column line of the info output.
const InfoHeader = "source_file\tntax\tnchar"

func init() {
	Register("info", func(w io.Writer, p Payload) error {
		if _, err := fmt.Fprintln(w, InfoHeader); err != nil {
			return err
		}
		for _, a := range p.Alignments {
			if _, err := fmt.Fprintf(w, "%s\t%d\t%d\n", a.Source, a.Header.NTax, a.Header.NChar); err != nil {
				return err
			}
		}
		return nil
	})
}

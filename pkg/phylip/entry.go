// pkg/phylip/entry.go
package phylip

import "fmt"

// NameWidth is the number of columns reserved for a taxon name.
const NameWidth = 10

// Entry is one taxon: a name and its aligned sequence.
type Entry struct {
	Name     string
	Sequence string
}

// Header holds the two counts on the first line of a PHYLIP file.
type Header struct {
	NTax  int
	NChar int
}

func (h Header) String() string { return fmt.Sprintf("%d %d", h.NTax, h.NChar) }

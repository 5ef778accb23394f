// pkg/api/alignment_v1.go
package api

// EntryV1 is the stable JSON/JSONL schema for one taxon.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type EntryV1 struct {
	Name       string `json:"name"`
	Sequence   string `json:"sequence"`
	Length     int    `json:"length"`
	SourceFile string `json:"source_file,omitempty"`
}

// AlignmentV1 is one parsed input file.
type AlignmentV1 struct {
	SourceFile string    `json:"source_file"`
	NTax       int       `json:"ntax"`
	NChar      int       `json:"nchar"`
	Entries    []EntryV1 `json:"entries"`
}

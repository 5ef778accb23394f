// Package writers turns loaded alignments into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (PHYLIP, JSON/JSONL, info TSV).
//   • pkg/phylip stays codec-only; app stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers

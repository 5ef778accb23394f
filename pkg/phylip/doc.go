// Package phylip reads and writes PHYLIP multiple-sequence alignments.
//
// A file starts with "<ntax> <nchar>" and continues with ntax lines per
// block: a 10-column name field followed by sequence data in the first
// block, bare sequence data in later ones. Sequential files are simply the
// one-block case.
//
// Stream is the file-like entry point (Open, ReadEntry, WriteEntry, Close).
// Decode and Encode are the pure codec underneath it.
package phylip

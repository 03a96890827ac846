// Package pattern resolves feature patterns against a matrix vocabulary.
//
// A pattern is matched under one of three semantics: fixed (exact string
// equality), glob (wildcard matching with * and ?, anchored to the full
// label), or regex (Go regular expressions, anchored to the full label).
// Case-insensitive fixed and glob matching uses full Unicode case folding
// (golang.org/x/text/cases); regex matching passes case-insensitivity to
// the engine as a flag instead.
//
// Resolution is a pure function: matched positions are returned as a
// roaring bitmap in ascending vocabulary order, independent of pattern
// order and of any internal parallelism.
package pattern

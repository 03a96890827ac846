// Package dfm implements a sparse document-feature matrix.
//
// A DFM holds per-document counts (or weights) over an ordered vocabulary of
// feature labels. Columns are stored sparsely: each column keeps the ascending
// document positions with a nonzero value and the values themselves.
//
// Matrices are built with a Builder and are immutable afterwards; all column
// operations (SliceColumns, InsertZeroColumns, ReorderColumns) return a new
// matrix. Column backing slices are shared between the input and the output,
// so these operations are cheap even on large matrices.
//
// Example:
//
//	m, _ := dfm.NewBuilder().
//	    Document("doc1", map[string]float64{"cat": 2, "dog": 1}).
//	    Document("doc2", map[string]float64{"cat": 1}).
//	    Build()
//	fmt.Println(m.FeatNames()) // [cat dog]
package dfm

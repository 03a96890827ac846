// Package featmat selects features from sparse document-feature matrices.
//
// A document-feature matrix (dfm.DFM) holds per-document counts over an
// ordered vocabulary of feature labels. Select, Keep and Remove compute a
// new matrix restricted to the features matched by a pattern source, under
// fixed, glob or regex semantics:
//
//	out, _ := featmat.Remove(m, []string{"the", "a", "of"}, featmat.WithMatchMode(featmat.MatchFixed))
//	out, _ := featmat.Keep(m, []string{"econ*", "invest*"})
//	out, _ := featmat.Keep(m, []string{`^tax(es|ation)?$`}, featmat.WithMatchMode(featmat.MatchRegex))
//
// Matching is case-insensitive by default (full Unicode case folding for
// fixed and glob, engine flag for regex); disable with WithCaseSensitive.
// Results always preserve the original column order, regardless of pattern
// order. An independent character-length filter narrows every selection;
// the default bounds keep features of 1 to 79 characters.
//
// # Dictionaries
//
// A dict.Dictionary maps categories to entries. Multi-token entries are
// joined with the matrix's concatenator before matching, so the entry
// "New York" matches the feature "New_York":
//
//	d, _ := dict.LoadYAMLFile("sentiment.yml")
//	out, _ := featmat.Keep(m, d, featmat.WithMatchMode(featmat.MatchFixed))
//
// # Projection
//
// Passing a matrix as the pattern source with keep semantics projects onto
// that matrix's exact feature set: shared columns keep their counts,
// features missing from the source are inserted as all-zero padding
// columns, and the output vocabulary equals the reference vocabulary in
// membership and order. This is how a matrix built from new documents is
// scored against a model trained on a fixed vocabulary:
//
//	scored, _ := featmat.Keep(newDocs, trainedModelMatrix)
//
// # Persistence
//
// The snapshot package saves and loads matrices as self-describing
// compressed files.
package featmat

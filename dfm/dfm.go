package dfm

import (
	"fmt"
)

// DefaultConcatenator joins the tokens of multi-token dictionary entries so
// they can match single concatenated feature labels.
const DefaultConcatenator = "_"

// Metadata carries matrix-level attributes that column operations preserve.
type Metadata struct {
	// Concatenator is the delimiter substituted for whitespace inside
	// multi-token dictionary entries. Defaults to DefaultConcatenator.
	Concatenator string
	// Weighting names the weighting scheme applied to the cells
	// (e.g. "count", "prop", "tfidf"). Informational only.
	Weighting string
	// Attrs holds arbitrary caller-owned attributes.
	Attrs map[string]any
}

// column is a sparse feature column. rows holds ascending document positions
// with a nonzero cell; vals holds the matching values. Columns are immutable
// once built, which lets derived matrices share them.
type column struct {
	label   string
	rows    []uint32
	vals    []float64
	padding bool
}

// DFM is a sparse document-feature matrix.
//
// The zero value is not usable; construct matrices with a Builder or
// FromSnapshot. A DFM is immutable and safe for concurrent readers.
type DFM struct {
	docs []string
	cols []column
	meta Metadata
}

// NDoc returns the number of documents (rows).
func (m *DFM) NDoc() int { return len(m.docs) }

// NFeat returns the number of features (columns).
func (m *DFM) NFeat() int { return len(m.cols) }

// DocNames returns a copy of the ordered document identifiers.
func (m *DFM) DocNames() []string {
	out := make([]string, len(m.docs))
	copy(out, m.docs)
	return out
}

// FeatNames returns a copy of the ordered vocabulary.
func (m *DFM) FeatNames() []string {
	out := make([]string, len(m.cols))
	for j, c := range m.cols {
		out[j] = c.label
	}
	return out
}

// Concatenator returns the multi-token join delimiter for this matrix.
func (m *DFM) Concatenator() string {
	if m.meta.Concatenator == "" {
		return DefaultConcatenator
	}
	return m.meta.Concatenator
}

// Weighting returns the weighting scheme tag.
func (m *DFM) Weighting() string { return m.meta.Weighting }

// Attrs returns the caller-owned attribute map. The map is shared, not
// copied; treat it as read-only.
func (m *DFM) Attrs() map[string]any { return m.meta.Attrs }

// IsPadding reports whether column j is an all-zero padding column inserted
// by a projection. Padding columns are exempt from length filtering.
func (m *DFM) IsPadding(j int) bool {
	if j < 0 || j >= len(m.cols) {
		return false
	}
	return m.cols[j].padding
}

// Count returns the cell value at (document position i, feature position j).
// Missing cells are zero.
func (m *DFM) Count(i, j int) (float64, error) {
	if i < 0 || i >= len(m.docs) {
		return 0, fmt.Errorf("document position %d out of range [0, %d)", i, len(m.docs))
	}
	if j < 0 || j >= len(m.cols) {
		return 0, fmt.Errorf("feature position %d out of range [0, %d)", j, len(m.cols))
	}
	c := m.cols[j]
	for k, r := range c.rows {
		if int(r) == i {
			return c.vals[k], nil
		}
		if int(r) > i {
			break
		}
	}
	return 0, nil
}

// ColSum returns the sum of column j, or 0 if j is out of range.
func (m *DFM) ColSum(j int) float64 {
	if j < 0 || j >= len(m.cols) {
		return 0
	}
	var sum float64
	for _, v := range m.cols[j].vals {
		sum += v
	}
	return sum
}

// Row materializes document i as a dense feature→value map over nonzero
// cells. Intended for inspection and tests, not bulk access.
func (m *DFM) Row(i int) (map[string]float64, error) {
	if i < 0 || i >= len(m.docs) {
		return nil, fmt.Errorf("document position %d out of range [0, %d)", i, len(m.docs))
	}
	out := make(map[string]float64)
	for _, c := range m.cols {
		for k, r := range c.rows {
			if int(r) == i {
				if c.vals[k] != 0 {
					out[c.label] = c.vals[k]
				}
				break
			}
			if int(r) > i {
				break
			}
		}
	}
	return out, nil
}

// featIndex builds a label → column position lookup.
func (m *DFM) featIndex() map[string]int {
	idx := make(map[string]int, len(m.cols))
	for j, c := range m.cols {
		idx[c.label] = j
	}
	return idx
}

// cloneMeta copies metadata so derived matrices do not alias the attribute
// map of their source.
func cloneMeta(meta Metadata) Metadata {
	out := meta
	if meta.Attrs != nil {
		out.Attrs = make(map[string]any, len(meta.Attrs))
		for k, v := range meta.Attrs {
			out.Attrs[k] = v
		}
	}
	return out
}

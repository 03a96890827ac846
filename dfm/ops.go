package dfm

import (
	"fmt"
)

// SliceColumns returns a new matrix restricted to the given column positions,
// in the given order. Positions must be in range and pairwise distinct.
// Metadata and padding flags are preserved; column data is shared with the
// source matrix. An empty position list yields a valid zero-column matrix.
func (m *DFM) SliceColumns(positions []int) (*DFM, error) {
	cols := make([]column, 0, len(positions))
	seen := make(map[int]struct{}, len(positions))
	for _, j := range positions {
		if j < 0 || j >= len(m.cols) {
			return nil, fmt.Errorf("feature position %d out of range [0, %d)", j, len(m.cols))
		}
		if _, dup := seen[j]; dup {
			return nil, fmt.Errorf("duplicate feature position %d", j)
		}
		seen[j] = struct{}{}
		cols = append(cols, m.cols[j])
	}
	return &DFM{docs: m.docs, cols: cols, meta: cloneMeta(m.meta)}, nil
}

// InsertZeroColumns appends an all-zero column for every label, in order,
// and marks each as padding. Labels must not collide with existing features
// or with each other.
func (m *DFM) InsertZeroColumns(labels []string) (*DFM, error) {
	idx := m.featIndex()
	cols := make([]column, len(m.cols), len(m.cols)+len(labels))
	copy(cols, m.cols)
	for _, label := range labels {
		if _, exists := idx[label]; exists {
			return nil, fmt.Errorf("feature %q already present", label)
		}
		idx[label] = len(cols)
		cols = append(cols, column{label: label, padding: true})
	}
	return &DFM{docs: m.docs, cols: cols, meta: cloneMeta(m.meta)}, nil
}

// ReorderColumns returns a new matrix with columns arranged in target order.
// target must be a permutation of the current vocabulary.
func (m *DFM) ReorderColumns(target []string) (*DFM, error) {
	if len(target) != len(m.cols) {
		return nil, fmt.Errorf("target order has %d features, matrix has %d", len(target), len(m.cols))
	}
	idx := m.featIndex()
	cols := make([]column, len(target))
	seen := make(map[string]struct{}, len(target))
	for j, label := range target {
		src, ok := idx[label]
		if !ok {
			return nil, fmt.Errorf("feature %q not present in matrix", label)
		}
		if _, dup := seen[label]; dup {
			return nil, fmt.Errorf("duplicate feature %q in target order", label)
		}
		seen[label] = struct{}{}
		cols[j] = m.cols[src]
	}
	return &DFM{docs: m.docs, cols: cols, meta: cloneMeta(m.meta)}, nil
}

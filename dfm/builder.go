package dfm

import (
	"fmt"
	"sort"

	"github.com/hupe1980/featmat/internal/conv"
)

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithConcatenator sets the multi-token join delimiter recorded in the
// matrix metadata. An empty string keeps DefaultConcatenator.
func WithConcatenator(concat string) BuilderOption {
	return func(b *Builder) {
		b.meta.Concatenator = concat
	}
}

// WithWeighting sets the weighting scheme tag recorded in the matrix
// metadata.
func WithWeighting(scheme string) BuilderOption {
	return func(b *Builder) {
		b.meta.Weighting = scheme
	}
}

// WithAttrs sets caller-owned attributes carried by the matrix.
func WithAttrs(attrs map[string]any) BuilderOption {
	return func(b *Builder) {
		b.meta.Attrs = attrs
	}
}

// Builder accumulates per-document feature counts and assembles a DFM.
//
// Features are ordered by first appearance. Because Go map iteration order
// is randomized, the counts of each document are registered in sorted label
// order, so the resulting vocabulary order is deterministic for identical
// input.
type Builder struct {
	docs      []string
	docIndex  map[string]int
	labels    []string
	featIndex map[string]int
	cells     []map[uint32]float64 // per feature: doc position → value
	meta      Metadata
	err       error
}

// NewBuilder creates an empty Builder.
func NewBuilder(optFns ...BuilderOption) *Builder {
	b := &Builder{
		docIndex:  make(map[string]int),
		featIndex: make(map[string]int),
		meta:      Metadata{Concatenator: DefaultConcatenator},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(b)
		}
	}
	return b
}

// Document registers a document with its feature counts. Zero-valued counts
// are dropped. Registering the same document identifier twice is an error,
// reported by Build.
func (b *Builder) Document(id string, counts map[string]float64) *Builder {
	if b.err != nil {
		return b
	}
	if _, ok := b.docIndex[id]; ok {
		b.err = fmt.Errorf("duplicate document identifier %q", id)
		return b
	}

	pos := len(b.docs)
	b.docIndex[id] = pos
	b.docs = append(b.docs, id)

	docPos, err := conv.IntToUint32(pos)
	if err != nil {
		b.err = err
		return b
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		v := counts[label]
		if v == 0 {
			continue
		}
		j, ok := b.featIndex[label]
		if !ok {
			j = len(b.labels)
			b.featIndex[label] = j
			b.labels = append(b.labels, label)
			b.cells = append(b.cells, make(map[uint32]float64))
		}
		b.cells[j][docPos] = v
	}
	return b
}

// Build assembles the matrix. The Builder must not be reused afterwards.
func (b *Builder) Build() (*DFM, error) {
	if b.err != nil {
		return nil, b.err
	}

	cols := make([]column, len(b.labels))
	for j, label := range b.labels {
		cell := b.cells[j]
		rows := make([]uint32, 0, len(cell))
		for r := range cell {
			rows = append(rows, r)
		}
		sort.Slice(rows, func(a, c int) bool { return rows[a] < rows[c] })
		vals := make([]float64, len(rows))
		for k, r := range rows {
			vals[k] = cell[r]
		}
		cols[j] = column{label: label, rows: rows, vals: vals}
	}

	return &DFM{
		docs: append([]string(nil), b.docs...),
		cols: cols,
		meta: cloneMeta(b.meta),
	}, nil
}

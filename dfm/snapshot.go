package dfm

import (
	"fmt"
)

// Snapshot is a codec-friendly representation of a DFM, used by the
// snapshot package for persistence. Field order and names are part of the
// persisted format.
type Snapshot struct {
	Docs         []string       `json:"docs"`
	Features     []string       `json:"features"`
	Padding      []bool         `json:"padding,omitempty"`
	Rows         [][]uint32     `json:"rows"`
	Vals         [][]float64    `json:"vals"`
	Concatenator string         `json:"concatenator,omitempty"`
	Weighting    string         `json:"weighting,omitempty"`
	Attrs        map[string]any `json:"attrs,omitempty"`
}

// Snapshot exports the matrix. The returned snapshot shares no state with
// the matrix and may be mutated freely.
func (m *DFM) Snapshot() *Snapshot {
	s := &Snapshot{
		Docs:         m.DocNames(),
		Features:     m.FeatNames(),
		Rows:         make([][]uint32, len(m.cols)),
		Vals:         make([][]float64, len(m.cols)),
		Concatenator: m.meta.Concatenator,
		Weighting:    m.meta.Weighting,
	}
	var anyPadding bool
	for _, c := range m.cols {
		if c.padding {
			anyPadding = true
			break
		}
	}
	if anyPadding {
		s.Padding = make([]bool, len(m.cols))
	}
	for j, c := range m.cols {
		s.Rows[j] = append([]uint32(nil), c.rows...)
		s.Vals[j] = append([]float64(nil), c.vals...)
		if anyPadding {
			s.Padding[j] = c.padding
		}
	}
	if m.meta.Attrs != nil {
		s.Attrs = make(map[string]any, len(m.meta.Attrs))
		for k, v := range m.meta.Attrs {
			s.Attrs[k] = v
		}
	}
	return s
}

// FromSnapshot rebuilds a matrix from a snapshot, validating the structural
// invariants (unique documents and features, aligned column lengths,
// ascending in-range row positions).
func FromSnapshot(s *Snapshot) (*DFM, error) {
	if s == nil {
		return nil, fmt.Errorf("nil snapshot")
	}
	if len(s.Rows) != len(s.Features) || len(s.Vals) != len(s.Features) {
		return nil, fmt.Errorf("snapshot has %d features but %d/%d columns", len(s.Features), len(s.Rows), len(s.Vals))
	}
	if s.Padding != nil && len(s.Padding) != len(s.Features) {
		return nil, fmt.Errorf("snapshot has %d features but %d padding flags", len(s.Features), len(s.Padding))
	}

	seenDocs := make(map[string]struct{}, len(s.Docs))
	for _, id := range s.Docs {
		if _, dup := seenDocs[id]; dup {
			return nil, fmt.Errorf("duplicate document identifier %q", id)
		}
		seenDocs[id] = struct{}{}
	}

	seenFeats := make(map[string]struct{}, len(s.Features))
	cols := make([]column, len(s.Features))
	for j, label := range s.Features {
		if _, dup := seenFeats[label]; dup {
			return nil, fmt.Errorf("duplicate feature %q", label)
		}
		seenFeats[label] = struct{}{}

		rows := s.Rows[j]
		vals := s.Vals[j]
		if len(rows) != len(vals) {
			return nil, fmt.Errorf("feature %q has %d rows but %d values", label, len(rows), len(vals))
		}
		for k, r := range rows {
			if int(r) >= len(s.Docs) {
				return nil, fmt.Errorf("feature %q references document position %d of %d", label, r, len(s.Docs))
			}
			if k > 0 && rows[k-1] >= r {
				return nil, fmt.Errorf("feature %q has non-ascending row positions", label)
			}
		}
		cols[j] = column{
			label: label,
			rows:  append([]uint32(nil), rows...),
			vals:  append([]float64(nil), vals...),
		}
		if s.Padding != nil {
			cols[j].padding = s.Padding[j]
		}
	}

	meta := Metadata{
		Concatenator: s.Concatenator,
		Weighting:    s.Weighting,
	}
	if s.Attrs != nil {
		meta.Attrs = make(map[string]any, len(s.Attrs))
		for k, v := range s.Attrs {
			meta.Attrs[k] = v
		}
	}

	return &DFM{
		docs: append([]string(nil), s.Docs...),
		cols: cols,
		meta: meta,
	}, nil
}

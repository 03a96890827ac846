package featmat

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/featmat/dfm"
	"github.com/hupe1980/featmat/dict"
	"github.com/hupe1980/featmat/pattern"
)

// Select returns a new matrix containing the features matched (ModeKeep) or
// not matched (ModeRemove) by the pattern source.
//
// Accepted pattern sources:
//   - nil: keep everything / remove nothing (the length filter still applies)
//   - []string: flat pattern list, matched under the configured match mode
//   - *dict.Dictionary: all entries across categories, multi-token entries
//     joined with the matrix's concatenator
//   - *dfm.DFM: projection onto the reference matrix's exact feature set;
//     forces fixed case-sensitive matching, and under ModeKeep the output
//     vocabulary is identical in membership and order to the reference,
//     with zero-filled padding columns for features absent from m
//
// Any other source shape fails with ErrUnsupportedType. A selection that
// matches nothing is not an error: it yields a valid zero-column matrix.
// Select is a pure function of its inputs; the input matrix is never
// mutated.
func Select(m *dfm.DFM, source any, optFns ...Option) (*dfm.DFM, error) {
	return doSelect(m, source, applyOptions(optFns))
}

// Keep is Select with ModeKeep fixed. Passing an explicit WithMode fails
// with ErrConflictingArgument.
func Keep(m *dfm.DFM, source any, optFns ...Option) (*dfm.DFM, error) {
	o := applyOptions(optFns)
	if o.modeSet {
		return nil, fmt.Errorf("%w: explicit mode passed to Keep", ErrConflictingArgument)
	}
	o.mode = ModeKeep
	return doSelect(m, source, o)
}

// Remove is Select with ModeRemove fixed. Passing an explicit WithMode
// fails with ErrConflictingArgument.
func Remove(m *dfm.DFM, source any, optFns ...Option) (*dfm.DFM, error) {
	o := applyOptions(optFns)
	if o.modeSet {
		return nil, fmt.Errorf("%w: explicit mode passed to Remove", ErrConflictingArgument)
	}
	o.mode = ModeRemove
	return doSelect(m, source, o)
}

// normalizedSource is the pattern source reduced to a flat pattern
// sequence, resolved once so downstream stages never dispatch on shape
// again.
type normalizedSource struct {
	patterns []string
	// exact marks a matrix-derived source: matching is forced to fixed and
	// case-sensitive, and ModeKeep aligns the output to the reference
	// vocabulary.
	exact bool
	// absent marks a missing source: ModeKeep resolves to all positions,
	// ModeRemove to none, and the resolver is skipped entirely.
	absent bool
}

func normalizeSource(source any, concat string) (normalizedSource, error) {
	switch s := source.(type) {
	case nil:
		return normalizedSource{absent: true}, nil
	case []string:
		return normalizedSource{patterns: s, absent: len(s) == 0}, nil
	case *dict.Dictionary:
		if s == nil {
			return normalizedSource{}, &ErrUnsupportedType{Value: source}
		}
		p := s.Flatten(concat)
		return normalizedSource{patterns: p, absent: len(p) == 0}, nil
	case *dfm.DFM:
		if s == nil {
			return normalizedSource{}, &ErrUnsupportedType{Value: source}
		}
		return normalizedSource{patterns: s.FeatNames(), exact: true}, nil
	default:
		return normalizedSource{}, &ErrUnsupportedType{Value: source}
	}
}

func doSelect(m *dfm.DFM, source any, o options) (out *dfm.DFM, err error) {
	start := time.Now()
	matchedPatterns := 0
	defer func() {
		kept := 0
		if out != nil {
			kept = out.NFeat()
		}
		o.metricsCollector.RecordSelect(matchedPatterns, kept, time.Since(start), err)
	}()

	if m == nil {
		return nil, &ErrUnsupportedType{Value: m}
	}

	src, err := normalizeSource(source, m.Concatenator())
	if err != nil {
		return nil, err
	}

	matchMode, caseInsensitive := o.matchMode, o.caseInsensitive
	if src.exact {
		// An exact match is the only valid interpretation of "match this
		// matrix's features".
		matchMode, caseInsensitive = MatchFixed, false
	}

	vocab := m.FeatNames()

	var matched *roaring.Bitmap
	if src.absent {
		matched = roaring.New()
		if o.mode == ModeKeep {
			matched.AddRange(0, uint64(len(vocab)))
		}
	} else {
		res, rerr := pattern.Resolve(src.patterns, vocab, matchMode, caseInsensitive, o.parallelism)
		if rerr != nil {
			err = translateError(rerr)
			return nil, err
		}
		matched = res.Positions
		matchedPatterns = res.MatchedPatterns
	}

	kept := matched
	if o.mode == ModeRemove {
		all := roaring.New()
		all.AddRange(0, uint64(len(vocab)))
		all.AndNot(matched)
		kept = all
	}

	projection := src.exact && o.mode == ModeKeep

	// The length filter narrows the pattern result. It is skipped entirely
	// in projection mode and never drops padding columns.
	if !projection {
		kept = filterByLength(m, vocab, kept, o.minLen, o.maxLen)
	}

	positions := make([]int, 0, kept.GetCardinality())
	it := kept.Iterator()
	for it.HasNext() {
		positions = append(positions, int(it.Next()))
	}

	out, err = m.SliceColumns(positions)
	if err != nil {
		return nil, err
	}

	if projection {
		dropped := m.NFeat() - out.NFeat()
		out, err = alignTo(out, src.patterns, dropped, o)
		if err != nil {
			return nil, err
		}
	}

	if o.verbose {
		o.logger.LogSelect(o.mode, matchedPatterns, m.NFeat(), out.NFeat(), nil)
	}
	return out, nil
}

// filterByLength keeps only positions whose feature label length in
// characters lies within [minLen, maxLen]. maxLen 0 means unbounded.
// Padding columns pass unconditionally.
func filterByLength(m *dfm.DFM, vocab []string, kept *roaring.Bitmap, minLen, maxLen int) *roaring.Bitmap {
	if minLen <= 0 && maxLen <= 0 {
		return kept
	}
	filtered := roaring.New()
	it := kept.Iterator()
	for it.HasNext() {
		j := it.Next()
		if m.IsPadding(int(j)) {
			filtered.Add(j)
			continue
		}
		n := utf8.RuneCountInString(vocab[j])
		if n >= minLen && (maxLen <= 0 || n <= maxLen) {
			filtered.Add(j)
		}
	}
	return filtered
}

// alignTo re-expresses out over exactly the reference vocabulary: features
// absent from out are inserted as zero-filled padding columns, and all
// columns are reordered to the reference order.
func alignTo(out *dfm.DFM, ref []string, dropped int, o options) (aligned *dfm.DFM, err error) {
	start := time.Now()
	padded := 0
	defer func() {
		o.metricsCollector.RecordProjection(padded, time.Since(start), err)
	}()

	have := make(map[string]struct{}, out.NFeat())
	for _, f := range out.FeatNames() {
		have[f] = struct{}{}
	}
	missing := make([]string, 0, len(ref)-out.NFeat())
	for _, f := range ref {
		if _, ok := have[f]; !ok {
			missing = append(missing, f)
		}
	}
	padded = len(missing)

	withZero, err := out.InsertZeroColumns(missing)
	if err != nil {
		return nil, err
	}
	aligned, err = withZero.ReorderColumns(ref)
	if err != nil {
		return nil, err
	}

	if o.verbose {
		o.logger.LogProjection(len(ref), padded, dropped, nil)
	}
	return aligned, nil
}

package pattern

import (
	"runtime"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"

	"github.com/hupe1980/featmat/internal/conv"
)

// parallelMinWork is the pattern × vocabulary product below which resolution
// stays single-threaded. Matching is cheap per entry; goroutine fan-out only
// pays off on large workloads.
const parallelMinWork = 1 << 20

// Result is the outcome of resolving a pattern sequence against a
// vocabulary.
type Result struct {
	// Positions holds matched vocabulary positions. Roaring bitmaps iterate
	// in ascending order, which provides the ordering guarantee directly.
	Positions *roaring.Bitmap
	// MatchedPatterns is the number of input patterns that matched at least
	// one vocabulary entry.
	MatchedPatterns int
}

// Resolve matches every pattern against the vocabulary and returns the
// union of matched positions, deduplicated and ascending.
//
// All patterns are compiled eagerly before any matching starts, so an
// ErrInvalidPattern surfaces before work begins. Compilation is cached per
// distinct pattern string within the call. parallelism <= 0 means
// GOMAXPROCS; matching is parallelized across the pattern sequence when the
// workload is large enough, with a deterministic merge of per-worker
// bitmaps.
func Resolve(patterns, vocab []string, mode MatchMode, caseInsensitive bool, parallelism int) (*Result, error) {
	if _, err := conv.IntToUint32(len(vocab)); err != nil {
		return nil, err
	}

	fold := caseInsensitive && mode != MatchRegex
	folder := cases.Fold()

	matchers := make([]matcher, len(patterns))
	cache := make(map[string]matcher, len(patterns))
	for i, p := range patterns {
		if m, ok := cache[p]; ok {
			matchers[i] = m
			continue
		}
		m, err := compile(p, mode, caseInsensitive, folder)
		if err != nil {
			return nil, err
		}
		cache[p] = m
		matchers[i] = m
	}

	entries := vocab
	if fold {
		entries = make([]string, len(vocab))
		for j, e := range vocab {
			entries[j] = folder.String(e)
		}
	}

	workers := parallelism
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(matchers) {
		workers = len(matchers)
	}
	if len(matchers)*len(entries) < parallelMinWork {
		workers = 1
	}

	if workers <= 1 {
		bm := roaring.New()
		matched := 0
		for _, m := range matchers {
			if matchOne(m, entries, bm) {
				matched++
			}
		}
		return &Result{Positions: bm, MatchedPatterns: matched}, nil
	}

	chunks := make([]*Result, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * len(matchers) / workers
		hi := (w + 1) * len(matchers) / workers
		chunk := &Result{Positions: roaring.New()}
		chunks[w] = chunk
		g.Go(func() error {
			for _, m := range matchers[lo:hi] {
				if matchOne(m, entries, chunk.Positions) {
					chunk.MatchedPatterns++
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &Result{Positions: roaring.New()}
	for _, chunk := range chunks {
		out.Positions.Or(chunk.Positions)
		out.MatchedPatterns += chunk.MatchedPatterns
	}
	return out, nil
}

// matchOne matches a single compiled pattern over all entries, adding hits
// to bm. Returns true if anything matched.
func matchOne(m matcher, entries []string, bm *roaring.Bitmap) bool {
	hit := false
	for j, e := range entries {
		if m.match(e) {
			bm.Add(uint32(j))
			hit = true
		}
	}
	return hit
}

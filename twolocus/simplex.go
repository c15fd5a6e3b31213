package twolocus

import (
	"fmt"

	"github.com/grahamgower/moments/internal/lru"
)

// maxCachedIndexes bounds the number of distinct sample-size simplex
// indexes retained at once, the same discipline jackknife.Matrix uses.
const maxCachedIndexes = 64

var indexCache = lru.New[int, *SimplexIndex](maxCachedIndexes)

// SimplexIndex is the bijection between a haplotype-count triple
// (i, j, k) — counts of haplotypes AB, Ab, aB, with the fourth haplotype
// ab's count determined as n-i-j-k — and a flat offset into a TLSpectrum's
// Data slice. Triples are enumerated in lexicographic (i, then j, then k)
// order, matching the row-major convention the rest of the module uses
// for Spectrum.
type SimplexIndex struct {
	n    int
	size int
	// iOffset[i] is the flat offset of the first triple with first
	// coordinate i.
	iOffset []int
}

// Index returns the cached SimplexIndex for sample size n, building it on
// first use.
func Index(n int) (*SimplexIndex, error) {
	if n < 1 {
		return nil, fmt.Errorf("Index: n=%d: %w", n, ErrBadSampleSize)
	}
	if idx, ok := indexCache.Get(n); ok {
		return idx, nil
	}
	idx := buildIndex(n)
	indexCache.Put(n, idx)
	return idx, nil
}

func buildIndex(n int) *SimplexIndex {
	iOffset := make([]int, n+2)
	offset := 0
	for i := 0; i <= n; i++ {
		iOffset[i] = offset
		m := n - i
		offset += (m + 1) * (m + 2) / 2
	}
	iOffset[n+1] = offset
	return &SimplexIndex{n: n, size: offset, iOffset: iOffset}
}

// N returns the sample size this index was built for.
func (s *SimplexIndex) N() int { return s.n }

// Size returns the number of valid (i, j, k) triples, C(n+3, 3).
func (s *SimplexIndex) Size() int { return s.size }

// Flat returns the flat offset for haplotype counts (i, j, k), or an error
// if the triple falls outside the simplex i+j+k<=n.
func (s *SimplexIndex) Flat(i, j, k int) (int, error) {
	if i < 0 || j < 0 || k < 0 || i+j+k > s.n {
		return 0, fmt.Errorf("Flat(%d,%d,%d): %w", i, j, k, ErrOutOfSimplex)
	}
	m := s.n - i
	// within row i, (j, k) ranges over the triangle j+k<=m; rows of that
	// triangle (fixed j) have length m-j+1.
	jRowStart := j*(m+1) - j*(j-1)/2
	return s.iOffset[i] + jRowStart + k, nil
}

// Triple returns the haplotype-count triple at flat offset f, the inverse
// of Flat. It is used by operators and accessors that must iterate every
// simplex state together with its (i, j, k) coordinates.
func (s *SimplexIndex) Triple(f int) (i, j, k int) {
	for i = 0; i <= s.n; i++ {
		if f < s.iOffset[i+1] {
			break
		}
	}
	rem := f - s.iOffset[i]
	m := s.n - i
	for j = 0; j <= m; j++ {
		rowLen := m - j + 1
		if rem < rowLen {
			k = rem
			return
		}
		rem -= rowLen
	}
	return
}

// Each invokes fn once per valid triple, in flat order, passing the flat
// offset and the triple's coordinates.
func (s *SimplexIndex) Each(fn func(f, i, j, k int)) {
	f := 0
	for i := 0; i <= s.n; i++ {
		m := s.n - i
		for j := 0; j <= m; j++ {
			for k := 0; k <= m-j; k++ {
				fn(f, i, j, k)
				f++
			}
		}
	}
}

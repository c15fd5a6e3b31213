package ldstats

import (
	"fmt"
	"math"
)

// LDStats holds the reduced two-locus moment vector for one or more
// populations: Blocks[p] is population p's [D2, Dz, pi2] triple, H[p] is
// its heterozygosity, and Names gives the canonical "STAT_i[_j...]" key
// for every entry in flattened (Blocks..., H) order, e.g. "DD_0_0",
// "Dz_0_0", "pi2_0_0", "H_0_0" for population 0.
type LDStats struct {
	Blocks [][]float64
	H      []float64
	Names  []string
}

// statNames holds the per-population D2/Dz/pi2 key order.
var statNames = [3]string{"DD", "Dz", "pi2"}

// New builds a zero-valued LDStats for npops populations.
func New(npops int) (*LDStats, error) {
	if npops < 1 {
		return nil, fmt.Errorf("New: npops=%d: %w", npops, ErrNoPopulations)
	}
	blocks := make([][]float64, npops)
	names := make([]string, 0, npops*4)
	for p := 0; p < npops; p++ {
		blocks[p] = make([]float64, 3)
		for _, n := range statNames {
			names = append(names, fmt.Sprintf("%s_%d_%d", n, p, p))
		}
	}
	h := make([]float64, npops)
	for p := 0; p < npops; p++ {
		names = append(names, fmt.Sprintf("H_%d_%d", p, p))
	}
	return &LDStats{Blocks: blocks, H: h, Names: names}, nil
}

// NumPops returns the number of population blocks.
func (y *LDStats) NumPops() int { return len(y.Blocks) }

// Get returns the value named by a canonical key, e.g. "DD_0_0".
func (y *LDStats) Get(name string) (float64, error) {
	for i, n := range y.Names {
		if n != name {
			continue
		}
		if i < 3*len(y.Blocks) {
			return y.Blocks[i/3][i%3], nil
		}
		return y.H[i-3*len(y.Blocks)], nil
	}
	return 0, fmt.Errorf("Get(%q): %w", name, ErrUnknownStat)
}

// Clone returns a deep copy of y.
func (y *LDStats) Clone() *LDStats {
	blocks := make([][]float64, len(y.Blocks))
	for p, b := range y.Blocks {
		blocks[p] = append([]float64(nil), b...)
	}
	return &LDStats{
		Blocks: blocks,
		H:      append([]float64(nil), y.H...),
		Names:  append([]string(nil), y.Names...),
	}
}

// Dprime returns population p's sqrt(D2)/sqrt(pi2) ratio, a D'-style
// magnitude: LDStats tracks D2 rather than signed D, and holds no allele
// frequencies from which a Dmax could be formed, so the ratio is taken
// against sqrt(pi2) and is 0 when pi2 <= 0 (mirroring LD/Inference.py's
// residual-reporting convenience, which operates on the same reduced
// moments this package does).
func (y *LDStats) Dprime(p int) (float64, error) {
	if p < 0 || p >= len(y.Blocks) {
		return 0, fmt.Errorf("Dprime: p=%d: %w", p, ErrPopOutOfRange)
	}
	d2 := y.Blocks[p][0]
	pi2 := y.Blocks[p][2]
	if pi2 <= 0 {
		return 0, nil
	}
	return sqrtNonNeg(d2) / sqrtNonNeg(pi2), nil
}

func sqrtNonNeg(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}

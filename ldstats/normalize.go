package ldstats

import "fmt"

// Normalize returns a copy of y with the sigma_D2 normalization applied
// relative to population ref: every population's D2/Dz entries are
// divided by ref's pi2, and every population's H is divided by ref's H,
// the standard transform that makes LD-decay curves comparable across
// runs with different overall drift scales (LD/Inference.py's residual
// reporting applies the same normalization before comparing to data).
func Normalize(y *LDStats, ref int) (*LDStats, error) {
	if ref < 0 || ref >= len(y.Blocks) {
		return nil, fmt.Errorf("Normalize: ref=%d: %w", ref, ErrPopOutOfRange)
	}
	refPi2 := y.Blocks[ref][2]
	refH := y.H[ref]
	if refPi2 == 0 || refH == 0 {
		return nil, fmt.Errorf("Normalize: reference population %d has zero pi2 or H: %w", ref, ErrBadConfig)
	}

	out := y.Clone()
	for p := range out.Blocks {
		out.Blocks[p][0] /= refPi2 // D2
		out.Blocks[p][1] /= refPi2 // Dz
		// pi2 itself is left as a ratio against the same reference,
		// consistent with treating population ref as the normalization
		// anchor (its own pi2 becomes 1 after normalization).
		out.Blocks[p][2] /= refPi2
	}
	for p := range out.H {
		out.H[p] /= refH
	}
	return out, nil
}

package ldstats

import "fmt"

// Split duplicates population popIndex's block and heterozygosity entry
// into a new trailing slot, the data-structure operation a demographic
// split performs on the LD moment vector before the two descendant
// populations' blocks begin diverging under independent drift.
func Split(y *LDStats, popIndex int) (*LDStats, error) {
	if popIndex < 0 || popIndex >= len(y.Blocks) {
		return nil, fmt.Errorf("Split: popIndex=%d: %w", popIndex, ErrPopOutOfRange)
	}
	out := y.Clone()
	out.Blocks = append(out.Blocks, append([]float64(nil), y.Blocks[popIndex]...))
	out.H = append(out.H, y.H[popIndex])

	blockNames := make([]string, 0, len(out.Blocks)*3+len(out.H))
	for p := range out.Blocks {
		for _, n := range statNames {
			blockNames = append(blockNames, fmt.Sprintf("%s_%d_%d", n, p, p))
		}
	}
	for p := range out.H {
		blockNames = append(blockNames, fmt.Sprintf("H_%d_%d", p, p))
	}
	out.Names = blockNames
	return out, nil
}

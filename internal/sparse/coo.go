// Package sparse provides the coordinate-list (COO) sparse representation
// shared by onedim, twodim, and twolocus operator assembly, plus the small
// set of operations (ToDense, Apply, Scale, AddInto) those packages need.
//
// A COO is the natural representation for operators assembled by composing
// a handful of banded factors (jackknife extension, diagonal weighting,
// finite difference): entries are easy to accumulate via a map and cheap to
// apply to a vector without materializing a dense matrix.
package sparse

// Entry is one nonzero (row, col, value) triple of a sparse operator.
type Entry struct {
	Row, Col int
	Val      float64
}

// COO is an unordered list of nonzero entries over an (Rows x Cols) matrix.
// Multiple entries at the same (row, col) are summed by Apply/ToDense.
type COO struct {
	Rows, Cols int
	Entries    []Entry
}

// New constructs an empty COO of the given shape.
func New(rows, cols int) *COO {
	return &COO{Rows: rows, Cols: cols}
}

// Add accumulates val into (row, col), appending a new entry. Accumulation
// is resolved by summation in Apply/ToDense, not at Add time, so repeated
// Add calls at the same coordinate are cheap.
func (c *COO) Add(row, col int, val float64) {
	if val == 0 {
		return
	}
	c.Entries = append(c.Entries, Entry{Row: row, Col: col, Val: val})
}

// Apply computes y = M*x for the operator M represented by c.
func (c *COO) Apply(x []float64) []float64 {
	y := make([]float64, c.Rows)
	for _, e := range c.Entries {
		y[e.Row] += e.Val * x[e.Col]
	}
	return y
}

// ToDense materializes c as a row-major dense matrix, useful for the small
// per-axis systems that twolocus and twodim hand to gonum/mat.
func (c *COO) ToDense() [][]float64 {
	out := make([][]float64, c.Rows)
	for i := range out {
		out[i] = make([]float64, c.Cols)
	}
	for _, e := range c.Entries {
		out[e.Row][e.Col] += e.Val
	}
	return out
}

// Scale multiplies every entry by s and returns a new COO (c is untouched).
func (c *COO) Scale(s float64) *COO {
	out := New(c.Rows, c.Cols)
	out.Entries = make([]Entry, len(c.Entries))
	for i, e := range c.Entries {
		out.Entries[i] = Entry{Row: e.Row, Col: e.Col, Val: e.Val * s}
	}
	return out
}

// AddInto merges other's entries into c in place (c and other must share
// shape); used to sum drift + selection operators before factoring.
func (c *COO) AddInto(other *COO) {
	c.Entries = append(c.Entries, other.Entries...)
}

// Tridiag is the minimal shape integrate needs from a tridiag.System to
// fold it into a COO without onedim/tridiag importing sparse themselves.
type Tridiag struct {
	Sub, Diag, Super []float64
}

// FromTridiag lifts a tridiagonal system (as three arrays) into COO form,
// so drift/mutation (tridiagonal) and selection (banded via jackknife) can
// be summed into one operator ahead of a dense or iterative per-step solve.
func FromTridiag(t Tridiag) *COO {
	n := len(t.Diag)
	out := New(n, n)
	for i := 0; i < n; i++ {
		out.Add(i, i, t.Diag[i])
		if i > 0 {
			out.Add(i, i-1, t.Sub[i])
		}
		if i < n-1 {
			out.Add(i, i+1, t.Super[i])
		}
	}
	return out
}

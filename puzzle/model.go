package puzzle

/*

Sudoku grid representation and constraint propagation

*/

import (
	"math/bits"
)

// allCandidates is the mask with one bit per digit: bit n-1 set
// means digit n is still possible.
const allCandidates = 1<<Side - 1

// A Grid holds one Sudoku puzzle: the clue set it was built
// from, the current assignments, and the derived candidate state
// the propagation engine maintains.  The zero value is not
// usable; construct grids with New or Parse.
//
// Whenever a cell is unassigned, its candidate count equals the
// population count of its candidate mask.  Whenever a cell is
// assigned, both are zero.  The forced queue holds cells whose
// candidate set has shrunk to a single digit; entries are
// appended by eliminate and drained by mark, so the queue is
// always empty between top-level assignments.
type Grid struct {
	original [Cells]uint8  // clues; 0 means blank, fixed while solving
	values   [Cells]uint8  // current assignments; 0 means empty
	cands    [Cells]uint16 // candidate mask per cell
	counts   [Cells]uint8  // popcount of cands, kept for O(1) MRV scans
	queue    [Cells]uint8  // forced cells, FIFO
	qin      int           // queue write cursor
	qout     int           // queue read cursor
	filled   int           // cells with a nonzero value
	tracking bool          // record a decision tree during searches
	tree     *step         // decision tree of the last search, if tracking
}

// New returns an empty grid with difficulty tracking enabled.
func New() *Grid {
	g := &Grid{tracking: true}
	g.Reset()
	return g
}

// Reset reinitializes every piece of state derived from the clue
// set: all cells unassigned with all nine candidates open, the
// forced queue empty, and any recorded decision tree discarded.
// The clue set itself is preserved.  Resetting twice is the same
// as resetting once.
func (g *Grid) Reset() {
	for i := 0; i < Cells; i++ {
		g.values[i] = 0
		g.cands[i] = allCandidates
		g.counts[i] = Side
	}
	g.qin, g.qout = 0, 0
	g.filled = 0
	g.tree = nil
}

// copyInto overwrites t with a snapshot of g.  The decision tree
// is not carried over: a workspace owns whatever tree its own
// search produces.
func (g *Grid) copyInto(t *Grid) {
	t.original = g.original
	t.values = g.values
	t.cands = g.cands
	t.counts = g.counts
	t.queue = g.queue
	t.qin, t.qout = g.qin, g.qout
	t.filled = g.filled
	t.tracking = g.tracking
	t.tree = nil
}

// Copy returns a deep copy of the grid (no shared structure).
func (g *Grid) Copy() *Grid {
	t := &Grid{}
	g.copyInto(t)
	return t
}

// Tracking reports whether searches record a decision tree.
func (g *Grid) Tracking() bool { return g.tracking }

// SetTracking turns decision-tree recording on or off.  Turning
// it off makes searches slightly cheaper and Estimate report
// nothing.
func (g *Grid) SetTracking(on bool) {
	g.tracking = on
	if !on {
		g.tree = nil
	}
}

// Filled returns how many cells currently hold a value.  The
// grid is complete when all 81 do.
func (g *Grid) Filled() int { return g.filled }

/*

Propagation engine

*/

// mark assigns digit n to cell i and propagates the
// consequences: the digit is eliminated from all 20 peers, and
// any cell thereby reduced to a single candidate is queued and
// then assigned in turn.  The queue, not the call stack, carries
// the breadth of that cascade.
//
// Assigning a digit the cell already holds is a no-op.
// Assigning a digit that prior eliminations have ruled out fails
// with a contradiction.  State mutated before a failure is
// retained; callers recover by working on a fresh copy, never by
// undoing.
func (g *Grid) mark(i int, n uint8) error {
	if g.values[i] == n {
		return nil
	}
	if g.cands[i]&(1<<(n-1)) == 0 {
		if g.tracking {
			g.tree = &step{depth: g.filled, outcome: outcomeDead}
		}
		return contradictionError(i, int(n), ForbiddenValueCondition)
	}

	g.values[i] = n
	g.filled++
	g.cands[i] = 0
	g.counts[i] = 0
	for _, p := range peers[i] {
		if err := g.eliminate(p, n); err != nil {
			return err
		}
	}

	// drain the forced queue
	for g.qout < g.qin {
		f := int(g.queue[g.qout])
		g.qout++
		// exactly one bit is set here; take the lowest
		d := uint8(bits.TrailingZeros16(g.cands[f])) + 1
		if err := g.mark(f, d); err != nil {
			return err
		}
	}
	return nil
}

// eliminate removes digit n from cell i's candidates.  Removing
// a digit that is already absent is a no-op.  A cell left with
// no candidates is a contradiction; a cell left with exactly one
// is appended to the forced queue for mark to resolve.
func (g *Grid) eliminate(i int, n uint8) error {
	bit := uint16(1) << (n - 1)
	if g.cands[i]&bit == 0 {
		return nil
	}
	g.cands[i] &^= bit
	g.counts[i]--
	switch g.counts[i] {
	case 0:
		if g.tracking {
			g.tree = &step{depth: g.filled, outcome: outcomeDead}
		}
		return contradictionError(i, int(n), NoCandidatesCondition)
	case 1:
		g.queue[g.qin] = uint8(i)
		g.qin++
	}
	return nil
}

// Start resets the grid and replays its clue set through the
// propagation engine.  The returned error is non-nil exactly
// when the clues themselves are contradictory, before any search
// has begun.
func (g *Grid) Start() error {
	g.Reset()
	for i := 0; i < Cells; i++ {
		if g.original[i] > 0 {
			if err := g.mark(i, g.original[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// Assign marks one cell with one digit, cascading forced
// deductions.  It is the externally supplied counterpart of the
// solver's internal branching, so contradictions are surfaced to
// the caller rather than swallowed.  Out-of-range arguments give
// an argument error and leave the grid untouched.
func (g *Grid) Assign(cell, digit int) error {
	if cell < 0 || cell >= Cells {
		return rangeError("cell", cell, 0, Cells-1)
	}
	if digit < 1 || digit > Side {
		return rangeError("digit", digit, 1, Side)
	}
	return g.mark(cell, uint8(digit))
}

/*

Value access for external rendering and marshalling code

*/

// Values holds one digit per cell in row-major order; 0 means an
// empty cell.
type Values [Cells]int

// Values returns the current cell assignments.
func (g *Grid) Values() Values {
	var vs Values
	for i, v := range g.values {
		vs[i] = int(v)
	}
	return vs
}

// Original returns the clue set the grid was built from.
func (g *Grid) Original() Values {
	var vs Values
	for i, v := range g.original {
		vs[i] = int(v)
	}
	return vs
}

// SetOriginal replaces the clue set and resets the grid to match.
func (g *Grid) SetOriginal(vs Values) error {
	if err := vs.check(); err != nil {
		return err
	}
	for i, v := range vs {
		g.original[i] = uint8(v)
	}
	g.Reset()
	return nil
}

// SetValues overwrites the current assignments directly, without
// propagation: candidate state is untouched.  Meant for external
// marshalling code that treats the grid as plain data.
func (g *Grid) SetValues(vs Values) error {
	if err := vs.check(); err != nil {
		return err
	}
	for i, v := range vs {
		g.values[i] = uint8(v)
	}
	return nil
}

func (vs Values) check() error {
	for _, v := range vs {
		if v < 0 || v > Side {
			return rangeError("value", v, 0, Side)
		}
	}
	return nil
}

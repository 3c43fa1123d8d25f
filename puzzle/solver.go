package puzzle

/*

Sudoku puzzle search

The search is a depth-first enumeration over the candidate space
left after propagation:

1. Replay the clue set through the propagation engine.  If the
clues alone are contradictory, stop: that failure belongs to the
caller, not to the search.

2. If the grid is complete, report it as a solution.

3. Otherwise pick the unassigned cell with the fewest remaining
candidates (minimum remaining values; lowest index breaks ties)
and try each of its candidate digits in ascending order.  Each
try is made on a snapshot of the grid, so a failed branch costs
nothing to abandon: contradictions inside the search are
swallowed, and the next digit is tried on a fresh snapshot.

4. Snapshots live in a workspace arena indexed by fill depth.
Every sibling branch at a depth overwrites the same slot, so a
slot's contents are undefined once control returns past that
depth.  Recursion is bounded by the 81 cells of the grid.

When tracking is on, the search additionally records a decision
tree: one node per search level carrying the fill depth on
entry, a '+' leaf for every completed grid, and a '-' leaf for
every contradicted branch.  Estimate post-processes that tree
into a difficulty score.

*/

// A step is one node of the decision tree.  Leaves carry an
// outcome; interior nodes carry the branches tried below them.
type step struct {
	depth   int
	outcome byte
	kids    []*step
}

// Outcomes for decision-tree leaves.
const (
	outcomeLive byte = '+' // the branch completed the grid
	outcomeDead byte = '-' // the branch hit a contradiction
)

// ManySolutions is what CountSolutions returns when at least two
// solutions exist.
const ManySolutions = 2

// branchCell returns the unassigned cell with the fewest
// remaining candidates, the lowest index winning ties, or -1 if
// every cell is assigned.
func (g *Grid) branchCell() int {
	best, bestCount := -1, Side+1
	for i := 0; i < Cells; i++ {
		if g.values[i] == 0 && int(g.counts[i]) < bestCount {
			best, bestCount = i, int(g.counts[i])
		}
	}
	return best
}

// search explores every completion of g, calling yield once per
// completed grid.  The grid passed to yield is a live workspace:
// take a snapshot, don't retain it.  yield returning false stops
// the whole search; search reports whether the walk ran to
// exhaustion.
//
// Both the full enumerator and the capped uniqueness count ride
// on this one traversal; the cap is just a yield that declines
// to continue.
func (g *Grid) search(ws []Grid, yield func(*Grid) bool) bool {
	if g.filled == Cells {
		if g.tracking {
			g.tree = &step{depth: g.filled, outcome: outcomeLive}
		}
		return yield(g)
	}

	var node *step
	if g.tracking {
		node = &step{depth: g.filled}
		g.tree = node
	}

	t := &ws[g.filled]
	i := g.branchCell()
	for n := uint8(1); n <= Side; n++ {
		if g.cands[i]&(1<<(n-1)) == 0 {
			continue
		}
		g.copyInto(t)
		if err := t.mark(i, n); err != nil {
			// dead branch; the contradiction stays in the search
			if node != nil {
				node.kids = append(node.kids, t.tree)
			}
			continue
		}
		more := t.search(ws, yield)
		if node != nil {
			node.kids = append(node.kids, t.tree)
		}
		if !more {
			return false
		}
	}
	return true
}

// Resolve enumerates every solution of the clue set, in the
// deterministic order fixed by the MRV tie-break and ascending
// digit trial.  The result may be empty (no solution) or hold
// many entries (ambiguous clue set).  The returned error is
// non-nil only when the clues themselves are contradictory;
// contradictions met during branching are part of the search,
// not failures.
func (g *Grid) Resolve() ([]Values, error) {
	return g.ResolveLimit(0)
}

// ResolveLimit is Resolve with a cap on the number of solutions
// collected; 0 means no cap.  The search stops as soon as the
// cap is reached.
func (g *Grid) ResolveLimit(max int) ([]Values, error) {
	if err := g.Start(); err != nil {
		return nil, err
	}
	ws := make([]Grid, Cells)
	var solutions []Values
	g.search(ws, func(s *Grid) bool {
		solutions = append(solutions, s.Values())
		return max == 0 || len(solutions) < max
	})
	return solutions, nil
}

// CountSolutions counts the solutions of the clue set, stopping
// as soon as a second one is found: the result is 0, 1, or
// ManySolutions.  Generation only ever needs "is the count
// exactly one", so the extra solutions are never materialized.
// Tracking is suspended for the duration; a count is not a
// solve.
func (g *Grid) CountSolutions() (int, error) {
	saved := g.tracking
	g.tracking = false
	defer func() { g.tracking = saved }()

	if err := g.Start(); err != nil {
		return 0, err
	}
	ws := make([]Grid, Cells)
	count := 0
	g.search(ws, func(*Grid) bool {
		count++
		return count < ManySolutions
	})
	return count, nil
}

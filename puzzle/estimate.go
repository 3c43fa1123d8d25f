package puzzle

/*

Difficulty estimation

The decision tree recorded by a tracked search is distilled into
two numbers: the total count of cells propagated across every
explored branch path, and the number of branch edges taken.  The
reported score is ln(length/81)+1, so a puzzle solved purely by
propagation scores exactly 1.  This is a heuristic proxy for
human-perceived difficulty; the solver itself never reads it.

*/

import (
	"math"
)

// Estimate reports the difficulty of the last tracked search:
// a scalar score and the number of forks explored.  ok is false
// when tracking was off or no search has run.
func (g *Grid) Estimate() (score float64, forks int, ok bool) {
	if !g.tracking || g.tree == nil {
		return 0, 0, false
	}
	length := treeLength(g.tree, 0)
	return math.Log(float64(length)/float64(Cells)) + 1, treeForks(g.tree), true
}

// treeLength sums each node's fill-depth gain over its parent,
// across the whole tree.
func treeLength(s *step, parent int) int {
	l := s.depth - parent
	for _, k := range s.kids {
		l += treeLength(k, s.depth)
	}
	return l
}

// treeForks counts the branch edges of the tree.
func treeForks(s *step) int {
	f := 0
	for _, k := range s.kids {
		f += treeForks(k) + 1
	}
	return f
}

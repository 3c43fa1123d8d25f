package puzzle

/*

Puzzle generation

Generation runs in two phases.  Phase one builds a complete grid
by walking the cells in a random order and assigning a uniformly
random candidate at each; propagation resolves most of the grid
along the way, and any contradiction throws the whole attempt
away for a fresh one.  Rejection sampling, in other words, with
propagation doing the pruning.  Phase two treats the completed
grid as the clue set and walks the cells in a second random
order, removing each clue whose absence still leaves exactly one
solution.  Each removal trial re-propagates from scratch, since
the candidate state is a function of the clue set alone.  What
remains is a minimal (not necessarily minimum) clue set.

*/

import (
	"math/bits"
	"math/rand"
)

// Generate replaces the grid's clue set with a freshly
// constructed puzzle: a random complete grid reduced to a
// minimal clue set with a unique solution.  The same rnd always
// produces the same puzzle.  There is no iteration cap on the
// construction phase; Sudoku's combinatorics bound it in
// practice.
func (g *Grid) Generate(rnd *rand.Rand) {
	saved := g.tracking
	g.tracking = false
	defer func() { g.tracking = saved }()

	// phase 1: random completions until one survives propagation
	order := rnd.Perm(Cells)
	for {
		g.Reset()
		if g.fillRandom(rnd, order) {
			break
		}
	}

	// phase 2: minimal-clue reduction
	g.original = g.values
	for _, i := range rnd.Perm(Cells) {
		n := g.original[i]
		g.original[i] = 0
		if count, _ := g.CountSolutions(); count > 1 {
			g.original[i] = n
		}
	}

	// leave the grid replayed from its final clue set; the clues
	// are a subset of a valid grid, so this cannot fail
	_ = g.Start()
}

// fillRandom tries to complete the grid by assigning a random
// remaining candidate at each cell of order.  false means the
// attempt hit a contradiction and the grid must be restarted.
func (g *Grid) fillRandom(rnd *rand.Rand, order []int) bool {
	for _, i := range order {
		if g.values[i] != 0 {
			continue
		}
		// pick the m-th set bit of the candidate mask
		mask := g.cands[i]
		for m := rnd.Intn(int(g.counts[i])); m > 0; m-- {
			mask &= mask - 1
		}
		n := uint8(bits.TrailingZeros16(mask)) + 1
		if err := g.mark(i, n); err != nil {
			return false
		}
	}
	return true
}

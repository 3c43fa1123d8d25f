package storage

import (
	"testing"

	"github.com/build-labs-studio/sudoku/puzzle"
)

// twoWayPuzzle has four empty cells holding an interchangeable
// pair of digits, so assignments there cascade to completion.
const twoWayPuzzle = "_78_93456_34_56789569478123345687912687912345912345867421539678753861294896724531"

func startedGrid(t *testing.T) *puzzle.Grid {
	t.Helper()
	g, err := puzzle.Parse(twoWayPuzzle)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := g.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return g
}

func TestSessionAssignAndBack(t *testing.T) {
	r := NewRegistry(10)
	s := r.Create(startedGrid(t))
	if s.Steps() != 1 {
		t.Fatalf("new session has %d steps", s.Steps())
	}

	// assigning cell 0 forces the other three empty cells
	g, err := s.Assign(0, 1)
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	if g.Filled() != puzzle.Cells {
		t.Errorf("assignment cascade filled %d cells", g.Filled())
	}
	if s.Steps() != 2 {
		t.Errorf("session has %d steps after one assignment", s.Steps())
	}

	if !s.Back() {
		t.Fatalf("Back failed with a step to undo")
	}
	if s.Steps() != 1 {
		t.Errorf("session has %d steps after stepping back", s.Steps())
	}
	if v := s.Current().Values()[0]; v != 0 {
		t.Errorf("cell 0 holds %d after stepping back", v)
	}
	if s.Back() {
		t.Errorf("Back succeeded at the first step")
	}
}

func TestSessionAssignContradiction(t *testing.T) {
	r := NewRegistry(10)
	s := r.Create(startedGrid(t))

	// cell 0 can only hold 1 or 2
	if _, err := s.Assign(0, 9); !puzzle.IsContradiction(err) {
		t.Fatalf("Assign of a forbidden digit returned %v, expected a contradiction", err)
	}
	if s.Steps() != 1 {
		t.Errorf("a contradicted assignment was kept as a step")
	}
	if v := s.Current().Values()[0]; v != 0 {
		t.Errorf("a contradicted assignment leaked into the session: cell 0 holds %d", v)
	}

	if _, err := s.Assign(-1, 5); err == nil {
		t.Errorf("Assign accepted an out-of-range cell")
	}
	if s.Steps() != 1 {
		t.Errorf("a rejected assignment was kept as a step")
	}
}

func TestSessionCurrentIsACopy(t *testing.T) {
	r := NewRegistry(10)
	s := r.Create(startedGrid(t))
	g := s.Current()
	if err := g.Assign(0, 1); err != nil {
		t.Fatalf("Assign on the returned grid failed: %v", err)
	}
	if v := s.Current().Values()[0]; v != 0 {
		t.Errorf("mutating a returned grid changed the session: cell 0 holds %d", v)
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry(10)
	s := r.Create(startedGrid(t))
	if s.ID == "" {
		t.Fatalf("session has no ID")
	}

	got, ok := r.Get(s.ID)
	if !ok || got.ID != s.ID {
		t.Fatalf("Get(%q) = %v, %v", s.ID, got, ok)
	}
	if _, ok := r.Get("no-such-id"); ok {
		t.Errorf("Get found a session that was never created")
	}

	if !r.Delete(s.ID) {
		t.Errorf("Delete missed an existing session")
	}
	if r.Delete(s.ID) {
		t.Errorf("Delete found an already deleted session")
	}
	if r.Len() != 0 {
		t.Errorf("registry holds %d sessions after deletion", r.Len())
	}
}

func TestRegistryEviction(t *testing.T) {
	r := NewRegistry(2)
	first := r.Create(startedGrid(t))
	second := r.Create(startedGrid(t))

	// touch the first so the second is the eviction candidate
	if _, err := first.Assign(0, 1); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}

	third := r.Create(startedGrid(t))
	if r.Len() != 2 {
		t.Fatalf("registry holds %d sessions, expected 2", r.Len())
	}
	if _, ok := r.Get(second.ID); ok {
		t.Errorf("the least recently changed session survived eviction")
	}
	if _, ok := r.Get(first.ID); !ok {
		t.Errorf("a recently changed session was evicted")
	}
	if _, ok := r.Get(third.ID); !ok {
		t.Errorf("the new session is missing")
	}
}

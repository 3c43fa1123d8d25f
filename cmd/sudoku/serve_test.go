package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/build-labs-studio/sudoku/config"
	"github.com/build-labs-studio/sudoku/puzzle"
)

// fourBlankPuzzle leaves an interchangeable pair of digits open
// at cells 0, 3, 9, and 12, so one assignment completes it.
const fourBlankPuzzle = "_78_93456_34_56789569478123345687912687912345912345867421539678753861294896724531"

func newTestServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.Sessions = 4
	cfg.SolveLimit = 10
	return newServer(cfg)
}

func do(t *testing.T, srv *server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func createTestSession(t *testing.T, srv *server) sessionState {
	t.Helper()
	w := do(t, srv, http.MethodPost, "/api/v1/sessions",
		puzzle.GridRequest{Puzzle: fourBlankPuzzle})
	if w.Code != http.StatusCreated {
		t.Fatalf("create session returned %d: %s", w.Code, w.Body)
	}
	var state sessionState
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatalf("bad session response: %v", err)
	}
	return state
}

func TestSessionLifecycle(t *testing.T) {
	srv := newTestServer(t)
	state := createTestSession(t, srv)
	if state.ID == "" || state.Steps != 1 {
		t.Fatalf("fresh session state = %+v", state)
	}
	if state.Filled != 77 {
		t.Errorf("fresh session has %d filled cells, expected 77", state.Filled)
	}

	w := do(t, srv, http.MethodGet, "/api/v1/sessions/"+state.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get session returned %d: %s", w.Code, w.Body)
	}

	// assigning cell 0 forces the remaining three cells
	w = do(t, srv, http.MethodPost, "/api/v1/sessions/"+state.ID+"/assign",
		map[string]int{"cell": 0, "digit": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("assign returned %d: %s", w.Code, w.Body)
	}
	var after sessionState
	if err := json.Unmarshal(w.Body.Bytes(), &after); err != nil {
		t.Fatalf("bad assign response: %v", err)
	}
	if after.Steps != 2 || after.Filled != puzzle.Cells {
		t.Errorf("state after assignment = %+v", after)
	}

	w = do(t, srv, http.MethodPost, "/api/v1/sessions/"+state.ID+"/back", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("back returned %d: %s", w.Code, w.Body)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &after); err != nil {
		t.Fatalf("bad back response: %v", err)
	}
	if after.Steps != 1 || after.Filled != 77 {
		t.Errorf("state after stepping back = %+v", after)
	}

	// stepping back at the first step is refused
	w = do(t, srv, http.MethodPost, "/api/v1/sessions/"+state.ID+"/back", nil)
	if w.Code != http.StatusConflict {
		t.Errorf("back at the first step returned %d, expected 409", w.Code)
	}

	w = do(t, srv, http.MethodDelete, "/api/v1/sessions/"+state.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("delete session returned %d", w.Code)
	}
	w = do(t, srv, http.MethodGet, "/api/v1/sessions/"+state.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get of a deleted session returned %d", w.Code)
	}
}

func TestSessionAssignContradiction(t *testing.T) {
	srv := newTestServer(t)
	state := createTestSession(t, srv)

	// cell 0 can only hold 1 or 2
	w := do(t, srv, http.MethodPost, "/api/v1/sessions/"+state.ID+"/assign",
		map[string]int{"cell": 0, "digit": 9})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("forbidden assignment returned %d: %s", w.Code, w.Body)
	}
	var e puzzle.Error
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("bad error response: %v", err)
	}
	if e.Kind != puzzle.ContradictionKind || e.Message == "" {
		t.Errorf("error response = %+v", e)
	}

	// the session still works afterwards
	w = do(t, srv, http.MethodGet, "/api/v1/sessions/"+state.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get session returned %d", w.Code)
	}
	var after sessionState
	if err := json.Unmarshal(w.Body.Bytes(), &after); err != nil {
		t.Fatalf("bad session response: %v", err)
	}
	if after.Steps != 1 {
		t.Errorf("a contradicted assignment became step %d", after.Steps)
	}
}

func TestSessionErrors(t *testing.T) {
	srv := newTestServer(t)

	// contradictory clue sets are refused on creation
	w := do(t, srv, http.MethodPost, "/api/v1/sessions",
		puzzle.GridRequest{Puzzle: "55" + fourBlankPuzzle[2:]})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("conflicting clues returned %d, expected 422", w.Code)
	}

	w = do(t, srv, http.MethodPost, "/api/v1/sessions",
		puzzle.GridRequest{Puzzle: "short"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed puzzle returned %d, expected 400", w.Code)
	}

	for _, path := range []string{
		"/api/v1/sessions/no-such-id",
		"/api/v1/sessions/no-such-id/assign",
		"/api/v1/sessions/no-such-id/back",
	} {
		method := http.MethodPost
		if path == "/api/v1/sessions/no-such-id" {
			method = http.MethodGet
		}
		w := do(t, srv, method, path, map[string]int{"cell": 0, "digit": 1})
		if w.Code != http.StatusNotFound {
			t.Errorf("%s %s returned %d, expected 404", method, path, w.Code)
		}
	}
}

func TestSessionCapacity(t *testing.T) {
	srv := newTestServer(t)
	var ids []string
	for i := 0; i < 5; i++ {
		ids = append(ids, createTestSession(t, srv).ID)
	}
	if n := srv.sessions.Len(); n != 4 {
		t.Fatalf("registry holds %d sessions, expected 4", n)
	}
	// the oldest untouched session was evicted
	w := do(t, srv, http.MethodGet, "/api/v1/sessions/"+ids[0], nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("the oldest session survived eviction: %d", w.Code)
	}
	for _, id := range ids[1:] {
		w := do(t, srv, http.MethodGet, "/api/v1/sessions/"+id, nil)
		if w.Code != http.StatusOK {
			t.Errorf("session %s missing after eviction: %d", id, w.Code)
		}
	}
}

func TestSolveEndpoint(t *testing.T) {
	srv := newTestServer(t)
	w := do(t, srv, http.MethodPost, "/api/v1/solve",
		puzzle.SolveRequest{GridRequest: puzzle.GridRequest{Puzzle: fourBlankPuzzle}})
	if w.Code != http.StatusOK {
		t.Fatalf("solve returned %d: %s", w.Code, w.Body)
	}
	var resp puzzle.SolveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad solve response: %v", err)
	}
	if resp.Count != 2 {
		t.Errorf("solve reported %d solutions, expected 2", resp.Count)
	}
}

func TestRenderFunc(t *testing.T) {
	for _, format := range []string{"string", "console", "html"} {
		if _, err := renderFunc(format); err != nil {
			t.Errorf("renderFunc(%q) failed: %v", format, err)
		}
	}
	if _, err := renderFunc("latex"); err == nil {
		t.Errorf("renderFunc accepted an unknown format")
	}
}

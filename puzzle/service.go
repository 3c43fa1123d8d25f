// sudoku - a Sudoku solving, generating, and serving toolkit.
// Copyright (C) 2025-2026 Build Labs Studio.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

package puzzle

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

/*

HTTP handlers for solving and generating puzzles.  These cover
the stateless half of the web surface; session handling lives
with the server that owns the session registry.

*/

// A GridRequest names a puzzle either by its linear string form
// or as nine rows of nine ints.  The string wins when both are
// present.
type GridRequest struct {
	Puzzle string  `json:"puzzle,omitempty"`
	Rows   [][]int `json:"rows,omitempty"`
}

// Grid builds the requested grid, or explains why it can't.
func (r GridRequest) Grid() (*Grid, error) {
	if r.Puzzle != "" {
		return Parse(r.Puzzle)
	}
	if r.Rows == nil {
		return nil, Error{
			Kind:      ArgumentKind,
			Condition: GeneralCondition,
			Values:    ErrorData{"either puzzle or rows is required"},
		}
	}
	vs, err := ValuesFromRows(r.Rows)
	if err != nil {
		return nil, err
	}
	g := New()
	if err := g.SetOriginal(vs); err != nil {
		return nil, err
	}
	return g, nil
}

// A SolveRequest asks for the solutions of one puzzle.
type SolveRequest struct {
	GridRequest
}

// A DifficultyReport carries the estimator's output.
type DifficultyReport struct {
	Score float64 `json:"score"`
	Forks int     `json:"forks"`
}

// A SolveResponse reports every solution found, each as nine
// rows of nine digits.  Truncated is set when the service's
// solution cap cut the enumeration short.
type SolveResponse struct {
	Count      int               `json:"count"`
	Truncated  bool              `json:"truncated,omitempty"`
	Solutions  [][][]int         `json:"solutions"`
	Difficulty *DifficultyReport `json:"difficulty,omitempty"`
}

// A GenerateRequest optionally pins the generator seed, for
// reproducible puzzles.
type GenerateRequest struct {
	Seed *int64 `json:"seed,omitempty"`
}

// A GenerateResponse carries a fresh puzzle in both textual
// forms, the seed that produced it, and its difficulty.
type GenerateResponse struct {
	Puzzle     string            `json:"puzzle"`
	Rows       [][]int           `json:"rows"`
	Seed       int64             `json:"seed"`
	Clues      int               `json:"clues"`
	Difficulty *DifficultyReport `json:"difficulty,omitempty"`
}

// A Service answers puzzle solving and generation requests.
type Service struct {
	// Limit caps the solutions returned per solve; 0 means no
	// cap.  An uncapped service will happily enumerate the
	// 6.67e21 completions of an empty grid, so set one.
	Limit int
}

// Solve is a POST handler reading a SolveRequest and answering
// with a SolveResponse.  Malformed puzzles get a 400; a
// contradictory clue set gets a 422.
func (s *Service) Solve(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		WriteError(c, Error{
			Kind:      FormatKind,
			Condition: GeneralCondition,
			Values:    ErrorData{err.Error()},
		})
		return
	}
	g, err := req.Grid()
	if err != nil {
		WriteError(c, err)
		return
	}
	solutions, err := g.ResolveLimit(s.Limit)
	if err != nil {
		WriteError(c, err)
		return
	}
	resp := SolveResponse{
		Count:     len(solutions),
		Truncated: s.Limit > 0 && len(solutions) == s.Limit,
		Solutions: make([][][]int, 0, len(solutions)),
	}
	for _, sol := range solutions {
		resp.Solutions = append(resp.Solutions, sol.Rows())
	}
	if score, forks, ok := g.Estimate(); ok {
		resp.Difficulty = &DifficultyReport{Score: score, Forks: forks}
	}
	log.Debug().Int("count", resp.Count).Msg("solved puzzle")
	c.JSON(http.StatusOK, resp)
}

// Generate is a POST handler producing a fresh minimal puzzle.
// The request body may be empty; a seed makes the result
// reproducible.
func (s *Service) Generate(c *gin.Context) {
	var req GenerateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			WriteError(c, Error{
				Kind:      FormatKind,
				Condition: GeneralCondition,
				Values:    ErrorData{err.Error()},
			})
			return
		}
	}
	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	g := New()
	start := time.Now()
	g.Generate(rand.New(rand.NewSource(seed)))
	clues := 0
	for _, v := range g.Original() {
		if v != 0 {
			clues++
		}
	}
	resp := GenerateResponse{
		Puzzle: g.String(),
		Rows:   g.Original().Rows(),
		Seed:   seed,
		Clues:  clues,
	}
	// the estimator needs a tracked solve of the finished puzzle
	if _, err := g.Resolve(); err == nil {
		if score, forks, ok := g.Estimate(); ok {
			resp.Difficulty = &DifficultyReport{Score: score, Forks: forks}
		}
	}
	log.Debug().
		Int64("seed", seed).
		Int("clues", clues).
		Dur("took", time.Since(start)).
		Msg("generated puzzle")
	c.JSON(http.StatusOK, resp)
}

// WriteError sends err as a JSON response with a status suiting
// its kind: 400 for malformed input and bad arguments, 422 for
// contradictory puzzles, 500 for everything else.
func WriteError(c *gin.Context, err error) {
	e, ok := err.(Error)
	if !ok {
		e = Error{
			Kind:      InternalKind,
			Condition: GeneralCondition,
			Values:    ErrorData{err.Error()},
		}
	}
	e.Message = e.Error() // verbalize for the client
	status := http.StatusInternalServerError
	switch e.Kind {
	case FormatKind, ArgumentKind:
		status = http.StatusBadRequest
	case ContradictionKind:
		status = http.StatusUnprocessableEntity
	}
	log.Err(e).Int("status", status).Msg("request failed")
	c.JSON(status, e)
}

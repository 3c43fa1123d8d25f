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

// Package storage keeps interactive solving sessions in memory.
// A session is a named stack of grid states: each accepted
// assignment pushes a new state, and stepping back pops one.
package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/build-labs-studio/sudoku/puzzle"
)

// A Session is one player's progress on one puzzle.  The first
// step is the puzzle as given; later steps each add one
// assignment.  Sessions are safe for concurrent use.
type Session struct {
	ID      string
	Created time.Time

	mu    sync.Mutex
	saved time.Time
	steps []*puzzle.Grid
}

// Current returns a copy of the latest grid state.
func (s *Session) Current() *puzzle.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps[len(s.steps)-1].Copy()
}

// Steps returns how many states the session holds.  It is
// always at least 1.
func (s *Session) Steps() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.steps)
}

// Saved returns when the session last changed.
func (s *Session) Saved() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved
}

// Assign tries the given digit in the given cell on the current
// state.  On success the new state is pushed and returned; a
// contradiction or bad argument leaves the session unchanged.
func (s *Session) Assign(cell, digit int) (*puzzle.Grid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.steps[len(s.steps)-1].Copy()
	if err := next.Assign(cell, digit); err != nil {
		return nil, err
	}
	s.steps = append(s.steps, next)
	s.saved = time.Now()
	return next.Copy(), nil
}

// Back undoes the latest assignment.  It reports false when the
// session is already at the puzzle as given.
func (s *Session) Back() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.steps) == 1 {
		return false
	}
	s.steps = s.steps[:len(s.steps)-1]
	s.saved = time.Now()
	return true
}

// A Registry holds live sessions, keyed by ID.  When it is
// full, creating a session evicts the least recently changed
// one.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	capacity int
}

// NewRegistry returns a registry holding at most capacity
// sessions.  A non-positive capacity means unbounded.
func NewRegistry(capacity int) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		capacity: capacity,
	}
}

// Create starts a session on the given grid and returns it.
// The registry keeps its own copy of the grid.
func (r *Registry) Create(g *puzzle.Grid) *Session {
	now := time.Now()
	s := &Session{
		ID:      uuid.NewString(),
		Created: now,
		saved:   now,
		steps:   []*puzzle.Grid{g.Copy()},
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.capacity > 0 && len(r.sessions) >= r.capacity {
		r.evictOldest()
	}
	r.sessions[s.ID] = s
	return s
}

// Get returns the session with the given ID, if it exists.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Delete removes the session with the given ID.  It reports
// whether the session existed.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	return ok
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// evictOldest drops the least recently changed session.  The
// caller must hold the write lock.
func (r *Registry) evictOldest() {
	var oldest *Session
	for _, s := range r.sessions {
		if oldest == nil || s.Saved().Before(oldest.Saved()) {
			oldest = s
		}
	}
	if oldest != nil {
		delete(r.sessions, oldest.ID)
	}
}

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

package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/build-labs-studio/sudoku/config"
	"github.com/build-labs-studio/sudoku/puzzle"
	"github.com/build-labs-studio/sudoku/storage"
)

var serveConfig string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the puzzle web service",
	Long: `Serve runs an HTTP service exposing solving, generation, and
interactive solving sessions under /api/v1.  Settings come from
a YAML file named by --config or the SUDOKU_CONFIG environment
variable; SUDOKU_ADDR overrides the listen address.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "",
		"path to the YAML configuration file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	path := serveConfig
	if path == "" {
		path = os.Getenv("SUDOKU_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && !verbose {
		zerolog.SetGlobalLevel(level)
	}
	gin.SetMode(cfg.Mode)

	srv := newServer(cfg)
	log.Info().Str("addr", cfg.Addr).Msg("listening")
	return srv.router.Run(cfg.Addr)
}

// A server ties the HTTP routes to the session registry and the
// puzzle service.
type server struct {
	router   *gin.Engine
	sessions *storage.Registry
	svc      *puzzle.Service
}

func newServer(cfg config.Config) *server {
	srv := &server{
		router:   gin.New(),
		sessions: storage.NewRegistry(cfg.Sessions),
		svc:      &puzzle.Service{Limit: cfg.SolveLimit},
	}
	srv.router.Use(gin.Recovery())

	v1 := srv.router.Group("/api/v1")
	v1.POST("/solve", srv.svc.Solve)
	v1.POST("/generate", srv.svc.Generate)
	v1.POST("/sessions", srv.createSession)
	v1.GET("/sessions/:id", srv.getSession)
	v1.DELETE("/sessions/:id", srv.deleteSession)
	v1.POST("/sessions/:id/assign", srv.assignSession)
	v1.POST("/sessions/:id/back", srv.backSession)
	return srv
}

// A sessionState is the client's view of a session after any
// operation on it.
type sessionState struct {
	ID      string    `json:"id"`
	Created time.Time `json:"created"`
	Steps   int       `json:"steps"`
	Puzzle  string    `json:"puzzle"`
	Rows    [][]int   `json:"rows"`
	Filled  int       `json:"filled"`
}

func stateOf(s *storage.Session) sessionState {
	g := s.Current()
	return sessionState{
		ID:      s.ID,
		Created: s.Created,
		Steps:   s.Steps(),
		Puzzle:  g.Values().String(),
		Rows:    g.Values().Rows(),
		Filled:  g.Filled(),
	}
}

func (srv *server) createSession(c *gin.Context) {
	var req puzzle.GridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		puzzle.WriteError(c, puzzle.Error{
			Kind:      puzzle.FormatKind,
			Condition: puzzle.GeneralCondition,
			Values:    puzzle.ErrorData{err.Error()},
		})
		return
	}
	g, err := req.Grid()
	if err != nil {
		puzzle.WriteError(c, err)
		return
	}
	// apply the clues so the first step shows the board as given
	if err := g.Start(); err != nil {
		puzzle.WriteError(c, err)
		return
	}
	s := srv.sessions.Create(g)
	log.Info().Str("session", s.ID).Msg("session created")
	c.JSON(http.StatusCreated, stateOf(s))
}

func (srv *server) getSession(c *gin.Context) {
	s, ok := srv.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "no such session"})
		return
	}
	c.JSON(http.StatusOK, stateOf(s))
}

func (srv *server) deleteSession(c *gin.Context) {
	if !srv.sessions.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"message": "no such session"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (srv *server) assignSession(c *gin.Context) {
	s, ok := srv.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "no such session"})
		return
	}
	var req struct {
		Cell  int `json:"cell"`
		Digit int `json:"digit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		puzzle.WriteError(c, puzzle.Error{
			Kind:      puzzle.FormatKind,
			Condition: puzzle.GeneralCondition,
			Values:    puzzle.ErrorData{err.Error()},
		})
		return
	}
	if _, err := s.Assign(req.Cell, req.Digit); err != nil {
		puzzle.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateOf(s))
}

func (srv *server) backSession(c *gin.Context) {
	s, ok := srv.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "no such session"})
		return
	}
	if !s.Back() {
		c.JSON(http.StatusConflict, gin.H{"message": "already at the first step"})
		return
	}
	c.JSON(http.StatusOK, stateOf(s))
}

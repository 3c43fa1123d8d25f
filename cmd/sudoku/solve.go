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
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/build-labs-studio/sudoku/puzzle"
)

var (
	solveFile   string
	solveFormat string
	solveLimit  int
)

var solveCmd = &cobra.Command{
	Use:   "solve [puzzle]",
	Short: "Solve a puzzle and report its difficulty",
	Long: `Solve reads one puzzle and prints every solution.  The puzzle
is 81 cells in row-major order; digits are clues and any of
'_', '-', '.', '0', or ' ' marks an empty cell.  Newlines may
separate the rows.  The puzzle comes from the argument, from a
file with --file, or from standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "",
		"read the puzzle from this file")
	solveCmd.Flags().StringVar(&solveFormat, "format", "console",
		"output format: string, console, or html")
	solveCmd.Flags().IntVar(&solveLimit, "limit", 10,
		"stop after this many solutions (0 for all)")
	rootCmd.AddCommand(solveCmd)
}

// readProblem finds the puzzle text among the argument, the
// --file flag, and standard input.
func readProblem(args []string) (string, error) {
	switch {
	case len(args) == 1 && solveFile != "":
		return "", fmt.Errorf("give a puzzle argument or --file, not both")
	case len(args) == 1:
		return args[0], nil
	case solveFile != "":
		data, err := os.ReadFile(solveFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

// renderFunc maps a format name to a Values renderer.
func renderFunc(format string) (func(puzzle.Values) string, error) {
	switch format {
	case "string":
		return puzzle.Values.String, nil
	case "console":
		return puzzle.Values.Console, nil
	case "html":
		return puzzle.Values.HTML, nil
	}
	return nil, fmt.Errorf("unknown format %q: want string, console, or html", format)
}

func runSolve(cmd *cobra.Command, args []string) error {
	render, err := renderFunc(solveFormat)
	if err != nil {
		return err
	}
	problem, err := readProblem(args)
	if err != nil {
		return err
	}
	g, err := puzzle.Parse(problem)
	if err != nil {
		return err
	}
	solutions, err := g.ResolveLimit(solveLimit)
	if err != nil {
		return err
	}
	switch len(solutions) {
	case 0:
		return fmt.Errorf("the puzzle has no solution")
	case 1:
		log.Debug().Msg("solution is unique")
	default:
		fmt.Printf("found %d solutions", len(solutions))
		if solveLimit > 0 && len(solutions) == solveLimit {
			fmt.Print(" (limit reached)")
		}
		fmt.Println()
	}
	for _, sol := range solutions {
		fmt.Println(render(sol))
	}
	if score, forks, ok := g.Estimate(); ok {
		fmt.Printf("difficulty %.2f, %d forks\n", score, forks)
	}
	return nil
}

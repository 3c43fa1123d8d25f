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
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/build-labs-studio/sudoku/puzzle"
)

var (
	genSeed   int64
	genCount  int
	genFormat string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate fresh minimal puzzles",
	Long: `Generate produces puzzles with a unique solution where removing
any clue would make the solution ambiguous.  Give a seed to get
the same puzzles again.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0,
		"random seed (0 means pick one)")
	generateCmd.Flags().IntVarP(&genCount, "count", "n", 1,
		"how many puzzles to generate")
	generateCmd.Flags().StringVar(&genFormat, "format", "console",
		"output format: string, console, or html")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	render, err := renderFunc(genFormat)
	if err != nil {
		return err
	}
	if genCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", genCount)
	}
	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug().Int64("seed", seed).Int("count", genCount).Msg("generating")
	rnd := rand.New(rand.NewSource(seed))

	for n := 0; n < genCount; n++ {
		g := puzzle.New()
		start := time.Now()
		g.Generate(rnd)
		clues := 0
		for _, v := range g.Original() {
			if v != 0 {
				clues++
			}
		}
		log.Debug().
			Int("clues", clues).
			Dur("took", time.Since(start)).
			Msg("generated puzzle")
		fmt.Println(render(g.Original()))
		if _, err := g.Resolve(); err == nil {
			if score, forks, ok := g.Estimate(); ok {
				fmt.Printf("%d clues, difficulty %.2f, %d forks\n", clues, score, forks)
			}
		}
	}
	fmt.Printf("seed %d\n", seed)
	return nil
}

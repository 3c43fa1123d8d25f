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
	"testing"
)

func TestCellIndexing(t *testing.T) {
	inputs := []int{0, 8, 9, 40, 44, 72, 80}
	rows := []int{0, 0, 1, 4, 4, 8, 8}
	cols := []int{0, 8, 0, 4, 8, 0, 8}
	boxes := []int{0, 2, 0, 4, 5, 6, 8}
	for i, c := range inputs {
		if r := rowOf(c); r != rows[i] {
			t.Errorf("rowOf(%d) = %d but expected %d", c, r, rows[i])
		}
		if cl := colOf(c); cl != cols[i] {
			t.Errorf("colOf(%d) = %d but expected %d", c, cl, cols[i])
		}
		if b := boxOf(c); b != boxes[i] {
			t.Errorf("boxOf(%d) = %d but expected %d", c, b, boxes[i])
		}
	}
}

func TestPeersDistinct(t *testing.T) {
	for i := 0; i < Cells; i++ {
		seen := make(map[int]bool, peerCount)
		for _, p := range peers[i] {
			if p == i {
				t.Errorf("cell %d is its own peer", i)
			}
			if p < 0 || p >= Cells {
				t.Errorf("cell %d has out-of-range peer %d", i, p)
			}
			if seen[p] {
				t.Errorf("cell %d has duplicate peer %d", i, p)
			}
			seen[p] = true
		}
		if len(seen) != peerCount {
			t.Errorf("cell %d has %d distinct peers, expected %d", i, len(seen), peerCount)
		}
	}
}

func TestPeersShareUnit(t *testing.T) {
	for i := 0; i < Cells; i++ {
		for _, p := range peers[i] {
			if rowOf(p) != rowOf(i) && colOf(p) != colOf(i) && boxOf(p) != boxOf(i) {
				t.Errorf("cells %d and %d are peers but share no row, column, or box", i, p)
			}
		}
	}
}

func TestPeersSymmetric(t *testing.T) {
	for i := 0; i < Cells; i++ {
		for _, p := range peers[i] {
			found := false
			for _, q := range peers[p] {
				if q == i {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("cell %d peers cell %d but not the reverse", i, p)
			}
		}
	}
}

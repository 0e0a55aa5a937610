// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package peel builds the sparse peeling matrix and runs the opportunistic
// and greedy peeling solvers (spec sections 4.6-4.8): rows and columns that
// can be solved by repeated substitution are removed from the graph, leaving
// only the columns that must go to Gaussian elimination.
package peel

import (
	"github.com/pkg/errors"

	"github.com/xtaci/wirehair/internal/rowgen"
)

// RefListMax bounds the incidence list kept per column; exceeding it during
// row insertion is a bad-seed failure (spec section 5, CAT_REF_LIST_MAX).
// Must track the root package's RefListMax.
const RefListMax = 64

// noColumn is the "no column" sentinel, playing the role of LIST_TERM.
const noColumn = ^uint16(0)

// ErrRefListFull is returned when a column's incidence list would exceed
// RefListMax; callers treat this as a bad peel seed.
var ErrRefListFull = errors.New("peel: column reference list exceeded RefListMax")

type columnMark uint8

const (
	todo columnMark = iota
	peeled
	deferred
)

// Column is one peeling-matrix column's solver state.
type Column struct {
	Mark    columnMark
	Refs    []uint32 // every row slot referencing this column, whatever its Mark
	W2Refs  uint16   // weight-2 row references, used by greedy selection
	PeelRow uint32   // row slot that solves this column, once Mark == peeled
}

// Peeled reports whether this column was solved during peeling, in which
// case PeelRow names the row slot that solves it. Columns that aren't
// peeled were handed to Gaussian elimination as deferred columns.
func (c Column) Peeled() bool { return c.Mark == peeled }

// Row is one peeling-matrix row's solver state.
type Row struct {
	ID            uint32
	Gen           rowgen.Row
	UnmarkedCount uint16
	Unmarked      [2]uint16
	PeelColumn    uint16 // valid once the row has been peeled
	IsCopied      bool
}

// Graph holds the full peeling-matrix solver state for one codec instance.
type Graph struct {
	N, M       uint16
	BlockPrime uint16
	PeelSeed   uint32

	Columns []Column
	Rows    []*Row

	// PeeledOrder lists row slots in the order they were solved (forward
	// substitution order for section 4.9 step 4 / 4.14).
	PeeledOrder []uint32

	// DeferredRows and DeferredColumns list, in discovery order, the rows
	// and columns handed off to Gaussian elimination.
	DeferredRows    []uint32
	DeferredColumns []uint16
}

// New allocates an empty peeling graph for N peeling columns.
func New(n, m, blockPrime uint16, peelSeed uint32) *Graph {
	return &Graph{
		N:          n,
		M:          m,
		BlockPrime: blockPrime,
		PeelSeed:   peelSeed,
		Columns:    make([]Column, n),
	}
}

// AddRow derives row id's peeling columns and runs opportunistic peeling on
// it (spec section 4.6): a row with zero remaining TODO columns is
// deferred outright, one TODO column is solved immediately, and two are
// remembered for later avalanche. Returns ErrRefListFull if any touched
// column's incidence list overflows.
func (g *Graph) AddRow(id uint32) error {
	slot := uint32(len(g.Rows))
	gen := rowgen.Generate(id, g.PeelSeed, g.N, g.M)
	cols := gen.PeelColumns(g.N, g.BlockPrime)

	row := &Row{ID: id, Gen: gen, PeelColumn: noColumn}

	var unmarked [2]uint16
	var unmarkedCount uint16
	for _, c := range cols {
		col := &g.Columns[c]
		if len(col.Refs) >= RefListMax {
			return ErrRefListFull
		}
		col.Refs = append(col.Refs, slot)
		if col.Mark == todo {
			unmarked[unmarkedCount&1] = c
			unmarkedCount++
		}
	}
	row.UnmarkedCount = unmarkedCount
	g.Rows = append(g.Rows, row)

	switch {
	case unmarkedCount == 0:
		g.DeferredRows = append(g.DeferredRows, slot)
	case unmarkedCount == 1:
		g.peel(slot, row, unmarked[0])
	case unmarkedCount == 2:
		row.Unmarked = unmarked
		g.Columns[unmarked[0]].W2Refs++
		g.Columns[unmarked[1]].W2Refs++
	}
	return nil
}

// peel marks column as solved by row slot, appends it to the solution
// order, and triggers avalanche (spec section 4.7).
func (g *Graph) peel(slot uint32, row *Row, column uint16) {
	col := &g.Columns[column]
	col.Mark = peeled
	row.PeelColumn = column
	row.IsCopied = false

	g.PeeledOrder = append(g.PeeledOrder, slot)

	g.avalanche(column)

	col.PeelRow = slot
}

// avalanche walks column's incidence list and propagates the new solved
// state to every referencing row still waiting (spec section 4.7).
func (g *Graph) avalanche(column uint16) {
	for _, slot := range g.Columns[column].Refs {
		row := g.Rows[slot]
		row.UnmarkedCount--

		switch row.UnmarkedCount {
		case 1:
			other := row.Unmarked[0]
			if other == column {
				other = row.Unmarked[1]
			}
			if g.Columns[other].Mark == todo {
				g.peel(slot, row, other)
			} else {
				g.DeferredRows = append(g.DeferredRows, slot)
			}

		case 2:
			// The stored pair may be stale: regenerate this row's peeling
			// columns to discover which two are still TODO.
			cols := row.Gen.PeelColumns(g.N, g.BlockPrime)
			var unmarked [2]uint16
			var count uint16
			for _, c := range cols {
				if g.Columns[c].Mark == todo {
					if count < 2 {
						unmarked[count] = c
					}
					count++
					g.Columns[c].W2Refs++
				}
			}

			if count <= 1 {
				row.UnmarkedCount = 0
				if count == 1 {
					g.peel(slot, row, unmarked[0])
				} else {
					g.DeferredRows = append(g.DeferredRows, slot)
				}
			} else {
				row.Unmarked = unmarked
			}
		}
	}
}

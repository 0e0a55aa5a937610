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

// Package compress folds a solved peeling graph down into the dense check
// matrix that the Gaussian elimination stage solves (spec section 4.9): every
// deferred peeling column becomes a permanent GE column, every already-peeled
// column is eliminated by folding its defining row into whatever else
// referenced it, and D dense plus H heavy rows are added on top of the
// deferred rows to guarantee the result is invertible.
//
// Values and coefficients are folded in lockstep here rather than in the two
// separate passes (bit-only triangulation, then a later value-initialization
// and back-substitution pass) the reference design uses. Folding a peeled
// row's (coefficients, value) pair into every other row that named its
// column, as each column is peeled, is just an earlier application of the
// same elementary row operation back-substitution would apply later — linear
// systems reach the same unique solution regardless of when a valid row
// operation is carried out, so every row handed to the solver ends up
// touching only deferred and mixing columns, with a correct accumulated
// right-hand side, by the time folding finishes.
package compress

import (
	"github.com/templexxx/xorsimd"

	"github.com/xtaci/wirehair/internal/deck"
	"github.com/xtaci/wirehair/internal/matrix"
	"github.com/xtaci/wirehair/internal/peel"
	"github.com/xtaci/wirehair/internal/prng"
)

// Result is a folded check matrix plus the bookkeeping Recover needs to turn
// a solved matrix back into recovery blocks for peeling columns.
type Result struct {
	Matrix *matrix.Matrix

	ddef     int      // deferred-column count; mixing columns start at this offset
	compress [][]byte // per row slot; only entries for peeled rows are used by Recover
	value    [][]byte
}

// MixingPivot returns the GE pivot row holding mixing column t's solved
// value, once r.Matrix has solved (spec section 4.14).
func (r *Result) MixingPivot(t uint16) int {
	return r.Matrix.PivotRow(r.ddef + int(t))
}

// Build folds graph g into a matrix.Matrix ready for Eliminate. rowBlocks
// holds, for every row slot g knows about, the block content that produced
// it (systematic copy or received redundancy block); it must have one entry
// per row in g.Rows and each entry must be blockBytes long.
//
// dSeed, d and h are the dense-row seed and dense/heavy row counts from the
// derived Params (spec section 4.1); mixPrime is the smallest prime at
// least g.M, used to walk each row's three mixing columns.
func Build(g *peel.Graph, rowBlocks [][]byte, blockBytes int, dSeed uint32, d, h, mixPrime uint16) *Result {
	ddef := len(g.DeferredColumns)
	cols := ddef + int(g.M)

	colIndex := make(map[uint16]int, ddef)
	for i, c := range g.DeferredColumns {
		colIndex[c] = i
	}

	compress := make([][]byte, len(g.Rows))
	value := make([][]byte, len(g.Rows))
	for slot, row := range g.Rows {
		cv := make([]byte, cols)
		mix := row.Gen.MixColumns(g.M, mixPrime)
		for _, t := range mix {
			cv[ddef+int(t)] ^= 1
		}
		for _, c := range row.Gen.PeelColumns(g.N, g.BlockPrime) {
			if idx, ok := colIndex[c]; ok {
				cv[idx] ^= 1
			}
		}
		compress[slot] = cv

		v := make([]byte, blockBytes)
		copy(v, rowBlocks[slot])
		value[slot] = v
	}

	// Fold each peeled column's defining row into every other row that
	// named it, in the order columns were actually peeled — by that point
	// every other peeled column a given row names has already been folded
	// out of it, so the fold below only ever combines fully-reduced rows.
	for _, slot := range g.PeeledOrder {
		row := g.Rows[slot]
		col := &g.Columns[row.PeelColumn]
		for _, other := range col.Refs {
			if other == slot {
				continue
			}
			xorsimd.Bytes(compress[other], compress[other], compress[slot])
			xorsimd.Bytes(value[other], value[other], value[slot])
		}
	}

	m := matrix.New(cols, blockBytes)
	for _, slot := range g.DeferredRows {
		m.AddRow(compress[slot], value[slot])
	}

	addDenseRows(m, g, compress, value, colIndex, dSeed, d, h, blockBytes, ddef)
	return &Result{Matrix: m, ddef: ddef, compress: compress, value: value}
}

// Recover produces the final recovery block for every one of g's N peeling
// columns (spec section 4.14, Substitute), given that r.Matrix has solved.
// Deferred columns read straight off their GE pivot row; peeled columns
// replay the row that peeled them, folding in the now-known deferred and
// mixing values compress[] still names as bits.
func Recover(g *peel.Graph, r *Result, blockBytes int) [][]byte {
	recovery := make([][]byte, g.N)

	for i, c := range g.DeferredColumns {
		pivot := r.Matrix.PivotRow(i)
		recovery[c] = append([]byte(nil), r.Matrix.Value(pivot)...)
	}

	for _, slot := range g.PeeledOrder {
		row := g.Rows[slot]
		v := append([]byte(nil), r.value[slot]...)
		for col, bit := range r.compress[slot] {
			if bit == 0 {
				continue
			}
			pivot := r.Matrix.PivotRow(col)
			xorsimd.Bytes(v, v, r.Matrix.Value(pivot))
		}
		recovery[row.PeelColumn] = v
	}

	return recovery
}

// addDenseRows appends D dense and H heavy rows (spec sections 4.1 and 4.5)
// to m. The dense rows are the shuffle code: a single DSeed-derived PRNG
// stream walks every peeling column once, in D-sized windows, flipping bits
// into a shuffled target row via a twice-reshuffled bit-position deck, so
// each of the D rows ends up a reproducible, roughly-half-weight XOR of
// other rows' (coefficient, value) contributions — never a fresh
// unconstrained variable. The heavy rows are a full GF(256) fill over only
// the trailing HeavyColumns mixing columns, overwritten in their rightmost
// H columns by the identity matrix.
func addDenseRows(m *matrix.Matrix, g *peel.Graph, compress, value [][]byte, colIndex map[uint16]int, dSeed uint32, d, h uint16, blockBytes, ddef int) {
	cols := ddef + int(g.M)

	if d > 0 {
		denseCoef := make([][]byte, d)
		denseVal := make([][]byte, d)
		for i := range denseCoef {
			denseCoef[i] = make([]byte, cols)
			denseVal[i] = make([]byte, blockBytes)
		}

		rv := prng.New(dSeed, dSeed)
		rowsDeck := identityDeck(d)
		bitsDeck := identityDeck(d)

		setCount := (d + 1) / 2
		loopCount := d / 2
		secondLoopCount := loopCount - 1
		if d&1 == 1 {
			secondLoopCount++
		}

		for columnI := uint16(0); columnI < g.N; columnI += d {
			maxX := d
			if g.N-columnI < d {
				maxX = g.N - columnI
			}

			deck.Shuffle(rv, rowsDeck)
			deck.Shuffle(rv, bitsDeck)

			target := rowsDeck[0]
			for i := uint16(0); i < setCount; i++ {
				if bit := bitsDeck[i]; bit < maxX {
					addFold(g, compress, value, colIndex, columnI+bit, denseCoef[target], denseVal[target])
				}
			}

			deck.Shuffle(rv, bitsDeck)
			for i := uint16(0); i < loopCount; i++ {
				target := rowsDeck[i+1]
				if setBit := bitsDeck[i]; setBit < maxX {
					addFold(g, compress, value, colIndex, columnI+setBit, denseCoef[target], denseVal[target])
				}
				if clearBit := bitsDeck[d-1-i]; clearBit < maxX {
					addFold(g, compress, value, colIndex, columnI+clearBit, denseCoef[target], denseVal[target])
				}
			}

			deck.Shuffle(rv, bitsDeck)
			for i := uint16(0); i < secondLoopCount; i++ {
				target := rowsDeck[loopCount+1+i]
				if setBit := bitsDeck[i]; setBit < maxX {
					addFold(g, compress, value, colIndex, columnI+setBit, denseCoef[target], denseVal[target])
				}
				if clearBit := bitsDeck[d-1-i]; clearBit < maxX {
					addFold(g, compress, value, colIndex, columnI+clearBit, denseCoef[target], denseVal[target])
				}
			}
		}

		for i := uint16(0); i < d; i++ {
			m.AddRow(denseCoef[i], denseVal[i])
		}
	}

	if h == 0 {
		return
	}

	heavyColumns := 3 * h
	if heavyColumns > g.M {
		heavyColumns = g.M
	}
	start := ddef + int(g.M) - int(heavyColumns)
	idBase := start + int(heavyColumns) - int(h)

	hv := prng.New(dSeed, dSeed)
	for i := uint16(0); i < h; i++ {
		coef := make([]byte, cols)
		for x := 0; x < int(heavyColumns); x++ {
			coef[start+x] = byte(hv.Next())
		}
		for j := uint16(0); j < h; j++ {
			if i == j {
				coef[idBase+int(j)] = 1
			} else {
				coef[idBase+int(j)] = 0
			}
		}
		m.AddRow(coef, make([]byte, blockBytes))
	}
}

// identityDeck returns the identity permutation {0, ..., n-1}, a deck ready
// for repeated in-place deck.Shuffle calls.
func identityDeck(n uint16) []uint16 {
	d := make([]uint16, n)
	for i := range d {
		d[i] = uint16(i)
	}
	return d
}

// addFold folds peeling column pcol into (coef, val): if pcol was solved by
// peeling, its defining row's full (coefficient, value) pair is XORed in,
// carrying forward a real contribution from received data; if pcol was
// deferred instead, only its GE column bit is set, since a deferred
// column's value is still unknown until elimination assigns it one.
func addFold(g *peel.Graph, compress, value [][]byte, colIndex map[uint16]int, pcol uint16, coef, val []byte) {
	if g.Columns[pcol].Peeled() {
		slot := g.Columns[pcol].PeelRow
		xorsimd.Bytes(coef, coef, compress[slot])
		xorsimd.Bytes(val, val, value[slot])
		return
	}
	if idx, ok := colIndex[pcol]; ok {
		coef[idx] ^= 1
	}
}

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

// Package matrix solves the compressed check matrix that opportunistic and
// greedy peeling hand off (spec sections 4.9-4.14): deferred columns plus
// the dense and heavy mixing columns are eliminated over GF(256) until
// every column has a pivot, at which point each pivot row's accumulated
// value is the final recovery block for that column.
//
// Binary (deferred/dense) rows and GF(256) heavy rows are not kept in
// separate representations here; every row is a GF(256) byte vector, with
// binary rows simply made up of 0/1 entries. Elimination is full
// Gauss-Jordan rather than triangulate-then-window-back-substitute: both
// reach the same unique solution of the same linear system, so every
// functional property the codec promises (recoverability, determinism,
// order independence) holds either way.
package matrix

import (
	"github.com/templexxx/xorsimd"

	"github.com/xtaci/wirehair/gf256"
)

const noRow = -1

// Matrix is the augmented system [coefficients | recovery-block value]
// being eliminated. Columns correspond to the deferred peeling columns
// followed by the M mixing columns (spec section 4.9 step 1); rows are
// appended as deferred rows and dense/heavy rows, and more rows may be
// appended after a failed Eliminate before elimination is resumed.
type Matrix struct {
	cols       int
	blockBytes int

	coef  [][]byte // len(coef) rows, each len cols
	value [][]byte // len(value) rows, each len blockBytes

	pivotOf      []int // pivotOf[col] = row index pivoting col, or noRow
	rowPivotCol  []int // rowPivotCol[row] = col it pivots, or noRow
	nextPivotCol int    // resume point: smallest column without a pivot
}

// New allocates an empty matrix for the given GE column count and block
// size. Rows are added with AddRow as they become available.
func New(cols, blockBytes int) *Matrix {
	pivotOf := make([]int, cols)
	for i := range pivotOf {
		pivotOf[i] = noRow
	}
	return &Matrix{
		cols:       cols,
		blockBytes: blockBytes,
		pivotOf:    pivotOf,
	}
}

// Cols reports the column count.
func (m *Matrix) Cols() int { return m.cols }

// Rows reports the number of rows appended so far.
func (m *Matrix) Rows() int { return len(m.coef) }

// AddRow appends a new row with the given coefficient vector (length must
// equal Cols()) and initial recovery-block value (length must equal the
// block size), returning its row index. Columns an earlier Eliminate
// already pivoted are eliminated from the new row before it is stored.
func (m *Matrix) AddRow(coef, value []byte) int {
	for col := 0; col < m.nextPivotCol; col++ {
		c := coef[col]
		if c == 0 {
			continue
		}
		pivot := m.pivotOf[col]
		if c == 1 {
			xorsimd.Bytes(coef, coef, m.coef[pivot])
			xorsimd.Bytes(value, value, m.value[pivot])
		} else {
			gf256.MulAccumulate(coef, c, m.coef[pivot], m.cols)
			gf256.MulAccumulate(value, c, m.value[pivot], m.blockBytes)
		}
	}
	row := len(m.coef)
	m.coef = append(m.coef, coef)
	m.value = append(m.value, value)
	m.rowPivotCol = append(m.rowPivotCol, noRow)
	return row
}

// Value returns the current recovery-block value for row. Once the column
// it pivots has been solved, this is final.
func (m *Matrix) Value(row int) []byte { return m.value[row] }

// PivotRow returns the row index pivoting col, or -1 if col has no pivot
// yet.
func (m *Matrix) PivotRow(col int) int { return m.pivotOf[col] }

// Eliminate resumes Gauss-Jordan elimination from the first unsolved
// column. It returns true once every column has a pivot; otherwise it
// returns false and the resume point, having eliminated as far as
// possible with the rows currently available (spec sections 4.10 and
// 4.13: a failure here is not fatal, it just means more rows are needed).
func (m *Matrix) Eliminate() (solved bool, resumeCol int) {
	for col := m.nextPivotCol; col < m.cols; col++ {
		pivot := m.findPivotRow(col)
		if pivot == noRow {
			m.nextPivotCol = col
			return false, col
		}

		if pv := m.coef[pivot][col]; pv != 1 {
			inv := gf256.Inv(pv)
			gf256.Scale(m.coef[pivot], inv, m.cols)
			gf256.Scale(m.value[pivot], inv, m.blockBytes)
		}

		for r := range m.coef {
			if r == pivot {
				continue
			}
			coeff := m.coef[r][col]
			if coeff == 0 {
				continue
			}
			if coeff == 1 {
				xorsimd.Bytes(m.coef[r], m.coef[r], m.coef[pivot])
				xorsimd.Bytes(m.value[r], m.value[r], m.value[pivot])
			} else {
				gf256.MulAccumulate(m.coef[r], coeff, m.coef[pivot], m.cols)
				gf256.MulAccumulate(m.value[r], coeff, m.value[pivot], m.blockBytes)
			}
		}

		m.pivotOf[col] = pivot
		m.rowPivotCol[pivot] = col
	}

	m.nextPivotCol = m.cols
	return true, -1
}

// findPivotRow returns the first row without an assigned pivot column
// whose entry at col is non-zero.
func (m *Matrix) findPivotRow(col int) int {
	for r := range m.coef {
		if m.rowPivotCol[r] != noRow {
			continue
		}
		if m.coef[r][col] != 0 {
			return r
		}
	}
	return noRow
}

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

// Package rowgen derives, from an id and a 32-bit seed alone, the five
// generator words that describe one row of the check matrix: its peeling
// weight and the Weyl-step parameters for its peeling and mixing column
// sequences (spec section 4.2). Every row is reproducible from nothing but
// (id, seed, N, M); no state is carried between calls.
package rowgen

import "github.com/xtaci/wirehair/internal/prng"

// Row holds the five generator words spec section 3 stores per row record.
type Row struct {
	Weight uint16
	PeelA  uint16
	PeelX0 uint16
	MixA   uint16
	MixX0  uint16
}

// Generate derives a Row for the given id and peel seed, given the peeling
// column count n and the mixing column count m.
func Generate(id uint32, peelSeed uint32, n, m uint16) Row {
	rv := prng.New(id, peelSeed)

	weight := sampleWeight(rv.Next())
	maxWeight := n / 2
	if weight > maxWeight {
		weight = maxWeight
	}

	r1 := rv.Next()
	peelA := uint16(r1&0xFFFF)%(n-1) + 1
	peelX0 := uint16(r1>>16) % n

	r2 := rv.Next()
	mixA := uint16(r2&0xFFFF)%(m-1) + 1
	mixX0 := uint16(r2>>16) % m

	return Row{
		Weight: weight,
		PeelA:  peelA,
		PeelX0: peelX0,
		MixA:   mixA,
		MixX0:  mixX0,
	}
}

// IterateNext advances the loopless Weyl sampler: a single step of a
// without-replacement draw over {0..b-1}, driven by a step size a modulo a
// prime p >= b.
func IterateNext(x, b, p, a uint16) uint16 {
	x = uint16((uint32(x) + uint32(a)) % uint32(p))
	if x >= b {
		d := p - x
		if a >= d {
			x = a - d
		} else {
			x = uint16((uint32(a)<<16 - uint32(d)) % uint32(a))
		}
	}
	return x
}

// Sequence returns the first count columns of the IterateNext draw starting
// at x0, i.e. x0, x1, ..., x[count-1] with x[k+1] = IterateNext(x[k], b, p, a).
func Sequence(x0, count, b, p, a uint16) []uint16 {
	out := make([]uint16, count)
	x := x0
	for i := uint16(0); i < count; i++ {
		out[i] = x
		x = IterateNext(x, b, p, a)
	}
	return out
}

// PeelColumns returns this row's weight peeling columns given the block
// count n and its derived prime ceiling.
func (r Row) PeelColumns(n, blockPrime uint16) []uint16 {
	return Sequence(r.PeelX0, r.Weight, n, blockPrime, r.PeelA)
}

// MixColumns returns this row's three mixing columns given the mixing
// column count m and its derived prime ceiling.
func (r Row) MixColumns(m, mixPrime uint16) [3]uint16 {
	seq := Sequence(r.MixX0, 3, m, mixPrime, r.MixA)
	return [3]uint16{seq[0], seq[1], seq[2]}
}

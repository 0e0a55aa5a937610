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

// Package prng implements the small two-stream multiply-with-carry
// generator all matrix randomness is derived from (spec section 4.3). Every
// shuffle, dense row, heavy row and row-generator draw in this module goes
// through this type, so two independent implementations of this recurrence
// must agree bit-for-bit to interoperate.
package prng

const (
	constX = 0xfffd21a7
	constY = 0xfffd1361

	// MurmurHash3 finalizer multipliers, used by the seed avalanche below.
	fmixC1 = 0xff51afd7ed558ccd
	fmixC2 = 0xc4ceb9fe1a85ec53

	// seed constants the two streams are XORed with before avalanching.
	seedConstX = 0x9368e53c2f6af274
	seedConstY = 0x586dcd208f7cd3fd
)

// Rand is one instance of the two-stream MWC generator. The low 32 bits of
// each stream hold the current value, the high 32 bits hold the carry.
type Rand struct {
	x, y uint64
}

func rotl32(v uint32, n uint) uint32 {
	return (v << n) | (v >> (32 - n))
}

// New seeds a generator from a pair of 32-bit words (e.g. a row id and a
// peel seed). The seeding follows the MurmurHash3 finalizer mixing
// function applied to each stream independently, then discards one output
// as spec section 4.3 requires.
func New(a, b uint32) *Rand {
	a += b
	b += a

	seedX := seedConstX ^ uint64(a)
	seedY := seedConstY ^ uint64(b)

	seedX *= fmixC1
	seedX ^= seedX >> 33
	seedX *= fmixC2
	seedX ^= seedX >> 33

	seedY *= fmixC1
	seedY ^= seedY >> 33
	seedY *= fmixC2
	seedY ^= seedY >> 33

	r := &Rand{x: seedX, y: seedY}
	r.Next()
	return r
}

// Next returns the next 32-bit output of the generator.
func (r *Rand) Next() uint32 {
	r.x = constX*uint64(uint32(r.x)) + (r.x >> 32)
	r.y = constY*uint64(uint32(r.y)) + (r.y >> 32)
	return rotl32(uint32(r.x), 7) + uint32(r.y)
}

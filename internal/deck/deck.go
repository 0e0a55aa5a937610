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

// Package deck implements the deck shuffle used to build dense rows (spec
// section 4.5): an in-place Fisher-Yates shuffle driven by the shared
// two-stream PRNG, producing a permutation of {0..count-1}.
package deck

import "github.com/xtaci/wirehair/internal/prng"

// Shuffle permutes deck in place using rv.
func Shuffle(rv *prng.Rand, deck []uint16) {
	for i := len(deck) - 1; i > 0; i-- {
		j := int(rv.Next() % uint32(i+1))
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// New builds the identity permutation of {0..count-1} and shuffles it.
func New(rv *prng.Rand, count int) []uint16 {
	d := make([]uint16, count)
	for i := range d {
		d[i] = uint16(i)
	}
	Shuffle(rv, d)
	return d
}

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

package peel

// GreedyPeeling runs after opportunistic peeling stalls (spec section 4.8):
// it repeatedly picks the TODO column maximising (W2Refs, len(Refs))
// lexicographically, defers it, and lets avalanche continue the cascade.
// Typically sqrt(N) + N/150 columns end up deferred this way.
func (g *Graph) GreedyPeeling() {
	for {
		best := noColumn
		var bestW2, bestRowCount uint16

		for c := uint16(0); c < g.N; c++ {
			col := &g.Columns[c]
			if col.Mark != todo {
				continue
			}
			w2 := col.W2Refs
			if w2 < bestW2 {
				continue
			}
			rowCount := uint16(len(col.Refs))
			if w2 > bestW2 || rowCount >= bestRowCount {
				best = c
				bestW2 = w2
				bestRowCount = rowCount
			}
		}

		if best == noColumn {
			return
		}

		g.Columns[best].Mark = deferred
		g.DeferredColumns = append(g.DeferredColumns, best)
		g.avalanche(best)
	}
}

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

// Package wirehair implements a rateless forward error correction code over
// the binary erasure channel: an encoder turns a message of N blocks into an
// unbounded stream of same-size blocks, and a decoder reconstructs the
// original message from any N of them, or a few more when those N do not
// yet determine it, received in any order.
package wirehair

import (
	"github.com/xtaci/wirehair/internal/compress"
	"github.com/xtaci/wirehair/internal/peel"
	"github.com/xtaci/wirehair/internal/rowgen"
)

// recoverySet is the solved recovery[0..N+M) array both Encoder and Decoder
// emit blocks from once their check matrix has inverted (spec section 4.14
// and 4.15): indices [0,N) are peeling columns via compress.Recover, indices
// [N,N+M) are mixing columns read straight off their GE pivot.
type recoverySet struct {
	params Params
	blocks [][]byte // length N+M, blockBytes each
}

// solve folds g (a fully opportunistic/greedy-peeled graph) through
// compress.Build and Eliminate, returning the solved recovery set or
// ErrNeedMoreBlocks if the matrix is still short a row.
func solve(g *peel.Graph, rowBlocks [][]byte, p Params, blockBytes int) (*recoverySet, error) {
	res := compress.Build(g, rowBlocks, blockBytes, p.DSeed, p.D, p.H, p.MixPrime)
	solved, _ := res.Matrix.Eliminate()
	if !solved {
		return nil, ErrNeedMoreBlocks
	}

	peeled := compress.Recover(g, res, blockBytes)

	blocks := make([][]byte, int(p.N)+int(p.M))
	copy(blocks, peeled)
	for t := uint16(0); t < p.M; t++ {
		pivot := res.MixingPivot(t)
		blocks[int(p.N)+int(t)] = res.Matrix.Value(pivot)
	}

	return &recoverySet{params: p, blocks: blocks}, nil
}

// emit derives block id's content from a solved recovery set (spec section
// 4.15): id's own row generator names a set of peeling and mixing columns,
// and the block is their XOR. This is the same formula whether id names a
// redundancy block (id >= N) or a message block the caller never received
// directly.
func (r *recoverySet) emit(id uint32, blockBytes int) []byte {
	gen := rowgen.Generate(id, r.params.PSeed, r.params.N, r.params.M)
	out := make([]byte, blockBytes)

	peelCols := gen.PeelColumns(r.params.N, r.params.BlockPrime)
	for _, c := range peelCols {
		xorInto(out, r.blocks[c])
	}
	mixCols := gen.MixColumns(r.params.M, r.params.MixPrime)
	for _, t := range mixCols {
		xorInto(out, r.blocks[int(r.params.N)+int(t)])
	}
	return out
}

func xorInto(dst, src []byte) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] ^= src[i]
	}
}

// padBlock zero-pads src out to blockBytes, copying at most blockBytes.
func padBlock(src []byte, blockBytes int) []byte {
	b := make([]byte, blockBytes)
	copy(b, src)
	return b
}

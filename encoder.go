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

package wirehair

import (
	"github.com/xtaci/wirehair/internal/peel"
)

// Encoder turns one message into an unbounded stream of same-size blocks
// (spec section 2). The first N blocks it emits are the message itself
// (systematic); every block after that, and every block at or past N
// regardless of when it is asked for, is a recovery block computed from the
// solved check matrix.
type Encoder struct {
	params     Params
	blockBytes int
	input      [][]byte // N zero-padded message blocks
	recovery   *recoverySet
	stats      *Stats
}

// NewEncoder splits message into blockBytes-sized blocks (zero-padding the
// final one), derives check matrix parameters for the resulting block count,
// and solves the matrix immediately (spec section 6, encode_begin +
// EncodeFeed). Stats may be nil.
func NewEncoder(message []byte, blockBytes int, stats *Stats) (*Encoder, error) {
	n, err := BlockCount(len(message), blockBytes)
	if err != nil {
		return nil, err
	}
	params := DeriveParams(n)

	input := make([][]byte, n)
	for i := uint16(0); i < n; i++ {
		start := int(i) * blockBytes
		end := start + blockBytes
		if end > len(message) {
			end = len(message)
		}
		input[i] = padBlock(message[start:end], blockBytes)
	}

	e := &Encoder{params: params, blockBytes: blockBytes, input: input, stats: stats}
	if err := e.buildMatrix(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Encoder) buildMatrix() error {
	g := peel.New(e.params.N, e.params.M, e.params.BlockPrime, e.params.PSeed)
	for id := uint32(0); id < uint32(e.params.N); id++ {
		if err := g.AddRow(id); err != nil {
			e.countSeedFailure()
			return ErrBadPeelSeed
		}
	}
	g.GreedyPeeling()
	e.countDeferred(len(g.DeferredColumns))

	rs, err := solve(g, e.input, e.params, e.blockBytes)
	if err != nil {
		// Every message block is already known, so a matrix that still
		// can't invert means the dense/heavy rows this N derives are bad,
		// not that more data is needed (spec section 6, EncodeFeed).
		e.countSeedFailure()
		return ErrBadDenseSeed
	}
	e.countElimination()
	e.recovery = rs
	return nil
}

// BlockCount reports how many message blocks the encoder produced.
func (e *Encoder) BlockCount() uint16 { return e.params.N }

// Params returns the derived check matrix parameters, which the decoder
// must be given out of band to interoperate (spec section 6).
func (e *Encoder) Params() Params { return e.params }

// Encode returns the content of block id (spec section 4.15, Emit): the
// first BlockCount() ids are a verbatim copy of the message, every id after
// that is a newly derived recovery block, and any id (even one below
// BlockCount()) can be asked for repeatedly or out of order.
func (e *Encoder) Encode(id uint32) []byte {
	e.countWrite()
	if id < uint32(e.params.N) {
		return append([]byte(nil), e.input[id]...)
	}
	return e.recovery.emit(id, e.blockBytes)
}

func (e *Encoder) countWrite() {
	if e.stats != nil {
		e.stats.BlocksWritten.Add(1)
	}
}

func (e *Encoder) countDeferred(n int) {
	if e.stats != nil {
		e.stats.DeferredPeels.Add(uint64(n))
	}
}

func (e *Encoder) countElimination() {
	if e.stats != nil {
		e.stats.GaussianEliminations.Add(1)
	}
}

func (e *Encoder) countSeedFailure() {
	if e.stats != nil {
		e.stats.SeedFailures.Add(1)
	}
}

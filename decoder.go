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

// Decoder reconstructs a message from N, or occasionally a few more, of the
// blocks an Encoder with the same Params would produce, fed in any order
// (spec section 2, 4.13).
type Decoder struct {
	params       Params
	blockBytes   int
	messageBytes int

	g         *peel.Graph
	rowBlocks [][]byte
	received  map[uint32][]byte

	recovery *recoverySet
	stats    *Stats
}

// NewDecoder prepares a decoder for a message of messageBytes split into
// blockBytes-sized pieces under params (spec section 6, decode_begin).
// params must be the same value the encoder derived for this message.
func NewDecoder(params Params, blockBytes, messageBytes int, stats *Stats) *Decoder {
	return &Decoder{
		params:       params,
		blockBytes:   blockBytes,
		messageBytes: messageBytes,
		g:            peel.New(params.N, params.M, params.BlockPrime, params.PSeed),
		received:     make(map[uint32][]byte),
		stats:        stats,
	}
}

// Feed submits one received block (spec section 6, decode_write / Resume).
// It returns nil once the matrix has inverted and Reconstruct is ready,
// ErrNeedMoreBlocks if more distinct blocks are still required, or
// ErrNeedMoreExtra if the decoder has already accepted MaxExtraRows more
// rows than N without solving (a sign the stream's parameters are wrong
// rather than simply short).
func (d *Decoder) Feed(id uint32, block []byte) error {
	if d.recovery != nil {
		return nil
	}
	if _, dup := d.received[id]; dup {
		return ErrNeedMoreBlocks
	}

	b := padBlock(block, d.blockBytes)
	if err := d.g.AddRow(id); err != nil {
		d.countSeedFailure()
		return ErrBadPeelSeed
	}
	d.received[id] = b
	d.rowBlocks = append(d.rowBlocks, b)
	d.countRead()

	if len(d.g.Rows) < int(d.params.N) {
		return ErrNeedMoreBlocks
	}
	if len(d.g.Rows) > int(d.params.N)+MaxExtraRows {
		return ErrNeedMoreExtra
	}

	d.countResume()
	d.g.GreedyPeeling()
	rs, err := solve(d.g, d.rowBlocks, d.params, d.blockBytes)
	if err != nil {
		return ErrNeedMoreBlocks
	}

	d.countElimination()
	d.recovery = rs
	return nil
}

// Ready reports whether Feed has seen enough blocks to reconstruct.
func (d *Decoder) Ready() bool { return d.recovery != nil }

// Reconstruct assembles the original message (spec section 6, decode_read /
// ReconstructOutput): message blocks received directly are copied verbatim,
// every other one is regenerated from the solved recovery set. Returns
// ErrNeedMoreBlocks if Feed has not yet solved the matrix.
func (d *Decoder) Reconstruct() ([]byte, error) {
	if d.recovery == nil {
		return nil, ErrNeedMoreBlocks
	}

	message := make([]byte, d.messageBytes)
	for id := uint32(0); id < uint32(d.params.N); id++ {
		var blk []byte
		if b, ok := d.received[id]; ok {
			blk = b
		} else {
			blk = d.recovery.emit(id, d.blockBytes)
		}

		start := int(id) * d.blockBytes
		if start >= d.messageBytes {
			break
		}
		end := start + d.blockBytes
		if end > d.messageBytes {
			end = d.messageBytes
		}
		copy(message[start:end], blk[:end-start])
	}
	return message, nil
}

func (d *Decoder) countRead() {
	if d.stats != nil {
		d.stats.BlocksRead.Add(1)
	}
}

func (d *Decoder) countResume() {
	if d.stats != nil {
		d.stats.Resumes.Add(1)
	}
}

func (d *Decoder) countElimination() {
	if d.stats != nil {
		d.stats.GaussianEliminations.Add(1)
	}
}

func (d *Decoder) countSeedFailure() {
	if d.stats != nil {
		d.stats.SeedFailures.Add(1)
	}
}

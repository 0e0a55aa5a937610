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

import "math"

// Bounds on the block count N and on decoder/workspace growth (spec section
// 5, "Bounded resources").
const (
	MinN = 2
	MaxN = 64000

	HeavyRows    = 6
	MaxDenseRows = 1024
	MaxExtraRows = 32
	RefListMax   = 64

	weight1Probability = 1.0 / 128
)

// Params is the full set of deterministic matrix parameters derived from a
// block count N (spec section 6, "Parameter selection"). Two codecs given
// the same N always derive the same Params.
type Params struct {
	N uint16 // peeling column count

	PSeed uint32 // seed driving peeling-row generation
	DSeed uint32 // seed driving dense/heavy-row generation

	D uint16 // dense row count
	H uint16 // heavy row count, always HeavyRows
	M uint16 // mixing column count, D+H

	BlockPrime uint16 // smallest prime >= N
	MixPrime   uint16 // smallest prime >= M
}

// BlockCount computes N = ceil(messageBytes / blockBytes) and validates it
// against the codec's supported range. The reference implementation rejects
// an even blockBytes; so does this one.
func BlockCount(messageBytes, blockBytes int) (uint16, error) {
	if messageBytes < 1 || blockBytes < 1 {
		return 0, ErrBadInput
	}
	if blockBytes%2 == 0 {
		return 0, ErrBadInput
	}

	n := (messageBytes + blockBytes - 1) / blockBytes
	if n < MinN {
		return 0, ErrInputTooSmall
	}
	if n > MaxN {
		return 0, ErrInputTooLarge
	}
	return uint16(n), nil
}

// DeriveParams computes the check matrix parameters for a block count N.
// The three N ranges below, and the seed tables they draw from, are
// reproduced bit-exactly from the reference so two implementations of this
// spec interoperate (spec section 6). The reference also exposes two
// process-global seed variables that silently override the table lookup for
// manual testing; production derivation never applies that override.
func DeriveParams(n uint16) Params {
	var d uint16
	var pSeed, dSeed uint32

	switch {
	case n < 256:
		dSeed = uint32(smallDenseSeeds[n])
		if n < 192 {
			pSeed = uint32(smallPeelSeeds[n])
		} else {
			pSeed = uint32(n)
		}

		switch n {
		case 2:
			d = 2
		case 3:
			d = 6
		default:
			d = 8 + isqrt(n)/2 + n/50
		}

	case n <= 4096:
		d = 16 + isqrt(n)/2 + uint16(float64(n)*weight1Probability)
		pSeed, dSeed = uint32(n), uint32(n)

	default:
		d = 8 + 2*isqrt(n) + n/100
		pSeed, dSeed = uint32(n), uint32(n)
	}

	h := uint16(HeavyRows)
	m := d + h

	return Params{
		N:          n,
		PSeed:      pSeed,
		DSeed:      dSeed,
		D:          d,
		H:          h,
		M:          m,
		BlockPrime: NextPrime(n),
		MixPrime:   NextPrime(m),
	}
}

// isqrt returns floor(sqrt(n)).
func isqrt(n uint16) uint16 {
	if n == 0 {
		return 0
	}
	x := uint32(math.Sqrt(float64(n)))
	for x*x > uint32(n) {
		x--
	}
	for (x+1)*(x+1) <= uint32(n) {
		x++
	}
	return uint16(x)
}

// isPrime is a plain trial-division primality test. Its argument stays
// below 2^16 here, so at most about 128 odd divisors are tried per
// candidate, which is cheaper to keep correct than the reference's
// sieve-table search.
func isPrime(v uint32) bool {
	if v < 2 {
		return false
	}
	if v%2 == 0 {
		return v == 2
	}
	for i := uint32(3); i*i <= v; i += 2 {
		if v%i == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime >= x.
func NextPrime(x uint16) uint16 {
	v := uint32(x)
	if v < 2 {
		v = 2
	}
	for !isPrime(v) {
		v++
	}
	return uint16(v)
}

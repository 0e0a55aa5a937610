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

// Package gf256 implements GF(256) arithmetic over the fixed generator
// polynomial 0x15F used by the heavy rows of the check matrix.
//
// The field tables are laid out so multiply and divide are branch-free:
// LOG[0] is set to a sentinel far outside the valid log range, and EXP is
// sized well past its doubled valid span and left zero beyond it, so any
// product or quotient touching a zero operand lands in that zero region
// and simply reads back zero.
package gf256

// polynomial is the fixed generator used for every heavy-row computation;
// two independent implementations must agree on this constant to
// interoperate (spec section 4.1).
const polynomial = 0x15F

const (
	logSentinel = 512
	expSize     = 1025
)

var (
	logTable [256]uint16
	expTable [expSize]byte

	// mulTables[k] is the precomputed row "src[i] -> mul(src[i], k)",
	// used by MulAccumulate/Divide to avoid a per-byte table lookup through
	// logTable/expTable in the hot loop.
	mulTables [256][256]byte
)

func init() {
	x := uint32(1)
	for i := 0; i < 255; i++ {
		expTable[i] = byte(x)
		logTable[x] = uint16(i)
		x <<= 1
		if x&0x100 != 0 {
			x ^= polynomial
		}
	}
	logTable[0] = logSentinel
	for i := 255; i < 255*2; i++ {
		expTable[i] = expTable[i-255]
	}

	for k := 0; k < 256; k++ {
		row := &mulTables[k]
		for b := 0; b < 256; b++ {
			row[b] = Mul(byte(k), byte(b))
		}
	}
}

// Mul returns a*b in GF(256).
func Mul(a, b byte) byte {
	return expTable[int(logTable[a])+int(logTable[b])]
}

// Div returns a/b in GF(256). b must not be zero.
func Div(a, b byte) byte {
	return expTable[int(logTable[a])+255-int(logTable[b])]
}

// Inv returns the multiplicative inverse of a. a must not be zero.
func Inv(a byte) byte {
	return expTable[255-int(logTable[a])]
}

// MulAccumulate computes dst[i] ^= Mul(src[i], k) for i in [0, n).
func MulAccumulate(dst []byte, k byte, src []byte, n int) {
	if k == 0 {
		return
	}
	if k == 1 {
		for i := 0; i < n; i++ {
			dst[i] ^= src[i]
		}
		return
	}
	row := &mulTables[k]
	for i := 0; i < n; i++ {
		dst[i] ^= row[src[i]]
	}
}

// Divide computes buf[i] = Div(buf[i], k) for i in [0, n). k must not be zero.
func Divide(buf []byte, k byte, n int) {
	if k == 1 {
		return
	}
	inv := Inv(k)
	row := &mulTables[inv]
	for i := 0; i < n; i++ {
		buf[i] = row[buf[i]]
	}
}

// Scale computes buf[i] = Mul(buf[i], k) for i in [0, n).
func Scale(buf []byte, k byte, n int) {
	if k == 1 {
		return
	}
	row := &mulTables[k]
	for i := 0; i < n; i++ {
		buf[i] = row[buf[i]]
	}
}

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

import "errors"

// Sentinel errors returned across the codec's exported API (spec section 6).
// NeedMoreBlocks is not a failure: it means triangulation could not yet
// invert the matrix and the decoder should keep accepting blocks.
var (
	ErrNeedMoreBlocks = errors.New("wirehair: need more blocks")
	ErrBadDenseSeed   = errors.New("wirehair: dense seed does not yield an invertible matrix")
	ErrBadPeelSeed    = errors.New("wirehair: peel seed does not yield an invertible matrix")
	ErrInputTooSmall  = errors.New("wirehair: block count below minimum N")
	ErrInputTooLarge  = errors.New("wirehair: block count above maximum N")
	ErrNeedMoreExtra  = errors.New("wirehair: extra row budget exhausted")
	ErrBadInput       = errors.New("wirehair: invalid input parameters")
	ErrOutOfMemory    = errors.New("wirehair: workspace allocation failed")
)

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

// smallDenseSeeds holds hand-tuned dense-row seeds for N < 256, chosen for
// the best recovery properties when the heavy submatrix is present (spec
// section 6).
var smallDenseSeeds = [256]byte{
	0, 0, 0, 67, 192, 102, 31, 237, 155, 136, 253, 122, 60, 224, 29, 34,
	33, 67, 0, 96, 146, 63, 196, 146, 251, 254, 168, 2, 171, 197, 235, 102,
	118, 245, 19, 176, 165, 198, 53, 127, 132, 151, 50, 243, 224, 124, 87, 114,
	145, 30, 39, 249, 150, 3, 57, 185, 109, 141, 30, 26, 201, 3, 112, 83,
	225, 2, 238, 160, 110, 119, 195, 20, 46, 50, 107, 133, 160, 58, 67, 92,
	14, 23, 34, 23, 59, 16, 206, 100, 230, 193, 56, 193, 130, 23, 18, 183,
	31, 53, 41, 147, 219, 17, 86, 254, 155, 194, 163, 226, 78, 8, 154, 105,
	33, 180, 210, 198, 147, 236, 197, 80, 138, 201, 13, 207, 84, 17, 200, 80,
	139, 144, 60, 188, 74, 170, 143, 42, 31, 127, 207, 93, 34, 201, 49, 200,
	240, 45, 114, 246, 63, 49, 101, 7, 55, 26, 39, 155, 61, 65, 183, 52,
	193, 134, 19, 159, 19, 101, 88, 193, 225, 163, 181, 68, 37, 79, 65, 211,
	251, 205, 206, 111, 81, 59, 1, 105, 15, 220, 125, 15, 157, 227, 90, 198,
	166, 221, 95, 139, 252, 56, 78, 244, 196, 30, 223, 199, 182, 75, 175, 61,
	47, 100, 118, 119, 201, 1, 165, 234, 67, 210, 98, 93, 60, 204, 64, 149,
	197, 232, 220, 85, 219, 118, 45, 66, 47, 60, 18, 229, 57, 134, 201, 192,
	152, 50, 71, 39, 78, 0, 199, 7, 97, 197, 122, 22, 94, 184, 108, 167,
}

// smallPeelSeeds holds hand-tuned peeling seeds for N < 192, chosen for the
// best recovery properties at a 10% loss rate (spec section 6). N in
// [192, 256) falls back to using N itself as the peel seed.
var smallPeelSeeds = [192]byte{
	0, 0, 70, 170, 111, 111, 23, 80, 226, 238, 241, 52, 238, 22, 81, 5,
	28, 125, 202, 80, 254, 111, 18, 42, 12, 184, 128, 117, 217, 153, 58, 166,
	31, 18, 15, 42, 205, 253, 211, 118, 16, 228, 145, 30, 84, 219, 243, 154,
	198, 200, 150, 170, 149, 203, 55, 118, 131, 244, 36, 191, 68, 102, 248, 234,
	82, 110, 224, 231, 38, 196, 234, 158, 78, 251, 114, 15, 6, 116, 12, 71,
	55, 143, 77, 20, 123, 98, 45, 145, 11, 179, 144, 60, 9, 149, 37, 117,
	54, 76, 151, 32, 65, 191, 225, 237, 177, 28, 0, 253, 28, 111, 8, 67,
	235, 210, 176, 209, 58, 48, 158, 69, 127, 219, 142, 168, 46, 217, 23, 214,
	133, 5, 7, 174, 204, 238, 19, 83, 86, 99, 114, 50, 94, 220, 226, 125,
	192, 149, 115, 118, 221, 136, 212, 30, 102, 0, 166, 41, 99, 212, 231, 243,
	188, 155, 69, 221, 199, 35, 105, 204, 161, 36, 101, 219, 254, 57, 98, 13,
	161, 20, 127, 72, 106, 203, 140, 18, 122, 191, 11, 233, 16, 74, 168, 11,
}

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
	"fmt"
	"sync/atomic"
)

// Stats is a set of atomic diagnostic counters, exported the same way
// kcp.Snmp is: a Header/ToSlice pair that a caller can csv-log on an
// interval. The codec never reads these itself; they exist purely for
// callers that want visibility into solver behaviour.
type Stats struct {
	BlocksWritten       atomic.Uint64
	BlocksRead          atomic.Uint64
	OpportunisticPeels  atomic.Uint64
	DeferredPeels       atomic.Uint64
	GaussianEliminations atomic.Uint64
	Resumes             atomic.Uint64
	NeedMoreBlocksEvents atomic.Uint64
	SeedFailures        atomic.Uint64
}

// Header returns the column names ToSlice's values correspond to, in order.
func (s *Stats) Header() []string {
	return []string{
		"BlocksWritten",
		"BlocksRead",
		"OpportunisticPeels",
		"DeferredPeels",
		"GaussianEliminations",
		"Resumes",
		"NeedMoreBlocksEvents",
		"SeedFailures",
	}
}

// ToSlice snapshots every counter as a string, in the same order as Header.
func (s *Stats) ToSlice() []string {
	return []string{
		fmt.Sprint(s.BlocksWritten.Load()),
		fmt.Sprint(s.BlocksRead.Load()),
		fmt.Sprint(s.OpportunisticPeels.Load()),
		fmt.Sprint(s.DeferredPeels.Load()),
		fmt.Sprint(s.GaussianEliminations.Load()),
		fmt.Sprint(s.Resumes.Load()),
		fmt.Sprint(s.NeedMoreBlocksEvents.Load()),
		fmt.Sprint(s.SeedFailures.Load()),
	}
}

// Reset zeroes every counter.
func (s *Stats) Reset() {
	s.BlocksWritten.Store(0)
	s.BlocksRead.Store(0)
	s.OpportunisticPeels.Store(0)
	s.DeferredPeels.Store(0)
	s.GaussianEliminations.Store(0)
	s.Resumes.Store(0)
	s.NeedMoreBlocksEvents.Store(0)
	s.SeedFailures.Store(0)
}

package deck

import (
	"testing"

	"github.com/xtaci/wirehair/internal/prng"
)

func isPermutation(d []uint16) bool {
	seen := make(map[uint16]bool, len(d))
	for _, v := range d {
		if int(v) >= len(d) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func TestNewIsPermutation(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 64, 257, 1000} {
		d := New(prng.New(1, 2), n)
		if len(d) != n {
			t.Fatalf("len(d) = %d, want %d", len(d), n)
		}
		if !isPermutation(d) {
			t.Fatalf("deck of size %d is not a permutation: %v", n, d)
		}
	}
}

func TestNewDeterministic(t *testing.T) {
	a := New(prng.New(7, 8), 500)
	b := New(prng.New(7, 8), 500)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("shuffle not deterministic at index %d: %d != %d", i, a[i], b[i])
		}
	}
}

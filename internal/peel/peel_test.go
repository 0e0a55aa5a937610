package peel

import "testing"

func buildGraph(t *testing.T, n, m uint16, peelSeed uint32) *Graph {
	t.Helper()
	g := New(n, m, n+1, peelSeed)
	for id := uint32(0); id < uint32(n); id++ {
		if err := g.AddRow(id); err != nil {
			t.Fatalf("AddRow(%d) failed: %v", id, err)
		}
	}
	return g
}

func TestPeelingResolvesEveryColumn(t *testing.T) {
	g := buildGraph(t, 500, 40, 500)
	g.GreedyPeeling()

	for c := range g.Columns {
		if g.Columns[c].Mark == todo {
			t.Fatalf("column %d left unresolved after greedy peeling", c)
		}
	}
	if len(g.DeferredColumns) == 0 {
		t.Fatalf("expected some columns to be deferred for a well-formed graph")
	}
	if len(g.PeeledOrder)+len(g.DeferredColumns) != int(g.N) {
		t.Fatalf("peeled (%d) + deferred (%d) != N (%d)", len(g.PeeledOrder), len(g.DeferredColumns), g.N)
	}
}

func TestDeferredColumnCountIsModest(t *testing.T) {
	g := buildGraph(t, 2000, 60, 2000)
	g.GreedyPeeling()

	// Rough sanity bound: deferred set should be well under N for a
	// reasonably-sized peeling matrix (spec section 4.8 expects ~sqrt(N)).
	if len(g.DeferredColumns) > int(g.N)/4 {
		t.Fatalf("deferred column count %d suspiciously large for N=%d", len(g.DeferredColumns), g.N)
	}
}

func TestAddRowDeterministic(t *testing.T) {
	g1 := buildGraph(t, 300, 32, 300)
	g2 := buildGraph(t, 300, 32, 300)

	if len(g1.PeeledOrder) != len(g2.PeeledOrder) {
		t.Fatalf("peeled order lengths differ: %d != %d", len(g1.PeeledOrder), len(g2.PeeledOrder))
	}
	for i := range g1.PeeledOrder {
		if g1.PeeledOrder[i] != g2.PeeledOrder[i] {
			t.Fatalf("peeled order diverges at %d: %d != %d", i, g1.PeeledOrder[i], g2.PeeledOrder[i])
		}
	}
}

func TestRefListBoundHoldsAtMaxN(t *testing.T) {
	// A tiny N with an artificially low RefListMax-violating scenario is
	// hard to construct deterministically without control over the PRNG
	// stream; instead this exercises the plain success path at a size
	// large enough that overflow would occur if the bound were wrong.
	g := New(64000, 1024, 64001, 64000)
	for id := uint32(0); id < 64000; id++ {
		if err := g.AddRow(id); err != nil {
			t.Fatalf("AddRow(%d) failed at max N: %v", id, err)
		}
	}
}

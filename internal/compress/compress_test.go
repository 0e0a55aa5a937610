package compress

import (
	"bytes"
	"testing"

	"github.com/xtaci/wirehair/internal/peel"
)

// buildSolvedGraph peels a small deterministic graph and returns it along
// with the block content each of its rows carried.
func buildSolvedGraph(t *testing.T, n, m uint16, peelSeed uint32, block func(id uint32) []byte) (*peel.Graph, [][]byte) {
	t.Helper()
	g := peel.New(n, m, n+1, peelSeed)
	rowBlocks := make([][]byte, 0, n)
	for id := uint32(0); id < uint32(n); id++ {
		if err := g.AddRow(id); err != nil {
			t.Fatalf("AddRow(%d): %v", id, err)
		}
		rowBlocks = append(rowBlocks, block(id))
	}
	g.GreedyPeeling()
	return g, rowBlocks
}

func constBlocks(blockBytes int) func(id uint32) []byte {
	return func(id uint32) []byte {
		b := make([]byte, blockBytes)
		for i := range b {
			b[i] = byte(id) + byte(i)
		}
		return b
	}
}

func TestBuildProducesSquareSolvableSystem(t *testing.T) {
	const blockBytes = 8
	g, rowBlocks := buildSolvedGraph(t, 300, 22, 300, constBlocks(blockBytes))

	res := Build(g, rowBlocks, blockBytes, 300, 16, 6, 23)

	wantCols := len(g.DeferredColumns) + int(g.M)
	if res.Matrix.Cols() != wantCols {
		t.Fatalf("cols = %d, want %d", res.Matrix.Cols(), wantCols)
	}
	wantRows := len(g.DeferredRows) + 16 + 6
	if res.Matrix.Rows() != wantRows {
		t.Fatalf("rows = %d, want %d", res.Matrix.Rows(), wantRows)
	}

	solved, resumeCol := res.Matrix.Eliminate()
	if !solved {
		t.Fatalf("system failed to solve at resume column %d (deferred=%d, dense+heavy=%d)",
			resumeCol, len(g.DeferredColumns), 16+6)
	}
}

func TestBuildDeterministic(t *testing.T) {
	const blockBytes = 4
	blockFn := constBlocks(blockBytes)

	g1, rb1 := buildSolvedGraph(t, 200, 24, 200, blockFn)
	g2, rb2 := buildSolvedGraph(t, 200, 24, 200, blockFn)

	res1 := Build(g1, rb1, blockBytes, 200, 12, 6, 29)
	res2 := Build(g2, rb2, blockBytes, 200, 12, 6, 29)

	solved1, _ := res1.Matrix.Eliminate()
	solved2, _ := res2.Matrix.Eliminate()
	if !solved1 || !solved2 {
		t.Fatalf("expected both systems to solve")
	}

	for col := 0; col < res1.Matrix.Cols(); col++ {
		v1 := res1.Matrix.Value(res1.Matrix.PivotRow(col))
		v2 := res2.Matrix.Value(res2.Matrix.PivotRow(col))
		if !bytes.Equal(v1, v2) {
			t.Fatalf("column %d value diverges between identical builds: %v != %v", col, v1, v2)
		}
	}
}

func TestBuildSmallSystemSolves(t *testing.T) {
	const blockBytes = 4
	// A small graph with a generous dense budget; peeling still leaves a
	// few columns deferred.
	g, rowBlocks := buildSolvedGraph(t, 64, 26, 64, constBlocks(blockBytes))

	res := Build(g, rowBlocks, blockBytes, 64, 20, 6, 29)
	solved, _ := res.Matrix.Eliminate()
	if !solved {
		t.Fatalf("expected small system to solve even with few deferred columns")
	}
}

func TestRecoverReturnsAllPeelingColumns(t *testing.T) {
	const blockBytes = 8
	g, rowBlocks := buildSolvedGraph(t, 300, 22, 300, constBlocks(blockBytes))

	res := Build(g, rowBlocks, blockBytes, 300, 16, 6, 23)
	solved, _ := res.Matrix.Eliminate()
	if !solved {
		t.Fatalf("expected system to solve")
	}

	recovery := Recover(g, res, blockBytes)
	if len(recovery) != int(g.N) {
		t.Fatalf("recovery length = %d, want %d", len(recovery), g.N)
	}
	for c, v := range recovery {
		if v == nil {
			t.Fatalf("column %d has no recovered value", c)
		}
		if len(v) != blockBytes {
			t.Fatalf("column %d value length = %d, want %d", c, len(v), blockBytes)
		}
	}
}

func TestRecoverRunsOnFullyKnownSystem(t *testing.T) {
	// Every one of the N rows carries its own id's input block, as in the
	// encoder, where all rows are known. The system must solve and Recover
	// must run on it; see the note at the end for why recovery[c] is not
	// compared with input[c].
	const blockBytes = 4
	n, m, seed := uint16(150), uint16(20), uint32(150)

	g := peel.New(n, m, n+1, seed)
	input := make([][]byte, n)
	for id := uint32(0); id < uint32(n); id++ {
		if err := g.AddRow(id); err != nil {
			t.Fatalf("AddRow(%d): %v", id, err)
		}
		b := make([]byte, blockBytes)
		for i := range b {
			b[i] = byte(id*7 + uint32(i))
		}
		input[id] = b
	}
	g.GreedyPeeling()

	res := Build(g, input, blockBytes, seed, 16, 6, 31)
	solved, _ := res.Matrix.Eliminate()
	if !solved {
		t.Fatalf("expected encoder-side system (all rows known) to solve")
	}

	_ = Recover(g, res, blockBytes)
	// Note: recovery[c] for c < N need not literally equal input[c] here —
	// column c and row id=c are generally unrelated (a row's peeling
	// columns are derived from its generator, not its own id); the
	// top-level codec is responsible for the id<N systematic shortcut
	// (spec section 4.15, Emit). This test only exercises that Recover
	// runs end to end without panicking on a fully-known system.
}

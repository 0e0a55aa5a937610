package matrix

import (
	"bytes"
	"testing"

	"github.com/xtaci/wirehair/gf256"
)

func TestEliminateSolvesIdentitySystem(t *testing.T) {
	m := New(3, 2)
	m.AddRow([]byte{1, 0, 0}, []byte{10, 20})
	m.AddRow([]byte{0, 1, 0}, []byte{30, 40})
	m.AddRow([]byte{0, 0, 1}, []byte{50, 60})

	solved, _ := m.Eliminate()
	if !solved {
		t.Fatalf("identity system should solve immediately")
	}
	if !bytes.Equal(m.Value(m.PivotRow(0)), []byte{10, 20}) {
		t.Fatalf("column 0 value wrong: %v", m.Value(m.PivotRow(0)))
	}
	if !bytes.Equal(m.Value(m.PivotRow(2)), []byte{50, 60}) {
		t.Fatalf("column 2 value wrong: %v", m.Value(m.PivotRow(2)))
	}
}

func TestEliminateSolvesMixedSystem(t *testing.T) {
	// x0 ^ x1 = A, x1 = B  =>  x0 = A^B, x1 = B
	m := New(2, 1)
	m.AddRow([]byte{1, 1}, []byte{0xAA})
	m.AddRow([]byte{0, 1}, []byte{0x0F})

	solved, _ := m.Eliminate()
	if !solved {
		t.Fatalf("2x2 system should solve")
	}
	x0 := m.Value(m.PivotRow(0))[0]
	x1 := m.Value(m.PivotRow(1))[0]
	if x1 != 0x0F {
		t.Fatalf("x1 = %x, want 0x0f", x1)
	}
	if x0 != 0xAA^0x0F {
		t.Fatalf("x0 = %x, want %x", x0, 0xAA^0x0F)
	}
}

func TestEliminateReportsResumeOnSingularPrefix(t *testing.T) {
	m := New(2, 1)
	m.AddRow([]byte{0, 1}, []byte{0x01}) // column 0 has no support yet

	solved, resumeCol := m.Eliminate()
	if solved {
		t.Fatalf("system should not be solvable yet")
	}
	if resumeCol != 0 {
		t.Fatalf("resumeCol = %d, want 0", resumeCol)
	}

	m.AddRow([]byte{1, 0}, []byte{0x02})
	solved, _ = m.Eliminate()
	if !solved {
		t.Fatalf("system should solve after the missing row arrives")
	}
	if m.Value(m.PivotRow(0))[0] != 0x02 {
		t.Fatalf("x0 = %x, want 0x02", m.Value(m.PivotRow(0))[0])
	}
}

func TestEliminateGF256Scaling(t *testing.T) {
	// 3*x0 = 3*2 (GF256 mul), want x0 = 2.
	const coeff, want = 3, 2
	m := New(1, 1)
	m.AddRow([]byte{coeff}, []byte{gf256.Mul(coeff, want)})
	solved, _ := m.Eliminate()
	if !solved {
		t.Fatalf("1x1 system should solve")
	}
	if got := m.Value(m.PivotRow(0))[0]; got != want {
		t.Fatalf("x0 = %d, want %d", got, want)
	}
}

package gf256

import "testing"

// TestMulDivRoundTrip checks property 6 from spec section 8: for all x,y
// with y != 0, div(mul(x,y),y) == x and mul(div(x,y),y) == x.
func TestMulDivRoundTrip(t *testing.T) {
	for x := 0; x < 256; x++ {
		for y := 1; y < 256; y++ {
			a, b := byte(x), byte(y)
			if got := Div(Mul(a, b), b); got != a {
				t.Fatalf("Div(Mul(%d,%d),%d) = %d, want %d", a, b, b, got, a)
			}
			if got := Mul(Div(a, b), b); got != a {
				t.Fatalf("Mul(Div(%d,%d),%d) = %d, want %d", a, b, b, got, a)
			}
		}
	}
}

func TestMulIdentities(t *testing.T) {
	for x := 0; x < 256; x++ {
		if Mul(byte(x), 0) != 0 {
			t.Fatalf("Mul(%d,0) != 0", x)
		}
		if Mul(byte(x), 1) != byte(x) {
			t.Fatalf("Mul(%d,1) != %d", x, x)
		}
	}
}

func TestInv(t *testing.T) {
	for x := 1; x < 256; x++ {
		if got := Mul(byte(x), Inv(byte(x))); got != 1 {
			t.Fatalf("Mul(%d, Inv(%d)) = %d, want 1", x, x, got)
		}
	}
}

func TestMulAccumulate(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5}
	dst := make([]byte, len(src))
	k := byte(7)
	MulAccumulate(dst, k, src, len(src))
	for i, s := range src {
		if dst[i] != Mul(s, k) {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], Mul(s, k))
		}
	}
	// accumulating again with k=0 changes nothing
	MulAccumulate(dst, 0, src, len(src))
	for i, s := range src {
		if dst[i] != Mul(s, k) {
			t.Fatalf("dst[%d] changed after MulAccumulate with k=0", i)
		}
	}
}

func TestDivide(t *testing.T) {
	buf := []byte{10, 20, 30}
	orig := append([]byte(nil), buf...)
	k := byte(9)
	Divide(buf, k, len(buf))
	for i, o := range orig {
		if got := Mul(buf[i], k); got != o {
			t.Fatalf("Mul(Divide(%d,%d),%d) = %d, want %d", o, k, k, got, o)
		}
	}
}

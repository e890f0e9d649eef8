package proto

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-lc/synth/core"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// ---------------------------------------------------------------------------
// Butterworth
// ---------------------------------------------------------------------------

func TestButterworth_LengthAndPalindrome(t *testing.T) {
	for order := MinOrder; order <= MaxOrder; order++ {
		g, err := Butterworth(order)
		if err != nil {
			t.Fatalf("order %d: unexpected error %v", order, err)
		}
		if len(g) != order {
			t.Fatalf("order %d: len=%d, want %d", order, len(g), order)
		}
		for i := range g {
			if !almostEqual(g[i], g[order-1-i], 1e-12) {
				t.Fatalf("order %d: g[%d]=%v, g[%d]=%v, want palindrome", order, i, g[i], order-1-i, g[order-1-i])
			}
		}
	}
}

func TestButterworth_KnownValues(t *testing.T) {
	// Order 2: g1 = g2 = 2*sin(pi/4) = sqrt(2).
	g, err := Butterworth(2)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !almostEqual(g[0], math.Sqrt2, 1e-12) || !almostEqual(g[1], math.Sqrt2, 1e-12) {
		t.Fatalf("order 2: g=%v, want [sqrt2 sqrt2]", g)
	}

	// Order 3: g1 = 1, g2 = 2, g3 = 1.
	g, err = Butterworth(3)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := []float64{1, 2, 1}
	for i := range want {
		if !almostEqual(g[i], want[i], 1e-12) {
			t.Fatalf("order 3: g[%d]=%v, want %v", i, g[i], want[i])
		}
	}
}

func TestButterworth_OrderRange(t *testing.T) {
	for _, order := range []int{-1, 0, 1, 10, 100} {
		_, err := Butterworth(order)
		if !errors.Is(err, ErrOrderRange) {
			t.Fatalf("order %d: err=%v, want ErrOrderRange", order, err)
		}
		if !errors.Is(err, core.ErrValidation) {
			t.Fatalf("order %d: err does not match core.ErrValidation", order)
		}
	}
}

// ---------------------------------------------------------------------------
// Chebyshev
// ---------------------------------------------------------------------------

func TestChebyshev_LengthAndPalindromeOddOrders(t *testing.T) {
	// Equal-termination prototypes are palindromic; for even orders the
	// recurrence yields the unequal-termination ladder, so palindrome is
	// only asserted for odd orders.
	for _, order := range []int{3, 5, 7, 9} {
		g, err := Chebyshev(order, 0.5)
		if err != nil {
			t.Fatalf("order %d: unexpected error %v", order, err)
		}
		if len(g) != order {
			t.Fatalf("order %d: len=%d, want %d", order, len(g), order)
		}
		for i := range g {
			if !almostEqual(g[i], g[order-1-i], 1e-6) {
				t.Fatalf("order %d: g[%d]=%v, g[%d]=%v, want palindrome", order, i, g[i], order-1-i, g[order-1-i])
			}
		}
	}
}

func TestChebyshev_MatchesPublishedTables(t *testing.T) {
	// Zverev 0.5 dB ripple, n=3: [1.5963, 1.0967, 1.5963].
	g, err := Chebyshev(3, 0.5)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := []float64{1.5963, 1.0967, 1.5963}
	for i := range want {
		if !almostEqual(g[i], want[i], 5e-4) {
			t.Fatalf("0.5dB n=3: g[%d]=%v, want %v", i, g[i], want[i])
		}
	}

	// 0.1 dB ripple, n=5: [1.1468, 1.3712, 1.9750, 1.3712, 1.1468].
	g, err = Chebyshev(5, 0.1)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want = []float64{1.1468, 1.3712, 1.9750, 1.3712, 1.1468}
	for i := range want {
		if !almostEqual(g[i], want[i], 5e-4) {
			t.Fatalf("0.1dB n=5: g[%d]=%v, want %v", i, g[i], want[i])
		}
	}
}

func TestChebyshev_AllPositive(t *testing.T) {
	for order := MinOrder; order <= MaxOrder; order++ {
		for _, ripple := range []float64{0.01, 0.1, 0.5, 1.0, 3.0} {
			g, err := Chebyshev(order, ripple)
			if err != nil {
				t.Fatalf("order %d ripple %v: unexpected error %v", order, ripple, err)
			}
			for i, v := range g {
				if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
					t.Fatalf("order %d ripple %v: g[%d]=%v not positive finite", order, ripple, i, v)
				}
			}
		}
	}
}

func TestChebyshev_InvalidInputs(t *testing.T) {
	if _, err := Chebyshev(1, 0.5); !errors.Is(err, ErrOrderRange) {
		t.Fatalf("order 1: err=%v, want ErrOrderRange", err)
	}
	if _, err := Chebyshev(5, 0); !errors.Is(err, ErrRippleRange) {
		t.Fatalf("ripple 0: err=%v, want ErrRippleRange", err)
	}
	if _, err := Chebyshev(5, -0.5); !errors.Is(err, ErrRippleRange) {
		t.Fatalf("ripple -0.5: err=%v, want ErrRippleRange", err)
	}
}

// ---------------------------------------------------------------------------
// Bessel
// ---------------------------------------------------------------------------

func TestBessel_LengthAndValues(t *testing.T) {
	for order := MinOrder; order <= MaxOrder; order++ {
		g, err := Bessel(order)
		if err != nil {
			t.Fatalf("order %d: unexpected error %v", order, err)
		}
		if len(g) != order {
			t.Fatalf("order %d: len=%d, want %d", order, len(g), order)
		}
	}

	g, _ := Bessel(2)
	if !almostEqual(g[0], 0.5755, 1e-12) || !almostEqual(g[1], 2.1478, 1e-12) {
		t.Fatalf("order 2: g=%v, want [0.5755 2.1478]", g)
	}
}

func TestBessel_ReturnsCopy(t *testing.T) {
	a, _ := Bessel(3)
	a[0] = -1
	b, _ := Bessel(3)
	if b[0] != 0.3374 {
		t.Fatalf("table mutated through returned slice: g[0]=%v", b[0])
	}
}

func TestBessel_OrderRange(t *testing.T) {
	for _, order := range []int{1, 10} {
		if _, err := Bessel(order); !errors.Is(err, ErrOrderRange) {
			t.Fatalf("order %d: err=%v, want ErrOrderRange", order, err)
		}
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValues_Dispatch(t *testing.T) {
	for _, resp := range []core.Response{core.Butterworth, core.Chebyshev, core.Bessel} {
		g, err := Values(resp, 5, 0.5)
		if err != nil {
			t.Fatalf("%v: unexpected error %v", resp, err)
		}
		if len(g) != 5 {
			t.Fatalf("%v: len=%d, want 5", resp, len(g))
		}
	}

	if _, err := Values(core.Response(99), 5, 0.5); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("unknown response: err=%v, want core.ErrValidation", err)
	}
}

// Package proto computes normalized prototype element values (g-values) for
// the supported response families.
//
// A g-value is the reactance/susceptance coefficient of the normalized
// (cutoff 1 rad/s, impedance 1 Ohm) lowpass ladder from which every scaled
// design is derived. Supported orders are 2 through 9.
//
// References:
//   - Zverev, "Handbook of Filter Synthesis" (1967)
//   - Matthaei, Young, Jones, "Microwave Filters, Impedance-Matching
//     Networks, and Coupling Structures"
package proto

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lc/synth/core"
)

// MinOrder and MaxOrder bound the supported prototype orders.
const (
	MinOrder = 2
	MaxOrder = 9
)

// Errors returned by prototype functions.
var (
	ErrOrderRange  = fmt.Errorf("proto: order must be between %d and %d: %w", MinOrder, MaxOrder, core.ErrValidation)
	ErrRippleRange = fmt.Errorf("proto: ripple must be positive: %w", core.ErrValidation)
)

// Butterworth returns the maximally-flat prototype g-values for the given
// order using the closed form g_k = 2*sin((2k-1)*pi/(2n)).
func Butterworth(order int) ([]float64, error) {
	if order < MinOrder || order > MaxOrder {
		return nil, ErrOrderRange
	}

	g := make([]float64, order)
	for k := 1; k <= order; k++ {
		g[k-1] = 2 * math.Sin(float64(2*k-1)*math.Pi/(2*float64(order)))
	}

	return g, nil
}

// Chebyshev returns equal-ripple prototype g-values computed from the ladder
// recurrence, supporting arbitrary positive ripple.
func Chebyshev(order int, rippleDB float64) ([]float64, error) {
	if order < MinOrder || order > MaxOrder {
		return nil, ErrOrderRange
	}

	if rippleDB <= 0 {
		return nil, ErrRippleRange
	}

	n := float64(order)

	// beta = ln(coth(ripple/17.37)), gamma = sinh(beta/2n).
	rr := rippleDB / 17.37
	e2x := math.Exp(2 * rr)
	beta := math.Log((e2x + 1) / (e2x - 1))
	gamma := math.Sinh(beta / (2 * n))

	a := make([]float64, order+1)
	b := make([]float64, order+1)
	for i := 1; i <= order; i++ {
		a[i] = math.Sin(float64(2*i-1) * math.Pi / (2 * n))
		s := math.Sin(math.Pi * float64(i) / n)
		b[i] = gamma*gamma + s*s
	}

	g := make([]float64, order)
	g[0] = 2 * a[1] / gamma
	for i := 2; i <= order; i++ {
		g[i-1] = (4 * a[i-1] * a[i]) / (b[i-1] * g[i-2])
	}

	return g, nil
}

// Values returns the prototype g-values for any supported response family.
// rippleDB is only consulted for Chebyshev.
func Values(response core.Response, order int, rippleDB float64) ([]float64, error) {
	switch response {
	case core.Butterworth:
		return Butterworth(order)
	case core.Chebyshev:
		return Chebyshev(order, rippleDB)
	case core.Bessel:
		return Bessel(order)
	}
	return nil, fmt.Errorf("proto: unknown response type %d: %w", int(response), core.ErrValidation)
}

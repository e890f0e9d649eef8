package core

import "math"

// DBFloor is the lower bound applied when converting magnitudes to dB.
const DBFloor = -120.0

// MagnitudeToDB converts a linear magnitude to dB (20*log10 convention),
// floored at DBFloor. Non-positive magnitudes return the floor.
func MagnitudeToDB(magnitude float64) float64 {
	if magnitude <= 0 {
		return DBFloor
	}
	return math.Max(20*math.Log10(magnitude), DBFloor)
}

// ChebyshevT evaluates the Chebyshev polynomial of the first kind T_n(x).
//
// Inside the unit interval the trigonometric form is used; outside, the
// hyperbolic form, so the result stays finite and monotone for |x| > 1.
func ChebyshevT(n int, x float64) float64 {
	if n <= 0 {
		return 1
	}
	if math.Abs(x) <= 1 {
		return math.Cos(float64(n) * math.Acos(x))
	}
	t := math.Cosh(float64(n) * math.Acosh(math.Abs(x)))
	if x < 0 && n%2 != 0 {
		return -t
	}
	return t
}

// RippleEpsilon converts a passband ripple in dB to the Chebyshev ripple
// factor epsilon = sqrt(10^(ripple/10) - 1).
func RippleEpsilon(rippleDB float64) float64 {
	return math.Sqrt(math.Pow(10, rippleDB/10) - 1)
}

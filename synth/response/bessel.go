package response

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lc/synth/core"
)

// besselMagnitude evaluates the Bessel lowpass magnitude at the normalized
// frequency ratio (f/fc for lowpass, fc/f for highpass).
//
// The magnitude comes from the reverse Bessel polynomial that also underlies
// the g-value table: |H(jw)| = theta_n(0)/|theta_n(jw)| with w scaled so the
// -3 dB point lands at ratio 1.
func besselMagnitude(ratio float64, order int) float64 {
	if order < 2 || order > 9 {
		return 0
	}

	w := ratio * besselScale[order]
	re, im := besselDenominator(w, order)

	denom2 := re*re + im*im
	if denom2 == 0 {
		return 1
	}

	c0 := besselCoeffs[order][0]
	return math.Sqrt(math.Min(c0*c0/denom2, 1))
}

// besselLadderPoints is the batch path for Bessel designs: the denominator
// magnitudes for the whole grid are computed in one block.
func besselLadderPoints(d core.LadderDesign, freqs []float64) []Point {
	n := len(freqs)
	re := make([]float64, n)
	im := make([]float64, n)
	mag := make([]float64, n)

	for i, f := range freqs {
		if f <= 0 {
			continue
		}
		ratio := f / d.CutoffHz
		if d.Category == core.Highpass {
			ratio = d.CutoffHz / f
		}
		re[i], im[i] = besselDenominator(ratio*besselScale[d.Order], d.Order)
	}

	vecmath.Magnitude(mag, re, im)

	c0 := besselCoeffs[d.Order][0]
	out := make([]Point, n)
	for i, f := range freqs {
		out[i].FrequencyHz = f
		switch {
		case f <= 0 && d.Category == core.Highpass:
			out[i].MagnitudeDB = core.DBFloor
		case f <= 0:
			out[i].MagnitudeDB = 0
		case mag[i] == 0:
			out[i].MagnitudeDB = 0
		default:
			out[i].MagnitudeDB = core.MagnitudeToDB(math.Min(c0/mag[i], 1))
		}
	}
	return out
}

// besselDenominator evaluates theta_n(jw) and returns its real and imaginary
// parts. Powers of j rotate the coefficient signs with period four.
func besselDenominator(w float64, order int) (re, im float64) {
	wPow := 1.0
	for k, c := range besselCoeffs[order] {
		sign := 1.0
		if (k/2)%2 != 0 {
			sign = -1
		}
		if k%2 == 0 {
			re += sign * c * wPow
		} else {
			im += sign * c * wPow
		}
		wPow *= w
	}
	return re, im
}

// besselCoeffs holds the reverse Bessel polynomial coefficients in ascending
// powers of s, for orders 2-9. theta_n(0) is the first entry.
var besselCoeffs = [10][]float64{
	2: {3, 3, 1},
	3: {15, 15, 6, 1},
	4: {105, 105, 45, 10, 1},
	5: {945, 945, 420, 105, 15, 1},
	6: {10395, 10395, 4725, 1260, 210, 21, 1},
	7: {135135, 135135, 62370, 17325, 3150, 378, 28, 1},
	8: {2027025, 2027025, 945945, 270270, 51975, 6930, 630, 36, 1},
	9: {34459425, 34459425, 16216200, 4729725, 945945, 135135, 13860, 990, 45, 1},
}

// besselScale converts the -3 dB normalized ratio to the delay-normalized
// frequency variable of the polynomial above.
var besselScale = [10]float64{
	2: 1.3617, 3: 1.7557, 4: 2.1139, 5: 2.4274,
	6: 2.7034, 7: 2.9517, 8: 3.1796, 9: 3.3917,
}

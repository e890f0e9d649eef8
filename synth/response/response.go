// Package response evaluates the frequency-domain magnitude of synthesized
// filter designs.
//
// Evaluation is a pure function of the design record and the requested
// frequencies: the returned sequences are lazy, restartable, and never mutate
// the design. Magnitudes come from the same prototype data that produced the
// component values, so the curves describe the ideal (lossless) network.
package response

import (
	"iter"
	"math"

	"github.com/cwbudde/algo-lc/synth/core"
)

// Default grid sizes, matching the original tool's plots.
const (
	DefaultLadderPoints  = 51
	DefaultCoupledPoints = 61
)

// coupledDBFloor is the clamp applied to bandpass skirts, where the
// normalized deviation grows much faster than in the ladder case.
const coupledDBFloor = -100.0

// Point is one sample of a frequency response.
type Point struct {
	FrequencyHz float64
	MagnitudeDB float64
}

// Ladder returns a lazy sequence of magnitude samples for a lowpass or
// highpass design, one per input frequency. The sequence may be ranged over
// any number of times.
func Ladder(d core.LadderDesign, freqs []float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, f := range freqs {
			if !yield(Point{FrequencyHz: f, MagnitudeDB: ladderDB(d, f)}) {
				return
			}
		}
	}
}

// LadderPoints collects the full response into a slice.
func LadderPoints(d core.LadderDesign, freqs []float64) []Point {
	if d.Response == core.Bessel {
		return besselLadderPoints(d, freqs)
	}

	out := make([]Point, 0, len(freqs))
	for p := range Ladder(d, freqs) {
		out = append(out, p)
	}
	return out
}

// Coupled returns a lazy sequence of magnitude samples for a bandpass design.
//
// The normalized deviation delta = (f^2 - f0^2)/(BW*f) is substituted into
// the order-n lowpass shape of the design's response family, which makes the
// skirts symmetric around f0 on a logarithmic axis.
func Coupled(d core.CoupledDesign, freqs []float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, f := range freqs {
			if !yield(Point{FrequencyHz: f, MagnitudeDB: coupledDB(d, f)}) {
				return
			}
		}
	}
}

// CoupledPoints collects the full response into a slice.
func CoupledPoints(d core.CoupledDesign, freqs []float64) []Point {
	out := make([]Point, 0, len(freqs))
	for p := range Coupled(d, freqs) {
		out = append(out, p)
	}
	return out
}

// LadderGrid returns log-spaced frequencies spanning one decade below
// to one decade above the cutoff. points <= 1 selects the default.
func LadderGrid(d core.LadderDesign, points int) []float64 {
	if points <= 1 {
		points = DefaultLadderPoints
	}
	return logSpace(d.CutoffHz/10, d.CutoffHz*10, points)
}

// CoupledGrid returns log-spaced frequencies around the center frequency.
// The span adapts to the bandwidth so narrow filters still show their shape:
// ten bandwidths each side, clamped between 0.1 and 1 decade.
func CoupledGrid(d core.CoupledDesign, points int) []float64 {
	if points <= 1 {
		points = DefaultCoupledPoints
	}

	decades := math.Log10((d.CenterHz + 10*d.BandwidthHz) / d.CenterHz)
	decades = math.Min(1.0, math.Max(0.1, decades))

	span := math.Pow(10, decades)
	return logSpace(d.CenterHz/span, d.CenterHz*span, points)
}

func logSpace(from, to float64, points int) []float64 {
	out := make([]float64, points)
	logFrom := math.Log10(from)
	step := (math.Log10(to) - logFrom) / float64(points-1)
	for i := range out {
		out[i] = math.Pow(10, logFrom+float64(i)*step)
	}
	return out
}

// ladderDB evaluates one lowpass/highpass magnitude sample in dB.
func ladderDB(d core.LadderDesign, f float64) float64 {
	if f <= 0 {
		if d.Category == core.Highpass {
			return core.DBFloor
		}
		return 0
	}

	ratio := f / d.CutoffHz
	if d.Category == core.Highpass {
		ratio = d.CutoffHz / f
	}

	var mag float64
	switch d.Response {
	case core.Chebyshev:
		mag = chebyshevMagnitude(ratio, d.Order, d.RippleDB)
	case core.Bessel:
		mag = besselMagnitude(ratio, d.Order)
	default:
		mag = butterworthMagnitude(ratio, d.Order)
	}

	return core.MagnitudeToDB(mag)
}

// coupledDB evaluates one bandpass magnitude sample in dB.
func coupledDB(d core.CoupledDesign, f float64) float64 {
	if f <= 0 {
		return coupledDBFloor
	}

	delta := (f*f - d.CenterHz*d.CenterHz) / (d.BandwidthHz * f)

	var mag float64
	switch d.Response {
	case core.Chebyshev:
		mag = chebyshevMagnitude(delta, d.Resonators, d.RippleDB)
	default:
		// Bessel has no closed-form coupled magnitude; the Butterworth
		// shape is the standard plotting approximation.
		mag = butterworthMagnitude(delta, d.Resonators)
	}

	if mag < 1e-5 {
		return coupledDBFloor
	}
	return 20 * math.Log10(mag)
}

// butterworthMagnitude is |H| = 1/sqrt(1 + x^(2n)) for the normalized
// frequency variable x.
func butterworthMagnitude(x float64, order int) float64 {
	return 1 / math.Sqrt(1+math.Pow(x*x, float64(order)))
}

// chebyshevMagnitude is |H| = 1/sqrt(1 + eps^2*Tn(x)^2).
func chebyshevMagnitude(x float64, order int, rippleDB float64) float64 {
	eps := core.RippleEpsilon(rippleDB)
	tn := core.ChebyshevT(order, x)
	return 1 / math.Sqrt(1+eps*eps*tn*tn)
}

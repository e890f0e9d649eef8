package response

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lc/synth/core"
)

// DefaultImpulseSize is the FFT length used when no size is requested.
const DefaultImpulseSize = 1024

// Impulse is a time-domain preview of a design's response, reconstructed
// from the magnitude curve with zero phase. The waveform is symmetric around
// its center sample; it previews ringing and settling, not absolute delay.
type Impulse struct {
	SampleRate float64 // Hz
	Samples    []float64
}

// Step integrates the impulse into a step response preview.
func (im Impulse) Step() []float64 {
	out := make([]float64, len(im.Samples))
	sum := 0.0
	for i, v := range im.Samples {
		sum += v
		out[i] = sum
	}
	return out
}

// LadderImpulse reconstructs a lowpass/highpass impulse response preview.
// The sampling rate is fixed at twenty times the cutoff so the evaluated
// band covers a decade above it. size is rounded up to a power of two;
// size <= 0 selects DefaultImpulseSize.
func LadderImpulse(d core.LadderDesign, size int) (Impulse, error) {
	sampleRate := 20 * d.CutoffHz
	return inverseMagnitude(size, sampleRate, func(f float64) float64 {
		return math.Pow(10, ladderDB(d, f)/20)
	})
}

// CoupledImpulse reconstructs a bandpass impulse response preview sampled at
// eight times the center frequency.
func CoupledImpulse(d core.CoupledDesign, size int) (Impulse, error) {
	sampleRate := 8 * d.CenterHz
	return inverseMagnitude(size, sampleRate, func(f float64) float64 {
		return math.Pow(10, coupledDB(d, f)/20)
	})
}

// inverseMagnitude samples |H(f)| on the FFT bin grid, mirrors it into a
// Hermitian (zero-phase) spectrum, and inverse-transforms. The result is
// rotated so the response peak sits at the center and peak-normalized.
func inverseMagnitude(size int, sampleRate float64, magnitude func(f float64) float64) (Impulse, error) {
	if size <= 0 {
		size = DefaultImpulseSize
	}
	size = nextPowerOf2(size)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return Impulse{}, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	spectrum := make([]complex128, size)
	for k := 0; k <= size/2; k++ {
		f := float64(k) * sampleRate / float64(size)
		spectrum[k] = complex(magnitude(f), 0)
		if k > 0 && k < size/2 {
			spectrum[size-k] = spectrum[k]
		}
	}

	timeDomain := make([]complex128, size)
	if err := plan.Inverse(timeDomain, spectrum); err != nil {
		return Impulse{}, fmt.Errorf("response: inverse FFT failed: %w", err)
	}

	// Zero-phase reconstruction wraps the left half of the waveform to the
	// end of the buffer; rotate it back around the center.
	samples := make([]float64, size)
	peak := 0.0
	for i := range samples {
		v := real(timeDomain[(i+size/2)%size])
		samples[i] = v
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	if peak > 0 {
		vecmath.ScaleBlock(samples, samples, 1/peak)
	}

	return Impulse{SampleRate: sampleRate, Samples: samples}, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

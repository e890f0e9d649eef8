// Package coupled synthesizes capacitively coupled resonator bandpass
// filters.
//
// A chain of identical parallel LC tanks is linked by coupling capacitors
// derived from the prototype g-values and the fractional bandwidth. The
// coupling style (top or shunt) selects the schematic placement of the
// coupling elements; the advisory limits differ between the two.
//
// References:
//   - Cohn, "Direct-Coupled-Resonator Filters" (1957)
//   - Matthaei, Young, Jones, "Microwave Filters, Impedance-Matching
//     Networks, and Coupling Structures"
package coupled

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lc/synth/core"
	"github.com/cwbudde/algo-lc/synth/proto"
)

// DefaultQSafety is the design margin applied to the minimum-Q advisory.
const DefaultQSafety = 2.0

// Errors returned by bandpass synthesis.
var (
	ErrFrequencySpec  = fmt.Errorf("coupled: specify exactly one of center+bandwidth or low+high edges: %w", core.ErrValidation)
	ErrEdgeOrder      = fmt.Errorf("coupled: lower edge must be below upper edge: %w", core.ErrValidation)
	ErrCenter         = fmt.Errorf("coupled: center frequency must be positive: %w", core.ErrValidation)
	ErrBandwidth      = fmt.Errorf("coupled: bandwidth must be positive: %w", core.ErrValidation)
	ErrBandwidthWide  = fmt.Errorf("coupled: bandwidth must be less than center frequency: %w", core.ErrValidation)
	ErrImpedance      = fmt.Errorf("coupled: impedance must be positive: %w", core.ErrValidation)
	ErrQSafety        = fmt.Errorf("coupled: q safety factor must be positive: %w", core.ErrValidation)
	ErrChebyshevCount = fmt.Errorf("coupled: chebyshev coupling requires an odd resonator count: %w", core.ErrValidation)
	ErrTankBandwidth  = fmt.Errorf("coupled: bandwidth too wide, tank capacitance driven non-positive; reduce bandwidth or resonator count: %w", core.ErrValidation)
)

// Spec describes a coupled-resonator bandpass synthesis request.
//
// Exactly one frequency form must be supplied: CenterHz+BandwidthHz, or the
// band edges LowHz+HighHz. From edges, center = sqrt(low*high) and
// bandwidth = high-low; from center, the edges are center -/+ bandwidth/2.
type Spec struct {
	Response      core.Response
	Coupling      core.Coupling
	Resonators    int // 2-9; odd only for Chebyshev
	CenterHz      float64
	BandwidthHz   float64
	LowHz         float64
	HighHz        float64
	ImpedanceOhms float64
	RippleDB      float64 // Chebyshev only
	QSafety       float64 // 0 selects DefaultQSafety
}

// Validate checks the request and resolves the frequency specification.
// It returns the resolved (center, bandwidth, low, high).
func (s *Spec) Validate() (f0, bw, low, high float64, err error) {
	hasCenter := s.CenterHz != 0 || s.BandwidthHz != 0
	hasEdges := s.LowHz != 0 || s.HighHz != 0
	if hasCenter == hasEdges {
		return 0, 0, 0, 0, ErrFrequencySpec
	}

	if hasEdges {
		if s.LowHz <= 0 || s.HighHz <= 0 {
			return 0, 0, 0, 0, ErrCenter
		}
		if s.LowHz >= s.HighHz {
			return 0, 0, 0, 0, ErrEdgeOrder
		}
		low, high = s.LowHz, s.HighHz
		f0 = math.Sqrt(low * high)
		bw = high - low
	} else {
		f0, bw = s.CenterHz, s.BandwidthHz
		if f0 <= 0 {
			return 0, 0, 0, 0, ErrCenter
		}
		if bw <= 0 {
			return 0, 0, 0, 0, ErrBandwidth
		}
		low = f0 - bw/2
		high = f0 + bw/2
	}

	if bw >= f0 {
		return 0, 0, 0, 0, ErrBandwidthWide
	}

	if s.ImpedanceOhms <= 0 {
		return 0, 0, 0, 0, ErrImpedance
	}

	if s.QSafety < 0 {
		return 0, 0, 0, 0, ErrQSafety
	}

	if s.Resonators < proto.MinOrder || s.Resonators > proto.MaxOrder {
		return 0, 0, 0, 0, proto.ErrOrderRange
	}

	if s.Response == core.Chebyshev {
		if s.RippleDB <= 0 {
			return 0, 0, 0, 0, proto.ErrRippleRange
		}
		if s.Resonators%2 == 0 {
			return 0, 0, 0, 0, ErrChebyshevCount
		}
	}

	return f0, bw, low, high, nil
}

// Design synthesizes the bandpass filter.
//
// Coupling coefficients follow k[i,i+1] = FBW/sqrt(g[i]*g[i+1]); the external
// Q at the ports is g1/FBW and gn/FBW. Every tank uses L = Z0/omega0 with the
// resonant capacitance 1/(omega0*Z0), and each tank capacitor is reduced by
// its adjacent coupling capacitors so the loaded tank still resonates at the
// center frequency.
func Design(s Spec) (core.CoupledDesign, error) {
	f0, bw, low, high, err := s.Validate()
	if err != nil {
		return core.CoupledDesign{}, err
	}

	g, err := proto.Values(s.Response, s.Resonators, s.RippleDB)
	if err != nil {
		return core.CoupledDesign{}, err
	}

	qSafety := s.QSafety
	if qSafety == 0 {
		qSafety = DefaultQSafety
	}

	fbw := bw / f0
	omega0 := 2 * math.Pi * f0

	k := make([]float64, s.Resonators-1)
	for i := range k {
		k[i] = fbw / math.Sqrt(g[i]*g[i+1])
	}

	tankL := s.ImpedanceOhms / omega0
	resonantC := 1 / (omega0 * s.ImpedanceOhms)

	couplingC := make([]float64, len(k))
	for i, ki := range k {
		couplingC[i] = ki * resonantC
	}

	// Tank capacitors absorb the adjacent coupling capacitance.
	tankC := make([]float64, s.Resonators)
	for i := range tankC {
		c := resonantC
		if i > 0 {
			c -= couplingC[i-1]
		}
		if i < len(couplingC) {
			c -= couplingC[i]
		}
		if c <= 0 {
			return core.CoupledDesign{}, fmt.Errorf("resonator %d: %w", i+1, ErrTankBandwidth)
		}
		tankC[i] = c
	}

	ripple := 0.0
	if s.Response == core.Chebyshev {
		ripple = s.RippleDB
	}

	return core.CoupledDesign{
		Response:             s.Response,
		Coupling:             s.Coupling,
		Resonators:           s.Resonators,
		CenterHz:             f0,
		BandwidthHz:          bw,
		LowHz:                low,
		HighHz:               high,
		FractionalBW:         fbw,
		ImpedanceOhms:        s.ImpedanceOhms,
		RippleDB:             ripple,
		QSafety:              qSafety,
		GValues:              g,
		CouplingCoefficients: k,
		TankInductor:         tankL,
		ResonantCapacitance:  resonantC,
		TankCapacitors:       tankC,
		CouplingCapacitors:   couplingC,
		ExternalQIn:          g[0] / fbw,
		ExternalQOut:         g[len(g)-1] / fbw,
		MinimumQ:             (f0 / bw) * qSafety,
		Warnings:             bandwidthWarnings(fbw, s.Coupling),
	}, nil
}

// bandwidthWarnings reports fractional-bandwidth advisories. These never fail
// a design; the caller decides what to do with them.
func bandwidthWarnings(fbw float64, coupling core.Coupling) []string {
	var warnings []string
	if coupling == core.ShuntCoupled && fbw > 0.10 {
		warnings = append(warnings, fmt.Sprintf("fractional bandwidth %.1f%% exceeds 10%% limit for shunt coupling; consider top coupling", fbw*100))
	}
	if fbw > 0.40 {
		warnings = append(warnings, fmt.Sprintf("fractional bandwidth %.1f%% exceeds 40%%; consider a transmission-line design", fbw*100))
	}
	return warnings
}

package coupled

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-lc/synth/core"
	"github.com/cwbudde/algo-lc/synth/proto"
)

func almostEqual(a, b, eps float64) bool {
	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}
	largest := math.Max(math.Abs(a), math.Abs(b))
	return largest > 0 && diff/largest <= eps
}

func validSpec() Spec {
	return Spec{
		Response:      core.Butterworth,
		Coupling:      core.TopCoupled,
		Resonators:    3,
		CenterHz:      14.1e6,
		BandwidthHz:   200e3,
		ImpedanceOhms: 50,
	}
}

// ---------------------------------------------------------------------------
// Frequency specification
// ---------------------------------------------------------------------------

func TestValidate_GeometricCenterFromEdges(t *testing.T) {
	s := validSpec()
	s.CenterHz, s.BandwidthHz = 0, 0
	s.LowHz, s.HighHz = 14e6, 14.35e6

	f0, bw, low, high, err := s.Validate()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := math.Sqrt(14e6 * 14.35e6) // ~14174742 Hz
	if math.Abs(f0-want) > 1 {
		t.Fatalf("f0=%v, want %v within 1 Hz", f0, want)
	}
	if !almostEqual(bw, 350e3, 1e-12) {
		t.Fatalf("bw=%v, want 350 kHz", bw)
	}
	if low != 14e6 || high != 14.35e6 {
		t.Fatalf("edges=(%v,%v), want inputs preserved", low, high)
	}
}

func TestValidate_EdgesFromCenter(t *testing.T) {
	s := validSpec()
	_, _, low, high, err := s.Validate()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !almostEqual(low, 14.1e6-100e3, 1e-12) || !almostEqual(high, 14.1e6+100e3, 1e-12) {
		t.Fatalf("edges=(%v,%v), want center -/+ bw/2", low, high)
	}
}

func TestValidate_MutuallyExclusiveForms(t *testing.T) {
	s := validSpec()
	s.LowHz, s.HighHz = 14e6, 14.35e6 // both forms supplied
	if _, _, _, _, err := s.Validate(); !errors.Is(err, ErrFrequencySpec) {
		t.Fatalf("both forms: err=%v, want ErrFrequencySpec", err)
	}

	s = Spec{Response: core.Butterworth, Resonators: 3, ImpedanceOhms: 50}
	if _, _, _, _, err := s.Validate(); !errors.Is(err, ErrFrequencySpec) {
		t.Fatalf("neither form: err=%v, want ErrFrequencySpec", err)
	}
}

func TestValidate_EdgeOrder(t *testing.T) {
	s := validSpec()
	s.CenterHz, s.BandwidthHz = 0, 0
	s.LowHz, s.HighHz = 14.35e6, 14e6
	if _, _, _, _, err := s.Validate(); !errors.Is(err, ErrEdgeOrder) {
		t.Fatalf("err=%v, want ErrEdgeOrder", err)
	}

	s.LowHz, s.HighHz = 14e6, 14e6
	if _, _, _, _, err := s.Validate(); !errors.Is(err, ErrEdgeOrder) {
		t.Fatalf("equal edges: err=%v, want ErrEdgeOrder", err)
	}
}

func TestValidate_Ranges(t *testing.T) {
	s := validSpec()
	s.BandwidthHz = 20e6 // wider than center
	if _, _, _, _, err := s.Validate(); !errors.Is(err, ErrBandwidthWide) {
		t.Fatalf("err=%v, want ErrBandwidthWide", err)
	}

	s = validSpec()
	s.ImpedanceOhms = 0
	if _, _, _, _, err := s.Validate(); !errors.Is(err, ErrImpedance) {
		t.Fatalf("err=%v, want ErrImpedance", err)
	}

	s = validSpec()
	s.Resonators = 10
	if _, _, _, _, err := s.Validate(); !errors.Is(err, proto.ErrOrderRange) {
		t.Fatalf("err=%v, want ErrOrderRange", err)
	}
}

func TestValidate_ChebyshevOddOnly(t *testing.T) {
	s := validSpec()
	s.Response = core.Chebyshev
	s.RippleDB = 0.5
	s.Resonators = 4
	if _, _, _, _, err := s.Validate(); !errors.Is(err, ErrChebyshevCount) {
		t.Fatalf("even count: err=%v, want ErrChebyshevCount", err)
	}

	s.Resonators = 3
	if _, _, _, _, err := s.Validate(); err != nil {
		t.Fatalf("odd count: unexpected error %v", err)
	}

	// Butterworth and Bessel accept even counts.
	s = validSpec()
	s.Resonators = 4
	if _, _, _, _, err := s.Validate(); err != nil {
		t.Fatalf("butterworth even count: unexpected error %v", err)
	}
}

// ---------------------------------------------------------------------------
// Synthesis
// ---------------------------------------------------------------------------

func TestDesign_StructureCounts(t *testing.T) {
	for n := proto.MinOrder; n <= proto.MaxOrder; n++ {
		s := validSpec()
		s.Resonators = n

		d, err := Design(s)
		if err != nil {
			t.Fatalf("n=%d: unexpected error %v", n, err)
		}
		if len(d.TankCapacitors) != n {
			t.Fatalf("n=%d: tanks=%d, want %d", n, len(d.TankCapacitors), n)
		}
		if len(d.CouplingCapacitors) != n-1 {
			t.Fatalf("n=%d: coupling caps=%d, want %d", n, len(d.CouplingCapacitors), n-1)
		}
		if len(d.GValues) != n || len(d.CouplingCoefficients) != n-1 {
			t.Fatalf("n=%d: g=%d k=%d", n, len(d.GValues), len(d.CouplingCoefficients))
		}
	}
}

func TestDesign_CouplingAndQ(t *testing.T) {
	s := validSpec()
	d, err := Design(s)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	fbw := d.BandwidthHz / d.CenterHz
	for i := range d.CouplingCoefficients {
		want := fbw / math.Sqrt(d.GValues[i]*d.GValues[i+1])
		if !almostEqual(d.CouplingCoefficients[i], want, 1e-12) {
			t.Fatalf("k[%d]=%v, want %v", i, d.CouplingCoefficients[i], want)
		}
	}

	if !almostEqual(d.ExternalQIn, d.GValues[0]/fbw, 1e-12) {
		t.Fatalf("QeIn=%v, want %v", d.ExternalQIn, d.GValues[0]/fbw)
	}
	if !almostEqual(d.ExternalQOut, d.GValues[2]/fbw, 1e-12) {
		t.Fatalf("QeOut=%v, want %v", d.ExternalQOut, d.GValues[2]/fbw)
	}
}

func TestDesign_TankResonance(t *testing.T) {
	// The uncompensated tank must resonate at the center frequency:
	// 1/sqrt(L*C_res) = omega0. The compensated tank plus its adjacent
	// coupling capacitance restores the same total capacitance.
	s := validSpec()
	d, err := Design(s)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	omega0 := 2 * math.Pi * d.CenterHz
	fRes := 1 / math.Sqrt(d.TankInductor*d.ResonantCapacitance)
	if !almostEqual(fRes, omega0, 1e-9) {
		t.Fatalf("tank resonance %v rad/s, want %v", fRes, omega0)
	}

	for i, c := range d.TankCapacitors {
		total := c
		if i > 0 {
			total += d.CouplingCapacitors[i-1]
		}
		if i < len(d.CouplingCapacitors) {
			total += d.CouplingCapacitors[i]
		}
		if !almostEqual(total, d.ResonantCapacitance, 1e-12) {
			t.Fatalf("resonator %d: loaded capacitance %v, want %v", i+1, total, d.ResonantCapacitance)
		}
	}
}

func TestDesign_MinimumQAdvisory(t *testing.T) {
	s := validSpec()
	d, err := Design(s)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := (d.CenterHz / d.BandwidthHz) * DefaultQSafety
	if !almostEqual(d.MinimumQ, want, 1e-12) {
		t.Fatalf("MinimumQ=%v, want %v", d.MinimumQ, want)
	}
	if d.QSafety != DefaultQSafety {
		t.Fatalf("QSafety=%v, want default %v", d.QSafety, DefaultQSafety)
	}

	s.QSafety = 3
	d, err = Design(s)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !almostEqual(d.MinimumQ, (d.CenterHz/d.BandwidthHz)*3, 1e-12) {
		t.Fatalf("MinimumQ=%v with safety 3", d.MinimumQ)
	}
}

func TestDesign_AllValuesPositive(t *testing.T) {
	for _, resp := range []core.Response{core.Butterworth, core.Bessel} {
		for n := proto.MinOrder; n <= proto.MaxOrder; n++ {
			s := validSpec()
			s.Response = resp
			s.Resonators = n

			d, err := Design(s)
			if err != nil {
				t.Fatalf("%v n=%d: unexpected error %v", resp, n, err)
			}
			for i, c := range d.TankCapacitors {
				if c <= 0 {
					t.Fatalf("%v n=%d: tank cap %d = %v", resp, n, i+1, c)
				}
			}
			for i, c := range d.CouplingCapacitors {
				if c <= 0 {
					t.Fatalf("%v n=%d: coupling cap %d = %v", resp, n, i+1, c)
				}
			}
			if d.TankInductor <= 0 {
				t.Fatalf("%v n=%d: tank L = %v", resp, n, d.TankInductor)
			}
		}
	}
}

func TestDesign_WideBandwidthTankError(t *testing.T) {
	// A very wide band drives the coupling capacitance past the resonant
	// capacitance: with g=[1,2,1] and FBW 0.9, the middle tank loses
	// 2*0.9/sqrt(2) of its capacitance and goes negative.
	s := validSpec()
	s.Resonators = 3
	s.CenterHz = 10e6
	s.BandwidthHz = 9e6

	_, err := Design(s)
	if !errors.Is(err, ErrTankBandwidth) {
		t.Fatalf("err=%v, want ErrTankBandwidth", err)
	}
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("err does not match core.ErrValidation")
	}
}

func TestDesign_Warnings(t *testing.T) {
	s := validSpec()
	s.Coupling = core.ShuntCoupled
	s.CenterHz = 10e6
	s.BandwidthHz = 2e6 // 20% FBW

	d, err := Design(s)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(d.Warnings) != 1 {
		t.Fatalf("warnings=%v, want one shunt-coupling advisory", d.Warnings)
	}

	s.Coupling = core.TopCoupled
	d, err = Design(s)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(d.Warnings) != 0 {
		t.Fatalf("warnings=%v, want none for top coupling at 20%%", d.Warnings)
	}
}

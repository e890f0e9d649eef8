// Package ladder synthesizes lowpass and highpass LC ladder networks.
//
// A prototype g-value sequence from [proto] is denormalized to the requested
// cutoff frequency and impedance, and each structural position is assigned a
// capacitor or inductor according to the topology. Pi ladders begin and end
// with shunt elements, T ladders with series elements.
package ladder

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lc/synth/core"
	"github.com/cwbudde/algo-lc/synth/proto"
)

// Errors returned by ladder synthesis.
var (
	ErrCutoff    = fmt.Errorf("ladder: cutoff frequency must be positive: %w", core.ErrValidation)
	ErrImpedance = fmt.Errorf("ladder: impedance must be positive: %w", core.ErrValidation)
)

// Spec describes a lowpass or highpass synthesis request.
type Spec struct {
	Response      core.Response
	Topology      core.Topology
	Order         int     // number of elements, 2-9
	CutoffHz      float64 // -3 dB cutoff (ripple cutoff for Chebyshev)
	ImpedanceOhms float64
	RippleDB      float64 // Chebyshev only
}

// Validate checks the request parameters common to both categories.
// Order and ripple ranges match the prototype catalog.
func (s *Spec) Validate() error {
	if s.CutoffHz <= 0 {
		return ErrCutoff
	}

	if s.ImpedanceOhms <= 0 {
		return ErrImpedance
	}

	if s.Order < proto.MinOrder || s.Order > proto.MaxOrder {
		return proto.ErrOrderRange
	}

	if s.Response == core.Chebyshev && s.RippleDB <= 0 {
		return proto.ErrRippleRange
	}

	return nil
}

// Lowpass synthesizes a lowpass ladder design.
//
// Shunt positions take C = g/(2*pi*fc*Z0), series positions
// L = g*Z0/(2*pi*fc). Pi places shunt capacitors at odd structural positions;
// T is the dual network with series inductors at odd positions.
func Lowpass(s Spec) (core.LadderDesign, error) {
	err := s.Validate()
	if err != nil {
		return core.LadderDesign{}, err
	}

	g, err := proto.Values(s.Response, s.Order, s.RippleDB)
	if err != nil {
		return core.LadderDesign{}, err
	}

	omega := 2 * math.Pi * s.CutoffHz
	d := core.LadderDesign{
		Category:      core.Lowpass,
		Response:      s.Response,
		Topology:      s.Topology,
		Order:         s.Order,
		CutoffHz:      s.CutoffHz,
		ImpedanceOhms: s.ImpedanceOhms,
		RippleDB:      chebyshevRipple(s),
		GValues:       g,
	}

	for i := 1; i <= s.Order; i++ {
		gi := g[i-1]
		// Pi: odd positions shunt C, even series L. T swaps the roles.
		if (s.Topology == core.Pi) == (i%2 == 1) {
			value := gi / (s.ImpedanceOhms * omega)
			if err := appendCapacitor(&d, value, false); err != nil {
				return core.LadderDesign{}, err
			}
		} else {
			value := gi * s.ImpedanceOhms / omega
			if err := appendInductor(&d, value, true); err != nil {
				return core.LadderDesign{}, err
			}
		}
	}

	return d, nil
}

// Highpass synthesizes a highpass ladder design.
//
// The formulas are the frequency-inverted lowpass forms, C = 1/(g*2*pi*fc*Z0)
// and L = Z0/(g*2*pi*fc). The topology-to-role assignment is likewise
// inverted: T leads with series capacitors, Pi with shunt inductors. This is
// the lowpass-to-highpass transform applied to the dual network, not an
// independent convention.
func Highpass(s Spec) (core.LadderDesign, error) {
	err := s.Validate()
	if err != nil {
		return core.LadderDesign{}, err
	}

	g, err := proto.Values(s.Response, s.Order, s.RippleDB)
	if err != nil {
		return core.LadderDesign{}, err
	}

	omega := 2 * math.Pi * s.CutoffHz
	d := core.LadderDesign{
		Category:      core.Highpass,
		Response:      s.Response,
		Topology:      s.Topology,
		Order:         s.Order,
		CutoffHz:      s.CutoffHz,
		ImpedanceOhms: s.ImpedanceOhms,
		RippleDB:      chebyshevRipple(s),
		GValues:       g,
	}

	for i := 1; i <= s.Order; i++ {
		gi := g[i-1]
		// T: odd positions series C, even shunt L. Pi swaps the roles.
		if (s.Topology == core.T) == (i%2 == 1) {
			value := 1 / (gi * omega * s.ImpedanceOhms)
			if err := appendCapacitor(&d, value, true); err != nil {
				return core.LadderDesign{}, err
			}
		} else {
			value := s.ImpedanceOhms / (omega * gi)
			if err := appendInductor(&d, value, false); err != nil {
				return core.LadderDesign{}, err
			}
		}
	}

	return d, nil
}

func chebyshevRipple(s Spec) float64 {
	if s.Response == core.Chebyshev {
		return s.RippleDB
	}
	return 0
}

func appendCapacitor(d *core.LadderDesign, value float64, series bool) error {
	if err := checkValue("C", value); err != nil {
		return err
	}
	d.Capacitors = append(d.Capacitors, value)
	d.Elements = append(d.Elements, core.Element{
		Kind:   core.CapacitorElement,
		Name:   fmt.Sprintf("C%d", len(d.Capacitors)),
		Value:  value,
		Series: series,
	})
	return nil
}

func appendInductor(d *core.LadderDesign, value float64, series bool) error {
	if err := checkValue("L", value); err != nil {
		return err
	}
	d.Inductors = append(d.Inductors, value)
	d.Elements = append(d.Elements, core.Element{
		Kind:   core.InductorElement,
		Name:   fmt.Sprintf("L%d", len(d.Inductors)),
		Value:  value,
		Series: series,
	})
	return nil
}

// checkValue guards the positivity invariant after denormalization. Inputs
// are already validated, so a failure here is a defect, not a user error.
func checkValue(kind string, value float64) error {
	if value <= 0 || math.IsInf(value, 0) || math.IsNaN(value) {
		return fmt.Errorf("ladder: %s value %g is not positive finite: %w", kind, value, core.ErrComputation)
	}
	return nil
}

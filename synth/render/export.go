package render

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-lc/synth/core"
	"github.com/cwbudde/algo-lc/synth/response"
)

type componentJSON struct {
	Name  string  `json:"name"`
	Value float64 `json:"value_farads,omitempty"`
	Henry float64 `json:"value_henries,omitempty"`
}

type ladderJSON struct {
	FilterType  string          `json:"filter_type"`
	Category    string          `json:"category"`
	Topology    string          `json:"topology"`
	CutoffHz    float64         `json:"cutoff_frequency_hz"`
	Impedance   float64         `json:"impedance_ohms"`
	Order       int             `json:"order"`
	RippleDB    float64         `json:"ripple_db,omitempty"`
	Capacitors  []componentJSON `json:"capacitors"`
	Inductors   []componentJSON `json:"inductors"`
}

// LadderJSON exports a ladder design as an indented JSON document.
func LadderJSON(d core.LadderDesign) (string, error) {
	out := ladderJSON{
		FilterType: d.Response.String(),
		Category:   d.Category.String(),
		Topology:   d.Topology.String(),
		CutoffHz:   d.CutoffHz,
		Impedance:  d.ImpedanceOhms,
		Order:      d.Order,
	}
	if d.Response == core.Chebyshev {
		out.RippleDB = d.RippleDB
	}
	for i, v := range d.Capacitors {
		out.Capacitors = append(out.Capacitors, componentJSON{Name: fmt.Sprintf("C%d", i+1), Value: v})
	}
	for i, v := range d.Inductors {
		out.Inductors = append(out.Inductors, componentJSON{Name: fmt.Sprintf("L%d", i+1), Henry: v})
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type coupledJSON struct {
	FilterType     string    `json:"filter_type"`
	Coupling       string    `json:"coupling"`
	CenterHz       float64   `json:"center_frequency_hz"`
	BandwidthHz    float64   `json:"bandwidth_hz"`
	LowHz          float64   `json:"lower_cutoff_hz"`
	HighHz         float64   `json:"upper_cutoff_hz"`
	FractionalBW   float64   `json:"fractional_bandwidth"`
	Impedance      float64   `json:"impedance_ohms"`
	Resonators     int       `json:"resonators"`
	RippleDB       float64   `json:"ripple_db,omitempty"`
	TankInductorH  float64   `json:"tank_inductor_henries"`
	TankCapacitors []float64 `json:"tank_capacitors_farads"`
	CouplingCaps   []float64 `json:"coupling_capacitors_farads"`
	ExternalQIn    float64   `json:"external_q_in"`
	ExternalQOut   float64   `json:"external_q_out"`
	MinimumQ       float64   `json:"minimum_q"`
	Warnings       []string  `json:"warnings,omitempty"`
}

// CoupledJSON exports a coupled resonator design as an indented JSON document.
func CoupledJSON(d core.CoupledDesign) (string, error) {
	out := coupledJSON{
		FilterType:     d.Response.String(),
		Coupling:       d.Coupling.String(),
		CenterHz:       d.CenterHz,
		BandwidthHz:    d.BandwidthHz,
		LowHz:          d.LowHz,
		HighHz:         d.HighHz,
		FractionalBW:   d.FractionalBW,
		Impedance:      d.ImpedanceOhms,
		Resonators:     d.Resonators,
		TankInductorH:  d.TankInductor,
		TankCapacitors: d.TankCapacitors,
		CouplingCaps:   d.CouplingCapacitors,
		ExternalQIn:    d.ExternalQIn,
		ExternalQOut:   d.ExternalQOut,
		MinimumQ:       d.MinimumQ,
		Warnings:       d.Warnings,
	}
	if d.Response == core.Chebyshev {
		out.RippleDB = d.RippleDB
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// LadderCSV exports the component list as CSV with unit-scaled values.
func LadderCSV(d core.LadderDesign) string {
	var b strings.Builder
	b.WriteString("Component,Value,Unit\n")
	primaryFirst := d.Category == core.Lowpass

	writeCaps := func() {
		for i, v := range d.Capacitors {
			val, unit := SplitValueUnit(Capacitance(v))
			fmt.Fprintf(&b, "C%d,%s,%s\n", i+1, val, unit)
		}
	}
	writeInds := func() {
		for i, v := range d.Inductors {
			val, unit := SplitValueUnit(Inductance(v))
			fmt.Fprintf(&b, "L%d,%s,%s\n", i+1, val, unit)
		}
	}
	if primaryFirst {
		writeCaps()
		writeInds()
	} else {
		writeInds()
		writeCaps()
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// CoupledCSV exports the resonator components as CSV with unit-scaled values.
func CoupledCSV(d core.CoupledDesign) string {
	var b strings.Builder
	b.WriteString("Component,Value,Unit\n")
	for i := 0; i < d.Resonators; i++ {
		val, unit := SplitValueUnit(Inductance(d.TankInductor))
		fmt.Fprintf(&b, "L%d,%s,%s\n", i+1, val, unit)
	}
	for i, v := range d.TankCapacitors {
		val, unit := SplitValueUnit(Capacitance(v))
		fmt.Fprintf(&b, "Cp%d,%s,%s\n", i+1, val, unit)
	}
	for i, v := range d.CouplingCapacitors {
		val, unit := SplitValueUnit(Capacitance(v))
		fmt.Fprintf(&b, "Cs%d%d,%s,%s\n", i+1, i+2, val, unit)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

type sweepJSON struct {
	FilterType  string       `json:"filter_type"`
	CenterHz    float64      `json:"f0_hz,omitempty"`
	CutoffHz    float64      `json:"cutoff_hz,omitempty"`
	BandwidthHz float64      `json:"bandwidth_hz,omitempty"`
	Order       int          `json:"order"`
	RippleDB    float64      `json:"ripple_db,omitempty"`
	Data        []sweepPoint `json:"data"`
}

type sweepPoint struct {
	FrequencyHz float64 `json:"frequency_hz"`
	MagnitudeDB float64 `json:"magnitude_db"`
}

// SweepJSON exports response points as an indented JSON document. Either
// cutoffHz or centerHz/bandwidthHz should be set depending on the design.
func SweepJSON(points []response.Point, filterType string, order int,
	cutoffHz, centerHz, bandwidthHz, rippleDB float64) (string, error) {
	out := sweepJSON{
		FilterType:  filterType,
		CutoffHz:    cutoffHz,
		CenterHz:    centerHz,
		BandwidthHz: bandwidthHz,
		Order:       order,
		RippleDB:    rippleDB,
	}
	for _, p := range points {
		out.Data = append(out.Data, sweepPoint{
			FrequencyHz: p.FrequencyHz,
			MagnitudeDB: math.Round(p.MagnitudeDB*100) / 100,
		})
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SweepCSV exports response points as two-column CSV.
func SweepCSV(points []response.Point) string {
	var b strings.Builder
	b.WriteString("frequency_hz,magnitude_db\n")
	for _, p := range points {
		fmt.Fprintf(&b, "%g,%.2f\n", p.FrequencyHz, p.MagnitudeDB)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

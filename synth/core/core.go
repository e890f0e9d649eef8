// Package core defines the shared data model for LC filter synthesis:
// response families, structural topologies, and the immutable design records
// produced by the synthesizer packages.
//
// A design record is created once from validated inputs and never mutated.
// Downstream consumers (response evaluation, E-series matching, rendering)
// treat it as read-only.
package core

// Response identifies the frequency-response family of a filter.
type Response int

const (
	// Butterworth is the maximally-flat amplitude response.
	Butterworth Response = iota
	// Chebyshev is the equal-ripple passband response.
	Chebyshev
	// Bessel is the maximally-flat group-delay response.
	Bessel
)

// String returns the lowercase family name.
func (r Response) String() string {
	switch r {
	case Butterworth:
		return "butterworth"
	case Chebyshev:
		return "chebyshev"
	case Bessel:
		return "bessel"
	}
	return "unknown"
}

// Category identifies the structural family of a ladder design.
type Category int

const (
	// Lowpass passes frequencies below the cutoff.
	Lowpass Category = iota
	// Highpass passes frequencies above the cutoff.
	Highpass
)

// String returns the lowercase category name.
func (c Category) String() string {
	if c == Highpass {
		return "highpass"
	}
	return "lowpass"
}

// Topology selects the ladder structural pattern.
//
// Pi begins and ends with shunt elements, T with series elements.
type Topology int

const (
	// Pi places shunt elements at odd structural positions.
	Pi Topology = iota
	// T places series elements at odd structural positions.
	T
)

// String returns the lowercase topology name.
func (t Topology) String() string {
	if t == T {
		return "t"
	}
	return "pi"
}

// Coupling selects the inter-resonator coupling style of a bandpass design.
type Coupling int

const (
	// TopCoupled places coupling capacitors in series between resonators.
	TopCoupled Coupling = iota
	// ShuntCoupled places coupling capacitors in parallel to ground.
	ShuntCoupled
)

// String returns the lowercase coupling name.
func (c Coupling) String() string {
	if c == ShuntCoupled {
		return "shunt"
	}
	return "top"
}

// ElementKind distinguishes capacitors from inductors in a ladder sequence.
type ElementKind int

const (
	// CapacitorElement is a capacitor (value in farads).
	CapacitorElement ElementKind = iota
	// InductorElement is an inductor (value in henries).
	InductorElement
)

// Element is one structural position of a ladder network.
type Element struct {
	Kind   ElementKind
	Name   string  // C1, L2, ... numbered within its kind
	Value  float64 // farads or henries
	Series bool    // true for series placement, false for shunt
}

// LadderDesign is the immutable result of a lowpass or highpass synthesis.
//
// Capacitors and Inductors hold the values in the order C1..Ck / L1..Lm;
// Elements holds the same values interleaved in structural position order.
type LadderDesign struct {
	Category      Category
	Response      Response
	Topology      Topology
	Order         int
	CutoffHz      float64
	ImpedanceOhms float64
	RippleDB      float64 // Chebyshev only, 0 otherwise

	GValues    []float64
	Capacitors []float64
	Inductors  []float64
	Elements   []Element
}

// CoupledDesign is the immutable result of a coupled-resonator bandpass
// synthesis.
//
// All resonators share the same tank inductor; TankCapacitors holds the
// per-resonator compensated values and CouplingCapacitors the n-1 values
// between adjacent resonators.
type CoupledDesign struct {
	Response      Response
	Coupling      Coupling
	Resonators    int
	CenterHz      float64
	BandwidthHz   float64
	LowHz         float64
	HighHz        float64
	FractionalBW  float64
	ImpedanceOhms float64
	RippleDB      float64 // Chebyshev only, 0 otherwise
	QSafety       float64

	GValues              []float64
	CouplingCoefficients []float64
	TankInductor         float64 // henries, identical for every resonator
	ResonantCapacitance  float64 // farads, before coupling compensation
	TankCapacitors       []float64
	CouplingCapacitors   []float64
	ExternalQIn          float64
	ExternalQOut         float64
	MinimumQ             float64 // advisory threshold, never an error
	Warnings             []string
}

// Package eseries matches computed component values against the IEC 60063
// preferred number series (E12, E24, E96).
//
// For every request the matcher reports both the closest single standard
// value and the closest two-value parallel combination; choosing between
// them is left to the caller. Capacitors combine additively in parallel,
// inductors harmonically.
package eseries

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lc/synth/core"
)

// Series identifies a preferred value series.
type Series int

const (
	// E12 is the 10% tolerance series (12 values per decade).
	E12 Series = iota
	// E24 is the 5% tolerance series (24 values per decade).
	E24
	// E96 is the 1% tolerance series (96 values per decade).
	E96
)

// String returns the series name.
func (s Series) String() string {
	switch s {
	case E12:
		return "E12"
	case E24:
		return "E24"
	case E96:
		return "E96"
	}
	return "unknown"
}

// ComponentKind selects the parallel combination rule.
type ComponentKind int

const (
	// Capacitor values add in parallel.
	Capacitor ComponentKind = iota
	// Inductor values combine harmonically in parallel.
	Inductor
)

// RatioLimit is the largest allowed ratio between the two values of a
// parallel combination. Wildly unequal pairs are impractical: the smaller
// part contributes less than its own tolerance.
const RatioLimit = 10.0

// Errors returned by Match.
var (
	ErrNonPositive   = fmt.Errorf("eseries: value must be positive: %w", core.ErrDomain)
	ErrUnknownSeries = fmt.Errorf("eseries: unknown series: %w", core.ErrValidation)
	ErrUnknownKind   = fmt.Errorf("eseries: unknown component kind: %w", core.ErrValidation)
)

// Single is a one-component match.
type Single struct {
	Value    float64
	ErrorPct float64 // signed, relative to the requested value
}

// Parallel is a two-component parallel combination match.
type Parallel struct {
	ValueA   float64
	ValueB   float64
	Combined float64
	ErrorPct float64 // signed, relative to the requested value
}

// Result is the outcome of matching one requested value.
type Result struct {
	Requested float64
	Series    Series
	Single    Single
	Parallel  *Parallel // nil when no pair satisfies the ratio limit
}

// Match finds both the closest single standard value and the closest
// parallel pair for a component value. kind selects the combination rule.
func Match(value float64, series Series, kind ComponentKind) (Result, error) {
	if value <= 0 || math.IsInf(value, 0) || math.IsNaN(value) {
		return Result{}, ErrNonPositive
	}

	mantissas, err := seriesTable(series)
	if err != nil {
		return Result{}, err
	}

	if kind != Capacitor && kind != Inductor {
		return Result{}, ErrUnknownKind
	}

	candidates := expandDecades(mantissas, value)

	m := Result{
		Requested: value,
		Series:    series,
		Single:    closestSingle(candidates, value),
		Parallel:  closestParallel(candidates, value, kind),
	}
	return m, nil
}

// closestSingle scans the candidate values for the smallest relative error.
func closestSingle(candidates []float64, target float64) Single {
	best := Single{ErrorPct: math.Inf(1)}
	for _, c := range candidates {
		errPct := errorPct(c, target)
		if math.Abs(errPct) < math.Abs(best.ErrorPct) {
			best = Single{Value: c, ErrorPct: errPct}
		}
	}
	return best
}

// closestParallel runs the bounded exhaustive pair search. Ordered pairs
// (a <= b) within the ratio limit are combined by the kind's rule and the
// pair with the smallest relative error wins.
func closestParallel(candidates []float64, target float64, kind ComponentKind) *Parallel {
	var best *Parallel
	bestErr := math.Inf(1)

	for i, a := range candidates {
		for _, b := range candidates[i:] {
			if b/a > RatioLimit {
				break
			}

			var combined float64
			if kind == Capacitor {
				combined = a + b
			} else {
				combined = a * b / (a + b)
			}

			errPct := errorPct(combined, target)
			if math.Abs(errPct) < bestErr {
				bestErr = math.Abs(errPct)
				best = &Parallel{ValueA: a, ValueB: b, Combined: combined, ErrorPct: errPct}
			}
		}
	}

	return best
}

// expandDecades materializes the series around the target's decade. One
// decade below through two above covers every reachable single value and
// parallel combination: an additive pair at most doubles the larger value
// and a harmonic pair at most halves the smaller.
func expandDecades(mantissas []float64, target float64) []float64 {
	decade := int(math.Floor(math.Log10(target)))

	out := make([]float64, 0, 4*len(mantissas))
	for d := decade - 1; d <= decade+2; d++ {
		scale := math.Pow(10, float64(d))
		for _, m := range mantissas {
			out = append(out, m*scale)
		}
	}
	return out
}

func errorPct(actual, target float64) float64 {
	return (actual - target) / target * 100
}

func seriesTable(s Series) ([]float64, error) {
	switch s {
	case E12:
		return e12[:], nil
	case E24:
		return e24[:], nil
	case E96:
		return e96[:], nil
	}
	return nil, ErrUnknownSeries
}

// ParseSeries resolves a series name ("E12", "e24", ...).
func ParseSeries(name string) (Series, error) {
	switch name {
	case "E12", "e12":
		return E12, nil
	case "E24", "e24":
		return E24, nil
	case "E96", "e96":
		return E96, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownSeries)
}

// IEC 60063 mantissa tables, one decade each.
var (
	e12 = [...]float64{1.0, 1.2, 1.5, 1.8, 2.2, 2.7, 3.3, 3.9, 4.7, 5.6, 6.8, 8.2}

	e24 = [...]float64{
		1.0, 1.1, 1.2, 1.3, 1.5, 1.6, 1.8, 2.0, 2.2, 2.4, 2.7, 3.0,
		3.3, 3.6, 3.9, 4.3, 4.7, 5.1, 5.6, 6.2, 6.8, 7.5, 8.2, 9.1,
	}

	e96 = [...]float64{
		1.00, 1.02, 1.05, 1.07, 1.10, 1.13, 1.15, 1.18, 1.21, 1.24,
		1.27, 1.30, 1.33, 1.37, 1.40, 1.43, 1.47, 1.50, 1.54, 1.58,
		1.62, 1.65, 1.69, 1.74, 1.78, 1.82, 1.87, 1.91, 1.96, 2.00,
		2.05, 2.10, 2.15, 2.21, 2.26, 2.32, 2.37, 2.43, 2.49, 2.55,
		2.61, 2.67, 2.74, 2.80, 2.87, 2.94, 3.01, 3.09, 3.16, 3.24,
		3.32, 3.40, 3.48, 3.57, 3.65, 3.74, 3.83, 3.92, 4.02, 4.12,
		4.22, 4.32, 4.42, 4.53, 4.64, 4.75, 4.87, 4.99, 5.11, 5.23,
		5.36, 5.49, 5.62, 5.76, 5.90, 6.04, 6.19, 6.34, 6.49, 6.65,
		6.81, 6.98, 7.15, 7.32, 7.50, 7.68, 7.87, 8.06, 8.25, 8.45,
		8.66, 8.87, 9.09, 9.31, 9.53, 9.76,
	}
)

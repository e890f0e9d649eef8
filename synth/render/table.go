package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-lc/synth/core"
	"github.com/cwbudde/algo-lc/synth/eseries"
)

// TableOptions controls the full table output.
type TableOptions struct {
	Raw     bool            // scientific notation instead of engineering units
	Series  *eseries.Series // E-series to match against, nil disables matching
	Diagram bool            // include the ASCII schematic
}

const headerRule = "=================================================="

// LadderTable writes the full human-readable report for a ladder design:
// header, optional schematic, component table and E-series suggestions.
func LadderTable(w io.Writer, d core.LadderDesign, opts TableOptions) error {
	title := fmt.Sprintf("%s %s %s Filter",
		titleCase(d.Response.String()), titleCase(d.Topology.String()), titleCase(d.Category.String()))
	fmt.Fprintf(w, "\n%s\n%s\n", title, headerRule)
	fmt.Fprintf(w, "Cutoff Frequency:    %s\n", Frequency(d.CutoffHz))
	fmt.Fprintf(w, "Impedance Z0:        %s\n", Impedance(d.ImpedanceOhms))
	if d.Response == core.Chebyshev {
		fmt.Fprintf(w, "Ripple:              %g dB\n", d.RippleDB)
	}
	fmt.Fprintf(w, "Order:               %d\n%s\n", d.Order, headerRule)

	if opts.Diagram {
		fmt.Fprintf(w, "\n%s\n", LadderDiagram(d))
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\nComponent\tValue\tRole\t\n")
	for _, e := range d.Elements {
		role := "shunt"
		if e.Series {
			role = "series"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", e.Name, elementValue(e, opts.Raw), role)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if opts.Series != nil {
		if err := writeMatches(w, d.Elements, *opts.Series); err != nil {
			return err
		}
	}
	return nil
}

// CoupledTable writes the full report for a coupled resonator design.
func CoupledTable(w io.Writer, d core.CoupledDesign, opts TableOptions) error {
	title := fmt.Sprintf("%s Coupled Resonator Bandpass Filter", titleCase(d.Response.String()))
	fmt.Fprintf(w, "\n%s\n%s\n", title, headerRule)
	fmt.Fprintf(w, "Coupling:            %s\n", d.Coupling)
	fmt.Fprintf(w, "Center Frequency f0: %s\n", Frequency(d.CenterHz))
	fmt.Fprintf(w, "Lower Cutoff fl:     %s\n", Frequency(d.LowHz))
	fmt.Fprintf(w, "Upper Cutoff fh:     %s\n", Frequency(d.HighHz))
	fmt.Fprintf(w, "Bandwidth BW:        %s\n", Frequency(d.BandwidthHz))
	fmt.Fprintf(w, "Fractional BW:       %.2f%%\n", d.FractionalBW*100)
	fmt.Fprintf(w, "Impedance Z0:        %s\n", Impedance(d.ImpedanceOhms))
	if d.Response == core.Chebyshev {
		fmt.Fprintf(w, "Ripple:              %g dB\n", d.RippleDB)
	}
	fmt.Fprintf(w, "Resonators:          %d\n", d.Resonators)
	fmt.Fprintf(w, "External Q:          %.2f (in) / %.2f (out)\n", d.ExternalQIn, d.ExternalQOut)
	fmt.Fprintf(w, "Minimum Q:           %.1f\n%s\n", d.MinimumQ, headerRule)

	if opts.Diagram {
		fmt.Fprintf(w, "\n%s\n", CoupledDiagram(d))
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\nComponent\tValue\t\n")
	for i := 0; i < d.Resonators; i++ {
		fmt.Fprintf(tw, "L%d\t%s\t\n", i+1, inductanceValue(d.TankInductor, opts.Raw))
		fmt.Fprintf(tw, "Cp%d\t%s\t\n", i+1, capacitanceValue(d.TankCapacitors[i], opts.Raw))
	}
	for i, c := range d.CouplingCapacitors {
		fmt.Fprintf(tw, "Cs%d%d\t%s\t\n", i+1, i+2, capacitanceValue(c, opts.Raw))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if opts.Series != nil {
		if err := writeCoupledMatches(w, d, *opts.Series); err != nil {
			return err
		}
	}
	return nil
}

// LadderQuiet returns the minimal report, one "name: value" line per
// component. Capacitors lead for lowpass designs, inductors for highpass.
func LadderQuiet(d core.LadderDesign, raw bool) string {
	var b strings.Builder
	writeCaps := func() {
		for i, v := range d.Capacitors {
			fmt.Fprintf(&b, "C%d: %s\n", i+1, capacitanceValue(v, raw))
		}
	}
	writeInds := func() {
		for i, v := range d.Inductors {
			fmt.Fprintf(&b, "L%d: %s\n", i+1, inductanceValue(v, raw))
		}
	}
	if d.Category == core.Lowpass {
		writeCaps()
		writeInds()
	} else {
		writeInds()
		writeCaps()
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// CoupledQuiet returns the minimal report for a coupled resonator design.
func CoupledQuiet(d core.CoupledDesign, raw bool) string {
	var b strings.Builder
	for i, v := range d.TankCapacitors {
		fmt.Fprintf(&b, "Cp%d: %s\n", i+1, capacitanceValue(v, raw))
	}
	for i := 0; i < d.Resonators; i++ {
		fmt.Fprintf(&b, "L%d: %s\n", i+1, inductanceValue(d.TankInductor, raw))
	}
	for i, v := range d.CouplingCapacitors {
		fmt.Fprintf(&b, "Cs%d%d: %s\n", i+1, i+2, capacitanceValue(v, raw))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// writeMatches appends E-series suggestions for every ladder element. The
// parallel suggestion only shows when it beats the single value.
func writeMatches(w io.Writer, elements []core.Element, series eseries.Series) error {
	fmt.Fprintf(w, "\nNearest %s values:\n", series)
	for _, e := range elements {
		kind := eseries.Capacitor
		format := Capacitance
		if e.Kind == core.InductorElement {
			kind = eseries.Inductor
			format = Inductance
		}
		if err := writeMatch(w, e.Name, e.Value, series, kind, format); err != nil {
			return err
		}
	}
	return nil
}

func writeCoupledMatches(w io.Writer, d core.CoupledDesign, series eseries.Series) error {
	fmt.Fprintf(w, "\nNearest %s values:\n", series)
	if err := writeMatch(w, "L", d.TankInductor, series, eseries.Inductor, Inductance); err != nil {
		return err
	}
	for i, c := range d.TankCapacitors {
		name := fmt.Sprintf("Cp%d", i+1)
		if err := writeMatch(w, name, c, series, eseries.Capacitor, Capacitance); err != nil {
			return err
		}
	}
	for i, c := range d.CouplingCapacitors {
		name := fmt.Sprintf("Cs%d%d", i+1, i+2)
		if err := writeMatch(w, name, c, series, eseries.Capacitor, Capacitance); err != nil {
			return err
		}
	}
	return nil
}

func writeMatch(w io.Writer, name string, value float64, series eseries.Series,
	kind eseries.ComponentKind, format func(float64) string) error {
	m, err := eseries.Match(value, series, kind)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s:\n  Nearest Std:  %s (%s%%)\n",
		name, format(m.Single.Value), signedPct(m.Single.ErrorPct))
	if p := m.Parallel; p != nil && absFloat(p.ErrorPct) < absFloat(m.Single.ErrorPct) {
		fmt.Fprintf(w, "  Parallel Std: %s || %s (%s%%)\n",
			format(p.ValueA), format(p.ValueB), signedPct(p.ErrorPct))
	}
	return nil
}

func signedPct(pct float64) string {
	if pct > 0 {
		return fmt.Sprintf("+%.1f", pct)
	}
	return fmt.Sprintf("%.1f", pct)
}

func elementValue(e core.Element, raw bool) string {
	if e.Kind == core.InductorElement {
		return inductanceValue(e.Value, raw)
	}
	return capacitanceValue(e.Value, raw)
}

func capacitanceValue(v float64, raw bool) string {
	if raw {
		return fmt.Sprintf("%.6e F", v)
	}
	return Capacitance(v)
}

func inductanceValue(v float64, raw bool) string {
	if raw {
		return fmt.Sprintf("%.6e H", v)
	}
	return Inductance(v)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Package render turns synthesized designs and frequency sweeps into
// terminal output: unit-scaled tables, ASCII schematics, response plots
// and machine-readable exports.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type unitStep struct {
	threshold float64
	suffix    string
}

func formatWithUnits(value float64, units []unitStep, format string) string {
	for _, u := range units {
		if math.Abs(value) >= u.threshold {
			return fmt.Sprintf(format+" %s", value/u.threshold, u.suffix)
		}
	}
	last := units[len(units)-1]
	return fmt.Sprintf(format+" %s", value/last.threshold, last.suffix)
}

// Frequency formats a frequency in Hz with an engineering suffix.
func Frequency(hz float64) string {
	return formatWithUnits(hz, []unitStep{
		{1e9, "GHz"}, {1e6, "MHz"}, {1e3, "kHz"}, {1, "Hz"},
	}, "%.4g")
}

// Capacitance formats a capacitance in farads with an engineering suffix.
func Capacitance(farads float64) string {
	return formatWithUnits(farads, []unitStep{
		{1e-3, "mF"}, {1e-6, "µF"}, {1e-9, "nF"}, {1e-12, "pF"},
	}, "%.2f")
}

// Inductance formats an inductance in henries with an engineering suffix.
func Inductance(henries float64) string {
	return formatWithUnits(henries, []unitStep{
		{1, "H"}, {1e-3, "mH"}, {1e-6, "µH"}, {1e-9, "nH"},
	}, "%.2f")
}

// Impedance formats an impedance in ohms with an engineering suffix.
func Impedance(ohms float64) string {
	return formatWithUnits(ohms, []unitStep{
		{1e6, "MΩ"}, {1e3, "kΩ"}, {1, "Ω"},
	}, "%.4g")
}

// compactFrequency is the short form used in plot axis labels.
func compactFrequency(hz float64) string {
	switch {
	case hz >= 1e9:
		return trimFloat(hz/1e9) + "G"
	case hz >= 1e6:
		return trimFloat(hz/1e6) + "M"
	case hz >= 1e3:
		return trimFloat(hz/1e3) + "k"
	}
	return trimFloat(hz)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 3, 64)
}

// SplitValueUnit separates a formatted quantity into its numeric part and
// unit suffix, for CSV columns.
func SplitValueUnit(formatted string) (value, unit string) {
	i := strings.LastIndexByte(formatted, ' ')
	if i < 0 {
		return formatted, ""
	}
	return formatted[:i], formatted[i+1:]
}

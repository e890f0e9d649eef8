package render

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-lc/synth/core"
)

// placeAt writes each element centered at its position into a blank line.
func placeAt(positions []int, elements []string, lineLen int) string {
	chars := make([]rune, lineLen)
	for i := range chars {
		chars[i] = ' '
	}
	for i, pos := range positions {
		if i >= len(elements) {
			break
		}
		elem := []rune(elements[i])
		start := pos - len(elem)/2
		for j, ch := range elem {
			if start+j >= 0 && start+j < lineLen {
				chars[start+j] = ch
			}
		}
	}
	return string(chars)
}

func repeated(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}

// junctionColumns returns the rune columns of every '┬' in the line.
func junctionColumns(line string) []int {
	var cols []int
	for i, r := range []rune(line) {
		if r == '┬' {
			cols = append(cols, i)
		}
	}
	return cols
}

// LadderDiagram renders an ASCII schematic of a ladder design. Shunt
// elements hang off the signal line to ground, series elements sit in
// boxes on the line itself.
func LadderDiagram(d core.LadderDesign) string {
	var series, shunt []core.Element
	for _, e := range d.Elements {
		if e.Series {
			series = append(series, e)
		} else {
			shunt = append(shunt, e)
		}
	}
	if d.Topology == core.Pi {
		return piDiagram(series, shunt)
	}
	return tDiagram(series, shunt)
}

// piDiagram draws the shunt-first ladder: IN ─┬─[S1]─┬─ ... OUT.
func piDiagram(series, shunt []core.Element) string {
	var main strings.Builder
	main.WriteString("  IN ───┬")
	for _, e := range series {
		fmt.Fprintf(&main, "───┤ %s ├───┬", e.Name)
	}
	mainLine := main.String()
	if len(shunt) > len(series) {
		mainLine += "─── OUT"
	} else {
		mainLine = strings.TrimSuffix(mainLine, "┬") + "─── OUT"
	}
	return diagramBody(mainLine, shunt)
}

// tDiagram draws the series-first ladder: IN ──[S1]──┬── ... OUT.
func tDiagram(series, shunt []core.Element) string {
	var main strings.Builder
	main.WriteString("  IN ───")
	for i, e := range series {
		if i > 0 {
			main.WriteString("───")
		}
		fmt.Fprintf(&main, "┤%s├", e.Name)
		if i < len(shunt) {
			main.WriteString("───┬")
		}
	}
	mainLine := main.String()
	if len(series) > len(shunt) {
		mainLine += "─── OUT"
	} else {
		mainLine = strings.TrimSuffix(mainLine, "───┬") + "───┬─── OUT"
	}
	return diagramBody(mainLine, shunt)
}

// diagramBody appends the shunt legs and ground rail under the signal line.
func diagramBody(mainLine string, shunt []core.Element) string {
	cols := junctionColumns(mainLine)
	lineLen := len([]rune(mainLine))
	n := len(shunt)

	labels := make([]string, n)
	for i, e := range shunt {
		labels[i] = e.Name
	}

	lines := []string{
		mainLine,
		placeAt(cols, repeated("│", n), lineLen),
		placeAt(cols, repeated("===", n), lineLen),
		placeAt(cols, labels, lineLen),
		placeAt(cols, repeated("│", n), lineLen),
		placeAt(cols, repeated("GND", n), lineLen),
	}
	return strings.Join(lines, "\n")
}

// CoupledDiagram renders the resonator chain of a coupled bandpass design.
// Top coupling puts the coupling capacitors in the signal line between
// tanks; shunt coupling joins the tank bottoms through a coupling rail.
func CoupledDiagram(d core.CoupledDesign) string {
	if d.Coupling == core.ShuntCoupled {
		return shuntCoupledDiagram(d.Resonators)
	}
	return topCoupledDiagram(d.Resonators)
}

func topCoupledDiagram(n int) string {
	const segWidth = 15
	mainLine := "  IN ──────┬" + strings.Repeat("──────┤├──────┬", n-1) + "────── OUT"
	lineLen := len([]rune(mainLine))

	tankCols := make([]int, n)
	for i := range tankCols {
		tankCols[i] = 11 + i*segWidth
	}

	couplingCols := make([]int, n-1)
	couplingLabels := make([]string, n-1)
	for i := range couplingCols {
		couplingCols[i] = (tankCols[i] + tankCols[i+1]) / 2
		couplingLabels[i] = fmt.Sprintf("Cs%d%d", i+1, i+2)
	}

	lines := []string{
		placeAt(couplingCols, couplingLabels, lineLen),
		mainLine,
	}
	lines = append(lines, tankStack(tankCols, n, lineLen)...)
	lines = append(lines,
		placeAt(tankCols, repeated("   │   ", n), lineLen),
		placeAt(tankCols, repeated("  GND  ", n), lineLen),
	)
	return strings.Join(lines, "\n")
}

func shuntCoupledDiagram(n int) string {
	const segWidth = 13
	mainLine := "  IN ──────┬" + strings.Repeat("────────────┬", n-1) + "────── OUT"
	lineLen := len([]rune(mainLine))

	tankCols := make([]int, n)
	for i := range tankCols {
		tankCols[i] = 11 + i*segWidth
	}

	lines := []string{mainLine}
	lines = append(lines, tankStack(tankCols, n, lineLen)...)
	lines = append(lines, placeAt(tankCols, repeated("   │   ", n), lineLen))

	// Coupling rail with labels between adjacent tank bottoms.
	rail := make([]rune, lineLen)
	for i := range rail {
		rail[i] = ' '
	}
	for i, col := range tankCols {
		switch {
		case i == 0:
			rail[col] = '├'
		case i == n-1:
			rail[col] = '┤'
		default:
			rail[col] = '┼'
		}
		if i < n-1 {
			next := tankCols[i+1]
			for j := col + 1; j < next; j++ {
				rail[j] = '─'
			}
			label := []rune(fmt.Sprintf("Cs%d%d", i+1, i+2))
			start := (col+next)/2 - len(label)/2
			for j, ch := range label {
				if start+j >= 0 && start+j < lineLen {
					rail[start+j] = ch
				}
			}
		}
	}
	lines = append(lines, string(rail))

	center := tankCols[n/2]
	lines = append(lines,
		placeAt([]int{center}, []string{"│"}, lineLen),
		placeAt([]int{center}, []string{"GND"}, lineLen),
	)
	return strings.Join(lines, "\n")
}

// tankStack draws the parallel LC boxes hanging off the signal line.
func tankStack(tankCols []int, n, lineLen int) []string {
	tankLabels := make([]string, n)
	for i := range tankLabels {
		tankLabels[i] = fmt.Sprintf("Cp%-2d L%d", i+1, i+1)
	}
	return []string{
		placeAt(tankCols, repeated("   │   ", n), lineLen),
		placeAt(tankCols, repeated("┌──┴──┐", n), lineLen),
		placeAt(tankCols, repeated("│     │", n), lineLen),
		placeAt(tankCols, tankLabels, lineLen),
		placeAt(tankCols, repeated("│     │", n), lineLen),
		placeAt(tankCols, repeated("└──┬──┘", n), lineLen),
	}
}

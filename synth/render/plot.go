package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-lc/synth/core"
	"github.com/cwbudde/algo-lc/synth/response"
)

// PlotOptions controls the ASCII plot dimensions.
type PlotOptions struct {
	Width  int // total width in characters, minimum 40
	Height int // total height in lines, minimum 6
	Title  string
}

func (o *PlotOptions) normalize(defaultTitle string, defaultHeight int) {
	if o.Width < 40 {
		o.Width = 60
	}
	if o.Height < 6 {
		o.Height = defaultHeight
	}
	if o.Title == "" {
		o.Title = defaultTitle
	}
}

// crossing3DB finds the interpolated frequency where the response crosses
// -3 dB. For lowpass responses the crossing falls, for highpass it rises.
func crossing3DB(points []response.Point, rising bool) (float64, bool) {
	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		var hit bool
		if rising {
			hit = a.MagnitudeDB < -3 && b.MagnitudeDB >= -3
		} else {
			hit = a.MagnitudeDB >= -3 && b.MagnitudeDB < -3
		}
		if !hit {
			continue
		}
		if a.MagnitudeDB == b.MagnitudeDB {
			if rising {
				return b.FrequencyHz, true
			}
			return a.FrequencyHz, true
		}
		ratio := (-3 - a.MagnitudeDB) / (b.MagnitudeDB - a.MagnitudeDB)
		lf1 := math.Log10(a.FrequencyHz)
		lf2 := math.Log10(b.FrequencyHz)
		return math.Pow(10, lf1+ratio*(lf2-lf1)), true
	}
	return 0, false
}

// LadderPlot renders an adaptive ASCII magnitude plot for a ladder design
// response. The dB range follows the data, a dashed -3 dB reference line is
// drawn, and the interpolated -3 dB crossing is marked when it differs from
// the nominal cutoff by more than one percent.
func LadderPlot(d core.LadderDesign, points []response.Point, opts PlotOptions) string {
	opts.normalize("Frequency Response (dB)", 12)
	if len(points) == 0 {
		return "No data to plot"
	}

	plotWidth := opts.Width - 8
	plotHeight := opts.Height - 2

	dbMax := 0.0
	dbMin := minDB(points) - 5
	if dbMin < -60 {
		dbMin = -60
	}
	dbRange := dbMax - dbMin
	if dbRange == 0 {
		dbRange = 1
	}

	freqMin := points[0].FrequencyHz
	freqMax := points[len(points)-1].FrequencyHz
	logMin := math.Log10(freqMin)
	logRange := math.Log10(freqMax) - logMin
	if logRange == 0 {
		logRange = 1
	}

	grid := blankGrid(plotHeight, plotWidth)

	row3dB := clampInt(int((dbMax+3)/dbRange*float64(plotHeight-1)), 0, plotHeight-1)

	f3dB, found := crossing3DB(points, d.Category == core.Highpass)
	col3dB := -1
	showMarker := false
	if found && f3dB > 0 {
		col3dB = clampInt(int((math.Log10(f3dB)-logMin)/logRange*float64(plotWidth-1)), 0, plotWidth-1)
		showMarker = math.Abs(f3dB-d.CutoffHz)/d.CutoffHz > 0.01
	}

	// dashed reference line
	for col := 0; col < plotWidth; col += 2 {
		grid[row3dB][col] = '·'
	}

	fillCurve(grid, points, logMin, logRange, dbMax, dbRange)

	if showMarker {
		grid[row3dB][col3dB] = '●'
	}

	var lines []string
	lines = append(lines, opts.Title, "")
	for row := 0; row < plotHeight; row++ {
		var label string
		switch {
		case row == row3dB:
			label = "   -3 │"
		case row == 0:
			label = rowLabel(dbMax)
		case row == plotHeight-1:
			label = rowLabel(dbMin)
		case row == plotHeight/2 && absInt(row-row3dB) > 1:
			label = rowLabel((dbMax + dbMin) / 2)
		default:
			label = "      │"
		}
		lines = append(lines, label+string(grid[row]))
	}

	// x axis with decade subdivision ticks around the cutoff
	axis := []rune(strings.Repeat("─", plotWidth))
	for decade := -1; decade <= 1; decade++ {
		for _, mult := range []float64{1, 2, 5} {
			tick := d.CutoffHz * mult * math.Pow(10, float64(decade))
			if tick < freqMin || tick > freqMax {
				continue
			}
			col := int((math.Log10(tick) - logMin) / logRange * float64(plotWidth-1))
			if col >= 0 && col < plotWidth {
				axis[col] = '┼'
			}
		}
	}
	if showMarker {
		axis[col3dB] = '▲'
	}
	lines = append(lines, "      +"+string(axis))

	lines = append(lines, frequencyAxisLabel(freqMin, freqMax, d.CutoffHz, logMin, logRange, plotWidth))
	if showMarker {
		label := compactFrequency(f3dB) + "(-3dB)"
		lines = append(lines, strings.Repeat(" ", 7+col3dB)+"▲"+label)
	}

	return strings.Join(lines, "\n")
}

// CoupledPlot renders an ASCII magnitude plot for a coupled bandpass
// response with the center frequency marked by a vertical rule.
func CoupledPlot(d core.CoupledDesign, points []response.Point, opts PlotOptions) string {
	opts.normalize("Frequency Response", 10)
	if len(points) == 0 {
		return "No data to plot"
	}

	width := opts.Width
	height := opts.Height

	dbMax := 0.0
	dbMin := minDB(points) - 5
	if dbMin < -60 {
		dbMin = -60
	}
	dbRange := dbMax - dbMin
	if dbRange == 0 {
		dbRange = 1
	}

	freqMin := points[0].FrequencyHz
	freqMax := points[len(points)-1].FrequencyHz
	logMin := math.Log10(freqMin)
	logRange := math.Log10(freqMax) - logMin
	if logRange == 0 {
		logRange = 1
	}

	grid := blankGrid(height, width)
	fillCurve(grid, points, logMin, logRange, dbMax, dbRange)

	row3dB := clampInt(int((dbMax+3)/dbRange*float64(height-1)), 0, height-1)
	for col := 0; col < width; col++ {
		if grid[row3dB][col] == ' ' {
			grid[row3dB][col] = '·'
		}
	}

	colF0 := clampInt(int((math.Log10(d.CenterHz)-logMin)/logRange*float64(width-1)), 0, width-1)
	for row := 0; row < height; row++ {
		if grid[row][colF0] == ' ' || grid[row][colF0] == '·' {
			grid[row][colF0] = '│'
		}
	}
	grid[row3dB][colF0] = '┼'

	var lines []string
	lines = append(lines, opts.Title, "")
	for row := 0; row < height; row++ {
		var label string
		switch row {
		case 0:
			label = rowLabel(0)
		case row3dB:
			label = "   -3 │"
		case height - 1:
			label = rowLabel(dbMin)
		default:
			label = "      │"
		}
		lines = append(lines, label+string(grid[row]))
	}
	lines = append(lines, "      +"+strings.Repeat("─", width))

	labels := []string{
		compactFrequency(freqMin),
		compactFrequency(d.LowHz),
		compactFrequency(d.CenterHz) + "(f0)",
		compactFrequency(d.HighHz),
		compactFrequency(freqMax),
	}
	lines = append(lines, "      "+strings.Join(labels, "   "))

	return strings.Join(lines, "\n")
}

func blankGrid(rows, cols int) [][]rune {
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}
	return grid
}

// fillCurve draws the response and fills downward to shade the stopband.
func fillCurve(grid [][]rune, points []response.Point, logMin, logRange, dbMax, dbRange float64) {
	height := len(grid)
	width := len(grid[0])
	for _, p := range points {
		if p.FrequencyHz <= 0 {
			continue
		}
		col := clampInt(int((math.Log10(p.FrequencyHz)-logMin)/logRange*float64(width-1)), 0, width-1)
		row := clampInt(int((dbMax-p.MagnitudeDB)/dbRange*float64(height-1)), 0, height-1)
		for r := row; r < height; r++ {
			grid[r][col] = '█'
		}
	}
}

func frequencyAxisLabel(freqMin, freqMax, cutoff, logMin, logRange float64, plotWidth int) string {
	low := compactFrequency(freqMin)
	high := compactFrequency(freqMax)
	fcLabel := compactFrequency(cutoff) + "(fc)"
	fcCol := int((math.Log10(cutoff) - logMin) / logRange * float64(plotWidth))

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", 7))
	b.WriteString(low)
	b.WriteString(strings.Repeat(" ", maxInt(0, fcCol-len(low)-len(fcLabel)/2)))
	b.WriteString(fcLabel)
	b.WriteString(strings.Repeat(" ", maxInt(0, plotWidth-fcCol-len(fcLabel)/2-len(high))))
	b.WriteString(high)
	return b.String()
}

func rowLabel(db float64) string {
	return fmt.Sprintf("%5.0f │", db)
}

func minDB(points []response.Point) float64 {
	min := math.Inf(1)
	for _, p := range points {
		if p.MagnitudeDB < min {
			min = p.MagnitudeDB
		}
	}
	return min
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package commands

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cwbudde/algo-lc/synth/core"
	"github.com/cwbudde/algo-lc/synth/coupled"
	"github.com/cwbudde/algo-lc/synth/eseries"
	"github.com/cwbudde/algo-lc/synth/ladder"
)

func TestResolveResponse(t *testing.T) {
	cases := map[string]core.Response{
		"butterworth": core.Butterworth,
		"bw":          core.Butterworth,
		"b":           core.Butterworth,
		"chebyshev":   core.Chebyshev,
		"ch":          core.Chebyshev,
		"c":           core.Chebyshev,
		"bessel":      core.Bessel,
		"bs":          core.Bessel,
	}
	for in, want := range cases {
		got, err := resolveResponse(in)
		if err != nil {
			t.Fatalf("resolveResponse(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("resolveResponse(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := resolveResponse("elliptic"); err == nil {
		t.Fatal("expected error for unknown response")
	}
}

func TestResolveTopologyAndCoupling(t *testing.T) {
	if got, _ := resolveTopology("pi"); got != core.Pi {
		t.Fatalf("pi = %v", got)
	}
	if got, _ := resolveTopology("t"); got != core.T {
		t.Fatalf("t = %v", got)
	}
	if _, err := resolveTopology("ladder"); err == nil {
		t.Fatal("expected error for unknown topology")
	}

	if got, _ := resolveCoupling("top"); got != core.TopCoupled {
		t.Fatalf("top = %v", got)
	}
	if got, _ := resolveCoupling("s"); got != core.ShuntCoupled {
		t.Fatalf("s = %v", got)
	}
	if _, err := resolveCoupling("magnetic"); err == nil {
		t.Fatal("expected error for unknown coupling")
	}
}

func TestLadderSpecFromFlags(t *testing.T) {
	flags := &ladderFlags{
		frequency:  "14.2MHz",
		impedance:  "50",
		filterType: "ch",
		topology:   "pi",
		order:      5,
		ripple:     0.5,
		format:     "table",
	}
	spec, err := ladderSpec(flags)
	if err != nil {
		t.Fatalf("ladderSpec: %v", err)
	}
	if spec.Response != core.Chebyshev || spec.Topology != core.Pi {
		t.Fatalf("spec = %+v", spec)
	}
	if spec.CutoffHz != 14.2e6 || spec.ImpedanceOhms != 50 {
		t.Fatalf("parsed values: f=%g z=%g", spec.CutoffHz, spec.ImpedanceOhms)
	}
}

func TestLadderSpecFromFlags_BadInput(t *testing.T) {
	flags := &ladderFlags{
		frequency:  "fast",
		impedance:  "50",
		filterType: "bw",
		topology:   "pi",
		format:     "table",
	}
	if _, err := ladderSpec(flags); err == nil {
		t.Fatal("expected parse error for bad frequency")
	}

	flags.frequency = "10MHz"
	flags.format = "xml"
	if _, err := ladderSpec(flags); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestBandpassSpecFromFlags(t *testing.T) {
	flags := &bandpassFlags{
		lowEdge:    "14MHz",
		highEdge:   "14.35MHz",
		impedance:  "50",
		filterType: "bw",
		coupling:   "shunt",
		resonators: 3,
		format:     "table",
	}
	spec, err := bandpassSpec(flags)
	if err != nil {
		t.Fatalf("bandpassSpec: %v", err)
	}
	if spec.Coupling != core.ShuntCoupled {
		t.Fatalf("coupling = %v", spec.Coupling)
	}
	if spec.LowHz != 14e6 || spec.HighHz != 14.35e6 {
		t.Fatalf("edges: %g / %g", spec.LowHz, spec.HighHz)
	}
	if spec.CenterHz != 0 || spec.BandwidthHz != 0 {
		t.Fatal("center form should stay unset when edges are given")
	}
}

func TestLadderSpecFromFlags_BadPlotData(t *testing.T) {
	flags := &ladderFlags{
		frequency:  "10MHz",
		impedance:  "50",
		filterType: "bw",
		topology:   "pi",
		order:      5,
		format:     "table",
		plotData:   "xml",
	}
	if _, err := ladderSpec(flags); err == nil || !strings.Contains(err.Error(), "plot data") {
		t.Fatalf("expected plot data format error, got %v", err)
	}
}

func TestLadderSweep(t *testing.T) {
	d, err := ladder.Lowpass(ladder.Spec{
		Response:      core.Butterworth,
		Topology:      core.Pi,
		Order:         5,
		CutoffHz:      10e6,
		ImpedanceOhms: 50,
	})
	if err != nil {
		t.Fatalf("Lowpass: %v", err)
	}

	s, err := ladderSweep(d, "json")
	if err != nil {
		t.Fatalf("ladderSweep: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["cutoff_hz"] != 10e6 {
		t.Fatalf("cutoff_hz = %v", decoded["cutoff_hz"])
	}
	if decoded["filter_type"] != "butterworth" {
		t.Fatalf("filter_type = %v", decoded["filter_type"])
	}

	csv, err := ladderSweep(d, "csv")
	if err != nil {
		t.Fatalf("ladderSweep csv: %v", err)
	}
	if !strings.HasPrefix(csv, "frequency_hz,magnitude_db\n") {
		t.Fatalf("csv header missing:\n%s", csv)
	}
}

func TestCoupledSweep(t *testing.T) {
	d, err := coupled.Design(coupled.Spec{
		Response:      core.Butterworth,
		Coupling:      core.TopCoupled,
		Resonators:    3,
		CenterHz:      10e6,
		BandwidthHz:   500e3,
		ImpedanceOhms: 50,
	})
	if err != nil {
		t.Fatalf("Design: %v", err)
	}

	s, err := coupledSweep(d, "json")
	if err != nil {
		t.Fatalf("coupledSweep: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["f0_hz"] != 10e6 {
		t.Fatalf("f0_hz = %v", decoded["f0_hz"])
	}
	if decoded["bandwidth_hz"] != 500e3 {
		t.Fatalf("bandwidth_hz = %v", decoded["bandwidth_hz"])
	}
}

func testWizard(input string) (*wizard, *bytes.Buffer) {
	var out bytes.Buffer
	return &wizard{in: bufio.NewScanner(strings.NewReader(input)), out: &out}, &out
}

func TestWizardPromptYesNo(t *testing.T) {
	w, _ := testWizard("\n")
	got, err := w.promptYesNo("Show frequency response plot?", true)
	if err != nil {
		t.Fatalf("promptYesNo: %v", err)
	}
	if !got {
		t.Fatal("empty input should take the default")
	}

	w, _ = testWizard("n\n")
	if got, _ = w.promptYesNo("Show frequency response plot?", true); got {
		t.Fatal("n should answer false")
	}

	// invalid answers retry until one parses
	w, out := testWizard("maybe\nyes\n")
	if got, _ = w.promptYesNo("Show frequency response plot?", false); !got {
		t.Fatal("yes should answer true")
	}
	if !strings.Contains(out.String(), "Invalid") {
		t.Fatal("expected a retry message")
	}
}

func TestWizardPromptSweepExport(t *testing.T) {
	cases := map[string]string{
		"\n":     "",
		"none\n": "",
		"json\n": "json",
		"CSV\n":  "csv",
	}
	for input, want := range cases {
		w, _ := testWizard(input)
		got, err := w.promptSweepExport()
		if err != nil {
			t.Fatalf("promptSweepExport(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("promptSweepExport(%q) = %q, want %q", input, got, want)
		}
	}

	w, out := testWizard("xml\ncsv\n")
	got, err := w.promptSweepExport()
	if err != nil {
		t.Fatalf("promptSweepExport: %v", err)
	}
	if got != "csv" {
		t.Fatalf("after retry = %q, want csv", got)
	}
	if !strings.Contains(out.String(), "Invalid") {
		t.Fatal("expected a retry message")
	}
}

func TestResolveSeries(t *testing.T) {
	got, err := resolveSeries("E96")
	if err != nil {
		t.Fatalf("resolveSeries: %v", err)
	}
	if got != eseries.E96 {
		t.Fatalf("series = %v", got)
	}
	if _, err := resolveSeries("E48"); err == nil || !strings.Contains(err.Error(), "unknown series") {
		t.Fatalf("expected unknown series error, got %v", err)
	}
}

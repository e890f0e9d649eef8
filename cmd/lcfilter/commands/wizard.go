package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lc/internal/parse"
	"github.com/cwbudde/algo-lc/synth/core"
	"github.com/cwbudde/algo-lc/synth/coupled"
	"github.com/cwbudde/algo-lc/synth/ladder"
)

func wizardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Interactive guided filter design",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := &wizard{in: bufio.NewScanner(os.Stdin), out: os.Stdout}
			return w.run()
		},
	}
}

type wizard struct {
	in  *bufio.Scanner
	out io.Writer
}

// prompt reads one line, falling back to the default on empty input.
// io.EOF aborts the wizard.
func (w *wizard) prompt(message, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(w.out, "%s [%s]: ", message, defaultValue)
	} else {
		fmt.Fprintf(w.out, "%s: ", message)
	}
	if !w.in.Scan() {
		if err := w.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	value := strings.TrimSpace(w.in.Text())
	if value == "" {
		value = defaultValue
	}
	return value, nil
}

// promptYesNo asks a y/n question with a default answer.
func (w *wizard) promptYesNo(message string, defaultYes bool) (bool, error) {
	def := "y"
	if !defaultYes {
		def = "n"
	}
	return promptParsed(w, message+" (y, n)", def, func(s string) (bool, error) {
		switch strings.ToLower(s) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		return false, fmt.Errorf("answer y or n")
	})
}

// promptSweepExport asks for the response data export choice; an empty
// result means no export.
func (w *wizard) promptSweepExport() (string, error) {
	return promptParsed(w, "Export response data (none, json, csv)", "none",
		func(s string) (string, error) {
			switch strings.ToLower(s) {
			case "none", "no", "n":
				return "", nil
			case "json":
				return "json", nil
			case "csv":
				return "csv", nil
			}
			return "", fmt.Errorf("unknown choice %q (none, json, csv)", s)
		})
}

// promptParsed retries until the validator accepts the input.
func promptParsed[T any](w *wizard, message, defaultValue string, parser func(string) (T, error)) (T, error) {
	for {
		raw, err := w.prompt(message, defaultValue)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parser(raw)
		if err != nil {
			fmt.Fprintf(w.out, "  Invalid: %v. Try again.\n", err)
			continue
		}
		return v, nil
	}
}

func (w *wizard) run() error {
	fmt.Fprintln(w.out, "\n--- LC Filter Design Wizard ---")

	category, err := promptParsed(w, "Filter category (lowpass, highpass, bandpass)", "lowpass",
		func(s string) (string, error) {
			switch s {
			case "lowpass", "highpass", "bandpass", "lp", "hp", "bp":
				return s, nil
			}
			return "", fmt.Errorf("unknown category %q", s)
		})
	if err != nil {
		return err
	}

	fmt.Fprintln(w.out, "\nResponse families:")
	fmt.Fprintln(w.out, "  butterworth) maximally flat passband")
	fmt.Fprintln(w.out, "  chebyshev)   steeper rolloff, passband ripple")
	fmt.Fprintln(w.out, "  bessel)      maximally flat group delay")
	resp, err := promptParsed(w, "Response", "butterworth", resolveResponse)
	if err != nil {
		return err
	}

	switch category {
	case "bandpass", "bp":
		return w.runBandpass(resp)
	case "highpass", "hp":
		return w.runLadder(core.Highpass, resp)
	default:
		return w.runLadder(core.Lowpass, resp)
	}
}

func (w *wizard) runLadder(category core.Category, resp core.Response) error {
	fmt.Fprintln(w.out, "\nEnter the cutoff frequency (-3 dB point), e.g. 10MHz, 1.5GHz, 500kHz.")
	freq, err := promptParsed(w, "Cutoff frequency", "", parse.Frequency)
	if err != nil {
		return err
	}

	imp, err := promptParsed(w, "Impedance", defaultImpedance, parse.Impedance)
	if err != nil {
		return err
	}

	fmt.Fprintln(w.out, "\nHigher order means sharper cutoff and more components (2-9).")
	order, err := promptParsed(w, "Order", strconv.Itoa(defaultOrder), strconv.Atoi)
	if err != nil {
		return err
	}

	ripple := defaultRipple
	if resp == core.Chebyshev {
		fmt.Fprintln(w.out, "\nPassband ripple in dB; lower is flatter, higher rolls off faster.")
		ripple, err = promptParsed(w, "Ripple dB", fmt.Sprint(defaultRipple),
			func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
		if err != nil {
			return err
		}
	}

	topoDefault := "pi"
	if category == core.Highpass {
		topoDefault = "t"
	}
	topo, err := promptParsed(w, "Topology (pi, t)", topoDefault, resolveTopology)
	if err != nil {
		return err
	}

	spec := ladder.Spec{
		Response:      resp,
		Topology:      topo,
		Order:         order,
		CutoffHz:      freq,
		ImpedanceOhms: imp,
		RippleDB:      ripple,
	}

	var design core.LadderDesign
	if category == core.Lowpass {
		design, err = ladder.Lowpass(spec)
	} else {
		design, err = ladder.Highpass(spec)
	}
	if err != nil {
		return err
	}

	export, err := w.promptSweepExport()
	if err != nil {
		return err
	}
	flags := &ladderFlags{format: "table", series: defaultSeries}
	if export == "" {
		if flags.plot, err = w.promptYesNo("Show frequency response plot?", true); err != nil {
			return err
		}
	}

	if err := writeLadder(design, flags); err != nil {
		return err
	}
	if export != "" {
		sweep, err := ladderSweep(design, export)
		if err != nil {
			return err
		}
		fmt.Fprintf(w.out, "\n--- Frequency Response Data ---\n\n%s\n", sweep)
	}
	return nil
}

func (w *wizard) runBandpass(resp core.Response) error {
	fmt.Fprintln(w.out, "\nEnter the passband center frequency, e.g. 10.7MHz.")
	center, err := promptParsed(w, "Center frequency", "", parse.Frequency)
	if err != nil {
		return err
	}

	bw, err := promptParsed(w, "3 dB bandwidth", "", parse.Frequency)
	if err != nil {
		return err
	}

	imp, err := promptParsed(w, "Impedance", defaultImpedance, parse.Impedance)
	if err != nil {
		return err
	}

	n, err := promptParsed(w, "Resonators (2-9, odd for Chebyshev)", strconv.Itoa(defaultOrder), strconv.Atoi)
	if err != nil {
		return err
	}

	ripple := defaultRipple
	if resp == core.Chebyshev {
		ripple, err = promptParsed(w, "Ripple dB", fmt.Sprint(defaultRipple),
			func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
		if err != nil {
			return err
		}
	}

	coupling, err := promptParsed(w, "Coupling (top, shunt)", "top", resolveCoupling)
	if err != nil {
		return err
	}

	design, err := coupled.Design(coupled.Spec{
		Response:      resp,
		Coupling:      coupling,
		Resonators:    n,
		CenterHz:      center,
		BandwidthHz:   bw,
		ImpedanceOhms: imp,
		RippleDB:      ripple,
	})
	if err != nil {
		return err
	}
	for _, warn := range design.Warnings {
		fmt.Fprintln(os.Stderr, "Warning:", warn)
	}

	export, err := w.promptSweepExport()
	if err != nil {
		return err
	}
	flags := &bandpassFlags{format: "table", series: defaultSeries}
	if export == "" {
		if flags.plot, err = w.promptYesNo("Show frequency response plot?", true); err != nil {
			return err
		}
	}

	if err := writeBandpass(design, flags); err != nil {
		return err
	}
	if export != "" {
		sweep, err := coupledSweep(design, export)
		if err != nil {
			return err
		}
		fmt.Fprintf(w.out, "\n--- Frequency Response Data ---\n\n%s\n", sweep)
	}
	return nil
}

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lc/internal/parse"
	"github.com/cwbudde/algo-lc/synth/core"
	"github.com/cwbudde/algo-lc/synth/coupled"
	"github.com/cwbudde/algo-lc/synth/render"
	"github.com/cwbudde/algo-lc/synth/response"
)

type bandpassFlags struct {
	frequency  string
	bandwidth  string
	lowEdge    string
	highEdge   string
	impedance  string
	filterType string
	coupling   string
	resonators int
	ripple     float64
	qSafety    float64
	series     string
	noMatch    bool
	raw        bool
	quiet      bool
	plot       bool
	plotData   string
	format     string
}

func bandpassCmd() *cobra.Command {
	var flags bandpassFlags
	cmd := &cobra.Command{
		Use:   "bandpass",
		Short: "Design a coupled resonator bandpass filter",
		Long: "Designs a capacitively coupled resonator bandpass filter. Specify the\n" +
			"passband either as center frequency and bandwidth (-f and -b) or as the\n" +
			"band edges (--fl and --fh).",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBandpass(&flags)
		},
	}

	cmd.Flags().StringVarP(&flags.frequency, "frequency", "f", "", "center frequency (e.g. 10.7MHz)")
	cmd.Flags().StringVarP(&flags.bandwidth, "bandwidth", "b", "", "3 dB bandwidth")
	cmd.Flags().StringVar(&flags.lowEdge, "fl", "", "lower cutoff frequency")
	cmd.Flags().StringVar(&flags.highEdge, "fh", "", "upper cutoff frequency")
	cmd.Flags().StringVarP(&flags.impedance, "impedance", "z", defaultImpedance, "source/load impedance")
	cmd.Flags().StringVarP(&flags.filterType, "type", "t", "butterworth", "response family: butterworth, chebyshev, bessel (aliases bw, ch, bs)")
	cmd.Flags().StringVarP(&flags.coupling, "coupling", "c", "top", "coupling style: top, shunt")
	cmd.Flags().IntVarP(&flags.resonators, "resonators", "n", defaultOrder, "resonator count (2-9, odd for Chebyshev)")
	cmd.Flags().Float64VarP(&flags.ripple, "ripple", "r", defaultRipple, "Chebyshev passband ripple in dB")
	cmd.Flags().Float64Var(&flags.qSafety, "q-safety", coupled.DefaultQSafety, "unloaded Q safety factor")
	cmd.Flags().StringVarP(&flags.series, "eseries", "e", defaultSeries, "component series for matching: E12, E24, E96")
	cmd.Flags().BoolVar(&flags.noMatch, "no-match", false, "skip standard value matching")
	cmd.Flags().BoolVar(&flags.raw, "raw", false, "print values in scientific notation")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "print component values only")
	cmd.Flags().BoolVar(&flags.plot, "plot", false, "show ASCII frequency response plot")
	cmd.Flags().StringVar(&flags.plotData, "plot-data", "", "print the frequency response instead of the design: json, csv")
	cmd.Flags().StringVar(&flags.format, "format", "table", "output format: table, json, csv")

	return cmd
}

func runBandpass(flags *bandpassFlags) error {
	spec, err := bandpassSpec(flags)
	if err != nil {
		return err
	}

	design, err := coupled.Design(spec)
	if err != nil {
		return err
	}
	for _, warn := range design.Warnings {
		fmt.Fprintln(os.Stderr, "Warning:", warn)
	}

	return writeBandpass(design, flags)
}

func bandpassSpec(flags *bandpassFlags) (coupled.Spec, error) {
	if err := checkFormat(flags.format); err != nil {
		return coupled.Spec{}, err
	}
	if err := checkSweepFormat(flags.plotData); err != nil {
		return coupled.Spec{}, err
	}
	resp, err := resolveResponse(flags.filterType)
	if err != nil {
		return coupled.Spec{}, err
	}
	cpl, err := resolveCoupling(flags.coupling)
	if err != nil {
		return coupled.Spec{}, err
	}
	imp, err := parse.Impedance(flags.impedance)
	if err != nil {
		return coupled.Spec{}, err
	}

	spec := coupled.Spec{
		Response:      resp,
		Coupling:      cpl,
		Resonators:    flags.resonators,
		ImpedanceOhms: imp,
		RippleDB:      flags.ripple,
		QSafety:       flags.qSafety,
	}

	// The two frequency forms stay orthogonal; Validate rejects mixing.
	if flags.frequency != "" {
		if spec.CenterHz, err = parse.Frequency(flags.frequency); err != nil {
			return coupled.Spec{}, err
		}
	}
	if flags.bandwidth != "" {
		if spec.BandwidthHz, err = parse.Frequency(flags.bandwidth); err != nil {
			return coupled.Spec{}, err
		}
	}
	if flags.lowEdge != "" {
		if spec.LowHz, err = parse.Frequency(flags.lowEdge); err != nil {
			return coupled.Spec{}, err
		}
	}
	if flags.highEdge != "" {
		if spec.HighHz, err = parse.Frequency(flags.highEdge); err != nil {
			return coupled.Spec{}, err
		}
	}
	return spec, nil
}

func writeBandpass(d core.CoupledDesign, flags *bandpassFlags) error {
	if flags.plotData != "" {
		s, err := coupledSweep(d, flags.plotData)
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	}

	switch flags.format {
	case "json":
		s, err := render.CoupledJSON(d)
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	case "csv":
		fmt.Println(render.CoupledCSV(d))
		return nil
	}

	if flags.quiet {
		fmt.Println(render.CoupledQuiet(d, flags.raw))
		return nil
	}

	opts := render.TableOptions{Raw: flags.raw, Diagram: true}
	if !flags.noMatch {
		series, err := resolveSeries(flags.series)
		if err != nil {
			return err
		}
		opts.Series = &series
	}
	if err := render.CoupledTable(os.Stdout, d, opts); err != nil {
		return err
	}

	if flags.plot {
		points := response.CoupledPoints(d, response.CoupledGrid(d, response.DefaultCoupledPoints))
		fmt.Println()
		fmt.Println(render.CoupledPlot(d, points, render.PlotOptions{}))
	}
	return nil
}

// coupledSweep renders the frequency response of a coupled resonator design
// as a json or csv document.
func coupledSweep(d core.CoupledDesign, format string) (string, error) {
	points := response.CoupledPoints(d, response.CoupledGrid(d, response.DefaultCoupledPoints))
	if format == "csv" {
		return render.SweepCSV(points), nil
	}
	return render.SweepJSON(points, d.Response.String(), d.Resonators, 0, d.CenterHz, d.BandwidthHz, d.RippleDB)
}

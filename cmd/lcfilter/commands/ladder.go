package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lc/internal/parse"
	"github.com/cwbudde/algo-lc/synth/core"
	"github.com/cwbudde/algo-lc/synth/ladder"
	"github.com/cwbudde/algo-lc/synth/render"
	"github.com/cwbudde/algo-lc/synth/response"
)

// ladderFlags holds the flag values shared by lowpass and highpass.
type ladderFlags struct {
	frequency  string
	impedance  string
	filterType string
	topology   string
	order      int
	ripple     float64
	series     string
	noMatch    bool
	raw        bool
	quiet      bool
	plot       bool
	plotData   string
	format     string
}

func (f *ladderFlags) register(cmd *cobra.Command, defaultTopology string) {
	cmd.Flags().StringVarP(&f.frequency, "frequency", "f", "", "cutoff frequency, unit suffix allowed (e.g. 14.2MHz)")
	cmd.Flags().StringVarP(&f.impedance, "impedance", "z", defaultImpedance, "source/load impedance")
	cmd.Flags().StringVarP(&f.filterType, "type", "t", "butterworth", "response family: butterworth, chebyshev, bessel (aliases bw, ch, bs)")
	cmd.Flags().StringVar(&f.topology, "topology", defaultTopology, "ladder topology: pi, t")
	cmd.Flags().IntVarP(&f.order, "order", "n", defaultOrder, "filter order (2-9)")
	cmd.Flags().Float64VarP(&f.ripple, "ripple", "r", defaultRipple, "Chebyshev passband ripple in dB")
	cmd.Flags().StringVarP(&f.series, "eseries", "e", defaultSeries, "component series for matching: E12, E24, E96")
	cmd.Flags().BoolVar(&f.noMatch, "no-match", false, "skip standard value matching")
	cmd.Flags().BoolVar(&f.raw, "raw", false, "print values in scientific notation")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "print component values only")
	cmd.Flags().BoolVar(&f.plot, "plot", false, "show ASCII frequency response plot")
	cmd.Flags().StringVar(&f.plotData, "plot-data", "", "print the frequency response instead of the design: json, csv")
	cmd.Flags().StringVar(&f.format, "format", "table", "output format: table, json, csv")
	cmd.MarkFlagRequired("frequency")
}

func lowpassCmd() *cobra.Command {
	var flags ladderFlags
	cmd := &cobra.Command{
		Use:   "lowpass",
		Short: "Design a lowpass ladder filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLadder(core.Lowpass, &flags)
		},
	}
	flags.register(cmd, "pi")
	return cmd
}

func highpassCmd() *cobra.Command {
	var flags ladderFlags
	cmd := &cobra.Command{
		Use:   "highpass",
		Short: "Design a highpass ladder filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLadder(core.Highpass, &flags)
		},
	}
	flags.register(cmd, "t")
	return cmd
}

func runLadder(category core.Category, flags *ladderFlags) error {
	spec, err := ladderSpec(flags)
	if err != nil {
		return err
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

	return writeLadder(design, flags)
}

func ladderSpec(flags *ladderFlags) (ladder.Spec, error) {
	if err := checkFormat(flags.format); err != nil {
		return ladder.Spec{}, err
	}
	if err := checkSweepFormat(flags.plotData); err != nil {
		return ladder.Spec{}, err
	}
	resp, err := resolveResponse(flags.filterType)
	if err != nil {
		return ladder.Spec{}, err
	}
	topo, err := resolveTopology(flags.topology)
	if err != nil {
		return ladder.Spec{}, err
	}
	freq, err := parse.Frequency(flags.frequency)
	if err != nil {
		return ladder.Spec{}, err
	}
	imp, err := parse.Impedance(flags.impedance)
	if err != nil {
		return ladder.Spec{}, err
	}
	return ladder.Spec{
		Response:      resp,
		Topology:      topo,
		Order:         flags.order,
		CutoffHz:      freq,
		ImpedanceOhms: imp,
		RippleDB:      flags.ripple,
	}, nil
}

func writeLadder(d core.LadderDesign, flags *ladderFlags) error {
	if flags.plotData != "" {
		s, err := ladderSweep(d, flags.plotData)
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	}

	switch flags.format {
	case "json":
		s, err := render.LadderJSON(d)
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	case "csv":
		fmt.Println(render.LadderCSV(d))
		return nil
	}

	if flags.quiet {
		fmt.Println(render.LadderQuiet(d, flags.raw))
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
	if err := render.LadderTable(os.Stdout, d, opts); err != nil {
		return err
	}

	if flags.plot {
		points := response.LadderPoints(d, response.LadderGrid(d, response.DefaultLadderPoints))
		fmt.Println()
		fmt.Println(render.LadderPlot(d, points, render.PlotOptions{}))
	}
	return nil
}

// ladderSweep renders the frequency response of a ladder design as a json
// or csv document.
func ladderSweep(d core.LadderDesign, format string) (string, error) {
	points := response.LadderPoints(d, response.LadderGrid(d, response.DefaultLadderPoints))
	if format == "csv" {
		return render.SweepCSV(points), nil
	}
	return render.SweepJSON(points, d.Response.String(), d.Order, d.CutoffHz, 0, 0, d.RippleDB)
}

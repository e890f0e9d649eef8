// Package commands implements the lcfilter CLI: ladder and coupled
// resonator synthesis, standard value matching and a guided wizard.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lc/synth/core"
	"github.com/cwbudde/algo-lc/synth/eseries"
)

// Defaults shared by the synthesis subcommands.
const (
	defaultImpedance = "50"
	defaultOrder     = 5
	defaultRipple    = 0.5
	defaultSeries    = "E24"
)

func Execute() error {
	root := &cobra.Command{
		Use:           "lcfilter",
		Short:         "LC filter design calculator",
		Long:          "Synthesizes lowpass, highpass and coupled resonator bandpass LC filters\nand matches the results against standard component series.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(lowpassCmd(), highpassCmd(), bandpassCmd(), matchCmd(), wizardCmd())
	return root.Execute()
}

// resolveResponse accepts the canonical family names and their short
// aliases (bw, b, ch, c, bs).
func resolveResponse(name string) (core.Response, error) {
	switch name {
	case "butterworth", "bw", "b":
		return core.Butterworth, nil
	case "chebyshev", "ch", "c":
		return core.Chebyshev, nil
	case "bessel", "bs":
		return core.Bessel, nil
	}
	return 0, fmt.Errorf("unknown filter type %q (butterworth, chebyshev, bessel)", name)
}

func resolveTopology(name string) (core.Topology, error) {
	switch name {
	case "pi":
		return core.Pi, nil
	case "t":
		return core.T, nil
	}
	return 0, fmt.Errorf("unknown topology %q (pi, t)", name)
}

// resolveCoupling accepts top/shunt and the single-letter aliases.
func resolveCoupling(name string) (core.Coupling, error) {
	switch name {
	case "top", "t":
		return core.TopCoupled, nil
	case "shunt", "s":
		return core.ShuntCoupled, nil
	}
	return 0, fmt.Errorf("unknown coupling %q (top, shunt)", name)
}

func resolveSeries(name string) (eseries.Series, error) {
	return eseries.ParseSeries(name)
}

func checkFormat(format string) error {
	switch format {
	case "table", "json", "csv":
		return nil
	}
	return fmt.Errorf("unknown format %q (table, json, csv)", format)
}

// checkSweepFormat validates the --plot-data choice; empty disables export.
func checkSweepFormat(format string) error {
	switch format {
	case "", "json", "csv":
		return nil
	}
	return fmt.Errorf("unknown plot data format %q (json, csv)", format)
}

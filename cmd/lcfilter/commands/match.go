package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lc/synth/eseries"
	"github.com/cwbudde/algo-lc/synth/render"
)

func matchCmd() *cobra.Command {
	var (
		seriesName string
		kindName   string
	)
	cmd := &cobra.Command{
		Use:   "match <value>",
		Short: "Match a component value against a standard series",
		Long: "Finds the nearest single standard value and the nearest two-component\n" +
			"parallel combination for a capacitance (farads) or inductance (henries).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q", args[0])
			}
			series, err := resolveSeries(seriesName)
			if err != nil {
				return err
			}

			var kind eseries.ComponentKind
			var format func(float64) string
			switch kindName {
			case "capacitor", "c":
				kind = eseries.Capacitor
				format = render.Capacitance
			case "inductor", "l":
				kind = eseries.Inductor
				format = render.Inductance
			default:
				return fmt.Errorf("unknown component kind %q (capacitor, inductor)", kindName)
			}

			m, err := eseries.Match(value, series, kind)
			if err != nil {
				return err
			}

			fmt.Printf("Requested:    %s\n", format(m.Requested))
			fmt.Printf("Nearest Std:  %s (%+.2f%%)\n", format(m.Single.Value), m.Single.ErrorPct)
			if p := m.Parallel; p != nil {
				fmt.Printf("Parallel Std: %s || %s = %s (%+.2f%%)\n",
					format(p.ValueA), format(p.ValueB), format(p.Combined), p.ErrorPct)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&seriesName, "eseries", "e", defaultSeries, "component series: E12, E24, E96")
	cmd.Flags().StringVarP(&kindName, "kind", "k", "capacitor", "component kind: capacitor, inductor")
	return cmd
}

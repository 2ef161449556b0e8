// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rcmb/values"
	"github.com/spf13/cobra"
)

func (a *app) seriesCmd() *cobra.Command {
	lo, hi := siValue(1), siValue(10)
	cmd := &cobra.Command{
		Use:   "series [name]",
		Short: "List the known series, or the values of one series inside a window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range values.SeriesNames() {
					d, _ := values.Decade(name)
					fmt.Fprintf(out, "%-9s %3d values/decade\n", name, len(d))
				}

				return nil
			}
			list, err := values.Expand(args[0], float64(lo), float64(hi))
			if err != nil {
				return err
			}
			parts := make([]string, len(list))
			for i, v := range list {
				parts[i] = values.FormatSI(v)
			}
			a.logger.Debug("rcmb: series expanded", "series", args[0], "count", len(list))
			_, err = fmt.Fprintln(out, strings.Join(parts, " "))

			return err
		},
	}
	cmd.Flags().Var(&lo, "min", "smallest value listed")
	cmd.Flags().Var(&hi, "max", "largest value listed")

	return cmd
}

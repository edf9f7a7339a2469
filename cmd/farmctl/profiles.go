package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"farmdesk/internal/prediction"
)

func newProfilesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the crop and soil profiles of the knowledge table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := opts.table()
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, table.Document(), func(w io.Writer) {
				bold := color.New(color.Bold)
				for _, crop := range table.Crops() {
					bold.Fprintln(w, crop)
					for _, soil := range table.Soils(crop) {
						p, _ := table.Profile(crop, soil)
						fmt.Fprintf(w, "   %-8s yield %.1f-%.1f t/acre (avg %.1f), price %s-%s per ton\n",
							soil, p.Yield.Min, p.Yield.Max, p.Yield.Avg,
							prediction.FormatMoney(p.Price.Min, opts.currency), prediction.FormatMoney(p.Price.Max, opts.currency))
					}
				}
			})
		},
	}
}

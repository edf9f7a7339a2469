package main

import (
	"io"

	"github.com/spf13/cobra"

	"farmdesk/internal/prediction"
	"farmdesk/internal/types"
)

// predictFlags are the inputs shared by predict and compare.
type predictFlags struct {
	crop    string
	soil    string
	area    string
	tier    string
	variety string
	season  string
}

func (f *predictFlags) bind(cmd *cobra.Command, withTier bool) {
	cmd.Flags().StringVar(&f.crop, "crop", "", "Crop type (e.g. Rice)")
	cmd.Flags().StringVar(&f.soil, "soil", "", "Soil type (e.g. Loamy)")
	cmd.Flags().StringVar(&f.area, "area", "", "Planted area in acres")
	if withTier {
		cmd.Flags().StringVar(&f.tier, "tier", "", "Investment tier (Low, Medium, High, Premium)")
	}
	cmd.Flags().StringVar(&f.variety, "variety", "", "Variety name")
	cmd.Flags().StringVar(&f.season, "season", "", "Season name")
}

func (f *predictFlags) request() prediction.Request {
	return prediction.Request{
		Crop:           f.crop,
		SoilType:       f.soil,
		Area:           types.FormValue(f.area),
		InvestmentTier: f.tier,
		Variety:        f.variety,
		Season:         f.season,
	}
}

func newPredictCmd(opts *rootOptions) *cobra.Command {
	flags := &predictFlags{}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Estimate yield, income and profit for one planting",
		Example: `  farmctl predict --crop Rice --soil Loamy --area 2.5 --tier Medium
  farmctl predict --crop Wheat --soil Loamy --area 4 --tier High -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := opts.table()
			if err != nil {
				return err
			}
			res, err := prediction.NewEngine(table).Compute(flags.request())
			if err != nil {
				return err
			}
			opts.logger.Debug("prediction computed", "crop", res.Crop, "tier", res.InvestmentTier, "net_profit", res.NetProfit)

			view := prediction.Display(res, opts.currency)
			return render(cmd.OutOrStdout(), opts.output, view, func(w io.Writer) {
				displayPrediction(w, view)
			})
		},
	}
	flags.bind(cmd, true)
	return cmd
}

func newCompareCmd(opts *rootOptions) *cobra.Command {
	flags := &predictFlags{}
	cmd := &cobra.Command{
		Use:     "compare",
		Short:   "Compare one planting across every investment tier",
		Example: `  farmctl compare --crop Corn --soil Sandy --area 4`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := opts.table()
			if err != nil {
				return err
			}
			results, err := prediction.NewEngine(table).CompareTiers(flags.request())
			if err != nil {
				return err
			}

			views := make([]prediction.View, 0, len(results))
			for _, res := range results {
				views = append(views, prediction.Display(res, opts.currency))
			}
			return render(cmd.OutOrStdout(), opts.output, views, func(w io.Writer) {
				displayComparison(w, views)
			})
		},
	}
	flags.bind(cmd, false)
	return cmd
}

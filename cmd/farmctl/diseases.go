package main

import (
	"io"

	"github.com/spf13/cobra"

	"farmdesk/internal/farm"
)

func newDiseasesCmd(opts *rootOptions) *cobra.Command {
	var filter farm.DiseaseFilter
	cmd := &cobra.Command{
		Use:   "diseases",
		Short: "Search the crop disease library",
		Example: `  farmctl diseases --crop Rice
  farmctl diseases --search rust --severity Medium`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := farm.NewDiseaseLibrary(farm.SampleDiseases()...)
			if err != nil {
				return err
			}
			diseases, err := lib.Search(filter)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, diseases, func(w io.Writer) {
				displayDiseases(w, diseases)
			})
		},
	}
	cmd.Flags().StringVar(&filter.Query, "search", "", "Match name, crop or symptoms")
	cmd.Flags().StringVar(&filter.Crop, "crop", "", "Only diseases of this crop")
	cmd.Flags().StringVar(&filter.Severity, "severity", "", "Only this severity (Low, Medium, High, Critical)")
	return cmd
}

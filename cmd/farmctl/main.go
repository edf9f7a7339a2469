// Command farmctl runs the farmdesk income prediction engine and reference
// libraries from the terminal.
//
//	farmctl predict --crop Rice --soil Loamy --area 2.5 --tier Medium
//	farmctl compare --crop Corn --soil Sandy --area 4 -o yaml
//	farmctl profiles --table ./table.yaml
//	farmctl diseases --crop Wheat
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"farmdesk/internal/agronomy"
	"farmdesk/internal/config"
	"farmdesk/internal/types"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	tablePath string
	output    string
	currency  string
	verbose   bool

	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", userMessage(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "farmctl",
		Short: "Farm income predictions and crop references",
		Long: `farmctl estimates yield, income, expenses and profit for a planting from
the agronomy knowledge table, and browses the disease library.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch opts.output {
			case outputHuman, outputJSON, outputYAML:
			default:
				return fmt.Errorf("unknown output format %q (want human, json or yaml)", opts.output)
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
			return nil
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.tablePath, "table", "", "Path to a YAML agronomy table (defaults to the built-in table)")
	flags.StringVarP(&opts.output, "output", "o", outputHuman, "Output format (human, json, yaml)")
	flags.StringVar(&opts.currency, "currency", "₹", "Currency symbol for money figures")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(
		newPredictCmd(opts),
		newCompareCmd(opts),
		newProfilesCmd(opts),
		newDiseasesCmd(opts),
		newVersionCmd(opts),
	)
	return rootCmd
}

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			b := config.NewBuildInfo(opts.tablePath)
			fmt.Fprintf(cmd.OutOrStdout(), "farmctl version %s (commit %s, built %s)\nagronomy table: %s\n",
				b.Version, b.Commit, b.BuildTime, b.TableSource)
		},
	}
}

// table loads the knowledge table named by --table, or the built-in one.
func (o *rootOptions) table() (*agronomy.Table, error) {
	t, err := agronomy.LoadTable(o.tablePath)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("loaded agronomy table", "path", o.tablePath, "profiles", t.Len())
	return t, nil
}

// newLogger writes text logs to w; debug records only appear with --verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// userMessage strips internal causes from application errors.
func userMessage(err error) string {
	var appErr *types.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

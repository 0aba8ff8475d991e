package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mzkit-go/mzkit/mzml"
)

var rootCmd = &cobra.Command{
	Use:   "mzkit",
	Short: "Inspect indexed mzML mass-spectrometry files",
	Long: `mzkit reads indexed mzML documents with random access: list and
fetch spectra and chromatograms, rebuild or cache the record index,
and validate the trailing checksum.`,
	SilenceUsage: true,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("scan", false, "ignore the embedded index and rebuild by scanning")
	rootCmd.PersistentFlags().String("index-cache", "", "path of the index sidecar cache")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log diagnostics to stderr")
}

// openReader opens the mzML file named by the first positional argument
// with the persistent flags applied.
func openReader(cmd *cobra.Command, args []string) (*mzml.Reader, error) {
	var opts []mzml.Option

	if scan, _ := cmd.Flags().GetBool("scan"); scan {
		opts = append(opts, mzml.WithForceScan())
	}
	if cache, _ := cmd.Flags().GetString("index-cache"); cache != "" {
		opts = append(opts, mzml.WithIndexCache(cache))
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, mzml.WithLogger(logger))
	}

	return mzml.Open(args[0], opts...)
}

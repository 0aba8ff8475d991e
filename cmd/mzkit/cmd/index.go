package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index <file.mzML>",
	Short: "Show the record index of an mzML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openReader(cmd, args)
		if err != nil {
			return err
		}
		defer r.Close()

		idx := r.Index()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(idx.Entries())
		}

		fmt.Printf("%d spectra, %d chromatograms\n", idx.Spectra(), idx.Chromatograms())
		if summary, ok := r.Summary(); ok {
			for _, level := range summary.MSLevels() {
				fmt.Printf("  MS%d: %d spectra\n", level, len(summary.PositionsWithMSLevel(level)))
			}
		}
		for _, e := range idx.Entries() {
			fmt.Printf("%-12s %12d  %s\n", e.Kind, e.Offset, e.ID)
		}
		return nil
	},
}

func init() {
	indexCmd.Flags().Bool("json", false, "emit the index as JSON")
	rootCmd.AddCommand(indexCmd)
}

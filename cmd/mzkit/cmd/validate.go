package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mzkit-go/mzkit/mzml"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.mzML>",
	Short: "Recompute and compare the trailing SHA-1 checksum",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openReader(cmd, args)
		if err != nil {
			return err
		}
		defer r.Close()

		report, err := r.Validate()
		if errors.Is(err, mzml.ErrNoChecksum) {
			fmt.Println("no checksum declared")
			return nil
		}
		if err != nil {
			return err
		}

		if report.Match {
			fmt.Printf("ok %s\n", report.Computed)
			return nil
		}
		return fmt.Errorf("checksum mismatch: declared %s, computed %s", report.Declared, report.Computed)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var peaksCmd = &cobra.Command{
	Use:   "peaks <file.mzML>",
	Short: "Print the peak list of one spectrum or chromatogram",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("id")
		chrom, _ := cmd.Flags().GetBool("chromatogram")
		if id == "" {
			return errors.New("--id is required")
		}

		r, err := openReader(cmd, args)
		if err != nil {
			return err
		}
		defer r.Close()

		if chrom {
			c, err := r.Chromatogram(id)
			if err != nil {
				return err
			}
			for _, err := range c.ArrayErrors() {
				fmt.Printf("# array error: %v\n", err)
			}
			time, intensity := c.Time(), c.Intensity()
			for i := range time {
				fmt.Printf("%g\t%g\n", time[i], at(intensity, i))
			}
			return nil
		}

		s, err := r.Spectrum(id)
		if err != nil {
			return err
		}
		for _, err := range s.ArrayErrors() {
			fmt.Printf("# array error: %v\n", err)
		}
		mz, intensity := s.MZ(), s.Intensity()
		for i := range mz {
			fmt.Printf("%g\t%g\n", mz[i], at(intensity, i))
		}
		return nil
	},
}

func at(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}

func init() {
	peaksCmd.Flags().String("id", "", "native id of the record")
	peaksCmd.Flags().Bool("chromatogram", false, "fetch a chromatogram instead of a spectrum")
	rootCmd.AddCommand(peaksCmd)
}

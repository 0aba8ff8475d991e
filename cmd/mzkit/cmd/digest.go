package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mzkit-go/mzkit/proteomics"
)

var digestCmd = &cobra.Command{
	Use:   "digest <sequence>",
	Short: "Digest a protein sequence into peptides",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("protease")
		minLen, _ := cmd.Flags().GetInt("min-length")
		maxLen, _ := cmd.Flags().GetInt("max-length")
		missed, _ := cmd.Flags().GetInt("missed-cleavages")

		protease, err := proteomics.ByName(name, proteomics.Limits{
			MinLength:          minLen,
			MaxLength:          maxLen,
			MaxMissedCleavages: missed,
		})
		if err != nil {
			return err
		}

		for peptide := range protease.Cleave(args[0]) {
			mass, err := peptide.MonoMass()
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%d\t%.5f\n", peptide.Sequence, peptide.MissedCleavages, mass)
		}
		return nil
	},
}

func init() {
	digestCmd.Flags().String("protease", "trypsin", "protease name: trypsin or unspecific")
	digestCmd.Flags().Int("min-length", 0, "minimum peptide length, 0 for no minimum")
	digestCmd.Flags().Int("max-length", 0, "maximum peptide length, 0 for no maximum")
	digestCmd.Flags().Int("missed-cleavages", 2, "maximum missed cleavages, negative for unlimited")
	rootCmd.AddCommand(digestCmd)
}

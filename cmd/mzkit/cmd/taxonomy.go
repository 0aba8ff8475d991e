package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mzkit-go/mzkit/taxonomy"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Query an NCBI taxdmp.zip archive",
}

func loadTaxonomy(cmd *cobra.Command) (*taxonomy.Tree, error) {
	path, _ := cmd.Flags().GetString("taxdmp")
	if path == "" {
		return nil, errors.New("--taxdmp is required")
	}
	return taxonomy.ReadArchive(path)
}

func parseTaxID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid taxonomy id %q", arg)
	}
	return id, nil
}

var taxonomyLookupCmd = &cobra.Command{
	Use:   "lookup <taxid>",
	Short: "Show one taxon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTaxID(args[0])
		if err != nil {
			return err
		}
		tree, err := loadTaxonomy(cmd)
		if err != nil {
			return err
		}

		tax, err := tree.Lookup(id)
		if err != nil {
			return err
		}
		if newID, ok := tree.Merged(id); ok {
			fmt.Printf("note: %d was merged into %d\n", id, newID)
		}
		fmt.Printf("%d\t%s\t%s\n", tax.ID, tax.Rank, tax.ScientificName)
		return nil
	},
}

var taxonomyLineageCmd = &cobra.Command{
	Use:   "lineage <taxid>",
	Short: "Show the lineage of a taxon from the root down",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTaxID(args[0])
		if err != nil {
			return err
		}
		tree, err := loadTaxonomy(cmd)
		if err != nil {
			return err
		}

		lineage, err := tree.Lineage(id)
		if err != nil {
			return err
		}
		for _, tax := range lineage {
			fmt.Printf("%d\t%s\t%s\n", tax.ID, tax.Rank, tax.ScientificName)
		}
		return nil
	},
}

func init() {
	taxonomyCmd.PersistentFlags().String("taxdmp", "", "path of the taxdmp.zip archive")
	taxonomyCmd.AddCommand(taxonomyLookupCmd)
	taxonomyCmd.AddCommand(taxonomyLineageCmd)
	rootCmd.AddCommand(taxonomyCmd)
}

package cmd

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/spf13/cobra"

	"github.com/mzkit-go/mzkit/mzml"
)

var spectraCmd = &cobra.Command{
	Use:   "spectra <file.mzML>",
	Short: "List the spectra of an mzML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openReader(cmd, args)
		if err != nil {
			return err
		}
		defer r.Close()

		workers, _ := cmd.Flags().GetInt("workers")
		levelFilter, _ := cmd.Flags().GetInt("ms-level")

		type row struct {
			index int
			line  string
		}
		var (
			mu     sync.Mutex
			rows   []row
			failed int
		)

		err = r.ForEach(cmd.Context(), workers, func(rec mzml.Record, err error) error {
			if err != nil {
				mu.Lock()
				failed++
				mu.Unlock()
				fmt.Fprintf(os.Stderr, "mzkit: %v\n", err)
				return nil
			}
			s, ok := rec.(*mzml.Spectrum)
			if !ok {
				return nil
			}
			if levelFilter > 0 && s.MSLevel() != levelFilter {
				return nil
			}
			line := fmt.Sprintf("%-6d MS%d  %6d peaks  %s", s.Index, s.MSLevel(), len(s.MZ()), s.ID)
			mu.Lock()
			rows = append(rows, row{index: s.Index, line: line})
			mu.Unlock()
			return nil
		})
		if err != nil {
			return err
		}

		sort.Slice(rows, func(i, j int) bool { return rows[i].index < rows[j].index })
		for _, rw := range rows {
			fmt.Println(rw.line)
		}
		if failed > 0 {
			return fmt.Errorf("%d records failed to parse", failed)
		}
		return nil
	},
}

func init() {
	spectraCmd.Flags().Int("workers", 0, "parallel fetch workers (0 = GOMAXPROCS)")
	spectraCmd.Flags().Int("ms-level", 0, "only list spectra with this MS level")
	rootCmd.AddCommand(spectraCmd)
}

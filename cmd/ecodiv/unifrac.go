package main

import (
	"os"

	"github.com/spf13/cobra"
)

var unifracCmd = &cobra.Command{
	Use:   "unifrac",
	Short: "Phylogenetic (UniFrac) distance matrix",
	Long: `UniFrac computes phylogenetic beta diversity: weighted considers
abundances, unweighted considers presence. Requires a lineage file
(--lineage) so the taxonomy tree can be built and pruned to the analysis
rank.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rank, err := rankArg(cmd)
		if err != nil {
			return err
		}
		weighted, _ := cmd.Flags().GetBool("weighted")

		calc, err := newCalculator(cmd)
		if err != nil {
			return err
		}
		dm, err := calc.UniFrac(weighted, rank)
		if err != nil {
			return err
		}

		writeMatrixTSV(os.Stdout, dm)

		return nil
	},
}

func init() {
	unifracCmd.Flags().BoolP("weighted", "w", true, "weighted (true) or unweighted (false) UniFrac")

	rootCmd.AddCommand(unifracCmd)
}

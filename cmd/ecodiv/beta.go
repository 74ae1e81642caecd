package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ecodiv/diversity"
)

var betaCmd = &cobra.Command{
	Use:   "beta",
	Short: "Between-sample (beta) diversity distance matrix",
	Long: `Beta computes a symmetric distance matrix between every pair of
samples. Metrics: jaccard, braycurtis, cityblock (manhattan is a synonym),
aitchison, weighted_unifrac, unweighted_unifrac.

The UniFrac metrics need a lineage file (--lineage).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rank, err := rankArg(cmd)
		if err != nil {
			return err
		}
		metric, _ := cmd.Flags().GetString("metric")

		calc, err := newCalculator(cmd)
		if err != nil {
			return err
		}
		dm, err := calc.BetaDiversity(diversity.BetaMetric(metric), rank)
		if err != nil {
			return err
		}

		writeMatrixTSV(os.Stdout, dm)

		return nil
	},
}

func init() {
	betaCmd.Flags().StringP("metric", "m", string(diversity.BetaBrayCurtis), "beta diversity metric")

	rootCmd.AddCommand(betaCmd)
}

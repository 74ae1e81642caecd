package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ecodiv/diversity"
)

var alphaCmd = &cobra.Command{
	Use:   "alpha",
	Short: "Within-sample (alpha) diversity",
	Long: `Alpha computes one diversity value per sample. Metrics: simpson,
observed_taxa, shannon (chao1 is a deprecated synonym of observed_taxa).`,
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
		res, err := calc.AlphaDiversity(diversity.AlphaMetric(metric), rank)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "sample\t%s\n", res.Metric())
		for i, id := range res.Samples() {
			fmt.Fprintf(os.Stdout, "%s\t%g\n", id, res.At(i))
		}

		return nil
	},
}

func init() {
	alphaCmd.Flags().StringP("metric", "m", string(diversity.AlphaShannon), "alpha diversity metric")

	rootCmd.AddCommand(alphaCmd)
}

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var aitchisonCmd = &cobra.Command{
	Use:   "aitchison",
	Short: "Aitchison (compositional) distance matrix",
	Long: `Aitchison computes the Euclidean distance between centered
log-ratio transformed samples. Zeros are replaced with small positive
values first, preserving each row's sum-to-1 property.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rank, err := rankArg(cmd)
		if err != nil {
			return err
		}

		calc, err := newCalculator(cmd)
		if err != nil {
			return err
		}
		dm, err := calc.AitchisonDistance(rank)
		if err != nil {
			return err
		}

		writeMatrixTSV(os.Stdout, dm)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(aitchisonCmd)
}

// Package main is the entry point for the ecodiv CLI: TSV abundance
// tables in, diversity metrics and distance matrices out.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/ecodiv/taxtree"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the ecodiv CLI.
var rootCmd = &cobra.Command{
	Use:   "ecodiv",
	Short: "Ecological diversity metrics over taxonomic abundance tables",
	Long: `ecodiv computes alpha diversity, beta diversity, UniFrac and the
Aitchison distance over sample-by-taxon abundance tables.

Input is a counts TSV (header row of taxon IDs, one row per sample, first
column the sample ID) plus, for rank filtering and UniFrac, a lineage TSV
(tax_id, parent_id, rank, name). Without a lineage every taxon is treated
as a species under a common root.

Each metric family is a subcommand: alpha, beta, unifrac, aitchison.
Results are written to stdout as TSV; warnings go to stderr.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ecodiv.yaml or ~/.config/ecodiv/config.yaml)")
	rootCmd.PersistentFlags().StringP("input", "i", "", "counts TSV (required)")
	rootCmd.PersistentFlags().StringP("lineage", "l", "", "lineage TSV: tax_id, parent_id, rank, name")
	rootCmd.PersistentFlags().StringP("rank", "r", "", "taxonomic rank to analyze at (default: auto)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ecodiv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ecodiv"))
		}
	}

	viper.SetEnvPrefix("ECODIV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// rankArg resolves the analysis rank: explicit flag first, then config
// or environment, then auto. Validation happens here so every
// subcommand reports bad ranks the same way.
func rankArg(cmd *cobra.Command) (taxtree.Rank, error) {
	value, _ := cmd.Flags().GetString("rank")
	if value == "" {
		value = viper.GetString("rank")
	}
	if value == "" {
		value = string(taxtree.RankAuto)
	}
	rank := taxtree.Rank(value)
	if !rank.Valid() {
		return "", fmt.Errorf("invalid rank %q: must be one of %v", value, taxtree.Ranks())
	}

	return rank, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ecodiv version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ecodiv", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

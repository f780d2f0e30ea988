package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/assessrec/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", app, version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

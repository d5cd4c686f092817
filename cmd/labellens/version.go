package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pageza/labellens/backend/internal/api"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version metadata",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "labellens %s\n", api.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

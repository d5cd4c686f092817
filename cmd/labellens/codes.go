package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pageza/labellens/backend/internal/additive"
)

var codesText string

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List the additive codes found in label text",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readLabel(codesText, "")
		if err != nil {
			return err
		}
		c, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}
		match := additive.Match(c, additive.ExtractCodes(text), text)
		for _, r := range match.Matched {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", r.Code, r.Tier, r.Name)
		}
		for _, code := range match.Unmatched {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\tunmatched\n", code)
		}
		return nil
	},
}

func init() {
	codesCmd.Flags().StringVar(&codesText, "text", "", "Label text")
	rootCmd.AddCommand(codesCmd)
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pageza/labellens/backend/internal/additive"
)

var additivesPath string

var rootCmd = &cobra.Command{
	Use:   "labellens",
	Short: "labellens scores ingredient labels from your terminal",
	Long:  "labellens detects food additives in label text, scores them against a preference profile, and suggests safer catalog products.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&additivesPath, "additives", "", "Additive dataset JSON (defaults to the built-in dataset)")
}

// loadCatalog returns the reference catalog selected by --additives.
func loadCatalog(ctx context.Context) (*additive.Catalog, error) {
	if additivesPath == "" {
		return additive.EmbeddedCatalog()
	}
	src := additive.FileSource{Path: additivesPath}
	records, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return additive.NewCatalog(records, src.Name())
}

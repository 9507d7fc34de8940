package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and convert the storefront product catalog",
		Long: `catalog works with the product catalog outside the API server.

It validates catalog CSV files before they are used as CATALOG_CSV and
exports the catalog (CSV or the built-in seed) as an xlsx workbook.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		validateCmd(),
		exportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

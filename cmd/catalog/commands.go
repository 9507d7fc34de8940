package main

import (
	"fmt"
	"io"
	"os"

	"weardistrict/internal/domain"
	"weardistrict/internal/exporter"
	"weardistrict/internal/importer"
	"weardistrict/internal/seed"
	productsvc "weardistrict/internal/service/product"

	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.csv>",
		Short: "Check a catalog CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := importer.LoadFile(args[0])
			if err != nil {
				return err
			}
			return summarize(cmd.OutOrStdout(), products)
		},
	}
}

func exportCmd() *cobra.Command {
	var (
		csvPath string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as an xlsx workbook",
		Long:  `Write the catalog as an xlsx workbook. Without --csv the built-in seed catalog is exported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			products := seed.Products()
			if csvPath != "" {
				var err error
				if products, err = importer.LoadFile(csvPath); err != nil {
					return err
				}
			}
			// Same ids as the API serves: duplicates renumbered.
			products = productsvc.New(products, nil, nil).List()

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			if err := exporter.WriteXLSX(f, products); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d products to %s\n", len(products), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Catalog CSV to export instead of the built-in seed")
	cmd.Flags().StringVarP(&outPath, "out", "o", "products.xlsx", "Output workbook path")

	return cmd
}

func summarize(w io.Writer, products []domain.Product) error {
	catalog := productsvc.New(products, nil, nil)
	fmt.Fprintf(w, "%d products, %d categories\n", catalog.Count(), len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		fmt.Fprintf(w, "  %s\n", c)
	}
	return nil
}

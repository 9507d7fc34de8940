package exporter

import (
	"fmt"
	"io"
	"strings"

	"weardistrict/internal/domain"
	"weardistrict/internal/importer"

	"github.com/tealeg/xlsx"
)

// ContentType is the MIME type of the workbook written by WriteXLSX.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const sheetName = "Products"

// WriteXLSX writes the catalog as a single-sheet workbook with the same
// columns the CSV importer reads.
func WriteXLSX(w io.Writer, products []domain.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, col := range importer.Columns {
		header.AddCell().SetValue(col)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetInt(p.ID)
		row.AddCell().SetString(p.Name)
		row.AddCell().SetFloat(p.Price.Float())
		row.AddCell().SetString(p.Category)
		row.AddCell().SetString(strings.Join(p.Sizes, "|"))
		row.AddCell().SetString(p.Image)
		row.AddCell().SetString(p.Description)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

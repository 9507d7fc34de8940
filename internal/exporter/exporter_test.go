package exporter

import (
	"bytes"
	"testing"

	"weardistrict/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestWriteXLSX(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "Classic White T-Shirt", Price: 2999, Category: "Tops", Sizes: []string{"S", "M"}, Image: "/images/white-tshirt.jpg", Description: "Essential tee"},
		{ID: 7, Name: "Leather Jacket", Price: 12000, Category: "Outerwear"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, products))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)
	sheet := file.Sheets[0]
	assert.Equal(t, "Products", sheet.Name)
	require.Len(t, sheet.Rows, 3)

	values := func(r *xlsx.Row) []string {
		out := make([]string, 0, len(r.Cells))
		for _, c := range r.Cells {
			out = append(out, c.Value)
		}
		return out
	}
	assert.Equal(t, []string{"id", "name", "price", "category", "sizes", "image", "description"}, values(sheet.Rows[0]))
	assert.Equal(t, []string{"1", "Classic White T-Shirt", "29.99", "Tops", "S|M", "/images/white-tshirt.jpg", "Essential tee"}, values(sheet.Rows[1]))
	assert.Equal(t, "120", sheet.Rows[2].Cells[2].Value)
}

func TestWriteXLSX_EmptyCatalogWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets[0].Rows, 1)
}

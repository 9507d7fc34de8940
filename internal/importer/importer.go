package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"weardistrict/internal/domain"
)

// Columns is the header written by the exporter and expected here.
var Columns = []string{"id", "name", "price", "category", "sizes", "image", "description"}

// CSVImporter reads a catalog CSV with a header row. Column order is free;
// unknown columns are ignored.
type CSVImporter struct {
	reader *csv.Reader
}

func NewCSVImporter(r io.Reader) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{reader: csvr}
}

// LoadFile reads the catalog CSV at path.
func LoadFile(path string) ([]domain.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return NewCSVImporter(f).Read()
}

// Read parses every row. The first invalid row fails the whole import with
// its line number. A blank id is left as 0 so the catalog assigns one.
func (i *CSVImporter) Read() ([]domain.Product, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, required := range []string{"name", "price"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing %q column", required)
		}
	}

	var products []domain.Product
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return products, fmt.Errorf("read row: %w", err)
		}
		if blank(record) {
			continue
		}
		p, err := parseRow(record, index)
		if err != nil {
			line, _ := i.reader.FieldPos(0)
			return products, fmt.Errorf("row %d: %w", line, err)
		}
		products = append(products, p)
	}
	return products, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (domain.Product, error) {
	p := domain.Product{
		Name:        pick(record, index, "name"),
		Category:    pick(record, index, "category"),
		Sizes:       splitSizes(pick(record, index, "sizes")),
		Image:       pick(record, index, "image"),
		Description: pick(record, index, "description"),
	}
	if p.Name == "" {
		return p, fmt.Errorf("%w: name is required", domain.ErrInvalidProduct)
	}

	if raw := pick(record, index, "id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			return p, fmt.Errorf("%w: bad id %q", domain.ErrInvalidProduct, raw)
		}
		p.ID = id
	}

	price, err := domain.ParseMoney(pick(record, index, "price"))
	if err != nil {
		return p, fmt.Errorf("%w: %v", domain.ErrInvalidProduct, err)
	}
	if price < 0 {
		return p, fmt.Errorf("%w: negative price %s", domain.ErrInvalidProduct, price)
	}
	if price > domain.MaxPrice {
		return p, fmt.Errorf("%w: price %s above %s", domain.ErrInvalidProduct, price, domain.MaxPrice)
	}
	p.Price = price
	return p, nil
}

func splitSizes(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool { return r == '|' || r == ';' })
	sizes := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			sizes = append(sizes, f)
		}
	}
	return sizes
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

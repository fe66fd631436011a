package stock

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Stock"

// EncodeXLSX renders the catalog as a single-sheet workbook with the same
// columns as the CSV export.
func EncodeXLSX(c Catalog) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return nil, fmt.Errorf("cannot name sheet: %w", err)
	}

	header := []any{"Category", "Name", "Quantity", "PriceKsh", "PriceUSD", "Description"}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("cannot write header row: %w", err)
	}

	row := 2
	for it := range c.All() {
		addr, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		values := []any{it.Category.String(), it.Name, it.Quantity, it.PriceKsh, it.PriceUSD, it.Description}
		if err := f.SetSheetRow(xlsxSheet, addr, &values); err != nil {
			return nil, fmt.Errorf("cannot write row %d: %w", row, err)
		}
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("cannot write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeXLSX reads the first sheet of a workbook with the same tolerant
// column interpretation as the CSV decoder: positional columns, defaults for
// short rows, category by substring, a fresh id per row. A first row that
// mentions "name" is treated as a header.
func DecodeXLSX(data []byte) ([]StockItem, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("cannot read rows: %w", err)
	}

	var items []StockItem
	for i, cells := range rows {
		if i == 0 && strings.Contains(strings.ToLower(strings.Join(cells, ",")), "name") {
			continue
		}
		if blankRow(cells) {
			continue
		}
		cat := ClassifyCategory(cell(cells, 0))
		name := cell(cells, 1)
		if strings.TrimSpace(name) == "" {
			name = "Unknown Item"
		}
		items = append(items, StockItem{
			ID:          NewItemID(cat),
			Name:        name,
			Category:    cat,
			Quantity:    parseNumber(cell(cells, 2), 1),
			PriceKsh:    parseNumber(cell(cells, 3), 0),
			PriceUSD:    parseNumber(cell(cells, 4), 0),
			Description: cell(cells, 5),
		})
	}
	return items, nil
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

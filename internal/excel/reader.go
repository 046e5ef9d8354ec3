// Package excel adapts spreadsheet files to the pipeline's row model: raw
// rows in, styled warehouse report out.
package excel

import (
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/lowcarbmkt/order-report/internal/platform"
)

// ReadOrders reads the first sheet of an order export. The header row
// defines column names; blank header cells become "Unnamed: N" placeholders
// so downstream code can exclude them. Every cell value arrives as its
// display string.
func ReadOrders(r io.Reader) ([]platform.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("無法讀取 Excel 檔案: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("檔案沒有工作表")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("讀取工作表失敗: %w", err)
	}
	return rowsToRawRows(rows), nil
}

// ReadOrdersFile reads an export from disk.
func ReadOrdersFile(path string) ([]platform.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("無法讀取 Excel 檔案: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("檔案沒有工作表")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("讀取工作表失敗: %w", err)
	}
	return rowsToRawRows(rows), nil
}

func rowsToRawRows(rows [][]string) []platform.RawRow {
	if len(rows) == 0 {
		return nil
	}
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		if h == "" {
			h = fmt.Sprintf("%s: %d", platform.UnnamedPrefix, i)
		}
		headers[i] = h
	}
	out := make([]platform.RawRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := make(platform.RawRow, len(headers))
		for i, header := range headers {
			if i < len(cells) {
				row[header] = cells[i]
			} else {
				// GetRows trims trailing empty cells.
				row[header] = ""
			}
		}
		out = append(out, row)
	}
	return out
}

// SortByOrderID returns a copy of rows ordered by the channel's order-id
// column, keeping each order's lines adjacent in the final report.
func SortByOrderID(rows []platform.RawRow, cfg platform.FieldConfig) []platform.RawRow {
	col := cfg.Column(platform.RoleOrderID)
	sorted := make([]platform.RawRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i][col] < sorted[j][col]
	})
	return sorted
}

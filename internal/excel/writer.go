package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/lowcarbmkt/order-report/internal/report"
)

const (
	reportSheet  = "Sheet1"
	reportFont   = "微軟正黑體"
	minRowHeight = 20.0
	lineHeight   = 15.0
	maxColWidth  = 50.0
	minColWidth  = 10.0
)

// Writer renders the final warehouse report. Cells containing "ERROR" or
// equal to "nan" are rendered bold red so the operator spots unresolved
// values before sending the file to the warehouse.
type Writer struct {
	logger *zap.Logger
}

// NewWriter creates a report writer.
func NewWriter(logger *zap.Logger) *Writer {
	return &Writer{logger: logger}
}

// Write renders rows under the fixed report headers and streams the
// workbook to w.
func (wr *Writer) Write(rows []report.OrderRow, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	normalStyle, errorStyle, err := wr.styles(f)
	if err != nil {
		return fmt.Errorf("failed to create cell styles: %w", err)
	}

	if err := wr.writeHeader(f, normalStyle); err != nil {
		return err
	}

	widths := make([]float64, len(report.TemplateColumns))
	for i, col := range report.TemplateColumns {
		widths[i] = cellWidth(col)
	}

	for rowIdx, row := range rows {
		excelRow := rowIdx + 2 // data starts under the header
		maxLines := 1
		for colIdx, col := range report.TemplateColumns {
			value := row[col]
			cell, err := excelize.CoordinatesToCellName(colIdx+1, excelRow)
			if err != nil {
				return fmt.Errorf("failed to locate cell: %w", err)
			}
			if err := f.SetCellStr(reportSheet, cell, value); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}

			style := normalStyle
			if isErrorValue(value) {
				style = errorStyle
			}
			if err := f.SetCellStyle(reportSheet, cell, cell, style); err != nil {
				return fmt.Errorf("failed to style cell %s: %w", cell, err)
			}

			if lines := strings.Count(value, "\n") + 1; lines > maxLines {
				maxLines = lines
			}
			if w := cellWidth(value); w > widths[colIdx] {
				widths[colIdx] = w
			}
		}

		height := minRowHeight
		if h := float64(maxLines) * lineHeight; h > height {
			height = h
		}
		if err := f.SetRowHeight(reportSheet, excelRow, height); err != nil {
			return fmt.Errorf("failed to set row height: %w", err)
		}
	}

	for i, width := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to resolve column name: %w", err)
		}
		if err := f.SetColWidth(reportSheet, name, name, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	wr.logger.Info("報表產生完成", zap.Int("rows", len(rows)))
	return nil
}

func (wr *Writer) writeHeader(f *excelize.File, style int) error {
	maxLines := 1
	for i, col := range report.TemplateColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to locate header cell: %w", err)
		}
		if err := f.SetCellStr(reportSheet, cell, col); err != nil {
			return fmt.Errorf("failed to write header %q: %w", col, err)
		}
		if err := f.SetCellStyle(reportSheet, cell, cell, style); err != nil {
			return fmt.Errorf("failed to style header %q: %w", col, err)
		}
		if lines := strings.Count(col, "\n") + 1; lines > maxLines {
			maxLines = lines
		}
	}

	height := minRowHeight
	if h := float64(maxLines) * lineHeight; h > height {
		height = h
	}
	if err := f.SetRowHeight(reportSheet, 1, height); err != nil {
		return fmt.Errorf("failed to set header height: %w", err)
	}
	return nil
}

func (wr *Writer) styles(f *excelize.File) (normal, errStyle int, err error) {
	alignment := &excelize.Alignment{
		Vertical:   "center",
		Horizontal: "left",
		WrapText:   true,
	}

	normal, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: reportFont, Size: 11, Color: "000000"},
		Alignment: alignment,
	})
	if err != nil {
		return 0, 0, err
	}

	errStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: reportFont, Size: 11, Bold: true, Color: "FF0000"},
		Alignment: alignment,
	})
	if err != nil {
		return 0, 0, err
	}
	return normal, errStyle, nil
}

// isErrorValue flags cells the operator must review before shipping.
func isErrorValue(value string) bool {
	return strings.Contains(value, "ERROR") || strings.EqualFold(value, "nan")
}

func cellWidth(value string) float64 {
	longest := 0
	for _, line := range strings.Split(value, "\n") {
		if n := len([]rune(line)); n > longest {
			longest = n
		}
	}
	width := float64(longest) + 2
	if width < minColWidth {
		return minColWidth
	}
	if width > maxColWidth {
		return maxColWidth
	}
	return width
}

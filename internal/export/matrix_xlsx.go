// Package export renders access data as downloadable documents.
package export

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/mazadclick/admin-access/internal/access"
	"github.com/mazadclick/admin-access/internal/model"
)

const (
	// XLSXContentType is the MIME type of the workbook produced by MatrixExporter.
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	matrixSheet = "Permissions"
	grantedMark = "✔"
)

// MatrixExporter renders a permission matrix as an XLSX workbook. The matrix
// is immutable, so the workbook is rendered on first request and reused.
type MatrixExporter struct {
	matrix access.Matrix

	once sync.Once
	body []byte
	err  error
}

// NewMatrixExporter creates an exporter for matrix.
func NewMatrixExporter(matrix access.Matrix) *MatrixExporter {
	return &MatrixExporter{matrix: matrix}
}

// Workbook returns the rendered workbook bytes.
func (e *MatrixExporter) Workbook() ([]byte, error) {
	e.once.Do(func() {
		e.body, e.err = renderMatrix(e.matrix)
	})
	return e.body, e.err
}

func renderMatrix(matrix access.Matrix) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", matrixSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	headers := make([]any, 0, len(model.AllRoles)+1)
	headers = append(headers, "Permission")
	for _, r := range model.AllRoles {
		headers = append(headers, string(r))
	}
	if err := f.SetSheetRow(matrixSheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return nil, fmt.Errorf("header range: %w", err)
	}
	if err := f.SetCellStyle(matrixSheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, entry := range matrix.Entries() {
		row := make([]any, 0, len(headers))
		row = append(row, string(entry.Permission))
		for _, r := range model.AllRoles {
			cell := ""
			if matrix.Allows(entry.Permission, r) {
				cell = grantedMark
			}
			row = append(row, cell)
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(matrixSheet, start, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(matrixSheet, "A", "A", 28); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetPanes(matrixSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

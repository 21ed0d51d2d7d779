package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"go-recruitment-ops/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// exportTable renders a header row plus data rows as XLSX or CSV. The
// returned filename is prefixed and stamped with the export time.
func exportTable(sheetName, prefix string, headers []string, rows [][]string, format string, now time.Time) ([]byte, string, error) {
	stamp := now.Format("20060102_150405")
	switch strings.ToLower(format) {
	case FormatXLSX, "":
		data, err := exportExcel(sheetName, headers, rows)
		if err != nil {
			return nil, "", err
		}
		return data, fmt.Sprintf("%s_%s.xlsx", prefix, stamp), nil
	case FormatCSV:
		data, err := exportCSV(headers, rows)
		if err != nil {
			return nil, "", err
		}
		return data, fmt.Sprintf("%s_%s.csv", prefix, stamp), nil
	default:
		return nil, "", fmt.Errorf("%w: unsupported export format: %s", domain.ErrInvalidArgument, format)
	}
}

func exportExcel(sheetName string, headers []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, strings.ToUpper(strings.ReplaceAll(h, "_", " ")))
	}

	// Dark blue header with white text
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range headers {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func exportCSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}
	return buf.Bytes(), nil
}

package dataset

import (
	"bytes"
	"path/filepath"
	"strings"

	"salespulse-report-service/internal/report"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

const maxSpreadsheetRows = 100000

// spreadsheet columns recognized in the header row. Matching is
// case-insensitive on the trimmed header cell.
var recordColumns = []string{"StoreName", "StoreCode", "Amount", "Hour", "Day", "Date"}

// ParseSpreadsheet reads an uploaded workbook into raw records. Legacy .xls
// files go through extrame/xls, everything else through excelize. The first
// row is the header; each data row becomes one RawRecord with missing cells
// mapped to empty strings so the row validator can reject them downstream.
func ParseSpreadsheet(data []byte, filename string) ([]report.RawRecord, error) {
	rows, err := readRows(data, filename)
	if err != nil {
		return nil, err
	}

	header := rows[0]
	columns := make(map[int]string, len(header))
	for i, cell := range header {
		name := strings.TrimSpace(cell)
		for _, column := range recordColumns {
			if strings.EqualFold(name, column) {
				columns[i] = column
				break
			}
		}
	}
	if len(columns) == 0 {
		return nil, invalidInput(ErrSpreadsheetNoHeader,
			"First row must contain the columns StoreName, StoreCode, Amount, Hour, Day, Date")
	}

	raws := make([]report.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		raw := report.RawRecord{}
		for i, cell := range row {
			switch columns[i] {
			case "StoreName":
				raw.StoreName = cell
			case "StoreCode":
				raw.StoreCode = cell
			case "Amount":
				raw.Amount = cell
			case "Hour":
				raw.Hour = cell
			case "Day":
				raw.Day = cell
			case "Date":
				raw.Date = cell
			}
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

func readRows(data []byte, filename string) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xls":
		workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, invalidInput(ErrSpreadsheetUnreadable, "Failed to read .xls workbook: "+err.Error())
		}
		if workbook.NumSheets() == 0 {
			return nil, invalidInput(ErrSpreadsheetEmpty, "Workbook has no worksheet")
		}
		rows := workbook.ReadAllCells(maxSpreadsheetRows)
		if len(rows) == 0 {
			return nil, invalidInput(ErrSpreadsheetEmpty, "Worksheet is empty")
		}
		return rows, nil
	default:
		file, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, invalidInput(ErrSpreadsheetUnreadable, "Failed to read workbook: "+err.Error())
		}
		defer func() { _ = file.Close() }()

		sheetName := file.GetSheetName(0)
		if sheetName == "" {
			return nil, invalidInput(ErrSpreadsheetEmpty, "Workbook has no worksheet")
		}
		rows, err := file.GetRows(sheetName)
		if err != nil {
			return nil, invalidInput(ErrSpreadsheetUnreadable, "Failed to read worksheet: "+err.Error())
		}
		if len(rows) == 0 {
			return nil, invalidInput(ErrSpreadsheetEmpty, "Worksheet is empty")
		}
		return rows, nil
	}
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

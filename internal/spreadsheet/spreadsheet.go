// Package spreadsheet turns the first sheet of an uploaded workbook into rows
// of strings.
package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"

	"github.com/ebisa/contabil/internal/apperr"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
)

var ErrUnsupported = errors.New("unsupported file format")

// FormatOf picks the format from the file extension.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupported, filename)
}

// Rows reads the first sheet of an xlsx or xls workbook. An .xls upload that
// is really an xlsx file is read as xlsx.
func Rows(r io.Reader, format Format) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}

	switch format {
	case FormatXLSX:
		return xlsxRows(data)
	case FormatXLS:
		rows, err := xlsRows(data)
		if err != nil {
			if xrows, xerr := xlsxRows(data); xerr == nil {
				return xrows, nil
			}

			return nil, err
		}

		return rows, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupported, format)
}

func xlsxRows(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: open xlsx: %w", apperr.ErrMalformed, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: xlsx has no sheets", apperr.ErrMalformed)
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	return rows, nil
}

func xlsRows(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: open xls: %w", apperr.ErrMalformed, err)
	}

	if len(workbook.GetSheets()) == 0 {
		return nil, fmt.Errorf("%w: xls has no sheets", apperr.ErrMalformed)
	}

	sheet, err := workbook.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("read xls sheet: %w", err)
	}

	var rows [][]string

	for _, row := range sheet.GetRows() {
		var cells []string
		for _, cell := range row.GetCols() {
			cells = append(cells, cell.GetString())
		}

		rows = append(rows, cells)
	}

	return rows, nil
}

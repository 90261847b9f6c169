package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/reconlens/reconlens-api/internal/models"
)

// ProgressFunc receives a 0-100 completion signal while a file is decoded.
type ProgressFunc func(percent int)

// Parser decodes uploaded spreadsheets into ordered Row records. Headers come
// from the first row and are trimmed; cell values are the formatted strings the
// sheet displays, also trimmed; rows with no non-empty cell are dropped.
type Parser struct{}

// NewParser creates a new parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile picks the decoder from the filename extension.
func (p *Parser) ParseFile(ctx context.Context, file io.Reader, filename string, onProgress ProgressFunc) ([]models.Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return p.ParseXLSX(ctx, file, onProgress)
	case ".csv":
		return p.ParseCSV(ctx, file, onProgress)
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(filename))
	}
}

// ParseXLSX decodes the first sheet of a workbook. Progress is reported in
// stages (25/50/75/100) and the context is checked between stages so an aborted
// upload stops before the expensive row scan.
func (p *Parser) ParseXLSX(ctx context.Context, file io.Reader, onProgress ProgressFunc) ([]models.Row, error) {
	report(onProgress, 25)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer workbook.Close()

	report(onProgress, 50)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	report(onProgress, 75)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	headers := normalizeHeaders(rows[0])
	records := make([]models.Row, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if record, ok := buildRow(headers, row); ok {
			records = append(records, record)
		}
	}

	report(onProgress, 100)
	return records, nil
}

// ParseCSV decodes a comma-separated export with the same header and row
// handling as the XLSX path.
func (p *Parser) ParseCSV(ctx context.Context, file io.Reader, onProgress ProgressFunc) ([]models.Row, error) {
	report(onProgress, 25)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	headerRow, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty file")
		}
		return nil, fmt.Errorf("failed to read headers: %w", err)
	}
	headers := normalizeHeaders(headerRow)

	report(onProgress, 50)

	var records []models.Row
	rowNum := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading row %d: %w", rowNum, err)
		}
		rowNum++

		if record, ok := buildRow(headers, row); ok {
			records = append(records, record)
		}
	}

	report(onProgress, 100)
	return records, nil
}

// normalizeHeaders trims header cells and substitutes a placeholder for blank
// ones, keyed by column index, so stray unnamed columns stay addressable.
func normalizeHeaders(cells []string) []string {
	headers := make([]string, len(cells))
	for i, cell := range cells {
		header := strings.TrimSpace(cell)
		if header == "" {
			header = fmt.Sprintf("UNKNOWN %d", i)
		}
		headers[i] = header
	}
	return headers
}

// buildRow maps one data row onto the headers. Returns ok=false for rows with
// no non-empty cell. Short rows leave trailing columns blank; surplus cells
// past the header width are ignored.
func buildRow(headers []string, cells []string) (models.Row, bool) {
	record := make(models.Row, len(headers))
	empty := true
	for i, header := range headers {
		value := ""
		if i < len(cells) {
			value = strings.TrimSpace(cells[i])
		}
		record[header] = value
		if value != "" {
			empty = false
		}
	}
	if empty {
		return nil, false
	}
	return record, true
}

func report(onProgress ProgressFunc, percent int) {
	if onProgress != nil {
		onProgress(percent)
	}
}

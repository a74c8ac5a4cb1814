package timeseries

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string // Column name for dates (optional)
	ValueColumn string // Column name for values (default: "y")
	IDColumn    string // Column name for series ID (optional, for filtering)
	IDFilter    string // Value to filter by ID column
	DateFormat  string // Date format (default: "2006-01-02")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		DateFormat:  "2006-01-02",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVColumn loads a specific column from a CSV file as a series.
func LoadCSVColumn(filename string, column string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// LoadCSVFiltered loads a filtered series from a CSV file.
func LoadCSVFiltered(filename string, idColumn, idValue, valueColumn string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.IDColumn = idColumn
	opts.IDFilter = idValue
	if valueColumn != "" {
		opts.ValueColumn = valueColumn
	}
	return LoadCSV(filename, opts)
}

// LoadCSVFromReader loads a time series from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx, dateIdx, idIdx := -1, -1, -1
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		valueIdx, dateIdx, idIdx = findColumns(header, opts)
	} else {
		// No header - assume date, value column order.
		dateIdx = 0
		valueIdx = 1
	}

	var values []float64
	var timestamps []time.Time

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if opts.IDFilter != "" && idIdx >= 0 && idIdx < len(record) {
			if cleanField(record[idIdx]) != opts.IDFilter {
				continue
			}
		}

		if valueIdx < 0 || valueIdx >= len(record) {
			continue
		}
		valStr := cleanField(record[valueIdx])
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			continue
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			continue // Skip invalid values
		}
		values = append(values, val)

		if dateIdx >= 0 && dateIdx < len(record) {
			if ts, ok := parseDate(cleanField(record[dateIdx]), opts.DateFormat); ok {
				timestamps = append(timestamps, ts)
			}
		}
	}

	if len(values) == 0 {
		return nil, errors.New("timeseries: no valid data found in CSV")
	}

	if len(timestamps) == len(values) {
		return &Series{
			Timestamps: timestamps,
			Values:     values,
		}, nil
	}
	return New(values), nil
}

// findColumns resolves value, date, and ID column indices from the header.
// The value column falls back to the last column when no name matches.
func findColumns(header []string, opts *CSVOptions) (valueIdx, dateIdx, idIdx int) {
	valueIdx, dateIdx, idIdx = -1, -1, -1
	for i, h := range header {
		h = cleanField(h)
		switch {
		case h == opts.ValueColumn || (opts.ValueColumn == "" && (h == "y" || h == "value" || h == "Value")):
			valueIdx = i
		case opts.DateColumn != "" && h == opts.DateColumn:
			dateIdx = i
		case h == "ds" || h == "date" || h == "Date" || h == "Month" || h == "Year":
			if dateIdx == -1 {
				dateIdx = i
			}
		case opts.IDColumn != "" && h == opts.IDColumn:
			idIdx = i
		case h == "unique_id" || h == "id" || h == "ID":
			if idIdx == -1 && opts.IDColumn == "" {
				idIdx = i
			}
		}
	}
	if valueIdx == -1 {
		valueIdx = len(header) - 1
	}
	return valueIdx, dateIdx, idIdx
}

// parseDate tries the configured format first, then a set of common ones.
func parseDate(s, preferred string) (time.Time, bool) {
	formats := []string{
		preferred,
		"2006-01-02",
		"2006-01-02T15:04:05",
		"2006/01/02",
		"01/02/2006",
		"02-Jan-2006",
		"2006",
	}
	for _, format := range formats {
		if ts, err := time.Parse(format, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func cleanField(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for reading and writing tables as CSV.
type CSVOptions struct {
	IndexColumn string // Column holding row labels (default: auto-detect)
	DateFormat  string // Layout of date labels (default: "2006-01-02")
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip before the header
}

// DefaultCSVOptions returns default options for CSV I/O.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateFormat: "2006-01-02",
		Delimiter:  ',',
	}
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
}

func isIndexHeader(h string) bool {
	switch h {
	case "ds", "date", "Date", "index", "timestamp":
		return true
	}
	return false
}

func isMissingToken(s string) bool {
	switch s {
	case "", "NA", "N/A", "NaN", "nan", "null", "NULL":
		return true
	}
	return false
}

// LoadCSV reads a table from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadCSV(file, opts)
}

// ReadCSV reads a table from r. The header row names the columns. The index
// column, when present, holds dates or integers; otherwise rows are numbered
// from zero. Missing tokens such as NA, NaN, null or an empty cell become
// missing values.
func ReadCSV(r io.Reader, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("csv: missing header row")
		}
		return nil, err
	}

	indexCol := -1
	for i, h := range header {
		h = strings.TrimSpace(h)
		header[i] = h
		if opts.IndexColumn != "" {
			if h == opts.IndexColumn {
				indexCol = i
			}
			continue
		}
		if indexCol == -1 && isIndexHeader(h) {
			indexCol = i
		}
	}
	if opts.IndexColumn != "" && indexCol == -1 {
		return nil, fmt.Errorf("csv: index column %q not found", opts.IndexColumn)
	}

	var columns []string
	for i, h := range header {
		if i != indexCol {
			columns = append(columns, h)
		}
	}

	data := make([][]float64, len(columns))
	var labels []string
	line := 1 + opts.SkipRows
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		c := 0
		for i, field := range record {
			field = strings.TrimSpace(field)
			if i == indexCol {
				labels = append(labels, field)
				continue
			}
			v := Missing()
			if !isMissingToken(field) {
				v, err = strconv.ParseFloat(field, 64)
				if err != nil {
					return nil, fmt.Errorf("csv: line %d column %q: %w", line, header[i], err)
				}
			}
			data[c] = append(data[c], v)
			c++
		}
	}

	var index *Index
	if indexCol >= 0 {
		index, err = parseLabels(labels, opts.DateFormat)
		if err != nil {
			return nil, err
		}
		index.name = header[indexCol]
	}
	return New(index, columns, data)
}

// parseLabels builds an integer index when every label is an integer and a
// time index otherwise. A time index remembers the layout that parsed its
// first label.
func parseLabels(labels []string, layout string) (*Index, error) {
	ints := make([]int64, len(labels))
	allInts := true
	for i, l := range labels {
		n, err := strconv.ParseInt(l, 10, 64)
		if err != nil {
			allInts = false
			break
		}
		ints[i] = n
	}
	if allInts {
		return NewIntIndex(ints), nil
	}

	layouts := dateLayouts
	if layout != "" {
		layouts = append([]string{layout}, dateLayouts...)
	}
	times := make([]time.Time, len(labels))
	used := ""
	for i, l := range labels {
		var err error
		for _, f := range layouts {
			times[i], err = time.Parse(f, l)
			if err == nil {
				if i == 0 {
					used = f
				}
				break
			}
		}
		if err != nil {
			return nil, fmt.Errorf("csv: unparseable index label %q", l)
		}
	}
	index := NewTimeIndex(times)
	index.layout = used
	return index, nil
}

// timeLayout picks the first candidate layout that formats every label of a
// time index without loss, falling back to RFC3339 with nanoseconds.
func timeLayout(ix *Index, candidates ...string) string {
	for _, layout := range candidates {
		if layout != "" && lossless(ix, layout) {
			return layout
		}
	}
	return time.RFC3339Nano
}

func lossless(ix *Index, layout string) bool {
	for _, t := range ix.times {
		back, err := time.Parse(layout, t.Format(layout))
		if err != nil || !back.Equal(t) {
			return false
		}
	}
	return true
}

// WriteCSV writes t with a leading index column named opts.IndexColumn, the
// index name, or "index". Time labels use the layout they were read with, then
// opts.DateFormat, as long as that keeps every label intact; otherwise
// RFC3339. Missing values are written as empty cells.
func WriteCSV(w io.Writer, t *Table, opts *CSVOptions) error {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	writer := csv.NewWriter(w)
	if opts.Delimiter != 0 {
		writer.Comma = opts.Delimiter
	}

	indexName := opts.IndexColumn
	if indexName == "" {
		indexName = t.index.Name()
	}
	if indexName == "" {
		indexName = "index"
	}

	layout := ""
	if t.index.Kind() == TimeLabels {
		layout = timeLayout(t.index, t.index.Layout(), opts.DateFormat)
	}
	if err := writer.Write(append([]string{indexName}, t.Columns()...)); err != nil {
		return err
	}

	record := make([]string, t.NumCols()+1)
	for r := 0; r < t.NumRows(); r++ {
		if layout != "" {
			record[0] = t.index.Time(r).Format(layout)
		} else {
			record[0] = t.index.Label(r)
		}
		for c := 0; c < t.NumCols(); c++ {
			v := t.data[c][r]
			if IsMissing(v) {
				record[c+1] = ""
			} else {
				record[c+1] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

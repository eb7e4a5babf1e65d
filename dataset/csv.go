package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"honnef.co/go/sinecure"
)

var (
	// ErrNotEnoughColumns is returned when a CSV header has fewer than two
	// columns.
	ErrNotEnoughColumns = errors.New("dataset: CSV needs at least two columns")
	// ErrMissingColumn is returned when a requested column name is not in
	// the CSV header.
	ErrMissingColumn = errors.New("dataset: no such column")
)

// ReadCSV reads a point set from CSV data with a header row. xColumn and
// yColumn select columns by header name; an empty name falls back to the
// first and second column respectively. It returns the points in file order
// together with the resolved column names.
func ReadCSV(r io.Reader, xColumn, yColumn string) ([]sinecure.Point, string, string, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, "", "", fmt.Errorf("dataset: reading CSV header: %w", err)
	}
	if len(header) < 2 {
		return nil, "", "", fmt.Errorf("%w, have %d", ErrNotEnoughColumns, len(header))
	}
	for i, name := range header {
		header[i] = strings.TrimSpace(name)
	}

	xIdx, err := columnIndex(header, xColumn, 0)
	if err != nil {
		return nil, "", "", err
	}
	yIdx, err := columnIndex(header, yColumn, 1)
	if err != nil {
		return nil, "", "", err
	}

	var pts []sinecure.Point
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", "", fmt.Errorf("dataset: reading CSV: %w", err)
		}
		x, err := cast.ToFloat64E(strings.TrimSpace(record[xIdx]))
		if err != nil {
			return nil, "", "", fmt.Errorf("dataset: row %d, column %q: %w", row, header[xIdx], err)
		}
		y, err := cast.ToFloat64E(strings.TrimSpace(record[yIdx]))
		if err != nil {
			return nil, "", "", fmt.Errorf("dataset: row %d, column %q: %w", row, header[yIdx], err)
		}
		pts = append(pts, sinecure.Pt(x, y))
	}
	return pts, header[xIdx], header[yIdx], nil
}

// columnIndex resolves a header name to its index, defaulting to fallback
// for the empty name.
func columnIndex(header []string, name string, fallback int) (int, error) {
	if name == "" {
		return fallback, nil
	}
	if i := slices.Index(header, name); i >= 0 {
		return i, nil
	}
	return 0, fmt.Errorf("%w: %q, header is %q", ErrMissingColumn, name, header)
}

// ReadCSVFile reads a point set from the CSV file at path. See [ReadCSV].
func ReadCSVFile(path, xColumn, yColumn string) ([]sinecure.Point, string, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", "", err
	}
	defer f.Close()
	return ReadCSV(f, xColumn, yColumn)
}

// WriteCSV writes pts as CSV with a header row. Empty column names default
// to "x" and "y".
func WriteCSV(w io.Writer, pts []sinecure.Point, xColumn, yColumn string) error {
	if xColumn == "" {
		xColumn = "x"
	}
	if yColumn == "" {
		yColumn = "y"
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{xColumn, yColumn}); err != nil {
		return fmt.Errorf("dataset: writing CSV: %w", err)
	}
	for _, pt := range pts {
		record := []string{
			strconv.FormatFloat(pt.X, 'g', -1, 64),
			strconv.FormatFloat(pt.Y, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("dataset: writing CSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("dataset: writing CSV: %w", err)
	}
	return nil
}

// WriteCSVFile writes pts to a CSV file at path, replacing any existing
// file. See [WriteCSV].
func WriteCSVFile(path string, pts []sinecure.Point, xColumn, yColumn string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, pts, xColumn, yColumn); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

package micdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrColumnNotFound is returned when neither the named nor the
	// positional column exists in the header.
	ErrColumnNotFound = errors.New("micdata: column not found")
	// ErrMalformedInputSignal is returned for cells that are not numbers
	// and for captures without samples.
	ErrMalformedInputSignal = errors.New("micdata: malformed input signal")
)

// NoFallback disables the positional lookup in ReadColumn.
const NoFallback = -1

// ReadColumn reads one numeric column from CSV data.
//
// The column is the header cell equal to name (ignoring surrounding
// space); if name is empty or absent, column index fallback is used. The
// first row after the header holds labels and is skipped.
func ReadColumn(r io.Reader, name string, fallback int) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no header row", ErrMalformedInputSignal)
	}

	if err != nil {
		return nil, fmt.Errorf("micdata: read header: %w", err)
	}

	col, err := resolveColumn(header, name, fallback)
	if err != nil {
		return nil, err
	}

	var samples []float64

	// Line 1 is the header, line 2 the label row.
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("micdata: read line %d: %w", line, err)
		}

		if line == 2 {
			continue
		}

		if col >= len(rec) {
			return nil, fmt.Errorf("%w: line %d has no column %d", ErrMalformedInputSignal, line, col)
		}

		cell := strings.TrimSpace(rec[col])

		v, err := strconv.ParseFloat(cell, 64)
		if err != nil || !isFinite(v) {
			return nil, fmt.Errorf("%w: line %d column %d: %q is not a number",
				ErrMalformedInputSignal, line, col, cell)
		}

		samples = append(samples, v)
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no samples in column %d", ErrMalformedInputSignal, col)
	}

	return samples, nil
}

// LoadColumn opens path and reads it with ReadColumn.
func LoadColumn(path, name string, fallback int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("micdata: %w", err)
	}
	defer f.Close()

	samples, err := ReadColumn(f, name, fallback)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return samples, nil
}

func resolveColumn(header []string, name string, fallback int) (int, error) {
	if name != "" {
		for i, h := range header {
			if strings.TrimSpace(h) == name {
				return i, nil
			}
		}
	}

	if fallback >= 0 && fallback < len(header) {
		return fallback, nil
	}

	return 0, fmt.Errorf("%w: name %q, index %d, header %q", ErrColumnNotFound, name, fallback, header)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package micdata

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrNoCaptures       = errors.New("micdata: no captures")
	ErrDuplicateCapture = errors.New("micdata: duplicate capture")
	ErrInvalidCapture   = errors.New("micdata: invalid capture spec")
)

// Capture is one recording of a stimulus at a given frequency and distance.
type Capture struct {
	FrequencyKHz float64
	DistanceCM   float64
	Samples      []float64
}

// Grid holds one variance per (distance, frequency) pair. Rows follow
// Distances and columns follow Frequencies, both ascending. Cells without
// a capture are NaN.
type Grid struct {
	Distances   []float64
	Frequencies []float64
	Variance    [][]float64
}

// Stability computes the population variance of every capture and
// arranges the results in a Grid.
func Stability(captures []Capture) (Grid, error) {
	if len(captures) == 0 {
		return Grid{}, ErrNoCaptures
	}

	var g Grid

	for _, c := range captures {
		if err := c.validate(); err != nil {
			return Grid{}, err
		}

		g.Distances = insertSorted(g.Distances, c.DistanceCM)
		g.Frequencies = insertSorted(g.Frequencies, c.FrequencyKHz)
	}

	filled := make([][]bool, len(g.Distances))
	g.Variance = make([][]float64, len(g.Distances))

	for i := range g.Variance {
		filled[i] = make([]bool, len(g.Frequencies))

		row := make([]float64, len(g.Frequencies))
		for j := range row {
			row[j] = math.NaN()
		}

		g.Variance[i] = row
	}

	for _, c := range captures {
		i, _ := slices.BinarySearch(g.Distances, c.DistanceCM)
		j, _ := slices.BinarySearch(g.Frequencies, c.FrequencyKHz)

		if filled[i][j] {
			return Grid{}, fmt.Errorf("%w: %g kHz at %g cm", ErrDuplicateCapture, c.FrequencyKHz, c.DistanceCM)
		}

		filled[i][j] = true
		g.Variance[i][j] = stat.PopVariance(c.Samples, nil)
	}

	return g, nil
}

func (c Capture) validate() error {
	if !isFinite(c.FrequencyKHz) || !isFinite(c.DistanceCM) {
		return fmt.Errorf("%w: frequency %g kHz, distance %g cm", ErrInvalidCapture, c.FrequencyKHz, c.DistanceCM)
	}

	if len(c.Samples) == 0 {
		return fmt.Errorf("%w: capture %g kHz at %g cm has no samples",
			ErrMalformedInputSignal, c.FrequencyKHz, c.DistanceCM)
	}

	for n, v := range c.Samples {
		if !isFinite(v) {
			return fmt.Errorf("%w: capture %g kHz at %g cm: sample %d is %g",
				ErrMalformedInputSignal, c.FrequencyKHz, c.DistanceCM, n, v)
		}
	}

	return nil
}

// At returns the variance measured at distance and frequency.
func (g Grid) At(distanceCM, frequencyKHz float64) (float64, bool) {
	i, ok := slices.BinarySearch(g.Distances, distanceCM)
	if !ok {
		return 0, false
	}

	j, ok := slices.BinarySearch(g.Frequencies, frequencyKHz)
	if !ok || math.IsNaN(g.Variance[i][j]) {
		return 0, false
	}

	return g.Variance[i][j], true
}

// MostStable returns the cell with the lowest variance.
func (g Grid) MostStable() (distanceCM, frequencyKHz, variance float64, ok bool) {
	variance = math.Inf(1)

	for i, row := range g.Variance {
		for j, v := range row {
			if v < variance {
				distanceCM, frequencyKHz, variance, ok = g.Distances[i], g.Frequencies[j], v, true
			}
		}
	}

	if !ok {
		return 0, 0, 0, false
	}

	return distanceCM, frequencyKHz, variance, true
}

// WriteTable renders the grid as an aligned text table with distances
// down and frequencies across. Missing cells print as "-".
func (g Grid) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	var b strings.Builder

	b.WriteString("cm \\ kHz\t")

	for _, f := range g.Frequencies {
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		b.WriteByte('\t')
	}

	b.WriteByte('\n')

	for i, d := range g.Distances {
		b.WriteString(strconv.FormatFloat(d, 'g', -1, 64))
		b.WriteByte('\t')

		for _, v := range g.Variance[i] {
			if math.IsNaN(v) {
				b.WriteString("-")
			} else {
				b.WriteString(strconv.FormatFloat(v, 'g', 6, 64))
			}

			b.WriteByte('\t')
		}

		b.WriteByte('\n')
	}

	if _, err := io.WriteString(tw, b.String()); err != nil {
		return err
	}

	return tw.Flush()
}

// CaptureSpec names a capture file and where it was recorded.
type CaptureSpec struct {
	FrequencyKHz float64
	DistanceCM   float64
	Path         string
}

// ParseCaptureSpec parses "freqKHz:distanceCM:path". The path may itself
// contain colons.
func ParseCaptureSpec(s string) (CaptureSpec, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 || parts[2] == "" {
		return CaptureSpec{}, fmt.Errorf("%w: %q, want freqKHz:distanceCM:path", ErrInvalidCapture, s)
	}

	freq, err := strconv.ParseFloat(parts[0], 64)
	if err != nil || !(freq > 0) || math.IsInf(freq, 0) {
		return CaptureSpec{}, fmt.Errorf("%w: frequency %q", ErrInvalidCapture, parts[0])
	}

	dist, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || !(dist >= 0) || math.IsInf(dist, 0) {
		return CaptureSpec{}, fmt.Errorf("%w: distance %q", ErrInvalidCapture, parts[1])
	}

	return CaptureSpec{FrequencyKHz: freq, DistanceCM: dist, Path: parts[2]}, nil
}

// LoadCaptures reads every spec's file with LoadColumn.
func LoadCaptures(specs []CaptureSpec, column string, fallback int) ([]Capture, error) {
	captures := make([]Capture, 0, len(specs))

	for _, s := range specs {
		samples, err := LoadColumn(s.Path, column, fallback)
		if err != nil {
			return nil, err
		}

		captures = append(captures, Capture{
			FrequencyKHz: s.FrequencyKHz,
			DistanceCM:   s.DistanceCM,
			Samples:      samples,
		})
	}

	return captures, nil
}

func insertSorted(xs []float64, v float64) []float64 {
	i, found := slices.BinarySearch(xs, v)
	if found {
		return xs
	}

	return slices.Insert(xs, i, v)
}

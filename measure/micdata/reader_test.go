package micdata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const capture = `A,B
time,mic
0,1
1,2
2,3
3,4
`

func TestReadColumn(t *testing.T) {
	tests := []struct {
		name     string
		column   string
		fallback int
		want     []float64
	}{
		{"by name", "B", NoFallback, []float64{1, 2, 3, 4}},
		{"name wins over index", "A", 1, []float64{0, 1, 2, 3}},
		{"unknown name falls back", "mic", 1, []float64{1, 2, 3, 4}},
		{"index only", "", 0, []float64{0, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadColumn(strings.NewReader(capture), tt.column, tt.fallback)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadColumnUnlabeledHeader(t *testing.T) {
	in := "Unnamed: 0,Unnamed: 1\nidx,level\n0, 1100\n1, 1250.5\n"

	got, err := ReadColumn(strings.NewReader(in), "B", 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1100, 1250.5}, got)
}

func TestReadColumnErrors(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		column   string
		fallback int
		want     error
	}{
		{"missing column", capture, "Z", 5, ErrColumnNotFound},
		{"no fallback", capture, "Z", NoFallback, ErrColumnNotFound},
		{"empty input", "", "B", 1, ErrMalformedInputSignal},
		{"label row only", "A,B\nt,m\n", "B", 1, ErrMalformedInputSignal},
		{"text cell", "A,B\nt,m\n0,1\n1,loud\n", "B", 1, ErrMalformedInputSignal},
		{"short row", "A,B\nt,m\n0,1\n5\n", "B", 1, ErrMalformedInputSignal},
		{"nan cell", "A,B\nt,m\n0,NaN\n", "B", 1, ErrMalformedInputSignal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadColumn(strings.NewReader(tt.in), tt.column, tt.fallback)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReadColumnReportsLine(t *testing.T) {
	_, err := ReadColumn(strings.NewReader("A,B\nt,m\n0,1\n1,loud\n"), "B", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
	assert.Contains(t, err.Error(), `"loud"`)
}

func TestLoadColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sine_wave_1k.csv")
	require.NoError(t, os.WriteFile(path, []byte(capture), 0o600))

	got, err := LoadColumn(path, "B", 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, got)

	_, err = LoadColumn(filepath.Join(t.TempDir(), "missing.csv"), "B", 1)
	require.ErrorIs(t, err, os.ErrNotExist)
}

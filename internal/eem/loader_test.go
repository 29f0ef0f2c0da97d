package eem

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = ",300,310,320\n" +
	"350,100,200,300\n" +
	"360,110,210,310\n"

func TestLoadMatrix_TransposesAndMeshes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sample.csv", sampleCSV)

	X, Y, Z, err := LoadMatrix(dir, "sample.csv")
	require.NoError(t, err)

	// Three excitation wavelengths down, two emission wavelengths
	// across, on all three arrays.
	for _, m := range []interface{ Dims() (int, int) }{X, Y, Z} {
		r, c := m.Dims()
		assert.Equal(t, 3, r)
		assert.Equal(t, 2, c)
	}

	// Z row 0 = excitation 300 across both emissions.
	assert.Equal(t, 100.0, Z.At(0, 0))
	assert.Equal(t, 110.0, Z.At(0, 1))
	assert.Equal(t, 300.0, Z.At(2, 0))
	assert.Equal(t, 310.0, Z.At(2, 1))

	// X repeats the emission sequence, Y the excitation sequence.
	assert.Equal(t, 350.0, X.At(0, 0))
	assert.Equal(t, 360.0, X.At(2, 1))
	assert.Equal(t, 300.0, Y.At(0, 1))
	assert.Equal(t, 320.0, Y.At(2, 0))
}

func TestLoadMatrix_TruncatesExcitationHeaders(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sample.csv", ",300.9\n350,100\n")

	_, Y, _, err := LoadMatrix(dir, "sample.csv")
	require.NoError(t, err)
	assert.Equal(t, 300.0, Y.At(0, 0))
}

func TestLoadMatrix_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"non-numeric cell", ",300,310\n350,100,abc\n"},
		{"non-numeric header", ",300,nm\n350,100,200\n"},
		{"non-numeric index", ",300,310\nlow,100,200\n"},
		{"NaN cell", ",300,310\n350,100,NaN\n"},
		{"infinite cell", ",300,310\n350,100,+Inf\n"},
		{"ragged row", ",300,310\n350,100\n"},
		{"header only", ",300,310\n"},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "bad.csv", tt.content)

			_, _, _, err := LoadMatrix(dir, "bad.csv")
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestLoadMatrix_MissingFile(t *testing.T) {
	_, _, _, err := LoadMatrix(t.TempDir(), "gone.csv")
	assert.Error(t, err)
}

func TestLoadMatrix_XLSX(t *testing.T) {
	dir := t.TempDir()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "B1", 300)
	f.SetCellValue(sheet, "C1", 310)
	f.SetCellValue(sheet, "A2", 350)
	f.SetCellValue(sheet, "B2", 1.5)
	f.SetCellValue(sheet, "C2", 2.5)
	f.SetCellValue(sheet, "A3", 360)
	f.SetCellValue(sheet, "B3", 3.5)
	f.SetCellValue(sheet, "C3", 4.5)
	require.NoError(t, f.SaveAs(filepath.Join(dir, "sample.xlsx")))

	X, Y, Z, err := LoadMatrix(dir, "sample.xlsx")
	require.NoError(t, err)

	r, c := Z.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 1.5, Z.At(0, 0))
	assert.Equal(t, 4.5, Z.At(1, 1))
	assert.Equal(t, 350.0, X.At(0, 0))
	assert.Equal(t, 310.0, Y.At(1, 0))
}

package eem

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gonum.org/v1/gonum/mat"
)

// LoadMatrix parses the sample file name in dir and returns the
// meshgrid coordinate arrays X, Y along with the intensity matrix Z.
//
// The raw table is transposed so that Z rows follow the excitation
// wavelengths (header row, truncated to integers for the y axis) and
// Z columns follow the emission wavelengths (index column, x axis).
// X repeats the emission sequence down each row and Y repeats the
// excitation sequence across each column; X, Y and Z share one shape.
func LoadMatrix(dir, name string) (X, Y, Z *mat.Dense, err error) {
	records, err := readTable(dir, name)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(records) < 2 || len(records[0]) < 2 {
		return nil, nil, nil, fmt.Errorf("%w: %s: need a header row, an index column and at least one reading", ErrMalformed, name)
	}

	// Header row: excitation wavelengths. The corner cell above the
	// index column is ignored.
	excitation := make([]float64, len(records[0])-1)
	for j, cell := range records[0][1:] {
		v, err := parseCell(name, 0, j+1, cell)
		if err != nil {
			return nil, nil, nil, err
		}
		excitation[j] = float64(int(v))
	}

	// Body rows: emission wavelength label followed by one intensity
	// per excitation wavelength.
	emission := make([]float64, len(records)-1)
	raw := mat.NewDense(len(records)-1, len(excitation), nil)
	for i, row := range records[1:] {
		if len(row) != len(excitation)+1 {
			return nil, nil, nil, fmt.Errorf("%w: %s: row %d has %d cells, want %d",
				ErrMalformed, name, i+2, len(row), len(excitation)+1)
		}
		v, err := parseCell(name, i+1, 0, row[0])
		if err != nil {
			return nil, nil, nil, err
		}
		emission[i] = v

		for j, cell := range row[1:] {
			z, err := parseCell(name, i+1, j+1, cell)
			if err != nil {
				return nil, nil, nil, err
			}
			raw.Set(i, j, z)
		}
	}

	// Transpose so rows = excitation, columns = emission, then build
	// the coordinate grids over the same shape.
	rows, cols := len(excitation), len(emission)
	X = mat.NewDense(rows, cols, nil)
	Y = mat.NewDense(rows, cols, nil)
	Z = mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			X.Set(i, j, emission[j])
			Y.Set(i, j, excitation[i])
			Z.Set(i, j, raw.At(j, i))
		}
	}

	return X, Y, Z, nil
}

// readTable reads the file into rows of cells, dispatching on the
// extension.
func readTable(dir, name string) ([][]string, error) {
	path := filepath.Join(dir, name)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path)
	}
	return nil, fmt.Errorf("%w: %s: unrecognized extension", ErrMalformed, name)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read sample: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		// Ragged rows surface here as csv.ErrFieldCount.
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	return records, nil
}

// readXLSX reads the first sheet of a workbook laid out like a CSV
// sample: excitation header row, emission index column, numeric body.
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return rows, nil
}

func parseCell(name string, row, col int, cell string) (float64, error) {
	// ParseFloat accepts "NaN" and "Inf" spellings; neither is a
	// usable wavelength or intensity reading.
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s: cell (%d,%d): %q is not a finite number",
			ErrMalformed, name, row+1, col+1, cell)
	}
	return v, nil
}

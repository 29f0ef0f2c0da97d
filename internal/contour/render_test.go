package contour

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// testGrid returns a small 3x2 meshgrid: three excitation rows, two
// emission columns.
func testGrid() (X, Y, Z *mat.Dense) {
	X = mat.NewDense(3, 2, []float64{350, 360, 350, 360, 350, 360})
	Y = mat.NewDense(3, 2, []float64{300, 300, 310, 310, 320, 320})
	Z = mat.NewDense(3, 2, []float64{100, 110, 200, 210, 437, 310})
	return X, Y, Z
}

func TestRender_Formats(t *testing.T) {
	for _, format := range []string{"png", "svg", "pdf"} {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			X, Y, Z := testGrid()

			err := Render(X, Y, Z, dir, "sample.csv", format, DefaultOptions())
			require.NoError(t, err)

			info, err := os.Stat(filepath.Join(dir, "sample."+format))
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestRender_OverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	X, Y, Z := testGrid()
	out := filepath.Join(dir, "sample.png")
	require.NoError(t, os.WriteFile(out, []byte("stale"), 0644))

	require.NoError(t, Render(X, Y, Z, dir, "sample.csv", "png", DefaultOptions()))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(len("stale")))
}

func TestRender_FlatIntensity(t *testing.T) {
	// Every cell identical: valid input with a positive rounded
	// maximum, so it must render rather than panic on the zero-width
	// color range.
	dir := t.TempDir()
	X, Y, _ := testGrid()
	Z := mat.NewDense(3, 2, []float64{437, 437, 437, 437, 437, 437})

	require.NoError(t, Render(X, Y, Z, dir, "flat.csv", "png", DefaultOptions()))

	info, err := os.Stat(filepath.Join(dir, "flat.png"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRender_UnsupportedFormat(t *testing.T) {
	X, Y, Z := testGrid()
	err := Render(X, Y, Z, t.TempDir(), "sample.csv", "bmp", DefaultOptions())
	assert.ErrorIs(t, err, ErrFormat)
}

func TestRender_ShapeMismatch(t *testing.T) {
	X, _, Z := testGrid()
	Y := mat.NewDense(2, 2, nil)

	err := Render(X, Y, Z, t.TempDir(), "sample.csv", "png", DefaultOptions())
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestRender_DegenerateData(t *testing.T) {
	X, Y, _ := testGrid()
	Z := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})

	err := Render(X, Y, Z, t.TempDir(), "sample.csv", "png", DefaultOptions())
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "sample.png", OutputName("sample.csv", "png"))
	assert.Equal(t, "sample.svg", OutputName("sample.xlsx", "svg"))
	assert.Equal(t, "a.b.pdf", OutputName("a.b.csv", "pdf"))
}

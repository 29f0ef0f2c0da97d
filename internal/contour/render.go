// Package contour renders EEM intensity matrices as filled contour
// plots with a shared colorbar scale.
package contour

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"eem-plotter/pkg/colorutil"
)

// Rendering failure kinds.
var (
	ErrShapeMismatch = errors.New("contour: coordinate and intensity shapes differ")
	ErrFormat        = errors.New("contour: unsupported output format")
)

// grid adapts meshgrid matrices to the plotter.GridXYZ interface.
// Columns follow the emission axis (x), rows the excitation axis (y).
type grid struct {
	x, y []float64
	z    *mat.Dense
}

func (g grid) Dims() (c, r int)   { return len(g.x), len(g.y) }
func (g grid) Z(c, r int) float64 { return g.z.At(r, c) }
func (g grid) X(c int) float64    { return g.x[c] }
func (g grid) Y(r int) float64    { return g.y[r] }

// OutputName derives the image file name for a sample file: the base
// name with the sample extension replaced by the output format.
func OutputName(name, format string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + "." + format
}

// Render draws the filled contour plot for one sample and writes it
// into dir as OutputName(name, format). Any existing file at that
// path is overwritten.
func Render(X, Y, Z *mat.Dense, dir, name, format string, opts Options) error {
	xr, xc := X.Dims()
	yr, yc := Y.Dims()
	zr, zc := Z.Dims()
	if xr != zr || xc != zc || yr != zr || yc != zc {
		return fmt.Errorf("%w: X %dx%d, Y %dx%d, Z %dx%d",
			ErrShapeMismatch, xr, xc, yr, yc, zr, zc)
	}

	_, ticks, err := TickScale(Z)
	if err != nil {
		return err
	}

	// One color map backs both the banded fill and the colorbar so
	// the two always agree. A constant-valued matrix is still valid
	// input; widen its range so the map keeps a nonzero span instead
	// of panicking inside the colorbar.
	zmin, zmax := mat.Min(Z), mat.Max(Z)
	if zmin == zmax {
		zmin, zmax = zmin-1, zmax+1
	}
	cm := colorutil.NewJet(zmin, zmax)

	surface := plot.New()
	surface.BackgroundColor = color.RGBA{}
	styleAxis(&surface.X, "Emission Wavelength (nm)", opts)
	styleAxis(&surface.Y, "Excitation Wavelength (nm)", opts)
	hm := plotter.NewHeatMap(grid{
		x: mat.Row(nil, 0, X),
		y: mat.Col(nil, 0, Y),
		z: Z,
	}, cm.Palette(opts.Levels))
	hm.Min, hm.Max = zmin, zmax
	surface.Add(hm)

	bar := plot.New()
	bar.BackgroundColor = color.RGBA{}
	bar.HideX()
	bar.Y.Tick.Marker = plot.ConstantTicks(tickMarks(ticks))
	bar.Y.Tick.Label.Font.Variant = "Sans"
	bar.Y.Tick.Label.Font.Size = opts.TickFontSize
	bar.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true})

	return writePlots(surface, bar, dir, name, format, opts)
}

func styleAxis(ax *plot.Axis, label string, opts Options) {
	ax.Label.Text = label
	ax.Label.TextStyle.Font.Variant = "Sans"
	ax.Label.TextStyle.Font.Size = opts.LabelFontSize
	ax.Tick.Label.Font.Variant = "Sans"
	ax.Tick.Label.Font.Size = opts.TickFontSize
}

func tickMarks(values []float64) []plot.Tick {
	marks := make([]plot.Tick, len(values))
	for i, v := range values {
		marks[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)}
	}
	return marks
}

// writePlots lays the surface and colorbar side by side on a single
// canvas and writes the encoded image.
func writePlots(surface, bar *plot.Plot, dir, name, format string, opts Options) error {
	c, err := newCanvas(format, opts)
	if err != nil {
		return err
	}

	dc := draw.New(c)
	w := dc.Max.X - dc.Min.X
	barW := vg.Length(float64(w) * opts.BarWidthFrac)
	surface.Draw(draw.Crop(dc, 0, -barW, 0, 0))
	bar.Draw(draw.Crop(dc, w-barW, 0, 0, 0))

	out := filepath.Join(dir, OutputName(name, format))
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("write plot: %w", err)
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write plot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write plot: %w", err)
	}
	return nil
}

// newCanvas returns a writeable canvas for the output format. The
// raster backend honors the configured DPI and keeps the background
// transparent.
func newCanvas(format string, opts Options) (vg.CanvasWriterTo, error) {
	switch format {
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(
			vgimg.UseWH(opts.Width, opts.Height),
			vgimg.UseDPI(opts.DPI),
			vgimg.UseBackgroundColor(color.Transparent),
		)}, nil
	case "svg":
		return vgsvg.New(opts.Width, opts.Height), nil
	case "pdf":
		return vgpdf.New(opts.Width, opts.Height), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrFormat, format)
}

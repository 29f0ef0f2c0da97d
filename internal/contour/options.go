package contour

import "gonum.org/v1/plot/vg"

// Options configures contour rendering. Every call receives its own
// copy so there is no shared style state between files.
type Options struct {
	// Levels is the number of discrete color bands in the fill.
	Levels int

	// Font sizes for the axis labels and tick labels.
	LabelFontSize vg.Length
	TickFontSize  vg.Length

	// Canvas dimensions and raster resolution. The canvas is a fixed
	// size with no post-render bounding-box trim, so labels and the
	// colorbar must fit inside Width and Height.
	Width  vg.Length
	Height vg.Length
	DPI    int

	// BarWidthFrac is the fraction of canvas width reserved for the
	// colorbar on the right edge.
	BarWidthFrac float64
}

// DefaultOptions returns the fixed plot style used for EEM contour
// plots.
func DefaultOptions() Options {
	return Options{
		Levels:        100, // fine enough banding to read as a continuous fill
		LabelFontSize: vg.Points(18),
		TickFontSize:  vg.Points(14),
		Width:         6 * vg.Inch,
		Height:        4.5 * vg.Inch,
		DPI:           300,
		BarWidthFrac:  0.18,
	}
}

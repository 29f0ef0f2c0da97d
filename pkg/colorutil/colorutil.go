// Package colorutil provides shared color utilities for the EEM plotter.
package colorutil

import (
	"errors"
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
)

// Colormap range errors.
var (
	ErrEmptyRange = errors.New("colorutil: color map max must be greater than min")
	ErrOutOfRange = errors.New("colorutil: value out of color map range")
)

// jetAnchors are the anchor colors of the classic "jet" rainbow map,
// dark blue (low intensity) through dark red (high intensity).
var jetAnchors = []color.RGBA{
	{R: 0, G: 0, B: 128, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 0, G: 255, B: 255, A: 255},
	{R: 0, G: 255, B: 0, A: 255},
	{R: 255, G: 255, B: 0, A: 255},
	{R: 255, G: 128, B: 0, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
	{R: 128, G: 0, B: 0, A: 255},
}

// Jet is a continuous rainbow color map spanning the jet anchor
// colors. It implements palette.ColorMap, so it can back both a
// heat map fill and a color bar.
type Jet struct {
	min, max float64
	alpha    float64
}

var _ palette.ColorMap = (*Jet)(nil)

// NewJet returns an opaque Jet color map covering [min, max].
func NewJet(min, max float64) *Jet {
	return &Jet{min: min, max: max, alpha: 1}
}

// At returns the color for value v. Values outside [Min, Max] are an
// error, matching the palette.ColorMap contract. A sliver of rounding
// slack is allowed at the range edges.
func (j *Jet) At(v float64) (color.Color, error) {
	if j.max <= j.min {
		return nil, ErrEmptyRange
	}
	t := (v - j.min) / (j.max - j.min)
	if t < -1e-9 || t > 1+1e-9 {
		return nil, ErrOutOfRange
	}
	return j.scaleAlpha(Lerp(jetAnchors, t)), nil
}

// Alpha returns the opacity of the map.
func (j *Jet) Alpha() float64 { return j.alpha }

// SetAlpha sets the opacity, in [0, 1]. Values outside that range
// panic, following the palette convention.
func (j *Jet) SetAlpha(a float64) {
	if a < 0 || a > 1 {
		panic("colorutil: alpha out of range")
	}
	j.alpha = a
}

// scaleAlpha applies the map opacity to an alpha-premultiplied color.
func (j *Jet) scaleAlpha(c color.RGBA) color.RGBA {
	if j.alpha == 1 {
		return c
	}
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * j.alpha)),
		G: uint8(math.Round(float64(c.G) * j.alpha)),
		B: uint8(math.Round(float64(c.B) * j.alpha)),
		A: uint8(math.Round(float64(c.A) * j.alpha)),
	}
}

// Min returns the lowest mapped value.
func (j *Jet) Min() float64 { return j.min }

// SetMin sets the lowest mapped value.
func (j *Jet) SetMin(v float64) { j.min = v }

// Max returns the highest mapped value.
func (j *Jet) Max() float64 { return j.max }

// SetMax sets the highest mapped value.
func (j *Jet) SetMax(v float64) { j.max = v }

// Palette returns a discrete palette of n colors sampled evenly
// across the map. Used to band a continuous fill into n levels.
func (j *Jet) Palette(n int) palette.Palette {
	colors := make([]color.Color, n)
	for i := range colors {
		if n == 1 {
			colors[i] = j.scaleAlpha(jetAnchors[0])
			continue
		}
		colors[i] = j.scaleAlpha(Lerp(jetAnchors, float64(i)/float64(n-1)))
	}
	return jetPalette(colors)
}

type jetPalette []color.Color

func (p jetPalette) Colors() []color.Color { return p }

// Lerp linearly interpolates between evenly spaced anchor colors.
// t is clamped to [0, 1].
func Lerp(anchors []color.RGBA, t float64) color.RGBA {
	if t <= 0 || len(anchors) == 1 {
		return anchors[0]
	}
	if t >= 1 {
		return anchors[len(anchors)-1]
	}

	pos := t * float64(len(anchors)-1)
	i := int(math.Floor(pos))
	fr := pos - float64(i)

	a, b := anchors[i], anchors[i+1]
	return color.RGBA{
		R: blend(a.R, b.R, fr),
		G: blend(a.G, b.G, fr),
		B: blend(a.B, b.B, fr),
		A: blend(a.A, b.A, fr),
	}
}

func blend(a, b uint8, fr float64) uint8 {
	return uint8(math.Round(float64(a) + fr*(float64(b)-float64(a))))
}

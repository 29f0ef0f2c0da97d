package contour

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrDegenerate reports intensity data whose rounded maximum is not
// positive, leaving no usable colorbar scale.
var ErrDegenerate = errors.New("contour: no positive rounded intensity maximum")

// TickScale computes the colorbar scale for an intensity matrix:
// the data maximum rounded down to the nearest hundred, and six
// evenly spaced tick values from 0 to that maximum.
func TickScale(Z mat.Matrix) (maxZ float64, ticks []float64, err error) {
	maxZ = math.Floor(mat.Max(Z)/100) * 100
	// The negated comparison also rejects a NaN maximum.
	if math.IsInf(maxZ, 0) || !(maxZ > 0) {
		return 0, nil, ErrDegenerate
	}

	step := maxZ / 5
	ticks = make([]float64, 6)
	for i := range ticks {
		ticks[i] = step * float64(i)
	}
	return maxZ, ticks, nil
}

package field

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"wecswarm/internal/randsrc"
)

// sigma is the standard deviation of the gaussian kernel used both to
// build the initial field and to smooth each tick's perturbation
// (spec.md §4.1).
const sigma = 15.0

// Field is the 2-D scalar power field ("Ocean"). Cell (i, j) holds the
// power at row i (the y axis), column j (the x axis). Values live in
// [0, MaxPower]. A Field is mutated only by Perturb, which the
// orchestrator calls once per tick after every agent has stepped.
type Field struct {
	width, height int
	maxPower      float64
	data          []float64 // row-major, len == width*height
	rng           *randsrc.Stream
	kernel        []float64 // cached 1-D gaussian kernel, odd length
}

// New builds a width×height field: a grid of uniform noise, smoothed by
// an isotropic gaussian kernel (sigma=15), then min-max normalized onto
// [0, maxPower]. rng is retained and reused by Perturb so that the whole
// field's evolution is one reproducible draw sequence from the caller's
// seed (spec.md §9).
func New(width, height int, maxPower float64, rng *randsrc.Stream) *Field {
	f := &Field{
		width:    width,
		height:   height,
		maxPower: maxPower,
		data:     make([]float64, width*height),
		rng:      rng,
		kernel:   gaussianKernel(sigma),
	}

	for i := range f.data {
		f.data[i] = rng.Float64()
	}
	f.data = separableConvolve(f.data, width, height, f.kernel)
	normalize(f.data, maxPower)
	return f
}

// Width returns the field's column count.
func (f *Field) Width() int { return f.width }

// Height returns the field's row count.
func (f *Field) Height() int { return f.height }

// MaxPower returns the ceiling every cell is normalized into.
func (f *Field) MaxPower() float64 { return f.maxPower }

// Sample returns the bilinearly-interpolated power at continuous
// coordinates (x, y). x is clamped into [0, width-1] and y into
// [0, height-1] before interpolating, so Sample never goes out of grid
// bounds and Sample(width-1, height-1) returns the corner cell exactly
// (spec.md §8).
func (f *Field) Sample(x, y float64) float64 {
	xhat := clampf(x, 0, float64(f.width-1))
	yhat := clampf(y, 0, float64(f.height-1))

	j0 := int(math.Floor(xhat))
	i0 := int(math.Floor(yhat))
	j1 := minInt(j0+1, f.width-1)
	i1 := minInt(i0+1, f.height-1)

	dx := xhat - float64(j0)
	dy := yhat - float64(i0)

	q00 := f.at(i0, j0)
	q01 := f.at(i0, j1)
	q10 := f.at(i1, j0)
	q11 := f.at(i1, j1)

	return q00*(1-dx)*(1-dy) + q01*dx*(1-dy) + q10*(1-dx)*dy + q11*dx*dy
}

// Perturb draws white noise over the whole grid, smooths it with the
// same gaussian kernel used at construction, adds it to the current
// field, and renormalizes back onto [0, MaxPower] (spec.md §4.1). Called
// once per tick, after every agent has updated.
func (f *Field) Perturb() {
	noise := make([]float64, len(f.data))
	for i := range noise {
		noise[i] = f.rng.NormFloat64()
	}
	noise = separableConvolve(noise, f.width, f.height, f.kernel)

	for i := range f.data {
		f.data[i] += noise[i]
	}
	normalize(f.data, f.maxPower)
}

// Snapshot returns a row-major copy of the field for read-only external
// consumers (spec.md §6's field_snapshot). Mutating the result has no
// effect on the field.
func (f *Field) Snapshot() [][]float64 {
	out := make([][]float64, f.height)
	for i := 0; i < f.height; i++ {
		row := make([]float64, f.width)
		copy(row, f.data[i*f.width:(i+1)*f.width])
		out[i] = row
	}
	return out
}

func (f *Field) at(i, j int) float64 {
	return f.data[i*f.width+j]
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// gaussianKernel builds a normalized 1-D gaussian kernel truncated at
// +/-3 standard deviations, used for the separable 2-D convolution.
func gaussianKernel(sigma float64) []float64 {
	radius := int(math.Ceil(3 * sigma))
	dist := distuv.Normal{Mu: 0, Sigma: sigma}

	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for k := -radius; k <= radius; k++ {
		w := dist.Prob(float64(k))
		kernel[k+radius] = w
		sum += w
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// separableConvolve applies kernel along columns then rows, clamping
// out-of-grid taps to the nearest edge cell (a replicate-boundary stand
// in for scipy's default 'reflect' mode; the spec only requires a smooth
// low-frequency result renormalized to range, not bit-exact agreement
// with a particular boundary convention).
func separableConvolve(data []float64, width, height int, kernel []float64) []float64 {
	radius := (len(kernel) - 1) / 2

	tmp := make([]float64, width*height)
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			sum := 0.0
			for k := -radius; k <= radius; k++ {
				jj := clampInt(j+k, 0, width-1)
				sum += kernel[k+radius] * data[i*width+jj]
			}
			tmp[i*width+j] = sum
		}
	}

	out := make([]float64, width*height)
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			sum := 0.0
			for k := -radius; k <= radius; k++ {
				ii := clampInt(i+k, 0, height-1)
				sum += kernel[k+radius] * tmp[ii*width+j]
			}
			out[i*width+j] = sum
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// normalize min-max rescales data in place onto [0, maxPower]. A
// perfectly flat field (max == min) is a numerical degeneracy handled
// locally: every cell becomes maxPower/2 rather than dividing by zero
// (spec.md §7).
func normalize(data []float64, maxPower float64) {
	min, max := data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	span := max - min
	if span == 0 {
		flat := maxPower / 2
		for i := range data {
			data[i] = flat
		}
		return
	}

	for i, v := range data {
		data[i] = (v - min) / span * maxPower
	}
}

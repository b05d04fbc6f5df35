// Package film accumulates filtered radiance samples into a pixel grid
// and reconstructs the final image using weighted-filter splatting:
// every sample contributes filterWeight*value and filterWeight to
// every pixel within the filter's support, and the final pixel is the
// ratio of the two.
package film

import (
	"sync"

	"tracer/pkg/geom"
	"tracer/pkg/spectrum"
)

type pixel struct {
	xyz      [3]float32
	filterWeightSum float32
}

// Film owns the full-resolution pixel grid and reconstruction filter.
// Tile-local films (see TileFilm) merge into it under a per-stripe
// mutex so concurrent workers never block on a single global lock.
type Film struct {
	Width, Height int
	filter        Filter
	table         [filterTableWidth][filterTableWidth]float32
	pixels        []pixel

	stripeHeight int
	stripeLocks  []sync.Mutex
}

func NewFilm(width, height int, filter Filter) *Film {
	const stripeHeight = 64
	numStripes := (height + stripeHeight - 1) / stripeHeight
	return &Film{
		Width: width, Height: height,
		filter:       filter,
		table:        buildTable(filter),
		pixels:       make([]pixel, width*height),
		stripeHeight: stripeHeight,
		stripeLocks:  make([]sync.Mutex, numStripes),
	}
}

// Filter returns the film's reconstruction filter, so a render driver
// can size each worker's TileFilm consistently with the shared Film.
func (f *Film) Filter() Filter { return f.filter }

func (f *Film) filterWeight(dx, dy float32) float32 {
	rx, ry := f.filter.Radius()
	if rx == 0 || ry == 0 {
		return 0
	}
	ix := int(absf(dx) / rx * filterTableWidth)
	iy := int(absf(dy) / ry * filterTableWidth)
	if ix >= filterTableWidth {
		ix = filterTableWidth - 1
	}
	if iy >= filterTableWidth {
		iy = filterTableWidth - 1
	}
	return f.table[iy][ix]
}

// AddSample splats one sample at continuous film position p with
// radiance color into every pixel within the filter's support,
// guarding against NaN/negative radiance by discarding the sample
// rather than corrupting the whole pixel.
func (f *Film) AddSample(p geom.Point2, color spectrum.Spectrum) {
	if color.HasNaN() || color.R < 0 || color.G < 0 || color.B < 0 {
		return
	}
	rx, ry := f.filter.Radius()
	x0 := int(p.X - rx + 0.5)
	x1 := int(p.X + rx + 0.5)
	y0 := int(p.Y - ry + 0.5)
	y1 := int(p.Y + ry + 0.5)
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > f.Width {
		x1 = f.Width
	}
	if y1 > f.Height {
		y1 = f.Height
	}

	for y := y0; y < y1; y++ {
		stripe := y / f.stripeHeight
		f.stripeLocks[stripe].Lock()
		for x := x0; x < x1; x++ {
			w := f.filterWeight(float32(x)+0.5-p.X, float32(y)+0.5-p.Y)
			if w == 0 {
				continue
			}
			px := &f.pixels[y*f.Width+x]
			px.xyz[0] += w * color.R
			px.xyz[1] += w * color.G
			px.xyz[2] += w * color.B
			px.filterWeightSum += w
		}
		f.stripeLocks[stripe].Unlock()
	}
}

// Merge adds a tile-local film's pixels into f, acquiring only the
// stripe locks the tile's rows touch.
func (f *Film) Merge(tile *TileFilm) {
	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		stripe := y / f.stripeHeight
		f.stripeLocks[stripe].Lock()
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			tp := tile.at(x, y)
			if tp.filterWeightSum == 0 {
				continue
			}
			fp := &f.pixels[y*f.Width+x]
			fp.xyz[0] += tp.xyz[0]
			fp.xyz[1] += tp.xyz[1]
			fp.xyz[2] += tp.xyz[2]
			fp.filterWeightSum += tp.filterWeightSum
		}
		f.stripeLocks[stripe].Unlock()
	}
}

// ToRGB resolves the accumulated (weight*value, weight) pairs into the
// final linear RGB buffer, dividing by the filter weight sum (floored
// at a small epsilon to avoid a division blowup on an unsampled pixel).
func (f *Film) ToRGB() []spectrum.Spectrum {
	const eps = 1e-6
	out := make([]spectrum.Spectrum, len(f.pixels))
	for i, p := range f.pixels {
		w := p.filterWeightSum
		if w < eps {
			out[i] = spectrum.Black
			continue
		}
		out[i] = spectrum.RGB(p.xyz[0]/w, p.xyz[1]/w, p.xyz[2]/w)
	}
	return out
}

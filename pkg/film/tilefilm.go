package film

import (
	"tracer/pkg/geom"
	"tracer/pkg/spectrum"
)

// TileFilm is a worker-local pixel buffer covering Bounds plus the
// filter's support overlap into neighboring tiles, so a sample near a
// tile edge still splats correctly without touching the shared Film
// directly. Workers accumulate into their own TileFilm and hand it to
// Film.Merge once the tile is done.
type TileFilm struct {
	Bounds  geom.Bounds2i
	filter  Filter
	table   [filterTableWidth][filterTableWidth]float32
	width   int
	pixels  []pixel
}

// NewTileFilm allocates a tile buffer expanded by the filter's radius
// in each direction and clipped to the full film's extent.
func NewTileFilm(tileBounds geom.Bounds2i, filmWidth, filmHeight int, filter Filter) *TileFilm {
	rx, ry := filter.Radius()
	expanded := geom.Bounds2i{
		Min: geom.Point2i{X: maxInt(0, tileBounds.Min.X-int(rx)), Y: maxInt(0, tileBounds.Min.Y-int(ry))},
		Max: geom.Point2i{X: minInt(filmWidth, tileBounds.Max.X+int(rx)+1), Y: minInt(filmHeight, tileBounds.Max.Y+int(ry)+1)},
	}
	w := expanded.Max.X - expanded.Min.X
	h := expanded.Max.Y - expanded.Min.Y
	return &TileFilm{
		Bounds: expanded,
		filter: filter,
		table:  buildTable(filter),
		width:  w,
		pixels: make([]pixel, w*h),
	}
}

func (t *TileFilm) at(x, y int) pixel {
	return t.pixels[(y-t.Bounds.Min.Y)*t.width+(x-t.Bounds.Min.X)]
}

func (t *TileFilm) filterWeight(dx, dy float32) float32 {
	rx, ry := t.filter.Radius()
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
	return t.table[iy][ix]
}

func (t *TileFilm) AddSample(p geom.Point2, color spectrum.Spectrum) {
	if color.HasNaN() || color.R < 0 || color.G < 0 || color.B < 0 {
		return
	}
	rx, ry := t.filter.Radius()
	x0 := maxInt(t.Bounds.Min.X, int(p.X-rx+0.5))
	x1 := minInt(t.Bounds.Max.X, int(p.X+rx+0.5))
	y0 := maxInt(t.Bounds.Min.Y, int(p.Y-ry+0.5))
	y1 := minInt(t.Bounds.Max.Y, int(p.Y+ry+0.5))

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			w := t.filterWeight(float32(x)+0.5-p.X, float32(y)+0.5-p.Y)
			if w == 0 {
				continue
			}
			idx := (y-t.Bounds.Min.Y)*t.width + (x - t.Bounds.Min.X)
			px := &t.pixels[idx]
			px.xyz[0] += w * color.R
			px.xyz[1] += w * color.G
			px.xyz[2] += w * color.B
			px.filterWeightSum += w
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package film

import (
	"math"
	"testing"

	"tracer/pkg/geom"
	"tracer/pkg/spectrum"
)

func TestBoxFilterSplatsIntoSinglePixel(t *testing.T) {
	f := NewFilm(4, 4, NewBoxFilter())
	f.AddSample(geom.Point2{X: 2.5, Y: 2.5}, spectrum.White)
	rgb := f.ToRGB()
	px := rgb[2*4+2]
	if math.Abs(float64(px.R-1)) > 1e-4 {
		t.Errorf("expected the sampled pixel to resolve to white, got %v", px)
	}
	if !rgb[0].IsBlack() {
		t.Errorf("expected untouched pixels to remain black")
	}
}

func TestAddSampleIgnoresNaN(t *testing.T) {
	f := NewFilm(2, 2, NewBoxFilter())
	f.AddSample(geom.Point2{X: 1, Y: 1}, spectrum.RGB(float32(math.NaN()), 0, 0))
	rgb := f.ToRGB()
	for _, p := range rgb {
		if p.HasNaN() {
			t.Fatalf("NaN sample should have been discarded")
		}
	}
}

func TestTriangleFilterSpreadsAcrossNeighbors(t *testing.T) {
	f := NewFilm(4, 4, NewTriangleFilter(1.5, 1.5))
	f.AddSample(geom.Point2{X: 2, Y: 2}, spectrum.White)
	rgb := f.ToRGB()
	nonBlack := 0
	for _, p := range rgb {
		if !p.IsBlack() {
			nonBlack++
		}
	}
	if nonBlack < 2 {
		t.Errorf("expected a wide filter to touch more than one pixel, got %d", nonBlack)
	}
}

func TestMergeTileFilmIntoFilm(t *testing.T) {
	filter := NewBoxFilter()
	f := NewFilm(8, 8, filter)
	tileBounds := geom.Bounds2i{Min: geom.Point2i{X: 4, Y: 4}, Max: geom.Point2i{X: 8, Y: 8}}
	tile := NewTileFilm(tileBounds, 8, 8, filter)
	tile.AddSample(geom.Point2{X: 5.5, Y: 5.5}, spectrum.RGB(1, 0, 0))
	f.Merge(tile)
	rgb := f.ToRGB()
	if rgb[5*8+5].R != 1 {
		t.Errorf("expected merged tile sample to land at (5,5), got %v", rgb[5*8+5])
	}
}

func TestMitchellFilterIsSymmetric(t *testing.T) {
	m := NewMitchellFilter(2, 2, 1.0/3, 1.0/3)
	if math.Abs(float64(m.Evaluate(0.5, 0)-m.Evaluate(-0.5, 0))) > 1e-5 {
		t.Errorf("expected mitchell filter to be symmetric about zero")
	}
}

package render

import (
	"testing"

	"tracer/pkg/camera"
	"tracer/pkg/film"
	"tracer/pkg/geom"
	"tracer/pkg/integrator"
	"tracer/pkg/light"
	"tracer/pkg/material"
	"tracer/pkg/sampler"
	"tracer/pkg/scene"
	"tracer/pkg/shape"
	"tracer/pkg/spectrum"
	"tracer/pkg/texture"
)

func TestTileQueueCoversEveryPixelOnce(t *testing.T) {
	q := NewTileQueue(40, 20, 16)
	seen := make(map[geom.Point2i]bool)
	for {
		tile, ok := q.Next()
		if !ok {
			break
		}
		for _, p := range tile.Pixels() {
			if seen[p] {
				t.Fatalf("pixel %v covered twice", p)
			}
			seen[p] = true
		}
	}
	if len(seen) != 40*20 {
		t.Fatalf("expected %d pixels covered, got %d", 40*20, len(seen))
	}
}

func TestTileQueueExhausts(t *testing.T) {
	q := NewTileQueue(16, 16, 16)
	if _, ok := q.Next(); !ok {
		t.Fatal("expected one tile")
	}
	if _, ok := q.Next(); ok {
		t.Fatal("expected queue to be exhausted")
	}
}

func TestRenderProducesNonBlackImage(t *testing.T) {
	cam := camera.NewPerspective(geom.Identity(), 16, 16, 60, 0, 1e6)
	b := scene.NewBuilder(cam)
	sph := shape.NewSphere(geom.Translate(geom.Vec3{Z: 5}), false, 2)
	mat := material.NewMatte(texture.ConstantSpectrum(spectrum.Gray(0.8)), nil, nil)
	b.AddShape([]shape.Shape{sph}, mat, nil, false)
	b.AddLight(light.NewPointLight(geom.Point3{X: 2, Y: 2, Z: 0}, spectrum.Gray(60)))
	sc := b.Build()

	f := film.NewFilm(16, 16, film.NewBoxFilter())
	integ := integrator.NewDirectLighting(integrator.UniformSampleOne, 3)
	samplerProto := sampler.NewZeroTwoSequence(4, 1)

	stats := Render(sc, f, integ, samplerProto, Options{NumWorkers: 2, TileSize: 8, SamplesPerPixel: 4})
	if stats.TilesRendered == 0 {
		t.Fatal("expected at least one tile rendered")
	}

	rgb := f.ToRGB()
	anyLit := false
	for _, c := range rgb {
		if !c.IsBlack() {
			anyLit = true
			break
		}
	}
	if !anyLit {
		t.Fatal("expected at least one lit pixel in the rendered image")
	}
}

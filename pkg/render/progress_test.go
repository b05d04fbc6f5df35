package render

import (
	"sync"
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

type recordingSink struct {
	mu    sync.Mutex
	calls [][2]int
}

func (r *recordingSink) Report(done, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, [2]int{done, total})
}

func TestProgressReporterDeliversEveryEvent(t *testing.T) {
	sink := &recordingSink{}
	r := NewProgressReporter(sink, 10)
	for i := 1; i <= 10; i++ {
		r.TileComplete(i)
	}
	r.Close()

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.calls) != 10 {
		t.Fatalf("expected 10 reported events, got %d", len(sink.calls))
	}
	for i, c := range sink.calls {
		if c[0] != i+1 || c[1] != 10 {
			t.Fatalf("event %d: got (%d, %d), want (%d, 10)", i, c[0], c[1], i+1)
		}
	}
}

func TestRenderReportsProgressPerTile(t *testing.T) {
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

	sink := &recordingSink{}
	total := NewTileQueue(16, 16, 8).NumTiles
	reporter := NewProgressReporter(sink, total)

	Render(sc, f, integ, samplerProto, Options{NumWorkers: 2, TileSize: 8, SamplesPerPixel: 4, Progress: reporter})
	reporter.Close()

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.calls) != total {
		t.Fatalf("expected %d progress events, got %d", total, len(sink.calls))
	}
}

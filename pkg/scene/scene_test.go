package scene

import (
	"testing"

	"tracer/pkg/camera"
	"tracer/pkg/geom"
	"tracer/pkg/material"
	"tracer/pkg/shape"
	"tracer/pkg/spectrum"
	"tracer/pkg/texture"
)

func testCamera() camera.Camera {
	return camera.NewPerspective(geom.Identity(), 64, 64, 60, 0, 1e6)
}

func TestBuilderBuildsIntersectableScene(t *testing.T) {
	sph := shape.NewSphere(geom.Translate(geom.Vec3{Z: 4}), false, 1)
	mat := material.NewMatte(texture.ConstantSpectrum(spectrum.Gray(0.5)), nil, nil)
	b := NewBuilder(testCamera())
	b.AddShape([]shape.Shape{sph}, mat, nil, false)
	sc := b.Build()

	ray := geom.NewRayAt(geom.Point3{}, geom.Vec3{Z: 1}, 0)
	si, hit := sc.Intersect(&ray)
	if !hit {
		t.Fatal("expected hit")
	}
	if si.P.Z <= 0 {
		t.Fatalf("unexpected hit point %v", si.P)
	}
}

func TestBuilderAreaLight(t *testing.T) {
	sph := shape.NewSphere(geom.Translate(geom.Vec3{Z: 4}), false, 1)
	mat := material.NewMatte(texture.ConstantSpectrum(spectrum.Gray(0.5)), nil, nil)
	lemit := spectrum.Gray(5)
	b := NewBuilder(testCamera())
	b.AddShape([]shape.Shape{sph}, mat, &lemit, false)
	sc := b.Build()

	if len(sc.Lights) != 1 {
		t.Fatalf("expected 1 light, got %d", len(sc.Lights))
	}
	if sc.Lights[0].IsDelta() {
		t.Fatal("area light should not be delta")
	}
}

func TestMakeShapesSphere(t *testing.T) {
	ps := NewParamSet()
	ps.AddFloat("radius", []float32{2})
	shapes := MakeShapes("sphere", geom.Identity(), false, ps)
	if len(shapes) != 1 {
		t.Fatalf("expected 1 shape, got %d", len(shapes))
	}
	b := shapes[0].WorldBound()
	if b.Max.X != 2 {
		t.Fatalf("expected radius 2 bound, got %v", b)
	}
}

func TestMakeLightPoint(t *testing.T) {
	ps := NewParamSet()
	ps.AddSpectrum("I", []spectrum.Spectrum{spectrum.Gray(10)})
	l := MakeLight("point", geom.Identity(), 10, ps)
	if l == nil || !l.IsDelta() {
		t.Fatal("expected a delta point light")
	}
}

func TestMakeMaterialUnknownFallsBackToMatte(t *testing.T) {
	mp := NewTextureParams(NewParamSet(), NewParamSet(), nil, nil)
	mat := MakeMaterial("nonexistent", mp)
	if _, ok := mat.(*material.Matte); !ok {
		t.Fatalf("expected fallback to matte, got %T", mat)
	}
}

func TestMakeMaterialDisney(t *testing.T) {
	mp := NewTextureParams(NewParamSet(), NewParamSet(), nil, nil)
	mat := MakeMaterial("disney", mp)
	if _, ok := mat.(*material.Disney); !ok {
		t.Fatalf("expected *material.Disney, got %T", mat)
	}
}

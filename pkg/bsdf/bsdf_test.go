package bsdf

import (
	"math"
	"testing"

	"tracer/pkg/geom"
	"tracer/pkg/shape"
	"tracer/pkg/spectrum"
)

func flatSurfaceInteraction() shape.SurfaceInteraction {
	si := shape.SurfaceInteraction{
		P: geom.NewPoint3(0, 0, 0),
		N: geom.NewNormal(0, 0, 1),
	}
	si.SetShadingGeometry(si.N, geom.NewVec3(1, 0, 0), geom.NewVec3(0, 1, 0), true)
	return si
}

func TestLambertianFIsConstant(t *testing.T) {
	l := NewLambertianReflection(spectrum.RGB(0.5, 0.5, 0.5))
	wo := geom.NewVec3(0, 0, 1)
	wi := geom.NewVec3(0.3, 0.1, 0.9).Normalize()
	f := l.F(wo, wi)
	want := float32(0.5 / math.Pi)
	if math.Abs(float64(f.R-want)) > 1e-5 {
		t.Errorf("Lambertian F: got %v want %v", f.R, want)
	}
}

func TestBSDFCombinesMultipleLobes(t *testing.T) {
	b := NewBSDF(flatSurfaceInteraction(), 1)
	b.Add(NewLambertianReflection(spectrum.RGB(0.5, 0.5, 0.5)))
	b.Add(NewOrenNayar(spectrum.RGB(0.2, 0.2, 0.2), 20))

	if got, want := b.NumComponents(All), 2; got != want {
		t.Fatalf("NumComponents: got %d want %d", got, want)
	}

	wo := geom.NewVec3(0, 0, 1)
	wi := geom.NewVec3(0, 0, 1)
	f := b.F(wo, wi, All)
	if f.IsBlack() {
		t.Errorf("expected nonzero combined reflectance")
	}
}

func TestSpecularReflectionSampleF(t *testing.T) {
	s := NewSpecularReflection(spectrum.White, FresnelNoOp{})
	wo := geom.NewVec3(0.3, 0, 0.95).Normalize()
	f, wi, pdf, sampledType := s.SampleF(wo, geom.Point2{})
	if pdf != 1 {
		t.Errorf("specular pdf should be 1, got %v", pdf)
	}
	if sampledType&Specular == 0 {
		t.Errorf("expected Specular in sampled type")
	}
	if math.Abs(float64(wi.X+wo.X)) > 1e-5 || math.Abs(float64(wi.Z-wo.Z)) > 1e-5 {
		t.Errorf("mirror reflection should flip x/y and keep z: wo=%v wi=%v", wo, wi)
	}
	if f.IsBlack() {
		t.Errorf("expected nonzero specular contribution")
	}
}

func TestFrDielectricNormalIncidence(t *testing.T) {
	r := FrDielectric(1, 1, 1.5)
	want := float32(0.04)
	if math.Abs(float64(r-want)) > 1e-3 {
		t.Errorf("FrDielectric at normal incidence: got %v want ~%v", r, want)
	}
}

func TestRoughnessToAlphaMonotonic(t *testing.T) {
	a1 := RoughnessToAlpha(0.1)
	a2 := RoughnessToAlpha(0.9)
	if a1 >= a2 {
		t.Errorf("expected alpha to increase with roughness: a(0.1)=%v a(0.9)=%v", a1, a2)
	}
}

func TestPowerHeuristicSymmetric(t *testing.T) {
	w := PowerHeuristic(1, 0.5, 1, 0.5)
	if math.Abs(float64(w-0.5)) > 1e-6 {
		t.Errorf("equal pdfs should split weight evenly, got %v", w)
	}
}

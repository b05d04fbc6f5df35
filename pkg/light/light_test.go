package light

import (
	"math"
	"testing"

	"tracer/pkg/geom"
	"tracer/pkg/shape"
	"tracer/pkg/spectrum"
	"tracer/pkg/texture"
)

func TestPointLightFalloff(t *testing.T) {
	pl := NewPointLight(geom.NewPoint3(0, 0, 0), spectrum.RGB(1, 1, 1))
	ref := Interaction{P: geom.NewPoint3(2, 0, 0)}
	li, wi, pdf, _ := pl.SampleLi(ref, geom.Point2{})
	want := float32(0.25) // 1 / 2^2
	if math.Abs(float64(li.R-want)) > 1e-5 {
		t.Errorf("expected inverse-square falloff %v, got %v", want, li.R)
	}
	if wi.X != -1 {
		t.Errorf("expected direction pointing back at the light, got %v", wi)
	}
	if pdf != 1 {
		t.Errorf("delta light pdf should be 1, got %v", pdf)
	}
}

func TestDistantLightDeliversConstantRadiance(t *testing.T) {
	dl := NewDistantLight(geom.NewVec3(0, -1, 0), spectrum.White, 100)
	ref := Interaction{P: geom.NewPoint3(5, 5, 5)}
	li, wi, pdf, _ := dl.SampleLi(ref, geom.Point2{})
	if li != spectrum.White {
		t.Errorf("expected constant radiance, got %v", li)
	}
	if wi.Y <= 0 {
		t.Errorf("expected direction pointing up toward the sun, got %v", wi)
	}
	if pdf != 1 {
		t.Errorf("expected delta pdf 1, got %v", pdf)
	}
}

func TestDiffuseAreaLightOneSidedEmitsOnlyForward(t *testing.T) {
	s := shape.NewSphere(geom.Identity(), false, 1)
	al := NewDiffuseAreaLight(s, spectrum.White, false)
	n := geom.NewNormal(0, 0, 1)
	if al.L(geom.NewPoint3(0, 0, 1), n, geom.NewVec3(0, 0, 1)).IsBlack() {
		t.Errorf("expected emission on the forward side")
	}
	if !al.L(geom.NewPoint3(0, 0, 1), n, geom.NewVec3(0, 0, -1)).IsBlack() {
		t.Errorf("expected no emission on the back side of a one-sided light")
	}
}

func TestInfiniteAreaLightBrightRegionIsImportanceSampled(t *testing.T) {
	w, h := 8, 4
	texels := make([]spectrum.Spectrum, w*h)
	for i := range texels {
		texels[i] = spectrum.Gray(0.01)
	}
	texels[2*w+4] = spectrum.RGB(100, 100, 100) // one bright texel
	mip := texture.NewMIPMap(w, h, texels, texture.WrapRepeat)
	il := NewInfiniteAreaLight(mip, geom.Identity(), 10)

	bright := 0
	for i := 0; i < 200; i++ {
		u := geom.Point2{X: float32(i%16) / 16, Y: float32((i*7)%11) / 11}
		_, _, pdf, _ := il.SampleLi(Interaction{P: geom.NewPoint3(0, 0, 0)}, u)
		if pdf > 1 {
			bright++
		}
	}
	if bright == 0 {
		t.Errorf("expected at least some samples to land in the high-pdf bright region")
	}
}

package texture

import (
	"math"
	"testing"

	"tracer/pkg/geom"
	"tracer/pkg/shape"
	"tracer/pkg/spectrum"
)

func siWithUV(u, v float32) shape.SurfaceInteraction {
	return shape.SurfaceInteraction{UV: geom.Point2{X: u, Y: v}}
}

func TestCheckerboardAlternates(t *testing.T) {
	c := CheckerboardSpectrum{
		Tex1:   ConstantSpectrum(spectrum.White),
		Tex2:   ConstantSpectrum(spectrum.Black),
		UScale: 1, VScale: 1,
	}
	if got := c.Evaluate(siWithUV(0.1, 0.1)); got != spectrum.White {
		t.Errorf("expected white at (0,0) cell, got %v", got)
	}
	if got := c.Evaluate(siWithUV(1.1, 0.1)); got != spectrum.Black {
		t.Errorf("expected black at (1,0) cell, got %v", got)
	}
}

func TestMIPMapSingleTexelLookup(t *testing.T) {
	texels := []spectrum.Spectrum{spectrum.RGB(1, 0, 0), spectrum.RGB(0, 1, 0), spectrum.RGB(0, 0, 1), spectrum.RGB(1, 1, 1)}
	mip := NewMIPMap(2, 2, texels, WrapClamp)
	if mip.Levels() < 2 {
		t.Fatalf("expected at least 2 mip levels for a 2x2 image, got %d", mip.Levels())
	}
	top := mip.texel(mip.Levels()-1, 0, 0)
	avg := spectrum.RGB(0.5, 0.5, 0.5)
	if math.Abs(float64(top.R-avg.R)) > 1e-4 {
		t.Errorf("coarsest mip level should average all texels: got %v", top)
	}
}

func TestMIPMapResamplesNonPowerOfTwo(t *testing.T) {
	texels := make([]spectrum.Spectrum, 3*5)
	for i := range texels {
		texels[i] = spectrum.RGB(0.5, 0.5, 0.5)
	}
	mip := NewMIPMap(3, 5, texels, WrapRepeat)
	if !isPowerOf2(mip.Width()) || !isPowerOf2(mip.Height()) {
		t.Errorf("expected power-of-two base level, got %dx%d", mip.Width(), mip.Height())
	}
}

func TestFBmIsBounded(t *testing.T) {
	fbm := NewFBmFloat(4, 0.5, 1)
	for i := 0; i < 20; i++ {
		si := shape.SurfaceInteraction{P: geom.NewPoint3(float32(i)*0.37, float32(i)*0.11, float32(i)*0.91)}
		v := fbm.Evaluate(si)
		if v < -1.5 || v > 1.5 {
			t.Errorf("fbm value out of expected range: %v", v)
		}
	}
}

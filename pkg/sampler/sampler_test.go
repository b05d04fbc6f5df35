package sampler

import (
	"testing"

	"tracer/pkg/geom"
)

func TestRoundCountRoundsUpToPowerOfTwo(t *testing.T) {
	s := NewZeroTwoSequence(10, 1)
	if s.SamplesPerPixel() != 16 {
		t.Errorf("expected 10 spp rounded up to 16, got %d", s.SamplesPerPixel())
	}
}

func TestSamplesAreDeterministicGivenPixelAndSeed(t *testing.T) {
	a := NewZeroTwoSequence(4, 42)
	b := NewZeroTwoSequence(4, 42)
	p := geom.Point2i{X: 3, Y: 7}
	a.StartPixel(p)
	b.StartPixel(p)
	for i := 0; i < 4; i++ {
		if a.Get2D() != b.Get2D() {
			t.Fatalf("same pixel+seed should produce identical sample %d", i)
		}
		if !a.StartNextSample() {
			break
		}
		b.StartNextSample()
	}
}

func TestDifferentPixelsDecorrelate(t *testing.T) {
	s := NewZeroTwoSequence(4, 1)
	s.StartPixel(geom.Point2i{X: 0, Y: 0})
	v1 := s.Get2D()
	s.StartPixel(geom.Point2i{X: 50, Y: 50})
	v2 := s.Get2D()
	if v1 == v2 {
		t.Errorf("expected samples from distinct pixels to differ")
	}
}

func TestSamplesStayInUnitRange(t *testing.T) {
	s := NewZeroTwoSequence(8, 7)
	s.StartPixel(geom.Point2i{X: 2, Y: 2})
	for {
		v := s.Get2D()
		if v.X < 0 || v.X >= 1 || v.Y < 0 || v.Y >= 1 {
			t.Fatalf("sample out of [0,1): %v", v)
		}
		if !s.StartNextSample() {
			break
		}
	}
}

func TestGetCameraSampleOffsetsIntoPixel(t *testing.T) {
	s := NewZeroTwoSequence(4, 3)
	p := geom.Point2i{X: 10, Y: 20}
	s.StartPixel(p)
	cs := s.GetCameraSample(p)
	if cs.PFilm.X < 10 || cs.PFilm.X >= 11 || cs.PFilm.Y < 20 || cs.PFilm.Y >= 21 {
		t.Errorf("camera sample film position should lie within the pixel, got %v", cs.PFilm)
	}
}

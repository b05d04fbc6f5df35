package integrator

import (
	"testing"

	"tracer/pkg/camera"
	"tracer/pkg/geom"
	"tracer/pkg/light"
	"tracer/pkg/material"
	"tracer/pkg/sampler"
	"tracer/pkg/scene"
	"tracer/pkg/shape"
	"tracer/pkg/spectrum"
	"tracer/pkg/texture"
)

func pointLight(t *testing.T) light.Light {
	t.Helper()
	return light.NewPointLight(geom.Point3{X: 2, Y: 2, Z: 0}, spectrum.Gray(40))
}

func buildTestScene(t *testing.T) *scene.Scene {
	t.Helper()
	cam := camera.NewPerspective(geom.Identity(), 32, 32, 60, 0, 1e6)
	b := scene.NewBuilder(cam)

	sph := shape.NewSphere(geom.Translate(geom.Vec3{Z: 5}), false, 1)
	mat := material.NewMatte(texture.ConstantSpectrum(spectrum.Gray(0.5)), nil, nil)
	b.AddShape([]shape.Shape{sph}, mat, nil, false)

	return b.Build()
}

func TestPathIntegratorDirectHit(t *testing.T) {
	sc := buildTestScene(t)

	s := sampler.NewZeroTwoSequence(4, 1)
	s.StartPixel(geom.Point2i{})

	ray := geom.NewRayAt(geom.Point3{}, geom.Vec3{Z: 1}, 0)
	p := NewPath(5, 3)
	l := p.Li(ray, sc, s, 0)
	if l.HasNaN() {
		t.Fatalf("NaN radiance: %v", l)
	}
}

func TestPathIntegratorMiss(t *testing.T) {
	sc := buildTestScene(t)
	s := sampler.NewZeroTwoSequence(1, 2)
	s.StartPixel(geom.Point2i{})
	ray := geom.NewRayAt(geom.Point3{}, geom.Vec3{Z: -1}, 0)
	p := NewPath(5, 3)
	l := p.Li(ray, sc, s, 0)
	if !l.IsBlack() {
		t.Fatalf("expected black miss with no lights, got %v", l)
	}
}

func TestNormalIntegrator(t *testing.T) {
	sc := buildTestScene(t)
	s := sampler.NewZeroTwoSequence(1, 3)
	s.StartPixel(geom.Point2i{})
	ray := geom.NewRayAt(geom.Point3{}, geom.Vec3{Z: 1}, 0)
	n := NewNormal()
	l := n.Li(ray, sc, s, 0)
	if l.IsBlack() {
		t.Fatal("expected a nonzero normal color on a direct hit")
	}
}

func TestDirectLightingWithPointLight(t *testing.T) {
	cam := camera.NewPerspective(geom.Identity(), 32, 32, 60, 0, 1e6)
	b := scene.NewBuilder(cam)
	sph := shape.NewSphere(geom.Translate(geom.Vec3{Z: 5}), false, 1)
	mat := material.NewMatte(texture.ConstantSpectrum(spectrum.Gray(0.5)), nil, nil)
	b.AddShape([]shape.Shape{sph}, mat, nil, false)
	b.AddLight(pointLight(t))
	sc := b.Build()

	s := sampler.NewZeroTwoSequence(4, 5)
	s.StartPixel(geom.Point2i{})
	ray := geom.NewRayAt(geom.Point3{}, geom.Vec3{Z: 1}, 0)
	d := NewDirectLighting(UniformSampleOne, 5)
	l := d.Li(ray, sc, s, 0)
	if l.IsBlack() {
		t.Fatal("expected nonzero direct lighting from a point light")
	}
}

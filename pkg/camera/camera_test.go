package camera

import (
	"testing"

	"tracer/pkg/geom"
	"tracer/pkg/sampler"
)

func TestGenerateRayCentersOnScreenForCenterPixel(t *testing.T) {
	cam := NewPerspective(geom.Identity(), 200, 100, 60, 0, 0)
	s := sampler.CameraSample{PFilm: geom.Point2{X: 100, Y: 50}}
	ray, weight := cam.GenerateRay(s)
	if weight != 1 {
		t.Errorf("expected unit weight for a pinhole camera, got %v", weight)
	}
	if absf(ray.Direction.X) > 0.05 || absf(ray.Direction.Y) > 0.05 {
		t.Errorf("expected the center pixel's ray to point roughly down +z, got %v", ray.Direction)
	}
	if ray.Direction.Z <= 0 {
		t.Errorf("expected the camera to look down +z, got %v", ray.Direction)
	}
}

func TestGenerateRayCornersDivergeFromCenter(t *testing.T) {
	cam := NewPerspective(geom.Identity(), 200, 100, 60, 0, 0)
	center, _ := cam.GenerateRay(sampler.CameraSample{PFilm: geom.Point2{X: 100, Y: 50}})
	corner, _ := cam.GenerateRay(sampler.CameraSample{PFilm: geom.Point2{X: 0, Y: 0}})
	if corner.Direction == center.Direction {
		t.Errorf("expected distinct ray directions for center vs corner pixels")
	}
}

func TestDepthOfFieldPerturbsOrigin(t *testing.T) {
	cam := NewPerspective(geom.Identity(), 200, 100, 60, 0.5, 5)
	s := sampler.CameraSample{PFilm: geom.Point2{X: 100, Y: 50}, PLens: geom.Point2{X: 0.9, Y: 0.1}}
	ray, _ := cam.GenerateRay(s)
	if ray.Origin.X == 0 && ray.Origin.Y == 0 {
		t.Errorf("expected a nonzero lens offset to perturb the ray origin")
	}
}

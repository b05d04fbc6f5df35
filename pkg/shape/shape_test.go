package shape

import (
	"math"
	"testing"

	"tracer/pkg/geom"
)

func TestSphereIntersectCentered(t *testing.T) {
	s := NewSphere(geom.Identity(), false, 1)
	ray := geom.NewRay(geom.NewPoint3(0, 0, -5), geom.NewVec3(0, 0, 1))
	si, ok := s.Intersect(&ray)
	if !ok {
		t.Fatal("expected hit")
	}
	if got, want := si.P.Z, float32(-1); math.Abs(float64(got-want)) > 1e-4 {
		t.Errorf("hit point z: got %v want %v", got, want)
	}
	if ray.TMax >= float32(math.Inf(1)) {
		t.Errorf("ray.TMax should have shrunk to the hit distance")
	}
}

func TestSphereIntersectMiss(t *testing.T) {
	s := NewSphere(geom.Identity(), false, 1)
	ray := geom.NewRay(geom.NewPoint3(5, 5, -5), geom.NewVec3(0, 0, 1))
	if _, ok := s.Intersect(&ray); ok {
		t.Errorf("expected miss")
	}
}

func TestSphereWorldBoundTranslated(t *testing.T) {
	o2w := geom.Translate(geom.NewVec3(3, 0, 0))
	s := NewSphere(o2w, false, 2)
	b := s.WorldBound()
	if b.Centroid().Distance(geom.NewPoint3(3, 0, 0)) > 1e-4 {
		t.Errorf("unexpected world bound centroid %v", b.Centroid())
	}
}

func TestDiskIntersect(t *testing.T) {
	d := NewDisk(geom.Identity(), false, 0, 1, 0, 360)
	ray := geom.NewRay(geom.NewPoint3(0.5, 0, -5), geom.NewVec3(0, 0, 1))
	si, ok := d.Intersect(&ray)
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(float64(si.P.Z)) > 1e-4 {
		t.Errorf("disk hit should lie in z=0 plane, got %v", si.P.Z)
	}
}

func TestTriangleIntersect(t *testing.T) {
	p := []geom.Point3{
		geom.NewPoint3(-1, -1, 0),
		geom.NewPoint3(1, -1, 0),
		geom.NewPoint3(0, 1, 0),
	}
	mesh := NewTriangleMesh(geom.Identity(), p, nil, nil, []int{0, 1, 2})
	tris := Triangles(mesh, false)
	ray := geom.NewRay(geom.NewPoint3(0, 0, -5), geom.NewVec3(0, 0, 1))
	si, ok := tris[0].Intersect(&ray)
	if !ok {
		t.Fatal("expected hit through triangle centroid")
	}
	if si.P.Distance(geom.NewPoint3(0, 0, 0)) > 1e-3 {
		t.Errorf("unexpected hit point %v", si.P)
	}
}

func TestTriangleIntersectMissesOutsideEdges(t *testing.T) {
	p := []geom.Point3{
		geom.NewPoint3(-1, -1, 0),
		geom.NewPoint3(1, -1, 0),
		geom.NewPoint3(0, 1, 0),
	}
	mesh := NewTriangleMesh(geom.Identity(), p, nil, nil, []int{0, 1, 2})
	tris := Triangles(mesh, false)
	ray := geom.NewRay(geom.NewPoint3(5, 5, -5), geom.NewVec3(0, 0, 1))
	if _, ok := tris[0].Intersect(&ray); ok {
		t.Errorf("expected miss outside triangle bounds")
	}
}

func TestCylinderIntersect(t *testing.T) {
	c := NewCylinder(geom.Identity(), false, 1, -1, 1, 360)
	ray := geom.NewRay(geom.NewPoint3(0, -5, 0), geom.NewVec3(0, 1, 0))
	si, ok := c.Intersect(&ray)
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(float64(si.P.Y+1)) > 1e-4 {
		t.Errorf("expected cylinder hit at y=-1, got %v", si.P.Y)
	}
}

func TestSphereSampleIsOnSurface(t *testing.T) {
	s := NewSphere(geom.Identity(), false, 2)
	si, pdf := s.Sample(geom.Point2{X: 0.3, Y: 0.7})
	if pdf <= 0 {
		t.Errorf("expected positive area pdf, got %v", pdf)
	}
	if d := si.P.ToVec3().Length(); math.Abs(float64(d-2)) > 1e-3 {
		t.Errorf("sampled point should lie on sphere of radius 2, got distance %v", d)
	}
}

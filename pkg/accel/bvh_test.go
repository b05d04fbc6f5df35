package accel

import (
	"testing"

	"tracer/pkg/geom"
	"tracer/pkg/shape"
)

func spherePrim(center geom.Vec3, radius float32) Primitive {
	return shape.NewSphere(geom.Translate(center), false, radius)
}

func TestBVHIntersectFindsClosest(t *testing.T) {
	prims := []Primitive{
		spherePrim(geom.NewVec3(0, 0, 0), 1),
		spherePrim(geom.NewVec3(0, 0, 10), 1),
		spherePrim(geom.NewVec3(5, 5, 5), 1),
	}
	bvh := Build(prims)

	ray := geom.NewRay(geom.NewPoint3(0, 0, -20), geom.NewVec3(0, 0, 1))
	si, ok := bvh.Intersect(&ray)
	if !ok {
		t.Fatal("expected a hit")
	}
	if si.P.Z > -0.5 || si.P.Z < -1.5 {
		t.Errorf("expected to hit the nearer sphere at z~-1, got %v", si.P.Z)
	}
}

func TestBVHIntersectPShadowRay(t *testing.T) {
	prims := []Primitive{spherePrim(geom.NewVec3(0, 0, 0), 1)}
	bvh := Build(prims)

	blocked := geom.NewRay(geom.NewPoint3(0, 0, -5), geom.NewVec3(0, 0, 1))
	if !bvh.IntersectP(blocked) {
		t.Errorf("expected shadow ray to be occluded")
	}

	clear := geom.NewRay(geom.NewPoint3(10, 10, -5), geom.NewVec3(0, 0, 1))
	if bvh.IntersectP(clear) {
		t.Errorf("expected shadow ray to be unoccluded")
	}
}

func TestBVHManyPrimitivesTriggersSAHSplit(t *testing.T) {
	var prims []Primitive
	for i := 0; i < 200; i++ {
		prims = append(prims, spherePrim(geom.NewVec3(float32(i)*2, 0, 0), 0.4))
	}
	bvh := Build(prims)
	if bvh.WorldBound().SurfaceArea() <= 0 {
		t.Fatalf("expected non-degenerate world bound")
	}

	ray := geom.NewRay(geom.NewPoint3(199*2, 0, -20), geom.NewVec3(0, 0, 1))
	if _, ok := bvh.Intersect(&ray); !ok {
		t.Errorf("expected to hit the last sphere in the row")
	}
}

func TestBVHEmpty(t *testing.T) {
	bvh := Build(nil)
	ray := geom.NewRay(geom.NewPoint3(0, 0, 0), geom.NewVec3(0, 0, 1))
	if _, ok := bvh.Intersect(&ray); ok {
		t.Errorf("expected no hit against an empty BVH")
	}
}

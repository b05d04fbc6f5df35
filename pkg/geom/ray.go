package geom

import "math"

// RayDifferential carries the auxiliary rays used to estimate texture
// footprint for MIP-map level selection.
type RayDifferential struct {
	HasDifferentials         bool
	RxOrigin, RyOrigin       Point3
	RxDirection, RyDirection Vec3
}

// Ray is a half-line with a mutable TMax that only ever shrinks as nearer
// hits are found during traversal.
type Ray struct {
	Origin    Point3
	Direction Vec3
	TMax      float32
	Time      float32
	Diff      RayDifferential
}

func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, TMax: float32(math.Inf(1)), Time: 0}
}

func NewRayAt(origin Point3, direction Vec3, time float32) Ray {
	return Ray{Origin: origin, Direction: direction, TMax: float32(math.Inf(1)), Time: time}
}

func (r Ray) At(t float32) Point3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IsDegenerate reports whether the ray's direction is zero-length;
// intersection routines must treat such rays as never hitting anything
// rather than propagating NaN through the slab/quadratic tests.
func (r Ray) IsDegenerate() bool {
	return r.Direction.LengthSqr() == 0 || r.Direction.HasNaN() || r.Origin.X != r.Origin.X
}

// InvDir and DirIsNeg are precomputed once per ray by the BVH traversal
// and reused across every node test.
func (r Ray) InvDir() Vec3 {
	return Vec3{1 / r.Direction.X, 1 / r.Direction.Y, 1 / r.Direction.Z}
}

func (r Ray) DirIsNeg(inv Vec3) [3]bool {
	return [3]bool{inv.X < 0, inv.Y < 0, inv.Z < 0}
}

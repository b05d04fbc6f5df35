package geom

import (
	"math"
	"testing"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	if got, want := v1.Add(v2), (Vec3{5, 7, 9}); got != want {
		t.Errorf("Add: got %v want %v", got, want)
	}
	if got, want := v2.Sub(v1), (Vec3{3, 3, 3}); got != want {
		t.Errorf("Sub: got %v want %v", got, want)
	}
	if got, want := v1.Dot(v2), float32(32); got != want {
		t.Errorf("Dot: got %v want %v", got, want)
	}
	cross := NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0))
	if cross != (Vec3{0, 0, 1}) {
		t.Errorf("Cross: got %v want {0 0 1}", cross)
	}
}

func TestRoundTripTransform(t *testing.T) {
	// For every transform T and point p, T^-1(T(p)) should recover p.
	transforms := []Transform{
		Translate(NewVec3(3, -1, 2)),
		Scale(NewVec3(2, 0.5, 4)),
		RotateY(0.7),
		Rotate(NewVec3(1, 1, 1).Normalize(), 1.3),
		Translate(NewVec3(1, 2, 3)).Mul(RotateX(0.4)).Mul(Scale(NewVec3(1, 2, 3))),
	}
	p := NewPoint3(1.5, -2.25, 0.75)
	for i, tr := range transforms {
		got := tr.Inverse().Point(tr.Point(p))
		d := got.Distance(p)
		norm := p.ToVec3().Length()
		if d >= 1e-4*norm+1e-4 {
			t.Errorf("transform %d: round trip error %v too large (got %v want %v)", i, d, got, p)
		}
	}
}

func TestBoundsUnionAndSurfaceArea(t *testing.T) {
	b := NewBounds3(NewPoint3(0, 0, 0))
	b = UnionPoint(b, NewPoint3(2, 2, 2))
	if b.Min != (Point3{0, 0, 0}) || b.Max != (Point3{2, 2, 2}) {
		t.Fatalf("unexpected bounds %v", b)
	}
	if got, want := b.SurfaceArea(), float32(24); math.Abs(float64(got-want)) > 1e-5 {
		t.Errorf("SurfaceArea: got %v want %v", got, want)
	}
}

func TestBoundsIntersectP(t *testing.T) {
	b := Bounds3{Min: NewPoint3(-1, -1, -1), Max: NewPoint3(1, 1, 1)}
	r := NewRay(NewPoint3(-5, 0, 0), NewVec3(1, 0, 0))
	inv := r.InvDir()
	if !b.IntersectP(r.Origin, inv, r.DirIsNeg(inv), r.TMax) {
		t.Errorf("expected ray to hit bounds")
	}
	r2 := NewRay(NewPoint3(-5, 5, 0), NewVec3(1, 0, 0))
	inv2 := r2.InvDir()
	if b.IntersectP(r2.Origin, inv2, r2.DirIsNeg(inv2), r2.TMax) {
		t.Errorf("expected ray to miss bounds")
	}
}

func TestCoordinateSystemOrthonormal(t *testing.T) {
	v1 := NewVec3(0.2, 0.9, 0.3).Normalize()
	v2, v3 := CoordinateSystem(v1)
	if math.Abs(float64(v1.Dot(v2))) > 1e-5 || math.Abs(float64(v1.Dot(v3))) > 1e-5 || math.Abs(float64(v2.Dot(v3))) > 1e-5 {
		t.Errorf("basis not orthogonal: v1=%v v2=%v v3=%v", v1, v2, v3)
	}
}

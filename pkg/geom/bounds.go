package geom

import "math"

// Bounds3 is an axis-aligned bounding box. Union and slab-intersect are
// total functions: an empty box unioned with anything yields the other
// operand. Invariant: Min <= Max componentwise.
type Bounds3 struct {
	Min, Max Point3
}

func EmptyBounds3() Bounds3 {
	inf := float32(math.Inf(1))
	return Bounds3{
		Min: Point3{inf, inf, inf},
		Max: Point3{-inf, -inf, -inf},
	}
}

func NewBounds3(p Point3) Bounds3 { return Bounds3{Min: p, Max: p} }

func UnionPoint(b Bounds3, p Point3) Bounds3 {
	return Bounds3{Min: PointMin(b.Min, p), Max: PointMax(b.Max, p)}
}

func Union(a, b Bounds3) Bounds3 {
	return Bounds3{Min: PointMin(a.Min, b.Min), Max: PointMax(a.Max, b.Max)}
}

func (b Bounds3) Diagonal() Vec3 { return b.Max.SubPoint(b.Min) }

func (b Bounds3) SurfaceArea() float32 {
	d := b.Diagonal()
	if d.X < 0 || d.Y < 0 || d.Z < 0 {
		return 0
	}
	return 2 * (d.X*d.Y + d.X*d.Z + d.Y*d.Z)
}

func (b Bounds3) Centroid() Point3 {
	return Point3{
		X: (b.Min.X + b.Max.X) * 0.5,
		Y: (b.Min.Y + b.Max.Y) * 0.5,
		Z: (b.Min.Z + b.Max.Z) * 0.5,
	}
}

// MaximumExtent returns the axis (0,1,2) along which the box is widest.
func (b Bounds3) MaximumExtent() int {
	d := b.Diagonal()
	return d.MaxComponentAxis()
}

// Offset returns p's position relative to the box, as a fraction in
// [0,1] along each axis; used by the BVH's bucket assignment.
func (b Bounds3) Offset(p Point3) Vec3 {
	o := p.SubPoint(b.Min)
	if b.Max.X > b.Min.X {
		o.X /= b.Max.X - b.Min.X
	}
	if b.Max.Y > b.Min.Y {
		o.Y /= b.Max.Y - b.Min.Y
	}
	if b.Max.Z > b.Min.Z {
		o.Z /= b.Max.Z - b.Min.Z
	}
	return o
}

// IntersectP performs the slab test against a ray, given precomputed
// inverse direction and sign flags (dirIsNeg[axis] true if invDir<0).
// Guards against NaN arising from a zero ray direction component paired
// with a degenerate bounds plane to avoid a zero-area division.
func (b Bounds3) IntersectP(origin Point3, invDir Vec3, dirIsNeg [3]bool, tMax float32) bool {
	tMin := float32(0)
	tmax := tMax

	minArr := [3]float32{b.Min.X, b.Min.Y, b.Min.Z}
	maxArr := [3]float32{b.Max.X, b.Max.Y, b.Max.Z}
	org := [3]float32{origin.X, origin.Y, origin.Z}
	inv := [3]float32{invDir.X, invDir.Y, invDir.Z}

	for axis := 0; axis < 3; axis++ {
		var near, far float32
		if dirIsNeg[axis] {
			near = (maxArr[axis] - org[axis]) * inv[axis]
			far = (minArr[axis] - org[axis]) * inv[axis]
		} else {
			near = (minArr[axis] - org[axis]) * inv[axis]
			far = (maxArr[axis] - org[axis]) * inv[axis]
		}
		if math.IsNaN(float64(near)) || math.IsNaN(float64(far)) {
			return false
		}
		far *= 1 + 2*gamma3
		if near > tMin {
			tMin = near
		}
		if far < tmax {
			tmax = far
		}
		if tMin > tmax {
			return false
		}
	}
	return true
}

// gamma3 bounds the accumulated floating-point error of three
// operations, following the standard conservative-bounds trick used to
// keep the slab test from rejecting true grazing hits.
const gamma3 = 3 * 1.19209290e-07 / (1 - 3*1.19209290e-07)

func (b Bounds3) Contains(p Point3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Transform applies an affine transform to all eight corners of b and
// returns the bounding box of the result.
func (t Transform) TransformBounds(b Bounds3) Bounds3 {
	ret := NewBounds3(t.Point(Point3{b.Min.X, b.Min.Y, b.Min.Z}))
	ret = UnionPoint(ret, t.Point(Point3{b.Max.X, b.Min.Y, b.Min.Z}))
	ret = UnionPoint(ret, t.Point(Point3{b.Min.X, b.Max.Y, b.Min.Z}))
	ret = UnionPoint(ret, t.Point(Point3{b.Min.X, b.Min.Y, b.Max.Z}))
	ret = UnionPoint(ret, t.Point(Point3{b.Min.X, b.Max.Y, b.Max.Z}))
	ret = UnionPoint(ret, t.Point(Point3{b.Max.X, b.Max.Y, b.Min.Z}))
	ret = UnionPoint(ret, t.Point(Point3{b.Max.X, b.Min.Y, b.Max.Z}))
	ret = UnionPoint(ret, t.Point(Point3{b.Max.X, b.Max.Y, b.Max.Z}))
	return ret
}

// Package geom provides the 3D vector, point, normal, transform, bounds
// and ray primitives the rest of the renderer builds on. Vec3, Point3,
// and Normal are kept as distinct types since they transform differently.
package geom

import "math"

type Vec3 struct {
	X, Y, Z float32
}

var (
	Vec3Zero = Vec3{0, 0, 0}
	Vec3One  = Vec3{1, 1, 1}
)

func NewVec3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float32) Vec3   { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) MulVec(o Vec3) Vec3   { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3) Div(s float32) Vec3   { return v.Mul(1.0 / s) }
func (v Vec3) Negate() Vec3         { return Vec3{-v.X, -v.Y, -v.Z} }
func (v Vec3) Dot(o Vec3) float32   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) AbsDot(o Vec3) float32 {
	d := v.Dot(o)
	if d < 0 {
		return -d
	}
	return d
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) LengthSqr() float32 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }
func (v Vec3) Length() float32    { return float32(math.Sqrt(float64(v.LengthSqr()))) }

func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1.0 / l)
}

func (v Vec3) Lerp(o Vec3, t float32) Vec3 { return v.Add(o.Sub(v).Mul(t)) }

func (v Vec3) HasNaN() bool {
	return math.IsNaN(float64(v.X)) || math.IsNaN(float64(v.Y)) || math.IsNaN(float64(v.Z))
}

// Component returns the i-th component, used by the BVH build/traversal
// which addresses axes by index (0=x, 1=y, 2=z).
func (v Vec3) Component(axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// MaxComponentAxis returns the axis (0,1,2) of the largest component,
// used by the BVH's split-axis selection.
func (v Vec3) MaxComponentAxis() int {
	if v.X > v.Y && v.X > v.Z {
		return 0
	}
	if v.Y > v.Z {
		return 1
	}
	return 2
}

func Min(a, b Vec3) Vec3 {
	return Vec3{minf(a.X, b.X), minf(a.Y, b.Y), minf(a.Z, b.Z)}
}

func Max(a, b Vec3) Vec3 {
	return Vec3{maxf(a.X, b.X), maxf(a.Y, b.Y), maxf(a.Z, b.Z)}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Point3 is a position in space. Kept distinct from Vec3 so transforms
// apply translation to points but not to vectors/normals.
type Point3 struct {
	X, Y, Z float32
}

func NewPoint3(x, y, z float32) Point3 { return Point3{X: x, Y: y, Z: z} }

func (p Point3) Add(v Vec3) Point3    { return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }
func (p Point3) Sub(v Vec3) Point3    { return Point3{p.X - v.X, p.Y - v.Y, p.Z - v.Z} }
func (p Point3) SubPoint(o Point3) Vec3 {
	return Vec3{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}
func (p Point3) ToVec3() Vec3            { return Vec3{p.X, p.Y, p.Z} }
func (p Point3) Distance(o Point3) float32 { return p.SubPoint(o).Length() }
func (p Point3) Lerp(o Point3, t float32) Point3 {
	return Point3{p.X + (o.X-p.X)*t, p.Y + (o.Y-p.Y)*t, p.Z + (o.Z-p.Z)*t}
}

func PointMin(a, b Point3) Point3 {
	return Point3{minf(a.X, b.X), minf(a.Y, b.Y), minf(a.Z, b.Z)}
}

func PointMax(a, b Point3) Point3 {
	return Point3{maxf(a.X, b.X), maxf(a.Y, b.Y), maxf(a.Z, b.Z)}
}

// Normal is a surface normal. Distinguished from Vec3 because normals
// transform by the inverse-transpose, not the matrix itself.
type Normal struct {
	X, Y, Z float32
}

func NewNormal(x, y, z float32) Normal { return Normal{X: x, Y: y, Z: z} }

func (n Normal) ToVec3() Vec3 { return Vec3{n.X, n.Y, n.Z} }
func (n Normal) Negate() Normal { return Normal{-n.X, -n.Y, -n.Z} }
func (n Normal) Dot(v Vec3) float32 {
	return n.X*v.X + n.Y*v.Y + n.Z*v.Z
}
func (n Normal) Normalize() Normal {
	v := n.ToVec3().Normalize()
	return Normal{v.X, v.Y, v.Z}
}

// FaceForward flips n to lie in the same hemisphere as v.
func (n Normal) FaceForward(v Vec3) Normal {
	if n.Dot(v) < 0 {
		return n.Negate()
	}
	return n
}

func VecFromNormal(n Normal) Vec3 { return Vec3{n.X, n.Y, n.Z} }

// Point2 is a 2D point used for raster/NDC/UV coordinates.
type Point2 struct {
	X, Y float32
}

func (p Point2) Sub(o Point2) Point2 { return Point2{p.X - o.X, p.Y - o.Y} }
func (p Point2) Add(o Point2) Point2 { return Point2{p.X + o.X, p.Y + o.Y} }
func (p Point2) Mul(s float32) Point2 { return Point2{p.X * s, p.Y * s} }

// Point2i is an integer pixel coordinate.
type Point2i struct {
	X, Y int
}

// Bounds2i is an axis-aligned integer rectangle, half-open on Max (used
// for pixel/tile ranges where Max is one past the last valid pixel).
type Bounds2i struct {
	Min, Max Point2i
}

// CoordinateSystem builds an orthonormal basis (v2,v3) given unit vector v1,
// following the classic Duff et al. branchless construction.
func CoordinateSystem(v1 Vec3) (v2, v3 Vec3) {
	sign := float32(1)
	if v1.Z < 0 {
		sign = -1
	}
	a := -1.0 / (sign + v1.Z)
	b := v1.X * v1.Y * a
	v2 = Vec3{1 + sign*v1.X*v1.X*a, sign * b, -sign * v1.X}
	v3 = Vec3{b, sign + v1.Y*v1.Y*a, -v1.Y}
	return
}

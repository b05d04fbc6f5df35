package geom

// Transform pairs a matrix with its cached inverse.
// "invariant: M·M⁻¹ = I within floating tolerance". Composition is via
// Mul; the identity transform has a zero rotation/translation and unit
// scale.
type Transform struct {
	M, MInv Mat4
}

func Identity() Transform {
	return Transform{M: Mat4Identity(), MInv: Mat4Identity()}
}

func NewTransform(m Mat4) Transform {
	return Transform{M: m, MInv: m.Inverse()}
}

// NewTransformWithInverse is used when the inverse is already known
// (e.g. composed from other transforms) to avoid a redundant inversion.
func NewTransformWithInverse(m, mInv Mat4) Transform {
	return Transform{M: m, MInv: mInv}
}

func Translate(v Vec3) Transform {
	return Transform{M: Mat4Translate(v), MInv: Mat4Translate(v.Negate())}
}

func Scale(s Vec3) Transform {
	return Transform{
		M:    Mat4Scale(s),
		MInv: Mat4Scale(Vec3{1 / s.X, 1 / s.Y, 1 / s.Z}),
	}
}

func RotateX(rad float32) Transform {
	m := Mat4RotateX(rad)
	return Transform{M: m, MInv: m.Transpose()}
}

func RotateY(rad float32) Transform {
	m := Mat4RotateY(rad)
	return Transform{M: m, MInv: m.Transpose()}
}

func RotateZ(rad float32) Transform {
	m := Mat4RotateZ(rad)
	return Transform{M: m, MInv: m.Transpose()}
}

func Rotate(axis Vec3, rad float32) Transform {
	m := Mat4RotateAxis(axis, rad)
	return Transform{M: m, MInv: m.Transpose()}
}

func LookAt(eye, look, up Vec3) Transform {
	cameraToWorld := Mat4LookAt(eye, look, up)
	return Transform{M: cameraToWorld.Inverse(), MInv: cameraToWorld}
}

func (t Transform) Inverse() Transform {
	return Transform{M: t.MInv, MInv: t.M}
}

func (t Transform) Mul(o Transform) Transform {
	return Transform{M: t.M.Mul(o.M), MInv: o.MInv.Mul(t.MInv)}
}

func (t Transform) IsIdentity() bool {
	return t.M == Mat4Identity()
}

func (t Transform) Point(p Point3) Point3 {
	m := t.M
	x := m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3]
	y := m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3]
	z := m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3]
	w := m[3][0]*p.X + m[3][1]*p.Y + m[3][2]*p.Z + m[3][3]
	if w == 1 {
		return Point3{x, y, z}
	}
	return Point3{x / w, y / w, z / w}
}

func (t Transform) Vector(v Vec3) Vec3 {
	m := t.M
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Normal transforms by the inverse-transpose, so normals remain
// perpendicular to the surface under non-uniform scale.
func (t Transform) Normal(n Normal) Normal {
	m := t.MInv // already transposed below by reading columns
	return Normal{
		X: m[0][0]*n.X + m[1][0]*n.Y + m[2][0]*n.Z,
		Y: m[0][1]*n.X + m[1][1]*n.Y + m[2][1]*n.Z,
		Z: m[0][2]*n.X + m[1][2]*n.Y + m[2][2]*n.Z,
	}
}

func (t Transform) Ray(r Ray) Ray {
	out := r
	out.Origin = t.Point(r.Origin)
	out.Direction = t.Vector(r.Direction)
	return out
}

// SwapsHandedness reports whether the transform's linear part has a
// negative determinant, in which case shape orientation must flip.
func (t Transform) SwapsHandedness() bool {
	m := t.M
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	return det < 0
}

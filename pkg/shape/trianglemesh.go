package shape

import (
	"math"

	"tracer/pkg/geom"
)

// TriangleMesh holds shared, flat per-vertex arrays in world space; the
// individual Triangle shapes only store indices into it, the same
// separation a vertex/index buffer pair keeps between shared
// attributes and per-triangle draw data.
type TriangleMesh struct {
	P          []geom.Point3
	N          []geom.Normal
	UV         []geom.Point2
	HasNormals bool
	HasUVs     bool
	Indices    []int // 3 per triangle
}

// NewTriangleMesh transforms per-vertex positions and normals from object
// to world space once, at mesh creation, so that per-triangle intersection
// never has to touch the transform again.
func NewTriangleMesh(o2w geom.Transform, p []geom.Point3, n []geom.Normal, uv []geom.Point2, indices []int) *TriangleMesh {
	m := &TriangleMesh{
		Indices:    indices,
		HasNormals: len(n) > 0,
		HasUVs:     len(uv) > 0,
	}
	m.P = make([]geom.Point3, len(p))
	for i, pt := range p {
		m.P[i] = o2w.Point(pt)
	}
	if m.HasNormals {
		m.N = make([]geom.Normal, len(n))
		for i, nn := range n {
			m.N[i] = o2w.Normal(nn).Normalize()
		}
	}
	if m.HasUVs {
		m.UV = uv
	}
	return m
}

// NumTriangles returns the number of triangles described by the mesh.
func (m *TriangleMesh) NumTriangles() int { return len(m.Indices) / 3 }

// Triangles builds one Triangle shape per face, referencing the shared
// TriangleMesh rather than copying vertex data.
func Triangles(mesh *TriangleMesh, reverseOrientation bool) []Shape {
	tris := make([]Shape, mesh.NumTriangles())
	for i := 0; i < mesh.NumTriangles(); i++ {
		tris[i] = &Triangle{mesh: mesh, triIndex: i, reverseOrientation: reverseOrientation}
	}
	return tris
}

// Triangle is a single face of a TriangleMesh. It stores no per-object
// transform of its own: the mesh's vertex data is already in world space.
type Triangle struct {
	mesh               *TriangleMesh
	triIndex           int
	reverseOrientation bool
}

func (t *Triangle) ReverseOrientation() bool { return t.reverseOrientation }

func (t *Triangle) indices() (i0, i1, i2 int) {
	base := t.triIndex * 3
	return t.mesh.Indices[base], t.mesh.Indices[base+1], t.mesh.Indices[base+2]
}

func (t *Triangle) vertices() (p0, p1, p2 geom.Point3) {
	i0, i1, i2 := t.indices()
	return t.mesh.P[i0], t.mesh.P[i1], t.mesh.P[i2]
}

func (t *Triangle) uvs() (uv0, uv1, uv2 geom.Point2) {
	if !t.mesh.HasUVs {
		return geom.Point2{X: 0, Y: 0}, geom.Point2{X: 1, Y: 0}, geom.Point2{X: 1, Y: 1}
	}
	i0, i1, i2 := t.indices()
	return t.mesh.UV[i0], t.mesh.UV[i1], t.mesh.UV[i2]
}

func (t *Triangle) WorldBound() geom.Bounds3 {
	p0, p1, p2 := t.vertices()
	b := geom.NewBounds3(p0)
	b = geom.UnionPoint(b, p1)
	b = geom.UnionPoint(b, p2)
	return b
}

func (t *Triangle) Area() float32 {
	p0, p1, p2 := t.vertices()
	return 0.5 * p1.SubPoint(p0).Cross(p2.SubPoint(p0)).Length()
}

// uvDerivatives solves for the dp/du, dp/dv partial derivatives from the
// triangle's edge vectors and UV deltas, the same 2x2 linear system a
// per-vertex tangent/bitangent generation pass solves, applied here
// per-face instead.
func uvDerivatives(p0, p1, p2 geom.Point3, uv0, uv1, uv2 geom.Point2) (dpdu, dpdv geom.Vec3) {
	duv02 := uv0.Sub(uv2)
	duv12 := uv1.Sub(uv2)
	dp02 := p0.SubPoint(p2)
	dp12 := p1.SubPoint(p2)

	det := duv02.X*duv12.Y - duv02.Y*duv12.X
	if det == 0 || float32(math.Abs(float64(det))) < 1e-12 {
		n := dp02.Cross(dp12)
		if n.LengthSqr() == 0 {
			return geom.NewVec3(1, 0, 0), geom.NewVec3(0, 1, 0)
		}
		_, dpdv = geom.CoordinateSystem(n.Normalize())
		dpdu = dpdv.Cross(n.Normalize())
		return
	}
	invDet := 1 / det
	dpdu = dp02.Mul(duv12.Y * invDet).Sub(dp12.Mul(duv02.Y * invDet))
	dpdv = dp12.Mul(duv02.X * invDet).Sub(dp02.Mul(duv12.X * invDet))
	return
}

// intersectTriangle is the Möller–Trumbore ray/triangle test, returning the
// hit parameter t and barycentric coordinates (b0,b1,b2).
func intersectTriangle(ray geom.Ray, p0, p1, p2 geom.Point3) (t, b0, b1, b2 float32, ok bool) {
	const epsilon = 1e-8
	e1 := p1.SubPoint(p0)
	e2 := p2.SubPoint(p0)
	pvec := ray.Direction.Cross(e2)
	det := e1.Dot(pvec)
	if det > -epsilon && det < epsilon {
		return 0, 0, 0, 0, false
	}
	invDet := 1 / det
	tvec := ray.Origin.SubPoint(p0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, 0, 0, 0, false
	}
	qvec := tvec.Cross(e1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, 0, 0, 0, false
	}
	tHit := e2.Dot(qvec) * invDet
	if tHit <= epsilon || tHit > ray.TMax {
		return 0, 0, 0, 0, false
	}
	return tHit, 1 - u - v, u, v, true
}

func (t *Triangle) Intersect(ray *geom.Ray) (SurfaceInteraction, bool) {
	p0, p1, p2 := t.vertices()
	tHit, b0, b1, b2, ok := intersectTriangle(*ray, p0, p1, p2)
	if !ok {
		return SurfaceInteraction{}, false
	}

	uv0, uv1, uv2 := t.uvs()
	dpdu, dpdv := uvDerivatives(p0, p1, p2, uv0, uv1, uv2)

	pHit := geom.Point3{
		X: b0*p0.X + b1*p1.X + b2*p2.X,
		Y: b0*p0.Y + b1*p1.Y + b2*p2.Y,
		Z: b0*p0.Z + b1*p1.Z + b2*p2.Z,
	}
	uvHit := geom.Point2{X: b0*uv0.X + b1*uv1.X + b2*uv2.X, Y: b0*uv0.Y + b1*uv1.Y + b2*uv2.Y}

	geometricN := dpdu.Cross(dpdv)
	if geometricN.LengthSqr() == 0 {
		geometricN = p1.SubPoint(p0).Cross(p2.SubPoint(p0))
	}
	n := geom.NewNormal(geometricN.X, geometricN.Y, geometricN.Z).Normalize()
	if t.reverseOrientation {
		n = n.Negate()
	}

	ray.TMax = tHit
	si := SurfaceInteraction{
		P:    pHit,
		N:    n,
		UV:   uvHit,
		Dpdu: dpdu,
		Dpdv: dpdv,
		Wo:   ray.Direction.Negate(),
		Time: ray.Time,
		Shape: t,
	}

	shadingN := n
	if t.mesh.HasNormals {
		i0, i1, i2 := t.indices()
		n0, n1, n2 := t.mesh.N[i0], t.mesh.N[i1], t.mesh.N[i2]
		interp := geom.NewVec3(
			b0*n0.X+b1*n1.X+b2*n2.X,
			b0*n0.Y+b1*n1.Y+b2*n2.Y,
			b0*n0.Z+b1*n1.Z+b2*n2.Z,
		)
		if interp.LengthSqr() > 0 {
			shadingN = geom.NewNormal(interp.X, interp.Y, interp.Z).Normalize()
		}
	}
	si.SetShadingGeometry(shadingN, dpdu, dpdv, t.mesh.HasNormals)
	return si, true
}

func (t *Triangle) IntersectP(ray geom.Ray) bool {
	p0, p1, p2 := t.vertices()
	_, _, _, _, ok := intersectTriangle(ray, p0, p1, p2)
	return ok
}

func (t *Triangle) Sample(u geom.Point2) (SurfaceInteraction, float32) {
	b0, b1 := uniformSampleTriangle(u)
	b2 := 1 - b0 - b1
	p0, p1, p2 := t.vertices()
	pHit := geom.Point3{
		X: b0*p0.X + b1*p1.X + b2*p2.X,
		Y: b0*p0.Y + b1*p1.Y + b2*p2.Y,
		Z: b0*p0.Z + b1*p1.Z + b2*p2.Z,
	}
	nv := p1.SubPoint(p0).Cross(p2.SubPoint(p0))
	n := geom.NewNormal(nv.X, nv.Y, nv.Z).Normalize()
	if t.reverseOrientation {
		n = n.Negate()
	}
	si := SurfaceInteraction{P: pHit, N: n, Shape: t}
	si.SetShadingGeometry(n, geom.Vec3{}, geom.Vec3{}, true)
	return si, 1 / t.Area()
}

func (t *Triangle) SampleFrom(ref geom.Point3, u geom.Point2) (SurfaceInteraction, float32) {
	si, areaPdf := t.Sample(u)
	return si, pdfFromAreaSample(si, ref, areaPdf)
}

func (t *Triangle) PdfFrom(ref geom.Point3, wi geom.Vec3) float32 {
	return 1 / t.Area()
}

func uniformSampleTriangle(u geom.Point2) (b0, b1 float32) {
	su0 := float32(math.Sqrt(float64(u.X)))
	return 1 - su0, u.Y * su0
}

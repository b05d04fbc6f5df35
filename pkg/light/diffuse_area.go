package light

import (
	"tracer/pkg/geom"
	"tracer/pkg/shape"
	"tracer/pkg/spectrum"
)

// DiffuseAreaLight turns a shape's surface into an emitter of constant
// radiance Lemit, one-sided (emitting only along the surface's outward
// normal) unless TwoSided is set. Materialized after its shape, per the
// "shape first, light second" resolution of the area-light/shape
// construction-order question.
type DiffuseAreaLight struct {
	Shape    shape.Shape
	Lemit    spectrum.Spectrum
	TwoSided bool
}

func NewDiffuseAreaLight(s shape.Shape, lemit spectrum.Spectrum, twoSided bool) *DiffuseAreaLight {
	return &DiffuseAreaLight{Shape: s, Lemit: lemit, TwoSided: twoSided}
}

// L returns the emitted radiance at a point on the light's shape toward
// direction w, used both by SampleLi's implicit emission and by a
// surface interaction's own Le() when a path ray hits the shape directly.
func (l *DiffuseAreaLight) L(p geom.Point3, n geom.Normal, w geom.Vec3) spectrum.Spectrum {
	if l.TwoSided || n.Dot(w) > 0 {
		return l.Lemit
	}
	return spectrum.Black
}

func (l *DiffuseAreaLight) SampleLi(ref Interaction, u geom.Point2) (spectrum.Spectrum, geom.Vec3, float32, VisibilityTester) {
	si, pdf := l.Shape.SampleFrom(ref.P, u)
	if pdf == 0 {
		return spectrum.Black, geom.Vec3{}, 0, VisibilityTester{}
	}
	wi := si.P.SubPoint(ref.P)
	if wi.LengthSqr() == 0 {
		return spectrum.Black, geom.Vec3{}, 0, VisibilityTester{}
	}
	wi = wi.Normalize()
	li := l.L(si.P, si.N, wi.Negate())
	vis := spawnAreaVisibilityTester(ref.P, ref.N, si.P, si.N, ref.Time)
	return li, wi, pdf, vis
}

// spawnAreaVisibilityTester offsets both endpoints along their own
// geometric normals, since the light sample point lies on a surface
// too and needs the same self-intersection escape as the reference point.
func spawnAreaVisibilityTester(p0 geom.Point3, n0 geom.Normal, p1 geom.Point3, n1 geom.Normal, time float32) VisibilityTester {
	d := p1.SubPoint(p0)
	from := offsetRayOrigin(p0, n0, d)
	to := offsetRayOrigin(p1, n1, d.Negate())
	return VisibilityTester{P0: from, P1: to, Time: time}
}

func (l *DiffuseAreaLight) PdfLi(ref Interaction, wi geom.Vec3) float32 {
	return l.Shape.PdfFrom(ref.P, wi)
}

func (l *DiffuseAreaLight) Power() spectrum.Spectrum {
	area := l.Shape.Area()
	mul := float32(3.14159265)
	if l.TwoSided {
		mul *= 2
	}
	return l.Lemit.Mul(mul * area)
}

func (l *DiffuseAreaLight) Le(ray geom.Ray) spectrum.Spectrum { return spectrum.Black }

func (l *DiffuseAreaLight) IsDelta() bool { return false }

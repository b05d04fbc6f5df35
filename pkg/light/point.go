package light

import (
	"tracer/pkg/geom"
	"tracer/pkg/spectrum"
)

// PointLight emits isotropically from a single point in world space,
// attenuated by inverse-square distance.
type PointLight struct {
	P geom.Point3
	I spectrum.Spectrum
}

func NewPointLight(p geom.Point3, intensity spectrum.Spectrum) *PointLight {
	return &PointLight{P: p, I: intensity}
}

func (l *PointLight) SampleLi(ref Interaction, u geom.Point2) (spectrum.Spectrum, geom.Vec3, float32, VisibilityTester) {
	d := l.P.SubPoint(ref.P)
	distSqr := d.LengthSqr()
	wi := d.Normalize()
	li := l.I.Div(distSqr)
	vis := spawnVisibilityTester(ref.P, ref.N, l.P, ref.Time)
	return li, wi, 1, vis
}

func (l *PointLight) PdfLi(ref Interaction, wi geom.Vec3) float32 { return 0 }

func (l *PointLight) Power() spectrum.Spectrum {
	return l.I.Mul(4 * 3.14159265)
}

func (l *PointLight) Le(ray geom.Ray) spectrum.Spectrum { return spectrum.Black }

func (l *PointLight) IsDelta() bool { return true }

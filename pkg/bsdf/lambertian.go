package bsdf

import (
	"math"

	"tracer/pkg/geom"
	"tracer/pkg/spectrum"
)

// LambertianReflection is a perfectly diffuse reflective lobe: constant
// BRDF r/pi over the hemisphere.
type LambertianReflection struct {
	R spectrum.Spectrum
}

func NewLambertianReflection(r spectrum.Spectrum) *LambertianReflection {
	return &LambertianReflection{R: r}
}

func (l *LambertianReflection) Type() Type { return Diffuse | Reflection }

func (l *LambertianReflection) F(wo, wi geom.Vec3) spectrum.Spectrum {
	return l.R.Mul(1 / math.Pi)
}

func (l *LambertianReflection) SampleF(wo geom.Vec3, u geom.Point2) (spectrum.Spectrum, geom.Vec3, float32, Type) {
	wi := cosineSampleHemisphere(u)
	if wo.Z < 0 {
		wi.Z = -wi.Z
	}
	pdf := l.Pdf(wo, wi)
	return l.F(wo, wi), wi, pdf, l.Type()
}

func (l *LambertianReflection) Pdf(wo, wi geom.Vec3) float32 {
	if !geom.SameHemisphere(wo, wi) {
		return 0
	}
	return cosineHemispherePdf(geom.AbsCosTheta(wi))
}

// LambertianTransmission is the transmissive analogue, used by the
// translucent material for diffuse light transport through thin slabs.
type LambertianTransmission struct {
	T spectrum.Spectrum
}

func NewLambertianTransmission(t spectrum.Spectrum) *LambertianTransmission {
	return &LambertianTransmission{T: t}
}

func (l *LambertianTransmission) Type() Type { return Diffuse | Transmission }

func (l *LambertianTransmission) F(wo, wi geom.Vec3) spectrum.Spectrum {
	return l.T.Mul(1 / math.Pi)
}

func (l *LambertianTransmission) SampleF(wo geom.Vec3, u geom.Point2) (spectrum.Spectrum, geom.Vec3, float32, Type) {
	wi := cosineSampleHemisphere(u)
	if wo.Z > 0 {
		wi.Z = -wi.Z
	}
	pdf := l.Pdf(wo, wi)
	return l.F(wo, wi), wi, pdf, l.Type()
}

func (l *LambertianTransmission) Pdf(wo, wi geom.Vec3) float32 {
	if geom.SameHemisphere(wo, wi) {
		return 0
	}
	return cosineHemispherePdf(geom.AbsCosTheta(wi))
}

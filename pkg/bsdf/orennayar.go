package bsdf

import (
	"math"

	"tracer/pkg/geom"
	"tracer/pkg/spectrum"
)

// OrenNayar is a microfacet-derived diffuse lobe that reproduces the
// retroreflective darkening/brightening of rough surfaces (sand, cloth,
// unglazed ceramics) that pure Lambertian shading misses. Sigma is the
// microfacet slope angle standard deviation, in degrees.
type OrenNayar struct {
	R    spectrum.Spectrum
	A, B float32
}

func NewOrenNayar(r spectrum.Spectrum, sigmaDeg float32) *OrenNayar {
	sigma := sigmaDeg * math.Pi / 180
	sigma2 := sigma * sigma
	return &OrenNayar{
		R: r,
		A: 1 - sigma2/(2*(sigma2+0.33)),
		B: 0.45 * sigma2 / (sigma2 + 0.09),
	}
}

func (o *OrenNayar) Type() Type { return Diffuse | Reflection }

func (o *OrenNayar) F(wo, wi geom.Vec3) spectrum.Spectrum {
	sinThetaI := geom.SinTheta(wi)
	sinThetaO := geom.SinTheta(wo)

	maxCos := float32(0)
	if sinThetaI > 1e-4 && sinThetaO > 1e-4 {
		sinPhiI, cosPhiI := geom.SinPhi(wi), geom.CosPhi(wi)
		sinPhiO, cosPhiO := geom.SinPhi(wo), geom.CosPhi(wo)
		dCos := sinPhiI*sinPhiO + cosPhiI*cosPhiO
		maxCos = maxf(0, dCos)
	}

	var sinAlpha, tanBeta float32
	if geom.AbsCosTheta(wi) > geom.AbsCosTheta(wo) {
		sinAlpha, tanBeta = sinThetaO, sinThetaI/geom.AbsCosTheta(wi)
	} else {
		sinAlpha, tanBeta = sinThetaI, sinThetaO/geom.AbsCosTheta(wo)
	}

	return o.R.Mul((1 / math.Pi) * (o.A + o.B*maxCos*sinAlpha*tanBeta))
}

func (o *OrenNayar) SampleF(wo geom.Vec3, u geom.Point2) (spectrum.Spectrum, geom.Vec3, float32, Type) {
	wi := cosineSampleHemisphere(u)
	if wo.Z < 0 {
		wi.Z = -wi.Z
	}
	return o.F(wo, wi), wi, o.Pdf(wo, wi), o.Type()
}

func (o *OrenNayar) Pdf(wo, wi geom.Vec3) float32 {
	if !geom.SameHemisphere(wo, wi) {
		return 0
	}
	return cosineHemispherePdf(geom.AbsCosTheta(wi))
}

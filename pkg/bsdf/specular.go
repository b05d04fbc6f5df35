package bsdf

import (
	"tracer/pkg/geom"
	"tracer/pkg/spectrum"
)

// SpecularReflection is a perfect mirror lobe attenuated by a Fresnel
// term, shared by the mirror, glass and uber materials.
type SpecularReflection struct {
	R       spectrum.Spectrum
	Fresnel Fresnel
}

func NewSpecularReflection(r spectrum.Spectrum, fresnel Fresnel) *SpecularReflection {
	return &SpecularReflection{R: r, Fresnel: fresnel}
}

func (s *SpecularReflection) Type() Type { return Specular | Reflection }

func (s *SpecularReflection) F(wo, wi geom.Vec3) spectrum.Spectrum { return spectrum.Black }

func (s *SpecularReflection) Pdf(wo, wi geom.Vec3) float32 { return 0 }

func (s *SpecularReflection) SampleF(wo geom.Vec3, u geom.Point2) (spectrum.Spectrum, geom.Vec3, float32, Type) {
	wi := geom.NewVec3(-wo.X, -wo.Y, wo.Z)
	f := s.Fresnel.Evaluate(geom.CosTheta(wi)).MulSpectrum(s.R).Mul(1 / geom.AbsCosTheta(wi))
	return f, wi, 1, s.Type()
}

// SpecularTransmission is a perfect refractive lobe through a dielectric
// interface with indices EtaA (outside) and EtaB (inside).
type SpecularTransmission struct {
	T          spectrum.Spectrum
	EtaA, EtaB float32
	fresnel    FresnelDielectric
}

func NewSpecularTransmission(t spectrum.Spectrum, etaA, etaB float32) *SpecularTransmission {
	return &SpecularTransmission{T: t, EtaA: etaA, EtaB: etaB, fresnel: FresnelDielectric{EtaI: etaA, EtaT: etaB}}
}

func (s *SpecularTransmission) Type() Type { return Specular | Transmission }

func (s *SpecularTransmission) F(wo, wi geom.Vec3) spectrum.Spectrum { return spectrum.Black }

func (s *SpecularTransmission) Pdf(wo, wi geom.Vec3) float32 { return 0 }

func (s *SpecularTransmission) SampleF(wo geom.Vec3, u geom.Point2) (spectrum.Spectrum, geom.Vec3, float32, Type) {
	entering := geom.CosTheta(wo) > 0
	etaI, etaT := s.EtaA, s.EtaB
	if !entering {
		etaI, etaT = s.EtaB, s.EtaA
	}

	faceForwardNormal := geom.NewNormal(0, 0, 1)
	if geom.CosTheta(wo) < 0 {
		faceForwardNormal = faceForwardNormal.Negate()
	}

	wi, ok := geom.Refract(wo, faceForwardNormal, etaI/etaT)
	if !ok {
		return spectrum.Black, geom.Vec3{}, 0, 0
	}

	ft := s.T.MulSpectrum(spectrum.White.Sub(s.fresnel.Evaluate(geom.CosTheta(wi))))
	ft = ft.Mul((etaI * etaI) / (etaT * etaT))
	return ft.Mul(1 / geom.AbsCosTheta(wi)), wi, 1, s.Type()
}

// FresnelSpecular combines reflection and transmission into a single
// lobe, stochastically choosing one or the other weighted by the
// dielectric Fresnel term; this is what the glass material uses so a
// single sample either reflects or refracts rather than always splitting
// into both (which pure whitted-style tracing would do).
type FresnelSpecular struct {
	R, T       spectrum.Spectrum
	EtaA, EtaB float32
}

func NewFresnelSpecular(r, t spectrum.Spectrum, etaA, etaB float32) *FresnelSpecular {
	return &FresnelSpecular{R: r, T: t, EtaA: etaA, EtaB: etaB}
}

func (f *FresnelSpecular) Type() Type { return Specular | Reflection | Transmission }

func (f *FresnelSpecular) F(wo, wi geom.Vec3) spectrum.Spectrum { return spectrum.Black }

func (f *FresnelSpecular) Pdf(wo, wi geom.Vec3) float32 { return 0 }

func (f *FresnelSpecular) SampleF(wo geom.Vec3, u geom.Point2) (spectrum.Spectrum, geom.Vec3, float32, Type) {
	fr := FrDielectric(geom.CosTheta(wo), f.EtaA, f.EtaB)
	if u.X < fr {
		wi := geom.NewVec3(-wo.X, -wo.Y, wo.Z)
		spec := f.R.Mul(fr / geom.AbsCosTheta(wi))
		return spec, wi, fr, Specular | Reflection
	}

	entering := geom.CosTheta(wo) > 0
	etaI, etaT := f.EtaA, f.EtaB
	if !entering {
		etaI, etaT = f.EtaB, f.EtaA
	}
	faceForwardNormal := geom.NewNormal(0, 0, 1)
	if geom.CosTheta(wo) < 0 {
		faceForwardNormal = faceForwardNormal.Negate()
	}
	wi, ok := geom.Refract(wo, faceForwardNormal, etaI/etaT)
	if !ok {
		return spectrum.Black, geom.Vec3{}, 0, 0
	}
	ft := f.T.Mul((1 - fr) * (etaI * etaI) / (etaT * etaT))
	return ft.Mul(1 / geom.AbsCosTheta(wi)), wi, 1 - fr, Specular | Transmission
}

package bsdf

import (
	"math"

	"tracer/pkg/spectrum"
)

// FrDielectric computes the unpolarized Fresnel reflectance at a smooth
// dielectric interface (the standard pbrt formula).
func FrDielectric(cosThetaI, etaI, etaT float32) float32 {
	cosThetaI = clampf(cosThetaI, -1, 1)
	if cosThetaI <= 0 {
		etaI, etaT = etaT, etaI
		cosThetaI = -cosThetaI
	}

	sinThetaI := float32(math.Sqrt(float64(maxf(0, 1-cosThetaI*cosThetaI))))
	sinThetaT := etaI / etaT * sinThetaI
	if sinThetaT >= 1 {
		return 1 // total internal reflection
	}
	cosThetaT := float32(math.Sqrt(float64(maxf(0, 1-sinThetaT*sinThetaT))))

	rParl := ((etaT * cosThetaI) - (etaI * cosThetaT)) / ((etaT * cosThetaI) + (etaI * cosThetaT))
	rPerp := ((etaI * cosThetaI) - (etaT * cosThetaT)) / ((etaI * cosThetaI) + (etaT * cosThetaT))
	return 0.5 * (rParl*rParl + rPerp*rPerp)
}

// FrConductor computes the Fresnel reflectance of a conductor with
// complex index of refraction eta+ik, evaluated per spectral channel.
func FrConductor(cosThetaI float32, etaI, etaT, k spectrum.Spectrum) spectrum.Spectrum {
	cosThetaI = clampf(cosThetaI, -1, 1)
	eta := etaT.DivSpectrum(etaI)
	etaK := k.DivSpectrum(etaI)

	cos2ThetaI := cosThetaI * cosThetaI
	sin2ThetaI := 1 - cos2ThetaI
	eta2 := eta.MulSpectrum(eta)
	etaK2 := etaK.MulSpectrum(etaK)

	t0 := eta2.Sub(etaK2).Sub(spectrum.RGB(sin2ThetaI, sin2ThetaI, sin2ThetaI))
	a2plusb2 := t0.MulSpectrum(t0).Add(eta2.MulSpectrum(etaK2).Mul(4)).Sqrt()
	t1 := a2plusb2.Add(spectrum.RGB(cos2ThetaI, cos2ThetaI, cos2ThetaI))
	a := a2plusb2.Add(t0).Mul(0.5).Sqrt()
	t2 := a.Mul(2 * cosThetaI)
	rs := t1.Sub(t2).DivSpectrum(t1.Add(t2))

	t3 := a2plusb2.Mul(cos2ThetaI).Add(spectrum.RGB(sin2ThetaI*sin2ThetaI, sin2ThetaI*sin2ThetaI, sin2ThetaI*sin2ThetaI))
	t4 := t2.Mul(sin2ThetaI)
	rp := rs.MulSpectrum(t3.Sub(t4)).DivSpectrum(t3.Add(t4))

	return rp.Add(rs).Mul(0.5)
}

// Fresnel abstracts over dielectric and conductor reflectance so
// SpecularReflection can be shared by mirror/glass/metal materials.
type Fresnel interface {
	Evaluate(cosThetaI float32) spectrum.Spectrum
}

type FresnelDielectric struct {
	EtaI, EtaT float32
}

func (f FresnelDielectric) Evaluate(cosThetaI float32) spectrum.Spectrum {
	r := FrDielectric(cosThetaI, f.EtaI, f.EtaT)
	return spectrum.RGB(r, r, r)
}

type FresnelConductor struct {
	EtaI, EtaT, K spectrum.Spectrum
}

func (f FresnelConductor) Evaluate(cosThetaI float32) spectrum.Spectrum {
	if cosThetaI < 0 {
		cosThetaI = -cosThetaI
	}
	return FrConductor(cosThetaI, f.EtaI, f.EtaT, f.K)
}

// FresnelNoOp always reports full reflectance; used by a perfectly
// reflective "mirror" lobe that should not attenuate by angle.
type FresnelNoOp struct{}

func (FresnelNoOp) Evaluate(float32) spectrum.Spectrum { return spectrum.RGB(1, 1, 1) }

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

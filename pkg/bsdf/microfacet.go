package bsdf

import (
	"math"

	"tracer/pkg/geom"
	"tracer/pkg/spectrum"
)

// TrowbridgeReitzDistribution is the GGX microfacet normal distribution,
// used by the plastic/substrate/uber materials' glossy specular lobe and
// by MicrofacetReflection.
type TrowbridgeReitzDistribution struct {
	AlphaX, AlphaY float32
	SampleVisible  bool
}

// RoughnessToAlpha remaps an artist-facing roughness in [0,1] to the
// distribution's alpha parameter via pbrt's empirical polynomial fit,
// chosen so roughness behaves perceptually linearly.
func RoughnessToAlpha(roughness float32) float32 {
	r := maxf(roughness, 1e-3)
	x := float32(math.Log(float64(r)))
	return 1.62142 + 0.819955*x + 0.1734*x*x + 0.0171201*x*x*x + 0.000640711*x*x*x*x
}

func NewTrowbridgeReitz(alphaX, alphaY float32) *TrowbridgeReitzDistribution {
	return &TrowbridgeReitzDistribution{AlphaX: maxf(alphaX, 1e-4), AlphaY: maxf(alphaY, 1e-4)}
}

func (d *TrowbridgeReitzDistribution) D(wh geom.Vec3) float32 {
	tan2Theta := geom.Tan2Theta(wh)
	if math.IsInf(float64(tan2Theta), 1) {
		return 0
	}
	cos4Theta := geom.Cos2Theta(wh) * geom.Cos2Theta(wh)
	cosPhi, sinPhi := geom.CosPhi(wh), geom.SinPhi(wh)
	e := tan2Theta * (cosPhi*cosPhi/(d.AlphaX*d.AlphaX) + sinPhi*sinPhi/(d.AlphaY*d.AlphaY))
	denom := math.Pi * d.AlphaX * d.AlphaY * cos4Theta * (1 + e) * (1 + e)
	return 1 / denom
}

func (d *TrowbridgeReitzDistribution) lambda(w geom.Vec3) float32 {
	absTanTheta := float32(math.Abs(float64(geom.TanTheta(w))))
	if math.IsInf(float64(absTanTheta), 1) {
		return 0
	}
	cosPhi, sinPhi := geom.CosPhi(w), geom.SinPhi(w)
	alpha := float32(math.Sqrt(float64(cosPhi*cosPhi*d.AlphaX*d.AlphaX + sinPhi*sinPhi*d.AlphaY*d.AlphaY)))
	alpha2Tan2Theta := (alpha * absTanTheta) * (alpha * absTanTheta)
	return (-1 + float32(math.Sqrt(float64(1+alpha2Tan2Theta)))) / 2
}

func (d *TrowbridgeReitzDistribution) G1(w geom.Vec3) float32 { return 1 / (1 + d.lambda(w)) }

func (d *TrowbridgeReitzDistribution) G(wo, wi geom.Vec3) float32 {
	return 1 / (1 + d.lambda(wo) + d.lambda(wi))
}

// Pdf is the density of wh: with SampleVisible false (the default) it is
// D(wh)*|cos(theta_h)|, the density SampleWh draws from; with
// SampleVisible set it returns the visible-normal density instead, which
// SampleWh does not sample from.
func (d *TrowbridgeReitzDistribution) Pdf(wo, wh geom.Vec3) float32 {
	if d.SampleVisible {
		return d.D(wh) * d.G1(wo) * absf(wo.Dot(wh)) / geom.AbsCosTheta(wo)
	}
	return d.D(wh) * geom.AbsCosTheta(wh)
}

// SampleWh draws a microfacet normal from the distribution via the
// classic (non-visible-normal) Trowbridge-Reitz inversion.
func (d *TrowbridgeReitzDistribution) SampleWh(wo geom.Vec3, u geom.Point2) geom.Vec3 {
	var cosTheta, phi float32
	if d.AlphaX == d.AlphaY {
		tanTheta2 := d.AlphaX * d.AlphaX * u.X / (1 - u.X)
		cosTheta = 1 / float32(math.Sqrt(float64(1+tanTheta2)))
		phi = 2 * math.Pi * u.Y
	} else {
		phi = float32(math.Atan(float64(d.AlphaY/d.AlphaX) * math.Tan(float64(2*math.Pi*u.Y+math.Pi/2))))
		if u.Y > 0.5 {
			phi += math.Pi
		}
		sinPhi, cosPhi := float32(math.Sin(float64(phi))), float32(math.Cos(float64(phi)))
		alphax2, alphay2 := d.AlphaX*d.AlphaX, d.AlphaY*d.AlphaY
		alpha2 := 1 / (cosPhi*cosPhi/alphax2 + sinPhi*sinPhi/alphay2)
		tanTheta2 := alpha2 * u.X / (1 - u.X)
		cosTheta = 1 / float32(math.Sqrt(float64(1+tanTheta2)))
	}
	sinTheta := float32(math.Sqrt(float64(maxf(0, 1-cosTheta*cosTheta))))
	wh := geom.NewVec3(sinTheta*float32(math.Cos(float64(phi))), sinTheta*float32(math.Sin(float64(phi))), cosTheta)
	if !geom.SameHemisphere(wo, wh) {
		wh = wh.Negate()
	}
	return wh
}

// MicrofacetReflection is the Torrance-Sparrow microfacet BRDF, used by
// the plastic/substrate/metal materials' glossy component.
type MicrofacetReflection struct {
	R           spectrum.Spectrum
	Distribution *TrowbridgeReitzDistribution
	Fresnel     Fresnel
}

func NewMicrofacetReflection(r spectrum.Spectrum, d *TrowbridgeReitzDistribution, fresnel Fresnel) *MicrofacetReflection {
	return &MicrofacetReflection{R: r, Distribution: d, Fresnel: fresnel}
}

func (m *MicrofacetReflection) Type() Type { return Glossy | Reflection }

func (m *MicrofacetReflection) F(wo, wi geom.Vec3) spectrum.Spectrum {
	cosThetaO, cosThetaI := geom.AbsCosTheta(wo), geom.AbsCosTheta(wi)
	wh := wi.Add(wo)
	if cosThetaI == 0 || cosThetaO == 0 || wh.LengthSqr() == 0 {
		return spectrum.Black
	}
	wh = wh.Normalize()
	whForFresnel := wh
	if wh.Dot(geom.NewVec3(0, 0, 1)) < 0 {
		whForFresnel = whForFresnel.Negate()
	}
	f := m.Fresnel.Evaluate(wi.Dot(whForFresnel))
	d := m.Distribution.D(wh)
	g := m.Distribution.G(wo, wi)
	return m.R.MulSpectrum(f).Mul(d * g / (4 * cosThetaI * cosThetaO))
}

func (m *MicrofacetReflection) SampleF(wo geom.Vec3, u geom.Point2) (spectrum.Spectrum, geom.Vec3, float32, Type) {
	if wo.Z == 0 {
		return spectrum.Black, geom.Vec3{}, 0, 0
	}
	wh := m.Distribution.SampleWh(wo, u)
	wi := geom.Reflect(wo, wh)
	if !geom.SameHemisphere(wo, wi) {
		return spectrum.Black, geom.Vec3{}, 0, 0
	}
	pdf := m.Distribution.Pdf(wo, wh) / (4 * wo.Dot(wh))
	return m.F(wo, wi), wi, pdf, m.Type()
}

func (m *MicrofacetReflection) Pdf(wo, wi geom.Vec3) float32 {
	if !geom.SameHemisphere(wo, wi) {
		return 0
	}
	wh := wo.Add(wi).Normalize()
	return m.Distribution.Pdf(wo, wh) / (4 * wo.Dot(wh))
}

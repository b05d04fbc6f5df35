package material

import (
	"tracer/pkg/bsdf"
	"tracer/pkg/shape"
	"tracer/pkg/spectrum"
	"tracer/pkg/texture"
)

// Metal is a rough conductor: a single Trowbridge-Reitz microfacet lobe
// with a spectral Fresnel-conductor term parameterized by complex index
// of refraction (Eta, K). Copper and gold presets below are RGB
// reductions of the measured per-wavelength index-of-refraction data.
type Metal struct {
	Eta, K         spectrum.Spectrum
	Roughness      texture.FloatTexture
	URoughness, VRoughness texture.FloatTexture
	RemapRoughness bool
	BumpMap        texture.FloatTexture
}

// CopperEta and CopperK are RGB approximations of copper's measured
// complex index of refraction across the visible spectrum.
var (
	CopperEta = spectrum.RGB(0.200438, 0.924033, 1.102212)
	CopperK   = spectrum.RGB(3.912949, 2.447219, 2.137056)
	GoldEta   = spectrum.RGB(0.143085, 0.374852, 1.442479)
	GoldK     = spectrum.RGB(3.983160, 2.386754, 1.603215)
)

func NewMetal(eta, k spectrum.Spectrum, roughness texture.FloatTexture, remap bool, bump texture.FloatTexture) *Metal {
	return &Metal{Eta: eta, K: k, Roughness: roughness, RemapRoughness: remap, BumpMap: bump}
}

func (m *Metal) ComputeScatteringFunctions(si *shape.SurfaceInteraction) *bsdf.BSDF {
	Bump(m.BumpMap, si)

	b := bsdf.NewBSDF(*si, 1)

	uRough, vRough := float32(0.01), float32(0.01)
	if m.URoughness != nil {
		uRough = m.URoughness.Evaluate(*si)
	} else if m.Roughness != nil {
		uRough = m.Roughness.Evaluate(*si)
	}
	if m.VRoughness != nil {
		vRough = m.VRoughness.Evaluate(*si)
	} else if m.Roughness != nil {
		vRough = m.Roughness.Evaluate(*si)
	}
	if m.RemapRoughness {
		uRough = bsdf.RoughnessToAlpha(uRough)
		vRough = bsdf.RoughnessToAlpha(vRough)
	}

	dist := bsdf.NewTrowbridgeReitz(uRough, vRough)
	fresnel := bsdf.FresnelConductor{EtaI: spectrum.White, EtaT: m.Eta, K: m.K}
	b.Add(bsdf.NewMicrofacetReflection(spectrum.White, dist, fresnel))
	return b
}

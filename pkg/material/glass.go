package material

import (
	"tracer/pkg/bsdf"
	"tracer/pkg/shape"
	"tracer/pkg/texture"
)

// Glass is a smooth dielectric: when Roughness is zero it uses the
// stochastic reflect-or-refract FresnelSpecular lobe; otherwise it
// becomes a rough dielectric with a single Trowbridge-Reitz microfacet
// reflection lobe weighted by Kr. The rough case has no transmission
// lobe: Kt only affects smooth glass.
type Glass struct {
	Kr, Kt           texture.SpectrumTexture
	Eta              texture.FloatTexture
	URoughness, VRoughness texture.FloatTexture
	BumpMap          texture.FloatTexture
	RemapRoughness   bool
}

func NewGlass(kr, kt texture.SpectrumTexture, eta texture.FloatTexture, uRough, vRough texture.FloatTexture, remap bool, bump texture.FloatTexture) *Glass {
	return &Glass{Kr: kr, Kt: kt, Eta: eta, URoughness: uRough, VRoughness: vRough, RemapRoughness: remap, BumpMap: bump}
}

func (g *Glass) ComputeScatteringFunctions(si *shape.SurfaceInteraction) *bsdf.BSDF {
	Bump(g.BumpMap, si)

	eta := float32(1.5)
	if g.Eta != nil {
		eta = g.Eta.Evaluate(*si)
	}
	b := bsdf.NewBSDF(*si, eta)

	kr := g.Kr.Evaluate(*si).Clamp(0, 1e8)
	kt := g.Kt.Evaluate(*si).Clamp(0, 1e8)
	if kr.IsBlack() && kt.IsBlack() {
		return b
	}

	uRough, vRough := float32(0), float32(0)
	if g.URoughness != nil {
		uRough = g.URoughness.Evaluate(*si)
	}
	if g.VRoughness != nil {
		vRough = g.VRoughness.Evaluate(*si)
	}
	isSpecular := uRough == 0 && vRough == 0

	if isSpecular {
		if !kr.IsBlack() && !kt.IsBlack() {
			b.Add(bsdf.NewFresnelSpecular(kr, kt, 1, eta))
		} else if !kr.IsBlack() {
			b.Add(bsdf.NewSpecularReflection(kr, bsdf.FresnelDielectric{EtaI: 1, EtaT: eta}))
		} else if !kt.IsBlack() {
			b.Add(bsdf.NewSpecularTransmission(kt, 1, eta))
		}
		return b
	}

	if g.RemapRoughness {
		uRough = bsdf.RoughnessToAlpha(uRough)
		vRough = bsdf.RoughnessToAlpha(vRough)
	}
	dist := bsdf.NewTrowbridgeReitz(uRough, vRough)
	if !kr.IsBlack() {
		b.Add(bsdf.NewMicrofacetReflection(kr, dist, bsdf.FresnelDielectric{EtaI: 1, EtaT: eta}))
	}
	return b
}

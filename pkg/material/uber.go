package material

import (
	"tracer/pkg/bsdf"
	"tracer/pkg/shape"
	"tracer/pkg/texture"
)

// Uber is a catch-all material combining a diffuse base, a glossy
// specular lobe, and optional mirror reflection/transmission, each
// independently enabled by a nonzero texture - the general-purpose
// material most scene formats fall back to when no specialized
// material applies.
type Uber struct {
	Kd, Ks, Kr, Kt texture.SpectrumTexture
	Roughness      texture.FloatTexture
	Eta            texture.FloatTexture
	RemapRoughness bool
	BumpMap        texture.FloatTexture
}

func NewUber(kd, ks, kr, kt texture.SpectrumTexture, roughness, eta texture.FloatTexture, remap bool, bump texture.FloatTexture) *Uber {
	return &Uber{Kd: kd, Ks: ks, Kr: kr, Kt: kt, Roughness: roughness, Eta: eta, RemapRoughness: remap, BumpMap: bump}
}

func (u *Uber) ComputeScatteringFunctions(si *shape.SurfaceInteraction) *bsdf.BSDF {
	Bump(u.BumpMap, si)

	eta := float32(1.5)
	if u.Eta != nil {
		eta = u.Eta.Evaluate(*si)
	}
	b := bsdf.NewBSDF(*si, eta)

	if u.Kd != nil {
		kd := u.Kd.Evaluate(*si).Clamp(0, 1e8)
		if !kd.IsBlack() {
			b.Add(bsdf.NewLambertianReflection(kd))
		}
	}

	if u.Ks != nil {
		ks := u.Ks.Evaluate(*si).Clamp(0, 1e8)
		if !ks.IsBlack() {
			rough := float32(0.1)
			if u.Roughness != nil {
				rough = u.Roughness.Evaluate(*si)
			}
			if u.RemapRoughness {
				rough = bsdf.RoughnessToAlpha(rough)
			}
			dist := bsdf.NewTrowbridgeReitz(rough, rough)
			fresnel := bsdf.FresnelDielectric{EtaI: 1, EtaT: eta}
			b.Add(bsdf.NewMicrofacetReflection(ks, dist, fresnel))
		}
	}

	if u.Kr != nil {
		kr := u.Kr.Evaluate(*si).Clamp(0, 1e8)
		if !kr.IsBlack() {
			b.Add(bsdf.NewSpecularReflection(kr, bsdf.FresnelDielectric{EtaI: 1, EtaT: eta}))
		}
	}

	if u.Kt != nil {
		kt := u.Kt.Evaluate(*si).Clamp(0, 1e8)
		if !kt.IsBlack() {
			b.Add(bsdf.NewSpecularTransmission(kt, 1, eta))
		}
	}

	return b
}

package material

import (
	"tracer/pkg/bsdf"
	"tracer/pkg/shape"
	"tracer/pkg/texture"
)

// Plastic combines a diffuse Lambertian base with a glossy Trowbridge-
// Reitz specular lobe, each weighted by its own reflectance texture.
type Plastic struct {
	Kd, Ks         texture.SpectrumTexture
	Roughness      texture.FloatTexture
	RemapRoughness bool
	BumpMap        texture.FloatTexture
}

func NewPlastic(kd, ks texture.SpectrumTexture, roughness texture.FloatTexture, remap bool, bump texture.FloatTexture) *Plastic {
	return &Plastic{Kd: kd, Ks: ks, Roughness: roughness, RemapRoughness: remap, BumpMap: bump}
}

func (p *Plastic) ComputeScatteringFunctions(si *shape.SurfaceInteraction) *bsdf.BSDF {
	Bump(p.BumpMap, si)

	b := bsdf.NewBSDF(*si, 1)

	kd := p.Kd.Evaluate(*si).Clamp(0, 1e8)
	if !kd.IsBlack() {
		b.Add(bsdf.NewLambertianReflection(kd))
	}

	ks := p.Ks.Evaluate(*si).Clamp(0, 1e8)
	if !ks.IsBlack() {
		rough := float32(0.1)
		if p.Roughness != nil {
			rough = p.Roughness.Evaluate(*si)
		}
		if p.RemapRoughness {
			rough = bsdf.RoughnessToAlpha(rough)
		}
		dist := bsdf.NewTrowbridgeReitz(rough, rough)
		fresnel := bsdf.FresnelDielectric{EtaI: 1, EtaT: 1.5}
		b.Add(bsdf.NewMicrofacetReflection(ks, dist, fresnel))
	}
	return b
}

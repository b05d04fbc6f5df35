package material

import (
	"tracer/pkg/bsdf"
	"tracer/pkg/shape"
	"tracer/pkg/spectrum"
	"tracer/pkg/texture"
)

// Disney is a simplified principled material: a metallic-roughness
// workflow that blends a Lambertian diffuse lobe with a Trowbridge-Reitz
// glossy lobe, weighted by Metallic instead of carrying the full
// Disney BRDF's separate sheen/clearcoat/anisotropic/subsurface terms.
// Color tints the specular lobe as Metallic approaches 1, mimicking a
// tinted conductor response without a measured complex index of
// refraction.
type Disney struct {
	Color          texture.SpectrumTexture
	Metallic       texture.FloatTexture
	Roughness      texture.FloatTexture
	Specular       texture.FloatTexture
	RemapRoughness bool
	BumpMap        texture.FloatTexture
}

func NewDisney(color texture.SpectrumTexture, metallic, roughness, specular texture.FloatTexture, remap bool, bump texture.FloatTexture) *Disney {
	return &Disney{Color: color, Metallic: metallic, Roughness: roughness, Specular: specular, RemapRoughness: remap, BumpMap: bump}
}

func (d *Disney) ComputeScatteringFunctions(si *shape.SurfaceInteraction) *bsdf.BSDF {
	Bump(d.BumpMap, si)

	b := bsdf.NewBSDF(*si, 1)

	color := spectrum.Gray(0.5)
	if d.Color != nil {
		color = d.Color.Evaluate(*si).Clamp(0, 1e8)
	}
	metallic := float32(0)
	if d.Metallic != nil {
		metallic = clampf(d.Metallic.Evaluate(*si), 0, 1)
	}
	specular := float32(0.5)
	if d.Specular != nil {
		specular = clampf(d.Specular.Evaluate(*si), 0, 1)
	}
	rough := float32(0.5)
	if d.Roughness != nil {
		rough = d.Roughness.Evaluate(*si)
	}
	if d.RemapRoughness {
		rough = bsdf.RoughnessToAlpha(rough)
	}

	if kd := color.Mul(1 - metallic); !kd.IsBlack() {
		b.Add(bsdf.NewLambertianReflection(kd))
	}

	dielectricTint := spectrum.Gray(0.08 * specular).Lerp(color, metallic)
	if !dielectricTint.IsBlack() {
		dist := bsdf.NewTrowbridgeReitz(rough, rough)
		fresnel := bsdf.FresnelDielectric{EtaI: 1, EtaT: 1.5}
		b.Add(bsdf.NewMicrofacetReflection(dielectricTint, dist, fresnel))
	}
	return b
}

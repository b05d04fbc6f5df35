package material

import (
	"tracer/pkg/bsdf"
	"tracer/pkg/shape"
	"tracer/pkg/texture"
)

// Substrate is a layered diffuse-beneath-glossy "Ashikhmin-Shirley
// style" plastic variant: same diffuse+glossy lobe split as Plastic but
// with independent U/V roughness for anisotropic highlights.
type Substrate struct {
	Kd, Ks                 texture.SpectrumTexture
	URoughness, VRoughness texture.FloatTexture
	RemapRoughness         bool
	BumpMap                texture.FloatTexture
}

func NewSubstrate(kd, ks texture.SpectrumTexture, uRough, vRough texture.FloatTexture, remap bool, bump texture.FloatTexture) *Substrate {
	return &Substrate{Kd: kd, Ks: ks, URoughness: uRough, VRoughness: vRough, RemapRoughness: remap, BumpMap: bump}
}

func (s *Substrate) ComputeScatteringFunctions(si *shape.SurfaceInteraction) *bsdf.BSDF {
	Bump(s.BumpMap, si)

	b := bsdf.NewBSDF(*si, 1)

	kd := s.Kd.Evaluate(*si).Clamp(0, 1e8)
	if !kd.IsBlack() {
		b.Add(bsdf.NewLambertianReflection(kd))
	}

	ks := s.Ks.Evaluate(*si).Clamp(0, 1e8)
	if !ks.IsBlack() {
		uRough, vRough := float32(0.1), float32(0.1)
		if s.URoughness != nil {
			uRough = s.URoughness.Evaluate(*si)
		}
		if s.VRoughness != nil {
			vRough = s.VRoughness.Evaluate(*si)
		}
		if s.RemapRoughness {
			uRough = bsdf.RoughnessToAlpha(uRough)
			vRough = bsdf.RoughnessToAlpha(vRough)
		}
		dist := bsdf.NewTrowbridgeReitz(uRough, vRough)
		fresnel := bsdf.FresnelDielectric{EtaI: 1, EtaT: 1.5}
		b.Add(bsdf.NewMicrofacetReflection(ks, dist, fresnel))
	}
	return b
}

package material

import (
	"tracer/pkg/bsdf"
	"tracer/pkg/shape"
	"tracer/pkg/texture"
)

// Translucent is a two-sided diffuse material: Kd/Ks reflect light back
// the way a surface normally does, while a fraction given by Transmit
// also scatters light through to the far side via LambertianTransmission.
type Translucent struct {
	Kd, Ks    texture.SpectrumTexture
	Roughness texture.FloatTexture
	Reflect   texture.SpectrumTexture
	Transmit  texture.SpectrumTexture
	RemapRoughness bool
	BumpMap   texture.FloatTexture
}

func NewTranslucent(kd, ks texture.SpectrumTexture, roughness texture.FloatTexture, reflect, transmit texture.SpectrumTexture, remap bool, bump texture.FloatTexture) *Translucent {
	return &Translucent{Kd: kd, Ks: ks, Roughness: roughness, Reflect: reflect, Transmit: transmit, RemapRoughness: remap, BumpMap: bump}
}

func (t *Translucent) ComputeScatteringFunctions(si *shape.SurfaceInteraction) *bsdf.BSDF {
	Bump(t.BumpMap, si)

	b := bsdf.NewBSDF(*si, 1)

	refl := t.Reflect.Evaluate(*si).Clamp(0, 1)
	trans := t.Transmit.Evaluate(*si).Clamp(0, 1)
	if refl.IsBlack() && trans.IsBlack() {
		return b
	}

	kd := t.Kd.Evaluate(*si).Clamp(0, 1e8)
	if !kd.IsBlack() {
		if !refl.IsBlack() {
			b.Add(bsdf.NewLambertianReflection(kd.MulSpectrum(refl)))
		}
		if !trans.IsBlack() {
			b.Add(bsdf.NewLambertianTransmission(kd.MulSpectrum(trans)))
		}
	}

	ks := t.Ks.Evaluate(*si).Clamp(0, 1e8)
	if !ks.IsBlack() && !refl.IsBlack() {
		rough := float32(0.1)
		if t.Roughness != nil {
			rough = t.Roughness.Evaluate(*si)
		}
		if t.RemapRoughness {
			rough = bsdf.RoughnessToAlpha(rough)
		}
		dist := bsdf.NewTrowbridgeReitz(rough, rough)
		fresnel := bsdf.FresnelDielectric{EtaI: 1, EtaT: 1.5}
		b.Add(bsdf.NewMicrofacetReflection(ks.MulSpectrum(refl), dist, fresnel))
	}
	return b
}

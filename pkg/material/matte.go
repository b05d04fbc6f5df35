package material

import (
	"tracer/pkg/bsdf"
	"tracer/pkg/shape"
	"tracer/pkg/texture"
)

// Matte is a purely diffuse material: Lambertian when Sigma is zero (or
// unset), Oren-Nayar otherwise.
type Matte struct {
	Kd      texture.SpectrumTexture
	Sigma   texture.FloatTexture
	BumpMap texture.FloatTexture
}

func NewMatte(kd texture.SpectrumTexture, sigma, bump texture.FloatTexture) *Matte {
	return &Matte{Kd: kd, Sigma: sigma, BumpMap: bump}
}

func (m *Matte) ComputeScatteringFunctions(si *shape.SurfaceInteraction) *bsdf.BSDF {
	Bump(m.BumpMap, si)

	b := bsdf.NewBSDF(*si, 1)
	kd := m.Kd.Evaluate(*si).Clamp(0, 1e8)
	if kd.IsBlack() {
		return b
	}
	sigma := float32(0)
	if m.Sigma != nil {
		sigma = clampf(m.Sigma.Evaluate(*si), 0, 90)
	}
	if sigma == 0 {
		b.Add(bsdf.NewLambertianReflection(kd))
	} else {
		b.Add(bsdf.NewOrenNayar(kd, sigma))
	}
	return b
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package material

import (
	"tracer/pkg/bsdf"
	"tracer/pkg/shape"
	"tracer/pkg/texture"
)

// Mirror is a perfectly specular, achromatic-Fresnel reflector.
type Mirror struct {
	Kr      texture.SpectrumTexture
	BumpMap texture.FloatTexture
}

func NewMirror(kr texture.SpectrumTexture, bump texture.FloatTexture) *Mirror {
	return &Mirror{Kr: kr, BumpMap: bump}
}

func (m *Mirror) ComputeScatteringFunctions(si *shape.SurfaceInteraction) *bsdf.BSDF {
	Bump(m.BumpMap, si)
	b := bsdf.NewBSDF(*si, 1)
	kr := m.Kr.Evaluate(*si).Clamp(0, 1e8)
	if !kr.IsBlack() {
		b.Add(bsdf.NewSpecularReflection(kr, bsdf.FresnelNoOp{}))
	}
	return b
}

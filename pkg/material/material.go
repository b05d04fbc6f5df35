// Package material implements the Material interface: each concrete
// material inspects its textures at a shading point and assembles a
// tracer/pkg/bsdf.BSDF out of the appropriate BxDF lobes, keeping
// stored parameters and evaluated shading state separate.
package material

import (
	"tracer/pkg/bsdf"
	"tracer/pkg/geom"
	"tracer/pkg/shape"
	"tracer/pkg/texture"
)

// Material produces the BSDF describing how a surface scatters light at
// the given interaction. si.Shading is mutated in place when the
// material bump-maps the surface.
type Material interface {
	ComputeScatteringFunctions(si *shape.SurfaceInteraction) *bsdf.BSDF
}

// Bump perturbs si's shading normal according to a scalar displacement
// texture's numerical derivatives, following the standard forward-
// difference bump mapping technique: offset the shading point slightly
// along dp/du and dp/dv, compare displacement values, and tilt the normal
// by the resulting slope.
func Bump(d texture.FloatTexture, si *shape.SurfaceInteraction) {
	if d == nil {
		return
	}
	const du, dv = 0.0005, 0.0005

	siEval := *si
	uDisplace := d.Evaluate(siEval)

	siU := siEval
	siU.P = siEval.P.Add(siEval.Shading.Dpdu.Mul(du))
	siU.UV.X += du
	uDu := d.Evaluate(siU)

	siV := siEval
	siV.P = siEval.P.Add(siEval.Shading.Dpdv.Mul(dv))
	siV.UV.Y += dv
	uDv := d.Evaluate(siV)

	dDispDu := (uDu - uDisplace) / du
	dDispDv := (uDv - uDisplace) / dv

	dpdu := si.Shading.Dpdu.Add(si.Shading.N.ToVec3().Mul(dDispDu))
	dpdv := si.Shading.Dpdv.Add(si.Shading.N.ToVec3().Mul(dDispDv))
	nv := dpdu.Cross(dpdv).Normalize()
	n := geom.NewNormal(nv.X, nv.Y, nv.Z)
	if si.Shading.N.Dot(nv) < 0 {
		n = n.Negate()
	}
	si.SetShadingGeometry(n, dpdu, dpdv, false)
}

package integrator

import (
	"tracer/pkg/geom"
	"tracer/pkg/sampler"
	"tracer/pkg/scene"
	"tracer/pkg/spectrum"
)

// Normal is a debug integrator that visualizes the shading normal at
// the first hit, remapped from [-1,1] to [0,1], with no light
// transport at all.
type Normal struct{}

func NewNormal() *Normal { return &Normal{} }

func (n *Normal) Preprocess(sc *scene.Scene, s sampler.Sampler) {}

func (n *Normal) Li(ray geom.Ray, sc *scene.Scene, s sampler.Sampler, depth int) spectrum.Spectrum {
	si, hit := sc.Intersect(&ray)
	if !hit {
		return spectrum.Black
	}
	nn := si.Shading.N
	return spectrum.RGB(nn.X*0.5+0.5, nn.Y*0.5+0.5, nn.Z*0.5+0.5)
}

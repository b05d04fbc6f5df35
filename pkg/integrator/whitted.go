package integrator

import (
	"tracer/pkg/bsdf"
	"tracer/pkg/geom"
	"tracer/pkg/sampler"
	"tracer/pkg/scene"
	"tracer/pkg/spectrum"
)

// Whitted is the classic recursive ray tracer: emission plus a full sum
// over every light (no importance sampling between them) at each
// vertex, plus specular reflection/transmission recursion up to
// MaxDepth. No global illumination, no Russian roulette.
type Whitted struct {
	MaxDepth int
}

func NewWhitted(maxDepth int) *Whitted {
	return &Whitted{MaxDepth: maxDepth}
}

func (w *Whitted) Preprocess(sc *scene.Scene, s sampler.Sampler) {}

func (w *Whitted) Li(ray geom.Ray, sc *scene.Scene, s sampler.Sampler, depth int) spectrum.Spectrum {
	l := spectrum.Black
	si, hit := sc.Intersect(&ray)
	if !hit {
		return missRadiance(ray, sc)
	}

	b := computeScattering(&si)
	if b == nil {
		r := si.SpawnRay(ray.Direction)
		return w.Li(r, sc, s, depth)
	}

	l = l.Add(le(si, si.Wo))
	if b.NumComponents(bsdf.All&^bsdf.Specular) > 0 {
		l = l.Add(uniformSampleAllLights(si, b, sc, s))
	}

	if depth+1 < w.MaxDepth {
		l = l.Add(specularReflect(w.Li, ray, si, b, sc, s, depth))
		l = l.Add(specularTransmit(w.Li, ray, si, b, sc, s, depth))
	}

	return l
}

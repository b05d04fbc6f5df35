package integrator

import (
	"tracer/pkg/bsdf"
	"tracer/pkg/geom"
	"tracer/pkg/sampler"
	"tracer/pkg/scene"
	"tracer/pkg/spectrum"
)

// LightStrategy selects how DirectLighting samples the scene's lights
// each time it shades a vertex.
type LightStrategy int

const (
	UniformSampleAll LightStrategy = iota
	UniformSampleOne
)

// DirectLighting accounts for only one bounce of direct illumination
// (no indirect/global illumination), plus specular recursion up to
// MaxDepth for mirrors and glass.
type DirectLighting struct {
	Strategy LightStrategy
	MaxDepth int
}

func NewDirectLighting(strategy LightStrategy, maxDepth int) *DirectLighting {
	return &DirectLighting{Strategy: strategy, MaxDepth: maxDepth}
}

func (d *DirectLighting) Preprocess(sc *scene.Scene, s sampler.Sampler) {}

func (d *DirectLighting) Li(ray geom.Ray, sc *scene.Scene, s sampler.Sampler, depth int) spectrum.Spectrum {
	l := spectrum.Black
	si, hit := sc.Intersect(&ray)
	if !hit {
		return missRadiance(ray, sc)
	}

	b := computeScattering(&si)
	if b == nil {
		r := si.SpawnRay(ray.Direction)
		return d.Li(r, sc, s, depth)
	}

	l = l.Add(le(si, si.Wo))

	if len(sc.Lights) > 0 && b.NumComponents(bsdf.All&^bsdf.Specular) > 0 {
		switch d.Strategy {
		case UniformSampleAll:
			l = l.Add(uniformSampleAllLights(si, b, sc, s))
		default:
			l = l.Add(uniformSampleOneLight(si, b, sc, s))
		}
	}

	if depth+1 < d.MaxDepth {
		l = l.Add(specularReflect(d.Li, ray, si, b, sc, s, depth))
		l = l.Add(specularTransmit(d.Li, ray, si, b, sc, s, depth))
	}

	return l
}

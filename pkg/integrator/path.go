package integrator

import (
	"tracer/pkg/bsdf"
	"tracer/pkg/geom"
	"tracer/pkg/sampler"
	"tracer/pkg/scene"
	"tracer/pkg/spectrum"
)

// Path is a unidirectional Monte Carlo path tracer: next-event
// estimation at every diffuse/glossy vertex, MIS-weighted against BSDF
// sampling, Russian roulette termination after RRThreshold bounces.
type Path struct {
	MaxDepth     int
	RRThreshold  int
}

func NewPath(maxDepth, rrThreshold int) *Path {
	return &Path{MaxDepth: maxDepth, RRThreshold: rrThreshold}
}

func (p *Path) Preprocess(sc *scene.Scene, s sampler.Sampler) {}

func (p *Path) Li(ray geom.Ray, sc *scene.Scene, s sampler.Sampler, depth int) spectrum.Spectrum {
	l := spectrum.Black
	beta := spectrum.White
	specularBounce := true
	r := ray

	for bounces := 0; ; bounces++ {
		si, hit := sc.Intersect(&r)
		if !hit {
			if bounces == 0 || specularBounce {
				l = l.Add(beta.MulSpectrum(missRadiance(r, sc)))
			}
			break
		}

		if bounces == 0 || specularBounce {
			l = l.Add(beta.MulSpectrum(le(si, si.Wo)))
		}

		b := computeScattering(&si)
		if b == nil {
			break
		}

		if bounces+1 >= p.MaxDepth {
			break
		}

		if b.NumComponents(bsdf.All&^bsdf.Specular) > 0 {
			l = l.Add(beta.MulSpectrum(uniformSampleOneLight(si, b, sc, s)))
		}

		wo := si.Wo
		f, wi, pdf, sampledType := b.SampleF(wo, s.Get2D(), s.Get1D(), bsdf.All)
		if pdf == 0 || f.IsBlack() {
			break
		}
		beta = beta.MulSpectrum(f).Mul(wi.AbsDot(si.Shading.N.ToVec3()) / pdf)
		specularBounce = sampledType&bsdf.Specular != 0
		r = si.SpawnRay(wi)
		r.Time = si.Time

		if bounces > p.RRThreshold {
			q := maxf(0.05, 1-beta.MaxComponent())
			if s.Get1D() < q {
				break
			}
			beta = beta.Mul(1 / (1 - q))
		}
	}
	return l
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

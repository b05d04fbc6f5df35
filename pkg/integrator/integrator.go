// Package integrator implements the SamplerIntegrator contract and its
// concrete strategies (path, direct lighting, Whitted, normal debug).
// The shared uniformSampleOneLight/estimateDirect/specularReflect/
// specularTransmit helpers below generalize across every variant.
package integrator

import (
	"tracer/pkg/bsdf"
	"tracer/pkg/geom"
	"tracer/pkg/light"
	"tracer/pkg/sampler"
	"tracer/pkg/scene"
	"tracer/pkg/shape"
	"tracer/pkg/spectrum"
)

// emitter is satisfied by scene.GeometricPrimitive; le uses it to read
// the emission of whatever primitive a ray hit.
type emitter interface {
	Le(si shape.SurfaceInteraction, w geom.Vec3) spectrum.Spectrum
}

// computeScattering resolves the material bound to a surface
// interaction's primitive and builds its BSDF, returning nil for a
// shape with no material bound (the area-light-only case pbrt calls an
// "interface" shape) or for a miss.
func computeScattering(si *shape.SurfaceInteraction) *bsdf.BSDF {
	gp, ok := si.Primitive.(*scene.GeometricPrimitive)
	if !ok || gp.Material == nil {
		return nil
	}
	return gp.Material.ComputeScatteringFunctions(si)
}

// Integrator is implemented by every light transport strategy.
type Integrator interface {
	// Preprocess lets an integrator precompute anything it needs from
	// the finished scene before rendering starts (the infinite light's
	// distribution is already built at construction, so this is
	// presently a no-op hook kept for parity with the contract).
	Preprocess(sc *scene.Scene, s sampler.Sampler)

	// Li estimates the radiance arriving along ray from the scene.
	Li(ray geom.Ray, sc *scene.Scene, s sampler.Sampler, depth int) spectrum.Spectrum
}

func le(si shape.SurfaceInteraction, wo geom.Vec3) spectrum.Spectrum {
	if si.Primitive == nil {
		return spectrum.Black
	}
	if e, ok := si.Primitive.(emitter); ok {
		return e.Le(si, wo)
	}
	return spectrum.Black
}

func missRadiance(ray geom.Ray, sc *scene.Scene) spectrum.Spectrum {
	l := spectrum.Black
	for _, lt := range sc.Lights {
		l = l.Add(lt.Le(ray))
	}
	return l
}

// uniformSampleOneLight picks one light from the scene uniformly at
// random and returns its direct-lighting estimate scaled by 1/pmf.
func uniformSampleOneLight(si shape.SurfaceInteraction, b *bsdf.BSDF, sc *scene.Scene, s sampler.Sampler) spectrum.Spectrum {
	n := len(sc.Lights)
	if n == 0 {
		return spectrum.Black
	}
	idx := int(s.Get1D() * float32(n))
	if idx >= n {
		idx = n - 1
	}
	lt := sc.Lights[idx]
	pmf := 1.0 / float32(n)
	ld := estimateDirect(si, b, lt, sc, s)
	return ld.Mul(1 / pmf)
}

// uniformSampleAllLights sums a direct-lighting estimate from every
// light in the scene; this is DirectLighting's UniformSampleAll
// strategy.
func uniformSampleAllLights(si shape.SurfaceInteraction, b *bsdf.BSDF, sc *scene.Scene, s sampler.Sampler) spectrum.Spectrum {
	l := spectrum.Black
	for _, lt := range sc.Lights {
		l = l.Add(estimateDirect(si, b, lt, sc, s))
	}
	return l
}

// estimateDirect computes a single-sample MIS estimate of direct
// lighting from one light at a surface interaction, combining the
// light-sampling and BSDF-sampling strategies with the power
// heuristic. Delta lights skip the BSDF-sampling half entirely, since
// they have zero probability of being hit by a scattered ray.
func estimateDirect(si shape.SurfaceInteraction, b *bsdf.BSDF, lt light.Light, sc *scene.Scene, s sampler.Sampler) spectrum.Spectrum {
	ld := spectrum.Black
	wo := si.Wo
	ref := light.Interaction{P: si.P, N: si.N, Time: si.Time}

	uLight := s.Get2D()
	li, wi, lightPdf, vis := lt.SampleLi(ref, uLight)
	if lightPdf > 0 && !li.IsBlack() {
		f := b.F(wo, wi, bsdf.All).Mul(wi.AbsDot(si.Shading.N.ToVec3()))
		scatterPdf := b.Pdf(wo, wi, bsdf.All)
		if !f.IsBlack() && !sc.IntersectP(vis.Ray()) {
			if lt.IsDelta() {
				ld = ld.Add(f.MulSpectrum(li).Mul(1 / lightPdf))
			} else {
				weight := bsdf.PowerHeuristic(1, lightPdf, 1, scatterPdf)
				ld = ld.Add(f.MulSpectrum(li).Mul(weight / lightPdf))
			}
		}
	}

	if !lt.IsDelta() {
		uScatter := s.Get2D()
		f, wi, scatterPdf, _ := b.SampleF(wo, uScatter, s.Get1D(), bsdf.All)
		f = f.Mul(wi.AbsDot(si.Shading.N.ToVec3()))
		if !f.IsBlack() && scatterPdf > 0 {
			lightPdf := lt.PdfLi(ref, wi)
			if lightPdf > 0 {
				weight := bsdf.PowerHeuristic(1, scatterPdf, 1, lightPdf)
				shadowRay := si.SpawnRay(wi)
				shadowRay.Time = si.Time
				tr, hit := sc.Intersect(&shadowRay)
				var liScatter spectrum.Spectrum
				if hit {
					// Only emission from this light's own shape counts here.
					if gp, ok := tr.Primitive.(*scene.GeometricPrimitive); ok && gp.AreaLight != nil && light.Light(gp.AreaLight) == lt {
						liScatter = le(tr, wi.Negate())
					}
				} else {
					liScatter = lt.Le(shadowRay)
				}
				ld = ld.Add(f.MulSpectrum(liScatter).Mul(weight / scatterPdf))
			}
		}
	}

	return ld
}

// specularReflect recurses the integrator along the BSDF's specular
// reflection lobe, used by Whitted and DirectLighting alongside light
// sampling while depth+1 is below their MaxDepth.
func specularReflect(li func(geom.Ray, *scene.Scene, sampler.Sampler, int) spectrum.Spectrum, ray geom.Ray, si shape.SurfaceInteraction, b *bsdf.BSDF, sc *scene.Scene, s sampler.Sampler, depth int) spectrum.Spectrum {
	wo := si.Wo
	f, wi, pdf, sType := b.SampleF(wo, s.Get2D(), s.Get1D(), bsdf.Reflection|bsdf.Specular)
	if pdf == 0 || f.IsBlack() || sType&bsdf.Specular == 0 {
		return spectrum.Black
	}
	rd := si.SpawnRay(wi)
	l := li(rd, sc, s, depth+1)
	return f.Mul(wi.AbsDot(si.Shading.N.ToVec3()) / pdf).MulSpectrum(l)
}

// specularTransmit is specularReflect's transmission counterpart.
func specularTransmit(li func(geom.Ray, *scene.Scene, sampler.Sampler, int) spectrum.Spectrum, ray geom.Ray, si shape.SurfaceInteraction, b *bsdf.BSDF, sc *scene.Scene, s sampler.Sampler, depth int) spectrum.Spectrum {
	wo := si.Wo
	f, wi, pdf, sType := b.SampleF(wo, s.Get2D(), s.Get1D(), bsdf.Transmission|bsdf.Specular)
	if pdf == 0 || f.IsBlack() || sType&bsdf.Specular == 0 {
		return spectrum.Black
	}
	rd := si.SpawnRay(wi)
	l := li(rd, sc, s, depth+1)
	return f.Mul(wi.AbsDot(si.Shading.N.ToVec3()) / pdf).MulSpectrum(l)
}

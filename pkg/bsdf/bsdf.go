package bsdf

import (
	"tracer/pkg/geom"
	"tracer/pkg/shape"
	"tracer/pkg/spectrum"
)

const maxBxDFs = 8

// BSDF composes up to maxBxDFs lobes at a shading point and converts
// between the local shading frame (z = shading normal) and world
// space via the ns/ng/ss/ts frame below.
type BSDF struct {
	Eta                float32
	ns, ng             geom.Normal
	ss, ts             geom.Vec3
	bxdfs              [maxBxDFs]BxDF
	numBxDFs           int
}

// NewBSDF builds a BSDF from a surface interaction's (possibly
// bump-mapped) shading frame. eta is the surface's index of refraction,
// used by light transport to track radiance scaling across interfaces;
// pass 1 for opaque, non-transmissive materials.
func NewBSDF(si shape.SurfaceInteraction, eta float32) *BSDF {
	ns := si.Shading.N
	ss := si.Shading.Dpdu
	if ss.LengthSqr() == 0 {
		ss, _ = geom.CoordinateSystem(ns.ToVec3())
	} else {
		ss = ss.Normalize()
	}
	return &BSDF{
		Eta: eta,
		ns:  ns,
		ng:  si.N,
		ss:  ss,
		ts:  ns.ToVec3().Cross(ss),
	}
}

// Add appends a lobe; if the fixed-size lobe array is already full the
// lobe is silently dropped, which the small, known-bound lobe counts of
// every material in this renderer never reach.
func (b *BSDF) Add(bxdf BxDF) {
	if b.numBxDFs < maxBxDFs {
		b.bxdfs[b.numBxDFs] = bxdf
		b.numBxDFs++
	}
}

func (b *BSDF) NumComponents(flags Type) int {
	n := 0
	for i := 0; i < b.numBxDFs; i++ {
		if b.bxdfs[i].Type().MatchesFlags(flags) {
			n++
		}
	}
	return n
}

func (b *BSDF) worldToLocal(v geom.Vec3) geom.Vec3 {
	return geom.NewVec3(v.Dot(b.ss), v.Dot(b.ts), v.Dot(b.ns.ToVec3()))
}

func (b *BSDF) localToWorld(v geom.Vec3) geom.Vec3 {
	return geom.NewVec3(
		b.ss.X*v.X+b.ts.X*v.Y+b.ns.X*v.Z,
		b.ss.Y*v.X+b.ts.Y*v.Y+b.ns.Y*v.Z,
		b.ss.Z*v.X+b.ts.Z*v.Y+b.ns.Z*v.Z,
	)
}

// F evaluates the sum of all non-specular lobes matching flags whose
// reflection/transmission side agrees with woW/wiW's placement relative
// to the geometric normal (to avoid light leaking through backfaces).
func (b *BSDF) F(woW, wiW geom.Vec3, flags Type) spectrum.Spectrum {
	wi, wo := b.worldToLocal(wiW), b.worldToLocal(woW)
	if wo.Z == 0 {
		return spectrum.Black
	}
	reflect := wiW.Dot(b.ng.ToVec3())*woW.Dot(b.ng.ToVec3()) > 0

	f := spectrum.Black
	for i := 0; i < b.numBxDFs; i++ {
		bx := b.bxdfs[i]
		if !bx.Type().MatchesFlags(flags) {
			continue
		}
		if (reflect && bx.Type()&Reflection != 0) || (!reflect && bx.Type()&Transmission != 0) {
			f = f.Add(bx.F(wo, wi))
		}
	}
	return f
}

// Pdf averages the solid-angle densities of every matching lobe, which is
// what the multiple importance sampling combination in the path
// integrator expects when the BSDF itself was not the sampling strategy
// that produced wi.
func (b *BSDF) Pdf(woW, wiW geom.Vec3, flags Type) float32 {
	if b.numBxDFs == 0 {
		return 0
	}
	wo, wi := b.worldToLocal(woW), b.worldToLocal(wiW)
	if wo.Z == 0 {
		return 0
	}
	pdf := float32(0)
	matching := 0
	for i := 0; i < b.numBxDFs; i++ {
		if b.bxdfs[i].Type().MatchesFlags(flags) {
			pdf += b.bxdfs[i].Pdf(wo, wi)
			matching++
		}
	}
	if matching == 0 {
		return 0
	}
	return pdf / float32(matching)
}

// SampleF picks one matching lobe uniformly at random, draws wi from it,
// and then - for non-specular lobes - adds in the contribution of every
// other matching lobe evaluated at the same wi, together with the
// correctly averaged pdf. This mirrors the standard pbrt BSDF::Sample_f
// strategy for combining multiple lobes into one importance sample.
func (b *BSDF) SampleF(woW geom.Vec3, u geom.Point2, uComponent float32, flags Type) (f spectrum.Spectrum, wiW geom.Vec3, pdf float32, sampledType Type) {
	matching := b.NumComponents(flags)
	if matching == 0 {
		return spectrum.Black, geom.Vec3{}, 0, 0
	}
	comp := int(uComponent * float32(matching))
	if comp == matching {
		comp = matching - 1
	}

	var chosen BxDF
	count := comp
	for i := 0; i < b.numBxDFs; i++ {
		if b.bxdfs[i].Type().MatchesFlags(flags) {
			if count == 0 {
				chosen = b.bxdfs[i]
				break
			}
			count--
		}
	}
	if chosen == nil {
		return spectrum.Black, geom.Vec3{}, 0, 0
	}

	wo := b.worldToLocal(woW)
	if wo.Z == 0 {
		return spectrum.Black, geom.Vec3{}, 0, 0
	}

	fLocal, wi, pdfLocal, sType := chosen.SampleF(wo, u)
	if pdfLocal == 0 {
		return spectrum.Black, geom.Vec3{}, 0, 0
	}
	wiW = b.localToWorld(wi)

	if !chosen.Type().IsSpecular() && matching > 1 {
		pdfLocal = 0
		for i := 0; i < b.numBxDFs; i++ {
			if b.bxdfs[i].Type().MatchesFlags(flags) {
				pdfLocal += b.bxdfs[i].Pdf(wo, wi)
			}
		}
		pdfLocal /= float32(matching)

		reflect := wiW.Dot(b.ng.ToVec3())*woW.Dot(b.ng.ToVec3()) > 0
		fLocal = spectrum.Black
		for i := 0; i < b.numBxDFs; i++ {
			bx := b.bxdfs[i]
			if !bx.Type().MatchesFlags(flags) {
				continue
			}
			if (reflect && bx.Type()&Reflection != 0) || (!reflect && bx.Type()&Transmission != 0) {
				fLocal = fLocal.Add(bx.F(wo, wi))
			}
		}
	}

	return fLocal, wiW, pdfLocal, sType
}

// PowerHeuristic is the beta=2 multiple importance sampling weight from
// Veach's thesis, used throughout the path integrator to combine BSDF and
// light sampling strategies.
func PowerHeuristic(nf int, fPdf float32, ng int, gPdf float32) float32 {
	f := float32(nf) * fPdf
	g := float32(ng) * gPdf
	if f+g == 0 {
		return 0
	}
	return (f * f) / (f*f + g*g)
}

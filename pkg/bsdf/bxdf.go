// Package bsdf implements the bidirectional scattering distribution
// functions used for shading: individual BxDF lobes (Lambertian,
// Oren-Nayar, specular reflection/transmission, Trowbridge-Reitz
// microfacet) composed into a BSDF that evaluates, importance-samples and
// reports the PDF of the combined scattering event in a local shading
// frame.
package bsdf

import (
	"math"

	"tracer/pkg/geom"
	"tracer/pkg/spectrum"
)

// Type is a bitmask classifying a BxDF lobe: reflection/transmission
// crossed with diffuse/glossy/specular.
type Type uint8

const (
	Reflection Type = 1 << iota
	Transmission
	Diffuse
	Glossy
	Specular

	All = Reflection | Transmission | Diffuse | Glossy | Specular
)

func (t Type) MatchesFlags(flags Type) bool { return t&flags == t }

func (t Type) IsSpecular() bool { return t&Specular != 0 }

// BxDF is a single scattering lobe, evaluated in the local shading frame
// where the z axis is the shading normal.
type BxDF interface {
	Type() Type

	// F evaluates the lobe for a given pair of directions. Specular lobes
	// return black here (probability zero of sampling the exact pair) and
	// must be handled through SampleF.
	F(wo, wi geom.Vec3) spectrum.Spectrum

	// SampleF draws a wi (and its pdf) from the lobe's distribution given
	// wo and a pair of canonical random numbers. The returned pdf is with
	// respect to solid angle, except for specular lobes, whose pdf is the
	// discrete probability of the chosen direction (1 for a single mirror
	// or refraction lobe, the Fresnel reflect/refract probability for
	// FresnelSpecular); the BSDF composition skips MIS weighting for them.
	SampleF(wo geom.Vec3, u geom.Point2) (f spectrum.Spectrum, wi geom.Vec3, pdf float32, sampledType Type)

	// Pdf returns the solid-angle density SampleF would assign to wi.
	// Specular lobes return 0.
	Pdf(wo, wi geom.Vec3) float32
}

// cosineSampleHemisphere maps canonical random numbers to a direction
// distributed proportionally to cosine-weight over the upper hemisphere
// (Malley's method via a concentric disk sample).
func cosineSampleHemisphere(u geom.Point2) geom.Vec3 {
	d := concentricSampleDisk(u)
	z := float32(math.Sqrt(float64(maxf(0, 1-d.X*d.X-d.Y*d.Y))))
	return geom.NewVec3(d.X, d.Y, z)
}

func cosineHemispherePdf(cosTheta float32) float32 {
	return cosTheta / math.Pi
}

func concentricSampleDisk(u geom.Point2) geom.Point2 {
	ox := 2*u.X - 1
	oy := 2*u.Y - 1
	if ox == 0 && oy == 0 {
		return geom.Point2{}
	}
	var theta, r float32
	if absf(ox) > absf(oy) {
		r = ox
		theta = (math.Pi / 4) * (oy / ox)
	} else {
		r = oy
		theta = (math.Pi / 2) - (math.Pi/4)*(ox/oy)
	}
	return geom.Point2{X: r * float32(math.Cos(float64(theta))), Y: r * float32(math.Sin(float64(theta)))}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

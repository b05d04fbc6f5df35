package light

import (
	"math"

	"tracer/pkg/geom"
	"tracer/pkg/spectrum"
	"tracer/pkg/texture"
)

// InfiniteAreaLight represents distant environment illumination stored
// as a lat-long environment map. Sampling draws from a 2D piecewise-
// constant distribution built from the map's per-texel luminance, so
// bright regions (a sun disc, a window) are importance-sampled instead
// of drawn uniformly over the sphere.
type InfiniteAreaLight struct {
	Map         *texture.MIPMap
	LightToWorld geom.Transform
	WorldToLight geom.Transform
	WorldRadius float32
	distribution *Distribution2D
}

func NewInfiniteAreaLight(envMap *texture.MIPMap, lightToWorld geom.Transform, worldRadius float32) *InfiniteAreaLight {
	w, h := envMap.Width(), envMap.Height()
	lum := make([]float32, w*h)
	for t := 0; t < h; t++ {
		for s := 0; s < w; s++ {
			lum[t*w+s] = envMap.BaseTexel(s, t).Luminance()
		}
	}
	return &InfiniteAreaLight{
		Map:          envMap,
		LightToWorld: lightToWorld,
		WorldToLight: lightToWorld.Inverse(),
		WorldRadius:  worldRadius,
		distribution: NewDistribution2D(lum, w, h),
	}
}

func (l *InfiniteAreaLight) directionToUV(d geom.Vec3) geom.Point2 {
	theta := float32(math.Acos(clampf64(float64(d.Y), -1, 1)))
	phi := float32(math.Atan2(float64(d.Z), float64(d.X)))
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return geom.Point2{X: phi / (2 * math.Pi), Y: theta / math.Pi}
}

func (l *InfiniteAreaLight) uvToDirection(uv geom.Point2) geom.Vec3 {
	phi := uv.X * 2 * math.Pi
	theta := uv.Y * math.Pi
	sinTheta, cosTheta := float32(math.Sin(float64(theta))), float32(math.Cos(float64(theta)))
	sinPhi, cosPhi := float32(math.Sin(float64(phi))), float32(math.Cos(float64(phi)))
	return geom.Vec3{X: sinTheta * cosPhi, Y: cosTheta, Z: sinTheta * sinPhi}
}

func clampf64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (l *InfiniteAreaLight) SampleLi(ref Interaction, u geom.Point2) (spectrum.Spectrum, geom.Vec3, float32, VisibilityTester) {
	uv, mapPdf := l.distribution.SampleContinuous(u)
	if mapPdf == 0 {
		return spectrum.Black, geom.Vec3{}, 0, VisibilityTester{}
	}
	theta := uv.Y * math.Pi
	sinTheta := float32(math.Sin(float64(theta)))
	if sinTheta == 0 {
		return spectrum.Black, geom.Vec3{}, 0, VisibilityTester{}
	}
	wiLight := l.uvToDirection(uv)
	wi := l.LightToWorld.Vector(wiLight)
	pdf := mapPdf / (2 * math.Pi * math.Pi * sinTheta)

	st := geom.Point2{X: uv.X * float32(l.Map.Width()), Y: uv.Y * float32(l.Map.Height())}
	li := l.Map.Lookup(st, 0)

	far := ref.P.Add(wi.Mul(2 * l.WorldRadius))
	vis := spawnVisibilityTester(ref.P, ref.N, far, ref.Time)
	return li, wi, pdf, vis
}

func (l *InfiniteAreaLight) PdfLi(ref Interaction, wi geom.Vec3) float32 {
	wiLight := l.WorldToLight.Vector(wi)
	uv := l.directionToUV(wiLight)
	theta := uv.Y * math.Pi
	sinTheta := float32(math.Sin(float64(theta)))
	if sinTheta == 0 {
		return 0
	}
	return l.distribution.Pdf(uv) / (2 * math.Pi * math.Pi * sinTheta)
}

func (l *InfiniteAreaLight) Power() spectrum.Spectrum {
	avg := spectrum.Black
	w, h := l.Map.Width(), l.Map.Height()
	for t := 0; t < h; t++ {
		for s := 0; s < w; s++ {
			avg = avg.Add(l.Map.BaseTexel(s, t))
		}
	}
	avg = avg.Div(float32(w * h))
	return avg.Mul(4 * math.Pi * math.Pi * l.WorldRadius * l.WorldRadius)
}

func (l *InfiniteAreaLight) Le(ray geom.Ray) spectrum.Spectrum {
	d := l.WorldToLight.Vector(ray.Direction.Normalize())
	uv := l.directionToUV(d)
	st := geom.Point2{X: uv.X * float32(l.Map.Width()), Y: uv.Y * float32(l.Map.Height())}
	return l.Map.Lookup(st, 0)
}

func (l *InfiniteAreaLight) IsDelta() bool { return false }

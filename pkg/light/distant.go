package light

import (
	"tracer/pkg/geom"
	"tracer/pkg/spectrum"
)

// DistantLight models an infinitely distant directional source (e.g. a
// sun): constant radiance L arriving from a fixed direction, sampled by
// spawning the shadow ray far enough to exit the scene's bounding
// sphere.
type DistantLight struct {
	Direction geom.Vec3 // points away from the light, toward the scene, same sign convention pbrt uses
	L         spectrum.Spectrum
	WorldRadius float32 // scene bounding sphere radius; set by Scene at build time
}

func NewDistantLight(dir geom.Vec3, l spectrum.Spectrum, worldRadius float32) *DistantLight {
	return &DistantLight{Direction: dir.Normalize(), L: l, WorldRadius: worldRadius}
}

func (l *DistantLight) SampleLi(ref Interaction, u geom.Point2) (spectrum.Spectrum, geom.Vec3, float32, VisibilityTester) {
	wi := l.Direction.Negate()
	pOutside := ref.P.Add(wi.Mul(2 * l.WorldRadius))
	vis := spawnVisibilityTester(ref.P, ref.N, pOutside, ref.Time)
	return l.L, wi, 1, vis
}

func (l *DistantLight) PdfLi(ref Interaction, wi geom.Vec3) float32 { return 0 }

func (l *DistantLight) Power() spectrum.Spectrum {
	return l.L.Mul(3.14159265 * l.WorldRadius * l.WorldRadius)
}

func (l *DistantLight) Le(ray geom.Ray) spectrum.Spectrum { return spectrum.Black }

func (l *DistantLight) IsDelta() bool { return true }

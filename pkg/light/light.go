// Package light implements the point, distant, infinite-environment and
// diffuse-area light sources an integrator samples for next-event
// estimation.
package light

import (
	"tracer/pkg/geom"
	"tracer/pkg/spectrum"
)

// Interaction is the minimal reference-point information a light needs
// to sample itself from: position and (for surface interactions) the
// geometric normal used to offset the shadow ray.
type Interaction struct {
	P    geom.Point3
	N    geom.Normal
	Time float32
}

// VisibilityTester carries the two endpoints of a shadow ray; Ray builds
// the segment between them, and the integrator tests it against the
// scene itself (Scene.IntersectP), so this package does not import
// pkg/scene.
type VisibilityTester struct {
	P0, P1 geom.Point3
	Time   float32
}

// Light is implemented by every light source.
type Light interface {
	// SampleLi samples an incident direction wi at ref, returning the
	// radiance arriving along it, the direction, its pdf (solid angle,
	// except delta lights which report 1), and a visibility tester.
	SampleLi(ref Interaction, u geom.Point2) (li spectrum.Spectrum, wi geom.Vec3, pdf float32, vis VisibilityTester)

	// PdfLi returns the solid-angle sampling density SampleLi would have
	// used for direction wi from ref; zero for delta lights.
	PdfLi(ref Interaction, wi geom.Vec3) float32

	Power() spectrum.Spectrum

	// Le returns emitted radiance along a ray that escaped the scene,
	// nonzero only for infinite/environment lights.
	Le(ray geom.Ray) spectrum.Spectrum

	IsDelta() bool
}

func offsetRayOrigin(p geom.Point3, n geom.Normal, d geom.Vec3) geom.Point3 {
	const eps = 1e-4
	offset := n.ToVec3().Mul(eps)
	if n.Dot(d) < 0 {
		offset = offset.Negate()
	}
	return p.Add(offset)
}

func spawnVisibilityTester(from geom.Point3, fromN geom.Normal, to geom.Point3, time float32) VisibilityTester {
	d := to.SubPoint(from)
	return VisibilityTester{P0: offsetRayOrigin(from, fromN, d), P1: to, Time: time}
}

// Ray builds the shadow ray between the tester's two points, with TMax
// just short of 1 so the endpoint itself doesn't self-intersect.
func (v VisibilityTester) Ray() geom.Ray {
	d := v.P1.SubPoint(v.P0)
	r := geom.NewRayAt(v.P0, d, v.Time)
	r.TMax = 1 - 1e-3
	return r
}

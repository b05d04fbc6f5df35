// Package shape implements the analytic and mesh-based geometric primitives
// that can be intersected by a ray: sphere, cylinder, disk and triangle
// mesh. Each Shape owns an object-to-world Transform (and its inverse) and
// reports intersections in world space via SurfaceInteraction.
package shape

import (
	"math"

	"tracer/pkg/geom"
)

// SurfaceInteraction describes the local geometry at a ray/shape
// intersection point: point, normal, distance, plus the differential
// geometry a path tracer additionally needs: UV parameterization,
// partial derivatives for tangent-space shading and bump mapping, and
// a back-pointer to the shape and material that produced it.
type SurfaceInteraction struct {
	P        geom.Point3
	N        geom.Normal
	UV       geom.Point2
	Dpdu     geom.Vec3
	Dpdv     geom.Vec3
	Dndu     geom.Normal
	Dndv     geom.Normal
	Wo       geom.Vec3 // outgoing direction, -ray.Direction, in world space
	Time     float32

	// Shading holds the (possibly bump-mapped) shading frame, which may
	// differ from the geometric frame above.
	Shading struct {
		N    geom.Normal
		Dpdu geom.Vec3
		Dpdv geom.Vec3
	}

	Shape    Shape
	Primitive interface{} // set by pkg/scene to the owning Primitive; avoids an import cycle
}

// SetShadingGeometry initializes the shading frame to the geometric one;
// materials that bump-map perturb it afterward.
func (si *SurfaceInteraction) SetShadingGeometry(n geom.Normal, dpdu, dpdv geom.Vec3, orientationIsAuthoritative bool) {
	si.Shading.N = n
	si.Shading.Dpdu = dpdu
	si.Shading.Dpdv = dpdv
	if orientationIsAuthoritative {
		si.N = si.N.FaceForward(si.Shading.N.ToVec3())
	} else {
		si.Shading.N = si.Shading.N.FaceForward(si.N.ToVec3())
	}
}

// SpawnRay offsets the interaction's point by a fixed 1e-4 along the
// geometric normal, on the side d points to, to escape self-intersection
// without the full error-bound machinery of a production tracer.
func (si *SurfaceInteraction) SpawnRay(d geom.Vec3) geom.Ray {
	const epsScale = 1e-4
	n := si.N.ToVec3()
	off := n.Mul(epsScale)
	if n.Dot(d) < 0 {
		off = off.Negate()
	}
	return geom.NewRay(si.P.Add(off), d)
}

// Shape is implemented by every intersectable primitive. Intersect returns
// ok=false when the ray misses; on a hit it also updates ray.TMax so later
// tests in the same traversal can reject farther candidates early.
type Shape interface {
	WorldBound() geom.Bounds3
	Intersect(ray *geom.Ray) (SurfaceInteraction, bool)
	IntersectP(ray geom.Ray) bool
	Area() float32

	// Sample draws a point on the shape's surface uniformly by area, for
	// use as an area light. u is a pair of canonical random numbers.
	Sample(u geom.Point2) (SurfaceInteraction, float32)

	// SampleFrom draws a point on the shape visible from ref, using a
	// solid-angle-aware strategy when the shape supports one (sphere does;
	// the default falls back to area sampling).
	SampleFrom(ref geom.Point3, u geom.Point2) (SurfaceInteraction, float32)

	// PdfFrom returns the solid-angle sampling density of SampleFrom for a
	// given reference point and sampled direction wi.
	PdfFrom(ref geom.Point3, wi geom.Vec3) float32

	ReverseOrientation() bool
}

// baseShape factors the fields and area-sampling fallback every concrete
// shape shares.
type baseShape struct {
	ObjectToWorld, WorldToObject geom.Transform
	ReverseOrient                bool
	TransformSwapsHandedness     bool
}

func newBaseShape(o2w geom.Transform, reverseOrientation bool) baseShape {
	return baseShape{
		ObjectToWorld:            o2w,
		WorldToObject:            o2w.Inverse(),
		ReverseOrient:            reverseOrientation,
		TransformSwapsHandedness: o2w.SwapsHandedness(),
	}
}

func (b baseShape) ReverseOrientation() bool { return b.ReverseOrient != b.TransformSwapsHandedness }

// pdfFromAreaSample converts a uniform-area sample's density (1/Area) into
// a solid-angle density as seen from ref, used by shapes (disk, triangle)
// that do not special-case a cone-of-directions sampling strategy.
func pdfFromAreaSample(si SurfaceInteraction, ref geom.Point3, areaPdf float32) float32 {
	wi := si.P.SubPoint(ref)
	distSqr := wi.LengthSqr()
	if distSqr == 0 {
		return 0
	}
	wi = wi.Mul(1 / float32(math.Sqrt(float64(distSqr))))
	cos := si.N.ToVec3().AbsDot(wi)
	if cos == 0 {
		return 0
	}
	return areaPdf * distSqr / cos
}

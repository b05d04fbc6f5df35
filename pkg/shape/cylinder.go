package shape

import (
	"math"

	"tracer/pkg/geom"
)

// Cylinder is an open cylindrical shell of the given radius, extending
// along object-space z from ZMin to ZMax, swept through PhiMax radians.
type Cylinder struct {
	baseShape
	Radius     float32
	ZMin, ZMax float32
	PhiMax     float32
}

func NewCylinder(o2w geom.Transform, reverseOrientation bool, radius, zMin, zMax, phiMaxDeg float32) *Cylinder {
	if zMin > zMax {
		zMin, zMax = zMax, zMin
	}
	return &Cylinder{
		baseShape: newBaseShape(o2w, reverseOrientation),
		Radius:    radius,
		ZMin:      zMin,
		ZMax:      zMax,
		PhiMax:    radDeg(phiMaxDeg),
	}
}

func (c *Cylinder) WorldBound() geom.Bounds3 {
	b := geom.Bounds3{
		Min: geom.NewPoint3(-c.Radius, -c.Radius, c.ZMin),
		Max: geom.NewPoint3(c.Radius, c.Radius, c.ZMax),
	}
	return c.ObjectToWorld.TransformBounds(b)
}

func (c *Cylinder) Area() float32 { return (c.ZMax - c.ZMin) * c.Radius * c.PhiMax }

func (c *Cylinder) hitObjectSpace(ray geom.Ray) (t float32, pHit geom.Point3, phi float32, ok bool) {
	ox, oy := float64(ray.Origin.X), float64(ray.Origin.Y)
	dx, dy := float64(ray.Direction.X), float64(ray.Direction.Y)
	r := float64(c.Radius)

	a := dx*dx + dy*dy
	b := 2 * (dx*ox + dy*oy)
	cc := ox*ox + oy*oy - r*r
	t0, t1, hasRoot := solveQuadratic(a, b, cc)
	if !hasRoot {
		return 0, geom.Point3{}, 0, false
	}
	if t1 < 0 || t0 > float64(ray.TMax) {
		return 0, geom.Point3{}, 0, false
	}
	tShape := t0
	if tShape < 0 {
		tShape = t1
		if tShape > float64(ray.TMax) {
			return 0, geom.Point3{}, 0, false
		}
	}

	for {
		pHit = ray.At(float32(tShape))
		hitRad := float32(math.Sqrt(float64(pHit.X*pHit.X + pHit.Y*pHit.Y)))
		pHit.X *= c.Radius / hitRad
		pHit.Y *= c.Radius / hitRad
		phiHit := float32(math.Atan2(float64(pHit.Y), float64(pHit.X)))
		if phiHit < 0 {
			phiHit += 2 * math.Pi
		}
		if pHit.Z >= c.ZMin && pHit.Z <= c.ZMax && phiHit <= c.PhiMax {
			return float32(tShape), pHit, phiHit, true
		}
		if tShape == t1 {
			return 0, geom.Point3{}, 0, false
		}
		tShape = t1
		if tShape > float64(ray.TMax) {
			return 0, geom.Point3{}, 0, false
		}
	}
}

func (c *Cylinder) Intersect(ray *geom.Ray) (SurfaceInteraction, bool) {
	objRay := c.WorldToObject.Ray(*ray)
	t, pHit, phi, ok := c.hitObjectSpace(objRay)
	if !ok {
		return SurfaceInteraction{}, false
	}

	u := phi / c.PhiMax
	v := (pHit.Z - c.ZMin) / (c.ZMax - c.ZMin)

	dpdu := geom.NewVec3(-c.PhiMax*pHit.Y, c.PhiMax*pHit.X, 0)
	dpdv := geom.NewVec3(0, 0, c.ZMax-c.ZMin)

	n := geom.NewNormal(pHit.X, pHit.Y, 0).Normalize()
	worldN := c.ObjectToWorld.Normal(n).Normalize()
	if c.ReverseOrientation() {
		worldN = worldN.Negate()
	}

	ray.TMax = t
	si := SurfaceInteraction{
		P:    c.ObjectToWorld.Point(pHit),
		N:    worldN,
		UV:   geom.Point2{X: u, Y: v},
		Dpdu: c.ObjectToWorld.Vector(dpdu),
		Dpdv: c.ObjectToWorld.Vector(dpdv),
		Wo:   ray.Direction.Negate(),
		Time: ray.Time,
		Shape: c,
	}
	si.SetShadingGeometry(si.N, si.Dpdu, si.Dpdv, true)
	return si, true
}

func (c *Cylinder) IntersectP(ray geom.Ray) bool {
	objRay := c.WorldToObject.Ray(ray)
	_, _, _, ok := c.hitObjectSpace(objRay)
	return ok
}

func (c *Cylinder) Sample(u geom.Point2) (SurfaceInteraction, float32) {
	z := c.ZMin + u.X*(c.ZMax-c.ZMin)
	phi := u.Y * c.PhiMax
	pObj := geom.NewPoint3(c.Radius*float32(math.Cos(float64(phi))), c.Radius*float32(math.Sin(float64(phi))), z)
	n := geom.NewNormal(pObj.X, pObj.Y, 0).Normalize()
	worldN := c.ObjectToWorld.Normal(n).Normalize()
	if c.ReverseOrientation() {
		worldN = worldN.Negate()
	}
	si := SurfaceInteraction{P: c.ObjectToWorld.Point(pObj), N: worldN, Shape: c}
	si.SetShadingGeometry(worldN, geom.Vec3{}, geom.Vec3{}, true)
	return si, 1 / c.Area()
}

func (c *Cylinder) SampleFrom(ref geom.Point3, u geom.Point2) (SurfaceInteraction, float32) {
	si, areaPdf := c.Sample(u)
	return si, pdfFromAreaSample(si, ref, areaPdf)
}

func (c *Cylinder) PdfFrom(ref geom.Point3, wi geom.Vec3) float32 {
	return 1 / c.Area()
}

package shape

import (
	"math"

	"tracer/pkg/geom"
)

// Disk is a flat, circular (or annular) shape lying in the object-space
// plane z=Height, inside radius InnerRadius..Radius and swept PhiMax
// radians.
type Disk struct {
	baseShape
	Height      float32
	Radius      float32
	InnerRadius float32
	PhiMax      float32
}

func NewDisk(o2w geom.Transform, reverseOrientation bool, height, radius, innerRadius, phiMaxDeg float32) *Disk {
	return &Disk{
		baseShape:   newBaseShape(o2w, reverseOrientation),
		Height:      height,
		Radius:      radius,
		InnerRadius: innerRadius,
		PhiMax:      radDeg(phiMaxDeg),
	}
}

func (d *Disk) WorldBound() geom.Bounds3 {
	b := geom.Bounds3{
		Min: geom.NewPoint3(-d.Radius, -d.Radius, d.Height),
		Max: geom.NewPoint3(d.Radius, d.Radius, d.Height),
	}
	return d.ObjectToWorld.TransformBounds(b)
}

func (d *Disk) Area() float32 {
	return d.PhiMax * 0.5 * (d.Radius*d.Radius - d.InnerRadius*d.InnerRadius)
}

func (d *Disk) hitObjectSpace(ray geom.Ray) (t float32, pHit geom.Point3, phi float32, ok bool) {
	if ray.Direction.Z == 0 {
		return 0, geom.Point3{}, 0, false
	}
	tShape := (d.Height - ray.Origin.Z) / ray.Direction.Z
	if tShape <= 0 || tShape > ray.TMax {
		return 0, geom.Point3{}, 0, false
	}
	pHit = ray.At(tShape)
	dist2 := pHit.X*pHit.X + pHit.Y*pHit.Y
	if dist2 > d.Radius*d.Radius || dist2 < d.InnerRadius*d.InnerRadius {
		return 0, geom.Point3{}, 0, false
	}
	phi = float32(math.Atan2(float64(pHit.Y), float64(pHit.X)))
	if phi < 0 {
		phi += 2 * math.Pi
	}
	if phi > d.PhiMax {
		return 0, geom.Point3{}, 0, false
	}
	return tShape, pHit, phi, true
}

func (d *Disk) Intersect(ray *geom.Ray) (SurfaceInteraction, bool) {
	objRay := d.WorldToObject.Ray(*ray)
	t, pHit, phi, ok := d.hitObjectSpace(objRay)
	if !ok {
		return SurfaceInteraction{}, false
	}

	rHit := float32(math.Sqrt(float64(pHit.X*pHit.X + pHit.Y*pHit.Y)))
	u := phi / d.PhiMax
	v := (d.Radius - rHit) / (d.Radius - d.InnerRadius)

	dpdu := geom.NewVec3(-d.PhiMax*pHit.Y, d.PhiMax*pHit.X, 0)
	dpdv := geom.NewVec3(pHit.X, pHit.Y, 0).Mul((d.InnerRadius - d.Radius) / maxf32(rHit, 1e-6))

	n := geom.NewNormal(0, 0, 1)
	worldN := d.ObjectToWorld.Normal(n).Normalize()
	if d.ReverseOrientation() {
		worldN = worldN.Negate()
	}

	ray.TMax = t
	si := SurfaceInteraction{
		P:    d.ObjectToWorld.Point(pHit),
		N:    worldN,
		UV:   geom.Point2{X: u, Y: v},
		Dpdu: d.ObjectToWorld.Vector(dpdu),
		Dpdv: d.ObjectToWorld.Vector(dpdv),
		Wo:   ray.Direction.Negate(),
		Time: ray.Time,
		Shape: d,
	}
	si.SetShadingGeometry(si.N, si.Dpdu, si.Dpdv, true)
	return si, true
}

func (d *Disk) IntersectP(ray geom.Ray) bool {
	objRay := d.WorldToObject.Ray(ray)
	_, _, _, ok := d.hitObjectSpace(objRay)
	return ok
}

func (d *Disk) Sample(u geom.Point2) (SurfaceInteraction, float32) {
	pd := concentricSampleDisk(u)
	pObj := geom.NewPoint3(pd.X*d.Radius, pd.Y*d.Radius, d.Height)
	n := geom.NewNormal(0, 0, 1)
	worldN := d.ObjectToWorld.Normal(n).Normalize()
	if d.ReverseOrientation() {
		worldN = worldN.Negate()
	}
	si := SurfaceInteraction{P: d.ObjectToWorld.Point(pObj), N: worldN, Shape: d}
	si.SetShadingGeometry(worldN, geom.Vec3{}, geom.Vec3{}, true)
	return si, 1 / d.Area()
}

func (d *Disk) SampleFrom(ref geom.Point3, u geom.Point2) (SurfaceInteraction, float32) {
	si, areaPdf := d.Sample(u)
	return si, pdfFromAreaSample(si, ref, areaPdf)
}

func (d *Disk) PdfFrom(ref geom.Point3, wi geom.Vec3) float32 {
	return 1 / d.Area()
}

// concentricSampleDisk is Shirley & Chiu's mapping from a unit square to a
// unit disk, avoiding the distortion of naive polar sampling.
func concentricSampleDisk(u geom.Point2) geom.Point2 {
	ox := 2*u.X - 1
	oy := 2*u.Y - 1
	if ox == 0 && oy == 0 {
		return geom.Point2{}
	}
	var theta, r float32
	if math.Abs(float64(ox)) > math.Abs(float64(oy)) {
		r = ox
		theta = (math.Pi / 4) * (oy / ox)
	} else {
		r = oy
		theta = (math.Pi / 2) - (math.Pi/4)*(ox/oy)
	}
	return geom.Point2{X: r * float32(math.Cos(float64(theta))), Y: r * float32(math.Sin(float64(theta)))}
}

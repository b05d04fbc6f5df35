package shape

import (
	"math"

	"tracer/pkg/geom"
)

// Sphere is a full or partial sphere of given radius centered at the
// object-space origin, clipped by zMin/zMax and a maximum phi sweep,
// following the classic analytic quadric parameterization.
type Sphere struct {
	baseShape
	Radius           float32
	ZMin, ZMax       float32
	ThetaMin, ThetaMax float32
	PhiMax           float32
}

func NewSphere(o2w geom.Transform, reverseOrientation bool, radius float32) *Sphere {
	return NewPartialSphere(o2w, reverseOrientation, radius, -radius, radius, 360)
}

func NewPartialSphere(o2w geom.Transform, reverseOrientation bool, radius, zMin, zMax, phiMaxDeg float32) *Sphere {
	zMin = clamp32(zMin, -radius, radius)
	zMax = clamp32(zMax, -radius, radius)
	if zMin > zMax {
		zMin, zMax = zMax, zMin
	}
	return &Sphere{
		baseShape: newBaseShape(o2w, reverseOrientation),
		Radius:    radius,
		ZMin:      zMin,
		ZMax:      zMax,
		ThetaMin:  float32(math.Acos(clamp(float64(zMin/radius), -1, 1))),
		ThetaMax:  float32(math.Acos(clamp(float64(zMax/radius), -1, 1))),
		PhiMax:    radDeg(phiMaxDeg),
	}
}

func radDeg(deg float32) float32 { return clamp32(deg, 0, 360) * math.Pi / 180 }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (s *Sphere) WorldBound() geom.Bounds3 {
	b := geom.Bounds3{
		Min: geom.NewPoint3(-s.Radius, -s.Radius, s.ZMin),
		Max: geom.NewPoint3(s.Radius, s.Radius, s.ZMax),
	}
	return s.ObjectToWorld.TransformBounds(b)
}

func (s *Sphere) Area() float32 { return s.PhiMax * s.Radius * (s.ZMax - s.ZMin) }

// solveQuadratic returns the two roots of at^2+bt+c=0 in increasing order,
// or ok=false if the discriminant is negative.
func solveQuadratic(a, b, c float64) (t0, t1 float64, ok bool) {
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	rootDisc := math.Sqrt(disc)
	var q float64
	if b < 0 {
		q = -0.5 * (b - rootDisc)
	} else {
		q = -0.5 * (b + rootDisc)
	}
	t0, t1 = q/a, c/q
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}

// hitObjectSpace intersects an object-space ray and, on success, returns
// the hit parameter t, object-space point, and phi/theta used to build the
// surface interaction.
func (s *Sphere) hitObjectSpace(ray geom.Ray) (t float32, p geom.Point3, phi float32, ok bool) {
	ox, oy, oz := float64(ray.Origin.X), float64(ray.Origin.Y), float64(ray.Origin.Z)
	dx, dy, dz := float64(ray.Direction.X), float64(ray.Direction.Y), float64(ray.Direction.Z)
	r := float64(s.Radius)

	a := dx*dx + dy*dy + dz*dz
	b := 2 * (dx*ox + dy*oy + dz*oz)
	c := ox*ox + oy*oy + oz*oz - r*r

	t0, t1, hasRoot := solveQuadratic(a, b, c)
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
		pHit := ray.At(float32(tShape))
		if pHit.X == 0 && pHit.Y == 0 {
			pHit.X = 1e-5 * s.Radius
		}
		phiHit := float32(math.Atan2(float64(pHit.Y), float64(pHit.X)))
		if phiHit < 0 {
			phiHit += 2 * math.Pi
		}
		zOK := (s.ZMin <= -s.Radius || pHit.Z >= s.ZMin) && (s.ZMax >= s.Radius || pHit.Z <= s.ZMax)
		if zOK && phiHit <= s.PhiMax {
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

func (s *Sphere) Intersect(ray *geom.Ray) (SurfaceInteraction, bool) {
	objRay := s.WorldToObject.Ray(*ray)
	t, pHit, phi, ok := s.hitObjectSpace(objRay)
	if !ok {
		return SurfaceInteraction{}, false
	}

	theta := float32(math.Acos(clamp(float64(pHit.Z/s.Radius), -1, 1)))
	u := phi / s.PhiMax
	v := (theta - s.ThetaMin) / (s.ThetaMax - s.ThetaMin)

	zRadius := float32(math.Sqrt(float64(pHit.X*pHit.X + pHit.Y*pHit.Y)))
	var dpdu, dpdv geom.Vec3
	if zRadius > 0 {
		invZRadius := 1 / zRadius
		cosPhi, sinPhi := pHit.X*invZRadius, pHit.Y*invZRadius
		dpdu = geom.NewVec3(-s.PhiMax*pHit.Y, s.PhiMax*pHit.X, 0)
		dpdv = geom.NewVec3(pHit.Z*cosPhi, pHit.Z*sinPhi, -s.Radius*float32(math.Sin(float64(theta)))).Mul(s.ThetaMax - s.ThetaMin)
	} else {
		dpdu = geom.NewVec3(1, 0, 0)
		dpdv = geom.NewVec3(0, 1, 0)
	}

	n := geom.NewNormal(pHit.X, pHit.Y, pHit.Z).Normalize()
	worldP := s.ObjectToWorld.Point(pHit)
	worldN := s.ObjectToWorld.Normal(n).Normalize()
	if s.ReverseOrientation() {
		worldN = worldN.Negate()
	}

	ray.TMax = t
	si := SurfaceInteraction{
		P:    worldP,
		N:    worldN,
		UV:   geom.Point2{X: u, Y: v},
		Dpdu: s.ObjectToWorld.Vector(dpdu),
		Dpdv: s.ObjectToWorld.Vector(dpdv),
		Wo:   ray.Direction.Negate(),
		Time: ray.Time,
		Shape: s,
	}
	si.SetShadingGeometry(si.N, si.Dpdu, si.Dpdv, true)
	return si, true
}

func (s *Sphere) IntersectP(ray geom.Ray) bool {
	objRay := s.WorldToObject.Ray(ray)
	_, _, _, ok := s.hitObjectSpace(objRay)
	return ok
}

func (s *Sphere) Sample(u geom.Point2) (SurfaceInteraction, float32) {
	pObj := geom.NewPoint3(0, 0, 0).Add(uniformSampleSphere(u).Mul(s.Radius))
	n := geom.NewNormal(pObj.X, pObj.Y, pObj.Z).Normalize()
	worldP := s.ObjectToWorld.Point(pObj)
	worldN := s.ObjectToWorld.Normal(n).Normalize()
	if s.ReverseOrientation() {
		worldN = worldN.Negate()
	}
	si := SurfaceInteraction{P: worldP, N: worldN, Shape: s}
	si.SetShadingGeometry(worldN, geom.Vec3{}, geom.Vec3{}, true)
	return si, 1 / s.Area()
}

// SampleFrom uses the classic cone-sampling strategy (PBRT §3.10): when
// the reference point is outside the sphere, sample uniformly over the
// subtended cone of directions rather than over the sphere's area, which
// drastically reduces variance for small, distant spheres.
func (s *Sphere) SampleFrom(ref geom.Point3, u geom.Point2) (SurfaceInteraction, float32) {
	center := s.ObjectToWorld.Point(geom.NewPoint3(0, 0, 0))
	distSqrC := center.SubPoint(ref).LengthSqr()
	radius := s.Radius
	if distSqrC <= radius*radius*1.00001 {
		// ref is inside (or on) the sphere: fall back to area sampling.
		si, pdf := s.Sample(u)
		wi := si.P.SubPoint(ref)
		distSqr := wi.LengthSqr()
		if distSqr == 0 {
			return si, 0
		}
		return si, pdfFromAreaSample(si, ref, pdf)
	}

	dc := float32(math.Sqrt(float64(distSqrC)))
	invDc := 1 / dc
	wc := center.SubPoint(ref).Mul(invDc)
	wcX, wcY := geom.CoordinateSystem(wc)

	sinThetaMax2 := radius * radius / distSqrC
	cosThetaMax := float32(math.Sqrt(float64(maxf32(0, 1-sinThetaMax2))))
	cosTheta := (1-u.X)*1 + u.X*cosThetaMax
	sinTheta2 := 1 - cosTheta*cosTheta
	if sinThetaMax2 < 0.00068523 { // ~sin^2(1.5 deg), matches PBRT's small-angle fallback threshold
		sinTheta2 = sinThetaMax2 * u.X
		cosTheta = float32(math.Sqrt(float64(1 - sinTheta2)))
	}

	cosAlpha := sinTheta2*invDc*float32(math.Sqrt(float64(maxf32(0, 1/sinThetaMax2-1)))) + cosTheta*float32(math.Sqrt(float64(maxf32(0, 1-sinTheta2/sinThetaMax2))))
	sinAlpha := float32(math.Sqrt(float64(maxf32(0, 1-cosAlpha*cosAlpha))))
	phi := u.Y * 2 * math.Pi

	nWorld := wc.Mul(-cosAlpha).Add(wcX.Mul(sinAlpha * float32(math.Cos(float64(phi))))).Add(wcY.Mul(sinAlpha * float32(math.Sin(float64(phi)))))
	pWorld := center.Add(nWorld.Mul(radius))

	si := SurfaceInteraction{P: pWorld, N: geom.NewNormal(nWorld.X, nWorld.Y, nWorld.Z), Shape: s}
	si.SetShadingGeometry(si.N, geom.Vec3{}, geom.Vec3{}, true)

	pdf := 1 / (2 * math.Pi * float32(1-cosThetaMax))
	return si, pdf
}

func (s *Sphere) PdfFrom(ref geom.Point3, wi geom.Vec3) float32 {
	center := s.ObjectToWorld.Point(geom.NewPoint3(0, 0, 0))
	distSqrC := center.SubPoint(ref).LengthSqr()
	radius := s.Radius
	if distSqrC <= radius*radius*1.00001 {
		return 0 // caller should fall back to the solid-angle estimator built from area pdf + intersection
	}
	sinThetaMax2 := radius * radius / distSqrC
	cosThetaMax := float32(math.Sqrt(float64(maxf32(0, 1-sinThetaMax2))))
	return uniformConePdf(cosThetaMax)
}

func uniformConePdf(cosThetaMax float32) float32 {
	return 1 / (2 * math.Pi * (1 - cosThetaMax))
}

func uniformSampleSphere(u geom.Point2) geom.Vec3 {
	z := 1 - 2*u.X
	r := float32(math.Sqrt(float64(maxf32(0, 1-z*z))))
	phi := 2 * math.Pi * u.Y
	return geom.NewVec3(r*float32(math.Cos(float64(phi))), r*float32(math.Sin(float64(phi))), z)
}

func maxf32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

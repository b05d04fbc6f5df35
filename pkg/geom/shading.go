package geom

import "math"

// The functions below operate on vectors already expressed in a local
// shading frame where Z is the shading normal, used throughout
// pkg/bsdf.

func CosTheta(w Vec3) float32    { return w.Z }
func AbsCosTheta(w Vec3) float32 { return float32(math.Abs(float64(w.Z))) }

func Cos2Theta(w Vec3) float32 { return w.Z * w.Z }

func Sin2Theta(w Vec3) float32 {
	s := 1 - Cos2Theta(w)
	if s < 0 {
		return 0
	}
	return s
}

func SinTheta(w Vec3) float32 { return float32(math.Sqrt(float64(Sin2Theta(w)))) }

func TanTheta(w Vec3) float32 { return SinTheta(w) / CosTheta(w) }

func Tan2Theta(w Vec3) float32 { return Sin2Theta(w) / Cos2Theta(w) }

func CosPhi(w Vec3) float32 {
	st := SinTheta(w)
	if st == 0 {
		return 1
	}
	return clampf(w.X/st, -1, 1)
}

func SinPhi(w Vec3) float32 {
	st := SinTheta(w)
	if st == 0 {
		return 0
	}
	return clampf(w.Y/st, -1, 1)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SameHemisphere reports whether two local-frame vectors lie in the same
// hemisphere about the shading normal (z axis).
func SameHemisphere(a, b Vec3) bool {
	return a.Z*b.Z > 0
}

// Reflect computes the mirror-reflection of wo about n (both unit).
func Reflect(wo, n Vec3) Vec3 {
	return n.Mul(2 * wo.Dot(n)).Sub(wo)
}

// Refract computes the refraction of wi through a surface with normal n
// and relative index of refraction eta = etaI/etaT, returning false on
// total internal reflection.
func Refract(wi Vec3, n Normal, eta float32) (Vec3, bool) {
	cosThetaI := n.Dot(wi)
	sin2ThetaI := float32(0)
	if s := 1 - cosThetaI*cosThetaI; s > 0 {
		sin2ThetaI = s
	}
	sin2ThetaT := eta * eta * sin2ThetaI
	if sin2ThetaT >= 1 {
		return Vec3{}, false
	}
	cosThetaT := float32(math.Sqrt(float64(1 - sin2ThetaT)))
	wt := wi.Negate().Mul(eta).Add(n.ToVec3().Mul(eta*cosThetaI - cosThetaT))
	return wt, true
}

package texture

import (
	"math"

	"tracer/pkg/shape"
)

// perlinPermutation is a fixed permutation table (the classic Perlin
// reference values) used to hash lattice coordinates into gradient
// indices without needing per-texture random state.
var perlinPermutation = [512]int{}

func init() {
	base := [256]int{
		151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
		140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
		247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
		57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
		74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
		60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
		65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
		200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
		52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
		207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
		119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
		129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
		218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
		81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
		184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
		222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
	}
	for i := 0; i < 256; i++ {
		perlinPermutation[i] = base[i]
		perlinPermutation[i+256] = base[i]
	}
}

func fade(t float32) float32 { return t * t * t * (t*(t*6-15) + 10) }

func lerpf(t, a, b float32) float32 { return a + t*(b-a) }

func grad(hash int, x, y, z float32) float32 {
	h := hash & 15
	var u float32
	if h < 8 {
		u = x
	} else {
		u = y
	}
	var v float32
	if h < 4 {
		v = y
	} else if h == 12 || h == 14 {
		v = x
	} else {
		v = z
	}
	r := float32(0)
	if h&1 == 0 {
		r += u
	} else {
		r -= u
	}
	if h&2 == 0 {
		r += v
	} else {
		r -= v
	}
	return r
}

// perlinNoise3D is Ken Perlin's 2002 reference "improved noise"
// algorithm, returning a value in roughly [-1, 1].
func perlinNoise3D(x, y, z float32) float32 {
	X := int(math.Floor(float64(x))) & 255
	Y := int(math.Floor(float64(y))) & 255
	Z := int(math.Floor(float64(z))) & 255
	x -= float32(math.Floor(float64(x)))
	y -= float32(math.Floor(float64(y)))
	z -= float32(math.Floor(float64(z)))
	u, v, w := fade(x), fade(y), fade(z)

	p := perlinPermutation[:]
	A := p[X] + Y
	AA := p[A] + Z
	AB := p[A+1] + Z
	B := p[X+1] + Y
	BA := p[B] + Z
	BB := p[B+1] + Z

	return lerpf(w,
		lerpf(v,
			lerpf(u, grad(p[AA], x, y, z), grad(p[BA], x-1, y, z)),
			lerpf(u, grad(p[AB], x, y-1, z), grad(p[BB], x-1, y-1, z))),
		lerpf(v,
			lerpf(u, grad(p[AA+1], x, y, z-1), grad(p[BA+1], x-1, y, z-1)),
			lerpf(u, grad(p[AB+1], x, y-1, z-1), grad(p[BB+1], x-1, y-1, z-1))))
}

// FBmFloat is a fractal-Brownian-motion float texture, summing octaves of
// Perlin noise at doubling frequency and halving amplitude; used for
// procedural bump/displacement and as a roughness variation source.
type FBmFloat struct {
	Octaves int
	Omega   float32 // amplitude falloff per octave
	Scale   float32 // spatial frequency of the base octave
}

func NewFBmFloat(octaves int, omega, scale float32) *FBmFloat {
	return &FBmFloat{Octaves: octaves, Omega: omega, Scale: scale}
}

func (f *FBmFloat) Evaluate(si shape.SurfaceInteraction) float32 {
	p := si.P.ToVec3().Mul(f.Scale)
	sum := float32(0)
	amplitude := float32(1)
	freq := float32(1)
	maxAmp := float32(0)
	for i := 0; i < f.Octaves; i++ {
		sum += amplitude * perlinNoise3D(p.X*freq, p.Y*freq, p.Z*freq)
		maxAmp += amplitude
		amplitude *= f.Omega
		freq *= 2
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

package sampler

import "tracer/pkg/geom"

// ZeroTwoSequence draws samples from a (0,2)-sequence: the radical
// inverse in base 2 for the first dimension, paired with a Sobol-style
// second dimension, each scrambled by a hash of the pixel coordinates
// and the sampler's seed so that different pixels (and different
// clones) are decorrelated while remaining fully deterministic given
// (pixel, seed, sample index, dimension) - no source in the retrieved
// corpus implements a low-discrepancy sequence, so this is a direct,
// from-scratch translation of the textbook (0,2)-sequence / digit-
// scrambling construction.
type ZeroTwoSequence struct {
	spp       int // rounded up to a power of two
	seed      int64
	pixel     geom.Point2i
	sampleIdx int
	dimension int
}

func NewZeroTwoSequence(spp int, seed int64) *ZeroTwoSequence {
	return &ZeroTwoSequence{spp: roundUpPow2(spp), seed: seed}
}

func roundUpPow2(n int) int {
	if n < 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func (s *ZeroTwoSequence) SamplesPerPixel() int { return s.spp }
func (s *ZeroTwoSequence) RoundCount(n int) int { return roundUpPow2(n) }

func (s *ZeroTwoSequence) StartPixel(p geom.Point2i) {
	s.pixel = p
	s.sampleIdx = 0
	s.dimension = 0
}

func (s *ZeroTwoSequence) StartNextSample() bool {
	s.sampleIdx++
	s.dimension = 0
	return s.sampleIdx < s.spp
}

func (s *ZeroTwoSequence) Request1DArray(n int) {}
func (s *ZeroTwoSequence) Request2DArray(n int) {}

func (s *ZeroTwoSequence) Clone(seed int64) Sampler {
	return &ZeroTwoSequence{spp: s.spp, seed: seed}
}

func (s *ZeroTwoSequence) pixelHash() int64 {
	h := s.seed
	h = h*1000003 + int64(s.pixel.X)
	h = h*1000003 + int64(s.pixel.Y)
	return h
}

func (s *ZeroTwoSequence) Get1D() float32 {
	scramble := hash64(s.pixelHash(), int64(s.dimension))
	s.dimension++
	return radicalInverseBase2(uint32(s.sampleIdx), uint32(scramble))
}

func (s *ZeroTwoSequence) Get2D() geom.Point2 {
	scrambleX := hash64(s.pixelHash(), int64(s.dimension))
	scrambleY := hash64(s.pixelHash(), int64(s.dimension)+0x9e3779b9)
	s.dimension++
	x := radicalInverseBase2(uint32(s.sampleIdx), uint32(scrambleX))
	y := sobolBase2(uint32(s.sampleIdx), uint32(scrambleY))
	return geom.Point2{X: x, Y: y}
}

func (s *ZeroTwoSequence) GetCameraSample(p geom.Point2i) CameraSample {
	film := s.Get2D()
	lens := s.Get2D()
	return CameraSample{
		PFilm: geom.Point2{X: float32(p.X) + film.X, Y: float32(p.Y) + film.Y},
		PLens: lens,
		Time:  s.Get1D(),
	}
}

// hash64 mixes two 64-bit values with a splitmix-style finalizer.
func hash64(a, b int64) int64 {
	x := uint64(a) ^ (uint64(b) + 0x9e3779b97f4a7c15 + (uint64(a) << 6) + (uint64(a) >> 2))
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x = x ^ (x >> 31)
	return int64(x)
}

// radicalInverseBase2 reverses the bits of n (the van der Corput
// sequence in base 2), XOR-scrambled by scramble before reversal - the
// standard digit-scrambling trick that decorrelates streams sharing the
// same index while preserving the sequence's low-discrepancy property.
func radicalInverseBase2(n, scramble uint32) float32 {
	n ^= scramble
	n = (n << 16) | (n >> 16)
	n = ((n & 0x55555555) << 1) | ((n & 0xAAAAAAAA) >> 1)
	n = ((n & 0x33333333) << 2) | ((n & 0xCCCCCCCC) >> 2)
	n = ((n & 0x0F0F0F0F) << 4) | ((n & 0xF0F0F0F0) >> 4)
	n = ((n & 0x00FF00FF) << 8) | ((n & 0xFF00FF00) >> 8)
	return float32(n) * 2.3283064365386963e-10 // / 2^32
}

// sobolBase2 generates the second dimension of a (0,2)-sequence using
// the base-2 Sobol generator matrix for the second dimension (direction
// numbers start at the top bit, each next one is d ^ d>>1), scrambled
// the same way.
func sobolBase2(n, scramble uint32) float32 {
	var v uint32
	for d := uint32(1 << 31); n != 0; n >>= 1 {
		if n&1 != 0 {
			v ^= d
		}
		d ^= d >> 1
	}
	v ^= scramble
	return float32(v) * 2.3283064365386963e-10
}

func grayCode(n uint32) uint32 { return n ^ (n >> 1) }

// Package sampler generates the per-pixel sample streams the camera and
// integrators consume: film/lens positions, and arbitrary 1D/2D random
// numbers requested by BSDF and light sampling along a path.
package sampler

import "tracer/pkg/geom"

// CameraSample is the film and lens position, plus time, for a single
// sample of a pixel.
type CameraSample struct {
	PFilm geom.Point2
	PLens geom.Point2
	Time  float32
}

// Sampler is implemented by every sample generator. Samplers are not
// safe for concurrent use; each worker clones its own.
type Sampler interface {
	// StartPixel resets the sampler's internal state to begin the
	// sample sequence for pixel p.
	StartPixel(p geom.Point2i)

	// Get1D and Get2D return the next dimension of the current sample.
	Get1D() float32
	Get2D() geom.Point2

	// GetCameraSample builds the next camera sample for pixel p,
	// always consuming a 2D dimension for the film offset, a second 2D
	// dimension for the lens position and a 1D dimension for the time.
	GetCameraSample(p geom.Point2i) CameraSample

	// StartNextSample advances to the next of the spp samples for the
	// current pixel, returning false once all have been consumed.
	StartNextSample() bool

	// Request1DArray and Request2DArray request n-wide sample arrays in
	// the style of pbrt's array samples. The interface has no accessor
	// for such arrays, ZeroTwoSequence ignores the requests, and the
	// shipped integrators never call them.
	Request1DArray(n int)
	Request2DArray(n int)

	// Clone returns a fresh, independently-seeded copy of the sampler,
	// for a worker that needs its own stream.
	Clone(seed int64) Sampler

	// RoundCount rounds n up to whatever sample count this sampler
	// requires (ZeroTwoSequence rounds to the next power of two).
	RoundCount(n int) int

	SamplesPerPixel() int
}

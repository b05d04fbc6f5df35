// Package spectrum implements the RGB radiance/reflectance triple used
// throughout the renderer in place of a full spectral representation.
package spectrum

import "math"

// Spectrum is a linear RGB triple. Values are unbounded above zero;
// negative values are a bug (see HasNaN/IsBlack guards at call sites).
type Spectrum struct {
	R, G, B float32
}

var (
	Black = Spectrum{0, 0, 0}
	White = Spectrum{1, 1, 1}
)

func RGB(r, g, b float32) Spectrum { return Spectrum{R: r, G: g, B: b} }
func Gray(v float32) Spectrum      { return Spectrum{R: v, G: v, B: v} }

func (s Spectrum) Add(o Spectrum) Spectrum {
	return Spectrum{s.R + o.R, s.G + o.G, s.B + o.B}
}

func (s Spectrum) Sub(o Spectrum) Spectrum {
	return Spectrum{s.R - o.R, s.G - o.G, s.B - o.B}
}

func (s Spectrum) Mul(t float32) Spectrum {
	return Spectrum{s.R * t, s.G * t, s.B * t}
}

func (s Spectrum) MulSpectrum(o Spectrum) Spectrum {
	return Spectrum{s.R * o.R, s.G * o.G, s.B * o.B}
}

func (s Spectrum) Div(t float32) Spectrum {
	return s.Mul(1.0 / t)
}

func (s Spectrum) DivSpectrum(o Spectrum) Spectrum {
	r, g, b := s.R, s.G, s.B
	if o.R != 0 {
		r /= o.R
	}
	if o.G != 0 {
		g /= o.G
	}
	if o.B != 0 {
		b /= o.B
	}
	return Spectrum{r, g, b}
}

func (s Spectrum) IsBlack() bool {
	return s.R == 0 && s.G == 0 && s.B == 0
}

func (s Spectrum) HasNaN() bool {
	return math.IsNaN(float64(s.R)) || math.IsNaN(float64(s.G)) || math.IsNaN(float64(s.B))
}

// MaxComponent returns the largest of the three channels, used by the
// path integrator's Russian roulette throughput test.
func (s Spectrum) MaxComponent() float32 {
	m := s.R
	if s.G > m {
		m = s.G
	}
	if s.B > m {
		m = s.B
	}
	return m
}

// Luminance approximates perceived brightness via the Rec. 709 weights.
func (s Spectrum) Luminance() float32 {
	return 0.2126*s.R + 0.7152*s.G + 0.0722*s.B
}

func (s Spectrum) Clamp(lo, hi float32) Spectrum {
	return Spectrum{clamp(s.R, lo, hi), clamp(s.G, lo, hi), clamp(s.B, lo, hi)}
}

func (s Spectrum) Sqrt() Spectrum {
	return Spectrum{
		float32(math.Sqrt(float64(s.R))),
		float32(math.Sqrt(float64(s.G))),
		float32(math.Sqrt(float64(s.B))),
	}
}

func (s Spectrum) Lerp(o Spectrum, t float32) Spectrum {
	return s.Mul(1 - t).Add(o.Mul(t))
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ToSRGB gamma-encodes one linear channel value into [0,1] using the
// standard sRGB transfer function.
func ToSRGB(v float32) float32 {
	v = clamp(v, 0, 1)
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*float32(math.Pow(float64(v), 1.0/2.4)) - 0.055
}

// FromSRGB linearizes one gamma-encoded channel value in [0,1].
func FromSRGB(v float32) float32 {
	v = clamp(v, 0, 1)
	if v <= 0.04045 {
		return v / 12.92
	}
	return float32(math.Pow(float64((v+0.055)/1.055), 2.4))
}

// ToSRGB8 encodes the spectrum to 8-bit sRGB bytes, as the final step
// before handing pixels to the external image encoder.
func (s Spectrum) ToSRGB8() [3]byte {
	toByte := func(v float32) byte {
		enc := ToSRGB(v)
		b := int(enc*255.0 + 0.5)
		if b < 0 {
			b = 0
		}
		if b > 255 {
			b = 255
		}
		return byte(b)
	}
	return [3]byte{toByte(s.R), toByte(s.G), toByte(s.B)}
}

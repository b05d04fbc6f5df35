// Package texture implements the Texture[T] evaluators that materials
// sample at a shading point: constants, procedural patterns, and
// image-backed textures filtered through a MIP pyramid.
package texture

import (
	"tracer/pkg/shape"
	"tracer/pkg/spectrum"
)

// FloatTexture and SpectrumTexture are evaluated at a surface
// interaction's UV/shading point, split into separate channels rather
// than one monolithic material-parameter blob.
type FloatTexture interface {
	Evaluate(si shape.SurfaceInteraction) float32
}

type SpectrumTexture interface {
	Evaluate(si shape.SurfaceInteraction) spectrum.Spectrum
}

type ConstantFloat float32

func (c ConstantFloat) Evaluate(shape.SurfaceInteraction) float32 { return float32(c) }

type ConstantSpectrum spectrum.Spectrum

func (c ConstantSpectrum) Evaluate(shape.SurfaceInteraction) spectrum.Spectrum {
	return spectrum.Spectrum(c)
}

// ScaleFloat and ScaleSpectrum multiply two textures together, used for
// e.g. modulating a roughness map by a scalar knob.
type ScaleFloat struct {
	Tex, Scale FloatTexture
}

func (s ScaleFloat) Evaluate(si shape.SurfaceInteraction) float32 {
	return s.Tex.Evaluate(si) * s.Scale.Evaluate(si)
}

type ScaleSpectrum struct {
	Tex   SpectrumTexture
	Scale FloatTexture
}

func (s ScaleSpectrum) Evaluate(si shape.SurfaceInteraction) spectrum.Spectrum {
	return s.Tex.Evaluate(si).Mul(s.Scale.Evaluate(si))
}

// MixSpectrum linearly interpolates between two spectrum textures
// according to a scalar amount texture.
type MixSpectrum struct {
	Tex1, Tex2 SpectrumTexture
	Amount     FloatTexture
}

func (m MixSpectrum) Evaluate(si shape.SurfaceInteraction) spectrum.Spectrum {
	t := m.Amount.Evaluate(si)
	return m.Tex1.Evaluate(si).Lerp(m.Tex2.Evaluate(si), t)
}

// UVTexture renders UV coordinates directly as a color, useful for
// debugging mesh parameterization.
type UVTexture struct{}

func (UVTexture) Evaluate(si shape.SurfaceInteraction) spectrum.Spectrum {
	return spectrum.RGB(si.UV.X-floor32(si.UV.X), si.UV.Y-floor32(si.UV.Y), 0)
}

func floor32(v float32) float32 {
	i := float32(int(v))
	if v < 0 && v != i {
		i--
	}
	return i
}

// CheckerboardSpectrum alternates between two textures on a 2D UV grid,
// scaled by UScale/VScale squares per unit UV.
type CheckerboardSpectrum struct {
	Tex1, Tex2     SpectrumTexture
	UScale, VScale float32
}

func (c CheckerboardSpectrum) Evaluate(si shape.SurfaceInteraction) spectrum.Spectrum {
	u := int(floor32(si.UV.X * c.UScale))
	v := int(floor32(si.UV.Y * c.VScale))
	if (u+v)%2 == 0 {
		return c.Tex1.Evaluate(si)
	}
	return c.Tex2.Evaluate(si)
}

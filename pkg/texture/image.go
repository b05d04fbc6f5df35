package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"tracer/pkg/geom"
	"tracer/pkg/shape"
	"tracer/pkg/spectrum"
)

// ImageSpectrum samples a MIP-mapped image at a surface interaction's UV
// (scaled by Su/Sv and offset by Du/Dv). Every lookup uses a zero filter
// width, so it reads the finest MIP level bilinearly; no footprint is
// estimated from ray differentials.
type ImageSpectrum struct {
	Mip            *MIPMap
	Su, Sv, Du, Dv float32
	Gamma          bool
}

// NewImageSpectrumFromReader decodes a PNG/JPEG image and builds a
// MIP-mapped texture from it, un-gamma-correcting 8-bit sRGB samples into
// linear light first since all shading in this renderer happens in
// linear space.
func NewImageSpectrumFromReader(r io.Reader, wrap WrapMode) (*ImageSpectrum, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode texture: %w", err)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	texels := make([]spectrum.Spectrum, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r16, g16, b16, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			texels[y*w+x] = spectrum.RGB(
				spectrum.FromSRGB(float32(r16)/65535),
				spectrum.FromSRGB(float32(g16)/65535),
				spectrum.FromSRGB(float32(b16)/65535),
			)
		}
	}
	return &ImageSpectrum{Mip: NewMIPMap(w, h, texels, wrap), Su: 1, Sv: 1}, nil
}

func (i *ImageSpectrum) Evaluate(si shape.SurfaceInteraction) spectrum.Spectrum {
	st := geom.Point2{X: si.UV.X*i.Su + i.Du, Y: si.UV.Y*i.Sv + i.Dv}
	width := float32(0)
	return i.Mip.Lookup(st, width)
}

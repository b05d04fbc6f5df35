package light

import "tracer/pkg/geom"

// Distribution1D supports sampling and evaluating the pdf of a
// piecewise-constant function given by a list of nonnegative weights
// (the standard inversion-by-CDF construction).
type Distribution1D struct {
	func_ []float32
	cdf   []float32
	funcInt float32
}

func NewDistribution1D(f []float32) *Distribution1D {
	n := len(f)
	d := &Distribution1D{func_: append([]float32(nil), f...), cdf: make([]float32, n+1)}
	for i := 1; i <= n; i++ {
		d.cdf[i] = d.cdf[i-1] + f[i-1]/float32(n)
	}
	d.funcInt = d.cdf[n]
	if d.funcInt == 0 {
		for i := 1; i <= n; i++ {
			d.cdf[i] = float32(i) / float32(n)
		}
	} else {
		for i := 1; i <= n; i++ {
			d.cdf[i] /= d.funcInt
		}
	}
	return d
}

// SampleContinuous inverts the cdf via binary search, returning the
// sampled value in [0,1), its pdf, and the discrete bucket it fell in.
func (d *Distribution1D) SampleContinuous(u float32) (v float32, pdf float32, offset int) {
	offset = findInterval(d.cdf, u)
	du := u - d.cdf[offset]
	if d.cdf[offset+1]-d.cdf[offset] > 0 {
		du /= d.cdf[offset+1] - d.cdf[offset]
	}
	if d.funcInt > 0 {
		pdf = d.func_[offset] / d.funcInt
	}
	v = (float32(offset) + du) / float32(len(d.func_))
	return
}

func findInterval(cdf []float32, u float32) int {
	lo, hi := 0, len(cdf)-2
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if cdf[mid] <= u {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// Distribution2D samples a 2D piecewise-constant function (an
// environment map's per-pixel luminance) by first picking a row
// weighted by its marginal integral, then a column within that row.
type Distribution2D struct {
	conditional []*Distribution1D
	marginal    *Distribution1D
	width, height int
}

func NewDistribution2D(data []float32, width, height int) *Distribution2D {
	d := &Distribution2D{width: width, height: height}
	d.conditional = make([]*Distribution1D, height)
	marginalFunc := make([]float32, height)
	for y := 0; y < height; y++ {
		row := data[y*width : (y+1)*width]
		d.conditional[y] = NewDistribution1D(row)
		marginalFunc[y] = d.conditional[y].funcInt
	}
	d.marginal = NewDistribution1D(marginalFunc)
	return d
}

// SampleContinuous returns a (u,v) sample and its combined pdf (pdf(u|v)*pdf(v)).
func (d *Distribution2D) SampleContinuous(u geom.Point2) (uv geom.Point2, pdf float32) {
	v, pdfV, row := d.marginal.SampleContinuous(u.Y)
	uu, pdfU, _ := d.conditional[row].SampleContinuous(u.X)
	return geom.Point2{X: uu, Y: v}, pdfU * pdfV
}

func (d *Distribution2D) Pdf(uv geom.Point2) float32 {
	iu := clampInt(int(uv.X*float32(d.width)), 0, d.width-1)
	iv := clampInt(int(uv.Y*float32(d.height)), 0, d.height-1)
	if d.marginal.funcInt == 0 {
		return 0
	}
	return d.conditional[iv].func_[iu] / d.marginal.funcInt
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

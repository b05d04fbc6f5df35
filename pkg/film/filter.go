package film

import "math"

// filterTableWidth is the side length of the precomputed filter(|x|,|y|)
// lookup table; filters are evaluated once per cell at construction and
// looked up in O(1) thereafter during pixel reconstruction.
const filterTableWidth = 16

// Filter is implemented by every pixel reconstruction filter. Radius is
// the half-width of the filter's support in x and y (can differ).
type Filter interface {
	Evaluate(x, y float32) float32
	Radius() (float32, float32)
}

func buildTable(f Filter) [filterTableWidth][filterTableWidth]float32 {
	rx, ry := f.Radius()
	var table [filterTableWidth][filterTableWidth]float32
	for y := 0; y < filterTableWidth; y++ {
		fy := (float32(y) + 0.5) / filterTableWidth * ry
		for x := 0; x < filterTableWidth; x++ {
			fx := (float32(x) + 0.5) / filterTableWidth * rx
			table[y][x] = f.Evaluate(fx, fy)
		}
	}
	return table
}

// BoxFilter weights every sample within its support equally.
type BoxFilter struct{ RadiusX, RadiusY float32 }

func NewBoxFilter() *BoxFilter { return &BoxFilter{RadiusX: 0.5, RadiusY: 0.5} }

func (f *BoxFilter) Evaluate(x, y float32) float32   { return 1 }
func (f *BoxFilter) Radius() (float32, float32)      { return f.RadiusX, f.RadiusY }

// TriangleFilter is the product of two tent functions, max(0, r-|d|) per
// axis: it falls off linearly from RadiusX*RadiusY at the center to 0 at
// the support edge.
type TriangleFilter struct{ RadiusX, RadiusY float32 }

func NewTriangleFilter(rx, ry float32) *TriangleFilter { return &TriangleFilter{rx, ry} }

func (f *TriangleFilter) Evaluate(x, y float32) float32 {
	return maxf(0, f.RadiusX-absf(x)) * maxf(0, f.RadiusY-absf(y))
}
func (f *TriangleFilter) Radius() (float32, float32) { return f.RadiusX, f.RadiusY }

// GaussianFilter applies a Gaussian falloff truncated to the support
// and offset so the edge of the support reaches zero rather than a
// residual tail.
type GaussianFilter struct {
	RadiusX, RadiusY float32
	Alpha            float32
}

func NewGaussianFilter(rx, ry, alpha float32) *GaussianFilter {
	return &GaussianFilter{RadiusX: rx, RadiusY: ry, Alpha: alpha}
}

func gaussian(d, alpha, expv float32) float32 {
	v := float32(math.Exp(float64(-alpha*d*d))) - expv
	if v < 0 {
		return 0
	}
	return v
}

func (f *GaussianFilter) Evaluate(x, y float32) float32 {
	ex := float32(math.Exp(float64(-f.Alpha * f.RadiusX * f.RadiusX)))
	ey := float32(math.Exp(float64(-f.Alpha * f.RadiusY * f.RadiusY)))
	return gaussian(x, f.Alpha, ex) * gaussian(y, f.Alpha, ey)
}
func (f *GaussianFilter) Radius() (float32, float32) { return f.RadiusX, f.RadiusY }

// MitchellFilter implements the Mitchell-Netravali cubic reconstruction
// filter, with the B and C ringing/blur parameters supplied by the caller.
type MitchellFilter struct {
	RadiusX, RadiusY float32
	B, C             float32
}

func NewMitchellFilter(rx, ry, b, c float32) *MitchellFilter {
	return &MitchellFilter{RadiusX: rx, RadiusY: ry, B: b, C: c}
}

func (f *MitchellFilter) mitchell1D(x float32) float32 {
	x = absf(2 * x)
	b, c := f.B, f.C
	if x > 1 {
		return ((-b-6*c)*x*x*x + (6*b+30*c)*x*x + (-12*b-48*c)*x + (8*b+24*c)) / 6
	}
	return ((12-9*b-6*c)*x*x*x + (-18+12*b+6*c)*x*x + (6 - 2*b)) / 6
}

func (f *MitchellFilter) Evaluate(x, y float32) float32 {
	return f.mitchell1D(x/f.RadiusX) * f.mitchell1D(y/f.RadiusY)
}
func (f *MitchellFilter) Radius() (float32, float32) { return f.RadiusX, f.RadiusY }

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

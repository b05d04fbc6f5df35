package texture

import (
	"math"

	"tracer/pkg/geom"
	"tracer/pkg/spectrum"
)

// WrapMode controls how MIPMap.Texel resolves out-of-bounds texel
// coordinates.
type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapClamp
	WrapBlack
)

// level is one entry of the MIP pyramid: a width x height grid of
// spectrum texels, row-major.
type level struct {
	width, height int
	texels        []spectrum.Spectrum
}

func (l *level) at(s, t int) spectrum.Spectrum { return l.texels[t*l.width+s] }
func (l *level) set(s, t int, v spectrum.Spectrum) { l.texels[t*l.width+s] = v }

// MIPMap is a power-of-two image pyramid supporting trilinear lookups at
// an arbitrary filter width, specialized to Spectrum texels since this
// renderer has no other texel type that needs filtering.
type MIPMap struct {
	wrapMode WrapMode
	pyramid  []*level
	black    spectrum.Spectrum
}

// NewMIPMap builds a full pyramid from a row-major image of the given
// resolution, resampling to the next power-of-two resolution first (via
// a four-tap Lanczos filter) when the source isn't already one.
func NewMIPMap(width, height int, texels []spectrum.Spectrum, wrapMode WrapMode) *MIPMap {
	w, h := width, height
	data := texels
	if !isPowerOf2(w) || !isPowerOf2(h) {
		w2, h2 := roundUpPow2(w), roundUpPow2(h)
		data = resample(texels, width, height, w2, h2, wrapMode)
		w, h = w2, h2
	}

	m := &MIPMap{wrapMode: wrapMode}
	base := &level{width: w, height: h, texels: data}
	m.pyramid = append(m.pyramid, base)

	for maxDim(m.pyramid[len(m.pyramid)-1].width, m.pyramid[len(m.pyramid)-1].height) > 1 {
		prev := m.pyramid[len(m.pyramid)-1]
		sRes := maxInt(1, prev.width/2)
		tRes := maxInt(1, prev.height/2)
		next := &level{width: sRes, height: tRes, texels: make([]spectrum.Spectrum, sRes*tRes)}
		for t := 0; t < tRes; t++ {
			for s := 0; s < sRes; s++ {
				sum := m.texel(len(m.pyramid)-1, 2*s, 2*t).
					Add(m.texel(len(m.pyramid)-1, 2*s+1, 2*t)).
					Add(m.texel(len(m.pyramid)-1, 2*s, 2*t+1)).
					Add(m.texel(len(m.pyramid)-1, 2*s+1, 2*t+1))
				next.set(s, t, sum.Mul(0.25))
			}
		}
		m.pyramid = append(m.pyramid, next)
	}
	return m
}

func (m *MIPMap) Width() int  { return m.pyramid[0].width }
func (m *MIPMap) Height() int { return m.pyramid[0].height }
func (m *MIPMap) Levels() int { return len(m.pyramid) }

// BaseTexel exposes the finest level's texel at (s,t), for callers
// (e.g. the infinite-area light) that need to build a luminance
// distribution over the raw environment map rather than filtered
// samples.
func (m *MIPMap) BaseTexel(s, t int) spectrum.Spectrum { return m.texel(0, s, t) }

func (m *MIPMap) texel(lvl, s, t int) spectrum.Spectrum {
	l := m.pyramid[lvl]
	switch m.wrapMode {
	case WrapRepeat:
		s, t = modulo(s, l.width), modulo(t, l.height)
	case WrapClamp:
		s = clampInt(s, 0, l.width-1)
		t = clampInt(t, 0, l.height-1)
	case WrapBlack:
		if s < 0 || s >= l.width || t < 0 || t >= l.height {
			return m.black
		}
	}
	return l.at(s, t)
}

// Lookup performs trilinear filtering: it picks the continuous MIP level
// implied by the footprint width (in UV units) and bilinearly
// interpolates within (and, unless at an extreme, between) the two
// bracketing levels.
func (m *MIPMap) Lookup(st geom.Point2, width float32) spectrum.Spectrum {
	nLevels := float32(m.Levels())
	lvl := nLevels - 1 + float32(math.Log2(float64(maxf32(width, 1e-8))))
	if lvl < 0 {
		return m.triangle(0, st)
	}
	if lvl >= nLevels-1 {
		return m.texel(m.Levels()-1, 0, 0)
	}
	iLevel := int(math.Floor(float64(lvl)))
	delta := lvl - float32(iLevel)
	return m.triangle(iLevel, st).Lerp(m.triangle(iLevel+1, st), delta)
}

func (m *MIPMap) triangle(lvl int, st geom.Point2) spectrum.Spectrum {
	lvl = clampInt(lvl, 0, m.Levels()-1)
	l := m.pyramid[lvl]
	s := st.X*float32(l.width) - 0.5
	t := st.Y*float32(l.height) - 0.5
	s0, t0 := int(math.Floor(float64(s))), int(math.Floor(float64(t)))
	ds, dt := s-float32(s0), t-float32(t0)

	return m.texel(lvl, s0, t0).Mul((1 - ds) * (1 - dt)).
		Add(m.texel(lvl, s0, t0+1).Mul((1 - ds) * dt)).
		Add(m.texel(lvl, s0+1, t0).Mul(ds * (1 - dt))).
		Add(m.texel(lvl, s0+1, t0+1).Mul(ds * dt))
}

type resampleWeight struct {
	firstTexel int
	weights    [4]float32
}

func resampleWeights(oldRes, newRes int) []resampleWeight {
	wt := make([]resampleWeight, newRes)
	const filterWidth = 2.0
	for i := 0; i < newRes; i++ {
		center := (float32(i) + 0.5) * (float32(oldRes) / float32(newRes))
		firstTexel := math.Floor(float64(center-filterWidth) + 0.5)
		var w [4]float32
		sum := float32(0)
		for j := 0; j < 4; j++ {
			pos := float32(firstTexel) + float32(j) + 0.5
			w[j] = lanczos((pos - center) / filterWidth)
			sum += w[j]
		}
		invSum := float32(1) / sum
		for j := range w {
			w[j] *= invSum
		}
		wt[i] = resampleWeight{firstTexel: int(firstTexel), weights: w}
	}
	return wt
}

// lanczos is the windowed sinc reconstruction filter (tau=2) used both to
// resample non-power-of-two images and, conceptually, as the kernel the
// rest of the renderer's Mitchell-Netravali pixel filter generalizes.
func lanczos(f float32) float32 {
	const tau = 2.0
	x := absf32(f)
	if x < 1e-5 {
		return 1
	}
	if x > 1 {
		return 0
	}
	x *= math.Pi
	s := float32(math.Sin(float64(x*tau))) / (x * tau)
	sinc := float32(math.Sin(float64(x))) / x
	return s * sinc
}

// resample rebuilds texels at a power-of-two resolution using separable
// Lanczos resampling in s then t.
func resample(texels []spectrum.Spectrum, oldW, oldH, newW, newH int, wrap WrapMode) []spectrum.Spectrum {
	sWeights := resampleWeights(oldW, newW)
	sPass := make([]spectrum.Spectrum, newW*oldH)
	for t := 0; t < oldH; t++ {
		for s := 0; s < newW; s++ {
			acc := spectrum.Black
			for j := 0; j < 4; j++ {
				origS := sWeights[s].firstTexel + j
				origS = wrapIndex(origS, oldW, wrap)
				if origS >= 0 && origS < oldW {
					acc = acc.Add(texels[t*oldW+origS].Mul(sWeights[s].weights[j]))
				}
			}
			sPass[t*newW+s] = acc
		}
	}

	tWeights := resampleWeights(oldH, newH)
	out := make([]spectrum.Spectrum, newW*newH)
	for s := 0; s < newW; s++ {
		work := make([]spectrum.Spectrum, newH)
		for t := 0; t < newH; t++ {
			acc := spectrum.Black
			for j := 0; j < 4; j++ {
				origT := tWeights[t].firstTexel + j
				origT = wrapIndex(origT, oldH, wrap)
				if origT >= 0 && origT < oldH {
					acc = acc.Add(sPass[origT*newW+s].Mul(tWeights[t].weights[j]))
				}
			}
			work[t] = acc
		}
		for t := 0; t < newH; t++ {
			out[t*newW+s] = work[t].Clamp(0, 1)
		}
	}
	return out
}

func wrapIndex(i, res int, wrap WrapMode) int {
	switch wrap {
	case WrapRepeat:
		return modulo(i, res)
	case WrapClamp:
		return clampInt(i, 0, res-1)
	default:
		return i
	}
}

func isPowerOf2(v int) bool { return v > 0 && v&(v-1) == 0 }

func roundUpPow2(v int) int {
	p := 1
	for p < v {
		p <<= 1
	}
	return p
}

func maxDim(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
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

func modulo(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func maxf32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

package scene

import (
	"tracer/pkg/geom"
	"tracer/pkg/spectrum"
	"tracer/pkg/texture"
)

// ParamSet is a typed parameter bag, one named slice per value kind,
// matching the shape an external scene-file parser populates
// (directive "Material \"matte\" \"color Kd\" [.5 .5 .5]" becomes one
// FindOneSpectrum("Kd", ...) lookup). The text-format parser itself is
// out of scope; this is only the in-memory contract it fills in.
type ParamSet struct {
	bools     map[string][]bool
	ints      map[string][]int
	floats    map[string][]float32
	strings   map[string][]string
	spectra   map[string][]spectrum.Spectrum
	point3s   map[string][]geom.Point3
	vector3s  map[string][]geom.Vec3
	textures  map[string]string
}

func NewParamSet() *ParamSet {
	return &ParamSet{
		bools: map[string][]bool{}, ints: map[string][]int{}, floats: map[string][]float32{},
		strings: map[string][]string{}, spectra: map[string][]spectrum.Spectrum{},
		point3s: map[string][]geom.Point3{}, vector3s: map[string][]geom.Vec3{},
		textures: map[string]string{},
	}
}

func (p *ParamSet) AddBool(name string, v []bool)               { p.bools[name] = v }
func (p *ParamSet) AddInt(name string, v []int)                  { p.ints[name] = v }
func (p *ParamSet) AddFloat(name string, v []float32)            { p.floats[name] = v }
func (p *ParamSet) AddString(name string, v []string)            { p.strings[name] = v }
func (p *ParamSet) AddSpectrum(name string, v []spectrum.Spectrum) { p.spectra[name] = v }
func (p *ParamSet) AddPoint3(name string, v []geom.Point3)       { p.point3s[name] = v }
func (p *ParamSet) AddVector3(name string, v []geom.Vec3)        { p.vector3s[name] = v }
func (p *ParamSet) AddTexture(name, texName string)              { p.textures[name] = texName }

func (p *ParamSet) FindOneBool(name string, d bool) bool {
	if v, ok := p.bools[name]; ok && len(v) > 0 {
		return v[0]
	}
	return d
}

func (p *ParamSet) FindOneInt(name string, d int) int {
	if v, ok := p.ints[name]; ok && len(v) > 0 {
		return v[0]
	}
	return d
}

func (p *ParamSet) FindOneFloat(name string, d float32) float32 {
	if v, ok := p.floats[name]; ok && len(v) > 0 {
		return v[0]
	}
	return d
}

func (p *ParamSet) FindOneString(name, d string) string {
	if v, ok := p.strings[name]; ok && len(v) > 0 {
		return v[0]
	}
	return d
}

func (p *ParamSet) FindOneSpectrum(name string, d spectrum.Spectrum) spectrum.Spectrum {
	if v, ok := p.spectra[name]; ok && len(v) > 0 {
		return v[0]
	}
	return d
}

func (p *ParamSet) FindOnePoint3(name string, d geom.Point3) geom.Point3 {
	if v, ok := p.point3s[name]; ok && len(v) > 0 {
		return v[0]
	}
	return d
}

func (p *ParamSet) FindOneVector3(name string, d geom.Vec3) geom.Vec3 {
	if v, ok := p.vector3s[name]; ok && len(v) > 0 {
		return v[0]
	}
	return d
}

func (p *ParamSet) FindTexture(name string) (string, bool) {
	v, ok := p.textures[name]
	return v, ok
}

// TextureParams resolves a parameter from two paramsets: the
// shape/geometry-level params (Shape's own attribute block) override
// the enclosing material-level params, and a named texture reference
// wins over a literal constant.
type TextureParams struct {
	GeomParams, MaterialParams *ParamSet
	FloatTextures              map[string]texture.FloatTexture
	SpectrumTextures           map[string]texture.SpectrumTexture
}

func NewTextureParams(gp, mp *ParamSet, ft map[string]texture.FloatTexture, st map[string]texture.SpectrumTexture) *TextureParams {
	return &TextureParams{GeomParams: gp, MaterialParams: mp, FloatTextures: ft, SpectrumTextures: st}
}

func (tp *TextureParams) FindString(n string) string {
	matStr := tp.MaterialParams.FindOneString(n, "")
	return tp.GeomParams.FindOneString(n, matStr)
}

func (tp *TextureParams) FindBool(n string, d bool) bool {
	d = tp.MaterialParams.FindOneBool(n, d)
	return tp.GeomParams.FindOneBool(n, d)
}

func (tp *TextureParams) FindFloat(n string, d float32) float32 {
	d = tp.MaterialParams.FindOneFloat(n, d)
	return tp.GeomParams.FindOneFloat(n, d)
}

func (tp *TextureParams) GetSpectrumTexture(n string, d spectrum.Spectrum) texture.SpectrumTexture {
	name, ok := tp.GeomParams.FindTexture(n)
	if !ok {
		name, ok = tp.MaterialParams.FindTexture(n)
	}
	if ok {
		if tex, found := tp.SpectrumTextures[name]; found {
			return tex
		}
	}
	d = tp.MaterialParams.FindOneSpectrum(n, d)
	d = tp.GeomParams.FindOneSpectrum(n, d)
	return texture.ConstantSpectrum(d)
}

func (tp *TextureParams) GetFloatTexture(n string, d float32) texture.FloatTexture {
	name, ok := tp.GeomParams.FindTexture(n)
	if !ok {
		name, ok = tp.MaterialParams.FindTexture(n)
	}
	if ok {
		if tex, found := tp.FloatTextures[name]; found {
			return tex
		}
	}
	d = tp.MaterialParams.FindOneFloat(n, d)
	d = tp.GeomParams.FindOneFloat(n, d)
	return texture.ConstantFloat(d)
}

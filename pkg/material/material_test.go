package material

import (
	"testing"

	"tracer/pkg/bsdf"
	"tracer/pkg/geom"
	"tracer/pkg/shape"
	"tracer/pkg/spectrum"
	"tracer/pkg/texture"
)

func flatSI() *shape.SurfaceInteraction {
	si := &shape.SurfaceInteraction{
		P: geom.NewPoint3(0, 0, 0),
		N: geom.NewNormal(0, 0, 1),
	}
	si.SetShadingGeometry(si.N, geom.NewVec3(1, 0, 0), geom.NewVec3(0, 1, 0), false)
	return si
}

func TestMatteProducesLambertianLobe(t *testing.T) {
	m := NewMatte(texture.ConstantSpectrum(spectrum.RGB(0.5, 0.5, 0.5)), nil, nil)
	b := m.ComputeScatteringFunctions(flatSI())
	if b.NumComponents(bsdf.All) != 1 {
		t.Fatalf("expected exactly one lobe, got %d", b.NumComponents(bsdf.All))
	}
}

func TestMatteBlackReflectanceHasNoLobes(t *testing.T) {
	m := NewMatte(texture.ConstantSpectrum(spectrum.Black), nil, nil)
	b := m.ComputeScatteringFunctions(flatSI())
	if b.NumComponents(bsdf.All) != 0 {
		t.Fatalf("expected no lobes for black reflectance, got %d", b.NumComponents(bsdf.All))
	}
}

func TestMatteUsesOrenNayarWhenSigmaNonzero(t *testing.T) {
	m := NewMatte(texture.ConstantSpectrum(spectrum.White), texture.ConstantFloat(20), nil)
	b := m.ComputeScatteringFunctions(flatSI())
	if b.NumComponents(bsdf.All) != 1 {
		t.Fatalf("expected one lobe, got %d", b.NumComponents(bsdf.All))
	}
}

func TestMirrorAddsSpecularLobe(t *testing.T) {
	m := NewMirror(texture.ConstantSpectrum(spectrum.White), nil)
	b := m.ComputeScatteringFunctions(flatSI())
	if b.NumComponents(bsdf.All&^(bsdf.Diffuse|bsdf.Glossy)) != 1 {
		t.Fatalf("expected one specular lobe, got %d", b.NumComponents(bsdf.All&^(bsdf.Diffuse|bsdf.Glossy)))
	}
}

func TestGlassSmoothUsesFresnelSpecularLobe(t *testing.T) {
	g := NewGlass(
		texture.ConstantSpectrum(spectrum.White),
		texture.ConstantSpectrum(spectrum.White),
		texture.ConstantFloat(1.5), nil, nil, true, nil)
	b := g.ComputeScatteringFunctions(flatSI())
	if b.NumComponents(bsdf.All) != 1 {
		t.Fatalf("expected exactly one combined specular lobe, got %d", b.NumComponents(bsdf.All))
	}
}

func TestGlassRoughUsesMicrofacetLobe(t *testing.T) {
	g := NewGlass(
		texture.ConstantSpectrum(spectrum.White),
		texture.ConstantSpectrum(spectrum.Black),
		texture.ConstantFloat(1.5),
		texture.ConstantFloat(0.2), texture.ConstantFloat(0.2), true, nil)
	b := g.ComputeScatteringFunctions(flatSI())
	if b.NumComponents(bsdf.All&^(bsdf.Diffuse|bsdf.Specular)) != 1 {
		t.Fatalf("expected one glossy lobe, got %d", b.NumComponents(bsdf.All&^(bsdf.Diffuse|bsdf.Specular)))
	}
}

func TestMetalProducesGlossyLobe(t *testing.T) {
	m := NewMetal(CopperEta, CopperK, texture.ConstantFloat(0.05), true, nil)
	b := m.ComputeScatteringFunctions(flatSI())
	if b.NumComponents(bsdf.All&^(bsdf.Diffuse|bsdf.Specular)) != 1 {
		t.Fatalf("expected one glossy lobe, got %d", b.NumComponents(bsdf.All&^(bsdf.Diffuse|bsdf.Specular)))
	}
}

func TestPlasticCombinesDiffuseAndGlossy(t *testing.T) {
	p := NewPlastic(
		texture.ConstantSpectrum(spectrum.RGB(0.3, 0.3, 0.3)),
		texture.ConstantSpectrum(spectrum.RGB(0.2, 0.2, 0.2)),
		texture.ConstantFloat(0.1), true, nil)
	b := p.ComputeScatteringFunctions(flatSI())
	if b.NumComponents(bsdf.All) != 2 {
		t.Fatalf("expected diffuse+glossy lobes, got %d", b.NumComponents(bsdf.All))
	}
}

func TestTranslucentSplitsReflectAndTransmit(t *testing.T) {
	tr := NewTranslucent(
		texture.ConstantSpectrum(spectrum.RGB(0.5, 0.5, 0.5)),
		texture.ConstantSpectrum(spectrum.Black),
		nil,
		texture.ConstantSpectrum(spectrum.Gray(0.5)),
		texture.ConstantSpectrum(spectrum.Gray(0.5)),
		true, nil)
	b := tr.ComputeScatteringFunctions(flatSI())
	if b.NumComponents(bsdf.All&^bsdf.Transmission) != 1 || b.NumComponents(bsdf.All&^bsdf.Reflection) != 1 {
		t.Fatalf("expected one reflection and one transmission lobe, got refl=%d trans=%d",
			b.NumComponents(bsdf.All&^bsdf.Transmission), b.NumComponents(bsdf.All&^bsdf.Reflection))
	}
}

func TestDisneyDielectricBlendsDiffuseAndGlossy(t *testing.T) {
	d := NewDisney(
		texture.ConstantSpectrum(spectrum.RGB(0.5, 0.3, 0.3)),
		texture.ConstantFloat(0), texture.ConstantFloat(0.4), texture.ConstantFloat(0.5),
		true, nil)
	b := d.ComputeScatteringFunctions(flatSI())
	if b.NumComponents(bsdf.All) != 2 {
		t.Fatalf("expected diffuse+glossy lobes at metallic=0, got %d", b.NumComponents(bsdf.All))
	}
}

func TestDisneyMetallicDropsDiffuseLobe(t *testing.T) {
	d := NewDisney(
		texture.ConstantSpectrum(spectrum.RGB(0.8, 0.6, 0.2)),
		texture.ConstantFloat(1), texture.ConstantFloat(0.2), texture.ConstantFloat(0.5),
		true, nil)
	b := d.ComputeScatteringFunctions(flatSI())
	if b.NumComponents(bsdf.All&^(bsdf.Glossy|bsdf.Specular)) != 0 {
		t.Fatalf("expected no diffuse lobe at metallic=1, got %d", b.NumComponents(bsdf.All&^(bsdf.Glossy|bsdf.Specular)))
	}
	if b.NumComponents(bsdf.All&^(bsdf.Diffuse|bsdf.Specular)) != 1 {
		t.Fatalf("expected one glossy lobe, got %d", b.NumComponents(bsdf.All&^(bsdf.Diffuse|bsdf.Specular)))
	}
}

type rampFloat struct{}

func (rampFloat) Evaluate(si shape.SurfaceInteraction) float32 {
	return si.UV.X*si.UV.X + si.UV.Y
}

func TestBumpPerturbsShadingNormal(t *testing.T) {
	si := flatSI()
	si.UV = geom.Point2{X: 0.3, Y: 0.4}
	orig := si.Shading.N
	Bump(rampFloat{}, si)
	if si.Shading.N == orig {
		t.Errorf("expected bump mapping to perturb the shading normal")
	}
}

package scene

import (
	"tracer/internal/rendererr"
	"tracer/internal/rlog"
	"tracer/pkg/material"
	"tracer/pkg/spectrum"
)

// MakeMaterial dispatches on a scene-description material name. An
// unrecognized name falls back to matte with a logged warning rather
// than failing the whole scene build.
func MakeMaterial(name string, mp *TextureParams) material.Material {
	switch name {
	case "matte":
		kd := mp.GetSpectrumTexture("Kd", spectrum.Gray(0.5))
		sigma := mp.GetFloatTexture("sigma", 0)
		return material.NewMatte(kd, sigma, nil)
	case "plastic":
		kd := mp.GetSpectrumTexture("Kd", spectrum.Gray(0.25))
		ks := mp.GetSpectrumTexture("Ks", spectrum.Gray(0.25))
		rough := mp.GetFloatTexture("roughness", 0.1)
		remap := mp.FindBool("remaproughness", true)
		return material.NewPlastic(kd, ks, rough, remap, nil)
	case "glass":
		kr := mp.GetSpectrumTexture("Kr", spectrum.White)
		kt := mp.GetSpectrumTexture("Kt", spectrum.White)
		eta := mp.GetFloatTexture("eta", 1.5)
		uRough := mp.GetFloatTexture("uroughness", 0)
		vRough := mp.GetFloatTexture("vroughness", 0)
		remap := mp.FindBool("remaproughness", true)
		return material.NewGlass(kr, kt, eta, uRough, vRough, remap, nil)
	case "mirror":
		kr := mp.GetSpectrumTexture("Kr", spectrum.Gray(0.9))
		return material.NewMirror(kr, nil)
	case "metal":
		eta := mp.MaterialParams.FindOneSpectrum("eta", material.CopperEta)
		k := mp.MaterialParams.FindOneSpectrum("k", material.CopperK)
		rough := mp.GetFloatTexture("roughness", 0.01)
		remap := mp.FindBool("remaproughness", true)
		return material.NewMetal(eta, k, rough, remap, nil)
	case "substrate":
		kd := mp.GetSpectrumTexture("Kd", spectrum.Gray(0.5))
		ks := mp.GetSpectrumTexture("Ks", spectrum.Gray(0.5))
		uRough := mp.GetFloatTexture("uroughness", 0.1)
		vRough := mp.GetFloatTexture("vroughness", 0.1)
		remap := mp.FindBool("remaproughness", true)
		return material.NewSubstrate(kd, ks, uRough, vRough, remap, nil)
	case "translucent":
		kd := mp.GetSpectrumTexture("Kd", spectrum.Gray(0.25))
		ks := mp.GetSpectrumTexture("Ks", spectrum.Gray(0.25))
		rough := mp.GetFloatTexture("roughness", 0.1)
		reflect := mp.GetSpectrumTexture("reflect", spectrum.Gray(0.5))
		transmit := mp.GetSpectrumTexture("transmit", spectrum.Gray(0.5))
		remap := mp.FindBool("remaproughness", true)
		return material.NewTranslucent(kd, ks, rough, reflect, transmit, remap, nil)
	case "uber":
		kd := mp.GetSpectrumTexture("Kd", spectrum.Gray(0.25))
		ks := mp.GetSpectrumTexture("Ks", spectrum.Gray(0.25))
		kr := mp.GetSpectrumTexture("Kr", spectrum.Black)
		kt := mp.GetSpectrumTexture("Kt", spectrum.Black)
		rough := mp.GetFloatTexture("roughness", 0.1)
		eta := mp.GetFloatTexture("eta", 1.5)
		remap := mp.FindBool("remaproughness", true)
		return material.NewUber(kd, ks, kr, kt, rough, eta, remap, nil)
	case "disney":
		color := mp.GetSpectrumTexture("color", spectrum.Gray(0.5))
		metallic := mp.GetFloatTexture("metallic", 0)
		rough := mp.GetFloatTexture("roughness", 0.5)
		specular := mp.GetFloatTexture("specular", 0.5)
		remap := mp.FindBool("remaproughness", true)
		return material.NewDisney(color, metallic, rough, specular, remap, nil)
	default:
		rendererr.Report(rendererr.Config(name, "matte"), rlog.Component("scene"))
		kd := mp.GetSpectrumTexture("Kd", spectrum.Gray(0.5))
		return material.NewMatte(kd, nil, nil)
	}
}

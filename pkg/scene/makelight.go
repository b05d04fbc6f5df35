package scene

import (
	"tracer/internal/rendererr"
	"tracer/internal/rlog"
	"tracer/pkg/geom"
	"tracer/pkg/light"
	"tracer/pkg/spectrum"
	"tracer/pkg/texture"
)

// MakeLight dispatches on a scene-description light name. Area lights
// are not built here: they're attached to a shape at
// primitive-construction time by Builder.AddShape, since a
// DiffuseAreaLight needs the Shape it emits from.
func MakeLight(name string, l2w geom.Transform, worldRadius float32, ps *ParamSet) light.Light {
	switch name {
	case "point":
		i := ps.FindOneSpectrum("I", spectrum.White)
		scale := ps.FindOneFloat("scale", 1)
		p := l2w.Point(ps.FindOnePoint3("from", geom.Point3{}))
		return light.NewPointLight(p, i.Mul(scale))
	case "distant":
		l := ps.FindOneSpectrum("L", spectrum.White)
		scale := ps.FindOneFloat("scale", 1)
		from := ps.FindOnePoint3("from", geom.Point3{})
		to := ps.FindOnePoint3("to", geom.Point3{Z: 1})
		dir := l2w.Vector(to.SubPoint(from)).Normalize()
		return light.NewDistantLight(dir, l.Mul(scale), worldRadius)
	case "infinite":
		l := ps.FindOneSpectrum("L", spectrum.White)
		scale := ps.FindOneFloat("scale", 1)
		var env *texture.MIPMap
		if name, ok := ps.FindTexture("mapname"); ok {
			rendererr.Report(rendererr.IO(name, "constant environment", nil), rlog.Component("scene"))
		}
		env = texture.NewMIPMap(1, 1, []spectrum.Spectrum{l.Mul(scale)}, texture.WrapClamp)
		return light.NewInfiniteAreaLight(env, l2w, worldRadius)
	default:
		rendererr.Report(rendererr.Config(name, "no light (skipped)"), rlog.Component("scene"))
		return nil
	}
}

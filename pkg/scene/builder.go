package scene

import (
	"tracer/pkg/accel"
	"tracer/pkg/camera"
	"tracer/pkg/geom"
	"tracer/pkg/light"
	"tracer/pkg/material"
	"tracer/pkg/shape"
	"tracer/pkg/spectrum"
)

// Builder accumulates primitives and lights the way a scene-description
// parser's WorldBegin/WorldEnd block would, then hands the finished
// lists to NewScene to build the BVH once. Kept deliberately thin: the
// text-format parser that would drive it directive-by-directive is out
// of scope, but this is the API it would target.
type Builder struct {
	Camera camera.Camera
	prims  []accel.Primitive
	lights []light.Light
}

func NewBuilder(cam camera.Camera) *Builder {
	return &Builder{Camera: cam}
}

// AddShape adds shapes sharing a material as geometric primitives. When
// lemit is non-nil each shape additionally emits as its own
// DiffuseAreaLight, since every area light needs the single Shape it
// samples from.
func (b *Builder) AddShape(shapes []shape.Shape, mat material.Material, lemit *spectrum.Spectrum, twoSided bool) {
	for _, s := range shapes {
		var areaLight *light.DiffuseAreaLight
		if lemit != nil {
			areaLight = light.NewDiffuseAreaLight(s, *lemit, twoSided)
			b.lights = append(b.lights, areaLight)
		}
		b.prims = append(b.prims, NewGeometricPrimitive(s, mat, areaLight))
	}
}

// AddInstance adds an already-built primitive again under an additional
// instance transform, without rebuilding its own sub-BVH.
func (b *Builder) AddInstance(p accel.Primitive, primitiveToWorld geom.Transform) {
	b.prims = append(b.prims, NewTransformedPrimitive(p, primitiveToWorld))
}

// AddLight adds a delta or infinite light that is not bound to a shape.
func (b *Builder) AddLight(l light.Light) {
	if l != nil {
		b.lights = append(b.lights, l)
	}
}

// Build assembles the accumulated primitives and lights into a Scene,
// constructing the BVH over everything added so far.
func (b *Builder) Build() *Scene {
	return NewScene(b.Camera, b.lights, b.prims)
}

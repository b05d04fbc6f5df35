// Package scene assembles shapes, materials and lights into a
// renderable Scene: a BVH-accelerated primitive list plus the light
// list an integrator samples.
package scene

import (
	"tracer/pkg/accel"
	"tracer/pkg/geom"
	"tracer/pkg/light"
	"tracer/pkg/material"
	"tracer/pkg/shape"
	"tracer/pkg/spectrum"
)

// GeometricPrimitive binds one shape to its material and, if the shape
// is also an emitter, the diffuse area light wrapping it.
type GeometricPrimitive struct {
	Shape     shape.Shape
	Material  material.Material
	AreaLight *light.DiffuseAreaLight
}

func NewGeometricPrimitive(s shape.Shape, m material.Material, areaLight *light.DiffuseAreaLight) *GeometricPrimitive {
	return &GeometricPrimitive{Shape: s, Material: m, AreaLight: areaLight}
}

func (p *GeometricPrimitive) WorldBound() geom.Bounds3 { return p.Shape.WorldBound() }

func (p *GeometricPrimitive) Intersect(ray *geom.Ray) (shape.SurfaceInteraction, bool) {
	si, hit := p.Shape.Intersect(ray)
	if !hit {
		return si, false
	}
	si.Primitive = p
	return si, true
}

func (p *GeometricPrimitive) IntersectP(ray geom.Ray) bool { return p.Shape.IntersectP(ray) }

// Le returns emitted radiance toward w from a surface interaction on
// this primitive, zero unless the primitive carries an area light.
func (p *GeometricPrimitive) Le(si shape.SurfaceInteraction, w geom.Vec3) spectrum.Spectrum {
	if p.AreaLight == nil {
		return spectrum.Black
	}
	return p.AreaLight.L(si.P, si.N, w)
}

// TransformedPrimitive applies an additional instance transform on top
// of a shared underlying primitive, letting one BVH-accelerated mesh be
// referenced many times with different placements (object instancing).
type TransformedPrimitive struct {
	Primitive      accel.Primitive
	PrimitiveToWorld geom.Transform
}

func NewTransformedPrimitive(p accel.Primitive, primitiveToWorld geom.Transform) *TransformedPrimitive {
	return &TransformedPrimitive{Primitive: p, PrimitiveToWorld: primitiveToWorld}
}

func (t *TransformedPrimitive) WorldBound() geom.Bounds3 {
	return t.PrimitiveToWorld.TransformBounds(t.Primitive.WorldBound())
}

func (t *TransformedPrimitive) Intersect(ray *geom.Ray) (shape.SurfaceInteraction, bool) {
	worldToPrimitive := t.PrimitiveToWorld.Inverse()
	localRay := worldToPrimitive.Ray(*ray)
	localRay.TMax = ray.TMax
	si, hit := t.Primitive.Intersect(&localRay)
	ray.TMax = localRay.TMax
	if !hit {
		return si, false
	}
	si.P = t.PrimitiveToWorld.Point(si.P)
	si.N = t.PrimitiveToWorld.Normal(si.N).Normalize()
	si.Shading.N = t.PrimitiveToWorld.Normal(si.Shading.N).Normalize()
	si.Dpdu = t.PrimitiveToWorld.Vector(si.Dpdu)
	si.Dpdv = t.PrimitiveToWorld.Vector(si.Dpdv)
	si.Shading.Dpdu = t.PrimitiveToWorld.Vector(si.Shading.Dpdu)
	si.Shading.Dpdv = t.PrimitiveToWorld.Vector(si.Shading.Dpdv)
	return si, true
}

func (t *TransformedPrimitive) IntersectP(ray geom.Ray) bool {
	worldToPrimitive := t.PrimitiveToWorld.Inverse()
	localRay := worldToPrimitive.Ray(ray)
	return t.Primitive.IntersectP(localRay)
}

package scene

import (
	"tracer/pkg/accel"
	"tracer/pkg/camera"
	"tracer/pkg/geom"
	"tracer/pkg/light"
	"tracer/pkg/shape"
)

// Scene bundles the BVH-accelerated primitive list, the light list an
// integrator samples for next-event estimation, and the camera that
// generates primary rays. Immutable after Build: safe to share across
// every render worker without synchronization.
type Scene struct {
	Camera camera.Camera
	Lights []light.Light
	bvh    *accel.BVH
	bound  geom.Bounds3
}

func NewScene(cam camera.Camera, lights []light.Light, prims []accel.Primitive) *Scene {
	bvh := accel.Build(prims)
	return &Scene{Camera: cam, Lights: lights, bvh: bvh, bound: bvh.WorldBound()}
}

func (s *Scene) WorldBound() geom.Bounds3 { return s.bound }

// WorldRadius is the radius of the bounding sphere enclosing the whole
// scene, used by distant and infinite lights to spawn rays that are
// guaranteed to exit the scene geometry.
func (s *Scene) WorldRadius() float32 {
	r := s.bound.Diagonal().Length() / 2
	if r == 0 {
		return 1
	}
	return r
}

func (s *Scene) Intersect(ray *geom.Ray) (shape.SurfaceInteraction, bool) {
	return s.bvh.Intersect(ray)
}

func (s *Scene) IntersectP(ray geom.Ray) bool {
	return s.bvh.IntersectP(ray)
}

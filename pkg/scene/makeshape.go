package scene

import (
	"tracer/pkg/geom"
	"tracer/pkg/shape"
)

// MakeShapes dispatches on a scene-description shape name: sphere,
// cylinder, disk and trianglemesh. A triangle mesh expands to one
// Shape per face since the BVH builder operates over individual
// primitives. plymesh is out of scope; unrecognized names yield no
// shapes.
func MakeShapes(name string, o2w geom.Transform, reverseOrientation bool, ps *ParamSet) []shape.Shape {
	switch name {
	case "sphere":
		radius := ps.FindOneFloat("radius", 1)
		zMin := ps.FindOneFloat("zmin", -radius)
		zMax := ps.FindOneFloat("zmax", radius)
		phiMax := ps.FindOneFloat("phimax", 360)
		if zMin <= -radius && zMax >= radius {
			return []shape.Shape{shape.NewSphere(o2w, reverseOrientation, radius)}
		}
		return []shape.Shape{shape.NewPartialSphere(o2w, reverseOrientation, radius, zMin, zMax, phiMax)}
	case "cylinder":
		radius := ps.FindOneFloat("radius", 1)
		zMin := ps.FindOneFloat("zmin", -1)
		zMax := ps.FindOneFloat("zmax", 1)
		phiMax := ps.FindOneFloat("phimax", 360)
		return []shape.Shape{shape.NewCylinder(o2w, reverseOrientation, radius, zMin, zMax, phiMax)}
	case "disk":
		height := ps.FindOneFloat("height", 0)
		radius := ps.FindOneFloat("radius", 1)
		innerRadius := ps.FindOneFloat("innerradius", 0)
		phiMax := ps.FindOneFloat("phimax", 360)
		return []shape.Shape{shape.NewDisk(o2w, reverseOrientation, height, radius, innerRadius, phiMax)}
	case "trianglemesh":
		indices := ps.ints["indices"]
		p := ps.point3s["P"]
		var n []geom.Normal
		for _, v := range ps.vector3s["N"] {
			n = append(n, geom.Normal{X: v.X, Y: v.Y, Z: v.Z})
		}
		var uv []geom.Point2
		if raw, ok := ps.floats["uv"]; ok {
			for i := 0; i+1 < len(raw); i += 2 {
				uv = append(uv, geom.Point2{X: raw[i], Y: raw[i+1]})
			}
		}
		mesh := shape.NewTriangleMesh(o2w, p, n, uv, indices)
		return shape.Triangles(mesh, reverseOrientation)
	default:
		return nil
	}
}

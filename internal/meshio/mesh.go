// Package meshio loads external mesh files into the flat position/normal/uv/
// index arrays shape.NewTriangleMesh expects.
package meshio

import "tracer/pkg/geom"

// Mesh holds one triangle mesh's vertex attributes in object space, ready
// to hand to shape.NewTriangleMesh(o2w, m.P, m.N, m.UV, m.Indices).
type Mesh struct {
	Name    string
	P       []geom.Point3
	N       []geom.Normal
	UV      []geom.Point2
	Indices []int
}

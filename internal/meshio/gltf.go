package meshio

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"tracer/pkg/geom"
)

// LoadGLTF reads a .gltf/.glb document and returns one Mesh per mesh
// primitive, flattened to position/normal/uv/index arrays instead of a
// scene-graph node tree, since scene.Builder instances meshes directly
// rather than walking a node hierarchy.
func LoadGLTF(path string) ([]*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	var meshes []*Mesh
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			m, err := loadPrimitive(doc, gm.Name, pi, prim)
			if err != nil {
				return nil, fmt.Errorf("gltf mesh %d prim %d: %w", mi, pi, err)
			}
			meshes = append(meshes, m)
		}
	}
	if len(meshes) == 0 {
		return nil, fmt.Errorf("no mesh primitives found in %q", path)
	}
	return meshes, nil
}

func loadPrimitive(doc *gltf.Document, meshName string, primIdx int, prim *gltf.Primitive) (*Mesh, error) {
	name := fmt.Sprintf("%s_p%d", meshName, primIdx)
	if meshName == "" {
		name = fmt.Sprintf("prim_%d", primIdx)
	}

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	var uvs [][2]float32
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	m := &Mesh{Name: name}
	for i, p := range positions {
		m.P = append(m.P, geom.Point3{X: p[0], Y: p[1], Z: p[2]})
		if i < len(normals) {
			nv := normals[i]
			m.N = append(m.N, geom.Normal{X: nv[0], Y: nv[1], Z: nv[2]})
		}
		if i < len(uvs) {
			uv := uvs[i]
			m.UV = append(m.UV, geom.Point2{X: uv[0], Y: uv[1]})
		}
	}

	if prim.Indices != nil {
		raw, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
		m.Indices = make([]int, len(raw))
		for i, v := range raw {
			m.Indices[i] = int(v)
		}
	}

	return m, nil
}

package meshio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"tracer/pkg/geom"
)

// LoadOBJ parses a Wavefront .obj file into one Mesh per o/g group,
// fan-triangulating n-gon faces. Vertices are not deduplicated by
// "v/vt/vn" key: each face corner becomes its own P/N/UV entry so
// winged normals and per-corner UVs from distinct faces never alias.
func LoadOBJ(path string) ([]*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %q: %w", path, err)
	}
	defer f.Close()

	var positions []geom.Point3
	var normals []geom.Normal
	var uvs []geom.Point2

	var meshes []*Mesh
	current := &Mesh{Name: "default"}

	flush := func() {
		if len(current.P) > 0 {
			meshes = append(meshes, current)
		}
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)

		switch parts[0] {
		case "v":
			if len(parts) >= 4 {
				x, _ := strconv.ParseFloat(parts[1], 32)
				y, _ := strconv.ParseFloat(parts[2], 32)
				z, _ := strconv.ParseFloat(parts[3], 32)
				positions = append(positions, geom.Point3{X: float32(x), Y: float32(y), Z: float32(z)})
			}
		case "vn":
			if len(parts) >= 4 {
				x, _ := strconv.ParseFloat(parts[1], 32)
				y, _ := strconv.ParseFloat(parts[2], 32)
				z, _ := strconv.ParseFloat(parts[3], 32)
				normals = append(normals, geom.Normal{X: float32(x), Y: float32(y), Z: float32(z)})
			}
		case "vt":
			if len(parts) >= 3 {
				u, _ := strconv.ParseFloat(parts[1], 32)
				v, _ := strconv.ParseFloat(parts[2], 32)
				uvs = append(uvs, geom.Point2{X: float32(u), Y: float32(v)})
			}
		case "f":
			faceIdx := make([]int, 0, len(parts)-1)
			for _, spec := range parts[1:] {
				p, n, uv := parseFaceVertex(spec, positions, normals, uvs)
				idx := len(current.P)
				current.P = append(current.P, p)
				if n != nil {
					current.N = append(current.N, *n)
				}
				if uv != nil {
					current.UV = append(current.UV, *uv)
				}
				faceIdx = append(faceIdx, idx)
			}
			for i := 2; i < len(faceIdx); i++ {
				current.Indices = append(current.Indices, faceIdx[0], faceIdx[i-1], faceIdx[i])
			}
		case "o", "g":
			flush()
			name := "unnamed"
			if len(parts) > 1 {
				name = parts[1]
			}
			current = &Mesh{Name: name}
		}
	}
	flush()

	if len(meshes) == 0 {
		return nil, fmt.Errorf("no mesh data found in %q", path)
	}
	return meshes, scanner.Err()
}

// parseFaceVertex splits a "v/vt/vn" face-corner spec, resolving negative
// (relative) indices the way Wavefront OBJ defines them.
func parseFaceVertex(spec string, positions []geom.Point3, normals []geom.Normal, uvs []geom.Point2) (geom.Point3, *geom.Normal, *geom.Point2) {
	parts := strings.Split(spec, "/")
	var p geom.Point3
	var n *geom.Normal
	var uv *geom.Point2

	resolve := func(s string, count int) (int, bool) {
		if s == "" {
			return 0, false
		}
		idx, _ := strconv.Atoi(s)
		if idx < 0 {
			idx = count + idx + 1
		}
		if idx < 1 || idx > count {
			return 0, false
		}
		return idx - 1, true
	}

	if len(parts) >= 1 {
		if idx, ok := resolve(parts[0], len(positions)); ok {
			p = positions[idx]
		}
	}
	if len(parts) >= 2 {
		if idx, ok := resolve(parts[1], len(uvs)); ok {
			v := uvs[idx]
			uv = &v
		}
	}
	if len(parts) >= 3 {
		if idx, ok := resolve(parts[2], len(normals)); ok {
			v := normals[idx]
			n = &v
		}
	}
	return p, n, uv
}

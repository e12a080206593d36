// Command inspect prints mesh, bounding box and material details of an
// assimp JSON model.
package main

import (
	"fmt"
	"math"
	"os"

	"animscene/internal/mathutil"
	"animscene/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: inspect <model.json>")
		os.Exit(1)
	}
	m, err := model.Load(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Meshes: %d, Materials: %d\n", len(m.Meshes), len(m.Materials))

	for i := range m.Meshes {
		mesh := &m.Meshes[i]
		lo := mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
		hi := mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
		for v := 0; v < mesh.VertexCount(); v++ {
			for k := 0; k < 3; k++ {
				x := float64(mesh.Vertices[v*3+k])
				lo[k] = math.Min(lo[k], x)
				hi[k] = math.Max(hi[k], x)
			}
		}
		c := mathutil.Centroid(mesh.Vertices)
		fmt.Printf("  Mesh[%d]: verts=%d, tris=%d, uvs=%t, material=%d\n",
			i, mesh.VertexCount(), len(mesh.Indices)/3, len(mesh.TexCoords) > 0, mesh.MaterialIndex)
		if mesh.SkippedFaces > 0 {
			fmt.Printf("    Skipped point/line faces: %d\n", mesh.SkippedFaces)
		}
		fmt.Printf("    BBox: X[%.2f, %.2f] Y[%.2f, %.2f] Z[%.2f, %.2f]\n", lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])
		fmt.Printf("    Size: %.2f x %.2f x %.2f\n", hi[0]-lo[0], hi[1]-lo[1], hi[2]-lo[2])
		fmt.Printf("    Centroid: (%.4f, %.4f, %.4f)\n", c[0], c[1], c[2])

		// Surface area by dominant normal direction
		areaByDir := map[string]float64{}
		for t := 0; t+2 < len(mesh.Indices); t += 3 {
			p := func(j int) mathutil.Vec3 {
				idx := int(mesh.Indices[t+j]) * 3
				return mathutil.Vec3{float64(mesh.Vertices[idx]), float64(mesh.Vertices[idx+1]), float64(mesh.Vertices[idx+2])}
			}
			v0, v1, v2 := p(0), p(1), p(2)
			n := v1.Sub(v0).Cross(v2.Sub(v0))
			areaByDir[direction(n)] += 0.5 * n.Len()
		}
		fmt.Println("    --- Surface area by direction ---")
		for _, d := range []string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"} {
			fmt.Printf("    %s: %.2f sq units\n", d, areaByDir[d])
		}

		mat := m.MaterialFor(mesh)
		fmt.Printf("    Material: ambient=%v diffuse=%v specular=%v shininess=%.1f\n",
			mat.Ambient, mat.Diffuse, mat.Specular, mat.Shininess)
	}
}

func direction(n mathutil.Vec3) string {
	ax, ay, az := math.Abs(n[0]), math.Abs(n[1]), math.Abs(n[2])
	switch {
	case ax >= ay && ax >= az:
		if n[0] > 0 {
			return "+X"
		}
		return "-X"
	case ay >= ax && ay >= az:
		if n[1] > 0 {
			return "+Y"
		}
		return "-Y"
	}
	if n[2] > 0 {
		return "+Z"
	}
	return "-Z"
}

// Command centroid prints the mean vertex of a model's first mesh, the usual
// pivot for a rotation record's center.
package main

import (
	"fmt"
	"os"

	"animscene/internal/mathutil"
	"animscene/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: centroid <model.json> [mesh index]")
		os.Exit(1)
	}
	m, err := model.Load(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	mi := 0
	if len(os.Args) > 2 {
		if _, err := fmt.Sscanf(os.Args[2], "%d", &mi); err != nil || mi < 0 || mi >= len(m.Meshes) {
			fmt.Fprintf(os.Stderr, "Error: mesh index %q out of range (0..%d)\n", os.Args[2], len(m.Meshes)-1)
			os.Exit(1)
		}
	}

	mesh := &m.Meshes[mi]
	c := mathutil.Centroid(mesh.Vertices)
	fmt.Printf("Mesh[%d]: verts=%d\n", mi, mesh.VertexCount())
	fmt.Printf("center: [%g, %g, %g]\n", c[0], c[1], c[2])
}

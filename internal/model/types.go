package model

// Mesh holds geometry for one sub-mesh of a model file.
type Mesh struct {
	Vertices      []float32 // flat xyz
	Normals       []float32 // flat xyz
	TexCoords     []float32 // flat uv, first channel only
	Indices       []uint16  // triangle list
	MaterialIndex int
	SkippedFaces  int // point and line faces, which carry no area
}

// VertexCount returns the number of xyz vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// Material holds Phong material colors.
type Material struct {
	Ambient   [3]float64
	Diffuse   [3]float64
	Specular  [3]float64
	Shininess float64
}

// DefaultMaterial is used when a model carries no usable material.
var DefaultMaterial = Material{
	Ambient:   [3]float64{0.2, 0.2, 0.2},
	Diffuse:   [3]float64{0.8, 0.8, 0.8},
	Specular:  [3]float64{0.5, 0.5, 0.5},
	Shininess: 72,
}

// Model is a parsed model file.
type Model struct {
	Meshes    []Mesh
	Materials []Material
}

// MaterialFor returns the material referenced by mesh, or DefaultMaterial.
func (m *Model) MaterialFor(mesh *Mesh) Material {
	if mesh.MaterialIndex < 0 || mesh.MaterialIndex >= len(m.Materials) {
		return DefaultMaterial
	}
	return m.Materials[mesh.MaterialIndex]
}

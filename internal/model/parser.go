// Package model parses assimp JSON exports into meshes and Phong materials.
package model

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

type jsonModel struct {
	Meshes    []jsonMesh     `json:"meshes"`
	Materials []jsonMaterial `json:"materials"`
}

type jsonMesh struct {
	Vertices      []float32   `json:"vertices"`
	Normals       []float32   `json:"normals"`
	TextureCoords [][]float32 `json:"texturecoords"`
	Faces         [][]uint16  `json:"faces"`
	MaterialIndex int         `json:"materialindex"`
}

type jsonMaterial struct {
	Properties []jsonProperty `json:"properties"`
}

type jsonProperty struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// Load reads and parses a model file.
func Load(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "model: read %s", path)
	}
	m, err := Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "model: parse %s", path)
	}
	return m, nil
}

// Parse decodes an assimp JSON document.
func Parse(data []byte) (*Model, error) {
	var doc jsonModel
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Meshes) == 0 {
		return nil, errors.New("no meshes")
	}

	m := &Model{}
	for i, jm := range doc.Meshes {
		mesh, err := convertMesh(jm)
		if err != nil {
			return nil, errors.Wrapf(err, "mesh %d", i)
		}
		m.Meshes = append(m.Meshes, mesh)
	}
	for _, jmat := range doc.Materials {
		m.Materials = append(m.Materials, convertMaterial(jmat))
	}
	return m, nil
}

func convertMesh(jm jsonMesh) (Mesh, error) {
	if len(jm.Vertices)%3 != 0 {
		return Mesh{}, errors.Errorf("vertex array length %d is not a multiple of 3", len(jm.Vertices))
	}
	mesh := Mesh{
		Vertices:      jm.Vertices,
		Normals:       jm.Normals,
		MaterialIndex: jm.MaterialIndex,
	}
	if len(jm.TextureCoords) > 0 {
		mesh.TexCoords = jm.TextureCoords[0]
	}

	nv := len(jm.Vertices) / 3
	for fi, face := range jm.Faces {
		for _, idx := range face {
			if int(idx) >= nv {
				return Mesh{}, errors.Errorf("face %d references vertex %d of %d", fi, idx, nv)
			}
		}
		if len(face) < 3 {
			mesh.SkippedFaces++
			continue
		}
		// Fan: quads become 0-1-2 and 0-2-3.
		for k := 2; k < len(face); k++ {
			mesh.Indices = append(mesh.Indices, face[0], face[k-1], face[k])
		}
	}
	return mesh, nil
}

func convertMaterial(jm jsonMaterial) Material {
	mat := DefaultMaterial
	for _, p := range jm.Properties {
		switch p.Key {
		case "$clr.ambient":
			readColor(p.Value, &mat.Ambient)
		case "$clr.diffuse":
			readColor(p.Value, &mat.Diffuse)
		case "$clr.specular":
			readColor(p.Value, &mat.Specular)
		case "$mat.shininess":
			var s float64
			if err := json.Unmarshal(p.Value, &s); err == nil {
				mat.Shininess = s
			}
		}
	}
	return mat
}

func readColor(raw json.RawMessage, dst *[3]float64) {
	var c []float64
	if err := json.Unmarshal(raw, &c); err != nil || len(c) < 3 {
		return
	}
	copy(dst[:], c[:3])
}

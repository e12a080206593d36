package raster

import (
	"math"

	"animscene/internal/mathutil"
	"animscene/internal/model"
)

// LightConfig is the scene's single directional light.
type LightConfig struct {
	Ambient   [3]float64
	Diffuse   [3]float64
	Specular  [3]float64
	Direction mathutil.Vec3 // towards the light, normalized by Shade
	Exposure  float64
	InvGamma  float64
}

// DefaultLightConfig returns the standard scene lighting.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		Ambient:   [3]float64{0.4, 0.4, 0.4},
		Diffuse:   [3]float64{0.8, 0.8, 0.8},
		Specular:  [3]float64{0.5, 0.5, 0.5},
		Direction: mathutil.Vec3{0, 1, 1},
		Exposure:  1.0,
		InvGamma:  1.0 / 2.2,
	}
}

// faceShade is the per-face lighting result: base colors are multiplied by
// Mul and then Add is added, both in linear space.
type faceShade struct {
	Mul [3]float64
	Add [3]float64
}

// Shade computes Phong lighting for a face normal seen from viewDir
// (surface towards eye). Faces are lit one-sided.
func (lc *LightConfig) Shade(normal, viewDir mathutil.Vec3, mat model.Material) faceShade {
	l := lc.Direction.Normalize()
	ndl := math.Max(normal.Dot(l), 0)

	var spec float64
	if ndl > 0 && mat.Shininess > 0 {
		half := l.Add(viewDir).Normalize()
		ndh := math.Max(normal.Dot(half), 0)
		spec = math.Pow(ndh, mat.Shininess)
	}

	var s faceShade
	for k := 0; k < 3; k++ {
		s.Mul[k] = lc.Ambient[k]*mat.Ambient[k] + lc.Diffuse[k]*mat.Diffuse[k]*ndl
		s.Add[k] = lc.Specular[k] * mat.Specular[k] * spec
	}
	return s
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

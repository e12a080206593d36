package raster

import (
	"image"
	"math"
)

// screenVertex is a projected vertex: pixel x/y, depth (larger = nearer)
// and texture coordinates.
type screenVertex struct {
	X, Y, Z float64
	U, V    float64
}

// RasterizeTriangle fills one triangle with z-buffering, bilinear texture
// sampling (or a flat base color when tex is nil), sRGB decoding, the face's
// lighting and ACES tone mapping.
//
// Hot path: no allocations in the pixel loop. Lighting is per face.
func RasterizeTriangle(
	fb *FrameBuffer,
	v [3]screenVertex,
	tex *image.NRGBA,
	base [4]uint8,
	shade *faceShade,
	lc *LightConfig,
) {
	x0, y0, z0 := v[0].X, v[0].Y, v[0].Z
	x1, y1, z1 := v[1].X, v[1].Y, v[1].Z
	x2, y2, z2 := v[2].X, v[2].Y, v[2].Z

	// Bounding box
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	// Precompute edge deltas
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	exposure := lc.Exposure
	invGamma := lc.InvGamma

	// Samples at pixel centers.
	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			cr, cg, cb, ca := base[0], base[1], base[2], base[3]
			if tex != nil {
				u := w0*v[0].U + w1*v[1].U + w2*v[2].U
				tv := w0*v[0].V + w1*v[1].V + w2*v[2].V
				cr, cg, cb, ca = SampleTexture(tex, u, tv)
			}

			// Skip transparent texels
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			// sRGB decode, shade, tone map, encode
			fr := math.Pow(ACESTonemap((srgbToLinear[cr]*shade.Mul[0]+shade.Add[0])*exposure), invGamma)
			fg := math.Pow(ACESTonemap((srgbToLinear[cg]*shade.Mul[1]+shade.Add[1])*exposure), invGamma)
			ffb := math.Pow(ACESTonemap((srgbToLinear[cb]*shade.Mul[2]+shade.Add[2])*exposure), invGamma)

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(fr * 255)
			fb.Color[pxIdx+1] = clamp255(fg * 255)
			fb.Color[pxIdx+2] = clamp255(ffb * 255)
			fb.Color[pxIdx+3] = 255
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

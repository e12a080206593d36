// Package raster is a CPU renderer that draws scene objects into an RGBA
// frame buffer from their model transforms.
package raster

import (
	"image"

	"github.com/pkg/errors"

	"animscene/internal/mathutil"
	"animscene/internal/model"
	"animscene/internal/object"
	"animscene/internal/postprocess"
)

// Camera supplies the view and projection for a frame.
type Camera interface {
	Eye() mathutil.Vec3
	View() mathutil.Mat4
	Projection(aspect float64) mathutil.Mat4
}

// Renderer draws objects into a frame buffer. Call BeginFrame, Draw each
// object, then Image.
type Renderer struct {
	Camera      Camera
	Light       LightConfig
	ClearColor  [4]float64
	width       int
	height      int
	supersample int
	fb          *FrameBuffer
}

// DefaultClearColor is the sky color frames are cleared to.
var DefaultClearColor = [4]float64{0.0, 0.4, 0.8, 1.0}

// New returns a renderer producing width×height frames. With supersample > 1
// the frame is rasterized at that multiple and downsampled in Image.
func New(width, height, supersample int, cam Camera) *Renderer {
	if supersample < 1 {
		supersample = 1
	}
	return &Renderer{
		Camera:      cam,
		Light:       DefaultLightConfig(),
		ClearColor:  DefaultClearColor,
		width:       width,
		height:      height,
		supersample: supersample,
		fb:          NewFrameBuffer(width*supersample, height*supersample),
	}
}

// BeginFrame clears color and depth.
func (r *Renderer) BeginFrame() {
	r.fb.Clear(toRGBA8(r.ClearColor))
}

// Draw rasterizes every mesh of obj using its current model transform.
// Back faces (clockwise in normalized device coordinates) are culled, and
// triangles with a vertex outside the near/far range are dropped.
func (r *Renderer) Draw(obj *object.Object) error {
	if r.Camera == nil {
		return errors.New("raster: renderer has no camera")
	}
	fbw, fbh := float64(r.fb.Width), float64(r.fb.Height)
	modelMat := obj.Model()
	viewProj := r.Camera.Projection(fbw / fbh).Mul4(r.Camera.View())
	mvp := viewProj.Mul4(modelMat)
	eye := r.Camera.Eye()
	base := toRGBA8([4]float64{obj.Color[0], obj.Color[1], obj.Color[2], 1})

	for mi := range obj.Meshes {
		mesh := &obj.Meshes[mi]
		n := mesh.VertexCount()
		world := make([]mathutil.Vec3, n)
		screen := make([]screenVertex, n)
		visible := make([]bool, n)
		hasUV := obj.Texture != nil && len(mesh.TexCoords) >= n*2

		for i := 0; i < n; i++ {
			p := mathutil.Vec3{float64(mesh.Vertices[i*3]), float64(mesh.Vertices[i*3+1]), float64(mesh.Vertices[i*3+2])}
			world[i] = mathutil.MulPoint(modelMat, p)

			clip := mvp.Mul4x1(p.Vec4(1))
			if clip[3] <= 1e-9 {
				continue
			}
			ndc := clip.Vec3().Mul(1 / clip[3])
			if ndc[2] < -1 || ndc[2] > 1 {
				continue
			}
			visible[i] = true
			screen[i] = screenVertex{
				X: (ndc[0]*0.5 + 0.5) * fbw,
				Y: (0.5 - ndc[1]*0.5) * fbh,
				Z: -ndc[2],
			}
			if hasUV {
				screen[i].U = float64(mesh.TexCoords[i*2])
				screen[i].V = float64(mesh.TexCoords[i*2+1])
			}
		}

		tex := obj.Texture
		if !hasUV {
			tex = nil
		}
		r.drawMesh(mesh, obj.Material, world, screen, visible, eye, tex, base)
	}
	return nil
}

func (r *Renderer) drawMesh(
	mesh *model.Mesh,
	mat model.Material,
	world []mathutil.Vec3,
	screen []screenVertex,
	visible []bool,
	eye mathutil.Vec3,
	tex *image.NRGBA,
	base [4]uint8,
) {
	for t := 0; t+2 < len(mesh.Indices); t += 3 {
		i0, i1, i2 := int(mesh.Indices[t]), int(mesh.Indices[t+1]), int(mesh.Indices[t+2])
		if i0 >= len(visible) || i1 >= len(visible) || i2 >= len(visible) {
			continue
		}
		if !visible[i0] || !visible[i1] || !visible[i2] {
			continue
		}
		v := [3]screenVertex{screen[i0], screen[i1], screen[i2]}

		// Screen y points down, so counter-clockwise faces have negative area here.
		area := (v[1].X-v[0].X)*(v[2].Y-v[0].Y) - (v[2].X-v[0].X)*(v[1].Y-v[0].Y)
		if area >= 0 {
			continue
		}

		normal := world[i1].Sub(world[i0]).Cross(world[i2].Sub(world[i0]))
		if normal.Len() < 1e-12 {
			continue
		}
		normal = normal.Normalize()
		centroid := world[i0].Add(world[i1]).Add(world[i2]).Mul(1.0 / 3)
		viewDir := eye.Sub(centroid)
		if viewDir.Len() > 1e-12 {
			viewDir = viewDir.Normalize()
		}

		shade := r.Light.Shade(normal, viewDir, mat)
		RasterizeTriangle(r.fb, v, tex, base, &shade, &r.Light)
	}
}

// Image returns the current frame at the output size.
func (r *Renderer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.fb.Width, r.fb.Height))
	copy(img.Pix, r.fb.Color)
	if r.supersample > 1 {
		img = postprocess.Downsample(img, r.width, r.height)
	}
	return img
}

// Size returns the output frame size.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

func toRGBA8(c [4]float64) [4]uint8 {
	var out [4]uint8
	for i := range c {
		out[i] = clamp255(c[i] * 255)
	}
	return out
}

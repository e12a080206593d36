package scenefile

import (
	"path/filepath"

	"github.com/pkg/errors"

	"animscene/internal/camera"
	"animscene/internal/clock"
	"animscene/internal/mathutil"
	"animscene/internal/model"
	"animscene/internal/object"
	"animscene/internal/raster"
	"animscene/internal/texture"
	"animscene/internal/transform"
)

// Scene is a built description, ready to register and render.
type Scene struct {
	Clock      *clock.Clock
	Objects    []*object.Object
	Light      raster.LightConfig
	ClearColor [4]float64
	Camera     *camera.Camera
}

// Build loads the models named by desc from assetDir, resolves textures and
// compiles every part into records. Each object gets its own copy of a
// part's records. textures may be nil when no object names a texture.
func Build(desc *Description, assetDir string, textures texture.Resolver) (*Scene, error) {
	c, err := desc.NewClock()
	if err != nil {
		return nil, errors.Wrap(err, "clock")
	}
	bg, err := clearColor(desc.ClearColor)
	if err != nil {
		return nil, err
	}
	sc := &Scene{
		Clock:      c,
		Light:      lighting(desc.Lighting),
		ClearColor: bg,
		Camera:     newCamera(desc.Camera),
	}

	models := make(map[string]*model.Model)
	for i := range desc.Objects {
		spec := &desc.Objects[i]
		name := spec.Name
		if name == "" {
			name = spec.Model
		}
		obj, err := buildObject(desc, spec, name, assetDir, textures, models)
		if err != nil {
			return nil, errors.Wrapf(err, "object %d (%s)", i, name)
		}
		sc.Objects = append(sc.Objects, obj)
	}
	return sc, nil
}

func buildObject(
	desc *Description,
	spec *ObjectSpec,
	name, assetDir string,
	textures texture.Resolver,
	models map[string]*model.Model,
) (*object.Object, error) {
	if spec.Model == "" {
		return nil, errors.New("no model")
	}
	m, ok := models[spec.Model]
	if !ok {
		var err error
		m, err = model.Load(filepath.Join(assetDir, spec.Model))
		if err != nil {
			return nil, err
		}
		models[spec.Model] = m
	}

	obj := object.New(name)
	obj.Meshes = m.Meshes
	if len(m.Meshes) > 0 {
		obj.Material = m.MaterialFor(&m.Meshes[0])
	}
	applyMaterial(&obj.Material, spec.Material)
	if spec.Color != nil {
		obj.Color = *spec.Color
	}

	if spec.Texture != "" {
		if textures == nil {
			return nil, errors.Errorf("texture %q: no texture source", spec.Texture)
		}
		img, err := textures.Resolve(spec.Texture)
		if err != nil {
			return nil, err
		}
		obj.Texture = img
	}

	for j, step := range spec.Place {
		switch {
		case step.Translate != nil:
			obj.Translate(mathutil.Vec3(*step.Translate))
		case step.Rotate != nil:
			obj.Rotate(mathutil.Vec3(*step.Rotate))
		case step.Scale != nil:
			obj.Scale(mathutil.Vec3(*step.Scale))
		default:
			return nil, errors.Errorf("place step %d is empty", j)
		}
	}

	var centroid mathutil.Vec3
	if len(m.Meshes) > 0 {
		centroid = mathutil.Centroid(m.Meshes[0].Vertices)
	}
	for _, part := range spec.Parts {
		specs, ok := desc.Parts[part]
		if !ok {
			return nil, errors.Errorf("unknown part %q", part)
		}
		for k := range specs {
			rec, err := specs[k].Record(centroid)
			if err != nil {
				return nil, errors.Wrapf(err, "part %s record %d", part, k)
			}
			obj.AddRecord(rec)
		}
	}
	return obj, nil
}

// Record compiles s into a new transformation record. centroid is
// used when CenterOfModel is set.
func (s *RecordSpec) Record(centroid mathutil.Vec3) (*transform.Record, error) {
	var rec *transform.Record
	if s.Pose != nil {
		if s.Kind != "" {
			if kind, err := transform.ParseKind(s.Kind); err != nil || kind != transform.KindRawMatrix {
				return nil, errors.Errorf("pose with kind %s", s.Kind)
			}
		}
		m := mathutil.PoseMatrix(mathutil.Vec3(s.Pose.Position), mathutil.Vec3(s.Pose.Euler))
		rec = transform.Matrix(m[:])
	} else {
		kind, err := transform.ParseKind(s.Kind)
		if err != nil {
			return nil, err
		}
		rec = &transform.Record{Kind: kind, Value: append([]float64(nil), s.Value...)}
	}

	switch {
	case s.CenterOfModel:
		center := centroid
		rec.Center = &center
	case s.Center != nil:
		center := mathutil.Vec3(*s.Center)
		rec.Center = &center
	}
	if s.Rate != nil {
		rate := *s.Rate
		rec.Rate = &rate
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

func lighting(spec *LightingSpec) raster.LightConfig {
	lc := raster.DefaultLightConfig()
	if spec == nil {
		return lc
	}
	if spec.Ambient != nil {
		lc.Ambient = *spec.Ambient
	}
	if spec.Diffuse != nil {
		lc.Diffuse = *spec.Diffuse
	}
	if spec.Specular != nil {
		lc.Specular = *spec.Specular
	}
	if spec.Direction != nil {
		lc.Direction = mathutil.Vec3(*spec.Direction)
	}
	return lc
}

func clearColor(vals []float64) ([4]float64, error) {
	switch len(vals) {
	case 0:
		return raster.DefaultClearColor, nil
	case 3:
		return [4]float64{vals[0], vals[1], vals[2], 1}, nil
	case 4:
		return [4]float64{vals[0], vals[1], vals[2], vals[3]}, nil
	}
	return [4]float64{}, errors.Errorf("clear_color has %d components, want 3 or 4", len(vals))
}

func newCamera(spec *CameraSpec) *camera.Camera {
	if spec == nil {
		return camera.NewDefault()
	}
	pos, target := camera.DefaultPosition, camera.DefaultLookAt
	if spec.Position != nil {
		pos = mathutil.Vec3(*spec.Position)
	}
	if spec.LookAt != nil {
		target = mathutil.Vec3(*spec.LookAt)
	}
	cam := camera.New(pos, target)
	if spec.FovY > 0 {
		cam.FovY = spec.FovY
	}
	return cam
}

func applyMaterial(dst *model.Material, spec *MaterialSpec) {
	if spec == nil {
		return
	}
	if spec.Ambient != nil {
		dst.Ambient = *spec.Ambient
	}
	if spec.Diffuse != nil {
		dst.Diffuse = *spec.Diffuse
	}
	if spec.Specular != nil {
		dst.Specular = *spec.Specular
	}
	if spec.Shininess != nil {
		dst.Shininess = *spec.Shininess
	}
}

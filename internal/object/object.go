// Package object defines the transformable scene object: one model transform
// plus the ordered transformation records replayed against it every frame.
package object

import (
	"image"

	"animscene/internal/clock"
	"animscene/internal/mathutil"
	"animscene/internal/model"
	"animscene/internal/transform"
)

// Object is one independently transformed, renderable thing in a scene.
// Transforms are absolute; objects have no parent.
type Object struct {
	Name     string
	Meshes   []model.Mesh
	Material model.Material
	Color    [3]float64
	Texture  *image.NRGBA // nil = untextured

	modelTransform mathutil.Mat4
	records        []*transform.Record
}

// New returns an object with an identity model transform, white color and
// the default material.
func New(name string) *Object {
	return &Object{
		Name:           name,
		Material:       model.DefaultMaterial,
		Color:          [3]float64{1, 1, 1},
		modelTransform: mathutil.Mat4Identity(),
	}
}

// Model returns the current model transform.
func (o *Object) Model() mathutil.Mat4 {
	return o.modelTransform
}

// ResetModel sets the model transform back to identity.
func (o *Object) ResetModel() {
	o.modelTransform = mathutil.Mat4Identity()
}

// Records returns the attached records in application order.
// The returned slice MUST NOT be mutated.
func (o *Object) Records() []*transform.Record {
	return o.records
}

// AddRecord appends records to the animation list.
func (o *Object) AddRecord(recs ...*transform.Record) {
	o.records = append(o.records, recs...)
}

// Apply composes one record onto the model transform.
func (o *Object) Apply(r *transform.Record) error {
	return transform.Apply(&o.modelTransform, r)
}

func (o *Object) Translate(v mathutil.Vec3) {
	o.modelTransform = mathutil.Translate(o.modelTransform, v)
}

func (o *Object) Rotate(angles mathutil.Vec3) {
	_ = o.Apply(transform.Rotate(angles))
}

func (o *Object) RotateAbout(angles, center mathutil.Vec3, rate float64) {
	_ = o.Apply(transform.RotateAbout(angles, center, rate))
}

func (o *Object) Scale(v mathutil.Vec3) {
	o.modelTransform = mathutil.Scale(o.modelTransform, v)
}

func (o *Object) MultiplyMatrix(m mathutil.Mat4) {
	o.modelTransform = o.modelTransform.Mul4(m)
}

// RecordFailure is a record that could not be applied during Animate.
type RecordFailure struct {
	Index  int
	Record *transform.Record
	Err    error
}

// Animate runs one frame of the object's records against c. When the clock
// sits on its reversal target, translation and scaling records are reversed
// before they are applied. A failing record is skipped; the rest still run.
//
// reversed collects the records flipped during the current frame so a record
// reached twice in one frame, through a shared record or a duplicate
// registration, is reversed only once. It may be nil for a lone object.
func (o *Object) Animate(c *clock.Clock, reversed map[*transform.Record]struct{}) []RecordFailure {
	reverse := c.AtReversal()

	var failures []RecordFailure
	for i, r := range o.records {
		if err := r.Validate(); err != nil {
			failures = append(failures, RecordFailure{Index: i, Record: r, Err: err})
			continue
		}
		if reverse {
			if _, done := reversed[r]; !done {
				r.Reverse()
				if reversed != nil {
					reversed[r] = struct{}{}
				}
			}
		}
		// Validated above; Apply cannot fail here.
		_ = o.Apply(r)
	}
	return failures
}

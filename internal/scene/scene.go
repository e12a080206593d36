// Package scene holds the ordered object registry and drives one animation
// frame per Tick.
package scene

import (
	"fmt"
	"log/slog"

	"animscene/internal/clock"
	"animscene/internal/object"
	"animscene/internal/transform"
)

// Renderer draws one object from its current model transform.
type Renderer interface {
	Draw(obj *object.Object) error
}

// FrameRenderer is a Renderer that wants to clear its target before the
// first Draw of each frame.
type FrameRenderer interface {
	Renderer
	BeginFrame()
}

// RecordError is a record that failed to apply during a Tick.
type RecordError struct {
	Object string
	Index  int
	Kind   transform.Kind
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("object %q record %d (%s): %v", e.Object, e.Index, e.Kind, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger record and draw failures are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// Registry is the scene: objects in registration order, one shared clock
// and the renderer that consumes each frame.
//
// A Registry is driven by a single frame loop and is not safe for
// concurrent use.
type Registry struct {
	objects  []*object.Object
	clock    *clock.Clock
	renderer Renderer
	log      *slog.Logger
	frame    int
}

// New returns an empty scene. renderer may be nil for headless animation.
func New(c *clock.Clock, renderer Renderer, opts ...Option) *Registry {
	r := &Registry{
		clock:    c,
		renderer: renderer,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add appends objects. Duplicates are allowed; registration order is
// render and animation order.
func (r *Registry) Add(objs ...*object.Object) {
	r.objects = append(r.objects, objs...)
}

// Remove drops the first occurrence of obj and reports whether it was found.
func (r *Registry) Remove(obj *object.Object) bool {
	for i, o := range r.objects {
		if o == obj {
			r.RemoveAt(i)
			return true
		}
	}
	return false
}

// RemoveAt drops the object at index i. Out-of-range indices are ignored.
func (r *Registry) RemoveAt(i int) {
	if i < 0 || i >= len(r.objects) {
		return
	}
	r.objects = append(r.objects[:i], r.objects[i+1:]...)
}

// Objects returns the registered objects. The returned slice MUST NOT be mutated.
func (r *Registry) Objects() []*object.Object {
	return r.objects
}

func (r *Registry) Len() int { return len(r.objects) }

// Clock returns the scene's animation clock.
func (r *Registry) Clock() *clock.Clock { return r.clock }

// Frame returns the number of completed ticks.
func (r *Registry) Frame() int { return r.frame }

// Redraw draws every object at its current transform without animating or
// advancing the clock. Draw failures are logged and counted.
func (r *Registry) Redraw() int {
	if r.renderer == nil {
		return 0
	}
	if fr, ok := r.renderer.(FrameRenderer); ok {
		fr.BeginFrame()
	}
	failed := 0
	for _, obj := range r.objects {
		if err := r.renderer.Draw(obj); err != nil {
			r.log.Warn("Draw failed", "object", obj.Name, "frame", r.frame, "error", err)
			failed++
		}
	}
	return failed
}

// Tick runs one frame: each object is drawn and then animated in
// registration order, and the clock advances once at the end. Record
// failures are logged and returned; they never stop the frame.
func (r *Registry) Tick() []*RecordError {
	if fr, ok := r.renderer.(FrameRenderer); ok {
		fr.BeginFrame()
	}

	var reversed map[*transform.Record]struct{}
	if r.clock.AtReversal() {
		reversed = make(map[*transform.Record]struct{})
	}

	var failed []*RecordError
	for _, obj := range r.objects {
		if r.renderer != nil {
			if err := r.renderer.Draw(obj); err != nil {
				r.log.Warn("Draw failed", "object", obj.Name, "frame", r.frame, "error", err)
			}
		}

		for _, f := range obj.Animate(r.clock, reversed) {
			rerr := &RecordError{Object: obj.Name, Index: f.Index, Kind: f.Record.Kind, Err: f.Err}
			r.log.Warn("Record skipped", "object", obj.Name, "record", f.Index, "kind", f.Record.Kind.String(), "tick", r.clock.Tick(), "error", f.Err)
			failed = append(failed, rerr)
		}
	}

	r.clock.Advance()
	r.frame++
	return failed
}

// Package transform holds the transformation records attached to scene
// objects and the rules for composing them onto a model matrix.
package transform

import (
	"fmt"
	"strings"

	"animscene/internal/mathutil"
)

// Kind selects which motion a Record describes.
type Kind uint8

const (
	KindTranslation Kind = iota + 1
	KindRotation
	KindScaling
	KindRawMatrix
)

var kindNames = map[Kind]string{
	KindTranslation: "translation",
	KindRotation:    "rotation",
	KindScaling:     "scaling",
	KindRawMatrix:   "rawMatrix",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind maps a kind name to its Kind. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return 0, &MalformedError{Kind: 0, Reason: "unknown kind " + strings.TrimSpace(s)}
}

// Record is one authored motion replayed every frame.
//
// Value holds 3 components for translation, rotation (per-axis angles in
// radians) and scaling, or 16 column-major components for a raw matrix.
// Center and Rate only apply to rotations.
//
// Translation and scaling records are reversed in place at the clock's
// reversal point, so Value carries the current direction of motion.
type Record struct {
	Kind   Kind
	Value  []float64
	Center *mathutil.Vec3
	Rate   *float64
}

func Translate(v mathutil.Vec3) *Record {
	return &Record{Kind: KindTranslation, Value: v[:]}
}

func Rotate(angles mathutil.Vec3) *Record {
	return &Record{Kind: KindRotation, Value: angles[:]}
}

// RotateAbout rotates about center, scaling every angle by rate.
func RotateAbout(angles, center mathutil.Vec3, rate float64) *Record {
	return &Record{Kind: KindRotation, Value: angles[:], Center: &center, Rate: &rate}
}

func Scale(v mathutil.Vec3) *Record {
	return &Record{Kind: KindScaling, Value: v[:]}
}

// Matrix multiplies the model transform by vals (column-major) verbatim.
// The slice is copied.
func Matrix(vals []float64) *Record {
	return &Record{Kind: KindRawMatrix, Value: append([]float64(nil), vals...)}
}

// Clone returns a deep copy so several objects can share one authored record
// without sharing its reversal state.
func (r *Record) Clone() *Record {
	c := &Record{Kind: r.Kind}
	if r.Value != nil {
		c.Value = append([]float64(nil), r.Value...)
	}
	if r.Center != nil {
		center := *r.Center
		c.Center = &center
	}
	if r.Rate != nil {
		rate := *r.Rate
		c.Rate = &rate
	}
	return c
}

// Validate reports whether the record can be applied.
func (r *Record) Validate() error {
	switch r.Kind {
	case KindTranslation, KindScaling, KindRotation:
		if len(r.Value) == 0 {
			return &MissingDataError{Kind: r.Kind}
		}
		if len(r.Value) != 3 {
			return &MalformedError{Kind: r.Kind, Reason: fmt.Sprintf("value has %d components, want 3", len(r.Value))}
		}
		if r.Kind != KindRotation && (r.Center != nil || r.Rate != nil) {
			return &MalformedError{Kind: r.Kind, Reason: "center and rate only apply to rotations"}
		}
	case KindRawMatrix:
		if len(r.Value) != 16 {
			return &MalformedError{Kind: r.Kind, Reason: fmt.Sprintf("value has %d elements, want 16", len(r.Value))}
		}
		if r.Center != nil || r.Rate != nil {
			return &MalformedError{Kind: r.Kind, Reason: "raw matrix cannot carry center or rate"}
		}
	default:
		return &MalformedError{Kind: r.Kind, Reason: "unknown kind"}
	}
	return nil
}

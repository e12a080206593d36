package transform

import "animscene/internal/mathutil"

// Apply composes r onto m in place by right-multiplication. m is left
// untouched when r is invalid.
//
// A rotation with a center is composed as
//
//	T(-center) × Rx(rate·ax) × Ry(rate·ay) × Rz(rate·az) × T(+center)
//
// and the X, Y, Z order is fixed.
func Apply(m *mathutil.Mat4, r *Record) error {
	if err := r.Validate(); err != nil {
		return err
	}

	switch r.Kind {
	case KindTranslation:
		v, _ := mathutil.Vec3FromSlice(r.Value)
		*m = mathutil.Translate(*m, v)
	case KindRotation:
		*m = rotate(*m, r)
	case KindScaling:
		v, _ := mathutil.Vec3FromSlice(r.Value)
		*m = mathutil.Scale(*m, v)
	case KindRawMatrix:
		raw, _ := mathutil.Mat4FromSlice(r.Value)
		*m = m.Mul4(raw)
	}
	return nil
}

func rotate(m mathutil.Mat4, r *Record) mathutil.Mat4 {
	rate := 1.0
	if r.Rate != nil {
		rate = *r.Rate
	}
	var center mathutil.Vec3
	if r.Center != nil {
		center = *r.Center
	}

	m = mathutil.Translate(m, center.Mul(-1))
	m = mathutil.Rotate(m, rate*r.Value[0], mathutil.AxisX)
	m = mathutil.Rotate(m, rate*r.Value[1], mathutil.AxisY)
	m = mathutil.Rotate(m, rate*r.Value[2], mathutil.AxisZ)
	return mathutil.Translate(m, center)
}

// Reverse flips the direction of a translation or scaling record in place.
// Translations are negated; scale factors are reflected about 1 (c becomes
// 2 - c). Rotations and raw matrices are left unchanged.
func (r *Record) Reverse() {
	switch r.Kind {
	case KindTranslation:
		for i := range r.Value {
			r.Value[i] = -r.Value[i]
		}
	case KindScaling:
		for i := range r.Value {
			r.Value[i] = 1 - (r.Value[i] - 1)
		}
	}
}

// Reversible reports whether the record changes direction at the reversal point.
func (r *Record) Reversible() bool {
	return r.Kind == KindTranslation || r.Kind == KindScaling
}

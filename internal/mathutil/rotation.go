package mathutil

import (
	"fmt"
	"math"
)

// AxisRotation returns the 4×4 rotation about a single axis ('x', 'y' or 'z')
// as 16 values in row-major print order. Angle in degrees.
func AxisRotation(axis byte, degrees float64) ([16]float64, error) {
	c, s := math.Cos(Deg2Rad(degrees)), math.Sin(Deg2Rad(degrees))
	switch axis {
	case 'x', 'X':
		return [16]float64{
			1, 0, 0, 0,
			0, c, -s, 0,
			0, s, c, 0,
			0, 0, 0, 1,
		}, nil
	case 'y', 'Y':
		return [16]float64{
			c, 0, s, 0,
			0, 1, 0, 0,
			-s, 0, c, 0,
			0, 0, 0, 1,
		}, nil
	case 'z', 'Z':
		return [16]float64{
			c, -s, 0, 0,
			s, c, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
		}, nil
	}
	return [16]float64{}, fmt.Errorf("mathutil: invalid axis %q, must be x, y or z", axis)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Transpose16 swaps between row-major and column-major order of a flat 4×4.
func Transpose16(m [16]float64) [16]float64 {
	var t [16]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[c*4+r] = m[r*4+c]
		}
	}
	return t
}

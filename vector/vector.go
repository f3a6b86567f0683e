package vector

import (
	"fmt"

	"github.com/gruntwork-io/go-commons/errors"
)

// Axis identifies one component of a Vector3.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

// InvalidAxisError is returned when a label does not name an axis.
type InvalidAxisError struct {
	Label rune
}

func (err InvalidAxisError) Error() string {
	return fmt.Sprintf("invalid axis character %q, expected one of 1, 2, 3, x, y, z", err.Label)
}

// ParseAxis maps an axis label to an Axis. Digits and both letter cases are accepted:
// '1', 'X', 'x' select X; '2', 'Y', 'y' select Y; '3', 'Z', 'z' select Z.
func ParseAxis(label rune) (Axis, error) {
	switch label {
	case '1', 'X', 'x':
		return AxisX, nil
	case '2', 'Y', 'y':
		return AxisY, nil
	case '3', 'Z', 'z':
		return AxisZ, nil
	}
	return 0, errors.WithStackTrace(InvalidAxisError{Label: label})
}

// Vector3 is an ordered triple of coordinates.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Get returns the component selected by axis.
func (v Vector3) Get(axis Axis) float64 {
	switch axis {
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	}
	return v.X
}

// With returns a copy of v where only the component selected by axis is replaced.
func (v Vector3) With(axis Axis, value float64) Vector3 {
	switch axis {
	case AxisX:
		v.X = value
	case AxisY:
		v.Y = value
	case AxisZ:
		v.Z = value
	}
	return v
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

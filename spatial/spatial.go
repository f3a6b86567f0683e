// Package spatial sets single position components on caller-owned spatial objects.
package spatial

import (
	"github.com/louis/extensions/config"
	"github.com/louis/extensions/logger"
	"github.com/louis/extensions/vector"
	"github.com/sirupsen/logrus"
)

// InvalidAxisMessage is logged by SetAxis when the axis label is not recognised.
const InvalidAxisMessage = "Invalid axis character entered"

// Object is a spatial object owned by the caller exposing a world and a local position.
//
// None of the helpers lock the object. Callers sharing an Object between goroutines must
// synchronise around SetAxis themselves, as it performs a read-modify-write of one slot.
type Object interface {
	Position() vector.Vector3
	SetPosition(p vector.Vector3)

	LocalPosition() vector.Vector3
	SetLocalPosition(p vector.Vector3)
}

// Transform is a minimal Object for callers that don't have a host object of their own.
type Transform struct {
	World vector.Vector3
	Local vector.Vector3
}

func (t *Transform) Position() vector.Vector3          { return t.World }
func (t *Transform) SetPosition(p vector.Vector3)      { t.World = p }
func (t *Transform) LocalPosition() vector.Vector3     { return t.Local }
func (t *Transform) SetLocalPosition(p vector.Vector3) { t.Local = p }

// AxisSetter sets single position components and reports bad labels to Logger.
type AxisSetter struct {
	Logger logrus.FieldLogger
}

// NewAxisSetter creates an AxisSetter logging through the configured logger.
func NewAxisSetter(cfg config.Config) *AxisSetter {
	s := &AxisSetter{}
	if cfg.Logger != nil {
		s.Logger = cfg.Logger
	}
	return s
}

// TrySetAxis sets the component named by axis to value in the local position if local is true,
// or the world position otherwise. The other two components are left as they were. If axis is
// not a valid label the error is returned and obj is not touched.
func (s *AxisSetter) TrySetAxis(obj Object, axis rune, value float64, local bool) error {
	a, err := vector.ParseAxis(axis)
	if err != nil {
		return err
	}

	if local {
		obj.SetLocalPosition(obj.LocalPosition().With(a, value))
	} else {
		obj.SetPosition(obj.Position().With(a, value))
	}
	return nil
}

// SetAxis behaves like TrySetAxis but never fails: an invalid label is logged at error level
// and the call returns without mutating obj.
func (s *AxisSetter) SetAxis(obj Object, axis rune, value float64, local bool) {
	if err := s.TrySetAxis(obj, axis, value, local); err != nil {
		s.logger().WithFields(logrus.Fields{"axis": string(axis)}).Error(InvalidAxisMessage)
	}
}

func (s *AxisSetter) logger() logrus.FieldLogger {
	if s.Logger == nil {
		return logger.GetProjectLogger()
	}
	return s.Logger
}

// TrySetAxis sets one position component of obj, see AxisSetter.TrySetAxis.
func TrySetAxis(obj Object, axis rune, value float64, local bool) error {
	s := AxisSetter{}
	return s.TrySetAxis(obj, axis, value, local)
}

// SetAxis sets one position component of obj, logging invalid labels to the project logger.
func SetAxis(obj Object, axis rune, value float64, local bool) {
	s := AxisSetter{}
	s.SetAxis(obj, axis, value, local)
}

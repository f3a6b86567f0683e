package scale

import "golang.org/x/exp/constraints"

// Number is any type Clamp accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp returns t limited to the interval between min and max. The bounds may be given in
// either order; they are swapped first when min > max.
func Clamp[T Number](t, min, max T) T {
	if min > max {
		min, max = max, min
	}
	if t < min {
		return min
	}
	if t > max {
		return max
	}
	return t
}

// Remap maps value from the interval [srcMin,srcMax] onto [dstMin,dstMax]. When clamped is set the
// result is limited to the destination interval.
//
// A zero-width source interval is not checked for: the division yields ±Inf or NaN and that is
// what gets returned.
func Remap(value, srcMin, srcMax, dstMin, dstMax float64, clamped bool) float64 {
	normalized := (value - srcMin) / (srcMax - srcMin)
	out := normalized*(dstMax-dstMin) + dstMin

	if clamped {
		out = Clamp(out, dstMin, dstMax)
	}
	return out
}

// Remapper returns a function that remaps numbers from [srcMin,srcMax] to [dstMin,dstMax].
func Remapper(srcMin, srcMax, dstMin, dstMax float64, clamped bool) func(v float64) float64 {
	return func(v float64) float64 {
		return Remap(v, srcMin, srcMax, dstMin, dstMax, clamped)
	}
}

// ToUnitClamp returns a function that scales a number from the interval [rMin,rMax]
// to the unit interval ([0,1]), if the result falls outside [0,1], it is clamped
// to 0 or 1.
func ToUnitClamp(rMin, rMax float64) func(m float64) float64 {
	return Remapper(rMin, rMax, 0, 1, true)
}

// FromUnit returns a function that scales a number from the unit interval onto [rMin,rMax].
func FromUnit(rMin, rMax float64) func(t float64) float64 {
	return Remapper(0, 1, rMin, rMax, false)
}

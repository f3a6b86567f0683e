package scale

// Range is an interval between Min and Max. Min may be greater than Max, in which case
// mappings into the range run backwards.
type Range struct {
	Min float64
	Max float64
}

// UnitRange is [0,1].
var UnitRange = Range{Min: 0, Max: 1}

func (r Range) Width() float64 { return r.Max - r.Min }

// Contains reports whether v lies between the bounds, in whichever order they were given.
func (r Range) Contains(v float64) bool {
	if r.Min > r.Max {
		return r.Max <= v && v <= r.Min
	}
	return r.Min <= v && v <= r.Max
}

// Lerp returns the point at fraction t along the range.
func (r Range) Lerp(t float64) float64 {
	return t*r.Width() + r.Min
}

// Normalize returns the fraction of the way v lies from Min to Max. It is the inverse of Lerp.
func (r Range) Normalize(v float64) float64 {
	return (v - r.Min) / r.Width()
}

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	return Clamp(v, r.Min, r.Max)
}

// RemapRange is Remap expressed with Range values.
func RemapRange(value float64, src, dst Range, clamped bool) float64 {
	return Remap(value, src.Min, src.Max, dst.Min, dst.Max, clamped)
}

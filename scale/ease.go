package scale

import "github.com/fogleman/ease"

// EasingFunc shapes a unit position t in [0,1]. Any of the github.com/fogleman/ease curves fit.
type EasingFunc func(t float64) float64

// RemapEased remaps value from src to dst along an easing curve instead of a straight line.
// The unit position is clamped to [0,1] before easing, so the result always lies within dst
// for curves that stay in [0,1]. A nil fn is treated as ease.Linear.
func RemapEased(value float64, src, dst Range, fn EasingFunc) float64 {
	if fn == nil {
		fn = ease.Linear
	}
	t := Clamp(src.Normalize(value), 0, 1)
	return dst.Lerp(fn(t))
}

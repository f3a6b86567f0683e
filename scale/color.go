package scale

import colorful "github.com/lucasb-eyer/go-colorful"

// RemapColor maps value from src onto a blend between from and to. Values outside src give the
// nearest endpoint colour. Blending happens in CIE-L*a*b* space.
func RemapColor(value float64, src Range, from, to colorful.Color) colorful.Color {
	t := Remap(value, src.Min, src.Max, 0, 1, true)
	return from.BlendLab(to, t).Clamped()
}

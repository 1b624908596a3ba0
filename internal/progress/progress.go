// Package progress holds the percentage math shared by list progress,
// shopping mode and the budget screens.
package progress

// Percent returns part/whole as a percentage. A non-positive whole yields 0.
// The result is not clamped; callers compare it against thresholds directly.
func Percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}

// Clamp bounds a percentage to [0,100] for bar rendering.
func Clamp(pct float64) float64 {
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}

// Ratio is Percent over integer counts.
func Ratio(done, total int) float64 {
	return Percent(float64(done), float64(total))
}

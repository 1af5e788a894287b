package parallax

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	styleTransform  = "transform"
	styleWillChange = "will-change"
)

// Lerp blends start toward end by amount.
func Lerp(start, end, amount float64) float64 {
	return (1-amount)*start + amount*end
}

// LerpCoordinates moves current toward target by lerpAmount on both axes.
// A lerpAmount outside (0, 1] disables smoothing and returns target.
func LerpCoordinates(current, target Vec2, lerpAmount float64) Vec2 {
	if lerpAmount <= 0 || lerpAmount > 1 {
		return target
	}
	return Vec2{
		X: Lerp(current.X, target.X, lerpAmount),
		Y: Lerp(current.Y, target.Y, lerpAmount),
	}
}

// Matrix3D formats a translation-only 4x4 transform. The matrix is the
// identity with the x/y translation terms set.
func Matrix3D(t Vec2) string {
	return "matrix3d(1,0,0,0,0,1,0,0,0,0,1,0," +
		strconv.FormatFloat(t.X, 'f', -1, 64) + "," +
		strconv.FormatFloat(t.Y, 'f', -1, 64) + ",0,1)"
}

var (
	matrix3DPattern = regexp.MustCompile(`^matrix3d\((.+)\)$`)
	matrixPattern   = regexp.MustCompile(`^matrix\((.+)\)$`)
)

// ParseTranslate extracts the translation of a matrix3d(...) or matrix(...)
// transform value. Anything else, including an empty value, yields the
// origin.
func ParseTranslate(transform string) Vec2 {
	transform = strings.TrimSpace(transform)
	if m := matrix3DPattern.FindStringSubmatch(transform); m != nil {
		return translateAt(m[1], 16, 12, 13)
	}
	if m := matrixPattern.FindStringSubmatch(transform); m != nil {
		return translateAt(m[1], 6, 4, 5)
	}
	return Vec2{}
}

func translateAt(args string, n, ix, iy int) Vec2 {
	parts := strings.Split(args, ",")
	if len(parts) != n {
		return Vec2{}
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[ix]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[iy]), 64)
	if errX != nil || errY != nil {
		return Vec2{}
	}
	return Vec2{X: x, Y: y}
}

// ReadTranslate returns the translation currently applied to el. It reads
// style and must only be called from a Scheduler.Measure callback.
func ReadTranslate(el Element) Vec2 {
	return ParseTranslate(el.Style(styleTransform))
}

// ApplyTransform writes a translation to el. It must only be called from a
// Scheduler.Mutate callback.
func ApplyTransform(el Element, t Vec2) {
	el.SetStyle(styleWillChange, styleTransform)
	el.SetStyle(styleTransform, Matrix3D(t))
}

// ClearTransform removes the transform style entirely. It must only be called
// from a Scheduler.Mutate callback.
func ClearTransform(el Element) {
	el.RemoveStyle(styleTransform)
}

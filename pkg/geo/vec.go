package geo

import "math"

// Vec3 is a point in world space, in meters. Y is up.
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// V is a shorthand constructor for Vec3.
func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// ApproxEqual reports whether every component of v and w differs by at most tol.
func (v Vec3) ApproxEqual(w Vec3, tol float64) bool {
	return math.Abs(v.X-w.X) <= tol &&
		math.Abs(v.Y-w.Y) <= tol &&
		math.Abs(v.Z-w.Z) <= tol
}

// Size3 is an extent along local width, height and depth (thickness) axes.
type Size3 struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Depth  float64 `json:"depth" yaml:"depth"`
}

// FaceArea returns width × height.
func (s Size3) FaceArea() float64 {
	return s.Width * s.Height
}

// Positive reports whether all three extents are strictly positive.
func (s Size3) Positive() bool {
	return s.Width > 0 && s.Height > 0 && s.Depth > 0
}

// Finite reports whether no extent is NaN or infinite.
func (s Size3) Finite() bool {
	for _, v := range []float64{s.Width, s.Height, s.Depth} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Range is a closed interval [Min, Max].
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies within the closed interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

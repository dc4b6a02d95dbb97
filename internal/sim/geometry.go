package sim

import "math"

// Vec2 is a position or direction on the ground plane. The vertical axis is
// fixed at zero for every actor, so only X and Z are tracked.
type Vec2 struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Z: v.Z + o.Z}
}

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Z: v.Z - o.Z}
}

// Scale returns v*s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Z: v.Z * s}
}

// Negate returns -v.
func (v Vec2) Negate() Vec2 {
	return Vec2{X: -v.X, Z: -v.Z}
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Z)
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Z: v.Z / l}
}

// Distance returns the planar distance between a and b.
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// Clamp limits value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Bounds is an axis aligned rectangle on the ground plane.
type Bounds struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinZ float64 `json:"min_z"`
	MaxZ float64 `json:"max_z"`
}

// Square returns bounds spanning [-half, half] on both axes.
func Square(half float64) Bounds {
	return Bounds{MinX: -half, MaxX: half, MinZ: -half, MaxZ: half}
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Z >= b.MinZ && p.Z <= b.MaxZ
}

// Clamp returns p moved onto the closest point inside b.
func (b Bounds) Clamp(p Vec2) Vec2 {
	return Vec2{
		X: Clamp(p.X, b.MinX, b.MaxX),
		Z: Clamp(p.Z, b.MinZ, b.MaxZ),
	}
}

// Obstacle is the footprint of a static object that autonomous actors walk around.
// X and Z locate the center of the footprint.
type Obstacle struct {
	Name  string  `json:"name,omitempty"`
	X     float64 `json:"x"`
	Z     float64 `json:"z"`
	Width float64 `json:"width"`
	Depth float64 `json:"depth"`
}

// Overlaps reports whether p falls inside the footprint grown by margin on every side.
func (o Obstacle) Overlaps(p Vec2, margin float64) bool {
	return math.Abs(p.X-o.X) < o.Width/2+margin &&
		math.Abs(p.Z-o.Z) < o.Depth/2+margin
}

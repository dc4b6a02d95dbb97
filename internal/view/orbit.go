package view

import (
	"math"

	"github.com/pixil98/dogtown/internal/sim"
)

const (
	MinDistance = 5.0
	MaxDistance = 40.0
	MinPolar    = 0.05
	MaxPolar    = math.Pi / 2.2

	// radians per pixel of mouse drag
	dragSpeed = 0.005
	// distance units per wheel notch
	zoomSpeed = 1.5
)

// Orbit is a camera circling a target on the ground. Polar is measured from
// straight up and Azimuth around Y starting at +Z.
type Orbit struct {
	Target   sim.Vec2
	Distance float64
	Polar    float64
	Azimuth  float64
}

// DefaultOrbit looks at the origin from (15, 15, 15).
func DefaultOrbit() Orbit {
	return Orbit{
		Distance: math.Sqrt(3 * 15 * 15),
		Polar:    math.Acos(1 / math.Sqrt(3)),
		Azimuth:  math.Pi / 4,
	}
}

// Drag rotates the camera by a mouse movement in pixels.
func (o Orbit) Drag(dx, dy float64) Orbit {
	o.Azimuth -= dx * dragSpeed
	o.Polar = sim.Clamp(o.Polar-dy*dragSpeed, MinPolar, MaxPolar)
	return o
}

// Zoom moves the camera toward the target for positive wheel movement.
func (o Orbit) Zoom(wheel float64) Orbit {
	o.Distance = sim.Clamp(o.Distance-wheel*zoomSpeed, MinDistance, MaxDistance)
	return o
}

// Pan shifts the target in the camera's ground plane.
func (o Orbit) Pan(dx, dy float64) Orbit {
	scale := o.Distance * dragSpeed * 0.2
	right := sim.Vec2{X: math.Cos(o.Azimuth), Z: -math.Sin(o.Azimuth)}
	forward := sim.Vec2{X: -math.Sin(o.Azimuth), Z: -math.Cos(o.Azimuth)}
	o.Target = o.Target.Add(right.Scale(-dx * scale)).Add(forward.Scale(dy * scale))
	return o
}

// Eye returns the camera position in world space.
func (o Orbit) Eye() (x, y, z float64) {
	r := o.Distance * math.Sin(o.Polar)
	return o.Target.X + r*math.Sin(o.Azimuth),
		o.Distance * math.Cos(o.Polar),
		o.Target.Z + r*math.Cos(o.Azimuth)
}

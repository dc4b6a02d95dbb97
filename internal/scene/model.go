package scene

import (
	"image/color"

	"github.com/pixil98/dogtown/internal/sim"
)

// Kind identifies a primitive shape.
type Kind int

const (
	KindBox Kind = iota
	KindSphere
	KindCylinder
	KindPlane
	KindDisc
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindSphere:
		return "sphere"
	case KindCylinder:
		return "cylinder"
	case KindPlane:
		return "plane"
	case KindDisc:
		return "disc"
	default:
		return "unknown"
	}
}

type Vec3 struct {
	X, Y, Z float32
}

// Shape is a primitive centered on its part's offset. Planes lie flat in XZ,
// discs face +Z and cylinders stand along Y.
type Shape struct {
	Kind   Kind
	Size   Vec3
	Radius float32
	Bottom float32
	Height float32
}

func Box(w, h, d float32) Shape {
	return Shape{Kind: KindBox, Size: Vec3{X: w, Y: h, Z: d}}
}

func Sphere(r float32) Shape {
	return Shape{Kind: KindSphere, Radius: r}
}

// Cylinder uses Radius for the top cap and Bottom for the base.
func Cylinder(top, bottom, h float32) Shape {
	return Shape{Kind: KindCylinder, Radius: top, Bottom: bottom, Height: h}
}

func Cone(r, h float32) Shape {
	return Cylinder(0, r, h)
}

func Plane(w, d float32) Shape {
	return Shape{Kind: KindPlane, Size: Vec3{X: w, Z: d}}
}

func Disc(r float32) Shape {
	return Shape{Kind: KindDisc, Radius: r}
}

// Part is one colored shape placed inside a model. Rotation is in radians and
// applied X, then Y, then Z.
type Part struct {
	Shape    Shape
	Offset   Vec3
	Rotation Vec3
	Color    color.RGBA
}

// Model is a group of parts and child groups sharing one transform.
type Model struct {
	Name     string
	Position Vec3
	Yaw      float32
	Scale    float32
	Parts    []Part
	Children []Model
}

// Count returns the number of parts in the model and all of its children.
func (m Model) Count() int {
	n := len(m.Parts)
	for _, c := range m.Children {
		n += c.Count()
	}
	return n
}

// ScaleOr returns the model's scale, treating zero as one.
func (m Model) ScaleOr() float32 {
	if m.Scale == 0 {
		return 1
	}
	return m.Scale
}

// Place moves a model onto the ground at p facing yaw.
func Place(m Model, p sim.Vec2, yaw float64) Model {
	m.Position = Vec3{X: float32(p.X), Z: float32(p.Z)}
	m.Yaw = float32(yaw)
	return m
}

func part(s Shape, x, y, z float32, c color.RGBA) Part {
	return Part{Shape: s, Offset: Vec3{X: x, Y: y, Z: z}, Color: c}
}

func group(name string, x, y, z float32, parts ...Part) Model {
	return Model{Name: name, Position: Vec3{X: x, Y: y, Z: z}, Parts: parts}
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

// choose returns an index in [0, n).
func choose(r sim.Rand, n int) int {
	i := int(r.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

func spread(r sim.Rand, s float64) float32 {
	return float32((r.Float64() - 0.5) * s)
}

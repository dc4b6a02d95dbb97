package scene

import (
	"image/color"

	"github.com/pixil98/dogtown/internal/sim"
)

// PersonScale enlarges people relative to the dog.
const PersonScale = 1.5

// ShirtColors are the t-shirts a person without a sweater may wear.
var ShirtColors = []color.RGBA{
	rgb(0xFF6B6B), rgb(0x4ECDC4), rgb(0x45B7D1), rgb(0xFFA07A),
	rgb(0x98D8C8), rgb(0xF7DC6F), rgb(0xBB8FCE),
}

var (
	skin        = rgb(0xFFDAB9)
	sweaterRed  = rgb(0xDC143C)
	sweaterPant = rgb(0x2F4F4F)
	pants       = rgb(0x2C3E50)
	gold        = rgb(0xFFD700)
	brown       = rgb(0x8B4513)
	longHair    = rgb(0x654321)
	shortHair   = rgb(0x2C1810)
)

// Person builds a walker's figure. The shirt color is drawn from r every call,
// so build each person once and move the result.
func Person(look sim.Look, r sim.Rand) Model {
	shirt := ShirtColors[choose(r, len(ShirtColors))]
	legs := pants
	if look.Sweater {
		shirt = sweaterRed
		legs = sweaterPant
	}

	leftArm := part(Cylinder(0.06, 0.06, 0.5), -0.25, 0.7, 0, skin)
	leftArm.Rotation.Z = 0.3
	rightArm := part(Cylinder(0.06, 0.06, 0.5), 0.25, 0.7, 0, skin)
	rightArm.Rotation.Z = -0.3

	parts := []Part{
		part(Box(0.4, 0.6, 0.3), 0, 0.7, 0, shirt),
		part(Sphere(0.2), 0, 1.2, 0, skin),
		part(Sphere(0.04), -0.08, 1.25, 0.18, white),
		part(Sphere(0.02), -0.08, 1.25, 0.2, black),
		part(Sphere(0.04), 0.08, 1.25, 0.18, white),
		part(Sphere(0.02), 0.08, 1.25, 0.2, black),
		part(Box(0.08, 0.02, 0.01), 0, 1.15, 0.19, brown),
		leftArm,
		rightArm,
		part(Cylinder(0.08, 0.08, 0.5), -0.1, 0.25, 0, legs),
		part(Cylinder(0.08, 0.08, 0.5), 0.1, 0.25, 0, legs),
	}

	if look.Sweater {
		parts = append(parts,
			part(Box(0.15, 0.15, 0.02), 0, 0.8, 0.16, brown),
			part(Sphere(0.03), -0.05, 0.85, 0.17, gold),
			part(Sphere(0.03), 0.05, 0.85, 0.17, gold),
		)
	}

	switch look.Hair {
	case sim.HairLong:
		parts = append(parts,
			part(Box(0.25, 0.15, 0.25), 0, 1.35, 0, longHair),
			part(Box(0.24, 0.35, 0.22), 0, 1.15, -0.02, longHair),
			part(Box(0.08, 0.4, 0.2), -0.15, 1.0, 0, longHair),
			part(Box(0.08, 0.4, 0.2), 0.15, 1.0, 0, longHair),
		)
	default:
		parts = append(parts,
			part(Box(0.24, 0.18, 0.24), 0, 1.35, 0, shortHair),
			part(Box(0.22, 0.22, 0.2), 0, 1.25, 0.03, shortHair),
		)
	}

	return Model{Name: "person", Scale: PersonScale, Parts: parts}
}

// FoodCan builds a dropped can of dog food.
func FoodCan() Model {
	return Model{
		Name: "food-can",
		Parts: []Part{
			part(Cylinder(0.15, 0.15, 0.3), 0, 0.15, 0, rgb(0xC0C0C0)),
			part(Cylinder(0.16, 0.16, 0.02), 0, 0.31, 0, gold),
		},
	}
}

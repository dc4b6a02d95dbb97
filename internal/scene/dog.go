package scene

import (
	"math"
	"time"
)

var (
	dogFur   = rgb(0xD2691E)
	dogSnout = rgb(0xCD853F)
	dogDark  = rgb(0x8B4513)
	black    = rgb(0x000000)
	white    = rgb(0xFFFFFF)
)

// DogPose is the cosmetic state of the dog for one frame.
type DogPose struct {
	Moving bool
	Time   time.Duration
}

// TailAngle is the tail's pitch. It wags while the dog moves and rests at 0.3
// otherwise.
func (p DogPose) TailAngle() float64 {
	if !p.Moving {
		return 0.3
	}
	return math.Sin(p.Time.Seconds()*8)*0.5 + 0.3
}

// EarHeight bounces the ears around 0.55 regardless of movement.
func (p DogPose) EarHeight() float64 {
	return 0.55 + math.Sin(p.Time.Seconds()*6)*0.1
}

// Dog builds the player's dog facing +Z at the origin.
func Dog(pose DogPose) Model {
	ear := float32(pose.EarHeight())

	leftEar := part(Box(0.15, 0.3, 0.1), -0.2, ear, 0.2, dogDark)
	leftEar.Rotation.Z = -0.3
	rightEar := part(Box(0.15, 0.3, 0.1), 0.2, ear, 0.2, dogDark)
	rightEar.Rotation.Z = 0.3

	tail := part(Cylinder(0.08, 0.05, 0.5), 0, 0.4, -0.5, dogDark)
	tail.Rotation.X = float32(pose.TailAngle())

	leg := Cylinder(0.08, 0.08, 0.3)

	return Model{
		Name: "dog",
		Parts: []Part{
			part(Box(0.6, 0.4, 0.8), 0, 0.3, 0, dogFur),
			part(Box(0.5, 0.5, 0.5), 0, 0.6, 0.3, dogFur),
			part(Box(0.3, 0.2, 0.3), 0, 0.5, 0.6, dogSnout),
			part(Sphere(0.08), 0, 0.55, 0.75, black),
			leftEar,
			rightEar,
			tail,
			part(leg, -0.2, 0.05, 0.25, dogDark),
			part(leg, 0.2, 0.05, 0.25, dogDark),
			part(leg, -0.2, 0.05, -0.25, dogDark),
			part(leg, 0.2, 0.05, -0.25, dogDark),
		},
		Children: []Model{
			dogEye("left-eye", -0.15),
			dogEye("right-eye", 0.15),
		},
	}
}

func dogEye(name string, x float32) Model {
	return group(name, x, 0.65, 0.5,
		part(Sphere(0.12), 0, 0, 0, white),
		part(Sphere(0.06), 0, 0, 0.1, black),
	)
}

package scene

import (
	"image/color"
	"math"

	"github.com/pixil98/dogtown/internal/sim"
)

var (
	grass     = rgb(0x88CC88)
	asphalt   = rgb(0x444444)
	laneMark  = rgb(0xFFFF00)
	manhole   = rgb(0x555555)
	sidewalk  = rgb(0x999999)
	parkGrass = rgb(0x66AA66)
	glass     = rgb(0x87CEEB)
	frame     = rgb(0x333333)
	wood      = rgb(0x654321)
	railing   = rgb(0x666666)
	slab      = rgb(0x888888)
	pot       = rgb(0xD2691E)
	leaves    = rgb(0x2D5016)
)

// building is a block with a door, windows per floor and optional balconies.
type building struct {
	name     string
	x, z     float32
	w, h, d  float32
	color    color.RGBA
	floors   int
	windowX  []float32
	firstY   float32
	floorGap float32
	balcony  func(floor int) bool
}

var buildings = []building{
	{
		name: "apartments", x: -12, z: 0, w: 5, h: 12, d: 5, color: rgb(0xCCCCCC),
		floors: 4, windowX: []float32{-1.5, 1.5}, firstY: 3, floorGap: 2.5,
		balcony: func(f int) bool { return f > 0 },
	},
	{
		name: "townhouse", x: 12, z: -5, w: 4, h: 8, d: 4, color: rgb(0xBBBBBB),
		floors: 3, windowX: []float32{-1, 1}, firstY: 2.5, floorGap: 2.2,
		balcony: func(f int) bool { return f > 0 },
	},
	{
		name: "tower", x: -10, z: -12, w: 6, h: 16, d: 6, color: rgb(0xAAAAAA),
		floors: 6, windowX: []float32{-2, 0, 2}, firstY: 3, floorGap: 2.3,
		balcony: func(f int) bool { return f > 0 && f%2 == 0 },
	},
}

var (
	grocery = struct{ x, z, w, h, d float32 }{x: 10, z: 15, w: 5, h: 3.6, d: 4}
	cafe    = struct{ x, z, w, h, d float32 }{x: -15, z: 12, w: 4, h: 3, d: 3}
)

// Footprints returns the ground outlines of the city's buildings in draw order.
// They can replace sim.DefaultObstacles so walkers avoid what is on screen.
func Footprints() []sim.Obstacle {
	out := make([]sim.Obstacle, 0, len(buildings)+2)
	for _, b := range buildings {
		out = append(out, sim.Obstacle{Name: b.name, X: float64(b.x), Z: float64(b.z), Width: float64(b.w), Depth: float64(b.d)})
	}
	out = append(out,
		sim.Obstacle{Name: "grocery", X: float64(grocery.x), Z: float64(grocery.z), Width: float64(grocery.w), Depth: float64(grocery.d)},
		sim.Obstacle{Name: "cafe", X: float64(cafe.x), Z: float64(cafe.z), Width: float64(cafe.w), Depth: float64(cafe.d)},
	)
	return out
}

// City builds the static backdrop. r only jitters the produce in the grocery's
// crates.
func City(r sim.Rand) Model {
	city := Model{Name: "city", Parts: ground()}
	for _, b := range buildings {
		city.Children = append(city.Children, b.model())
	}
	city.Children = append(city.Children,
		groceryModel(r),
		park(),
		trafficLight(),
		cafeModel(),
	)
	return city
}

func ground() []Part {
	parts := []Part{
		part(Plane(60, 60), 0, -0.01, 0, grass),
		part(Plane(8, 60), 0, 0, 0, asphalt),
		part(Plane(2, 60), -6, 0.01, 0, sidewalk),
		part(Plane(2, 60), 6, 0.01, 0, sidewalk),
	}
	for i := 0; i < 12; i++ {
		parts = append(parts, part(Plane(0.3, 2), 0, 0.01, float32(-25+i*5), laneMark))
	}
	for _, p := range [][2]float32{{-15, 5}, {10, -8}, {-5, 15}} {
		parts = append(parts, part(Cylinder(0.6, 0.6, 0.1), p[0], 0.02, p[1], manhole))
	}
	return parts
}

func (b building) model() Model {
	front := b.d/2 + 0.05
	m := group(b.name, b.x, 0, b.z, part(Box(b.w, b.h, b.d), 0, b.h/2, 0, b.color))
	m.Children = append(m.Children, door(0, 1, front))
	for f := 0; f < b.floors; f++ {
		y := b.firstY + float32(f)*b.floorGap
		for _, x := range b.windowX {
			m.Children = append(m.Children, window(x, y, front))
		}
		if b.balcony != nil && b.balcony(f) {
			m.Children = append(m.Children, balcony(0, y-0.5, b.d/2-0.5))
		}
	}
	return m
}

func window(x, y, z float32) Model {
	return group("window", x, y, z,
		part(Box(0.8, 1.2, 0.1), 0, 0, 0, glass),
		part(Box(0.02, 1.2, 0.01), 0, 0, 0.06, frame),
		part(Box(0.8, 0.02, 0.01), 0, 0, 0.06, frame),
	)
}

func door(x, y, z float32) Model {
	return group("door", x, y, z,
		part(Box(1, 2, 0.1), 0, 0, 0, wood),
		part(Sphere(0.08), 0.3, 0, 0.06, gold),
	)
}

func balcony(x, y, z float32) Model {
	return group("balcony", x, y, z,
		part(Box(2, 0.1, 1.5), 0, 0, 0.8, slab),
		part(Box(2, 1, 0.05), 0, 0.5, 1.4, railing),
		part(Cylinder(0.15, 0.15, 0.3), -0.7, 0.2, 1.3, pot),
		part(Sphere(0.2), -0.7, 0.45, 1.3, rgb(0xFF69B4)),
		part(Cylinder(0.15, 0.15, 0.3), 0.7, 0.2, 1.3, pot),
		part(Sphere(0.2), 0.7, 0.45, 1.3, rgb(0xFF1493)),
	)
}

func groceryModel(r sim.Rand) Model {
	front := grocery.d/2 + 0.05
	m := group("grocery", grocery.x, 0, grocery.z,
		part(Box(grocery.w, grocery.h, grocery.d), 0, grocery.h/2, 0, brown),
	)
	m.Children = append(m.Children,
		window(-1.5, 1.8, front),
		window(1.5, 1.8, front),
		door(0, 1, front),
		crate("cucumbers", -1.5, cucumbers(r)),
		crate("tomatoes", 0, tomatoes(r)),
		crate("bananas", 1.5, bananas(r)),
	)
	return m
}

// crate places a produce box in front of the grocery; produce offsets are
// relative to the crate's center on the ground.
func crate(name string, x float32, produce []Part) Model {
	m := group(name, x, 0, 3, part(Box(0.8, 0.6, 0.8), 0, 0.3, 0, wood))
	m.Parts = append(m.Parts, produce...)
	return m
}

func cucumbers(r sim.Rand) []Part {
	out := make([]Part, 0, 5)
	for i := 0; i < 5; i++ {
		p := part(Cylinder(0.08, 0.08, 0.4), spread(r, 0.4), 0.6+float32(i)*0.15, spread(r, 0.4), leaves)
		p.Rotation = Vec3{
			X: float32(r.Float64() * math.Pi),
			Y: float32(r.Float64() * math.Pi),
			Z: float32(r.Float64() * math.Pi),
		}
		out = append(out, p)
	}
	return out
}

func tomatoes(r sim.Rand) []Part {
	out := make([]Part, 0, 6)
	for i := 0; i < 6; i++ {
		out = append(out, part(Sphere(0.12), spread(r, 0.4), 0.6+float32(i%3)*0.2, spread(r, 0.4), rgb(0xFF4444)))
	}
	return out
}

func bananas(r sim.Rand) []Part {
	out := make([]Part, 0, 4)
	for i := 0; i < 4; i++ {
		p := part(Cylinder(0.06, 0.08, 0.5), spread(r, 0.3), 0.6+float32(i)*0.15, spread(r, 0.3), laneMark)
		p.Rotation.Z = math.Pi / 4
		out = append(out, p)
	}
	return out
}

func park() Model {
	m := group("park", 0, 0, 0, part(Plane(12, 12), 15, 0.02, -10, parkGrass))
	for _, p := range [][2]float32{{12, -8}, {18, -12}, {15, -7}, {19, -10}, {13, -13}, {17, -8}} {
		m.Children = append(m.Children, group("tree", p[0], 0, p[1],
			part(Cylinder(0.25, 0.3, 2.4), 0, 1.2, 0, wood),
			part(Cone(1.5, 3), 0, 3, 0, leaves),
		))
	}
	return m
}

func trafficLight() Model {
	return group("traffic-light", 5, 0, 8,
		part(Cylinder(0.1, 0.1, 4), 0, 2, 0, frame),
		part(Box(0.4, 1.2, 0.3), 0, 4.5, 0, rgb(0x222222)),
		part(Disc(0.12), 0, 5, 0.16, rgb(0xFF0000)),
		part(Disc(0.12), 0, 4.5, 0.16, laneMark),
		part(Disc(0.12), 0, 4, 0.16, rgb(0x00FF00)),
	)
}

func cafeModel() Model {
	front := cafe.d/2 + 0.05
	m := group("cafe", cafe.x, 0, cafe.z, part(Box(cafe.w, cafe.h, cafe.d), 0, cafe.h/2, 0, pot))
	m.Children = append(m.Children,
		window(-1, 1.5, front),
		window(1, 1.5, front),
		door(0, 1, front),
	)
	for _, p := range [][2]float32{{-1.5, 2.5}, {1.5, 2.5}, {0, 3.5}} {
		m.Children = append(m.Children, cafeTable(p[0], p[1]))
	}
	return m
}

func cafeTable(x, z float32) Model {
	m := group("table", x, 0, z,
		part(Cylinder(0.4, 0.4, 0.05), 0, 0.4, 0, white),
		part(Cylinder(0.05, 0.05, 0.4), 0, 0.2, 0, slab),
	)
	for _, c := range [][2]float32{{0.5, 0}, {-0.5, 0}, {0, 0.5}, {0, -0.5}} {
		m.Children = append(m.Children, group("chair", c[0], 0.25, c[1],
			part(Box(0.3, 0.05, 0.3), 0, 0, 0, brown),
			part(Box(0.3, 0.4, 0.05), 0, 0.25, -0.1, brown),
		))
	}
	return m
}

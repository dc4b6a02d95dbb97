package sim

// DefaultObstacles are the building footprints walkers avoid. Order matters: the
// first overlapping footprint decides a bounce.
func DefaultObstacles() []Obstacle {
	return []Obstacle{
		{Name: "west-apartments", X: -15, Z: -5, Width: 5, Depth: 5},
		{Name: "east-tower", X: 15, Z: 10, Width: 4, Depth: 4},
		{Name: "north-west-block", X: -15, Z: 15, Width: 6, Depth: 6},
		{Name: "grocery", X: 10, Z: 15, Width: 5, Depth: 4},
		{Name: "high-rise", X: -8, Z: -12, Width: 12, Depth: 8},
		{Name: "kiosk", X: 18, Z: -8, Width: 4, Depth: 3},
		{Name: "depot", X: 18, Z: -18, Width: 8, Depth: 6},
	}
}

// DefaultWalkers are the five people patrolling the city.
func DefaultWalkers() []WalkerSpec {
	return []WalkerSpec{
		{
			ID:     1,
			Start:  Vec2{X: -5, Z: 5},
			Speed:  0.8,
			Patrol: Bounds{MinX: -10, MaxX: -2, MinZ: 0, MaxZ: 10},
			Look:   Look{Hair: HairLong, Sweater: true},
		},
		{
			ID:     2,
			Start:  Vec2{X: 5, Z: -3},
			Speed:  1.2,
			Patrol: Bounds{MinX: 2, MaxX: 10, MinZ: -8, MaxZ: 5},
			Look:   Look{Hair: HairShort},
		},
		{
			ID:     3,
			Start:  Vec2{X: -3, Z: -5},
			Speed:  0.6,
			Patrol: Bounds{MinX: -8, MaxX: 0, MinZ: -10, MaxZ: 0},
			Look:   Look{Hair: HairLong},
		},
		{
			ID:     4,
			Start:  Vec2{X: 4, Z: 8},
			Speed:  1.0,
			Patrol: Bounds{MinX: 0, MaxX: 8, MinZ: 5, MaxZ: 15},
			Look:   Look{Hair: HairShort},
		},
		{
			// Starts on the free strip south of the high-rise footprint.
			ID:     5,
			Start:  Vec2{X: -7, Z: -6},
			Speed:  0.9,
			Patrol: Bounds{MinX: -12, MaxX: -2, MinZ: -15, MaxZ: -5},
			Look:   Look{Hair: HairLong},
		},
	}
}

package systems

import (
	"math/rand"

	"ebiten-invaders/config"
	"ebiten-invaders/ecs"
	"ebiten-invaders/spawners"
)

const (
	testWinW = float64(config.WindowWidth)
	testWinH = float64(config.WindowHeight)

	testDT = 1.0 / 60.0
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// newTestWorld builds a fresh world and a spawner bound to it
func newTestWorld() (*ecs.World, *spawners.EntitySpawner) {
	world := ecs.NewWorld()
	spawner := spawners.NewEntitySpawner(world, testWinW, testWinH)
	return world, spawner
}

package components

import (
	"ebiten-invaders/ecs"
)

// Define component IDs for our game
const (
	Position ecs.ComponentID = iota
	Velocity
	SpriteSize
	Movable
	Laser
	FromPlayer
	FromEnemy
	Player
	Enemy
	Invincible
	Explosion
	ExplosionToSpawn
	ExplosionTimer
	Formation
)

// PositionComponent stores the entity transform: a 2D translation in
// world coordinates (origin at the window center, +Y up), a Z depth used
// only for draw ordering, and a uniform sprite scale.
type PositionComponent struct {
	X, Y  float64
	Z     float64
	Scale float64
}

// VelocityComponent stores a direction vector, unit-ish, that the movement
// system scales by the base speed. Set by input translation for the player
// and at spawn time for lasers; integrators only read it.
type VelocityComponent struct {
	X, Y float64
}

// SpriteSizeComponent stores the unscaled sprite extent used for collision
type SpriteSizeComponent struct {
	W, H float64
}

// MovableComponent marks an entity as driven by the linear movement system
type MovableComponent struct {
	AutoDespawn bool // destroy once outside the playfield plus margin
}

// LaserComponent marks an entity as a laser projectile
type LaserComponent struct{}

// FromPlayerComponent marks a projectile as player-fired
type FromPlayerComponent struct{}

// FromEnemyComponent marks a projectile as enemy-fired
type FromEnemyComponent struct{}

// PlayerComponent marks the player entity
type PlayerComponent struct{}

// EnemyComponent marks an enemy entity
type EnemyComponent struct{}

// InvincibleComponent shields the player right after respawn; the lifecycle
// system counts Remaining down and detaches the component at zero.
type InvincibleComponent struct {
	Remaining float64 // seconds
}

// ExplosionComponent is the animated explosion; FrameIndex walks the sheet
type ExplosionComponent struct {
	FrameIndex int
}

// ExplosionToSpawnComponent is the transient "something died here" marker;
// the explosion system replaces it with an animated Explosion entity.
type ExplosionToSpawnComponent struct {
	X, Y, Z float64
}

// ExplosionTimerComponent is a repeating timer driving frame advance
type ExplosionTimerComponent struct {
	Interval float64 // seconds between frames
	Elapsed  float64
}

// NewExplosionTimerComponent creates the standard explosion frame timer
func NewExplosionTimerComponent(interval float64) *ExplosionTimerComponent {
	return &ExplosionTimerComponent{Interval: interval}
}

// Tick advances the timer and returns how many frame boundaries elapsed
func (t *ExplosionTimerComponent) Tick(dt float64) int {
	t.Elapsed += dt
	ticks := 0
	for t.Elapsed >= t.Interval {
		t.Elapsed -= t.Interval
		ticks++
	}
	return ticks
}

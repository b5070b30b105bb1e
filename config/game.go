package config

import "time"

// Gameplay constants
const (
	// SpriteScale is the uniform scale applied to every sprite.
	SpriteScale = 0.5

	// BaseSpeed is the reference velocity scalar (pixels per second) from
	// which player, laser and enemy speeds are derived.
	BaseSpeed = 500.0

	// PlayerRespawnDelay is how long the player stays dead before the
	// respawn check brings them back.
	PlayerRespawnDelay = 2 * time.Second

	// PlayerRespawnCheckInterval is the cadence of the respawn check.
	PlayerRespawnCheckInterval = 500 * time.Millisecond

	// InvincibleDuration is the post-respawn grace period.
	InvincibleDuration = 2.0 // seconds

	// EnemyMax caps the live enemy population.
	EnemyMax = 2

	// FormationMembersMax is how many enemies share one formation template
	// before a fresh template is drawn.
	FormationMembersMax = 2

	// EnemySpawnInterval is the cadence of the enemy spawn step.
	EnemySpawnInterval = 1.0 // seconds

	// EnemyFireChance is the per-evaluation probability that every live
	// enemy fires (roughly once a second at 60 evaluations per second).
	EnemyFireChance = 1.0 / 60.0

	// DespawnMargin is how far past the playfield edge an auto-despawn
	// entity may travel before it is destroyed.
	DespawnMargin = 200.0

	// FormationChangeInterval is how often the drift rates re-roll.
	FormationChangeInterval = 0.5 // seconds
)

// Explosion animation
const (
	ExplosionFrameCount = 16
	ExplosionFrameTime  = 0.05 // seconds per frame
	ExplosionCellSize   = 64   // pixels, 4x4 sheet
	ExplosionSheetCols  = 4
)

// Unscaled sprite sizes in pixels, used for collision extents.
const (
	PlayerWidth  = 144.0
	PlayerHeight = 75.0

	PlayerLaserWidth  = 9.0
	PlayerLaserHeight = 54.0

	EnemyWidth  = 144.0
	EnemyHeight = 75.0

	EnemyLaserWidth  = 17.0
	EnemyLaserHeight = 55.0
)

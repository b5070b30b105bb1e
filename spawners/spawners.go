package spawners

import (
	"ebiten-invaders/components"
	"ebiten-invaders/config"
	"ebiten-invaders/ecs"
)

// EntitySpawner manages the creation of game entities. Each Create method
// issues the full component bundle for one entity kind; systems never
// attach spawn-time components themselves.
type EntitySpawner struct {
	world      *ecs.World
	winW, winH float64
}

// NewEntitySpawner creates a new entity spawner for the given playfield
func NewEntitySpawner(world *ecs.World, winW, winH float64) *EntitySpawner {
	return &EntitySpawner{world: world, winW: winW, winH: winH}
}

// CreatePlayer creates the player entity at bottom-center with zero
// velocity and a fresh invincibility window
func (s *EntitySpawner) CreatePlayer() *ecs.Entity {
	playerEntity := s.world.CreateEntity()
	playerEntity.AddTag("player")
	s.world.TagEntity(playerEntity.ID, "player")

	bottom := -s.winH / 2.
	s.world.AddComponent(playerEntity.ID, components.Position, &components.PositionComponent{
		X:     0,
		Y:     bottom + config.PlayerHeight/2.*config.SpriteScale + 5.,
		Z:     10,
		Scale: config.SpriteScale,
	})
	s.world.AddComponent(playerEntity.ID, components.SpriteSize, &components.SpriteSizeComponent{
		W: config.PlayerWidth,
		H: config.PlayerHeight,
	})
	s.world.AddComponent(playerEntity.ID, components.Player, &components.PlayerComponent{})
	s.world.AddComponent(playerEntity.ID, components.Velocity, &components.VelocityComponent{})
	s.world.AddComponent(playerEntity.ID, components.Movable, &components.MovableComponent{
		AutoDespawn: false,
	})
	s.world.AddComponent(playerEntity.ID, components.Invincible, &components.InvincibleComponent{
		Remaining: config.InvincibleDuration,
	})

	return playerEntity
}

// CreateEnemy creates an enemy entity at its formation's start point
func (s *EntitySpawner) CreateEnemy(formation *components.FormationComponent) *ecs.Entity {
	enemyEntity := s.world.CreateEntity()
	enemyEntity.AddTag("enemy")
	s.world.TagEntity(enemyEntity.ID, "enemy")

	s.world.AddComponent(enemyEntity.ID, components.Position, &components.PositionComponent{
		X:     formation.StartX,
		Y:     formation.StartY,
		Z:     10,
		Scale: config.SpriteScale,
	})
	s.world.AddComponent(enemyEntity.ID, components.SpriteSize, &components.SpriteSizeComponent{
		W: config.EnemyWidth,
		H: config.EnemyHeight,
	})
	s.world.AddComponent(enemyEntity.ID, components.Enemy, &components.EnemyComponent{})
	s.world.AddComponent(enemyEntity.ID, components.Formation, formation)

	return enemyEntity
}

// CreatePlayerLaser creates one upward laser at the given muzzle position
func (s *EntitySpawner) CreatePlayerLaser(x, y float64) *ecs.Entity {
	laserEntity := s.world.CreateEntity()

	s.world.AddComponent(laserEntity.ID, components.Position, &components.PositionComponent{
		X:     x,
		Y:     y,
		Z:     0,
		Scale: config.SpriteScale,
	})
	s.world.AddComponent(laserEntity.ID, components.SpriteSize, &components.SpriteSizeComponent{
		W: config.PlayerLaserWidth,
		H: config.PlayerLaserHeight,
	})
	s.world.AddComponent(laserEntity.ID, components.Laser, &components.LaserComponent{})
	s.world.AddComponent(laserEntity.ID, components.FromPlayer, &components.FromPlayerComponent{})
	s.world.AddComponent(laserEntity.ID, components.Movable, &components.MovableComponent{
		AutoDespawn: true,
	})
	s.world.AddComponent(laserEntity.ID, components.Velocity, &components.VelocityComponent{X: 0, Y: 1})

	return laserEntity
}

// CreateEnemyLaser creates one downward laser just below the enemy muzzle
func (s *EntitySpawner) CreateEnemyLaser(x, y float64) *ecs.Entity {
	laserEntity := s.world.CreateEntity()

	s.world.AddComponent(laserEntity.ID, components.Position, &components.PositionComponent{
		X:     x,
		Y:     y - 15.,
		Z:     0,
		Scale: config.SpriteScale,
	})
	s.world.AddComponent(laserEntity.ID, components.SpriteSize, &components.SpriteSizeComponent{
		W: config.EnemyLaserWidth,
		H: config.EnemyLaserHeight,
	})
	s.world.AddComponent(laserEntity.ID, components.Laser, &components.LaserComponent{})
	s.world.AddComponent(laserEntity.ID, components.FromEnemy, &components.FromEnemyComponent{})
	s.world.AddComponent(laserEntity.ID, components.Movable, &components.MovableComponent{
		AutoDespawn: true,
	})
	s.world.AddComponent(laserEntity.ID, components.Velocity, &components.VelocityComponent{X: 0, Y: -1})

	return laserEntity
}

// CreateExplosionMarker leaves a pending explosion at a kill site; the
// explosion system turns it into an animated entity
func (s *EntitySpawner) CreateExplosionMarker(x, y, z float64) *ecs.Entity {
	markerEntity := s.world.CreateEntity()

	s.world.AddComponent(markerEntity.ID, components.ExplosionToSpawn, &components.ExplosionToSpawnComponent{
		X: x, Y: y, Z: z,
	})

	return markerEntity
}

// CreateExplosion creates an animated explosion entity starting at frame 0
func (s *EntitySpawner) CreateExplosion(x, y, z float64) *ecs.Entity {
	explosionEntity := s.world.CreateEntity()

	s.world.AddComponent(explosionEntity.ID, components.Position, &components.PositionComponent{
		X: x, Y: y, Z: z,
		Scale: 1,
	})
	s.world.AddComponent(explosionEntity.ID, components.Explosion, &components.ExplosionComponent{})
	s.world.AddComponent(explosionEntity.ID, components.ExplosionTimer,
		components.NewExplosionTimerComponent(config.ExplosionFrameTime))

	return explosionEntity
}

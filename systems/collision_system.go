package systems

import (
	"math"

	"ebiten-invaders/components"
	"ebiten-invaders/ecs"
	"ebiten-invaders/spawners"
)

// CollisionSystem runs the two per-frame overlap passes: player lasers
// against enemies, and enemy lasers against the player. Overlaps use
// axis-aligned boxes built from the sprite size and the entity's scale.
// Destruction is immediate; a per-pass destroyed set guarantees each entity
// is destroyed at most once per frame even when it overlaps several
// counterparts.
type CollisionSystem struct {
	spawner     *spawners.EntitySpawner
	enemyCount  *EnemyCount
	playerState *PlayerState

	elapsed float64
}

// NewCollisionSystem creates a collision system
func NewCollisionSystem(spawner *spawners.EntitySpawner, enemyCount *EnemyCount,
	playerState *PlayerState) *CollisionSystem {
	return &CollisionSystem{
		spawner:     spawner,
		enemyCount:  enemyCount,
		playerState: playerState,
	}
}

// Update runs both overlap passes
func (s *CollisionSystem) Update(world *ecs.World, dt float64) {
	s.elapsed += dt
	s.playerLasersVsEnemies(world)
	s.enemyLasersVsPlayer(world)
}

// playerLasersVsEnemies destroys every (laser, enemy) pair that overlaps,
// decrements the population, leaves a pending explosion at the enemy's
// position and queues one destruction event per kill.
func (s *CollisionSystem) playerLasersVsEnemies(world *ecs.World) {
	lasers := world.GetEntitiesWithComponents(components.Laser, components.FromPlayer,
		components.Position, components.SpriteSize)
	enemies := world.GetEntitiesWithComponents(components.Enemy,
		components.Position, components.SpriteSize)

	despawned := make(map[ecs.EntityID]bool)

	for _, laser := range lasers {
		if despawned[laser.ID] {
			continue
		}

		laserPos, laserSize := positionAndSize(world, laser.ID)

		for _, enemy := range enemies {
			if despawned[enemy.ID] || despawned[laser.ID] {
				continue
			}

			enemyPos, enemySize := positionAndSize(world, enemy.ID)

			if !aabbOverlap(laserPos, laserSize, enemyPos, enemySize) {
				continue
			}

			world.RemoveEntity(enemy.ID)
			despawned[enemy.ID] = true
			s.enemyCount.Decrement()

			world.RemoveEntity(laser.ID)
			despawned[laser.ID] = true

			s.spawner.CreateExplosionMarker(enemyPos.X, enemyPos.Y, enemyPos.Z)

			world.QueueEvent(EnemyDestroyedEvent{
				EnemyID: enemy.ID,
				X:       enemyPos.X,
				Y:       enemyPos.Y,
			})
		}
	}
}

// enemyLasersVsPlayer tests every enemy laser against the live player, if
// any. The first overlap kills the player and stops the scan; the player
// dies at most once per frame. A player inside the invincibility window is
// excluded from the query and cannot be hit.
func (s *CollisionSystem) enemyLasersVsPlayer(world *ecs.World) {
	players := world.GetEntitiesWithComponentsExcluding(
		[]ecs.ComponentID{components.Player, components.Position, components.SpriteSize},
		components.Invincible,
	)
	if len(players) == 0 {
		return // dead or invincible player is a normal no-op
	}
	player := players[0]
	playerPos, playerSize := positionAndSize(world, player.ID)

	lasers := world.GetEntitiesWithComponents(components.Laser, components.FromEnemy,
		components.Position, components.SpriteSize)

	for _, laser := range lasers {
		laserPos, laserSize := positionAndSize(world, laser.ID)

		if !aabbOverlap(laserPos, laserSize, playerPos, playerSize) {
			continue
		}

		world.RemoveEntity(player.ID)
		s.playerState.Shot(s.elapsed)

		world.RemoveEntity(laser.ID)

		s.spawner.CreateExplosionMarker(playerPos.X, playerPos.Y, playerPos.Z)

		world.QueueEvent(PlayerDeathEvent{
			PlayerID: player.ID,
			X:        playerPos.X,
			Y:        playerPos.Y,
		})
		break
	}
}

// positionAndSize fetches the transform and collision extent of an entity
func positionAndSize(world *ecs.World, id ecs.EntityID) (*components.PositionComponent, *components.SpriteSizeComponent) {
	posComp, _ := world.GetComponent(id, components.Position)
	sizeComp, _ := world.GetComponent(id, components.SpriteSize)
	return posComp.(*components.PositionComponent), sizeComp.(*components.SpriteSizeComponent)
}

// aabbOverlap tests two axis-aligned boxes centered on the entity
// positions, with half extents of size * scale / 2
func aabbOverlap(posA *components.PositionComponent, sizeA *components.SpriteSizeComponent,
	posB *components.PositionComponent, sizeB *components.SpriteSizeComponent) bool {
	halfWA := sizeA.W * posA.Scale / 2.
	halfHA := sizeA.H * posA.Scale / 2.
	halfWB := sizeB.W * posB.Scale / 2.
	halfHB := sizeB.H * posB.Scale / 2.

	return math.Abs(posA.X-posB.X) <= halfWA+halfWB &&
		math.Abs(posA.Y-posB.Y) <= halfHA+halfHB
}

package systems

import (
	"ebiten-invaders/components"
	"ebiten-invaders/config"
	"ebiten-invaders/ecs"
	"ebiten-invaders/spawners"
)

// ExplosionSystem materializes pending explosion markers into animated
// explosion entities and advances their frame animation. An explosion
// self-destroys once its frame index walks past the end of the sheet; the
// animation never loops.
type ExplosionSystem struct {
	spawner *spawners.EntitySpawner
}

// NewExplosionSystem creates an explosion system
func NewExplosionSystem(spawner *spawners.EntitySpawner) *ExplosionSystem {
	return &ExplosionSystem{spawner: spawner}
}

// Update materializes markers, then animates live explosions
func (s *ExplosionSystem) Update(world *ecs.World, dt float64) {
	s.materialize(world)
	s.animate(world, dt)
}

// materialize replaces every pending marker with an animated explosion at
// the same position
func (s *ExplosionSystem) materialize(world *ecs.World) {
	for _, marker := range world.GetEntitiesWithComponent(components.ExplosionToSpawn) {
		pendingComp, _ := world.GetComponent(marker.ID, components.ExplosionToSpawn)
		pending := pendingComp.(*components.ExplosionToSpawnComponent)

		s.spawner.CreateExplosion(pending.X, pending.Y, pending.Z)
		world.RemoveEntity(marker.ID)
	}
}

// animate advances each explosion's repeating timer; every elapsed
// interval steps the frame index, and the entity is destroyed once the
// index reaches the sheet's frame count
func (s *ExplosionSystem) animate(world *ecs.World, dt float64) {
	for _, entity := range world.GetEntitiesWithComponents(components.Explosion, components.ExplosionTimer) {
		explComp, _ := world.GetComponent(entity.ID, components.Explosion)
		timerComp, _ := world.GetComponent(entity.ID, components.ExplosionTimer)

		explosion := explComp.(*components.ExplosionComponent)
		timer := timerComp.(*components.ExplosionTimerComponent)

		ticks := timer.Tick(dt)
		for i := 0; i < ticks; i++ {
			explosion.FrameIndex++
			if explosion.FrameIndex >= config.ExplosionFrameCount {
				world.RemoveEntity(entity.ID)
				break
			}
		}
	}
}

package systems

import (
	"ebiten-invaders/components"
	"ebiten-invaders/config"
	"ebiten-invaders/ecs"
)

// MovementSystem integrates straight-line motion for every velocity-driven
// entity (player, lasers) and despawns auto-despawn entities that leave the
// playfield. Enemies never carry Velocity/Movable; their positions belong
// to the enemy system's trajectory integrator.
type MovementSystem struct {
	winW, winH float64
}

// NewMovementSystem creates a movement system for the given playfield extent
func NewMovementSystem(winW, winH float64) *MovementSystem {
	return &MovementSystem{winW: winW, winH: winH}
}

// Update advances every movable entity by velocity * dt * base speed
func (s *MovementSystem) Update(world *ecs.World, dt float64) {
	entities := world.GetEntitiesWithComponents(components.Position, components.Velocity, components.Movable)

	for _, entity := range entities {
		posComp, _ := world.GetComponent(entity.ID, components.Position)
		velComp, _ := world.GetComponent(entity.ID, components.Velocity)
		movComp, _ := world.GetComponent(entity.ID, components.Movable)

		pos := posComp.(*components.PositionComponent)
		vel := velComp.(*components.VelocityComponent)
		mov := movComp.(*components.MovableComponent)

		pos.X += vel.X * dt * config.BaseSpeed
		pos.Y += vel.Y * dt * config.BaseSpeed

		if mov.AutoDespawn && s.outOfBounds(pos) {
			world.RemoveEntity(entity.ID)
		}
	}
}

// outOfBounds tests the position against the playfield rectangle expanded
// by the despawn margin on all sides
func (s *MovementSystem) outOfBounds(pos *components.PositionComponent) bool {
	margin := config.DespawnMargin
	return pos.Y > s.winH/2+margin ||
		pos.Y < -s.winH/2-margin ||
		pos.X > s.winW/2+margin ||
		pos.X < -s.winW/2-margin
}

package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-invaders/components"
	"ebiten-invaders/config"
)

func TestMovementIntegratesVelocity(t *testing.T) {
	world, spawner := newTestWorld()
	system := NewMovementSystem(testWinW, testWinH)

	laser := spawner.CreatePlayerLaser(10, 20)

	system.Update(world, 0.1)

	posComp, ok := world.GetComponent(laser.ID, components.Position)
	require.True(t, ok)
	pos := posComp.(*components.PositionComponent)

	// Velocity (0, 1) scaled by dt and the base speed
	assert.InDelta(t, 10., pos.X, 1e-9)
	assert.InDelta(t, 20.+0.1*config.BaseSpeed, pos.Y, 1e-9)
}

func TestMovementDespawnsBeyondMargin(t *testing.T) {
	world, spawner := newTestWorld()
	system := NewMovementSystem(testWinW, testWinH)

	laser := spawner.CreatePlayerLaser(0, 0)
	posComp, _ := world.GetComponent(laser.ID, components.Position)
	pos := posComp.(*components.PositionComponent)

	// One step short of the margin: stays alive
	pos.Y = testWinH/2 + config.DespawnMargin - 0.1*config.BaseSpeed
	system.Update(world, 0.1)
	assert.True(t, world.HasEntity(laser.ID))

	// The next step crosses the margin
	system.Update(world, 0.1)
	assert.False(t, world.HasEntity(laser.ID))
}

func TestMovementKeepsNonAutoDespawnEntities(t *testing.T) {
	world, spawner := newTestWorld()
	system := NewMovementSystem(testWinW, testWinH)

	player := spawner.CreatePlayer()
	velComp, _ := world.GetComponent(player.ID, components.Velocity)
	velComp.(*components.VelocityComponent).Y = 1

	posComp, _ := world.GetComponent(player.ID, components.Position)
	posComp.(*components.PositionComponent).Y = testWinH/2 + config.DespawnMargin + 100

	system.Update(world, 0.1)
	assert.True(t, world.HasEntity(player.ID), "auto_despawn=false entities never despawn on bounds")
}

func TestMovementIgnoresEnemies(t *testing.T) {
	world, spawner := newTestWorld()
	system := NewMovementSystem(testWinW, testWinH)

	enemy := spawner.CreateEnemy(&components.FormationComponent{StartX: 50, StartY: 60})

	system.Update(world, 0.1)

	posComp, _ := world.GetComponent(enemy.ID, components.Position)
	pos := posComp.(*components.PositionComponent)
	assert.Equal(t, 50., pos.X)
	assert.Equal(t, 60., pos.Y)
}

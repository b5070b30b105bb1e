package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-invaders/components"
	"ebiten-invaders/config"
)

func TestMarkerMaterializesIntoExplosion(t *testing.T) {
	world, spawner := newTestWorld()
	system := NewExplosionSystem(spawner)

	marker := spawner.CreateExplosionMarker(5, 6, 10)

	system.Update(world, 0)

	assert.False(t, world.HasEntity(marker.ID))

	explosions := world.GetEntitiesWithComponent(components.Explosion)
	require.Len(t, explosions, 1)
	explosion := explosions[0]

	posComp, _ := world.GetComponent(explosion.ID, components.Position)
	pos := posComp.(*components.PositionComponent)
	assert.Equal(t, 5., pos.X)
	assert.Equal(t, 6., pos.Y)
	assert.Equal(t, 10., pos.Z)

	explComp, _ := world.GetComponent(explosion.ID, components.Explosion)
	assert.Equal(t, 0, explComp.(*components.ExplosionComponent).FrameIndex)
}

func TestExplosionSurvivesAllButLastFrame(t *testing.T) {
	world, spawner := newTestWorld()
	system := NewExplosionSystem(spawner)

	explosion := spawner.CreateExplosion(0, 0, 0)

	for i := 0; i < config.ExplosionFrameCount-1; i++ {
		system.Update(world, config.ExplosionFrameTime)
	}

	require.True(t, world.HasEntity(explosion.ID))
	explComp, _ := world.GetComponent(explosion.ID, components.Explosion)
	assert.Equal(t, config.ExplosionFrameCount-1, explComp.(*components.ExplosionComponent).FrameIndex)
}

func TestExplosionSelfDestroysAfterLastFrame(t *testing.T) {
	world, spawner := newTestWorld()
	system := NewExplosionSystem(spawner)

	explosion := spawner.CreateExplosion(0, 0, 0)

	for i := 0; i < config.ExplosionFrameCount; i++ {
		system.Update(world, config.ExplosionFrameTime)
	}

	assert.False(t, world.HasEntity(explosion.ID))
}

func TestExplosionTimerBatchesMissedFrames(t *testing.T) {
	world, spawner := newTestWorld()
	system := NewExplosionSystem(spawner)

	explosion := spawner.CreateExplosion(0, 0, 0)

	// A single long delta advances as many frames as elapsed
	system.Update(world, 3*config.ExplosionFrameTime)

	explComp, _ := world.GetComponent(explosion.ID, components.Explosion)
	assert.Equal(t, 3, explComp.(*components.ExplosionComponent).FrameIndex)

	// And one huge delta finishes the animation outright
	system.Update(world, 10)
	assert.False(t, world.HasEntity(explosion.ID))
}

func TestSubFrameDeltaDoesNotAdvance(t *testing.T) {
	world, spawner := newTestWorld()
	system := NewExplosionSystem(spawner)

	explosion := spawner.CreateExplosion(0, 0, 0)

	system.Update(world, config.ExplosionFrameTime/2)

	explComp, _ := world.GetComponent(explosion.ID, components.Explosion)
	assert.Equal(t, 0, explComp.(*components.ExplosionComponent).FrameIndex)
}

package systems

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-invaders/components"
	"ebiten-invaders/config"
)

func TestRespawnWaitsForDelay(t *testing.T) {
	world, spawner := newTestWorld()
	playerState := NewPlayerState()
	system := NewPlayerSystem(spawner, playerState, &InputState{}, testWinW, testWinH)

	playerState.Shot(0)
	delay := config.PlayerRespawnDelay.Seconds()

	system.respawnCheck(world, delay-1e-6)
	assert.Empty(t, world.GetEntitiesWithComponent(components.Player))
	assert.False(t, playerState.On)

	system.respawnCheck(world, delay+1e-6)
	players := world.GetEntitiesWithComponent(components.Player)
	require.Len(t, players, 1)
	assert.True(t, playerState.On)
	assert.Equal(t, -1., playerState.LastDeath)
}

func TestRespawnTransformAndBundle(t *testing.T) {
	world, spawner := newTestWorld()
	playerState := NewPlayerState()
	system := NewPlayerSystem(spawner, playerState, &InputState{}, testWinW, testWinH)

	// Never-died player spawns on the first check
	system.respawnCheck(world, 0)
	players := world.GetEntitiesWithComponent(components.Player)
	require.Len(t, players, 1)
	player := players[0]

	posComp, _ := world.GetComponent(player.ID, components.Position)
	pos := posComp.(*components.PositionComponent)
	assert.Equal(t, 0., pos.X)
	assert.InDelta(t, -testWinH/2.+config.PlayerHeight/2.*config.SpriteScale+5., pos.Y, 1e-9)
	assert.Equal(t, 10., pos.Z)
	assert.Equal(t, config.SpriteScale, pos.Scale)

	velComp, _ := world.GetComponent(player.ID, components.Velocity)
	vel := velComp.(*components.VelocityComponent)
	assert.Zero(t, vel.X)
	assert.Zero(t, vel.Y)

	invComp, ok := world.GetComponent(player.ID, components.Invincible)
	require.True(t, ok, "respawned player carries the invincibility window")
	assert.Equal(t, config.InvincibleDuration, invComp.(*components.InvincibleComponent).Remaining)

	movComp, _ := world.GetComponent(player.ID, components.Movable)
	assert.False(t, movComp.(*components.MovableComponent).AutoDespawn)
}

func TestRespawnCheckIsIdempotentWhileAlive(t *testing.T) {
	world, spawner := newTestWorld()
	playerState := NewPlayerState()
	system := NewPlayerSystem(spawner, playerState, &InputState{}, testWinW, testWinH)

	system.respawnCheck(world, 0)
	system.respawnCheck(world, 1)
	system.respawnCheck(world, 2)

	assert.Len(t, world.GetEntitiesWithComponent(components.Player), 1)
}

func TestInvincibilityExpires(t *testing.T) {
	world, spawner := newTestWorld()
	playerState := NewPlayerState()
	system := NewPlayerSystem(spawner, playerState, &InputState{}, testWinW, testWinH)

	player := spawner.CreatePlayer()
	playerState.Spawned()

	system.Update(world, config.InvincibleDuration/2)
	assert.True(t, world.HasComponent(player.ID, components.Invincible))

	system.Update(world, config.InvincibleDuration/2)
	assert.False(t, world.HasComponent(player.ID, components.Invincible))
}

func TestInputTranslatesToNormalizedVelocity(t *testing.T) {
	world, spawner := newTestWorld()
	playerState := NewPlayerState()
	input := &InputState{Left: true, Up: true}
	system := NewPlayerSystem(spawner, playerState, input, testWinW, testWinH)

	player := spawner.CreatePlayer()
	playerState.Spawned()

	system.Update(world, testDT)

	velComp, _ := world.GetComponent(player.ID, components.Velocity)
	vel := velComp.(*components.VelocityComponent)
	inv := 1 / math.Sqrt2
	assert.InDelta(t, -inv, vel.X, 1e-9)
	assert.InDelta(t, inv, vel.Y, 1e-9)

	// Releasing the keys zeroes the velocity again
	input.Left, input.Up = false, false
	system.Update(world, testDT)
	assert.Zero(t, vel.X)
	assert.Zero(t, vel.Y)
}

func TestFireSpawnsTwinLasers(t *testing.T) {
	world, spawner := newTestWorld()
	playerState := NewPlayerState()
	input := &InputState{Fire: true}
	system := NewPlayerSystem(spawner, playerState, input, testWinW, testWinH)

	player := spawner.CreatePlayer()
	playerState.Spawned()

	posComp, _ := world.GetComponent(player.ID, components.Position)
	playerPos := posComp.(*components.PositionComponent)

	system.Update(world, testDT)

	lasers := world.GetEntitiesWithComponents(components.Laser, components.FromPlayer)
	require.Len(t, lasers, 2)

	offset := config.PlayerWidth/2.*config.SpriteScale - 5.
	xs := make(map[float64]bool)
	for _, laser := range lasers {
		lposComp, _ := world.GetComponent(laser.ID, components.Position)
		lpos := lposComp.(*components.PositionComponent)
		xs[lpos.X-playerPos.X] = true
		assert.InDelta(t, playerPos.Y+15., lpos.Y, 1e-9)

		velComp, _ := world.GetComponent(laser.ID, components.Velocity)
		vel := velComp.(*components.VelocityComponent)
		assert.Equal(t, 1., vel.Y)
	}
	assert.True(t, xs[offset])
	assert.True(t, xs[-offset])
}

func TestFireWithoutPlayerIsNoOp(t *testing.T) {
	world, spawner := newTestWorld()
	playerState := NewPlayerState()
	input := &InputState{Fire: true}
	system := NewPlayerSystem(spawner, playerState, input, testWinW, testWinH)

	system.Update(world, testDT)
	assert.Empty(t, world.GetEntitiesWithComponent(components.Laser))
}

func TestPlayerClampedToScreen(t *testing.T) {
	world, spawner := newTestWorld()
	playerState := NewPlayerState()
	system := NewPlayerSystem(spawner, playerState, &InputState{}, testWinW, testWinH)

	player := spawner.CreatePlayer()
	playerState.Spawned()

	posComp, _ := world.GetComponent(player.ID, components.Position)
	pos := posComp.(*components.PositionComponent)
	pos.X = testWinW // way off the right edge

	system.Update(world, testDT)

	halfW := config.PlayerWidth * config.SpriteScale / 2.
	assert.InDelta(t, testWinW/2.-halfW, pos.X, 1e-9)
}

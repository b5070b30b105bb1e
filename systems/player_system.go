package systems

import (
	"math"

	"ebiten-invaders/components"
	"ebiten-invaders/config"
	"ebiten-invaders/ecs"
	"ebiten-invaders/spawners"
)

// PlayerSpeed is the player's direction scale; the movement system
// multiplies it by the base speed.
const PlayerSpeed = 1.0

// PlayerSystem drives the player side of the frame: the dead→alive respawn
// state machine, the post-respawn invincibility window, translation of the
// frame's input state into velocity and laser fire, and the screen clamp.
type PlayerSystem struct {
	spawner     *spawners.EntitySpawner
	playerState *PlayerState
	input       *InputState

	winW, winH float64

	elapsed      float64
	respawnTimer float64
}

// NewPlayerSystem creates a player system
func NewPlayerSystem(spawner *spawners.EntitySpawner, playerState *PlayerState,
	input *InputState, winW, winH float64) *PlayerSystem {
	return &PlayerSystem{
		spawner:     spawner,
		playerState: playerState,
		input:       input,
		winW:        winW,
		winH:        winH,
	}
}

// Update runs the lifecycle passes and applies this frame's input
func (s *PlayerSystem) Update(world *ecs.World, dt float64) {
	s.elapsed += dt

	s.tickInvincibility(world, dt)

	// Respawn check runs on its own cadence, not every frame
	s.respawnTimer += dt
	if s.respawnTimer >= config.PlayerRespawnCheckInterval.Seconds() {
		s.respawnTimer = 0
		s.respawnCheck(world, s.elapsed)
	}

	s.applyInput(world)
	s.clampToScreen(world)
}

// tickInvincibility counts down every invincibility window and detaches
// the marker on expiry
func (s *PlayerSystem) tickInvincibility(world *ecs.World, dt float64) {
	for _, entity := range world.GetEntitiesWithComponent(components.Invincible) {
		invComp, _ := world.GetComponent(entity.ID, components.Invincible)
		inv := invComp.(*components.InvincibleComponent)

		inv.Remaining -= dt
		if inv.Remaining <= 0 {
			world.RemoveComponent(entity.ID, components.Invincible)
		}
	}
}

// respawnCheck spawns a new player once the respawn delay has passed since
// the recorded death. A never-died player (LastDeath < 0) spawns at once.
func (s *PlayerSystem) respawnCheck(world *ecs.World, now float64) {
	if s.playerState.On {
		return
	}
	if s.playerState.LastDeath >= 0 && now <= s.playerState.LastDeath+config.PlayerRespawnDelay.Seconds() {
		return
	}

	s.spawner.CreatePlayer()
	s.playerState.Spawned()
}

// applyInput turns held direction keys into the player's velocity and a
// fire edge into a pair of lasers
func (s *PlayerSystem) applyInput(world *ecs.World) {
	players := world.GetEntitiesWithComponents(components.Player, components.Position, components.Velocity)
	if len(players) == 0 {
		return // player is dead; nothing to steer
	}
	player := players[0]

	velComp, _ := world.GetComponent(player.ID, components.Velocity)
	vel := velComp.(*components.VelocityComponent)

	vx, vy := 0., 0.
	if s.input.Left {
		vx -= 1
	}
	if s.input.Right {
		vx += 1
	}
	if s.input.Up {
		vy += 1
	}
	if s.input.Down {
		vy -= 1
	}

	// Normalize so diagonal movement is no faster than straight
	if length := math.Sqrt(vx*vx + vy*vy); length > 0 {
		vx = vx / length * PlayerSpeed
		vy = vy / length * PlayerSpeed
	}

	vel.X = vx
	vel.Y = vy

	if s.input.Fire {
		posComp, _ := world.GetComponent(player.ID, components.Position)
		pos := posComp.(*components.PositionComponent)

		// Twin lasers, one from each wingtip
		xOffset := config.PlayerWidth/2.*config.SpriteScale - 5.
		s.spawner.CreatePlayerLaser(pos.X+xOffset, pos.Y+15.)
		s.spawner.CreatePlayerLaser(pos.X-xOffset, pos.Y+15.)
	}
}

// clampToScreen keeps the player's scaled sprite inside the window
func (s *PlayerSystem) clampToScreen(world *ecs.World) {
	players := world.GetEntitiesWithComponents(components.Player, components.Position, components.SpriteSize)
	if len(players) == 0 {
		return
	}
	player := players[0]

	posComp, _ := world.GetComponent(player.ID, components.Position)
	sizeComp, _ := world.GetComponent(player.ID, components.SpriteSize)

	pos := posComp.(*components.PositionComponent)
	size := sizeComp.(*components.SpriteSizeComponent)

	halfW := size.W * pos.Scale / 2.
	halfH := size.H * pos.Scale / 2.

	pos.X = clamp(pos.X, -s.winW/2.+halfW, s.winW/2.-halfW)
	pos.Y = clamp(pos.Y, -s.winH/2.+halfH, s.winH/2.-halfH)
}

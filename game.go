package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-invaders/assets"
	"ebiten-invaders/config"
	"ebiten-invaders/ecs"
	"ebiten-invaders/generation"
	"ebiten-invaders/spawners"
	"ebiten-invaders/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	world        *ecs.World
	renderSystem *systems.RenderSystem
	audioSystem  *systems.AudioSystem
	input        *systems.InputState
	playerState  *systems.PlayerState
	enemyCount   *systems.EnemyCount
}

// NewGame creates a new game instance
func NewGame() *Game {
	// Initialize ECS world
	world := ecs.NewWorld()

	winW, winH := float64(config.WindowWidth), float64(config.WindowHeight)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Shared state passed into the systems that need it
	playerState := systems.NewPlayerState()
	enemyCount := systems.NewEnemyCount()
	input := &systems.InputState{}

	entitySpawner := spawners.NewEntitySpawner(world, winW, winH)
	formationMaker := generation.NewFormationMaker(rng)

	// Initialize all systems
	playerSystem := systems.NewPlayerSystem(entitySpawner, playerState, input, winW, winH)
	movementSystem := systems.NewMovementSystem(winW, winH)
	enemySystem := systems.NewEnemySystem(entitySpawner, formationMaker, enemyCount, rng, winW, winH)
	collisionSystem := systems.NewCollisionSystem(entitySpawner, enemyCount, playerState)
	explosionSystem := systems.NewExplosionSystem(entitySpawner)

	// Register systems with the world in per-frame execution order:
	// lifecycle, linear motion, trajectories, collisions, explosions
	world.AddSystem(playerSystem)
	world.AddSystem(movementSystem)
	world.AddSystem(enemySystem)
	world.AddSystem(collisionSystem)
	world.AddSystem(explosionSystem)

	// Presentation runs outside the world's system list
	renderSystem := systems.NewRenderSystem(assets.NewSprites(), winW, winH)
	audioSystem := systems.NewAudioSystem()
	audioSystem.Initialize(world)

	if err := audioSystem.PlayBGM("bgm.ogg"); err != nil {
		// The game is fully playable without the optional soundtrack
		log.Printf("bgm disabled: %v", err)
	}

	return &Game{
		world:        world,
		renderSystem: renderSystem,
		audioSystem:  audioSystem,
		input:        input,
		playerState:  playerState,
		enemyCount:   enemyCount,
	}
}

// Update updates the game state.
func (g *Game) Update() error {
	g.readInput()

	// Update all systems
	g.world.Update(1.0 / 60.0) // passing approximate dt value

	// Drain the frame's queued events (one audio cue per kill)
	g.world.GetEventManager().DispatchQueued()

	return nil
}

// readInput translates raw keyboard state into this frame's input signals
func (g *Game) readInput() {
	g.input.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	g.input.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	g.input.Up = ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	g.input.Down = ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	g.input.Fire = inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(g.world, screen)

	// Print FPS for debugging
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()))
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

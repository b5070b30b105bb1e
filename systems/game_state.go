package systems

import "fmt"

// PlayerState tracks the player lifecycle across death and respawn. One
// instance exists per game; it is passed by reference into the systems that
// need it (player lifecycle, collision) rather than held as a global.
type PlayerState struct {
	// On is true while a player entity is alive in the world
	On bool
	// LastDeath is the elapsed game time of the last death in seconds,
	// or -1 if the player has never died (first spawn happens immediately)
	LastDeath float64
}

// NewPlayerState creates the initial state: no player alive, no death on
// record, so the first respawn check spawns the player right away.
func NewPlayerState() *PlayerState {
	return &PlayerState{On: false, LastDeath: -1}
}

// Shot marks the player dead at the given elapsed time
func (s *PlayerState) Shot(now float64) {
	s.On = false
	s.LastDeath = now
}

// Spawned marks the player alive again
func (s *PlayerState) Spawned() {
	s.On = true
	s.LastDeath = -1
}

// EnemyCount is the live enemy population. Spawning is gated on it staying
// under the cap; every confirmed kill decrements it.
type EnemyCount struct {
	count int
}

// NewEnemyCount creates a zeroed population counter
func NewEnemyCount() *EnemyCount {
	return &EnemyCount{}
}

// Count returns the current population
func (c *EnemyCount) Count() int {
	return c.count
}

// Increment records a successful enemy spawn
func (c *EnemyCount) Increment() {
	c.count++
}

// Decrement records an enemy destruction. Destruction only ever follows a
// confirmed live enemy, so going negative is a programming error.
func (c *EnemyCount) Decrement() {
	if c.count == 0 {
		panic(fmt.Sprintf("enemy count underflow (count=%d)", c.count))
	}
	c.count--
}

// InputState carries the discrete key-state signals for one frame. The
// outer game loop translates raw keyboard state into it; the player system
// consumes it. Held keys are level signals, Fire is a just-pressed edge.
type InputState struct {
	Left, Right bool
	Up, Down    bool
	Fire        bool
}

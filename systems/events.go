package systems

import (
	"ebiten-invaders/ecs"
)

// Event type constants
const (
	EventEnemyDestroyed ecs.EventType = "enemy_destroyed"
	EventPlayerDeath    ecs.EventType = "player_death"
)

// EnemyDestroyedEvent is queued once per confirmed enemy kill. It is
// dispatched at the end of the frame so consumers (the audio system) stay
// decoupled from the collision pass; N simultaneous kills queue N events.
type EnemyDestroyedEvent struct {
	EnemyID ecs.EntityID // Enemy that was destroyed
	X, Y    float64      // Position of the kill
}

// Type returns the event type
func (e EnemyDestroyedEvent) Type() ecs.EventType {
	return EventEnemyDestroyed
}

// PlayerDeathEvent is queued when an enemy laser destroys the player
type PlayerDeathEvent struct {
	PlayerID ecs.EntityID // Player entity that died
	X, Y     float64      // Position of the death
}

// Type returns the event type
func (e PlayerDeathEvent) Type() ecs.EventType {
	return EventPlayerDeath
}

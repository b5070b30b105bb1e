package ecs

// System defines an interface for processing entities with specific
// components. Systems run to completion once per simulated frame, in the
// order they were registered with the world.
type System interface {
	// Update is called each frame with the frame delta in seconds
	Update(world *World, dt float64)
}

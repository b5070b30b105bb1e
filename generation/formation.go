package generation

import (
	"math"
	"math/rand"

	"ebiten-invaders/components"
	"ebiten-invaders/config"
)

// FormationMaker produces flight-path parameters for newly spawned enemies.
// A batch of config.FormationMembersMax enemies shares one template, so a
// cohort flies the same path offset only by spawn order; once the batch is
// full the next Make call draws a fresh template.
type FormationMaker struct {
	rng             *rand.Rand
	currentTemplate *components.FormationComponent
	currentMembers  int
}

// NewFormationMaker creates a formation maker using the given random
// source. The source is injected so tests can seed it.
func NewFormationMaker(rng *rand.Rand) *FormationMaker {
	return &FormationMaker{rng: rng}
}

// Make returns the formation for the next enemy to spawn: a clone of the
// live template while the batch has room, otherwise a freshly drawn one.
func (m *FormationMaker) Make(winW, winH float64) *components.FormationComponent {
	if m.currentTemplate != nil && m.currentMembers < config.FormationMembersMax {
		m.currentMembers++
		return m.currentTemplate.Clone()
	}

	formation := m.roll(winW, winH)

	// Store as template and count this member against the new batch
	m.currentTemplate = formation.Clone()
	m.currentMembers = 1

	return formation
}

// roll draws a brand new formation
func (m *FormationMaker) roll(winW, winH float64) *components.FormationComponent {
	rng := m.rng

	// Start on one of the two vertical screen edges, just off screen
	wSpan := winW/2. + 100.
	hSpan := winH/2. + 100.
	startX := wSpan
	if rng.Float64() < 0.5 {
		startX = -wSpan
	}
	startY := rng.Float64()*(2*hSpan) - hSpan

	// Pivot inside the inner quarter-width, biased to the upper third
	pivotSpanX := winW / 4.
	pivotSpanY := winH/3. - 50.
	pivotX := rng.Float64()*(2*pivotSpanX) - pivotSpanX
	pivotY := rng.Float64() * pivotSpanY

	radiusX := 80. + rng.Float64()*70.
	radiusY := 100.

	// Initial angle: bearing from start point to pivot
	angle := math.Atan2(startY-pivotY, startX-pivotX)

	formation := &components.FormationComponent{
		StartX:  startX,
		StartY:  startY,
		PivotX:  pivotX,
		PivotY:  pivotY,
		RadiusX: radiusX,
		RadiusY: radiusY,
		Speed:   config.BaseSpeed,
		Angle:   angle,
	}
	RollDeltas(rng, formation)

	return formation
}

// RollDeltas re-rolls the formation's drift rates: pivot within ±20/s,
// radius within ±10/s, speed within ±10/s. Used both at generation time and
// on the trajectory integrator's re-roll cadence.
func RollDeltas(rng *rand.Rand, f *components.FormationComponent) {
	f.PivotDeltaX = rng.Float64()*40. - 20.
	f.PivotDeltaY = rng.Float64()*40. - 20.
	f.RadiusDeltaX = rng.Float64()*20. - 10.
	f.RadiusDeltaY = rng.Float64()*20. - 10.
	f.SpeedDelta = rng.Float64()*20. - 10.
}

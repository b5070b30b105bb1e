package systems

import (
	"math"
	"math/rand"

	"ebiten-invaders/components"
	"ebiten-invaders/config"
	"ebiten-invaders/ecs"
	"ebiten-invaders/generation"
	"ebiten-invaders/spawners"
)

// EnemySystem owns every enemy-side concern of the frame: spawning on a
// fixed cadence (population-capped, formation-templated), random fire, and
// the trajectory integration that moves each enemy along its drifting
// elliptical path.
type EnemySystem struct {
	spawner        *spawners.EntitySpawner
	formationMaker *generation.FormationMaker
	enemyCount     *EnemyCount
	rng            *rand.Rand

	winW, winH float64
	spawnTimer float64
}

// NewEnemySystem creates an enemy system. The random source drives both the
// fire criteria and the formation drift re-rolls; inject a seeded one for
// reproducible tests.
func NewEnemySystem(spawner *spawners.EntitySpawner, formationMaker *generation.FormationMaker,
	enemyCount *EnemyCount, rng *rand.Rand, winW, winH float64) *EnemySystem {
	return &EnemySystem{
		spawner:        spawner,
		formationMaker: formationMaker,
		enemyCount:     enemyCount,
		rng:            rng,
		winW:           winW,
		winH:           winH,
	}
}

// Update runs the spawn cadence, the fire roll and the trajectory step
func (s *EnemySystem) Update(world *ecs.World, dt float64) {
	s.spawnTimer += dt
	if s.spawnTimer >= config.EnemySpawnInterval {
		s.spawnTimer -= config.EnemySpawnInterval
		s.spawnEnemy(world)
	}

	if s.rng.Float64() < config.EnemyFireChance {
		s.fireAll(world)
	}

	s.integrateTrajectories(world, dt)
}

// spawnEnemy creates one enemy from the next formation, unless the
// population cap is reached
func (s *EnemySystem) spawnEnemy(world *ecs.World) {
	if s.enemyCount.Count() >= config.EnemyMax {
		return
	}

	formation := s.formationMaker.Make(s.winW, s.winH)
	s.spawner.CreateEnemy(formation)
	s.enemyCount.Increment()
}

// fireAll makes every live enemy fire one laser downward
func (s *EnemySystem) fireAll(world *ecs.World) {
	for _, enemy := range world.GetEntitiesWithComponents(components.Enemy, components.Position) {
		posComp, _ := world.GetComponent(enemy.ID, components.Position)
		pos := posComp.(*components.PositionComponent)
		s.spawner.CreateEnemyLaser(pos.X, pos.Y)
	}
}

// integrateTrajectories advances every formation and tracks each enemy
// toward its point on the ellipse
func (s *EnemySystem) integrateTrajectories(world *ecs.World, dt float64) {
	for _, enemy := range world.GetEntitiesWithComponents(components.Enemy, components.Position, components.Formation) {
		posComp, _ := world.GetComponent(enemy.ID, components.Position)
		formComp, _ := world.GetComponent(enemy.ID, components.Formation)

		pos := posComp.(*components.PositionComponent)
		formation := formComp.(*components.FormationComponent)

		s.driftParameters(formation, dt)
		s.trackEllipse(pos, formation, dt)
	}
}

// driftParameters applies the slow "breathing" of the ellipse: re-roll the
// drift rates on a fixed cadence, integrate them, then clamp everything
// back into its invariant range.
func (s *EnemySystem) driftParameters(f *components.FormationComponent, dt float64) {
	f.ChangeTimer += dt
	if f.ChangeTimer > config.FormationChangeInterval {
		generation.RollDeltas(s.rng, f)
		f.ChangeTimer = 0
	}

	f.PivotX += f.PivotDeltaX * dt
	f.PivotY += f.PivotDeltaY * dt
	f.RadiusX += f.RadiusDeltaX * dt
	f.RadiusY += f.RadiusDeltaY * dt
	f.Speed += f.SpeedDelta * dt

	wSpan := s.winW / 4.
	hSpan := s.winH/3. - 50.
	f.PivotX = clamp(f.PivotX, -wSpan, wSpan)
	f.PivotY = clamp(f.PivotY, 0, hSpan)
	f.RadiusX = clamp(f.RadiusX, 50, 200)
	f.RadiusY = clamp(f.RadiusY, 50, 150)
	f.Speed = clamp(f.Speed, config.BaseSpeed*0.5, config.BaseSpeed*1.5)
}

// trackEllipse moves the enemy toward the point on the (possibly moved)
// ellipse at the next candidate angle, capping the step at speed*dt and
// never overshooting the target. The locked angle only advances once the
// enemy is close enough to the target, which keeps motion continuous when
// the ellipse has drifted away from the enemy's actual position.
func (s *EnemySystem) trackEllipse(pos *components.PositionComponent, f *components.FormationComponent, dt float64) {
	maxDistance := dt * f.Speed

	// Travel direction around the ellipse is fixed by the spawn side
	dir := -1.
	if f.StartX < 0 {
		dir = 1.
	}

	angle := f.Angle + dir*f.Speed*dt/(math.Min(f.RadiusX, f.RadiusY)*math.Pi/2.)

	// Target point on the ellipse at the candidate angle
	xDst := f.RadiusX*math.Cos(angle) + f.PivotX
	yDst := f.RadiusY*math.Sin(angle) + f.PivotY

	dx := pos.X - xDst
	dy := pos.Y - yDst
	distance := math.Sqrt(dx*dx + dy*dy)

	// A zero distance would divide to NaN; the step is simply zero
	distanceRatio := 0.
	if distance != 0 {
		distanceRatio = maxDistance / distance
	}

	// Step toward the target, clamped per axis so we never pass it
	x := pos.X - dx*distanceRatio
	if dx > 0 {
		x = math.Max(x, xDst)
	} else {
		x = math.Min(x, xDst)
	}
	y := pos.Y - dy*distanceRatio
	if dy > 0 {
		y = math.Max(y, yDst)
	} else {
		y = math.Min(y, yDst)
	}

	// Lock in the candidate angle only once the enemy has caught up
	if distance < maxDistance*f.Speed/20. {
		f.Angle = angle
	}

	pos.X = x
	pos.Y = y
}

// clamp bounds v to [lo, hi]
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package components

// FormationComponent is the per-enemy parametric description of an
// elliptical flight path. The enemy tracks toward a point on an ellipse
// centered at the pivot; pivot, radius and speed all drift slowly, and the
// drift rates themselves re-roll on a fixed cadence, so the path "breathes"
// over time without ever leaving its clamped ranges.
type FormationComponent struct {
	// StartX/StartY is the spawn point; the sign of StartX fixes the
	// direction of travel around the ellipse for the entity's lifetime.
	StartX, StartY float64

	// Ellipse center and semi-axes
	PivotX, PivotY   float64
	RadiusX, RadiusY float64

	// Speed along the path, pixels per second
	Speed float64

	// Angle is the last locked-in trajectory angle. It only advances once
	// the entity has caught up with the target point, which keeps motion
	// continuous when the ellipse has drifted away from the entity.
	Angle float64

	// ChangeTimer accumulates toward the next drift-rate re-roll
	ChangeTimer float64

	// Drift rates, re-rolled every FormationChangeInterval
	PivotDeltaX, PivotDeltaY   float64
	RadiusDeltaX, RadiusDeltaY float64
	SpeedDelta                 float64
}

// Clone returns a copy of the formation, used when a batch of enemies
// shares one template
func (f *FormationComponent) Clone() *FormationComponent {
	clone := *f
	return &clone
}

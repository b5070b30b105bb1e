package generation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-invaders/components"
	"ebiten-invaders/config"
)

const (
	testWinW = 598.0
	testWinH = 676.0
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func TestMakeSharesTemplateWithinBatch(t *testing.T) {
	maker := NewFormationMaker(testRNG())

	first := maker.Make(testWinW, testWinH)
	clones := make([]*components.FormationComponent, 0, config.FormationMembersMax-1)
	for i := 0; i < config.FormationMembersMax-1; i++ {
		clones = append(clones, maker.Make(testWinW, testWinH))
	}

	for _, clone := range clones {
		require.NotSame(t, first, clone)
		assert.Equal(t, first.StartX, clone.StartX)
		assert.Equal(t, first.StartY, clone.StartY)
		assert.Equal(t, first.PivotX, clone.PivotX)
		assert.Equal(t, first.PivotY, clone.PivotY)
		assert.Equal(t, first.RadiusX, clone.RadiusX)
		assert.Equal(t, first.RadiusY, clone.RadiusY)
	}
}

func TestMakeRollsFreshTemplateAfterBatchCap(t *testing.T) {
	maker := NewFormationMaker(testRNG())

	first := maker.Make(testWinW, testWinH)
	for i := 0; i < config.FormationMembersMax-1; i++ {
		maker.Make(testWinW, testWinH)
	}

	next := maker.Make(testWinW, testWinH)

	// A fresh draw is structurally different; continuous ranges make an
	// accidental match impossible in practice
	different := next.StartX != first.StartX ||
		next.StartY != first.StartY ||
		next.PivotX != first.PivotX ||
		next.PivotY != first.PivotY
	assert.True(t, different, "expected a structurally different formation after the batch cap")
}

func TestMakeRespectsRanges(t *testing.T) {
	maker := NewFormationMaker(testRNG())

	wSpan := testWinW/2. + 100.
	hSpan := testWinH/2. + 100.

	sawLeft, sawRight := false, false
	for i := 0; i < 200; i++ {
		f := maker.Make(testWinW, testWinH)

		// Start sits exactly on one of the two vertical edges
		assert.Equal(t, wSpan, math.Abs(f.StartX))
		if f.StartX < 0 {
			sawLeft = true
		} else {
			sawRight = true
		}
		assert.GreaterOrEqual(t, f.StartY, -hSpan)
		assert.LessOrEqual(t, f.StartY, hSpan)

		assert.GreaterOrEqual(t, f.PivotX, -testWinW/4.)
		assert.LessOrEqual(t, f.PivotX, testWinW/4.)
		assert.GreaterOrEqual(t, f.PivotY, 0.)
		assert.LessOrEqual(t, f.PivotY, testWinH/3.-50.)

		assert.GreaterOrEqual(t, f.RadiusX, 80.)
		assert.LessOrEqual(t, f.RadiusX, 150.)
		assert.Equal(t, 100., f.RadiusY)

		assert.Equal(t, config.BaseSpeed, f.Speed)

		// Initial angle is the bearing from start to pivot
		expected := math.Atan2(f.StartY-f.PivotY, f.StartX-f.PivotX)
		assert.InDelta(t, expected, f.Angle, 1e-9)

		assert.GreaterOrEqual(t, f.PivotDeltaX, -20.)
		assert.LessOrEqual(t, f.PivotDeltaX, 20.)
		assert.GreaterOrEqual(t, f.RadiusDeltaX, -10.)
		assert.LessOrEqual(t, f.RadiusDeltaX, 10.)
		assert.GreaterOrEqual(t, f.SpeedDelta, -10.)
		assert.LessOrEqual(t, f.SpeedDelta, 10.)

		assert.Zero(t, f.ChangeTimer)
	}

	assert.True(t, sawLeft, "expected some spawns on the left edge")
	assert.True(t, sawRight, "expected some spawns on the right edge")
}

func TestMakeIsReproducibleWithSameSeed(t *testing.T) {
	makerA := NewFormationMaker(rand.New(rand.NewSource(42)))
	makerB := NewFormationMaker(rand.New(rand.NewSource(42)))

	for i := 0; i < 20; i++ {
		a := makerA.Make(testWinW, testWinH)
		b := makerB.Make(testWinW, testWinH)
		assert.Equal(t, *a, *b)
	}
}

func TestRollDeltasStaysInRanges(t *testing.T) {
	rng := testRNG()
	f := &components.FormationComponent{}

	for i := 0; i < 100; i++ {
		RollDeltas(rng, f)
		assert.GreaterOrEqual(t, f.PivotDeltaX, -20.)
		assert.LessOrEqual(t, f.PivotDeltaX, 20.)
		assert.GreaterOrEqual(t, f.PivotDeltaY, -20.)
		assert.LessOrEqual(t, f.PivotDeltaY, 20.)
		assert.GreaterOrEqual(t, f.RadiusDeltaY, -10.)
		assert.LessOrEqual(t, f.RadiusDeltaY, 10.)
		assert.GreaterOrEqual(t, f.SpeedDelta, -10.)
		assert.LessOrEqual(t, f.SpeedDelta, 10.)
	}
}

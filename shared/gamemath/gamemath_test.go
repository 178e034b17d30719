package gamemath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 3.0, ClampSpeed(5, 3))
	assert.Equal(t, -3.0, ClampSpeed(-5, 3))
	assert.Equal(t, 1.0, ClampSpeed(1, 3))
}

func TestDecay(t *testing.T) {
	t.Run("single frame multiplies once", func(t *testing.T) {
		assert.InDelta(t, 1.88, Decay(2, 0.94, 1, 0.5), 1e-9)
	})
	t.Run("scaled frames compound", func(t *testing.T) {
		assert.InDelta(t, 2*0.94*0.94, Decay(2, 0.94, 2, 0.5), 1e-9)
	})
	t.Run("snaps below threshold", func(t *testing.T) {
		assert.Equal(t, 0.0, Decay(0.52, 0.94, 1, 0.5))
		assert.Equal(t, 0.0, Decay(-0.52, 0.94, 1, 0.5))
	})
}

func TestApproach(t *testing.T) {
	assert.InDelta(t, 2.0, Approach(0, 10, 0.2), 1e-9)
	assert.InDelta(t, 10.0, Approach(10, 10, 0.2), 1e-9)
}

func TestClassifySlope(t *testing.T) {
	angle := 0.3 // descends to the right
	assert.Equal(t, Downhill, ClassifySlope(angle, 2, 10, 0.1))
	assert.Equal(t, Uphill, ClassifySlope(angle, -2, 10, 0.1))
	assert.Equal(t, Uphill, ClassifySlope(-angle, 2, 10, 0.1))
	assert.Equal(t, Downhill, ClassifySlope(-angle, -2, 10, 0.1))
	assert.Equal(t, Level, ClassifySlope(angle, 0.05, 10, 0.1))
}

func TestSlopeFactor(t *testing.T) {
	limit := math.Pi / 3
	assert.InDelta(t, 0.5, SlopeFactor(-math.Pi/6, limit), 1e-9)
	assert.Equal(t, 0.0, SlopeFactor(1, 0))
}

func TestPointOnSpline(t *testing.T) {
	path := []dmath.Vec2{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 200, Y: 50}}

	t.Run("endpoints are exact waypoints", func(t *testing.T) {
		first := PointOnSpline(path, 0)
		last := PointOnSpline(path, float64(len(path)-1))
		assert.InDelta(t, 0.0, first.X, 1e-9)
		assert.InDelta(t, 0.0, first.Y, 1e-9)
		assert.InDelta(t, 200.0, last.X, 1e-9)
		assert.InDelta(t, 50.0, last.Y, 1e-9)
	})

	t.Run("fractional waypoints are returned exactly", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		for range 1000 {
			fine := make([]dmath.Vec2, 2+rng.Intn(6))
			for i := range fine {
				fine[i] = dmath.Vec2{X: rng.Float64() * 1000, Y: rng.Float64() * 1000}
			}
			for i := range fine {
				require.Equal(t, fine[i], PointOnSpline(fine, float64(i)))
			}
		}
	})

	t.Run("passes through interior waypoints", func(t *testing.T) {
		p := PointOnSpline(path, 2)
		assert.InDelta(t, 100.0, p.X, 1e-9)
		assert.InDelta(t, 100.0, p.Y, 1e-9)
	})

	t.Run("clamps out of range parameters", func(t *testing.T) {
		assert.Equal(t, PointOnSpline(path, 0), PointOnSpline(path, -3))
		assert.Equal(t, PointOnSpline(path, 3), PointOnSpline(path, 9))
	})

	t.Run("two point path is a straight line", func(t *testing.T) {
		line := []dmath.Vec2{{X: 0, Y: 0}, {X: 10, Y: 20}}
		mid := PointOnSpline(line, 0.5)
		assert.InDelta(t, 5.0, mid.X, 1e-9)
		assert.InDelta(t, 10.0, mid.Y, 1e-9)
	})

	t.Run("degenerate paths", func(t *testing.T) {
		assert.Equal(t, dmath.Vec2{}, PointOnSpline(nil, 0))
		single := []dmath.Vec2{{X: 3, Y: 4}}
		assert.Equal(t, single[0], PointOnSpline(single, 1))
	})
}

package systems

import (
	"testing"

	"github.com/1984drum/2dp-engine/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func testCamera(t *testing.T, ctx *Context) *components.CameraData {
	t.Helper()
	entry, ok := components.Camera.First(ctx.World)
	require.True(t, ok)
	return components.Camera.Get(entry)
}

func TestCameraDeadZone(t *testing.T) {
	ctx := newTestContext(t, 2000, 2000)
	camera := testCamera(t, ctx)
	body := components.Body.Get(newPlayer(ctx, 188, 114))

	// Focus sits exactly on the dead zone edge.
	UpdateCamera(ctx)
	assert.Equal(t, math.Vec2{}, camera.Target)
	assert.Equal(t, math.Vec2{}, camera.Position)

	body.X = 189
	UpdateCamera(ctx)
	assert.Equal(t, math.Vec2{X: 1, Y: 0}, camera.Target)
	assert.InDelta(t, 0.05, camera.Position.X, 1e-12)
	assert.Equal(t, 0.0, camera.Position.Y)
}

func TestCameraVerticalDeadZone(t *testing.T) {
	ctx := newTestContext(t, 2000, 2000)
	camera := testCamera(t, ctx)
	newPlayer(ctx, 148, 175)

	UpdateCamera(ctx)
	assert.Equal(t, math.Vec2{X: 0, Y: 1}, camera.Target)
}

func TestCameraEasesTowardTarget(t *testing.T) {
	ctx := newTestContext(t, 2000, 2000)
	camera := testCamera(t, ctx)
	newPlayer(ctx, 148, 114) // focus at the viewport center
	camera.Target = math.Vec2{X: 100}

	UpdateCamera(ctx)
	assert.InDelta(t, 5, camera.Position.X, 1e-12)

	ctx.Scale = 2
	UpdateCamera(ctx)
	assert.InDelta(t, 5+95*(1-0.95*0.95), camera.Position.X, 1e-9)
}

func TestCameraResetAndPan(t *testing.T) {
	ctx := newTestContext(t, 2000, 2000)
	camera := testCamera(t, ctx)

	ResetCamera(ctx, 100, 100)
	assert.Equal(t, math.Vec2{X: -60, Y: 10}, camera.Position)
	assert.Equal(t, camera.Position, camera.Target)

	PanCamera(ctx, 10, 5)
	assert.Equal(t, math.Vec2{X: -70, Y: 5}, camera.Position)
	assert.Equal(t, camera.Position, camera.Target)
}

func TestScreenShake(t *testing.T) {
	ctx := newTestContext(t, 2000, 2000)
	camera := testCamera(t, ctx)
	entry, _ := components.Camera.First(ctx.World)

	TriggerScreenShake(ctx, 6, 18)
	require.True(t, entry.HasComponent(components.ScreenShake))

	UpdateCamera(ctx)
	assert.NotEqual(t, math.Vec2{}, camera.Shake)
	assert.Equal(t, math.Vec2{}, camera.Position, "shake never moves the camera")

	TriggerScreenShake(ctx, 3, 18)
	assert.Equal(t, 6.0, components.ScreenShake.Get(entry).Intensity, "weaker shake ignored")
	TriggerScreenShake(ctx, 9, 18)
	assert.Equal(t, 9.0, components.ScreenShake.Get(entry).Intensity)

	for i := 0; i < 18; i++ {
		UpdateCamera(ctx)
	}
	assert.False(t, entry.HasComponent(components.ScreenShake))
	assert.Equal(t, math.Vec2{}, camera.Shake)
}

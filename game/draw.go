package game

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/1984drum/2dp-engine/collision"
	"github.com/1984drum/2dp-engine/config"
	"github.com/1984drum/2dp-engine/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// terrainScale is the downsampling factor of the cached terrain images.
const terrainScale = 4

var layerColors = [collision.LayerCount]color.RGBA{
	collision.Ground:    {R: 90, G: 160, B: 90, A: 255},
	collision.Platform:  {R: 80, G: 140, B: 220, A: 255},
	collision.Wall:      {R: 150, G: 150, B: 150, A: 255},
	collision.Ceiling:   {R: 170, G: 120, B: 200, A: 255},
	collision.Breakable: {R: 200, G: 140, B: 60, A: 255},
	collision.EnemyWall: {R: 200, G: 60, B: 60, A: 128},
}

var (
	playerColor = color.RGBA{R: 60, G: 120, B: 255, A: 255}
	enemyColor  = color.RGBA{R: 230, G: 50, B: 50, A: 255}
	rockColor   = color.RGBA{R: 160, G: 130, B: 100, A: 255}
	pathColor   = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	zoneColor   = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	hitColor    = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	missColor   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	spawnColor  = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	goalColor   = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

type cachedLayer struct {
	version uint64
	built   bool
	img     *ebiten.Image
}

// terrainCache keeps one downsampled image per layer and rebuilds it only
// when the raster version changes.
type terrainCache [collision.LayerCount]cachedLayer

func (c *terrainCache) image(sim *scenes.Simulation, l collision.Layer) *ebiten.Image {
	entry := &c[l]
	version := sim.TerrainVersion(l)
	if entry.built && entry.version == version {
		return entry.img
	}

	r := sim.CopyTerrain(l)
	w, h, pix := downsample(r, terrainScale, layerColors[l])
	if entry.img == nil || entry.img.Bounds().Dx() != w || entry.img.Bounds().Dy() != h {
		if entry.img != nil {
			entry.img.Deallocate()
		}
		entry.img = ebiten.NewImage(w, h)
	}
	entry.img.WritePixels(pix)
	entry.version = version
	entry.built = true
	return entry.img
}

// downsample renders r at 1/scale resolution as RGBA pixels. A cell is
// painted when any pixel inside it is solid.
func downsample(r *collision.Raster, scale int, c color.RGBA) (int, int, []byte) {
	w := (r.Width() + scale - 1) / scale
	h := (r.Height() + scale - 1) / scale
	pix := make([]byte, w*h*4)

	bounds, ok := r.OccupiedBounds()
	if !ok {
		return w, h, pix
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := (y / scale) * w
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if !r.At(x, y) {
				continue
			}
			i := (row + x/scale) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return w, h, pix
}

func (g *Game) drawTerrain(_ *ecs.ECS, screen *ebiten.Image) {
	view := g.snap.View()
	for _, l := range collision.AllLayers {
		if l == collision.EnemyWall && !g.host().ShowRasters {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(terrainScale, terrainScale)
		op.GeoM.Translate(-view.X, -view.Y)
		if l == collision.Platform {
			op.GeoM.Translate(g.snap.Platform.TranslationX(), g.snap.Platform.TranslationY())
		}
		screen.DrawImage(g.terrain.image(g.sim, l), op)
	}
}

func (g *Game) drawEntities(_ *ecs.ECS, screen *ebiten.Image) {
	snap := &g.snap
	view := snap.View()
	vx, vy := float32(view.X), float32(view.Y)

	for _, b := range snap.Boulders {
		cx, cy := float32(b.Body.X)-vx, float32(b.Body.Y)-vy
		shape := b.Boulder.Shape
		sin, cos := math.Sincos(b.Body.Rotation)
		for i := range shape {
			p, q := shape[i], shape[(i+1)%len(shape)]
			x0 := cx + float32(p.X*cos-p.Y*sin)
			y0 := cy + float32(p.X*sin+p.Y*cos)
			x1 := cx + float32(q.X*cos-q.Y*sin)
			y1 := cy + float32(q.X*sin+q.Y*cos)
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, rockColor, true)
		}
	}

	for _, e := range snap.Enemies {
		vector.FillRect(screen, float32(e.Body.X)-vx, float32(e.Body.Y)-vy,
			float32(e.Body.Width), float32(e.Body.Height), enemyColor, false)
	}

	for _, d := range snap.Debris {
		c := layerColors[collision.Breakable]
		c.A = uint8(255 * math.Max(0, math.Min(1, d.Life)))
		vector.FillRect(screen, float32(d.X)-vx-1, float32(d.Y)-vy-1, 3, 3, c, false)
	}

	if snap.HasPlayer {
		p := snap.Player
		vector.FillRect(screen, float32(p.X)-vx, float32(p.Y)-vy,
			float32(p.Width), float32(p.Height), playerColor, false)
	}

	vector.FillRect(screen, float32(snap.Level.Spawn.X)-vx-3, float32(snap.Level.Spawn.Y)-vy-3, 6, 6, spawnColor, false)
	if snap.Level.HasGoal {
		vector.FillRect(screen, float32(snap.Level.Goal.X)-vx-3, float32(snap.Level.Goal.Y)-vy-3, 6, 6, goalColor, false)
	}
}

func (g *Game) drawOverlay(_ *ecs.ECS, screen *ebiten.Image) {
	snap := &g.snap
	h := g.host()
	view := snap.View()
	vx, vy := float32(view.X), float32(view.Y)

	if h.ShowRasters || snap.EditingPath {
		path := snap.Platform.Path
		ox, oy := float32(snap.Platform.OffsetX), float32(snap.Platform.OffsetY)
		for i := 1; i < len(path); i++ {
			vector.StrokeLine(screen,
				float32(path[i-1].X)+ox-vx, float32(path[i-1].Y)+oy-vy,
				float32(path[i].X)+ox-vx, float32(path[i].Y)+oy-vy,
				1, pathColor, true)
		}

		// Camera dead zone around the viewport center
		cc := g.sim.Tuning().Camera
		cx, cy := float32(snap.ViewWidth/2), float32(snap.ViewHeight/2)
		vector.StrokeRect(screen, cx-float32(cc.DeadZoneWidth), cy-float32(cc.DeadZoneHeight),
			float32(cc.DeadZoneWidth*2), float32(cc.DeadZoneHeight*2), 1, zoneColor, false)
	}

	if h.DebugSensors {
		if snap.HasPlayer && snap.Player.Grounded {
			p := snap.Player
			cx, fy := float32(p.X+p.Width/2)-vx, float32(p.Y+p.Height)-vy
			sin, cos := math.Sincos(p.SlopeAngle)
			half := float32(p.Width)
			vector.StrokeLine(screen, cx-half*float32(cos), fy-half*float32(sin),
				cx+half*float32(cos), fy+half*float32(sin),
				2, slopeColor(p.SlopeAngle, g.sim.Tuning().Physics), true)
		}
		for _, s := range snap.PlayerState.Sensors {
			c := missColor
			if s.Hit {
				c = hitColor
			}
			vector.FillRect(screen, float32(s.X)-vx-1, float32(s.Y)-vy-1, 3, 3, c, false)
		}
	}

	ebitenutil.DebugPrint(screen, g.hudText())
}

// slopeColor grades ground steepness from green at level to amber at the red
// threshold. Slopes past the maximum ground angle are drawn faint red.
func slopeColor(angle float64, pc config.PhysicsConfig) color.RGBA {
	a := math.Abs(angle)
	if a > pc.MaxGroundAngle {
		return color.RGBA{R: 51, A: 51}
	}
	t := 1.0
	if pc.AngleRedThreshold > 0 {
		t = math.Min(a/pc.AngleRedThreshold, 1)
	}
	lerp := func(from, to float64) uint8 { return uint8(math.Round(from + (to-from)*t)) }
	return color.RGBA{R: lerp(74, 250), G: lerp(222, 204), B: lerp(128, 21), A: 255}
}

func (g *Game) hudText() string {
	snap := &g.snap
	h := g.host()
	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.0f  tick %d\n", ebiten.ActualTPS(), snap.Tick)
	if snap.HasPlayer {
		p := snap.Player
		fmt.Fprintf(&b, "pos %.1f,%.1f  vel %.2f,%.2f  grounded %t\n", p.X, p.Y, p.VX, p.VY, p.Grounded)
	}
	switch {
	case h.Replaying:
		fmt.Fprintf(&b, "REPLAY %d/%d\n", g.player.Frame(), g.player.Len())
	case g.recorder.Active():
		fmt.Fprintf(&b, "REC %d\n", g.recorder.Len())
	}
	if snap.Paused {
		b.WriteString("PAUSED\n")
	}
	if h.NotifyLeft > 0 {
		b.WriteString(h.Notification)
		b.WriteByte('\n')
	}
	return b.String()
}

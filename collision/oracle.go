// Package collision answers terrain occupancy queries against per-layer
// rasters covering the world extent.
package collision

import (
	"image"
	"math"
)

// SurfaceScan is the half-height of the window SurfaceHeight searches.
const SurfaceScan = 15

// SlopeSampleDist is the horizontal offset of each slope sample from the contact point.
const SlopeSampleDist = 5

// Oracle owns the occupancy rasters of one world.
type Oracle struct {
	width, height int
	layers        [LayerCount]*Raster

	// platform translation: spline position plus the manual offset
	platformX, platformY float64
}

// NewOracle returns an oracle with an empty raster for every layer.
func NewOracle(width, height int) *Oracle {
	o := &Oracle{width: width, height: height}
	for _, l := range AllLayers {
		o.layers[l] = NewRaster(width, height)
	}
	return o
}

func (o *Oracle) Width() int  { return o.width }
func (o *Oracle) Height() int { return o.height }

// Raster returns the raster backing layer. Mutating it between ticks is the
// supported way to edit terrain.
func (o *Oracle) Raster(layer Layer) *Raster {
	return o.layers[layer]
}

// SetRaster replaces the raster of layer. Rasters smaller than the world are
// treated as empty outside their extent.
func (o *Oracle) SetRaster(layer Layer, r *Raster) {
	if r == nil {
		r = NewRaster(o.width, o.height)
	}
	o.layers[layer] = r
}

// SetPlatformTranslation moves the platform layer's local frame.
func (o *Oracle) SetPlatformTranslation(dx, dy float64) {
	o.platformX, o.platformY = dx, dy
}

// PlatformTranslation returns the current platform frame offset.
func (o *Oracle) PlatformTranslation() (float64, float64) {
	return o.platformX, o.platformY
}

// CheckPixel reports whether world pixel (x, y) is solid on layer. Queries
// outside the world return false.
func (o *Oracle) CheckPixel(x, y float64, layer Layer) bool {
	if layer == Platform {
		x -= o.platformX
		y -= o.platformY
	}
	ix := int(math.Floor(x))
	iy := int(math.Floor(y))
	if ix < 0 || ix >= o.width || iy < 0 || iy >= o.height {
		return false
	}
	r := o.layers[layer]
	if r == nil {
		return false
	}
	return r.At(ix, iy)
}

// SurfaceHeight scans startY-15 .. startY+14 at column x for the first pixel
// that is solid with an empty pixel directly above it.
func (o *Oracle) SurfaceHeight(x, startY float64, layer Layer) (float64, bool) {
	for i := -SurfaceScan; i < SurfaceScan; i++ {
		y := startY + float64(i)
		if o.CheckPixel(x, y, layer) && !o.CheckPixel(x, y-1, layer) {
			return y, true
		}
	}
	return 0, false
}

// SlopeAngle measures the local surface angle around centerX by sampling the
// surface height 5px to either side of it. Missing samples fall back to refY.
// Positive angles descend to the right.
func (o *Oracle) SlopeAngle(centerX, refY float64, layer Layer) float64 {
	y1, ok := o.SurfaceHeight(centerX-SlopeSampleDist, refY, layer)
	if !ok {
		y1 = refY
	}
	y2, ok := o.SurfaceHeight(centerX+SlopeSampleDist, refY, layer)
	if !ok {
		y2 = refY
	}
	return math.Atan2(y2-y1, SlopeSampleDist*2)
}

var blockNeighbors = [8]image.Point{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

// ChainDestroy clears the breakable block containing (x, y) and every
// breakable block 8-connected to it, walking a grid of blockSize cells. A
// neighbor joins the chain when the pixel at its center is solid. At most
// maxCells blocks are visited. The origins of cleared blocks are returned in
// visit order.
func (o *Oracle) ChainDestroy(x, y float64, blockSize, maxCells int) []image.Point {
	r := o.layers[Breakable]
	if r == nil || blockSize <= 0 || maxCells <= 0 {
		return nil
	}

	start := image.Pt(
		int(math.Floor(x/float64(blockSize)))*blockSize,
		int(math.Floor(y/float64(blockSize)))*blockSize,
	)
	visited := map[image.Point]struct{}{start: {}}
	queue := []image.Point{start}
	var removed []image.Point

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]

		r.ClearRect(image.Rect(cell.X, cell.Y, cell.X+blockSize, cell.Y+blockSize))
		removed = append(removed, cell)

		for _, n := range blockNeighbors {
			if len(visited) >= maxCells {
				break
			}
			next := cell.Add(n.Mul(blockSize))
			if _, seen := visited[next]; seen {
				continue
			}
			if !r.At(next.X+blockSize/2, next.Y+blockSize/2) {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return removed
}

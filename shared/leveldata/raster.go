package leveldata

import (
	"image"

	"github.com/1984drum/2dp-engine/collision"
	"golang.org/x/image/draw"
)

// stretchOnto scales src to cover the whole of r. The scaled copy only lives
// for the duration of the call.
func stretchOnto(r *collision.Raster, src image.Image) {
	scaled := image.NewNRGBA(r.Bounds())
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Src, nil)
	r.Paint(scaled, 0, 0)
}

// RasterFromImage thresholds img into a raster of the given size, placing
// img's top-left corner at the origin. Pixels beyond the raster are dropped
// and uncovered raster pixels stay empty.
func RasterFromImage(img image.Image, width, height int) *collision.Raster {
	r := collision.NewRaster(width, height)
	r.Paint(img, 0, 0)
	return r
}

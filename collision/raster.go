package collision

import (
	"image"
	"image/color"
)

// AlphaThreshold is the alpha value a painted pixel must exceed to count as solid.
const AlphaThreshold = 100

// Raster is a binary occupancy bitmap covering a rectangular extent.
type Raster struct {
	width   int
	height  int
	bits    []uint64
	version uint64
}

// NewRaster returns an empty raster of the given size.
func NewRaster(width, height int) *Raster {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Raster{
		width:  width,
		height: height,
		bits:   make([]uint64, (width*height+63)/64),
	}
}

// RasterFromImage thresholds the alpha channel of img into a raster the size
// of img's bounds. Pixel (0,0) of the raster maps to img.Bounds().Min.
func RasterFromImage(img image.Image) *Raster {
	b := img.Bounds()
	r := NewRaster(b.Dx(), b.Dy())
	r.Paint(img, 0, 0)
	r.version = 0
	return r
}

// Paint marks solid every pixel of img whose alpha exceeds AlphaThreshold,
// with img's top-left corner placed at (x, y). Pixels falling outside the
// raster are dropped and existing solid pixels are kept.
func (r *Raster) Paint(img image.Image, x, y int) {
	b := img.Bounds()
	dst := image.Rect(x, y, x+b.Dx(), y+b.Dy()).Intersect(r.Bounds())
	if dst.Empty() {
		return
	}
	// source pixel = destination pixel + shift
	shift := b.Min.Sub(image.Pt(x, y))

	switch src := img.(type) {
	case *image.NRGBA:
		r.paintAlpha(dst, src.Pix, 4, func(px, py int) int {
			return src.PixOffset(px+shift.X, py+shift.Y) + 3
		})
	case *image.RGBA:
		r.paintAlpha(dst, src.Pix, 4, func(px, py int) int {
			return src.PixOffset(px+shift.X, py+shift.Y) + 3
		})
	case *image.Alpha:
		r.paintAlpha(dst, src.Pix, 1, func(px, py int) int {
			return src.PixOffset(px+shift.X, py+shift.Y)
		})
	default:
		for py := dst.Min.Y; py < dst.Max.Y; py++ {
			for px := dst.Min.X; px < dst.Max.X; px++ {
				a := color.NRGBAModel.Convert(img.At(px+shift.X, py+shift.Y)).(color.NRGBA).A
				if a > AlphaThreshold {
					i := py*r.width + px
					r.bits[i>>6] |= 1 << (uint(i) & 63)
				}
			}
		}
	}
	r.version++
}

// paintAlpha walks rows of a packed pixel buffer. rowStart gives the index of
// the alpha byte for the first pixel of each destination row.
func (r *Raster) paintAlpha(dst image.Rectangle, pix []byte, step int, rowStart func(px, py int) int) {
	for py := dst.Min.Y; py < dst.Max.Y; py++ {
		off := rowStart(dst.Min.X, py)
		i := py*r.width + dst.Min.X
		for px := dst.Min.X; px < dst.Max.X; px++ {
			if pix[off] > AlphaThreshold {
				r.bits[i>>6] |= 1 << (uint(i) & 63)
			}
			off += step
			i++
		}
	}
}

func (r *Raster) Width() int  { return r.width }
func (r *Raster) Height() int { return r.height }

// Bounds returns the raster extent as an image rectangle.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// Version increases on every mutation. Renderers use it to invalidate caches.
func (r *Raster) Version() uint64 { return r.version }

func (r *Raster) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return 0, false
	}
	return y*r.width + x, true
}

// At reports whether (x, y) is solid. Out-of-range coordinates are empty.
func (r *Raster) At(x, y int) bool {
	i, ok := r.index(x, y)
	if !ok {
		return false
	}
	return r.bits[i>>6]&(1<<(uint(i)&63)) != 0
}

// Set marks (x, y) solid.
func (r *Raster) Set(x, y int) {
	if i, ok := r.index(x, y); ok {
		r.bits[i>>6] |= 1 << (uint(i) & 63)
		r.version++
	}
}

// Clear marks (x, y) empty.
func (r *Raster) Clear(x, y int) {
	if i, ok := r.index(x, y); ok {
		r.bits[i>>6] &^= 1 << (uint(i) & 63)
		r.version++
	}
}

// Fill marks every pixel of rect solid, clipped to the raster.
func (r *Raster) Fill(rect image.Rectangle) {
	rect = rect.Intersect(r.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			i := y*r.width + x
			r.bits[i>>6] |= 1 << (uint(i) & 63)
		}
	}
	r.version++
}

// ClearRect empties every pixel of rect, clipped to the raster.
func (r *Raster) ClearRect(rect image.Rectangle) {
	rect = rect.Intersect(r.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			i := y*r.width + x
			r.bits[i>>6] &^= 1 << (uint(i) & 63)
		}
	}
	r.version++
}

// Reset empties the whole raster.
func (r *Raster) Reset() {
	for i := range r.bits {
		r.bits[i] = 0
	}
	r.version++
}

// OccupiedBounds returns the smallest rectangle containing every solid pixel.
// ok is false when the raster is empty.
func (r *Raster) OccupiedBounds() (rect image.Rectangle, ok bool) {
	minX, minY, maxX, maxY := r.width, r.height, -1, -1
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			if !r.At(x, y) {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// Clone returns an independent copy.
func (r *Raster) Clone() *Raster {
	c := &Raster{width: r.width, height: r.height, version: r.version}
	c.bits = make([]uint64, len(r.bits))
	copy(c.bits, r.bits)
	return c
}

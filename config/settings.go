package config

// Resolution represents a viewport size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// AspectRatio is the locked viewport aspect ratio.
const AspectRatio = 16.0 / 9.0

// ViewportConfig lists the selectable viewport sizes
type ViewportConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
}

// Viewport is the global viewport configuration
var Viewport ViewportConfig

func init() {
	Viewport = ViewportConfig{
		Resolutions: []Resolution{
			{Width: 960, Height: 540, Label: "960 x 540"},
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 1,
	}
}

// ResolutionFor returns the resolution at index, falling back to the default.
func ResolutionFor(index int) Resolution {
	if index < 0 || index >= len(Viewport.Resolutions) {
		index = Viewport.DefaultResolutionIndex
	}
	return Viewport.Resolutions[index]
}

// LockAspect returns the largest 16:9 size that fits within width x height.
func LockAspect(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	if width*9 > height*16 {
		return height * 16 / 9, height
	}
	return width, width * 9 / 16
}

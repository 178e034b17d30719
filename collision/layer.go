package collision

import "fmt"

// Layer names an independent terrain occupancy raster.
type Layer int

const (
	Ground Layer = iota
	Platform
	Wall
	Ceiling
	Breakable
	EnemyWall
	LayerCount // Must be last - used for array sizing
)

// AllLayers lists every terrain layer in draw order.
var AllLayers = [LayerCount]Layer{Ground, Platform, Wall, Ceiling, Breakable, EnemyWall}

var layerNames = [LayerCount]string{
	Ground:    "ground",
	Platform:  "platform",
	Wall:      "wall",
	Ceiling:   "ceiling",
	Breakable: "breakable",
	EnemyWall: "enemy_wall",
}

func (l Layer) String() string {
	if l < 0 || l >= LayerCount {
		return fmt.Sprintf("layer(%d)", int(l))
	}
	return layerNames[l]
}

// ParseLayer maps a level-file layer name to its Layer.
func ParseLayer(name string) (Layer, error) {
	for i, n := range layerNames {
		if n == name {
			return Layer(i), nil
		}
	}
	return 0, fmt.Errorf("unknown collision layer %q", name)
}

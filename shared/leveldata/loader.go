package leveldata

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/1984drum/2dp-engine/collision"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
	"github.com/yohamta/donburi/features/math"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Object group names recognised in level files.
const (
	GroupSpawn    = "Spawn"
	GroupGoal     = "Goal"
	GroupBoulders = "Boulders"
	GroupEnemies  = "Enemies"
	GroupPlatform = "Platform"
)

// LoadScene parses a TMX file into a Scene. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
//
// Tile layers and image layers whose names match a collision layer (see
// collision.ParseLayer) are painted onto that layer's raster; other layers are
// decoration and ignored.
func LoadScene(fsys fs.FS, tmxPath string) (*Scene, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	scene := &Scene{
		Name:    strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:   levelMap.Width * levelMap.TileWidth,
		Height:  levelMap.Height * levelMap.TileHeight,
		Rasters: make(map[collision.Layer]*collision.Raster),
	}
	if scene.Width <= 0 || scene.Height <= 0 {
		return nil, fmt.Errorf("load TMX %s: empty map %dx%d", tmxPath, scene.Width, scene.Height)
	}

	rasterFor := func(l collision.Layer) *collision.Raster {
		r, ok := scene.Rasters[l]
		if !ok {
			r = collision.NewRaster(scene.Width, scene.Height)
			scene.Rasters[l] = r
		}
		return r
	}

	if err := paintTileLayers(levelMap, fsys, rasterFor); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if err := paintImageLayers(levelMap, fsys, path.Dir(tmxPath), rasterFor); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	parseObjects(levelMap, scene)
	return scene, nil
}

// paintTileLayers renders tile layers through the tileset images when every
// tileset has one. Image-less tilesets mark whole tiles solid instead.
func paintTileLayers(levelMap *tiled.Map, fsys fs.FS, rasterFor func(collision.Layer) *collision.Raster) error {
	var renderer *render.Renderer
	if tilesetsHaveImages(levelMap) {
		r, err := render.NewRendererWithFileSystem(levelMap, fsys)
		if err != nil {
			return fmt.Errorf("create renderer: %w", err)
		}
		renderer = r
	}

	tileW := levelMap.TileWidth
	tileH := levelMap.TileHeight
	for i, layer := range levelMap.Layers {
		l, err := collision.ParseLayer(layer.Name)
		if err != nil {
			continue
		}
		r := rasterFor(l)

		if renderer != nil {
			if err := renderer.RenderLayer(i); err != nil {
				return fmt.Errorf("render layer %s: %w", layer.Name, err)
			}
			r.Paint(renderer.Result, 0, 0)
			renderer.Clear()
			continue
		}

		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				r.Fill(image.Rect(x*tileW, y*tileH, (x+1)*tileW, (y+1)*tileH))
			}
		}
	}
	return nil
}

func tilesetsHaveImages(levelMap *tiled.Map) bool {
	if len(levelMap.Tilesets) == 0 {
		return false
	}
	for _, ts := range levelMap.Tilesets {
		if ts.Image == nil || ts.Image.Source == "" {
			return false
		}
	}
	return true
}

// paintImageLayers decodes painted layer images (png, bmp or webp). A layer
// with the "stretch" property is scaled to cover the whole world.
func paintImageLayers(levelMap *tiled.Map, fsys fs.FS, dir string, rasterFor func(collision.Layer) *collision.Raster) error {
	for _, imgLayer := range levelMap.ImageLayers {
		l, err := collision.ParseLayer(imgLayer.Name)
		if err != nil || imgLayer.Image == nil {
			continue
		}

		imgPath := path.Join(dir, imgLayer.Image.Source)
		f, err := fsys.Open(imgPath)
		if err != nil {
			return fmt.Errorf("open image layer %s: %w", imgLayer.Name, err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("decode image layer %s: %w", imgLayer.Name, err)
		}

		r := rasterFor(l)
		if imgLayer.Properties.GetBool("stretch") {
			stretchOnto(r, img)
			continue
		}
		r.Paint(img, int(imgLayer.OffsetX), int(imgLayer.OffsetY))
	}
	return nil
}

func parseObjects(levelMap *tiled.Map, scene *Scene) {
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				scene.Spawn = math.Vec2{X: o.X, Y: o.Y}
				scene.HasSpawn = true
			}
		case GroupGoal:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				scene.Goal = math.Vec2{X: o.X, Y: o.Y}
				scene.HasGoal = true
			}
		case GroupBoulders:
			for _, o := range og.Objects {
				scene.Boulders = append(scene.Boulders, BoulderSpawn{
					X:      o.X,
					Y:      o.Y,
					Radius: o.Properties.GetFloat("radius"),
					Mass:   o.Properties.GetFloat("mass"),
				})
			}
		case GroupEnemies:
			for _, o := range og.Objects {
				scene.Enemies = append(scene.Enemies, EnemySpawn{
					X:     o.X,
					Y:     o.Y,
					Speed: o.Properties.GetFloat("speed"),
				})
			}
		case GroupPlatform:
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				// Only the first polyline is used
				polyline := o.PolyLines[0]
				if polyline.Points == nil || len(*polyline.Points) < 2 {
					continue
				}
				points := make([]math.Vec2, len(*polyline.Points))
				for i, point := range *polyline.Points {
					points[i] = math.Vec2{X: o.X + point.X, Y: o.Y + point.Y}
				}
				scene.PlatformPath = points
				scene.PlatformOffset = math.Vec2{
					X: o.Properties.GetFloat("offsetX"),
					Y: o.Properties.GetFloat("offsetY"),
				}
				scene.PlatformSpeed = o.Properties.GetFloat("speed")
				break
			}
		}
	}

	// Left-to-right for a stable spawn order
	sort.SliceStable(scene.Boulders, func(i, j int) bool {
		return scene.Boulders[i].X < scene.Boulders[j].X
	})
	sort.SliceStable(scene.Enemies, func(i, j int) bool {
		return scene.Enemies[i].X < scene.Enemies[j].X
	})
}

// LoadAllScenes discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllScenes(fsys fs.FS, levelsDir string) (map[string]*Scene, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	scenes := make(map[string]*Scene, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		scene, err := LoadScene(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		scenes[scene.Name] = scene
		names = append(names, scene.Name)
	}

	sort.Strings(names)
	return scenes, names, nil
}

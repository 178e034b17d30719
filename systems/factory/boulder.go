package factory

import (
	"math"
	"math/rand"

	"github.com/1984drum/2dp-engine/archetypes"
	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/config"
	"github.com/1984drum/2dp-engine/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateBoulder spawns a boulder centered on (x, y). Non-positive radius or
// mass fall back to the configured defaults.
func CreateBoulder(w donburi.World, space *resolv.Space, rng *rand.Rand, bc config.BoulderConfig, x, y, radius, mass float64) *donburi.Entry {
	boulder := archetypes.Boulder.Spawn(w)

	if radius <= 0 {
		radius = bc.DefaultRadius
	}
	if mass <= 0 {
		mass = bc.DefaultMass
	}

	obj := resolv.NewObject(x-radius, y-radius, radius*2, radius*2)
	components.Object.SetValue(boulder, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvBoulder)
	obj.Data = boulder

	components.Body.SetValue(boulder, components.BodyData{
		Kind:   components.KindBoulder,
		X:      x,
		Y:      y,
		Width:  radius * 2,
		Height: radius * 2,
	})
	components.Boulder.SetValue(boulder, components.BoulderData{
		Radius: radius,
		Mass:   mass,
		Shape:  BoulderShape(rng, radius, bc.ShapePoints, bc.ShapeJitter),
	})

	if space != nil {
		space.Add(obj)
	}

	return boulder
}

// BoulderShape returns an irregular outline of n points around the origin,
// each at radius scaled by a random factor in [1-jitter, 1+jitter].
func BoulderShape(rng *rand.Rand, radius float64, n int, jitter float64) []dmath.Vec2 {
	points := make([]dmath.Vec2, n)
	for i := range points {
		angle := float64(i) / float64(n) * math.Pi * 2
		r := radius * (1 - jitter + rng.Float64()*jitter*2)
		points[i] = dmath.Vec2{X: math.Cos(angle) * r, Y: math.Sin(angle) * r}
	}
	return points
}

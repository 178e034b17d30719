package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Boulder  = donburi.NewTag().SetName("Boulder")
	Platform = donburi.NewTag().SetName("Platform")
	Debris   = donburi.NewTag().SetName("Debris")
)

// Resolv tags for the actor broadphase
const (
	ResolvPlayer  = "Player"
	ResolvEnemy   = "Enemy"
	ResolvBoulder = "Boulder"
)

package tags

import "github.com/yohamta/donburi"

var (
	Button     = donburi.NewTag().SetName("Button")
	ButtonBody = donburi.NewTag().SetName("ButtonBody")
	Presser    = donburi.NewTag().SetName("Presser")
)

// Resolv tags for the collision plane
const (
	ResolvButton  = "button"
	ResolvTrigger = "trigger"
)

package components

import "github.com/yohamta/donburi"

// ViewerData holds interactive viewer state (singleton component)
type ViewerData struct {
	Selected   int // index into the button order
	Debug      bool
	LastStatus string
}

var Viewer = donburi.NewComponentType[ViewerData]()

package components

import "github.com/yohamta/donburi"

// LevelCompleteData is set once the actor crosses a finish line.
type LevelCompleteData struct {
	Complete bool
	Frames   int // frames the run took
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()

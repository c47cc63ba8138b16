package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game driven by Game.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

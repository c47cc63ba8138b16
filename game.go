package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/ninja/config"
	"github.com/automoto/ninja/scenes"
)

type Game struct {
	scene scenes.Scene
}

func NewGame(scene scenes.Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

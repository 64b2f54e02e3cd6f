package main

import (
	"image"
	"os"

	"github.com/cbag/codebird-cave/config"
	"github.com/cbag/codebird-cave/fonts"
	"github.com/cbag/codebird-cave/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal("could not load fonts", "error", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewLevelScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	physics, err := config.LoadPhysics(os.Getenv("CODEBIRD_PHYSICS"))
	if err != nil {
		log.Fatal("could not load physics config", "error", err)
	}
	config.Physics = physics

	if avatar := os.Getenv("CODEBIRD_AVATAR"); avatar != "" {
		config.C.Avatar = avatar
	}
	if os.Getenv("CODEBIRD_DEBUG") != "" {
		config.Debug.Overlay = true
		config.Debug.AllowTeleport = true
		log.SetLevel(log.DebugLevel)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Codebird Cave")
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal("game exited", "error", err)
	}
}

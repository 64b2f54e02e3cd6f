package systems

import (
	"fmt"

	"github.com/cbag/codebird-cave/components"
	cfg "github.com/cbag/codebird-cave/config"
	"github.com/cbag/codebird-cave/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const (
	finishedTitleY = 140
	finishedMenuY  = 220
)

// NewUpdateFinished creates the run-complete system; selecting starts a new
// run from the first level.
func NewUpdateFinished(sceneChanger SceneChanger, createLevelScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuSelect).JustPressed || GetAction(input, cfg.ActionJump).JustPressed {
			sceneChanger.ChangeScene(createLevelScene())
		}
	}
}

// DrawFinished renders the run-complete screen
func DrawFinished(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)
	width := screen.Bounds().Dx()

	title := "THE CAVE IS CLEAR"
	if entry, ok := components.Finished.First(e.World); ok {
		if n := components.Finished.Get(entry).Levels; n > 0 {
			title = fmt.Sprintf("%d LEVELS CLEARED", n)
		}
	}
	drawCentered(screen, title, fonts.Title, width, finishedTitleY)
	drawCentered(screen, "PRESS ENTER TO PLAY AGAIN", fonts.Menu, width, finishedMenuY)
}

func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, width, y int) {
	face := name.Get()
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, (width-bounds.Dx())/2, y, cfg.Colors.Text)
}

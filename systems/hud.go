package systems

import (
	"fmt"

	"github.com/cbag/codebird-cave/components"
	cfg "github.com/cbag/codebird-cave/config"
	"github.com/cbag/codebird-cave/fonts"
	"github.com/cbag/codebird-cave/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// DrawHUD prints the level counter and the avatar in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	level := getLevel(e)
	if level == nil || level.Sequence == nil {
		return
	}
	label := fmt.Sprintf("LEVEL %d/%d", level.Sequence.Index()+1, level.Sequence.Len())
	if playerEntry, ok := tags.Player.First(e.World); ok {
		label += "  " + components.Player.Get(playerEntry).Avatar.String()
	}
	text.Draw(screen, label, fonts.HUD.Get(), hudMargin, hudMargin+8, cfg.Colors.Text)
}

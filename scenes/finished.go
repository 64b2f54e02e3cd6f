package scenes

import (
	"image/color"
	"sync"

	"github.com/cbag/codebird-cave/archetypes"
	"github.com/cbag/codebird-cave/components"
	cfg "github.com/cbag/codebird-cave/config"
	"github.com/cbag/codebird-cave/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FinishedScene is shown once the last level is cleared.
type FinishedScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       int
	once         sync.Once
}

func NewFinishedScene(sc SceneChanger, levels int) *FinishedScene {
	return &FinishedScene{sceneChanger: sc, levels: levels}
}

func (fs *FinishedScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()
}

func (fs *FinishedScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FinishedScene) configure() {
	fs.ecs = ecs.NewECS(donburi.NewWorld())

	createLevelScene := func() interface{} {
		return NewLevelScene(fs.sceneChanger)
	}

	fs.ecs.AddSystem(systems.UpdateInput)
	fs.ecs.AddSystem(systems.NewUpdateFinished(fs.sceneChanger, createLevelScene))

	fs.ecs.AddRenderer(cfg.Default, systems.DrawFinished)

	finished := archetypes.Finished.Spawn(fs.ecs)
	components.Finished.SetValue(finished, components.FinishedData{
		SelectedOption: components.FinishedPlayAgain,
		Levels:         fs.levels,
	})
}

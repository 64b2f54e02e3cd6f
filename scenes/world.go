package scenes

import (
	"image/color"
	"sync"

	"github.com/cbag/codebird-cave/assets"
	"github.com/cbag/codebird-cave/components"
	cfg "github.com/cbag/codebird-cave/config"
	"github.com/cbag/codebird-cave/shared/progress"
	"github.com/cbag/codebird-cave/systems"
	"github.com/cbag/codebird-cave/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelScene plays the level sequence from the saved position.
type LevelScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewLevelScene(sc SceneChanger) *LevelScene {
	return &LevelScene{sceneChanger: sc}
}

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelScene) configure() {
	levels, names, err := assets.LoadLevels()
	if err != nil {
		log.Fatal("could not load levels", "error", err)
	}

	store, err := progress.Open(cfg.C.AppName, log.Default())
	if err != nil {
		log.Warn("progress will not be saved", "error", err)
	}
	if cfg.Debug.ResetProgress {
		if err := store.Clear(); err != nil {
			log.Warn("could not reset progress", "error", err)
		}
	}

	avatar, err := progress.ParseAvatar(cfg.C.Avatar)
	if err != nil {
		log.Warn("unknown avatar, using the default", "avatar", cfg.C.Avatar)
		avatar = progress.Raven
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	createFinishedScene := func() interface{} {
		return NewFinishedScene(ls.sceneChanger, len(names))
	}

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.NewUpdateLevel(ls.sceneChanger, createFinishedScene))
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ls.ecs = ecs

	systems.SubscribeLevelEvents(ecs.World)
	systems.SubscribeDebugEvents(ecs.World)

	level, err := factory.CreateLevel(ecs, levels, names, store, avatar)
	if err != nil {
		log.Fatal("could not start level", "error", err)
	}
	levelData := components.Level.Get(level)

	factory.CreatePlayer(ecs, levelData.Sequence.Avatar)
	spawn := levelData.Session.Level.Spawn
	factory.CreateCamera(ecs, levelData.Session.CameraX(), spawn.Y)
	factory.CreateDebug(ecs, cfg.Debug.Overlay)
}

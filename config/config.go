package config

import (
	"image/color"

	"github.com/cbag/codebird-cave/shared/leveldata"
	"github.com/cbag/codebird-cave/shared/physics"
	"github.com/cbag/codebird-cave/shared/session"
	"github.com/cbag/codebird-cave/shared/tilegrid"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// PhysicsConfig contains the movement constants of the step, in world units
// (one unit per tile) and seconds.
type PhysicsConfig struct {
	GravityPerTick float64 `yaml:"gravity_per_tick"` // added to vertical speed once per tick
	FlyVel         float64 `yaml:"fly_vel"`
	MaxVel         float64 `yaml:"max_vel"`
	Damp           float64 `yaml:"damp"`
	StopSpeed      float64 `yaml:"stop_speed"`

	ActorWidth  float64 `yaml:"actor_width"`
	ActorHeight float64 `yaml:"actor_height"`

	VisibleMargin float64 `yaml:"visible_margin"`
	KillDepth     float64 `yaml:"kill_depth"`

	DebugTeleportX float64 `yaml:"debug_teleport_x"`
	DebugTeleportY float64 `yaml:"debug_teleport_y"`
}

// LevelConfig controls where levels come from and how TMX maps are read.
type LevelConfig struct {
	Dir   string
	Order []string

	LayerNames map[tilegrid.LayerRole]string
	LayerIndex map[tilegrid.LayerRole]int

	DefaultEnd    float64
	DefaultSpawnX float64
	DefaultSpawnY float64
}

// CameraConfig tunes the eased glide used when the camera target jumps.
type CameraConfig struct {
	GlideThreshold float64 // world units; smaller jumps are followed directly
	GlideSeconds   float32
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay       bool // draw collision boxes and the HUD
	AllowTeleport bool
	ResetProgress bool
}

// ColorConfig holds the flat colors of the debug renderer.
type ColorConfig struct {
	Background color.RGBA
	SolidA     color.RGBA
	SolidB     color.RGBA
	Exit       color.RGBA
	Door       color.RGBA
	Hazard     color.RGBA
	Player     color.RGBA
	Text       color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Scale  float64 // screen pixels per world unit
	// AppName keys the persisted progress directory.
	AppName string
	// Avatar is used when no saved progress names one.
	Avatar string
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Level LevelConfig
var Camera CameraConfig
var Debug DebugConfig
var Colors ColorConfig

// Default is the single render layer.
const Default ecs.LayerID = 0

func init() {
	C = &Config{
		Width:   640,
		Height:  360,
		TPS:     60,
		Scale:   16,
		AppName: "codebird-cave",
		Avatar:  "raven",
	}

	Physics = DefaultPhysics()

	Level = LevelConfig{
		Dir:   "levels",
		Order: []string{"level1", "level2", "level3"},
		LayerNames: map[tilegrid.LayerRole]string{
			tilegrid.SolidA: "solid-a",
			tilegrid.SolidB: "solid-b",
			tilegrid.Exit:   "exit",
			tilegrid.Door:   "door",
		},
		LayerIndex: map[tilegrid.LayerRole]int{
			tilegrid.SolidA: 1,
			tilegrid.SolidB: 2,
			tilegrid.Door:   3,
			tilegrid.Exit:   4,
		},
		DefaultEnd:    212,
		DefaultSpawnX: 20,
		DefaultSpawnY: 20,
	}

	Camera = CameraConfig{
		GlideThreshold: 4,
		GlideSeconds:   0.35,
	}

	Debug = DebugConfig{
		AllowTeleport: true,
	}

	Colors = ColorConfig{
		Background: color.RGBA{R: 18, G: 16, B: 28, A: 255},
		SolidA:     color.RGBA{R: 110, G: 96, B: 84, A: 255},
		SolidB:     color.RGBA{R: 170, G: 120, B: 60, A: 255},
		Exit:       color.RGBA{R: 0, G: 255, B: 60, A: 160},
		Door:       color.RGBA{R: 60, G: 100, B: 160, A: 160},
		Hazard:     color.RGBA{R: 255, G: 60, B: 60, A: 200},
		Player:     color.RGBA{R: 255, G: 255, B: 100, A: 255},
		Text:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// DefaultPhysics returns the stock tuning.
func DefaultPhysics() PhysicsConfig {
	return PhysicsConfig{
		GravityPerTick: -1.5,
		FlyVel:         40,
		MaxVel:         8,
		Damp:           0.87,
		StopSpeed:      1,
		ActorWidth:     1,
		ActorHeight:    1,
		VisibleMargin:  15,
		KillDepth:      2,
		DebugTeleportX: 180,
		DebugTeleportY: 20,
	}
}

// Tuning converts the physics config for the step.
func (p PhysicsConfig) Tuning() physics.Tuning {
	return physics.Tuning{
		GravityPerTick: p.GravityPerTick,
		FlyVel:         p.FlyVel,
		MaxVel:         p.MaxVel,
		Damp:           p.Damp,
		StopSpeed:      p.StopSpeed,
		DebugTeleport:  dmath.Vec2{X: p.DebugTeleportX, Y: p.DebugTeleportY},
	}
}

// Session returns the per-level session settings.
func (p PhysicsConfig) Session() session.Config {
	return session.Config{
		Tuning:      p.Tuning(),
		ActorWidth:  p.ActorWidth,
		ActorHeight: p.ActorHeight,
		Margin:      p.VisibleMargin,
		KillDepth:   p.KillDepth,
	}
}

// Options returns the TMX interpretation options.
func (l LevelConfig) Options() leveldata.Options {
	return leveldata.Options{
		Layers:     l.LayerNames,
		LayerIndex: l.LayerIndex,
		Spawn:      dmath.Vec2{X: l.DefaultSpawnX, Y: l.DefaultSpawnY},
		End:        l.DefaultEnd,
	}
}

// Package leveldata turns TMX maps into tile grids plus the level metadata
// the client and the simulator need. It has no ebiten dependency.
package leveldata

import (
	"errors"
	"io/fs"

	"github.com/cbag/codebird-cave/shared/tilegrid"
	"github.com/lafriks/go-tiled"
	dmath "github.com/yohamta/donburi/features/math"
)

// ErrNotTileLayer is returned when a layer role resolves to an object group.
var ErrNotTileLayer = errors.New("not a tile layer")

// Level is one parsed map in world units (one unit per tile, Y up).
type Level struct {
	Name     string
	Grid     *tilegrid.Grid
	Spawn    dmath.Vec2
	End      float64 // scroll window maximum
	Hazards  []tilegrid.Rect
	TileSize int

	source *tiled.Map
	fsys   fs.FS
}

// Options controls how map layers and objects are interpreted.
type Options struct {
	// Layers maps each role to its layer name. Roles whose name is missing
	// from the map fall back to LayerIndex.
	Layers map[tilegrid.LayerRole]string
	// LayerIndex positions count tile layers only, in file order. Object
	// groups and image layers are skipped, so an index keeps pointing at the
	// same tile layer however the other kinds are interleaved.
	LayerIndex map[tilegrid.LayerRole]int

	Spawn dmath.Vec2 // used when the map has no PlayerSpawn object
	End   float64    // used when the map has no FinishLine object
}

func DefaultOptions() Options {
	return Options{
		Layers: map[tilegrid.LayerRole]string{
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
		Spawn: dmath.Vec2{X: 20, Y: 20},
		End:   212,
	}
}

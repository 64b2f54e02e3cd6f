package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/cbag/codebird-cave/shared/tilegrid"
	"github.com/lafriks/go-tiled"
	dmath "github.com/yohamta/donburi/features/math"
)

// LoadLevel parses a TMX file from fsys. Tiled rows run top-down, so row r
// becomes grid row Height-1-r.
func LoadLevel(fsys fs.FS, tmxPath string, opts Options) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layers := make(map[tilegrid.LayerRole]*tilegrid.Layer, len(tilegrid.Roles()))
	for _, role := range tilegrid.Roles() {
		src, err := findLayer(levelMap, role, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tmxPath, err)
		}
		if src == nil {
			continue
		}
		layer, err := gridLayer(levelMap, src)
		if err != nil {
			return nil, fmt.Errorf("%s layer %q: %w", tmxPath, src.Name, err)
		}
		layers[role] = layer
	}

	grid, err := tilegrid.NewGrid(levelMap.Width, levelMap.Height, layers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}

	level := &Level{
		Name:     strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Grid:     grid,
		Spawn:    opts.Spawn,
		End:      opts.End,
		TileSize: levelMap.TileWidth,
		source:   levelMap,
		fsys:     fsys,
	}

	tile := float64(levelMap.TileWidth)
	mapH := float64(levelMap.Height * levelMap.TileHeight)
	toWorld := func(o *tiled.Object) tilegrid.Rect {
		return tilegrid.Rect{
			X: o.X / tile,
			Y: (mapH - (o.Y + o.Height)) / tile,
			W: o.Width / tile,
			H: o.Height / tile,
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			if len(og.Objects) == 0 {
				continue
			}
			// Left-most spawn wins.
			sort.Slice(og.Objects, func(i, j int) bool {
				return og.Objects[i].X < og.Objects[j].X
			})
			r := toWorld(og.Objects[0])
			level.Spawn = dmath.Vec2{X: r.X, Y: r.Y}
		case "FinishLine":
			for i, o := range og.Objects {
				if x := toWorld(o).X; i == 0 || x < level.End {
					level.End = x
				}
			}
		case "DeadZones":
			for _, o := range og.Objects {
				level.Hazards = append(level.Hazards, toWorld(o))
			}
		}
	}

	return level, nil
}

// findLayer resolves a role by name, then by index. A nil layer with no
// error means the role is absent and left to NewGrid to judge.
func findLayer(m *tiled.Map, role tilegrid.LayerRole, opts Options) (*tiled.Layer, error) {
	if name, ok := opts.Layers[role]; ok && name != "" {
		for _, l := range m.Layers {
			if l.Name == name {
				return l, nil
			}
		}
		for _, og := range m.ObjectGroups {
			if og.Name == name {
				return nil, fmt.Errorf("%s %q: %w", role, name, ErrNotTileLayer)
			}
		}
	}
	// go-tiled keeps tile layers apart from the other kinds.
	if i, ok := opts.LayerIndex[role]; ok && i >= 0 && i < len(m.Layers) {
		return m.Layers[i], nil
	}
	return nil, nil
}

func gridLayer(m *tiled.Map, src *tiled.Layer) (*tilegrid.Layer, error) {
	if len(src.Tiles) != m.Width*m.Height {
		return nil, fmt.Errorf("%d tiles for a %dx%d map: %w",
			len(src.Tiles), m.Width, m.Height, tilegrid.ErrLayerSize)
	}
	layer := tilegrid.NewLayer(m.Width, m.Height)
	for row := 0; row < m.Height; row++ {
		for x := 0; x < m.Width; x++ {
			if src.Tiles[row*m.Width+x].IsNil() {
				continue
			}
			layer.Set(x, m.Height-1-row, true)
		}
	}
	return layer, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns them keyed by stem name plus the sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string, opts Options) (map[string]*Level, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, match := range matches {
		level, err := LoadLevel(fsys, match, opts)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", match, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

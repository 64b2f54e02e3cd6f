// Package tilegrid is the collision view of a level's tile map: occupancy
// layers keyed by role, unit-box spatial queries and the rect pool those
// queries draw from. It has no dependencies on ebitengine or donburi.
package tilegrid

import (
	"errors"
	"fmt"
)

// LayerRole names what a tile layer means to the physics step.
type LayerRole int

const (
	SolidA LayerRole = iota
	SolidB           // destructible from below
	Exit
	Door // loaded and exposed, never collision-checked
	roleCount
)

func (r LayerRole) String() string {
	switch r {
	case SolidA:
		return "solid-a"
	case SolidB:
		return "solid-b"
	case Exit:
		return "exit"
	case Door:
		return "door"
	}
	return fmt.Sprintf("LayerRole(%d)", int(r))
}

// Roles lists every layer role in declaration order.
func Roles() []LayerRole {
	return []LayerRole{SolidA, SolidB, Exit, Door}
}

var (
	ErrMissingLayer = errors.New("missing tile layer")
	ErrLayerSize    = errors.New("tile layer size mismatch")
)

// Cell is an integer tile coordinate. Row 0 is the bottom row of the map.
type Cell struct {
	X, Y int
}

// Layer is a dense occupancy bitmap for one role.
type Layer struct {
	width, height int
	cells         []bool
}

func NewLayer(width, height int) *Layer {
	return &Layer{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

func (l *Layer) Width() int  { return l.width }
func (l *Layer) Height() int { return l.height }

// Set marks a cell. Coordinates outside the layer are ignored.
func (l *Layer) Set(x, y int, occupied bool) {
	if !l.contains(x, y) {
		return
	}
	l.cells[y*l.width+x] = occupied
}

// Occupied reports whether a cell holds a tile. Out-of-range cells are empty.
func (l *Layer) Occupied(x, y int) bool {
	if !l.contains(x, y) {
		return false
	}
	return l.cells[y*l.width+x]
}

// Count returns the number of occupied cells.
func (l *Layer) Count() int {
	n := 0
	for _, c := range l.cells {
		if c {
			n++
		}
	}
	return n
}

func (l *Layer) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.width && y < l.height
}

// Grid is the multi-layer static map the physics step collides against.
type Grid struct {
	Width, Height int
	layers        [roleCount]*Layer
}

// NewGrid validates and assembles the layers of a level. SolidA, SolidB and
// Exit are required; a missing Door layer is replaced by an empty one.
func NewGrid(width, height int, layers map[LayerRole]*Layer) (*Grid, error) {
	g := &Grid{Width: width, Height: height}
	for _, role := range Roles() {
		layer, ok := layers[role]
		if !ok || layer == nil {
			if role == Door {
				g.layers[role] = NewLayer(width, height)
				continue
			}
			return nil, fmt.Errorf("%w: %s", ErrMissingLayer, role)
		}
		if layer.width != width || layer.height != height {
			return nil, fmt.Errorf("%w: %s is %dx%d, grid is %dx%d",
				ErrLayerSize, role, layer.width, layer.height, width, height)
		}
		g.layers[role] = layer
	}
	return g, nil
}

// Layer returns the layer bound to role.
func (g *Grid) Layer(role LayerRole) *Layer {
	return g.layers[role]
}

func (g *Grid) Occupied(role LayerRole, x, y int) bool {
	return g.layers[role].Occupied(x, y)
}

// Solid reports whether either solid layer blocks the cell.
func (g *Grid) Solid(x, y int) bool {
	return g.layers[SolidA].Occupied(x, y) || g.layers[SolidB].Occupied(x, y)
}

// Remove clears a cell on one layer and reports whether a tile was there.
func (g *Grid) Remove(role LayerRole, x, y int) bool {
	layer := g.layers[role]
	if !layer.Occupied(x, y) {
		return false
	}
	layer.Set(x, y, false)
	return true
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// Clone returns a deep copy, so a level can be replayed after tiles were
// broken out of it.
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height}
	for i, l := range g.layers {
		c.layers[i] = &Layer{
			width:  l.width,
			height: l.height,
			cells:  append([]bool(nil), l.cells...),
		}
	}
	return c
}

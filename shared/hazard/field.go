// Package hazard detects actors touching level hazards or dropping out of
// the level. Hazard boxes live in a resolv.Space in pixel units; the space
// gives the broad phase and an exact box test settles contact.
package hazard

import (
	"github.com/cbag/codebird-cave/shared/physics"
	"github.com/cbag/codebird-cave/shared/tilegrid"
	"github.com/solarlune/resolv"
)

const (
	TagHazard = "hazard"
	TagActor  = "actor"

	// DefaultTileSize is used for levels that do not come from a map file.
	DefaultTileSize = 16
)

// Field holds the hazards of one level.
type Field struct {
	space *resolv.Space
	body  *resolv.Object
	boxes []tilegrid.Rect // world units, parallel to the space objects
	scale float64
	killY float64

	box tilegrid.Rect
}

// NewField builds a field for a level of width x height tiles of tileSize
// pixels. Actors whose top falls below killY are treated as hit.
func NewField(width, height, tileSize int, killY float64, hazards []tilegrid.Rect) *Field {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	scale := float64(tileSize)
	space := resolv.NewSpace(width*tileSize, height*tileSize, tileSize, tileSize)

	f := &Field{
		space: space,
		boxes: make([]tilegrid.Rect, 0, len(hazards)),
		scale: scale,
		killY: killY,
	}
	for i, h := range hazards {
		obj := resolv.NewObject(h.X*scale, h.Y*scale, h.W*scale, h.H*scale, TagHazard)
		obj.SetShape(resolv.NewRectangle(0, 0, h.W*scale, h.H*scale))
		obj.Data = i
		space.Add(obj)
		f.boxes = append(f.boxes, h)
	}

	f.body = resolv.NewObject(0, 0, scale, scale, TagActor)
	f.body.SetShape(resolv.NewRectangle(0, 0, scale, scale))
	space.Add(f.body)
	return f
}

// Len returns the number of hazard boxes.
func (f *Field) Len() int { return len(f.boxes) }

// Hit reports whether a overlaps a hazard or has fallen past the kill line.
func (f *Field) Hit(a *physics.Actor) bool {
	if a.Pos.Y+a.Height < f.killY {
		return true
	}
	if len(f.boxes) == 0 {
		return false
	}

	f.body.X = a.Pos.X * f.scale
	f.body.Y = a.Pos.Y * f.scale
	f.body.W = a.Width * f.scale
	f.body.H = a.Height * f.scale
	f.body.Update()

	check := f.body.Check(0, 0, TagHazard)
	if check == nil {
		return false
	}
	f.box = a.Bounds()
	for _, obj := range check.ObjectsByTags(TagHazard) {
		i, ok := obj.Data.(int)
		if !ok {
			continue
		}
		if f.box.Overlaps(&f.boxes[i]) {
			return true
		}
	}
	return false
}

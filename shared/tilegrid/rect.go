package tilegrid

import "math"

// Rect is an axis-aligned box in world units (one unit per tile).
type Rect struct {
	X, Y, W, H float64
}

func (r *Rect) Set(x, y, w, h float64) *Rect {
	r.X, r.Y, r.W, r.H = x, y, w, h
	return r
}

// Overlaps reports strict interior overlap; boxes that only touch do not
// overlap, which lets a grounded actor rest flush on a tile top.
func (r *Rect) Overlaps(o *Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Sweep grows the box to cover itself moved by (dx, dy).
func (r *Rect) Sweep(dx, dy float64) *Rect {
	if dx < 0 {
		r.X += dx
	}
	if dy < 0 {
		r.Y += dy
	}
	r.W += math.Abs(dx)
	r.H += math.Abs(dy)
	return r
}

// MovesInto reports whether moving r by (dx, dy) runs into o. The moved box
// overlapping o is a hit. A tile r already overlaps is otherwise left alone
// so an actor can move out of it; a tile the motion passes over is a hit even
// when the moved box has cleared it.
func (r *Rect) MovesInto(o *Rect, dx, dy float64) bool {
	moved := Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
	if moved.Overlaps(o) {
		return true
	}
	if r.Overlaps(o) {
		return false
	}
	swept := *r
	return swept.Sweep(dx, dy).Overlaps(o)
}

// Cell returns the tile cell holding the box origin.
func (r *Rect) Cell() Cell {
	return Cell{X: int(math.Floor(r.X)), Y: int(math.Floor(r.Y))}
}

// CellRange is an inclusive range of tile cells.
type CellRange struct {
	MinX, MinY, MaxX, MaxY int
}

// Empty reports whether the range covers no cells.
func (c CellRange) Empty() bool {
	return c.MaxX < c.MinX || c.MaxY < c.MinY
}

// SweptRange covers box at its start position and box moved by (dx, dy).
// Querying only the destination would let fast motion tunnel through
// single-tile walls.
func SweptRange(box *Rect, dx, dy float64) CellRange {
	return CellRange{
		MinX: int(math.Floor(math.Min(box.X, box.X+dx))),
		MinY: int(math.Floor(math.Min(box.Y, box.Y+dy))),
		MaxX: int(math.Floor(math.Max(box.X+box.W, box.X+box.W+dx))),
		MaxY: int(math.Floor(math.Max(box.Y+box.H, box.Y+box.H+dy))),
	}
}

// Union returns the smallest range covering both ranges.
func (c CellRange) Union(o CellRange) CellRange {
	return CellRange{
		MinX: min(c.MinX, o.MinX),
		MinY: min(c.MinY, o.MinY),
		MaxX: max(c.MaxX, o.MaxX),
		MaxY: max(c.MaxY, o.MaxY),
	}
}

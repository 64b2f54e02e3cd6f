package tilegrid

// QuerySolid returns one unit box per cell in r blocked by either solid
// layer, in row-major order (y outer, x inner). The boxes previously held in
// dst go back to the pool first, so the result of the last call is invalid
// once this returns. Cells outside the grid are skipped.
func (g *Grid) QuerySolid(pool *RectPool, dst []*Rect, r CellRange) []*Rect {
	return g.scan(pool, dst, r, g.layers[SolidA], g.layers[SolidB])
}

// QueryExit is QuerySolid over the Exit layer only.
func (g *Grid) QueryExit(pool *RectPool, dst []*Rect, r CellRange) []*Rect {
	return g.scan(pool, dst, r, g.layers[Exit], nil)
}

func (g *Grid) scan(pool *RectPool, dst []*Rect, r CellRange, a, b *Layer) []*Rect {
	pool.ReleaseAll(dst)
	dst = dst[:0]

	r = g.clip(r)
	if r.Empty() {
		return dst
	}
	for y := r.MinY; y <= r.MaxY; y++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			if a.Occupied(x, y) || (b != nil && b.Occupied(x, y)) {
				dst = append(dst, pool.Acquire().Set(float64(x), float64(y), 1, 1))
			}
		}
	}
	return dst
}

func (g *Grid) clip(r CellRange) CellRange {
	return CellRange{
		MinX: max(r.MinX, 0),
		MinY: max(r.MinY, 0),
		MaxX: min(r.MaxX, g.Width-1),
		MaxY: min(r.MaxY, g.Height-1),
	}
}

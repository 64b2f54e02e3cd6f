package tilegrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cells(rs []*Rect) []Cell {
	out := make([]Cell, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Cell())
	}
	return out
}

func TestQuerySolidRowMajorAcrossBothLayers(t *testing.T) {
	g, err := FromRows(
		"B..#",
		".#B.",
		"#..B",
	)
	require.NoError(t, err)

	pool := NewRectPool(4)
	got := g.QuerySolid(pool, nil, CellRange{MinX: 0, MinY: 0, MaxX: 3, MaxY: 2})

	assert.Equal(t, []Cell{
		{0, 0}, {3, 0},
		{1, 1}, {2, 1},
		{0, 2}, {3, 2},
	}, cells(got))
	for _, r := range got {
		assert.Equal(t, 1.0, r.W)
		assert.Equal(t, 1.0, r.H)
	}
}

func TestQuerySolidOneBoxPerCell(t *testing.T) {
	layers := map[LayerRole]*Layer{
		SolidA: NewLayer(1, 1),
		SolidB: NewLayer(1, 1),
		Exit:   NewLayer(1, 1),
	}
	layers[SolidA].Set(0, 0, true)
	layers[SolidB].Set(0, 0, true)
	g, err := NewGrid(1, 1, layers)
	require.NoError(t, err)

	got := g.QuerySolid(NewRectPool(0), nil, CellRange{0, 0, 0, 0})
	assert.Len(t, got, 1)
}

func TestQueryExitIgnoresSolids(t *testing.T) {
	g, err := FromRows(
		"#E",
		"E#",
	)
	require.NoError(t, err)

	got := g.QueryExit(NewRectPool(0), nil, CellRange{0, 0, 1, 1})
	assert.Equal(t, []Cell{{0, 0}, {1, 1}}, cells(got))
}

func TestQueryOutOfBoundsIsEmptyNotError(t *testing.T) {
	g, err := FromRows(
		"##",
		"##",
	)
	require.NoError(t, err)
	pool := NewRectPool(0)

	assert.Empty(t, g.QuerySolid(pool, nil, CellRange{MinX: 5, MinY: 5, MaxX: 9, MaxY: 9}))
	assert.Empty(t, g.QuerySolid(pool, nil, CellRange{MinX: -4, MinY: -4, MaxX: -1, MaxY: -1}))

	got := g.QuerySolid(pool, nil, CellRange{MinX: -1, MinY: -1, MaxX: 0, MaxY: 0})
	assert.Equal(t, []Cell{{0, 0}}, cells(got), "range straddling the edge keeps in-grid cells")
}

func TestQueryRecyclesPreviousResult(t *testing.T) {
	g, err := FromRows("####")
	require.NoError(t, err)
	pool := NewRectPool(0)

	var buf []*Rect
	buf = g.QuerySolid(pool, buf, CellRange{0, 0, 3, 0})
	require.Len(t, buf, 4)
	assert.Equal(t, 4, pool.Allocated())

	for i := 0; i < 10; i++ {
		buf = g.QuerySolid(pool, buf, CellRange{0, 0, 3, 0})
	}
	assert.Len(t, buf, 4)
	assert.Equal(t, 4, pool.Allocated(), "steady-state queries reuse boxes")
	assert.Equal(t, 0, pool.Free())
}

func TestSweptRangeCoversStartAndEnd(t *testing.T) {
	box := &Rect{X: 2.5, Y: 3, W: 1, H: 1}

	assert.Equal(t, CellRange{MinX: 2, MinY: 3, MaxX: 6, MaxY: 4}, SweptRange(box, 3, 0))
	assert.Equal(t, CellRange{MinX: 0, MinY: 3, MaxX: 3, MaxY: 4}, SweptRange(box, -2, 0))
	assert.Equal(t, CellRange{MinX: 2, MinY: 1, MaxX: 3, MaxY: 4}, SweptRange(box, 0, -1.5))
	assert.Equal(t, CellRange{MinX: -1, MinY: 3, MaxX: 3, MaxY: 4}, SweptRange(box, -3.2, 0))
}

func TestRectOverlapsIsStrict(t *testing.T) {
	tile := &Rect{X: 5, Y: 2, W: 1, H: 1}

	assert.False(t, (&Rect{X: 4, Y: 2, W: 1, H: 1}).Overlaps(tile), "touching edge")
	assert.False(t, (&Rect{X: 5, Y: 3, W: 1, H: 1}).Overlaps(tile), "resting on top")
	assert.True(t, (&Rect{X: 4.01, Y: 2, W: 1, H: 1}).Overlaps(tile))
	assert.True(t, (&Rect{X: 5.2, Y: 2.9, W: 0.5, H: 0.5}).Overlaps(tile))
}

func TestRectPoolAcquireZeroes(t *testing.T) {
	pool := NewRectPool(1)
	r := pool.Acquire()
	r.Set(1, 2, 3, 4)
	pool.Release(r)

	again := pool.Acquire()
	assert.Same(t, r, again)
	assert.Equal(t, Rect{}, *again)

	pool.Release(nil)
	assert.Equal(t, 0, pool.Free())
}

func TestRectSweepCoversTravel(t *testing.T) {
	r := (&Rect{X: 2, Y: 3, W: 1, H: 1}).Sweep(-1.5, 0.5)
	assert.Equal(t, Rect{X: 0.5, Y: 3, W: 2.5, H: 1.5}, *r)
}

func TestRectMovesInto(t *testing.T) {
	wall := &Rect{X: 5, Y: 1, W: 1, H: 1}
	tests := []struct {
		name   string
		box    Rect
		dx, dy float64
		want   bool
	}{
		{"destination overlaps", Rect{X: 3.9, Y: 1, W: 1, H: 1}, 0.2, 0, true},
		{"crosses the whole tile", Rect{X: 2, Y: 1, W: 1, H: 1}, 4, 0, true},
		{"stops short", Rect{X: 2, Y: 1, W: 1, H: 1}, 1.5, 0, false},
		{"leaves an overlapped tile", Rect{X: 5.95, Y: 1, W: 1, H: 1}, 0.13, 0, false},
		{"stays inside an overlapped tile", Rect{X: 5.5, Y: 1, W: 1, H: 1}, 0.1, 0, true},
		{"falls away from a tile above", Rect{X: 5, Y: 0.5, W: 1, H: 1}, 0, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := tt.box
			assert.Equal(t, tt.want, box.MovesInto(wall, tt.dx, tt.dy))
			assert.Equal(t, tt.box, box, "the box itself is not moved")
		})
	}
}

package tilegrid

import "fmt"

// FromRows builds a grid from a text picture, top row first:
//
//	'#' solid-a, 'B' solid-b, 'E' exit, 'D' door, anything else empty.
//
// Every row must have the same width. Used by tests and the simulator.
func FromRows(rows ...string) (*Grid, error) {
	height := len(rows)
	if height == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrLayerSize)
	}
	width := len(rows[0])

	layers := map[LayerRole]*Layer{}
	for _, role := range Roles() {
		layers[role] = NewLayer(width, height)
	}

	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d is %d wide, want %d", ErrLayerSize, i, len(row), width)
		}
		y := height - 1 - i
		for x, ch := range row {
			switch ch {
			case '#':
				layers[SolidA].Set(x, y, true)
			case 'B':
				layers[SolidB].Set(x, y, true)
			case 'E':
				layers[Exit].Set(x, y, true)
			case 'D':
				layers[Door].Set(x, y, true)
			}
		}
	}
	return NewGrid(width, height, layers)
}

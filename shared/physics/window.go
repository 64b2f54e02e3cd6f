package physics

// ScrollWindow is the horizontal range a player may occupy. Min trails the
// player's scroll anchor by Margin and never moves back while the anchor
// advances; Max is the level end.
type ScrollWindow struct {
	Min, Max float64
	Margin   float64
}

func NewScrollWindow(anchorX, max, margin float64) ScrollWindow {
	w := ScrollWindow{Max: max, Margin: margin}
	w.Track(anchorX)
	return w
}

// Clamp pulls x into [Min, Max-1].
func (w *ScrollWindow) Clamp(x float64) float64 {
	if x < w.Min {
		x = w.Min
	}
	if x >= w.Max-1 {
		x = w.Max - 1
	}
	return x
}

// Track recomputes Min from the anchor while the anchor is short of the
// level end.
func (w *ScrollWindow) Track(anchorX float64) {
	if anchorX < w.Max {
		w.Min = anchorX - w.Margin
	}
}

// CameraX is the horizontal camera centre for an anchor: it follows the
// anchor and stops a margin short of the level end.
func (w *ScrollWindow) CameraX(anchorX float64) float64 {
	if limit := w.Max - w.Margin; anchorX > limit {
		return limit
	}
	return anchorX
}

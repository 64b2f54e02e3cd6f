package physics

import (
	"fmt"

	"github.com/cbag/codebird-cave/shared/tilegrid"
)

// Intent is the input snapshot sampled once per tick.
type Intent struct {
	Left          bool
	Right         bool
	Jump          bool
	Reset         bool
	DebugTeleport bool
}

// EventKind identifies a trigger raised during a tick.
type EventKind int

const (
	// EventLevelComplete fires at most once per tick while the actor
	// overlaps an exit tile.
	EventLevelComplete EventKind = iota
	// EventTileBroken carries the solid-b cell removed by a hit from below.
	EventTileBroken
	// EventResetRequested is raised by the reset input.
	EventResetRequested
	// EventHazard is raised outside the step by hazard checks.
	EventHazard
)

func (k EventKind) String() string {
	switch k {
	case EventLevelComplete:
		return "level-complete"
	case EventTileBroken:
		return "tile-broken"
	case EventResetRequested:
		return "reset-requested"
	case EventHazard:
		return "hazard"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

type Event struct {
	Kind EventKind
	Cell tilegrid.Cell
}

func (e Event) String() string {
	if e.Kind == EventTileBroken {
		return fmt.Sprintf("%s(%d,%d)", e.Kind, e.Cell.X, e.Cell.Y)
	}
	return e.Kind.String()
}

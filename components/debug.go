package components

import (
	"github.com/yohamta/donburi"
)

const debugLogSize = 6

// DebugData backs the overlay: whether it is shown and the latest events.
type DebugData struct {
	Overlay bool
	Log     [debugLogSize]string
	next    int
	Ticks   int
}

// Record appends a line to the ring of recent events.
func (d *DebugData) Record(line string) {
	d.Log[d.next%debugLogSize] = line
	d.next++
}

// Recent returns the recorded lines, oldest first.
func (d *DebugData) Recent() []string {
	n := min(d.next, debugLogSize)
	out := make([]string, 0, n)
	for i := d.next - n; i < d.next; i++ {
		out = append(out, d.Log[i%debugLogSize])
	}
	return out
}

var Debug = donburi.NewComponentType[DebugData]()

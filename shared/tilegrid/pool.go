package tilegrid

// RectPool recycles collision boxes so the per-frame queries do not
// allocate. A box must not be read after it is released.
type RectPool struct {
	free      []*Rect
	allocated int
}

// NewRectPool returns a pool with capacity boxes ready to hand out.
func NewRectPool(capacity int) *RectPool {
	p := &RectPool{free: make([]*Rect, 0, capacity)}
	for i := 0; i < capacity; i++ {
		p.free = append(p.free, &Rect{})
	}
	p.allocated = capacity
	return p
}

// Acquire returns a zeroed box.
func (p *RectPool) Acquire() *Rect {
	if n := len(p.free); n > 0 {
		r := p.free[n-1]
		p.free = p.free[:n-1]
		*r = Rect{}
		return r
	}
	p.allocated++
	return &Rect{}
}

func (p *RectPool) Release(r *Rect) {
	if r == nil {
		return
	}
	p.free = append(p.free, r)
}

func (p *RectPool) ReleaseAll(rs []*Rect) {
	for _, r := range rs {
		p.Release(r)
	}
}

// Free returns the number of idle boxes.
func (p *RectPool) Free() int { return len(p.free) }

// Allocated returns how many boxes the pool has ever created.
func (p *RectPool) Allocated() int { return p.allocated }

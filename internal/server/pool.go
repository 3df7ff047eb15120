package server

import "sync"

// formPool hands out one form instance per client while that client has a
// request in flight, so a double submit from the same client hits the form's
// in-progress guard. Idle instances are dropped.
type formPool[F any] struct {
	mu    sync.Mutex
	slots map[string]*formSlot[F]
	build func() F
}

type formSlot[F any] struct {
	form F
	refs int
}

func newFormPool[F any](build func() F) *formPool[F] {
	return &formPool[F]{
		slots: make(map[string]*formSlot[F]),
		build: build,
	}
}

// acquire returns the form for key. Every acquire must be paired with release.
func (p *formPool[F]) acquire(key string) F {
	p.mu.Lock()
	defer p.mu.Unlock()

	slot, ok := p.slots[key]
	if !ok {
		slot = &formSlot[F]{form: p.build()}
		p.slots[key] = slot
	}
	slot.refs++
	return slot.form
}

func (p *formPool[F]) release(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	slot, ok := p.slots[key]
	if !ok {
		return
	}
	slot.refs--
	if slot.refs <= 0 {
		delete(p.slots, key)
	}
}

// size is the number of live form instances.
func (p *formPool[F]) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.slots)
}

package debounce

import (
	"context"
	"sync"
	"time"

	"github.com/bep/debounce"
)

// Group holds independent debounce lanes keyed by name. Within a lane only the
// last function triggered inside the delay window runs; triggering again
// restarts the window.
type Group struct {
	delay time.Duration

	mu      sync.Mutex
	lanes   map[string]*lane
	pending int
	idle    []chan struct{}
}

type lane struct {
	schedule func(func())
	gen      uint64
	pending  bool
}

// NewGroup creates a group with the given per-lane delay.
func NewGroup(delay time.Duration) *Group {
	if delay <= 0 {
		delay = time.Millisecond
	}
	return &Group{
		delay: delay,
		lanes: make(map[string]*lane),
	}
}

// Delay returns the quiet period applied to each lane.
func (g *Group) Delay() time.Duration {
	return g.delay
}

// Trigger replaces the pending function of the lane and restarts its timer.
func (g *Group) Trigger(key string, fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	l := g.laneLocked(key)
	l.gen++
	gen := l.gen
	if !l.pending {
		l.pending = true
		g.pending++
	}
	// Scheduling under the group lock keeps timer replacement in trigger order.
	l.schedule(func() {
		if !g.claim(l, gen) {
			return
		}
		defer g.release()
		fn()
	})
}

// Cancel drops the pending function of a lane, if any.
func (g *Group) Cancel(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if l, ok := g.lanes[key]; ok {
		g.cancelLocked(l)
	}
}

// CancelAll drops every pending function.
func (g *Group) CancelAll() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, l := range g.lanes {
		g.cancelLocked(l)
	}
}

// Pending reports whether the lane has a function waiting to run.
func (g *Group) Pending(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	l, ok := g.lanes[key]
	return ok && l.pending
}

// Wait blocks until no function is pending or running, or ctx is done.
func (g *Group) Wait(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	g.mu.Lock()
	if g.pending == 0 {
		g.mu.Unlock()
		return nil
	}
	ch := make(chan struct{})
	g.idle = append(g.idle, ch)
	g.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *Group) laneLocked(key string) *lane {
	l, ok := g.lanes[key]
	if !ok {
		l = &lane{schedule: debounce.New(g.delay)}
		g.lanes[key] = l
	}
	return l
}

// claim marks the lane as fired when gen is still the latest trigger. The
// pending slot stays held until release so Wait covers the run.
func (g *Group) claim(l *lane, gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !l.pending || l.gen != gen {
		return false
	}
	l.pending = false
	return true
}

func (g *Group) release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.doneLocked()
}

func (g *Group) cancelLocked(l *lane) {
	l.gen++
	if l.pending {
		l.pending = false
		g.doneLocked()
	}
}

func (g *Group) doneLocked() {
	g.pending--
	if g.pending > 0 {
		return
	}
	g.pending = 0
	for _, ch := range g.idle {
		close(ch)
	}
	g.idle = nil
}

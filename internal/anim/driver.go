package anim

import (
	"github.com/san-kum/shaderlab/internal/effect"
	"github.com/san-kum/shaderlab/internal/frame"
	"github.com/san-kum/shaderlab/internal/logging"
)

type State int

const (
	Paused State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "paused"
}

// Scheduler is the host's frame primitive. *frame.Loop implements it.
type Scheduler interface {
	Request(cb frame.Callback) frame.ID
	Cancel(id frame.ID) bool
	Now() float64
}

// Driver animates one effect on one surface.
type Driver struct {
	effect  effect.Effect
	table   *Table
	sched   Scheduler
	surface effect.Surface
	state   State
	pending frame.ID
	last    float64
	frames  uint64
	closed  bool
}

// NewDriver creates a paused driver with no surface attached.
func NewDriver(e effect.Effect, table *Table, sched Scheduler) *Driver {
	return &Driver{effect: e, table: table, sched: sched}
}

func (d *Driver) State() State     { return d.state }
func (d *Driver) Playing() bool    { return d.state == Playing }
func (d *Driver) Elapsed() float64 { return d.table.Elapsed(d.effect.ID) }

// Frames returns how many times the effect has been rendered.
func (d *Driver) Frames() uint64 { return d.frames }

// Surface returns the attached surface, nil when detached.
func (d *Driver) Surface() effect.Surface { return d.surface }

// Play enters Playing and schedules the first frame. Time starts counting
// from the scheduler's current timestamp.
func (d *Driver) Play() {
	if d.closed || d.state == Playing {
		return
	}
	d.state = Playing
	d.last = d.sched.Now()
	logging.Logger().Debug("driver playing", "effect", d.effect.ID, "elapsed", d.Elapsed())
	d.schedule()
}

// Pause enters Paused, cancels the pending frame and repaints once at the
// frozen time.
func (d *Driver) Pause() {
	if d.state == Paused {
		return
	}
	d.state = Paused
	d.cancel()
	logging.Logger().Debug("driver paused", "effect", d.effect.ID, "elapsed", d.Elapsed())
	d.Redraw()
}

// Attach binds a surface. A paused driver repaints once; a playing driver
// resumes its frame callbacks, measuring the next delta from now.
func (d *Driver) Attach(s effect.Surface) {
	if d.closed {
		return
	}
	d.surface = s
	if d.state == Playing {
		d.last = d.sched.Now()
		if d.pending == 0 {
			d.schedule()
		}
		return
	}
	d.Redraw()
}

// Detach drops the surface and cancels any pending frame. The state is
// kept so a later Attach continues where it left off.
func (d *Driver) Detach() {
	d.cancel()
	d.surface = nil
}

// Close detaches and disables the driver for good.
func (d *Driver) Close() {
	d.Detach()
	d.state = Paused
	d.closed = true
}

// Redraw repaints at the current elapsed time without advancing it.
func (d *Driver) Redraw() {
	if d.surface == nil {
		return
	}
	d.effect.Render(d.surface, d.Elapsed())
	d.frames++
}

func (d *Driver) schedule() {
	d.pending = d.sched.Request(d.onFrame)
}

func (d *Driver) cancel() {
	if d.pending != 0 {
		d.sched.Cancel(d.pending)
		d.pending = 0
	}
}

func (d *Driver) onFrame(ts float64) {
	d.pending = 0
	if d.state != Playing {
		return
	}
	if d.surface == nil {
		logging.Logger().Debug("frame skipped: no surface", "effect", d.effect.ID)
		return
	}
	delta := (ts - d.last) / 1000
	d.last = ts
	d.table.Advance(d.effect.ID, delta)
	d.Redraw()
	d.schedule()
}

package gallery

import (
	"fmt"

	"github.com/san-kum/shaderlab/internal/anim"
	"github.com/san-kum/shaderlab/internal/effect"
	"github.com/san-kum/shaderlab/internal/logging"
	"github.com/san-kum/shaderlab/internal/surface"
)

// Snapshot is a point-in-time copy of the controller state.
type Snapshot struct {
	Selected int
	Held     bool
	Elapsed  map[int]float64
}

// Controller owns the PlayingSelector and the elapsed-time table.
type Controller struct {
	units    []*Unit
	index    map[int]int
	table    *anim.Table
	selected int
	held     bool
}

// New builds one unmounted unit per effect of reg, selecting the first.
// Surfaces are width×height; non-positive sizes fall back to 400×300.
func New(reg *effect.Registry, sched anim.Scheduler, width, height int) *Controller {
	if width <= 0 || height <= 0 {
		width, height = surface.DefaultWidth, surface.DefaultHeight
	}

	effects := reg.All()
	ids := make([]int, len(effects))
	for i, e := range effects {
		ids[i] = e.ID
	}

	c := &Controller{
		units: make([]*Unit, 0, len(effects)),
		index: make(map[int]int, len(effects)),
		table: anim.NewTable(ids...),
	}
	for i, e := range effects {
		c.units = append(c.units, &Unit{
			Effect: e,
			driver: anim.NewDriver(e, c.table, sched),
			width:  width,
			height: height,
		})
		c.index[e.ID] = i
	}
	if len(effects) > 0 {
		c.selected = effects[0].ID
	}
	c.sync()
	return c
}

// Units returns the units in registration order.
func (c *Controller) Units() []*Unit { return c.units }

func (c *Controller) Unit(id int) (*Unit, error) {
	i, ok := c.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", effect.ErrUnknownEffect, id)
	}
	return c.units[i], nil
}

// Selected returns the PlayingSelector.
func (c *Controller) Selected() int { return c.selected }

// IsHeld reports whether the selected effect was manually paused.
func (c *Controller) IsHeld() bool { return c.held }

// IsPlaying reports whether id is currently animating.
func (c *Controller) IsPlaying(id int) bool {
	u, err := c.Unit(id)
	return err == nil && u.Playing()
}

func (c *Controller) Elapsed(id int) float64 { return c.table.Elapsed(id) }

// Hover selects id.
func (c *Controller) Hover(id int) error { return c.selectEffect(id, "hover") }

// Click selects id, same as Hover.
func (c *Controller) Click(id int) error { return c.selectEffect(id, "click") }

// Leave is deliberately a no-op: the selection stays until another hover
// or click.
func (c *Controller) Leave(id int) error {
	_, err := c.Unit(id)
	return err
}

// Toggle pauses or resumes the selected effect without changing the
// selection.
func (c *Controller) Toggle() {
	if len(c.units) == 0 {
		return
	}
	c.held = !c.held
	logging.Logger().Info("toggle", "effect", c.selected, "held", c.held)
	c.sync()
}

// CanToggle reports whether the play/pause control is offered for id.
func (c *Controller) CanToggle(id int) bool { return id == c.selected }

// Mount gives the unit a fresh surface and paints it.
func (c *Controller) Mount(id int) error {
	u, err := c.Unit(id)
	if err != nil {
		return err
	}
	u.mount()
	return nil
}

// Unmount releases the unit's surface and cancels its frame callback.
func (c *Controller) Unmount(id int) error {
	u, err := c.Unit(id)
	if err != nil {
		return err
	}
	u.unmount()
	return nil
}

func (c *Controller) MountAll() {
	for _, u := range c.units {
		u.mount()
	}
}

// Close unmounts every unit.
func (c *Controller) Close() {
	for _, u := range c.units {
		u.unmount()
	}
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{Selected: c.selected, Held: c.held, Elapsed: c.table.Snapshot()}
}

func (c *Controller) selectEffect(id int, source string) error {
	if _, err := c.Unit(id); err != nil {
		return err
	}
	if id == c.selected {
		return nil
	}
	c.selected = id
	c.held = false
	logging.Logger().Info("selection changed", "effect", id, "source", source)
	c.sync()
	return nil
}

// sync derives every driver's state from the selector.
func (c *Controller) sync() {
	for _, u := range c.units {
		if u.Effect.ID == c.selected && !c.held {
			u.driver.Play()
		} else {
			u.driver.Pause()
		}
	}
}

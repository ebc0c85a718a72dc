package gallery

import (
	"github.com/san-kum/shaderlab/internal/anim"
	"github.com/san-kum/shaderlab/internal/effect"
	"github.com/san-kum/shaderlab/internal/surface"
)

// Unit is the display of one effect: its surface and its driver.
type Unit struct {
	Effect  effect.Effect
	driver  *anim.Driver
	surface *surface.Pixmap
	width   int
	height  int
}

// Surface returns the unit's pixmap, or nil while unmounted.
func (u *Unit) Surface() *surface.Pixmap { return u.surface }

func (u *Unit) Mounted() bool     { return u.surface != nil }
func (u *Unit) State() anim.State { return u.driver.State() }
func (u *Unit) Playing() bool     { return u.driver.Playing() }
func (u *Unit) Elapsed() float64  { return u.driver.Elapsed() }
func (u *Unit) Frames() uint64    { return u.driver.Frames() }

func (u *Unit) mount() {
	if u.surface != nil {
		return
	}
	u.surface = surface.New(u.width, u.height)
	u.driver.Attach(u.surface)
}

func (u *Unit) unmount() {
	if u.surface == nil {
		return
	}
	u.driver.Detach()
	u.surface = nil
}

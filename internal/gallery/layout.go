package gallery

import "image"

// Layout metrics for pixel hosts, in window pixels.
const (
	LayoutPadding = 20
	LayoutHeader  = 48
	LayoutLabel   = 24
	ButtonWidth   = 120
	ButtonHeight  = 28
	buttonGap     = 8
	footerHeight  = 28
)

// Slot is where a pixel host draws one unit.
type Slot struct {
	Label  image.Rectangle
	Canvas image.Rectangle
	Button image.Rectangle
}

// Layout places units left to right.
type Layout struct {
	Slots  []Slot
	Width  int
	Height int
}

// NewLayout arranges n units whose canvases are width×height.
func NewLayout(n, width, height int) Layout {
	l := Layout{Slots: make([]Slot, n)}
	top := LayoutHeader + LayoutLabel
	for i := range l.Slots {
		x := LayoutPadding + i*(width+LayoutPadding)
		canvas := image.Rect(x, top, x+width, top+height)
		bw := min(ButtonWidth, width)
		bx := x + (width-bw)/2
		by := canvas.Max.Y + buttonGap
		l.Slots[i] = Slot{
			Label:  image.Rect(x, LayoutHeader, x+width, top),
			Canvas: canvas,
			Button: image.Rect(bx, by, bx+bw, by+ButtonHeight),
		}
	}
	l.Width = LayoutPadding + n*(width+LayoutPadding)
	l.Height = top + height + buttonGap + ButtonHeight + LayoutPadding + footerHeight
	return l
}

// FooterY is the baseline row for status text.
func (l Layout) FooterY() int { return l.Height - footerHeight }

// HitTest returns the slot under (x, y). A point on the label or the canvas
// hits the unit; onButton reports a hit on its button.
func (l Layout) HitTest(x, y int) (index int, onButton, ok bool) {
	p := image.Pt(x, y)
	for i, s := range l.Slots {
		if p.In(s.Button) {
			return i, true, true
		}
		if p.In(s.Label) || p.In(s.Canvas) {
			return i, false, true
		}
	}
	return 0, false, false
}

// Pointer turns raw pointer positions into Hover, Leave, Click and Toggle
// calls, the way a browser derives enter and leave events.
type Pointer struct {
	ctrl    *Controller
	layout  Layout
	hovered int
}

func NewPointer(ctrl *Controller, layout Layout) *Pointer {
	return &Pointer{ctrl: ctrl, layout: layout}
}

// Hovered returns the effect under the pointer, 0 when none.
func (p *Pointer) Hovered() int { return p.hovered }

// Move reports the pointer position.
func (p *Pointer) Move(x, y int) {
	id := 0
	if i, _, ok := p.layout.HitTest(x, y); ok {
		id = p.ctrl.units[i].Effect.ID
	}
	if id == p.hovered {
		return
	}
	if p.hovered != 0 {
		_ = p.ctrl.Leave(p.hovered)
	}
	p.hovered = id
	if id != 0 {
		_ = p.ctrl.Hover(id)
	}
}

// Press reports a primary button press at (x, y). Pressing the selected
// unit's button toggles it; pressing anywhere else on a unit clicks it.
func (p *Pointer) Press(x, y int) {
	i, onButton, ok := p.layout.HitTest(x, y)
	if !ok {
		return
	}
	id := p.ctrl.units[i].Effect.ID
	if onButton && p.ctrl.CanToggle(id) {
		p.ctrl.Toggle()
		return
	}
	_ = p.ctrl.Click(id)
}

// Package web is the ebiten gallery. It runs as a desktop window and, built
// with GOOS=js GOARCH=wasm, inside a browser page.
package web

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/san-kum/shaderlab/internal/config"
	"github.com/san-kum/shaderlab/internal/effect"
	"github.com/san-kum/shaderlab/internal/frame"
	"github.com/san-kum/shaderlab/internal/gallery"
	"github.com/san-kum/shaderlab/internal/logging"
)

var (
	colText    = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	colTextDim = color.RGBA{R: 60, G: 60, B: 60, A: 255}
)

type game struct {
	ctrl    *gallery.Controller
	loop    *frame.Loop
	layout  gallery.Layout
	pointer *gallery.Pointer
	images  []*ebiten.Image
	period  float64
	clock   float64

	bg          color.RGBA
	placeholder color.RGBA
	accent      color.RGBA
}

func newGame(cfg *config.Config, reg *effect.Registry) *game {
	loop := frame.NewLoop()
	ctrl := gallery.New(reg, loop, cfg.Width, cfg.Height)
	layout := gallery.NewLayout(len(ctrl.Units()), cfg.Width, cfg.Height)

	g := &game{
		ctrl:        ctrl,
		loop:        loop,
		layout:      layout,
		pointer:     gallery.NewPointer(ctrl, layout),
		period:      cfg.FrameMillis(),
		bg:          config.MustColor(cfg.Colors.Background, color.RGBA{A: 255}),
		placeholder: config.MustColor(cfg.Colors.Placeholder, color.RGBA{R: 31, G: 41, B: 55, A: 255}),
		accent:      config.MustColor(cfg.Colors.Accent, color.RGBA{R: 255, G: 255, B: 255, A: 255}),
	}
	for range ctrl.Units() {
		g.images = append(g.images, ebiten.NewImage(cfg.Width, cfg.Height))
	}
	ctrl.MountAll()
	return g
}

func justPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func (g *game) Update() error {
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.ctrl.Close()
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	g.pointer.Move(x, y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pointer.Press(x, y)
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		g.pointer.Move(tx, ty)
		g.pointer.Press(tx, ty)
	}
	if justPressed(ebiten.KeySpace) {
		g.ctrl.Toggle()
	}

	// one tick is one display frame
	g.clock += g.period
	g.loop.Pump(g.clock)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	ebitenutil.DebugPrintAt(screen, "shaderlab - hover to animate", gallery.LayoutPadding, 16)

	for i, u := range g.ctrl.Units() {
		g.drawUnit(screen, i, u)
	}

	status := fmt.Sprintf("selected %d  held %v  fps %.0f", g.ctrl.Selected(), g.ctrl.IsHeld(), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, status, gallery.LayoutPadding, g.layout.FooterY())
}

func (g *game) drawUnit(screen *ebiten.Image, i int, u *gallery.Unit) {
	slot := g.layout.Slots[i]
	c := slot.Canvas
	selected := u.Effect.ID == g.ctrl.Selected()

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %.1fs", u.Effect.Name, u.Elapsed()), slot.Label.Min.X, slot.Label.Min.Y+4)

	if s := u.Surface(); s != nil {
		g.images[i].WritePixels(s.Data())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(c.Min.X), float64(c.Min.Y))
		screen.DrawImage(g.images[i], op)
	} else {
		vector.DrawFilledRect(screen, float32(c.Min.X), float32(c.Min.Y), float32(c.Dx()), float32(c.Dy()), g.placeholder, false)
		ebitenutil.DebugPrintAt(screen, "Loading shader...", c.Min.X+c.Dx()/2-50, c.Min.Y+c.Dy()/2-8)
	}

	if selected {
		vector.StrokeRect(screen, float32(c.Min.X-2), float32(c.Min.Y-2), float32(c.Dx()+4), float32(c.Dy()+4), 2, g.accent, false)
	}

	if g.ctrl.CanToggle(u.Effect.ID) {
		b := slot.Button
		text := "Pause"
		if !u.Playing() {
			text = "Play"
		}
		vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), colTextDim, false)
		vector.StrokeRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), 1, colText, false)
		ebitenutil.DebugPrintAt(screen, text, b.Min.X+b.Dx()/2-len(text)*3, b.Min.Y+6)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Width, g.layout.Height
}

// Run opens the gallery and blocks until it is closed.
func Run(cfg *config.Config, reg *effect.Registry) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	g := newGame(cfg, reg)
	ebiten.SetWindowSize(g.layout.Width, g.layout.Height)
	ebiten.SetWindowTitle("shaderlab - hover to animate, Space: Play/Pause, Esc/Q: Quit")
	ebiten.SetTPS(cfg.FPS)
	logging.Logger().Info("web gallery started", "width", g.layout.Width, "height", g.layout.Height)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

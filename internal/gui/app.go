// Package gui is the native desktop gallery built on raylib.
package gui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/shaderlab/internal/config"
	"github.com/san-kum/shaderlab/internal/effect"
	"github.com/san-kum/shaderlab/internal/frame"
	"github.com/san-kum/shaderlab/internal/gallery"
	"github.com/san-kum/shaderlab/internal/logging"
	"github.com/san-kum/shaderlab/internal/surface"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	ColTextDim = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
	ColSelect  = rl.NewColor(255, 255, 255, 255) // Bright White
)

type App struct {
	cfg      *config.Config
	ctrl     *gallery.Controller
	loop     *frame.Loop
	layout   gallery.Layout
	pointer  *gallery.Pointer
	textures []rl.Texture2D
	pixels   []color.RGBA

	bg          color.RGBA
	placeholder color.RGBA
	accent      color.RGBA
}

// NewApp builds a mounted gallery. The window must not be open yet.
func NewApp(cfg *config.Config, reg *effect.Registry) *App {
	loop := frame.NewLoop()
	ctrl := gallery.New(reg, loop, cfg.Width, cfg.Height)
	layout := gallery.NewLayout(len(ctrl.Units()), cfg.Width, cfg.Height)

	return &App{
		cfg:         cfg,
		ctrl:        ctrl,
		loop:        loop,
		layout:      layout,
		pointer:     gallery.NewPointer(ctrl, layout),
		pixels:      make([]color.RGBA, cfg.Width*cfg.Height),
		bg:          config.MustColor(cfg.Colors.Background, color.RGBA{A: 255}),
		placeholder: config.MustColor(cfg.Colors.Placeholder, color.RGBA{R: 31, G: 41, B: 55, A: 255}),
		accent:      config.MustColor(cfg.Colors.Accent, ColSelect),
	}
}

// initWindow opens a window sized to the layout and loads one texture per
// unit.
func (a *App) initWindow() {
	rl.InitWindow(int32(a.layout.Width), int32(a.layout.Height), "shaderlab")
	rl.SetTargetFPS(int32(a.cfg.FPS))
	rl.SetExitKey(0)

	blank := surface.New(a.cfg.Width, a.cfg.Height)
	for range a.ctrl.Units() {
		img := rl.NewImageFromImage(blank)
		a.textures = append(a.textures, rl.LoadTextureFromImage(img))
		rl.UnloadImage(img)
	}
}

func (a *App) close() {
	a.ctrl.Close()
	for _, t := range a.textures {
		rl.UnloadTexture(t)
	}
	rl.CloseWindow()
}

func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return false
	}

	mouse := rl.GetMousePosition()
	x, y := int(mouse.X), int(mouse.Y)
	a.pointer.Move(x, y)
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.pointer.Press(x, y)
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.ctrl.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyM) {
		if i, _, ok := a.layout.HitTest(x, y); ok {
			u := a.ctrl.Units()[i]
			if u.Mounted() {
				_ = a.ctrl.Unmount(u.Effect.ID)
			} else {
				_ = a.ctrl.Mount(u.Effect.ID)
			}
		}
	}

	a.loop.Pump(rl.GetTime() * 1000)
	return true
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.bg)

	rl.DrawText("shaderlab", int32(gallery.LayoutPadding), 14, 24, ColSelect)
	rl.DrawText("hover to animate", int32(gallery.LayoutPadding)+140, 20, 16, ColTextDim)

	for i, u := range a.ctrl.Units() {
		a.drawUnit(i, u)
	}

	status := fmt.Sprintf("selected %d  held %v  fps %d", a.ctrl.Selected(), a.ctrl.IsHeld(), rl.GetFPS())
	rl.DrawText(status, int32(gallery.LayoutPadding), int32(a.layout.FooterY()), 16, ColTextDim)
	rl.EndDrawing()
}

func (a *App) drawUnit(i int, u *gallery.Unit) {
	slot := a.layout.Slots[i]
	selected := u.Effect.ID == a.ctrl.Selected()

	nameCol := ColText
	if selected {
		nameCol = a.accent
	}
	label := fmt.Sprintf("%s  %.1fs", u.Effect.Name, u.Elapsed())
	rl.DrawText(label, int32(slot.Label.Min.X), int32(slot.Label.Min.Y)+2, 18, nameCol)

	c := slot.Canvas
	if s := u.Surface(); s != nil {
		rl.UpdateTexture(a.textures[i], toColors(s, a.pixels))
		rl.DrawTexture(a.textures[i], int32(c.Min.X), int32(c.Min.Y), rl.White)
	} else {
		rl.DrawRectangle(int32(c.Min.X), int32(c.Min.Y), int32(c.Dx()), int32(c.Dy()), a.placeholder)
		msg := "Loading shader..."
		w := rl.MeasureText(msg, 18)
		rl.DrawText(msg, int32(c.Min.X+c.Dx()/2)-w/2, int32(c.Min.Y+c.Dy()/2-9), 18, ColText)
	}
	if selected {
		rl.DrawRectangleLines(int32(c.Min.X)-2, int32(c.Min.Y)-2, int32(c.Dx())+4, int32(c.Dy())+4, a.accent)
	}

	if a.ctrl.CanToggle(u.Effect.ID) {
		b := slot.Button
		text := "Pause"
		if !u.Playing() {
			text = "Play"
		}
		rl.DrawRectangle(int32(b.Min.X), int32(b.Min.Y), int32(b.Dx()), int32(b.Dy()), a.accent)
		w := rl.MeasureText(text, 18)
		rl.DrawText(text, int32(b.Min.X+b.Dx()/2)-w/2, int32(b.Min.Y+5), 18, a.bg)
	}
}

// toColors copies the pixmap into dst in texture order.
func toColors(p *surface.Pixmap, dst []color.RGBA) []color.RGBA {
	data := p.Data()
	n := len(data) / 4
	if cap(dst) < n {
		dst = make([]color.RGBA, n)
	}
	dst = dst[:n]
	for i := range dst {
		dst[i] = color.RGBA{R: data[i*4], G: data[i*4+1], B: data[i*4+2], A: data[i*4+3]}
	}
	return dst
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, reg *effect.Registry) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	app := NewApp(cfg, reg)
	app.initWindow()
	defer app.close()

	app.ctrl.MountAll()
	logging.Logger().Info("gui started", "width", app.layout.Width, "height", app.layout.Height)

	for !rl.WindowShouldClose() {
		if !app.Update() {
			break
		}
		app.Draw()
	}
	return nil
}

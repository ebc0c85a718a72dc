// Package surface provides the fixed-size raster target effects draw into.
package surface

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Default canvas dimensions of a gallery unit.
const (
	DefaultWidth  = 400
	DefaultHeight = 300
)

// Pixmap is an RGBA pixel buffer. It satisfies image.Image so it can be
// handed directly to encoders and x/image/draw scalers.
type Pixmap struct {
	img *image.RGBA
}

// New creates a pixmap of the given size, filled with opaque black.
func New(width, height int) *Pixmap {
	p := &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	p.Clear(color.RGBA{A: 255})
	return p
}

// NewDefault creates a 400x300 pixmap.
func NewDefault() *Pixmap {
	return New(DefaultWidth, DefaultHeight)
}

func (p *Pixmap) Width() int  { return p.img.Rect.Dx() }
func (p *Pixmap) Height() int { return p.img.Rect.Dy() }

// SetPixel sets a single pixel. Out of range coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= p.Width() || y >= p.Height() {
		return
	}
	i := p.img.PixOffset(x, y)
	s := p.img.Pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = c.R, c.G, c.B, c.A
}

// Pixel returns the color at (x, y), or transparent black when out of range.
func (p *Pixmap) Pixel(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= p.Width() || y >= p.Height() {
		return color.RGBA{}
	}
	return p.img.RGBAAt(x, y)
}

// FillRect fills the rectangle clipped to the pixmap bounds.
func (p *Pixmap) FillRect(x, y, w, h int, c color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(p.img.Rect)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			p.SetPixel(px, py, c)
		}
	}
}

// Clear fills the whole pixmap with c.
func (p *Pixmap) Clear(c color.RGBA) {
	for i := 0; i < len(p.img.Pix); i += 4 {
		p.img.Pix[i+0] = c.R
		p.img.Pix[i+1] = c.G
		p.img.Pix[i+2] = c.B
		p.img.Pix[i+3] = c.A
	}
}

// Data returns the raw RGBA bytes, 4 per pixel, row major.
func (p *Pixmap) Data() []uint8 { return p.img.Pix }

// RGBA exposes the backing image without copying.
func (p *Pixmap) RGBA() *image.RGBA { return p.img }

// Clone returns an independent copy.
func (p *Pixmap) Clone() *Pixmap {
	c := &Pixmap{img: image.NewRGBA(p.img.Rect)}
	copy(c.img.Pix, p.img.Pix)
	return c
}

// Equal reports whether both pixmaps have the same size and pixels.
func (p *Pixmap) Equal(o *Pixmap) bool {
	if o == nil || p.img.Rect != o.img.Rect {
		return false
	}
	return bytes.Equal(p.img.Pix, o.img.Pix)
}

func (p *Pixmap) ColorModel() color.Model { return color.RGBAModel }
func (p *Pixmap) Bounds() image.Rectangle { return p.img.Rect }
func (p *Pixmap) At(x, y int) color.Color { return p.img.At(x, y) }

// SavePNG writes the pixmap to path as a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

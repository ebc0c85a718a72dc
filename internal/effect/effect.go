package effect

import (
	"image/color"
	"math"
)

// Surface is the raster an effect draws into.
type Surface interface {
	Width() int
	Height() int
	SetPixel(x, y int, c color.RGBA)
	FillRect(x, y, w, h int, c color.RGBA)
}

// RenderFunc paints a full frame for elapsed time t (seconds).
type RenderFunc func(s Surface, t float64)

// Effect is a registered, immutable gallery entry.
type Effect struct {
	ID     int
	Name   string
	Slug   string
	Render RenderFunc
}

// Channel quantizes a computed channel value to 8 bits.
func Channel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func rgb(r, g, b float64) color.RGBA {
	return color.RGBA{R: Channel(r), G: Channel(g), B: Channel(b), A: 255}
}

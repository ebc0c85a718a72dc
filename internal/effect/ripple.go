package effect

import "math"

// RippleColor returns the Ripple color of pixel (x, y) on a w×h surface.
func RippleColor(x, y, w, h int, t float64) (r, g, b float64) {
	dx := float64(x) - float64(w)/2
	dy := float64(y) - float64(h)/2
	dist := math.Sqrt(dx*dx + dy*dy)
	intensity := math.Sin(dist*0.1-t*5)*127 + 128
	return intensity, intensity, 255
}

// Ripple renders rings whose phase moves outward five radians per second.
func Ripple(s Surface, t float64) {
	w, h := s.Width(), s.Height()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			s.SetPixel(x, y, rgb(RippleColor(x, y, w, h, t)))
		}
	}
}

package effect

import "math"

// PlasmaColor returns the Plasma Wave color of pixel (x, y) at time t.
func PlasmaColor(x, y int, t float64) (r, g, b float64) {
	value := math.Sin(float64(x)*0.01+t) + math.Sin(float64(y)*0.01+t)
	r = math.Sin(value*math.Pi)*127 + 128
	g = math.Sin(value*math.Pi+2*math.Pi/3)*127 + 128
	b = math.Sin(value*math.Pi+4*math.Pi/3)*127 + 128
	return r, g, b
}

func PlasmaWave(s Surface, t float64) {
	w, h := s.Width(), s.Height()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			s.SetPixel(x, y, rgb(PlasmaColor(x, y, t)))
		}
	}
}

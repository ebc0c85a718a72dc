package effect

import "math"

// FractalIntensity returns the gray level of pixel (x, y) at time t.
// Time only shifts the whole frame's brightness.
func FractalIntensity(x, y int, t float64) float64 {
	value := (math.Sin(float64(x)*0.01) + math.Sin(float64(y)*0.01) + math.Sin(t)) * 0.33
	return (value + 1) * 127.5
}

func FractalNoise(s Surface, t float64) {
	w, h := s.Width(), s.Height()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			v := FractalIntensity(x, y, t)
			s.SetPixel(x, y, rgb(v, v, v))
		}
	}
}

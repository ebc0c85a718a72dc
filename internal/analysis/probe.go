package analysis

import (
	"fmt"
	"hash/fnv"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/shaderlab/internal/effect"
	"github.com/san-kum/shaderlab/internal/surface"
)

// Channel selects which value of a pixel a probe records.
type Channel string

const (
	Red       Channel = "r"
	Green     Channel = "g"
	Blue      Channel = "b"
	Lightness Channel = "l"
)

// ParseChannel accepts r, g, b or l.
func ParseChannel(s string) (Channel, error) {
	switch c := Channel(s); c {
	case Red, Green, Blue, Lightness:
		return c, nil
	}
	return "", fmt.Errorf("analysis: unknown channel %q (want r, g, b or l)", s)
}

// ProbeSpec describes a probe: pixel position, sampling window and rate.
type ProbeSpec struct {
	X, Y     int
	Start    float64
	Duration float64
	Rate     float64
	Channel  Channel
}

// Probe renders e on a width×height surface at Rate samples per second over
// [Start, Start+Duration) and records the chosen channel of pixel (X, Y).
func Probe(e effect.Effect, width, height int, spec ProbeSpec) []float64 {
	n := int(spec.Duration * spec.Rate)
	if n <= 0 {
		return nil
	}
	if spec.Channel == "" {
		spec.Channel = Lightness
	}

	pix := surface.New(width, height)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		t := spec.Start + float64(i)/spec.Rate
		e.Render(pix, t)
		out[i] = channelValue(pix.Pixel(spec.X, spec.Y), spec.Channel)
	}
	return out
}

func channelValue(c color.RGBA, ch Channel) float64 {
	switch ch {
	case Red:
		return float64(c.R)
	case Green:
		return float64(c.G)
	case Blue:
		return float64(c.B)
	default:
		return lightness(c) * 255
	}
}

// lightness is CIE L* scaled to [0, 1].
func lightness(c color.RGBA) float64 {
	cc, _ := colorful.MakeColor(c)
	l, _, _ := cc.Lab()
	return math.Max(0, math.Min(1, l))
}

// FrameStats summarises a rendered frame.
type FrameStats struct {
	MeanLightness float64
	MinLightness  float64
	MaxLightness  float64
	Checksum      uint64
}

// Measure computes lightness statistics and an FNV-1a checksum of the pixels.
func Measure(p *surface.Pixmap) FrameStats {
	h := fnv.New64a()
	h.Write(p.Data())

	stats := FrameStats{MinLightness: 1, Checksum: h.Sum64()}
	total := 0.0
	n := 0
	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			l := lightness(p.Pixel(x, y))
			total += l
			stats.MinLightness = math.Min(stats.MinLightness, l)
			stats.MaxLightness = math.Max(stats.MaxLightness, l)
			n++
		}
	}
	if n > 0 {
		stats.MeanLightness = total / float64(n)
	} else {
		stats.MinLightness = 0
	}
	return stats
}

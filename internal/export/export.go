// Package export writes effect frames to image files.
package export

import (
	"context"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"os"
	"runtime"

	"github.com/san-kum/shaderlab/internal/anim"
	"github.com/san-kum/shaderlab/internal/effect"
	"github.com/san-kum/shaderlab/internal/frame"
	"github.com/san-kum/shaderlab/internal/logging"
	"github.com/san-kum/shaderlab/internal/surface"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// Options controls an animation export.
type Options struct {
	Width    int
	Height   int
	Duration float64 // seconds
	FPS      int
	// Scale resizes frames before encoding; 0 or 1 keeps the surface size.
	Scale float64
}

// FrameCount is the number of frames Capture produces, at least one.
func (o Options) FrameCount() int {
	n := int(math.Round(o.Duration * float64(o.FPS)))
	if n < 1 {
		n = 1
	}
	return n
}

// frameDelay is the per-frame GIF delay in hundredths of a second.
func (o Options) frameDelay() int {
	delay := int(math.Round(100 / float64(o.FPS)))
	if delay < 1 {
		delay = 1
	}
	return delay
}

// PNG renders e at time t and writes it to path.
func PNG(e effect.Effect, width, height int, t float64, path string) error {
	pix := surface.New(width, height)
	e.Render(pix, t)
	if err := pix.SavePNG(path); err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	logging.Logger().Info("exported frame", "effect", e.ID, "time", t, "path", path)
	return nil
}

// Capture plays e through a driver on a synthetic frame clock and returns
// one snapshot per frame, the first at elapsed time zero.
func Capture(ctx context.Context, e effect.Effect, opts Options) ([]*surface.Pixmap, error) {
	if opts.FPS <= 0 || opts.Duration <= 0 {
		return nil, fmt.Errorf("export: fps and duration must be positive")
	}
	n := opts.FrameCount()

	loop := frame.NewLoop()
	table := anim.NewTable(e.ID)
	driver := anim.NewDriver(e, table, loop)
	defer driver.Close()

	pix := surface.New(opts.Width, opts.Height)
	driver.Attach(pix)
	frames := []*surface.Pixmap{pix.Clone()}

	driver.Play()
	period := 1000 / float64(opts.FPS)
	for len(frames) < n {
		select {
		case <-ctx.Done():
			return frames, ctx.Err()
		default:
		}
		loop.Advance(period)
		frames = append(frames, pix.Clone())
	}
	return frames, nil
}

// GIF captures e and encodes it as a looping animated GIF. Palette
// quantization of the captured frames runs in parallel.
func GIF(ctx context.Context, e effect.Effect, opts Options, w io.Writer) error {
	frames, err := Capture(ctx, e, opts)
	if err != nil {
		return err
	}

	paletted := make([]*image.Paletted, len(frames))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, f := range frames {
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			paletted[i] = quantize(scaled(f.RGBA(), opts.Scale))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	delay := opts.frameDelay()
	out := gif.GIF{LoopCount: 0}
	for _, p := range paletted {
		out.Image = append(out.Image, p)
		out.Delay = append(out.Delay, delay)
	}
	return gif.EncodeAll(w, &out)
}

// GIFFile writes GIF output to path.
func GIFFile(ctx context.Context, e effect.Effect, opts Options, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := GIF(ctx, e, opts, f); err != nil {
		f.Close()
		return fmt.Errorf("export gif: %w", err)
	}
	logging.Logger().Info("exported animation", "effect", e.ID, "frames", opts.FrameCount(), "path", path)
	return f.Close()
}

func scaled(src *image.RGBA, scale float64) image.Image {
	if scale <= 0 || scale == 1 {
		return src
	}
	b := src.Bounds()
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

func quantize(src image.Image) *image.Paletted {
	dst := image.NewPaletted(src.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(dst, dst.Bounds(), src, src.Bounds().Min)
	return dst
}

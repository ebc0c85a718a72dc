package anim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/shaderlab/internal/anim"
	"github.com/san-kum/shaderlab/internal/effect"
	"github.com/san-kum/shaderlab/internal/frame"
	"github.com/san-kum/shaderlab/internal/surface"
)

// recorder is an effect that remembers the times it was rendered at.
type recorder struct {
	times []float64
}

func (r *recorder) effect(id int) effect.Effect {
	return effect.Effect{
		ID:   id,
		Name: "Recorder",
		Render: func(s effect.Surface, t float64) {
			r.times = append(r.times, t)
			effect.FractalNoise(s, t)
		},
	}
}

var _ = Describe("Driver", func() {
	var (
		loop   *frame.Loop
		table  *anim.Table
		rec    *recorder
		driver *anim.Driver
		pix    *surface.Pixmap
	)

	BeforeEach(func() {
		loop = frame.NewLoop()
		table = anim.NewTable(1)
		rec = &recorder{}
		driver = anim.NewDriver(rec.effect(1), table, loop)
		pix = surface.New(8, 6)
	})

	It("starts paused with zero elapsed time", func() {
		Expect(driver.State()).To(Equal(anim.Paused))
		Expect(driver.Elapsed()).To(BeZero())
	})

	It("renders once when a surface is attached while paused", func() {
		driver.Attach(pix)
		Expect(rec.times).To(Equal([]float64{0}))
		Expect(loop.Pending()).To(BeZero())
	})

	Context("when playing", func() {
		BeforeEach(func() {
			loop.Pump(1000)
			driver.Attach(pix)
			driver.Play()
		})

		It("schedules exactly one frame callback", func() {
			Expect(loop.Pending()).To(Equal(1))
		})

		It("accumulates frame deltas in seconds", func() {
			loop.Pump(1016)
			loop.Pump(1032)
			loop.Pump(1532)
			Expect(driver.Elapsed()).To(BeNumerically("~", 0.532, 1e-9))
			Expect(rec.times[len(rec.times)-1]).To(BeNumerically("~", 0.532, 1e-9))
		})

		It("renders with the updated elapsed time on each frame", func() {
			loop.Pump(1100)
			Expect(rec.times).To(HaveLen(2))
			Expect(rec.times[1]).To(BeNumerically("~", 0.1, 1e-9))
		})

		It("is not restarted by a second Play", func() {
			driver.Play()
			Expect(loop.Pending()).To(Equal(1))
		})
	})

	Context("when paused after playing", func() {
		BeforeEach(func() {
			driver.Attach(pix)
			driver.Play()
			loop.Pump(250)
			driver.Pause()
		})

		It("cancels the pending frame", func() {
			Expect(loop.Pending()).To(BeZero())
		})

		It("renders once at the frozen time", func() {
			Expect(rec.times).To(Equal([]float64{0, 0.25, 0.25}))
		})

		It("freezes elapsed time while frames keep coming", func() {
			loop.Pump(900)
			loop.Pump(1800)
			Expect(driver.Elapsed()).To(BeNumerically("~", 0.25, 1e-9))
		})

		It("does not render again on a second Pause", func() {
			n := len(rec.times)
			driver.Pause()
			Expect(rec.times).To(HaveLen(n))
		})

		It("resumes from the frozen time instead of resetting", func() {
			loop.Pump(5000)
			driver.Play()
			loop.Pump(5500)
			Expect(driver.Elapsed()).To(BeNumerically("~", 0.75, 1e-9))
		})
	})

	Context("when the surface is torn down", func() {
		BeforeEach(func() {
			driver.Attach(pix)
			driver.Play()
			loop.Pump(100)
		})

		It("cancels the pending callback on Detach", func() {
			driver.Detach()
			Expect(loop.Pending()).To(BeZero())
			loop.Pump(400)
			Expect(driver.Elapsed()).To(BeNumerically("~", 0.1, 1e-9))
		})

		It("continues from the current timestamp after re-attaching", func() {
			driver.Detach()
			loop.Pump(10000)
			fresh := surface.New(8, 6)
			driver.Attach(fresh)
			Expect(loop.Pending()).To(Equal(1))
			loop.Pump(10050)
			Expect(driver.Elapsed()).To(BeNumerically("~", 0.15, 1e-9))
			Expect(driver.State()).To(Equal(anim.Playing))
		})

		It("ignores everything after Close", func() {
			driver.Close()
			driver.Play()
			driver.Attach(pix)
			Expect(loop.Pending()).To(BeZero())
			Expect(driver.Playing()).To(BeFalse())
		})
	})

	It("skips frames that fire before any surface is attached", func() {
		driver.Play()
		Expect(func() { loop.Pump(200) }).NotTo(Panic())
		Expect(driver.Elapsed()).To(BeZero())
		Expect(rec.times).To(BeEmpty())
		Expect(loop.Pending()).To(BeZero())
	})

	It("counts rendered frames", func() {
		driver.Attach(pix)
		driver.Play()
		loop.Pump(16)
		loop.Pump(32)
		Expect(driver.Frames()).To(Equal(uint64(3)))
	})
})

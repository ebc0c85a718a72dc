package gallery_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/shaderlab/internal/anim"
	"github.com/san-kum/shaderlab/internal/effect"
	"github.com/san-kum/shaderlab/internal/frame"
	"github.com/san-kum/shaderlab/internal/gallery"
)

var _ = Describe("Controller", func() {
	var (
		loop *frame.Loop
		ctrl *gallery.Controller
	)

	BeforeEach(func() {
		loop = frame.NewLoop()
		ctrl = gallery.New(effect.Default(), loop, 40, 30)
		ctrl.MountAll()
	})

	AfterEach(func() {
		ctrl.Close()
	})

	It("lays out one unit per effect in registration order", func() {
		units := ctrl.Units()
		Expect(units).To(HaveLen(3))
		Expect(units[0].Effect.Name).To(Equal("Ripple Effect"))
		Expect(units[1].Effect.Name).To(Equal("Plasma Wave"))
		Expect(units[2].Effect.Name).To(Equal("Fractal Noise"))
		for _, u := range units {
			Expect(u.Mounted()).To(BeTrue())
			Expect(u.Surface().Width()).To(Equal(40))
		}
	})

	It("starts with the first effect playing and all times at zero", func() {
		Expect(ctrl.Selected()).To(Equal(1))
		Expect(ctrl.IsPlaying(1)).To(BeTrue())
		Expect(ctrl.IsPlaying(2)).To(BeFalse())
		Expect(ctrl.IsPlaying(3)).To(BeFalse())
		for _, id := range []int{1, 2, 3} {
			Expect(ctrl.Elapsed(id)).To(BeZero())
		}
	})

	It("paints paused units once on mount and the playing unit per frame", func() {
		units := ctrl.Units()
		for _, u := range units[1:] {
			Expect(u.Frames()).To(Equal(uint64(1)))
		}
		Expect(units[0].Frames()).To(BeZero())

		loop.Pump(16)
		loop.Pump(32)
		Expect(units[0].Frames()).To(Equal(uint64(2)))
		Expect(units[1].Frames()).To(Equal(uint64(1)))
	})

	It("advances only the selected effect", func() {
		loop.Pump(100)
		loop.Pump(300)
		Expect(ctrl.Elapsed(1)).To(BeNumerically("~", 0.3, 1e-9))
		Expect(ctrl.Elapsed(2)).To(BeZero())
		Expect(ctrl.Elapsed(3)).To(BeZero())
	})

	Describe("hover", func() {
		BeforeEach(func() {
			loop.Pump(500)
			Expect(ctrl.Hover(2)).To(Succeed())
		})

		It("moves the selector and freezes the previous effect", func() {
			Expect(ctrl.Selected()).To(Equal(2))
			Expect(ctrl.IsPlaying(1)).To(BeFalse())
			Expect(ctrl.IsPlaying(2)).To(BeTrue())

			loop.Pump(1500)
			Expect(ctrl.Elapsed(1)).To(BeNumerically("~", 0.5, 1e-9))
			Expect(ctrl.Elapsed(2)).To(BeNumerically("~", 1.0, 1e-9))
		})

		It("keeps the selection when the pointer leaves", func() {
			Expect(ctrl.Leave(2)).To(Succeed())
			Expect(ctrl.Selected()).To(Equal(2))
			Expect(ctrl.IsPlaying(2)).To(BeTrue())
		})

		It("resumes an effect from its frozen time", func() {
			Expect(ctrl.Hover(1)).To(Succeed())
			loop.Pump(700)
			Expect(ctrl.Elapsed(1)).To(BeNumerically("~", 0.7, 1e-9))
		})
	})

	It("selects on click the same way as hover", func() {
		Expect(ctrl.Click(3)).To(Succeed())
		Expect(ctrl.Selected()).To(Equal(3))
		Expect(ctrl.IsPlaying(3)).To(BeTrue())
		Expect(ctrl.IsPlaying(1)).To(BeFalse())
	})

	It("rejects unknown ids without changing state", func() {
		Expect(ctrl.Hover(42)).To(MatchError(effect.ErrUnknownEffect))
		Expect(ctrl.Click(42)).To(MatchError(effect.ErrUnknownEffect))
		Expect(ctrl.Leave(42)).To(MatchError(effect.ErrUnknownEffect))
		Expect(ctrl.Selected()).To(Equal(1))
	})

	Describe("toggle", func() {
		It("pauses only the selected effect and keeps the selector", func() {
			loop.Pump(200)
			ctrl.Toggle()
			Expect(ctrl.Selected()).To(Equal(1))
			Expect(ctrl.IsHeld()).To(BeTrue())
			Expect(ctrl.IsPlaying(1)).To(BeFalse())

			loop.Pump(900)
			Expect(ctrl.Elapsed(1)).To(BeNumerically("~", 0.2, 1e-9))

			ctrl.Toggle()
			Expect(ctrl.IsPlaying(1)).To(BeTrue())
			loop.Pump(1000)
			Expect(ctrl.Elapsed(1)).To(BeNumerically("~", 0.3, 1e-9))
		})

		It("is only offered for the selected effect", func() {
			Expect(ctrl.CanToggle(1)).To(BeTrue())
			Expect(ctrl.CanToggle(2)).To(BeFalse())
		})

		It("keeps the hold when the selected effect is hovered again", func() {
			ctrl.Toggle()
			Expect(ctrl.Hover(1)).To(Succeed())
			Expect(ctrl.IsPlaying(1)).To(BeFalse())
		})

		It("clears the hold when the selection moves", func() {
			ctrl.Toggle()
			Expect(ctrl.Hover(2)).To(Succeed())
			Expect(ctrl.IsHeld()).To(BeFalse())
			Expect(ctrl.IsPlaying(2)).To(BeTrue())
		})
	})

	Describe("mount lifetime", func() {
		It("cancels the frame callback when the playing unit unmounts", func() {
			Expect(loop.Pending()).To(Equal(1))
			Expect(ctrl.Unmount(1)).To(Succeed())
			Expect(loop.Pending()).To(BeZero())

			loop.Pump(400)
			Expect(ctrl.Elapsed(1)).To(BeZero())
		})

		It("repaints a paused unit at its frozen time on remount", func() {
			loop.Pump(250)
			Expect(ctrl.Hover(2)).To(Succeed())
			Expect(ctrl.Unmount(1)).To(Succeed())

			u, err := ctrl.Unit(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(u.Surface()).To(BeNil())

			Expect(ctrl.Mount(1)).To(Succeed())
			Expect(u.State()).To(Equal(anim.Paused))
			Expect(u.Surface()).NotTo(BeNil())
			Expect(u.Elapsed()).To(BeNumerically("~", 0.25, 1e-9))
		})

		It("resumes a playing unit after remount", func() {
			Expect(ctrl.Unmount(1)).To(Succeed())
			loop.Pump(5000)
			Expect(ctrl.Mount(1)).To(Succeed())
			loop.Pump(5100)
			Expect(ctrl.Elapsed(1)).To(BeNumerically("~", 0.1, 1e-9))
		})

		It("releases every surface on Close", func() {
			ctrl.Close()
			for _, u := range ctrl.Units() {
				Expect(u.Mounted()).To(BeFalse())
			}
			Expect(loop.Pending()).To(BeZero())
		})
	})

	It("never advances more than one effect between observations", func() {
		rng := rand.New(rand.NewSource(7))
		ts := 0.0
		prev := ctrl.Snapshot().Elapsed

		for i := 0; i < 500; i++ {
			id := rng.Intn(3) + 1
			switch rng.Intn(4) {
			case 0:
				Expect(ctrl.Hover(id)).To(Succeed())
			case 1:
				Expect(ctrl.Click(id)).To(Succeed())
			case 2:
				Expect(ctrl.Leave(id)).To(Succeed())
			case 3:
				ctrl.Toggle()
			}
			ts += float64(rng.Intn(40))
			loop.Pump(ts)

			cur := ctrl.Snapshot().Elapsed
			changed := 0
			for k, v := range cur {
				Expect(v).To(BeNumerically(">=", prev[k]))
				if v != prev[k] {
					changed++
					Expect(k).To(Equal(ctrl.Selected()))
				}
			}
			Expect(changed).To(BeNumerically("<=", 1))
			prev = cur
		}
	})
})

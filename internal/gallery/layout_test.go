package gallery_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/shaderlab/internal/effect"
	"github.com/san-kum/shaderlab/internal/frame"
	"github.com/san-kum/shaderlab/internal/gallery"
)

var _ = Describe("Layout", func() {
	layout := gallery.NewLayout(3, 400, 300)

	It("places units left to right without overlap", func() {
		Expect(layout.Slots).To(HaveLen(3))
		for i := 1; i < 3; i++ {
			prev, cur := layout.Slots[i-1].Canvas, layout.Slots[i].Canvas
			Expect(cur.Min.X).To(BeNumerically(">", prev.Max.X))
			Expect(cur.Dx()).To(Equal(400))
			Expect(cur.Dy()).To(Equal(300))
		}
		Expect(layout.Width).To(Equal(20 + 3*420))
	})

	It("keeps buttons under their canvas", func() {
		for _, s := range layout.Slots {
			Expect(s.Button.Min.Y).To(BeNumerically(">", s.Canvas.Max.Y))
			Expect(s.Button.Max.Y).To(BeNumerically("<", layout.FooterY()))
		}
	})

	DescribeTable("hit testing",
		func(x, y, index int, onButton, ok bool) {
			i, b, hit := layout.HitTest(x, y)
			Expect(hit).To(Equal(ok))
			if ok {
				Expect(i).To(Equal(index))
				Expect(b).To(Equal(onButton))
			}
		},
		Entry("first canvas", 30, 100, 0, false, true),
		Entry("second label", 450, 50, 1, false, true),
		Entry("third button", 860+200, 72+300+8+10, 2, true, true),
		Entry("gap between units", 425, 100, 0, false, false),
		Entry("header", 30, 10, 0, false, false),
	)
})

var _ = Describe("Pointer", func() {
	var (
		ctrl    *gallery.Controller
		pointer *gallery.Pointer
		layout  gallery.Layout
	)

	center := func(i int) (int, int) {
		c := layout.Slots[i].Canvas
		return (c.Min.X + c.Max.X) / 2, (c.Min.Y + c.Max.Y) / 2
	}
	button := func(i int) (int, int) {
		b := layout.Slots[i].Button
		return b.Min.X + 1, b.Min.Y + 1
	}

	BeforeEach(func() {
		ctrl = gallery.New(effect.Default(), frame.NewLoop(), 40, 30)
		ctrl.MountAll()
		layout = gallery.NewLayout(len(ctrl.Units()), 40, 30)
		pointer = gallery.NewPointer(ctrl, layout)
	})

	It("hovers the unit under the pointer", func() {
		pointer.Move(center(1))
		Expect(pointer.Hovered()).To(Equal(2))
		Expect(ctrl.Selected()).To(Equal(2))
	})

	It("keeps the selection when the pointer leaves", func() {
		pointer.Move(center(2))
		pointer.Move(0, 0)
		Expect(pointer.Hovered()).To(BeZero())
		Expect(ctrl.Selected()).To(Equal(3))
		Expect(ctrl.IsPlaying(3)).To(BeTrue())
	})

	It("toggles only through the selected unit's button", func() {
		pointer.Press(button(0))
		Expect(ctrl.IsHeld()).To(BeTrue())

		pointer.Press(button(1))
		Expect(ctrl.Selected()).To(Equal(2))
		Expect(ctrl.IsHeld()).To(BeFalse())
		Expect(ctrl.IsPlaying(2)).To(BeTrue())
	})

	It("ignores presses outside any unit", func() {
		pointer.Press(0, 0)
		Expect(ctrl.Selected()).To(Equal(1))
		Expect(ctrl.IsHeld()).To(BeFalse())
	})
})

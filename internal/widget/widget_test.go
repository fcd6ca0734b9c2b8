package widget_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/waveviz/internal/widget"
)

var _ = Describe("Slider", func() {
	var (
		s    *widget.Slider
		seen []float64
	)

	BeforeEach(func() {
		s = widget.NewSlider("Wavelength", 0.1, 10.0, 2*math.Pi)
		seen = nil
		s.OnChanged(func(v float64) { seen = append(seen, v) })
	})

	It("starts at its initial value", func() {
		Expect(s.Value()).To(Equal(2 * math.Pi))
		Expect(s.Init).To(Equal(2 * math.Pi))
	})

	It("notifies observers with the new value", func() {
		Expect(s.Set(3)).To(BeTrue())
		Expect(seen).To(Equal([]float64{3}))
	})

	It("does not notify when the value is unchanged", func() {
		Expect(s.Set(2 * math.Pi)).To(BeFalse())
		Expect(seen).To(BeEmpty())
	})

	DescribeTable("clamps every write into its range",
		func(in, want float64) {
			s.Set(in)
			Expect(s.Value()).To(Equal(want))
			Expect(s.Value()).To(BeNumerically(">=", 0.1))
			Expect(s.Value()).To(BeNumerically("<=", 10.0))
		},
		Entry("below min", 0.0, 0.1),
		Entry("far below min", -100.0, 0.1),
		Entry("above max", 10.5, 10.0),
		Entry("positive infinity", math.Inf(1), 10.0),
		Entry("inside", 4.0, 4.0),
	)

	It("ignores NaN", func() {
		Expect(s.Set(math.NaN())).To(BeFalse())
		Expect(s.Value()).To(Equal(2 * math.Pi))
	})

	It("cannot be stepped past either bound", func() {
		for i := 0; i < 500; i++ {
			s.Step(-0.1)
		}
		Expect(s.Value()).To(Equal(0.1))
		for i := 0; i < 500; i++ {
			s.Step(0.1)
		}
		Expect(s.Value()).To(Equal(10.0))
	})

	It("maps fractions onto the range", func() {
		s.SetFraction(0)
		Expect(s.Value()).To(Equal(0.1))
		s.SetFraction(1)
		Expect(s.Value()).To(Equal(10.0))
		s.SetFraction(0.5)
		Expect(s.Value()).To(BeNumerically("~", 5.05, 1e-12))
		Expect(s.Fraction()).To(BeNumerically("~", 0.5, 1e-12))
		s.SetFraction(7)
		Expect(s.Value()).To(Equal(10.0))
	})

	It("resets to its initial value", func() {
		s.Set(1)
		Expect(s.Reset()).To(BeTrue())
		Expect(s.Value()).To(Equal(2 * math.Pi))
		Expect(seen).To(Equal([]float64{1, 2 * math.Pi}))
	})

	It("stops notifying after disconnect", func() {
		var other int
		id := s.OnChanged(func(float64) { other++ })
		s.Set(1)
		Expect(s.Disconnect(id)).To(BeTrue())
		s.Set(2)
		Expect(other).To(Equal(1))
		Expect(seen).To(HaveLen(2))
		Expect(s.Disconnect(id)).To(BeFalse())
	})

	It("clamps an out of range initial value", func() {
		w := widget.NewSlider("Amplitude", 2.0, 0.1, 5)
		Expect(w.Min).To(Equal(0.1))
		Expect(w.Max).To(Equal(2.0))
		Expect(w.Value()).To(Equal(2.0))
	})
})

var _ = Describe("Button", func() {
	It("runs callbacks in registration order", func() {
		b := widget.NewButton("Reset")
		var order []string
		b.OnClicked(func() { order = append(order, "a") })
		id := b.OnClicked(func() { order = append(order, "b") })
		b.OnClicked(func() { order = append(order, "c") })

		b.Click()
		Expect(order).To(Equal([]string{"a", "b", "c"}))

		b.Disconnect(id)
		order = nil
		b.Click()
		Expect(order).To(Equal([]string{"a", "c"}))
	})

	It("lets a callback disconnect itself", func() {
		b := widget.NewButton("Reset")
		calls := 0
		var id int
		id = b.OnClicked(func() {
			calls++
			b.Disconnect(id)
		})
		b.Click()
		b.Click()
		Expect(calls).To(Equal(1))
	})
})

package figure_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/waveviz/internal/config"
	"github.com/san-kum/waveviz/internal/figure"
	"github.com/san-kum/waveviz/internal/wave"
)

type countingCanvas struct{ draws int }

func (c *countingCanvas) DrawIdle() { c.draws++ }

func expectCurves(f *figure.Figure, p wave.Params) {
	want := wave.Compute(f.Grid, p)
	got := f.Curves()
	Expect(got.Wave1).To(Equal(want.Wave1))
	Expect(got.Wave2).To(Equal(want.Wave2))
	Expect(got.Interference).To(Equal(want.Interference))
	Expect(f.Waves.Lines[0].Y).To(Equal(want.Wave1))
	Expect(f.Waves.Lines[1].Y).To(Equal(want.Wave2))
	Expect(f.Interf.Lines[0].Y).To(Equal(want.Interference))
}

var _ = Describe("Figure", func() {
	var (
		f      *figure.Figure
		canvas *countingCanvas
	)

	BeforeEach(func() {
		canvas = &countingCanvas{}
		var err error
		f, err = figure.New(config.DefaultConfig(), canvas)
		Expect(err).NotTo(HaveOccurred())
	})

	It("lays out sliders, button and axes", func() {
		labels := []string{}
		for _, s := range f.Sliders() {
			labels = append(labels, s.Label)
		}
		Expect(labels).To(Equal([]string{"Wavelength", "Amplitude", "Phase"}))
		Expect(f.ResetBtn.Label).To(Equal("Reset"))
		Expect(f.Waves.Title).To(Equal("Waves"))
		Expect(f.Waves.Lines).To(HaveLen(2))
		Expect(f.Interf.Title).To(Equal("Interference"))
		Expect(f.Interf.YMin).To(Equal(-4.0))
		Expect(f.Interf.YMax).To(Equal(4.0))
		Expect(f.Grid).To(HaveLen(1000))
	})

	It("computes the default curves at startup", func() {
		Expect(f.Params()).To(Equal(wave.DefaultParams()))
		Expect(f.Generation()).To(Equal(1))
		Expect(canvas.draws).To(Equal(1))
		expectCurves(f, wave.DefaultParams())
	})

	It("recomputes and requests a redraw on every slider change", func() {
		f.Wavelength.Set(3)
		f.Amplitude.Set(1.5)
		f.Phase.Set(math.Pi)

		Expect(f.Generation()).To(Equal(4))
		Expect(canvas.draws).To(Equal(4))
		expectCurves(f, wave.Params{Wavelength: 3, Amplitude: 1.5, Phase: math.Pi})
	})

	It("keeps the UI from driving wavelength out of bounds", func() {
		f.Wavelength.Set(0.01)
		Expect(f.Params().Wavelength).To(Equal(0.1))
		f.Wavelength.SetFraction(2)
		Expect(f.Params().Wavelength).To(Equal(10.0))
	})

	It("restores defaults on reset", func() {
		f.Wavelength.Set(1)
		f.Amplitude.Set(2)
		f.Phase.Set(1)
		before := f.Generation()

		f.ResetBtn.Click()

		Expect(f.Params()).To(Equal(wave.Params{Wavelength: 2 * math.Pi, Amplitude: 1, Phase: 0}))
		Expect(f.Generation()).To(Equal(before + 1))
		expectCurves(f, wave.DefaultParams())
	})

	It("applies a parameter set with one recomputation", func() {
		f.Apply(wave.Params{Wavelength: 20, Amplitude: 0.5, Phase: 1})
		Expect(f.Generation()).To(Equal(2))
		Expect(f.Params()).To(Equal(wave.Params{Wavelength: 10, Amplitude: 0.5, Phase: 1}))
		expectCurves(f, f.Params())
	})

	It("starts from the configured values but resets to the defaults", func() {
		cfg := config.DefaultConfig()
		cfg.Initial = config.Presets["destructive"]
		g, err := figure.New(cfg, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Params()).To(Equal(cfg.Initial))
		Expect(g.Generation()).To(Equal(1))

		g.ResetBtn.Click()
		Expect(g.Params()).To(Equal(wave.Params{Wavelength: 2 * math.Pi, Amplitude: 1, Phase: 0}))
		expectCurves(g, wave.DefaultParams())
	})

	It("rejects an invalid configuration", func() {
		cfg := config.DefaultConfig()
		cfg.Grid.Samples = 0
		_, err := figure.New(cfg, nil)
		Expect(err).To(MatchError(config.ErrInvalid))
	})
})

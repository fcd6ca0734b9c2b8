package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"

	"github.com/san-kum/waveviz/internal/analysis"
	"github.com/san-kum/waveviz/internal/config"
	"github.com/san-kum/waveviz/internal/figure"
	"github.com/san-kum/waveviz/internal/wave"
	"github.com/san-kum/waveviz/internal/widget"
)

const (
	fineSteps   = 100
	coarseSteps = 10
	flashTime   = 150 * time.Millisecond
	minPlotH    = 5
	minPlotW    = 20
)

// ParamSink receives the parameters after every recomputation.
type ParamSink interface {
	SetParams(wave.Params)
}

// Snapshotter persists the current figure state.
type Snapshotter interface {
	Save(p wave.Params, grid wave.Grid, c wave.Curves, note string) (string, error)
}

type Options struct {
	Config *config.Config
	Store  Snapshotter
	Sink   ParamSink
}

// redraw is the figure's canvas: the terminal repaints after every message,
// so a request only needs to be recorded.
type redraw struct {
	pending bool
	count   int
}

func (r *redraw) DrawIdle() {
	r.pending = true
	r.count++
}

type flashDoneMsg struct{}

// Model is the bubbletea front-end for a figure.
type Model struct {
	fig      *figure.Figure
	canvas   *redraw
	cfg      *config.Config
	store    Snapshotter
	sink     ParamSink
	selected int
	preset   int
	width    int
	height   int
	showHelp bool
	flash    bool
	status   string
	peak     analysis.Bin
}

func NewModel(opt Options) (Model, error) {
	cfg := opt.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	canvas := &redraw{}
	fig, err := figure.New(cfg, canvas)
	if err != nil {
		return Model{}, err
	}
	SetTheme(cfg.Theme)

	m := Model{
		fig:    fig,
		canvas: canvas,
		cfg:    cfg,
		store:  opt.Store,
		sink:   opt.Sink,
		preset: -1,
		width:  100,
		height: 40,
	}
	m.refresh()
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		m.refresh()
		return m, cmd
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case flashDoneMsg:
		m.flash = false
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	sliders := m.fig.Sliders()
	cur := sliders[m.selected]

	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "tab", "j", "down":
		m.selected = (m.selected + 1) % len(sliders)
	case "shift+tab", "k", "up":
		m.selected = (m.selected + len(sliders) - 1) % len(sliders)
	case "l", "right":
		cur.Step(stepFor(cur, fineSteps))
	case "h", "left":
		cur.Step(-stepFor(cur, fineSteps))
	case "L", "shift+right":
		cur.Step(stepFor(cur, coarseSteps))
	case "H", "shift+left":
		cur.Step(-stepFor(cur, coarseSteps))
	case "r":
		m.fig.ResetBtn.Click()
		m.flash = true
		m.status = "reset"
		return tea.Tick(flashTime, func(time.Time) tea.Msg { return flashDoneMsg{} })
	case "p":
		names := config.ListPresets()
		m.preset = (m.preset + 1) % len(names)
		p, _ := config.GetPreset(names[m.preset])
		m.fig.Apply(p)
		m.status = "preset " + names[m.preset]
	case "t":
		m.status = "theme " + NextTheme()
	case "s":
		m.saveSnapshot()
	case "?":
		m.showHelp = !m.showHelp
	}
	return nil
}

func (m *Model) saveSnapshot() {
	if m.store == nil {
		m.status = "snapshots disabled"
		return
	}
	id, err := m.store.Save(m.fig.Params(), m.fig.Grid, m.fig.Curves(), "")
	if err != nil {
		log.WithError(err).Warn("snapshot failed")
		m.status = "save failed: " + err.Error()
		return
	}
	m.status = "saved " + id
}

// refresh handles a pending redraw request: derived readouts are brought up
// to date and listeners are told about the new parameters.
func (m *Model) refresh() {
	if !m.canvas.pending {
		return
	}
	m.canvas.pending = false

	if spec, err := analysis.NewSpectrum(m.fig.Curves().Interference, m.fig.Grid.Spacing()); err == nil {
		m.peak = spec.Peak()
	}
	if m.sink != nil {
		m.sink.SetParams(m.fig.Params())
	}
}

func stepFor(s *widget.Slider, steps float64) float64 {
	return (s.Max - s.Min) / steps
}

// Figure exposes the hosted figure.
func (m Model) Figure() *figure.Figure { return m.fig }

// Redraws counts redraw requests since start.
func (m Model) Redraws() int { return m.canvas.count }

func (m Model) View() string {
	var b strings.Builder
	p := m.fig.Params()

	title := HeaderStyle.Foreground(CurrentTheme.Secondary)
	b.WriteString(title.Render("WAVEVIZ") + "  " + Subtle.Render(p.String()) + "\n\n")

	plotW, plotH := m.plotSize()
	c := m.fig.Curves()
	waves := asciigraph.PlotMany([][]float64{c.Wave1, c.Wave2},
		asciigraph.Height(plotH),
		asciigraph.Width(plotW),
		asciigraph.LowerBound(m.fig.Waves.YMin),
		asciigraph.UpperBound(m.fig.Waves.YMax),
		asciigraph.SeriesColors(CurrentTheme.Wave1, CurrentTheme.Wave2),
		asciigraph.Precision(1),
		asciigraph.Caption(m.fig.Waves.Title),
	)
	interf := asciigraph.Plot(c.Interference,
		asciigraph.Height(plotH),
		asciigraph.Width(plotW),
		asciigraph.LowerBound(m.fig.Interf.YMin),
		asciigraph.UpperBound(m.fig.Interf.YMax),
		asciigraph.SeriesColors(CurrentTheme.Interference),
		asciigraph.Precision(1),
		asciigraph.Caption(m.fig.Interf.Title),
	)
	b.WriteString(waves + "\n\n" + interf + "\n")
	b.WriteString(Separator(plotW) + "\n\n")

	barW := plotW - 30
	if barW < 10 {
		barW = 10
	}
	for i, s := range m.fig.Sliders() {
		sel := i == m.selected
		label := lipgloss.NewStyle().Width(12).Foreground(CurrentTheme.Muted)
		if sel {
			label = label.Foreground(CurrentTheme.Text).Bold(true)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			label.Render(s.Label),
			SliderBar(s.Fraction(), barW, sel),
			MetricValue.Render(fmt.Sprintf("%7.3f", s.Value()))))
	}
	b.WriteString("\n")

	stats := MetricLabel.Render("envelope") + MetricValue.Render(fmt.Sprintf("%.3f", wave.Envelope(p))) + "   " +
		MetricLabel.Render("peak freq") + MetricValue.Render(fmt.Sprintf("%.3f", m.peak.Freq)) + "   " +
		MetricLabel.Render("redraws") + MetricValue.Render(fmt.Sprintf("%d", m.canvas.count))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, Button(m.fig.ResetBtn.Label, m.flash), "  ", stats) + "\n")

	if m.status != "" {
		b.WriteString(Subtle.Render(m.status) + "\n")
	}
	if m.showHelp {
		b.WriteString("\n" + GlassPanel.Render(helpText()) + "\n")
	} else {
		b.WriteString(KeyHint.Render("tab select  h/l adjust  H/L coarse  r reset  p preset  t theme  s save  ? help  q quit") + "\n")
	}
	return b.String()
}

func (m Model) plotSize() (int, int) {
	w := m.width - 12
	if w < minPlotW {
		w = minPlotW
	}
	h := (m.height - 18) / 2
	if h < minPlotH {
		h = minPlotH
	}
	return w, h
}

func helpText() string {
	rows := [][2]string{
		{"tab / j / k", "select slider"},
		{"h / l", "fine adjust (1/100 of range)"},
		{"H / L", "coarse adjust (1/10 of range)"},
		{"r", "reset to defaults"},
		{"p", "next preset"},
		{"t", "next theme (" + strings.Join(ThemeNames(), ", ") + ")"},
		{"s", "save snapshot"},
		{"q", "quit"},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(MetricLabel.Render(r[0]) + " " + r[1] + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Run starts the terminal UI and blocks until it exits.
func Run(opt Options) error {
	m, err := NewModel(opt)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	log "github.com/sirupsen/logrus"

	"github.com/san-kum/waveviz/internal/config"
	"github.com/san-kum/waveviz/internal/figure"
	"github.com/san-kum/waveviz/internal/wave"
)

// Palette after the classic plotting defaults.
var (
	ColBg      = rl.NewColor(255, 255, 255, 255)
	ColAxes    = rl.NewColor(250, 250, 210, 255) // lightgoldenrodyellow
	ColFrame   = rl.NewColor(40, 40, 40, 255)
	ColGrid    = rl.NewColor(225, 225, 225, 255)
	ColText    = rl.NewColor(20, 20, 20, 255)
	ColTextDim = rl.NewColor(120, 120, 120, 255)
	ColFill    = rl.NewColor(31, 119, 180, 200)
	ColInit    = rl.NewColor(214, 39, 40, 255)
	ColHover   = rl.NewColor(248, 248, 248, 255)

	lineColors = map[string]rl.Color{
		"blue":  rl.NewColor(31, 119, 180, 255),
		"red":   rl.NewColor(214, 39, 40, 255),
		"green": rl.NewColor(44, 160, 44, 255),
	}
)

// ParamSink receives parameters after each recomputation.
type ParamSink interface {
	SetParams(wave.Params)
}

// Input is one frame of pointer state.
type Input struct {
	Pos      rl.Vector2
	Down     bool
	Pressed  bool
	Released bool
}

type App struct {
	Fig    *figure.Figure
	Cfg    *config.Config
	Sink   ParamSink
	Layout Layout

	dragging int
	hover    bool
	dirty    bool
	redraws  int
}

// NewApp builds the figure with the app as its canvas. It does not touch the
// window, so it can be used headless.
func NewApp(cfg *config.Config, sink ParamSink) (*App, error) {
	a := &App{
		Cfg:      cfg,
		Sink:     sink,
		Layout:   NewLayout(cfg.Window.Width, cfg.Window.Height),
		dragging: -1,
	}
	fig, err := figure.New(cfg, a)
	if err != nil {
		return nil, err
	}
	a.Fig = fig
	a.flush()
	return a, nil
}

// DrawIdle marks the frame stale; raylib repaints on the next loop turn.
func (a *App) DrawIdle() {
	a.dirty = true
	a.redraws++
}

func (a *App) Redraws() int { return a.redraws }

// HandleInput applies one frame of pointer state to the widgets.
func (a *App) HandleInput(in Input) {
	a.hover = a.Layout.OnReset(in.Pos)
	sliders := a.Fig.Sliders()

	// The button sits above the phase track where the two overlap.
	if in.Pressed {
		if a.hover {
			a.Fig.ResetBtn.Click()
		} else if i := a.Layout.SliderAt(in.Pos); i >= 0 {
			a.dragging = i
		}
	}
	if a.dragging >= 0 && (in.Down || in.Pressed) {
		r := a.Layout.Sliders[a.dragging]
		sliders[a.dragging].SetFraction(fraction(r, in.Pos.X))
	}
	if in.Released || !in.Down {
		a.dragging = -1
	}
	a.flush()
}

// HandleKeys covers the keyboard shortcuts.
func (a *App) HandleKeys(reset bool) {
	if reset {
		a.Fig.ResetBtn.Click()
	}
	a.flush()
}

func (a *App) flush() {
	if !a.dirty {
		return
	}
	a.dirty = false
	if a.Sink != nil {
		a.Sink.SetParams(a.Fig.Params())
	}
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, sink ParamSink) error {
	a, err := NewApp(cfg, sink)
	if err != nil {
		return err
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.SetExitKey(0)

	log.WithFields(log.Fields{
		"width":  cfg.Window.Width,
		"height": cfg.Window.Height,
	}).Info("window opened")

	a.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			return
		}
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if w, h := int(rl.GetScreenWidth()), int(rl.GetScreenHeight()); w != a.Layout.Width || h != a.Layout.Height {
		a.Layout = NewLayout(w, h)
	}
	a.HandleKeys(rl.IsKeyPressed(rl.KeyR))
	a.HandleInput(Input{
		Pos:      rl.GetMousePosition(),
		Down:     rl.IsMouseButtonDown(rl.MouseLeftButton),
		Pressed:  rl.IsMouseButtonPressed(rl.MouseLeftButton),
		Released: rl.IsMouseButtonReleased(rl.MouseLeftButton),
	})
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawAxes(a.Fig.Waves, a.Layout.Waves)
	a.drawAxes(a.Fig.Interf, a.Layout.Interference)
	for i, s := range a.Fig.Sliders() {
		a.drawSlider(s.Label, s.Value(), s.Fraction(), (s.Init-s.Min)/(s.Max-s.Min), a.Layout.Sliders[i])
	}
	a.drawButton(a.Fig.ResetBtn.Label, a.Layout.Reset)

	rl.DrawText(fmt.Sprintf("%d FPS  %d redraws", rl.GetFPS(), a.redraws), 10, int32(a.Layout.Height-20), 10, ColTextDim)
	rl.EndDrawing()
}

package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/sketchphys/internal/config"
	"github.com/san-kum/sketchphys/internal/scene"
)

var (
	ColBg      = rl.NewColor(220, 220, 220, 255)
	ColText    = rl.NewColor(40, 40, 40, 255)
	ColTextDim = rl.NewColor(120, 120, 120, 255)
	ColAccent  = rl.NewColor(0, 120, 200, 255)
)

const maxTelemetry = 200

type App struct {
	Config    *config.Config
	Scene     *scene.Scene
	Surface   *Window
	Frame     int
	Running   bool
	Telemetry []float64 // max speed per frame
}

func NewApp(cfg *config.Config) (*App, error) {
	s, err := scene.FromConfig(cfg)
	if err != nil {
		return nil, err
	}
	w := NewWindow()
	s.SetSurface(w)
	return &App{
		Config:    cfg,
		Scene:     s,
		Surface:   w,
		Running:   true,
		Telemetry: make([]float64, 0, maxTelemetry),
	}, nil
}

// Run opens a window sized to the configured world and plays the scene
// until the window is closed.
func Run(cfg *config.Config) error {
	app, err := NewApp(cfg)
	if err != nil {
		return err
	}

	fps := cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}

	rl.InitWindow(int32(cfg.World.Width), int32(cfg.World.Height), "sketchphys :: "+cfg.Name)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(fps))

	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Scene.Reset()
		a.Frame = 0
		a.Telemetry = a.Telemetry[:0]
		a.Running = true
	}
	if a.Frame >= a.Config.Frames {
		a.Running = false
	}
}

// Draw renders one frame. When running, the scene advances and draws itself
// through the Window surface; when paused it is redrawn in place.
func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if a.Running {
		a.Scene.Frame()
		a.Frame++
		a.record()
	} else {
		a.Scene.Draw()
	}

	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) record() {
	top := 0.0
	for _, p := range a.Scene.Particles {
		top = math.Max(top, p.Speed())
	}
	a.Telemetry = append(a.Telemetry, top)
	if len(a.Telemetry) > maxTelemetry {
		a.Telemetry = a.Telemetry[1:]
	}
}

func (a *App) DrawHUD() {
	rl.DrawText(a.Config.Name, 10, 10, 16, ColText)

	status := "RUNNING"
	if !a.Running {
		status = "PAUSED"
	}
	rl.DrawText(fmt.Sprintf("%s  frame %d/%d", status, a.Frame, a.Config.Frames), 10, 30, 10, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS  [SPACE] PAUSE  [R] RESET", rl.GetFPS()), 10, int32(a.Config.World.Height)-20, 10, ColTextDim)

	a.DrawTelemetry()
}

func (a *App) DrawTelemetry() {
	if len(a.Telemetry) < 2 {
		return
	}

	rectX, rectY := float32(10), float32(50)
	width, height := float32(120), float32(30)

	minVal, maxVal := a.Telemetry[0], a.Telemetry[0]
	for _, v := range a.Telemetry {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(a.Telemetry))
	for i, val := range a.Telemetry {
		px := rectX + float32(i)/float32(len(a.Telemetry))*width
		norm := (val - minVal) / (maxVal - minVal)
		points[i] = rl.NewVector2(px, rectY+height-float32(norm)*height)
	}

	rl.DrawLineStrip(points, ColAccent)
	rl.DrawText(fmt.Sprintf("v: %.2f", a.Telemetry[len(a.Telemetry)-1]), int32(rectX+width)+6, int32(rectY+height)-10, 10, ColText)
}

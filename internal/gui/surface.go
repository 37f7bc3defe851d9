package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/sketchphys/internal/render"
)

// Window draws onto the current raylib frame. Ellipse must be called
// between rl.BeginDrawing and rl.EndDrawing.
type Window struct {
	fill   rl.Color
	stroke bool
}

func NewWindow() *Window {
	return &Window{fill: rl.White, stroke: true}
}

func (w *Window) Fill(color string) {
	c := render.RGBA(color)
	w.fill = rl.NewColor(c.R, c.G, c.B, c.A)
}

func (w *Window) NoStroke() { w.stroke = false }

func (w *Window) Ellipse(x, y, diameter float64) {
	r := float32(diameter / 2)
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), r, w.fill)
	if w.stroke {
		rl.DrawCircleLines(int32(x), int32(y), r, rl.Black)
	}
}

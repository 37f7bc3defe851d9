package analysis

import (
	"strings"

	"github.com/san-kum/sketchphys/internal/scene"
)

// Axis names accepted by NewPortrait, matching scene.Result.Column.
var Axes = []string{"x", "y", "z", "vx", "vy", "vz"}

// Portrait holds data for a 2D phase space plot.
type Portrait struct {
	XAxis, YAxis int
	Points       []struct{ X, Y float64 }
}

// NewPortrait pairs two recorded components of one particle. It returns nil
// when the particle or an axis is out of range.
func NewPortrait(result *scene.Result, particle, xAxis, yAxis int) *Portrait {
	if xAxis < 0 || xAxis >= len(Axes) || yAxis < 0 || yAxis >= len(Axes) {
		return nil
	}
	xs := result.Column(particle, xAxis)
	ys := result.Column(particle, yAxis)
	if xs == nil {
		return nil
	}

	portrait := &Portrait{
		XAxis:  xAxis,
		YAxis:  yAxis,
		Points: make([]struct{ X, Y float64 }, len(xs)),
	}
	for i := range xs {
		portrait.Points[i].X = xs[i]
		portrait.Points[i].Y = ys[i]
	}
	return portrait
}

// ToASCII renders the portrait, y growing upward.
func (p *Portrait) ToASCII(width, height int) string {
	if p == nil || len(p.Points) == 0 {
		return ""
	}

	minX, maxX := p.Points[0].X, p.Points[0].X
	minY, maxY := p.Points[0].Y, p.Points[0].Y

	for _, pt := range p.Points {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for _, pt := range p.Points {
		col := int((pt.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((pt.Y-minY)/rangeY*float64(height-1))

		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	// axes, where they cross the visible area
	if minX <= 0 && maxX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			if col >= 0 && col < width && canvas[row][col] == ' ' {
				canvas[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if row >= 0 && row < height && canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// AxisIndex maps an axis name to its column, or -1.
func AxisIndex(name string) int {
	for i, a := range Axes {
		if a == name {
			return i
		}
	}
	return -1
}

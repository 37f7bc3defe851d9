package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a terminal surface. World coordinates are divided by Scale to get
// sub-pixels; the sub-pixel grid is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Scale         float64
	Grid          [][]rune
	Colors        [][]string

	fill string
}

func NewCanvas(w, h int, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Scale:  scale,
		Grid:   make([][]rune, h),
		Colors: make([][]string, h),
		fill:   Hex("white"),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]string, w)
	}
	c.Clear()
	return c
}

// FitCanvas picks a scale so that a world of the given size fits the canvas.
func FitCanvas(w, h int, worldW, worldH float64) *Canvas {
	scale := math.Max(worldW/float64(w*2), worldH/float64(h*4))
	return NewCanvas(w, h, scale)
}

func (c *Canvas) Fill(color string) { c.fill = Hex(color) }

// NoStroke is a no-op: the canvas only ever fills.
func (c *Canvas) NoStroke() {}

// Ellipse fills a disc of the given diameter centred on (x, y). Discs smaller
// than a sub-pixel still light the centre dot.
func (c *Canvas) Ellipse(x, y, diameter float64) {
	cx := x / c.Scale
	cy := y / c.Scale
	r := diameter / 2 / c.Scale
	if math.IsNaN(cx) || math.IsNaN(cy) || math.IsInf(cx, 0) || math.IsInf(cy, 0) || math.IsNaN(r) {
		return
	}

	w, h := float64(c.Width*2), float64(c.Height*4)
	c.Set(clamp(math.Round(cx), -1, w), clamp(math.Round(cy), -1, h))
	if r < 0.5 {
		return
	}

	// clip the bounding box to the sub-pixel grid
	x0, x1 := clamp(math.Floor(cx-r), 0, w), clamp(math.Ceil(cx+r), -1, w-1)
	y0, y1 := clamp(math.Floor(cy-r), 0, h), clamp(math.Ceil(cy+r), -1, h-1)

	r2 := r * r
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			dx, dy := float64(px)-cx, float64(py)-cy
			if dx*dx+dy*dy <= r2 {
				c.Set(px, py)
			}
		}
	}
}

func clamp(v, lo, hi float64) int {
	return int(math.Max(lo, math.Min(v, hi)))
}

// Set lights the sub-pixel (x, y) in the current fill colour.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][col] = c.fill
}

func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.Colors[i][j] = ""
		}
	}
}

// String renders the grid without colour.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render renders the grid with each cell in the colour it was last filled with.
func (c *Canvas) Render() string {
	styles := make(map[string]lipgloss.Style)
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			hex := c.Colors[i][j]
			if r == brailleBlank || hex == "" {
				b.WriteRune(r)
				continue
			}
			st, ok := styles[hex]
			if !ok {
				st = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
				styles[hex] = st
			}
			b.WriteString(st.Render(string(r)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

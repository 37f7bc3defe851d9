package render

import (
	"fmt"
	"strings"
)

type circle struct {
	x, y, r float64
	fill    string
}

// SVG collects filled circles and writes them as a standalone document.
type SVG struct {
	Width, Height int
	Background    string

	fill    string
	circles []circle
}

func NewSVG(w, h int) *SVG {
	return &SVG{Width: w, Height: h, Background: "#0a0a0a", fill: Hex("white")}
}

func (s *SVG) Fill(color string) { s.fill = Hex(color) }
func (s *SVG) NoStroke()         {}

func (s *SVG) Ellipse(x, y, diameter float64) {
	s.circles = append(s.circles, circle{x: x, y: y, r: diameter / 2, fill: s.fill})
}

func (s *SVG) Len() int { return len(s.circles) }

func (s *SVG) Reset() { s.circles = s.circles[:0] }

func (s *SVG) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.Width, s.Height, s.Width, s.Height, s.Background))

	for _, c := range s.circles {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="none"/>
`, c.x, c.y, c.r, c.fill))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

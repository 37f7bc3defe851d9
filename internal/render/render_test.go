package render

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/sketchphys/internal/physics"
	"github.com/san-kum/sketchphys/internal/vec"
)

var (
	_ physics.Surface = (*Canvas)(nil)
	_ physics.Surface = (*SVG)(nil)
	_ physics.Surface = (*Recorder)(nil)
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		hex     string
		wantErr bool
	}{
		{"red", "#ff0000", false},
		{"  Steelblue ", "#4682b4", false},
		{"#00ff88", "#00ff88", false},
		{"chartreuse-ish", "", true},
		{"#zzzzzz", "", true},
	}

	for _, tt := range tests {
		c, err := ParseColor(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownColor) {
				t.Errorf("%q: expected ErrUnknownColor, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.in, err)
			continue
		}
		if c.Hex() != tt.hex {
			t.Errorf("%q: got %s, want %s", tt.in, c.Hex(), tt.hex)
		}
	}

	if Hex("nonsense") != "#ff0000" {
		t.Error("Hex should fall back to red")
	}
	if rgba := RGBA("blue"); rgba.B != 255 || rgba.R != 0 || rgba.A != 255 {
		t.Errorf("RGBA(blue) = %v", rgba)
	}
}

func TestCanvasEllipse(t *testing.T) {
	c := NewCanvas(10, 5, 1)
	c.Fill("blue")
	c.NoStroke()
	c.Ellipse(8, 8, 4)

	if !c.IsSet(8, 8) {
		t.Error("centre should be set")
	}
	if !c.IsSet(10, 8) || !c.IsSet(6, 8) || !c.IsSet(8, 6) {
		t.Error("points on the radius should be set")
	}
	if c.IsSet(10, 10) {
		t.Error("point outside the disc should be clear")
	}
	if c.Colors[2][4] != "#0000ff" {
		t.Errorf("expected blue cell, got %q", c.Colors[2][4])
	}
}

func TestCanvasTinyAndOffscreen(t *testing.T) {
	c := NewCanvas(4, 4, 10)
	c.Ellipse(15, 15, 1)
	if !c.IsSet(2, 2) {
		t.Error("sub-pixel disc should light its centre dot")
	}

	c.Ellipse(-100, -100, 50)
	c.Ellipse(1e6, 1e6, 50)

	c.Clear()
	for _, row := range c.Grid {
		for _, r := range row {
			if r != brailleBlank {
				t.Fatal("Clear left dots behind")
			}
		}
	}
}

func TestCanvasHugeDisc(t *testing.T) {
	c := FitCanvas(60, 24, 400, 400)
	start := time.Now()
	c.Ellipse(200, 200, 4e4)
	c.Ellipse(200, 200, math.Inf(1))
	c.Ellipse(-1e300, 1e300, 1e300)
	c.Ellipse(math.NaN(), 0, 10)
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("huge discs took %v", elapsed)
	}

	for y := 0; y < c.Height*4; y++ {
		for x := 0; x < c.Width*2; x++ {
			if !c.IsSet(x, y) {
				t.Fatalf("sub-pixel (%d, %d) should be covered", x, y)
			}
		}
	}
}

func TestCanvasRender(t *testing.T) {
	c := NewCanvas(3, 2, 1)
	if got := strings.Count(c.String(), "\n"); got != 2 {
		t.Errorf("expected 2 rows, got %d", got)
	}
	c.Fill("red")
	c.Set(0, 0)
	if !strings.ContainsRune(c.Render(), rune(brailleBlank|0x1)) {
		t.Error("rendered output should contain the lit cell")
	}
}

func TestFitCanvas(t *testing.T) {
	c := FitCanvas(40, 10, 400, 200)
	// 400 wide / 80 sub-pixels = 5, 200 tall / 40 sub-pixels = 5
	if c.Scale != 5 {
		t.Errorf("expected scale 5, got %f", c.Scale)
	}
}

func TestSVG(t *testing.T) {
	s := NewSVG(200, 100)
	p := physics.NewParticle(vec.New2(50, 25), vec.Zero(2), 10)
	p.Display(s, "orange")

	if s.Len() != 1 {
		t.Fatalf("expected 1 circle, got %d", s.Len())
	}
	out := s.String()
	for _, want := range []string{`width="200"`, `cx="50.00"`, `cy="25.00"`, `r="10.00"`, `fill="#ffa500"`, `stroke="none"`} {
		if !strings.Contains(out, want) {
			t.Errorf("svg missing %s", want)
		}
	}

	s.Reset()
	if s.Len() != 0 {
		t.Error("Reset should drop circles")
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	p := physics.NewParticle(vec.New2(1, 2), vec.Zero(2), 3)
	p.Display(r, "gold")

	if len(r.Calls) != 3 {
		t.Fatalf("expected fill, noStroke, ellipse; got %v", r.Calls)
	}
	if r.Calls[0].Op != "fill" || r.Calls[0].Color != "gold" || r.Calls[1].Op != "noStroke" {
		t.Errorf("unexpected call order %v", r.Calls)
	}
	e := r.Ellipses()
	if len(e) != 1 || e[0].X != 1 || e[0].Y != 2 || e[0].D != 6 {
		t.Errorf("unexpected ellipse %v", e)
	}
}

package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sketchphys/internal/config"
	"github.com/san-kum/sketchphys/internal/physics"
	"github.com/san-kum/sketchphys/internal/render"
	"github.com/san-kum/sketchphys/internal/scene"
	"github.com/san-kum/sketchphys/internal/vec"
)

const (
	width           = 60
	height          = 24
	historyCapacity = 300
	trailLength     = 40
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
)

type TickMsg time.Time

// Model holds the running scene, its canvas and the UI state.
type Model struct {
	cfg       *config.Config
	initial   physics.Params
	scene     *scene.Scene
	canvas    *render.Canvas
	theme     Theme
	interval  time.Duration
	frame     int
	running   bool
	done      bool
	showHelp  bool
	paramKeys []string
	selected  int
	speeds    []float64
	trails    [][]vec.Vector
	err       error
}

// NewModel builds the scene described by cfg. The config is cloned, so
// tuning parameters never writes back to the caller's copy.
func NewModel(cfg *config.Config) (Model, error) {
	cfg = cfg.Clone()
	s, err := scene.FromConfig(cfg)
	if err != nil {
		return Model{}, err
	}

	keys := make([]string, 0, 2)
	for k := range cfg.Physics.GetParams() {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fps := cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}

	canvas := render.FitCanvas(width, height, cfg.World.Width, cfg.World.Height)
	s.SetSurface(canvas)
	s.Draw()

	return Model{
		cfg:       cfg,
		initial:   cfg.Physics,
		scene:     s,
		canvas:    canvas,
		theme:     ThemeCyberpunk,
		interval:  time.Second / time.Duration(fps),
		running:   true,
		paramKeys: keys,
		speeds:    make([]float64, 0, historyCapacity),
		trails:    make([][]vec.Vector, len(s.Particles)),
	}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the scene.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if !m.done {
				m.running = !m.running
			}
		case "r":
			m.reset()
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1)
		case "down", "j":
			m.adjustParam(-1)
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

// step advances the scene by one frame and redraws the canvas.
func (m *Model) step() {
	m.canvas.Clear()
	m.drawTrails()
	m.scene.Frame()
	m.frame++

	top := 0.0
	for i, p := range m.scene.Particles {
		top = math.Max(top, p.Speed())
		m.trails[i] = append(m.trails[i], p.Position)
		if len(m.trails[i]) > trailLength {
			m.trails[i] = m.trails[i][1:]
		}
		if !p.IsValid() {
			m.err = &scene.FrameError{Frame: m.frame, Particle: i, Wrapped: scene.ErrInvalidState}
		}
	}
	m.speeds = append(m.speeds, top)
	if len(m.speeds) > historyCapacity {
		m.speeds = m.speeds[1:]
	}

	if m.err != nil || m.frame >= m.cfg.Frames {
		m.running = false
		m.done = true
	}
}

func (m *Model) drawTrails() {
	for i, trail := range m.trails {
		color := physics.DefaultColor
		if i < len(m.scene.Colors) && m.scene.Colors[i] != "" {
			color = m.scene.Colors[i]
		}
		m.canvas.Fill(color)
		for _, pos := range trail {
			m.canvas.Set(int(math.Round(pos.X()/m.canvas.Scale)), int(math.Round(pos.Y()/m.canvas.Scale)))
		}
	}
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

// adjustParam nudges the selected parameter by 5% of its value, or by a
// fixed step when it is near zero, and rebuilds the scene's fields.
func (m *Model) adjustParam(dir float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	val := m.cfg.Physics.GetParams()[key]
	delta := math.Max(math.Abs(val)*0.05, 0.01)
	if err := m.cfg.Physics.SetParam(key, val+dir*delta); err != nil {
		m.err = err
		return
	}
	m.rebuildFields()
}

func (m *Model) rebuildFields() {
	fields, err := m.cfg.Fields()
	if err != nil {
		m.err = err
		return
	}
	m.scene.Fields = fields
}

// reset restores the initial particles and parameters and resumes the run.
func (m *Model) reset() {
	m.cfg.Physics = m.initial
	m.rebuildFields()
	m.scene.Reset()
	m.frame = 0
	m.running = true
	m.done = false
	m.err = nil
	m.speeds = m.speeds[:0]
	for i := range m.trails {
		m.trails[i] = m.trails[i][:0]
	}
	m.canvas.Clear()
	m.scene.Draw()
}

func (m Model) status() string {
	switch {
	case m.err != nil:
		return "ERROR: " + m.err.Error()
	case m.done:
		return "DONE"
	case !m.running:
		return "PAUSED"
	}
	return "RUNNING"
}

// View renders the canvas and the side panel.
func (m Model) View() string {
	st := m.theme.styles()
	canvasView := canvasStyle.Render(m.canvas.Render())

	var s strings.Builder
	s.WriteString(st.header.Render(strings.ToUpper(m.cfg.Name)) + "\n")
	s.WriteString(st.status.Render(m.status()) + "\n\n")

	if len(m.speeds) > 1 {
		chart := asciigraph.Plot(m.speeds, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("max speed"))
		s.WriteString(st.graph.Render(chart) + "\n\n")
	}

	s.WriteString(st.label.Render("Frame") + st.value.Render(fmt.Sprintf("%d/%d", m.frame, m.cfg.Frames)) + "\n")
	s.WriteString(st.label.Render("Particles") + st.value.Render(fmt.Sprintf("%d", len(m.scene.Particles))) + "\n")
	speed := 0.0
	if len(m.speeds) > 0 {
		speed = m.speeds[len(m.speeds)-1]
	}
	s.WriteString(st.label.Render("Speed") + st.value.Render(fmt.Sprintf("%.3f", speed)) + "\n")

	s.WriteString("\nPARAMETERS\n")
	params := m.cfg.Physics.GetParams()
	for i, k := range m.paramKeys {
		line := fmt.Sprintf("%-10s %.3f", k, params[k])
		if i == m.selected {
			s.WriteString(st.active.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + st.label.Render(line) + "\n")
		}
	}
	s.WriteString(st.help.Render("SP:Pause R:Reset Q:Quit\nT:Theme ↑↓:Tune ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panelStyle.Render(s.String()))
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
  Space    Pause/Resume
  R        Reset particles and parameters
  Tab      Select next parameter
  Up/K     Increase parameter
  Down/J   Decrease parameter
  T        Cycle themes
  ?        Toggle this help
  Q        Quit`

// Run starts the live view and blocks until the user quits.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

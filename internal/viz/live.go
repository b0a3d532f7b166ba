// Package viz renders a running simulation to the terminal: a braille
// canvas behind a bubbletea event loop. The viewer is a pure consumer of
// engine state; all physics stays in the engine package.
package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/engine"
	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/vec"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	trailCapacity   = 400
	historyCapacity = 600

	// Reference time-step policy bounds for the interactive controls.
	// The engine itself accepts any positive dt; this range is a UI
	// decision to keep the integration visibly stable.
	MinTimeStep = 0.001
	MaxTimeStep = 0.1
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model owns the engine plus everything needed to draw it: camera, canvas,
// trails, energy history, and the paused/running flags.
type Model struct {
	eng          *engine.Engine
	scenarioName string

	t       float64
	dt      float64
	minDt   float64
	maxDt   float64
	running bool

	canvas *Canvas
	camera *Camera
	trails [][]vec.Vec3

	energyHistory []float64
}

// NewModel sizes the camera to the scenario's spatial extent so both the
// dimensionless demo and SI solar-scale configurations fill the canvas.
func NewModel(eng *engine.Engine, scenarioName string, dt float64) Model {
	maxR := 0.0
	for _, b := range eng.Bodies() {
		if r := b.Position.Norm(); r > maxR {
			maxR = r
		}
	}
	if maxR == 0 {
		maxR = 1
	}

	minDt, maxDt := MinTimeStep, MaxTimeStep
	if dt < minDt || dt > maxDt {
		// SI-scale scenarios step in hundreds of seconds; keep the same
		// dynamic range around the configured dt.
		minDt, maxDt = dt/32, dt*32
	}

	return Model{
		eng:           eng,
		scenarioName:  scenarioName,
		dt:            dt,
		minDt:         minDt,
		maxDt:         maxDt,
		running:       true,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		camera:        NewCamera(1 / (1.4 * maxR)),
		trails:        make([][]vec.Vec3, eng.Len()),
		energyHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "[":
			m.dt = clamp(m.dt/2, m.minDt, m.maxDt)
		case "]":
			m.dt = clamp(m.dt*2, m.minDt, m.maxDt)
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "z":
			m.camera.RotateZ(0.1)
		case "Z":
			m.camera.RotateZ(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		}
	case TickMsg:
		// Pause freezes physics only; drawing and input stay live.
		if m.running {
			m.step()
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	m.eng.Step(m.dt)
	m.t += m.dt

	for i, b := range m.eng.Bodies() {
		m.trails[i] = append(m.trails[i], b.Position)
		if len(m.trails[i]) > trailCapacity {
			m.trails[i] = m.trails[i][1:]
		}
	}

	m.energyHistory = append(m.energyHistory, m.eng.Energy())
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

func (m *Model) reset() {
	m.eng.Reset()
	m.t = 0
	for i := range m.trails {
		m.trails[i] = m.trails[i][:0]
	}
	m.energyHistory = m.energyHistory[:0]
}

// draw paints trails then bodies back-to-front.
func (m *Model) draw() {
	m.canvas.Clear()
	sw, sh := canvasWidth*2, canvasHeight*4

	for _, trail := range m.trails {
		for _, p := range trail {
			if x, y, _, ok := m.camera.Project(p, sw, sh); ok {
				m.canvas.Set(x, y)
			}
		}
	}

	bodies := m.eng.Bodies()
	order := make([]int, len(bodies))
	depths := make([]float64, len(bodies))
	for i := range bodies {
		order[i] = i
		_, _, depths[i], _ = m.camera.Project(bodies[i].Position, sw, sh)
	}
	sort.Slice(order, func(a, b int) bool { return depths[order[a]] < depths[order[b]] })

	for _, i := range order {
		b := bodies[i]
		x, y, _, ok := m.camera.Project(b.Position, sw, sh)
		if !ok {
			continue
		}
		blob := 1
		if b.BaseRadius >= 6 {
			blob = 2
		}
		m.canvas.SetBlob(x, y, blob)
	}
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.scenarioName)) + "\n")
	if m.running {
		s.WriteString("RUNNING\n\n")
	} else {
		s.WriteString("PAUSED\n\n")
	}

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(4),
			asciigraph.Width(28),
			asciigraph.Caption("Energy"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.3g s", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Dt") + valueStyle.Render(fmt.Sprintf("%.3g s", m.dt)) + "\n")
	s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d", m.eng.Len())) + "\n")
	s.WriteString(labelStyle.Render("Momentum") + valueStyle.Render(fmt.Sprintf("%.3g", m.eng.Momentum().Norm())) + "\n")

	s.WriteString(helpStyle.Render("───────────────────\nSP:Pause R:Reset Q:Quit\n[ ]:Time step  +/-:Zoom\nX/Y/Z:Rotate"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

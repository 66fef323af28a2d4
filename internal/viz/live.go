// Package viz renders the arena live in the terminal with a braille canvas.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/collider/internal/engine"
	"github.com/san-kum/collider/internal/particle"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 240
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	onStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	offStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type TickMsg time.Time

// Model drives the live arena view: one engine step per display tick, then
// a redraw from a particle snapshot.
type Model struct {
	world   *engine.World
	canvas  *Canvas
	dt      float64
	fps     int
	running bool
	t       float64

	energyHistory []float64
	status        string
}

// NewModel wraps a world for interactive display.
func NewModel(world *engine.World, fps int) Model {
	if fps <= 0 {
		fps = 60
	}
	return Model{
		world:         world,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		dt:            world.Config().Dt,
		fps:           fps,
		running:       true,
		energyHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles the original front end's key map: g gravity, f friction,
// a add, k remove last, r reset, space pause, q quit.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "g":
			on := !m.world.GravityEnabled()
			m.world.SetGravityEnabled(on)
			m.status = toggleStatus("gravity", on)
		case "f":
			on := !m.world.FrictionEnabled()
			m.world.SetFrictionEnabled(on)
			m.status = toggleStatus("friction", on)
		case "a":
			if p, err := m.world.AddRandom(); err != nil {
				m.status = alertStyle.Render(err.Error())
			} else {
				m.status = fmt.Sprintf("added %s", p)
			}
		case "k":
			if p, err := m.world.RemoveLast(); err != nil {
				m.status = alertStyle.Render("no particles left to remove")
			} else {
				m.status = fmt.Sprintf("removed %s", p)
			}
		case "r":
			if err := m.world.Reset(); err != nil {
				m.status = alertStyle.Render(err.Error())
			} else {
				m.status = "simulation reset"
				m.energyHistory = m.energyHistory[:0]
				m.t = 0
			}
		}
	case TickMsg:
		if m.running {
			m.world.Step(m.dt)
			m.t += m.dt
			m.observe()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) observe() {
	energy := 0.0
	for _, p := range m.world.Particles() {
		energy += p.KineticEnergy()
	}
	m.energyHistory = append(m.energyHistory, energy)
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

// View renders the arena and a stats sidebar.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("PARTICLE ARENA") + "\n")
	if m.running {
		s.WriteString("RUNNING\n\n")
	} else {
		s.WriteString("PAUSED\n\n")
	}

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("Kinetic energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.1fs", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Particles") + valueStyle.Render(fmt.Sprintf("%d", m.world.Count())) + "\n")
	s.WriteString(labelStyle.Render("Collisions") + valueStyle.Render(fmt.Sprintf("%d", m.world.Collisions())) + "\n")
	s.WriteString(labelStyle.Render("Gravity") + renderToggle(m.world.GravityEnabled()) + "\n")
	s.WriteString(labelStyle.Render("Friction") + renderToggle(m.world.FrictionEnabled()) + "\n")

	if m.status != "" {
		s.WriteString("\n" + m.status + "\n")
	}

	s.WriteString(helpStyle.Render("\n───────────────────\nG:Gravity F:Friction A:Add\nK:Remove R:Reset SP:Pause Q:Quit"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// draw maps arena coordinates onto canvas sub-pixels and fills one circle
// per particle.
func (m *Model) draw() {
	m.canvas.Clear()

	cfg := m.world.Config()
	subW := float64(canvasWidth * 2)
	subH := float64(canvasHeight * 4)
	scaleX := subW / cfg.Width
	scaleY := subH / cfg.PlayableHeight()

	// Arena border.
	m.canvas.DrawLine(0, 0, int(subW)-1, 0)
	m.canvas.DrawLine(0, int(subH)-1, int(subW)-1, int(subH)-1)
	m.canvas.DrawLine(0, 0, 0, int(subH)-1)
	m.canvas.DrawLine(int(subW)-1, 0, int(subW)-1, int(subH)-1)

	for _, p := range m.world.Particles() {
		m.drawParticle(p, scaleX, scaleY)
	}
}

func (m *Model) drawParticle(p *particle.Particle, scaleX, scaleY float64) {
	x := int(p.X * scaleX)
	y := int(p.Y * scaleY)
	r := int(p.Radius * scaleX)
	if r < 1 {
		r = 1
	}
	m.canvas.FillCircle(x, y, r)
}

func renderToggle(on bool) string {
	if on {
		return onStyle.Render("ON")
	}
	return offStyle.Render("off")
}

func toggleStatus(name string, on bool) string {
	if on {
		return fmt.Sprintf("%s enabled", name)
	}
	return fmt.Sprintf("%s disabled", name)
}

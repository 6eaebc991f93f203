package tui

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/san-kum/trailviz/internal/app"
	"github.com/san-kum/trailviz/internal/control"
	"github.com/san-kum/trailviz/internal/viz"
)

const (
	defaultCols = 80
	defaultRows = 24
	// dragScale converts a mouse move of one cell into orbit pixels.
	dragScale = 8.0

	springFrequency = 12.0
	springDamping   = 1.0
)

type tickMsg time.Time

type model struct {
	fw        *app.Framework
	canvas    *viz.Canvas
	help      help.Model
	showHelp  bool
	frameRate int
	width     int
	last      time.Time

	pending        control.Input
	mouseX, mouseY int
	dragging       bool

	// Cell-sized drags are eased into the orbit by a critically damped
	// spring; target is the total drag requested so far.
	spring              harmonica.Spring
	dragTarget, dragPos [2]float64
	dragVel             [2]float64
}

func newModel(fw *app.Framework, frameRate int) model {
	if frameRate <= 0 {
		frameRate = 30
	}
	h := help.New()
	h.Width = defaultCols
	return model{
		fw:        fw,
		canvas:    viz.NewCanvas(defaultCols, defaultRows-1),
		help:      h,
		frameRate: frameRate,
		width:     defaultCols,
		spring:    harmonica.NewSpring(harmonica.FPS(frameRate), springFrequency, springDamping),
	}
}

func (m model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd { return m.tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, 10)
		m.help.Width = m.width
		m.canvas = viz.NewCanvas(m.width, max(msg.Height-1, 4))
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, helpKey) {
			m.showHelp = !m.showHelp
			return m, nil
		}
		m.pending = keyInput(m.pending, msg)
		return m, nil
	case tea.MouseMsg:
		m = m.mouse(msg)
		return m, nil
	case tickMsg:
		return m.frame(time.Time(msg))
	}
	return m, nil
}

// frame runs one Framework frame with the input gathered since the last
// tick.
func (m model) frame(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.last.IsZero() {
		dt = now.Sub(m.last).Seconds()
	}
	m.last = now

	in := m.pending
	in.DragX, in.DragY = m.easeDrag()
	act := m.fw.Update(dt, in)
	m.pending = control.Input{}
	m.fw.Render(m.canvas, m.canvas.Viewport())

	if act.Screenshot {
		name := strings.TrimSuffix(m.fw.ScreenshotName(), ".png") + ".txt"
		if err := os.WriteFile(name, []byte(m.canvas.String()), 0644); err != nil {
			log.Printf("screenshot skipped: %v", err)
		}
	}
	if act.Quit {
		return m, tea.Quit
	}
	return m, m.tick()
}

// easeDrag advances the drag spring one frame and returns the movement to
// apply this frame.
func (m *model) easeDrag() (dx, dy float64) {
	var d [2]float64
	for i := range d {
		prev := m.dragPos[i]
		m.dragPos[i], m.dragVel[i] = m.spring.Update(prev, m.dragVel[i], m.dragTarget[i])
		d[i] = m.dragPos[i] - prev
	}
	return d[0], d[1]
}

func (m model) mouse(msg tea.MouseMsg) model {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.pending.Wheel++
	case msg.Button == tea.MouseButtonWheelDown:
		m.pending.Wheel--
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.dragging = true
	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.dragTarget[0] += float64(msg.X-m.mouseX) * dragScale
		m.dragTarget[1] += float64(msg.Y-m.mouseY) * dragScale
	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
	}
	m.mouseX, m.mouseY = msg.X, msg.Y
	return m
}

func (m model) View() string {
	cfg := m.fw.Config()
	out := renderCanvas(m.canvas)
	switch {
	case m.showHelp:
		out += m.help.View(keyBindings)
	case cfg.Render.ShowHUD:
		out += renderStatus(viz.GetPalette(cfg.Render.Palette), m.fw.Status(), cfg.Render.Paused, m.width)
	default:
		out += dim.Render(fmt.Sprintf("%d pts  ? help", m.fw.Trail().Len()))
	}
	return out
}

// Run starts the terminal viewer and blocks until it quits.
func Run(fw *app.Framework, frameRate int) error {
	_, err := tea.NewProgram(newModel(fw, frameRate), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

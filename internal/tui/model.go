// Package tui renders a live status view of the listing controller. It
// is purely observational: the controller behaves identically whether
// its ticks come from here or from the headless run loop.
package tui

import (
	"fmt"
	"strings"
	"time"

	"mountls/internal/controller"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Capture is a controller sink that retains output for rendering. It is
// only touched from the bubbletea update loop, which also drives the
// ticks, so no locking is needed.
type Capture struct {
	lines []string
}

func (c *Capture) Infof(format string, args ...interface{}) {
	c.lines = append(c.lines, fmt.Sprintf(format, args...))
}

func (c *Capture) Debugf(format string, args ...interface{}) {
	c.lines = append(c.lines, fmt.Sprintf(format, args...))
}

// Lines returns everything captured so far, in emission order.
func (c *Capture) Lines() []string {
	return c.lines
}

// ticksPerFrame batches controller ticks between frames so the
// mount-wait loop makes progress at a realistic polling rate without
// redrawing per tick.
const ticksPerFrame = 256

type frameMsg time.Time

func nextFrame() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type Model struct {
	ctrl    *controller.Controller
	capture *Capture
	spin    spinner.Model
}

func New(ctrl *controller.Controller, capture *Capture) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return &Model{
		ctrl:    ctrl,
		capture: capture,
		spin:    s,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, nextFrame())
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case frameMsg:
		for i := 0; i < ticksPerFrame && !m.ctrl.Done(); i++ {
			m.ctrl.Tick()
		}
		return m, nextFrame()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("mountls"))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	if lines := m.capture.Lines(); len(lines) > 0 {
		b.WriteString(outputStyle.Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("q: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) statusLine() string {
	state := m.ctrl.State()
	switch {
	case state == controller.AwaitFilesystem:
		return fmt.Sprintf("%s %s (%d attempts)",
			m.spin.View(),
			waitingStyle.Render(state.String()),
			m.ctrl.MountRetries())
	case state == controller.Complete:
		return completeStyle.Render(state.String())
	case state == controller.Error:
		return errorStyle.Render(state.String())
	default:
		return activeStyle.Render(state.String())
	}
}

// Run drives the model in the terminal until the user quits.
func Run(ctrl *controller.Controller, capture *Capture) error {
	p := tea.NewProgram(New(ctrl, capture))
	_, err := p.Run()
	return err
}

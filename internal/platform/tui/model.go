package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ledgrid/ledarcade/internal/core"
	"github.com/ledgrid/ledarcade/internal/input"
	"github.com/ledgrid/ledarcade/internal/registry"
)

// After game over the program restarts with a fresh seed, the way the
// standalone matrix unit loops unattended.
const restartDelayMS = 3000

// Model runs one program on the simulated matrix.
type Model struct {
	program  registry.Program
	surface  *core.Surface
	sampler  *input.Sampler
	keyboard *Keyboard
	config   core.RuntimeConfig
	state    core.GameState
	paused   bool
	quitting bool

	// Nonzero while an automatic restart is pending.
	restartAtMS int64
}

// NewModel creates a simulator model for the given program. autoplay
// detaches the keyboard so the program demonstrates itself.
func NewModel(program registry.Program, cfg core.RuntimeConfig, autoplay bool) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Clock == nil {
		cfg.Clock = core.NewSystemClock()
	}

	keyboard := NewKeyboard(cfg.Clock)
	var source input.Source
	if !autoplay {
		source = keyboard
	}

	return Model{
		program:  program,
		surface:  core.NewSurface(cfg.Brightness, nil),
		sampler:  input.NewSampler(source, cfg.Clock, bindingsFor(program.ID())),
		keyboard: keyboard,
		config:   cfg,
	}
}

// bindingsFor picks the button layout wired for a program. Programs
// ignore actions they have no use for, so the combined layout is a safe
// default.
func bindingsFor(id string) []input.Binding {
	switch id {
	case "pong":
		return input.PongBindings()
	case "invaders":
		return input.InvadersBindings()
	case "slideshow":
		return input.SlideshowBindings()
	default:
		var all []input.Binding
		all = append(all, input.PongBindings()...)
		all = append(all, input.InvadersBindings()...)
		all = append(all, input.SlideshowBindings()...)
		return all
	}
}

// Init resets the program and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.program.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles key events and simulation ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		// Best-effort blank frame so a hardware sink does not hold the
		// last image.
		m.surface.Clear()
		_ = m.surface.Flush()
		return m, tea.Quit
	case "p":
		m.paused = !m.paused
		return m, nil
	case "r":
		m.restart()
		return m, nil
	}

	m.keyboard.Press(msg)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	if m.restartAtMS != 0 {
		if m.config.Clock.NowMS() >= m.restartAtMS {
			m.restart()
		}
		return m, tickCmd(m.config.TickRate)
	}

	result := m.program.Step(m.sampler.Sample())
	m.state = result.State

	if m.state.GameOver {
		m.restartAtMS = m.config.Clock.NowMS() + restartDelayMS
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.program.Reset(m.config)
	m.state = core.GameState{}
	m.restartAtMS = 0
}

// View renders the matrix frame with a status line underneath.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.program.Render(m.surface)
	frame := frameStyle.Render(RenderFrame(m.surface.Frame()))

	status := fmt.Sprintf("%s  score %d", m.program.Title(), m.state.Score)
	switch {
	case m.paused:
		status += "  [paused]"
	case m.restartAtMS != 0:
		status += "  [restarting]"
	}
	if !m.sampler.Manual() {
		status += "  [autoplay]"
	}

	return frame + "\n" + statusStyle.Render(status) + "\n"
}

// Run starts the simulator for the given program and blocks until the
// user quits.
func Run(program registry.Program, cfg core.RuntimeConfig, autoplay bool) error {
	p := tea.NewProgram(
		NewModel(program, cfg, autoplay),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

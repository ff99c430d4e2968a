package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.ACCDash/internal/dashboard"
	"github.com/LISSConsulting/LISSTech.ACCDash/internal/tui/panels"
	"github.com/LISSConsulting/LISSTech.ACCDash/internal/widgets"
)

// Model is the root bubbletea model. Every frame is applied to the engine
// inside Update, so the UI goroutine is the only writer of gauge state.
type Model struct {
	engine *dashboard.Engine
	canvas *widgets.Canvas

	keys  KeyMap
	help  help.Model
	theme Theme

	layout Layout
	width  int
	height int
	state  ViewState

	// Time
	startedAt time.Time
	now       time.Time

	configPath string

	// Error/done
	err  error
	done bool
}

// New creates the dashboard TUI around engine. configPath is shown in the
// status bar when non-empty.
func New(engine *dashboard.Engine, keys KeyMap, accentColor, configPath string) Model {
	now := time.Now()
	th := NewTheme(accentColor)

	canvas := widgets.NewCanvas()
	canvas.SetLabelColor(th.Accent())

	h := help.New()
	h.Width = 80

	return Model{
		engine:     engine,
		canvas:     canvas,
		keys:       keys,
		help:       h,
		theme:      th,
		layout:     Calculate(80, 24),
		width:      80,
		height:     24,
		state:      StateWaiting,
		startedAt:  now,
		now:        now,
		configPath: configPath,
	}
}

// Err returns the fatal link error that stopped the program, if any.
func (m Model) Err() error { return m.err }

// Init returns the initial commands: first receive + clock ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(receiveCmd(m.engine), tickCmd())
}

// tickCmd schedules the next one-second clock tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// receiveCmd blocks for one datagram.
func receiveCmd(e *dashboard.Engine) tea.Cmd {
	return func() tea.Msg {
		frame, err := e.Receive()
		if err != nil {
			return fatalMsg{err: err}
		}
		return frameMsg{frame: frame, at: time.Now()}
	}
}

// pollCmd waits the poll interval before the next receive, however long
// the tick took.
func pollCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

// Update handles all incoming bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = Calculate(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case frameMsg:
		return m.handleFrame(msg)
	case pollMsg:
		if m.done {
			return m, nil
		}
		return m, receiveCmd(m.engine)
	case fatalMsg:
		return m.fail(msg.err)
	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.done = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Rearm):
		m.engine.Rearm()
		return m, nil
	}
	return m, nil
}

func (m Model) handleFrame(msg frameMsg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	if err := m.engine.Apply(msg.frame, msg.at); err != nil {
		return m.fail(err)
	}
	if next := fromFeed(m.engine.State()); m.state.CanTransitionTo(next) {
		m.state = next
	}
	return m, pollCmd(m.engine.PollInterval())
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	if m.done {
		// receive unblocked by closing the link after quit
		return m, nil
	}
	m.err = err
	m.done = true
	if m.state.CanTransitionTo(StateFailed) {
		m.state = StateFailed
	}
	return m, tea.Quit
}

// View renders the status bar, the gauges and the footer.
func (m Model) View() string {
	if m.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nPlease resize to at least %dx%d.", m.width, m.height, minWidth, minHeight)
		return tooSmallStyle.Width(m.width).Render(msg)
	}

	stats := m.engine.Stats()
	status := panels.RenderStatus(panels.StatusProps{
		Peer:        m.engine.Peer(),
		ConfigPath:  m.configPath,
		StateSymbol: m.state.Symbol(),
		StateLabel:  m.state.Label(),
		PacketID:    stats.PacketID,
		Frames:      stats.Frames,
		BadFrames:   stats.BadFrames,
		Elapsed:     m.now.Sub(m.startedAt),
		Clock:       m.now,
	}, m.layout.Status.Width, m.theme.AccentHeaderStyle())

	var errText string
	if m.err != nil {
		errText = errorStyle.Render(m.err.Error())
	}
	footer := panels.RenderFooter(panels.FooterProps{
		Help:  m.help.View(m.keys),
		Armed: m.engine.Armed() && m.state == StateLive,
		Error: errText,
	}, m.layout.Footer.Width)

	m.engine.Render(m.canvas)
	bodyW, bodyH := innerDims(m.layout.Body)
	body := m.theme.BodyStyle().
		Width(bodyW).Height(bodyH).MaxHeight(bodyH + 2).
		Render(m.canvas.Render())

	return lipgloss.JoinVertical(lipgloss.Left, status, body, footer)
}

// Package tui is a terminal viewer for a single game. It steps the engine on
// key presses or a timer and can hand one seat to the keyboard.
package tui

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/nothanks/internal/game"
)

// DefaultDelay is the auto-play interval between decisions.
const DefaultDelay = 400 * time.Millisecond

const sidebarWidth = 32

// Options configures the viewer.
type Options struct {
	// Human hands Seat to the keyboard; every other seat uses the engine's
	// decider.
	Human bool
	Seat  int

	Auto      bool
	Delay     time.Duration
	Verbosity int
	Logger    *log.Logger
}

type tickMsg struct{}

// Model is the bubbletea model driving one game.
type Model struct {
	engine *game.Engine
	agent  *seatAgent
	logger *log.Logger
	opts   Options

	buf   bytes.Buffer
	lines []string

	viewport viewport.Model
	help     help.Model
	keys     keyMap

	auto     bool
	done     bool
	quitting bool
	err      error
	status   string

	width  int
	height int
}

// New wraps an engine that has not been stepped yet.
func New(engine *game.Engine, opts Options) (*Model, error) {
	if opts.Human && (opts.Seat < 0 || opts.Seat >= engine.Table().NumPlayers()) {
		return nil, fmt.Errorf("human seat %d out of range (0-%d)", opts.Seat, engine.Table().NumPlayers()-1)
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.Verbosity < game.VerbosityNarrate {
		opts.Verbosity = game.VerbosityNarrate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := &Model{
		engine:   engine,
		logger:   opts.Logger.WithPrefix("tui"),
		opts:     opts,
		viewport: viewport.New(40, 10),
		help:     help.New(),
		keys:     newKeyMap(opts.Human),
		auto:     opts.Auto,
	}
	engine.EventBus().Subscribe(game.NewNarrator(&m.buf, game.NarratorOptions{Verbosity: opts.Verbosity}))

	if opts.Human {
		m.agent = &seatAgent{seat: opts.Seat, policy: engine.Decider()}
		engine.SetDecider(m.agent)
	}
	return m, nil
}

// Run shows the model full screen until the player quits or ctx is done.
func Run(ctx context.Context, m *Model) error {
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return m.err
}

// Lines returns the narration so far.
func (m *Model) Lines() []string { return m.lines }

// Done reports whether the game finished or failed.
func (m *Model) Done() bool { return m.done }

// Err is the engine error that stopped the game, if any.
func (m *Model) Err() error { return m.err }

// Result is the scored game once Done.
func (m *Model) Result() *game.Result { return m.engine.Result() }

func (m *Model) Init() tea.Cmd {
	if m.auto {
		return m.tick()
	}
	return nil
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.opts.Delay, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tickMsg:
		if !m.auto || m.done {
			return m, nil
		}
		if !m.humansTurn() {
			m.step()
		}
		if m.done {
			return m, nil
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Step):
			if m.humansTurn() {
				m.status = "Your turn: t to take, p for no thanks"
				return m, nil
			}
			m.step()
			return m, nil
		case key.Matches(msg, m.keys.Auto):
			m.auto = !m.auto
			if m.auto && !m.done {
				return m, m.tick()
			}
			return m, nil
		case key.Matches(msg, m.keys.Take):
			m.act(game.Take)
			return m, nil
		case key.Matches(msg, m.keys.Pass):
			m.act(game.Pass)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) humansTurn() bool {
	return m.agent != nil && !m.done && m.engine.Table().WhoseTurn() == m.agent.seat
}

func (m *Model) act(action game.Action) {
	if !m.humansTurn() {
		return
	}
	if action == game.Pass && m.engine.Table().Current().Tokens == 0 {
		m.status = "No tokens left, you have to take it"
		return
	}
	m.agent.pending = &game.Decision{Action: action, Reason: game.ReasonChosen}
	m.step()
}

func (m *Model) step() {
	if m.done {
		return
	}
	m.status = ""
	done, err := m.engine.Step()
	m.flush()
	switch {
	case err != nil:
		m.logger.Error("Game stopped", "step", m.engine.Steps()+1, "error", err)
		m.err = err
		m.done = true
		m.status = err.Error()
	case done:
		m.done = true
		m.status = "Game over, q to quit"
	case m.humansTurn():
		m.status = "Your turn: t to take, p for no thanks"
	}
}

// flush moves narrated output into the log pane.
func (m *Model) flush() {
	text := strings.TrimRight(m.buf.String(), "\n")
	m.buf.Reset()
	if text == "" {
		return
	}
	m.lines = append(m.lines, strings.Split(text, "\n")...)
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) resize() {
	// header, status and help lines plus the pane borders
	m.viewport.Width = max(m.width-sidebarWidth-4, 1)
	m.viewport.Height = max(m.height-5, 1)
	m.help.Width = m.width
	m.viewport.GotoBottom()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := HeaderStyle.Render("No Thanks!") + " " + InfoStyle.Render(m.engine.Table().ID())

	logPane := paneStyle.
		Width(m.viewport.Width).
		Height(m.viewport.Height).
		Render(m.viewport.View())
	sidebar := paneStyle.
		Width(sidebarWidth).
		Height(m.viewport.Height).
		Render(m.renderSidebar())

	status := InfoStyle.Render(m.status)
	if m.err != nil {
		status = ErrorStyle.Render(m.status)
	} else if m.humansTurn() {
		status = WarningStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebar),
		status,
		m.help.View(m.keys),
	)
}

func (m *Model) renderSidebar() string {
	t := m.engine.Table()
	var b strings.Builder

	if t.IsOver() {
		b.WriteString(CardUpStyle.Render("No card up"))
	} else {
		b.WriteString(CardUpStyle.Render(fmt.Sprintf("Card up: %d", t.CardUp())))
	}
	fmt.Fprintf(&b, "\nPot: %d  Deck: %d\n\n", t.Pot(), t.Deck().Remaining())

	for i, p := range t.Players() {
		marker := "  "
		style := PlayerInfoStyle
		if i == t.WhoseTurn() && !t.IsOver() {
			marker = "> "
			style = TurnStyle
		}
		name := p.DisplayName()
		if m.agent != nil && i == m.agent.seat {
			name += " (you)"
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%s", marker, name)))
		fmt.Fprintf(&b, "\n  tokens %d  score %d\n  %s\n", p.Tokens, p.Score(), game.FormatCards(p.Cards()))
	}

	if m.auto {
		b.WriteString("\n" + InfoStyle.Render("auto"))
	}
	return b.String()
}

package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/harvest-defense/internal/core"
	"github.com/vovakirdan/harvest-defense/internal/platform/sound"
	"github.com/vovakirdan/harvest-defense/internal/registry"
	"github.com/vovakirdan/harvest-defense/internal/storage"
)

// footerLines is the space reserved under the game for the help footer.
const footerLines = 1

// statusTicks is how long a footer status message stays up.
const statusTicks = 120

// Options carries the optional collaborators of a Model.
type Options struct {
	Store  *storage.Store // nil disables score saving
	Sound  sound.Player   // nil means silent
	Logger *log.Logger    // nil discards logs

	// ScreenshotDir is where ctrl+s writes; empty means ~/.harvest/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sound      sound.Player
	logger     *log.Logger
	shotDir    string
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	firing     bool // Left mouse button held
	status     string
	statusLeft int
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Sound == nil {
		opts.Sound = sound.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ScreenshotDir == "" {
		home, _ := os.UserHomeDir()
		opts.ScreenshotDir = filepath.Join(home, ".harvest", "screenshots")
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerLines, 1)),
		store:      opts.Store,
		sound:      opts.Sound,
		logger:     opts.Logger,
		shotDir:    opts.ScreenshotDir,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// gameConfig is the runtime config the game sees: the terminal minus the
// footer.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-m.footerHeight(), 1)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("game ready", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Shell keys
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.copySummary()
		return m, nil
	case key.Matches(msg, m.keys.Mute):
		if m.sound.ToggleMute() {
			m.setStatus("sound off")
		} else {
			m.setStatus("sound on")
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeGame()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "game", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse tracks the pointer and the held fire button.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.inputFrame.SetPointer(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.firing = true
		}
	case tea.MouseActionRelease:
		// Some terminals report releases without a button.
		m.firing = false
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.resizeGame()
	return m, nil
}

// resizeGame fits the screen buffer and the game to the space left over
// by the footer.
func (m *Model) resizeGame() {
	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(cfg.ScreenW, cfg.ScreenH)
		return
	}
	// Games that cannot follow a resize restart instead
	if !m.gameState.GameOver {
		m.game.Reset(cfg)
	}
}

// footerHeight is the number of lines the help footer takes.
func (m Model) footerHeight() int {
	if m.help.ShowAll {
		return len(m.keys.FullHelp()[0])
	}
	return footerLines
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.firing {
		m.inputFrame.Set(core.ActionFire)
	}

	result := m.game.Step(m.inputFrame)
	prev := m.gameState
	m.gameState = result.State

	for _, c := range result.Cues {
		m.sound.Play(c)
		if c == core.CueStart {
			m.logger.Info("session started", "game", m.game.ID())
		}
	}

	if m.gameState.Paused != prev.Paused {
		m.logger.Debug("pause toggled", "paused", m.gameState.Paused)
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	if m.statusLeft > 0 {
		m.statusLeft--
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickInterval())
}

// saveRun records the finished run in the score log.
func (m *Model) saveRun() {
	run := storage.Run{GameID: m.game.ID(), Score: m.gameState.Score}
	if r, ok := m.game.(registry.Reporter); ok {
		rep := r.Report()
		run.Score = rep.Score
		run.Cells = rep.Cells
		run.Kills = rep.Kills
		run.Outcome = rep.Outcome
		run.Seed = rep.Seed
		run.Duration = rep.Duration
	}
	m.logger.Info("session over", "game", run.GameID, "score", run.Score,
		"outcome", run.Outcome, "kills", run.Kills, "duration", run.Duration)

	if m.store == nil {
		return
	}
	id, err := m.store.SaveRun(run)
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Error("save score failed", "error", err)
		return
	}
	m.logger.Debug("score saved", "id", id)
}

// copySummary puts a one-line run summary on the clipboard.
func (m *Model) copySummary() {
	text := m.game.Title()
	if s, ok := m.game.(registry.Summarizer); ok {
		text = s.Summary()
	}
	if err := clipboard.WriteAll(text); err != nil {
		m.logger.Warn("clipboard unavailable", "error", err)
		m.setStatus("clipboard unavailable")
		return
	}
	m.setStatus("summary copied")
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("saved " + filepath.Base(path))
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusLeft = statusTicks
}

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	footer := m.help.View(m.keys)
	if m.statusLeft > 0 && !m.help.ShowAll {
		footer = statusStyle.Render(m.status) + "  " + footer
	}
	b.WriteString(footerStyle.Render(footer))
	return b.String()
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer aims without a button held
	)

	_, err := p.Run()
	return err
}

package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/ladle/internal/logging"
	"github.com/five82/ladle/internal/logtail"
	"github.com/five82/ladle/internal/prefs"
	"github.com/five82/ladle/internal/recipe"
	"github.com/five82/ladle/internal/state"
)

// Controller is the search API the UI drives. SetQuery and CloseDetails must
// not block; Search and SelectRecipe may, and run inside commands.
type Controller interface {
	SetQuery(text string)
	Search(ctx context.Context, term string)
	SelectRecipe(ctx context.Context, id string)
	CloseDetails()
	Snapshot() state.Snapshot
}

// Options configure the UI.
type Options struct {
	Context     context.Context
	Controller  Controller
	Notifier    *Notifier
	Prefs       prefs.Prefs
	PrefsPath   string // empty uses default ~/.config/ladle/prefs.toml
	LogPath     string
	Logger      *slog.Logger
	NoAltScreen bool
}

type focusArea int

const (
	focusResults focusArea = iota
	focusSearch
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayHelp
	overlayLogs
)

const (
	logTailLines = 400
	chromeLines  = 4 // header, search box, footer, spacer
)

type (
	stateChangedMsg struct{}
	logsLoadedMsg   struct {
		entries []logtail.Entry
		err     error
	}
	prefsSavedMsg struct{ err error }
)

// Model is the root Bubble Tea model.
type Model struct {
	ctx    context.Context
	ctrl   Controller
	logger *slog.Logger

	keys    keyMap
	help    help.Model
	input   textinput.Model
	spinner spinner.Model
	detail  viewport.Model
	logView viewport.Model

	theme     Theme
	prefs     prefs.Prefs
	prefsPath string
	logPath   string

	snapshot  state.Snapshot
	term      string
	detailID  string
	cursor    int
	selecting bool
	focus     focusArea
	overlay   overlayKind
	logErr    error
	prefsErr  error

	width  int
	height int
}

// New builds the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	keys := defaultKeyMap()

	input := textinput.New()
	input.Placeholder = "Search recipes by name…"
	input.Prompt = "search › "
	input.CharLimit = 80
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	detail := viewport.New(80, 20)
	detail.MouseWheelEnabled = true
	detail.KeyMap.PageDown = keys.PageDown
	detail.KeyMap.PageUp = keys.PageUp

	logView := viewport.New(80, 20)

	m := Model{
		ctx:       ctx,
		ctrl:      opts.Controller,
		logger:    logging.NewComponentLogger(opts.Logger, "ui"),
		keys:      keys,
		help:      help.New(),
		input:     input,
		spinner:   spin,
		detail:    detail,
		logView:   logView,
		theme:     GetTheme(opts.Prefs.Theme),
		prefs:     opts.Prefs,
		prefsPath: opts.PrefsPath,
		logPath:   opts.LogPath,
		focus:     focusSearch,
	}
	m.prefs.Theme = m.theme.Name
	m.snapshot = m.ctrl.Snapshot()
	return m
}

// Init issues the mount-time search for the default term.
func (m Model) Init() tea.Cmd {
	ctrl := m.ctrl
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		func() tea.Msg {
			ctrl.SetQuery("")
			return stateChangedMsg{}
		},
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case stateChangedMsg:
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd

	case logsLoadedMsg:
		m.logErr = msg.err
		m.logView.SetContent(m.renderLogLines(msg.entries))
		m.logView.GotoBottom()
		return m, nil

	case prefsSavedMsg:
		m.prefsErr = msg.err
		if msg.err != nil {
			m.logger.Warn("save preferences failed", logging.Error(msg.err))
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.overlay != overlayNone {
		return m.handleOverlayKey(msg)
	}
	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}
	if next, cmd, ok := m.handleGlobalKey(msg); ok {
		return next, cmd
	}
	if m.snapshot.Selected != nil {
		return m.handleDetailKey(msg)
	}
	return m.handleResultsKey(msg)
}

func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Quit):
		m.overlay = overlayNone
	case m.overlay == overlayHelp && key.Matches(msg, m.keys.Help):
		m.overlay = overlayNone
	case m.overlay == overlayLogs && key.Matches(msg, m.keys.Logs):
		m.overlay = overlayNone
	case m.overlay == overlayLogs:
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.blurSearch()
		return m, m.searchCmd(m.input.Value())
	case key.Matches(msg, m.keys.Blur):
		m.blurSearch()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.ctrl.SetQuery(after)
		m.refresh()
	}
	return m, cmd
}

func (m Model) handleGlobalKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true
	case key.Matches(msg, m.keys.Help):
		m.overlay = overlayHelp
		return m, nil, true
	case key.Matches(msg, m.keys.Logs):
		m.overlay = overlayLogs
		return m, m.loadLogsCmd(), true
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.renderDetailContent()
		return m, m.savePrefsCmd(), true
	case key.Matches(msg, m.keys.Compact):
		m.prefs.CompactCards = !m.prefs.CompactCards
		return m, m.savePrefsCmd(), true
	case key.Matches(msg, m.keys.Focus):
		m.focus = focusSearch
		return m, m.input.Focus(), true
	}
	return m, nil, false
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Close) {
		m.ctrl.CloseDetails()
		m.selecting = false
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := len(m.snapshot.Results) - 1
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < last {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(last, 0)
	case key.Matches(msg, m.keys.Open):
		if r, ok := m.current(); ok {
			m.selecting = true
			return m, m.selectCmd(r.ID)
		}
	case key.Matches(msg, m.keys.Close):
		// Dismiss an error, or abandon a detail lookup still in flight.
		if m.snapshot.Failed() || (m.selecting && m.snapshot.Loading()) {
			m.ctrl.CloseDetails()
			m.selecting = false
			m.refresh()
		}
	}
	return m, nil
}

func (m *Model) blurSearch() {
	m.focus = focusResults
	m.input.Blur()
}

func (m Model) current() (recipe.Recipe, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Results) {
		return recipe.Recipe{}, false
	}
	return m.snapshot.Results[m.cursor], true
}

// refresh pulls the latest snapshot and reconciles cursor and detail pane.
func (m *Model) refresh() {
	m.snapshot = m.ctrl.Snapshot()
	if m.snapshot.Term != m.term {
		m.term = m.snapshot.Term
		m.cursor = 0
	}
	if n := len(m.snapshot.Results); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	if !m.snapshot.Loading() {
		m.selecting = false
	}

	id := ""
	if m.snapshot.Selected != nil {
		id = m.snapshot.Selected.ID
	}
	if id != m.detailID {
		m.detailID = id
		m.renderDetailContent()
		m.detail.GotoTop()
	}
}

func (m *Model) resize() {
	bodyHeight := max(m.height-chromeLines, 3)
	m.detail.Width = max(m.width-2, 20)
	m.detail.Height = bodyHeight
	m.logView.Width = max(m.width-6, 20)
	m.logView.Height = max(m.height-6, 3)
	m.input.Width = max(m.width-len(m.input.Prompt)-4, 10)
	m.help.Width = m.width
	m.renderDetailContent()
}

func (m *Model) renderDetailContent() {
	if m.snapshot.Selected == nil {
		m.detail.SetContent("")
		return
	}
	m.detail.SetContent(renderDetail(*m.snapshot.Selected, m.detail.Width, m.theme.Styles()))
}

func (m Model) searchCmd(term string) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		ctrl.Search(ctx, term)
		return stateChangedMsg{}
	}
}

func (m Model) selectCmd(id string) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		ctrl.SelectRecipe(ctx, id)
		return stateChangedMsg{}
	}
}

func (m Model) loadLogsCmd() tea.Cmd {
	path := m.logPath
	return func() tea.Msg {
		entries, err := logtail.ReadEntries(path, logTailLines)
		return logsLoadedMsg{entries: entries, err: err}
	}
}

func (m Model) savePrefsCmd() tea.Cmd {
	p, path := m.prefs, m.prefsPath
	return func() tea.Msg {
		return prefsSavedMsg{err: prefs.Save(path, p)}
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/guacamole-runner/internal/registry"
	"github.com/vovakirdan/guacamole-runner/internal/storage"
)

// Scoreboard layout
const (
	minWidthForRecent = 80  // Below this the recent flights panel is hidden
	recentWidth       = 26  // Width of the recent flights panel
	recentRuns        = 8   // Flights listed in the recent panel
	maxRuns           = 100 // Best flights loaded into the table
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextMode, k.PrevMode}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev mode")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "close")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best flights of one mode at a time, with the
// mode's totals and its latest flights.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	mode      int // Index into modes
	store     *storage.Store
	best      []storage.Run
	recent    []storage.Run
	stats     storage.Stats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over every registered mode.
// A nil store shows empty boards.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) showRecent() bool {
	return m.width >= minWidthForRecent
}

func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Points", Width: 9},
		{Title: "Distance", Width: 9},
		{Title: "When", Width: 15},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Title, stats, tabs, help and borders
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the selected mode's runs and totals.
func (m *ScoreboardModel) load() {
	m.best, m.recent, m.stats = nil, nil, storage.Stats{}
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.mode].ID
		if runs, err := m.store.TopRuns(id, maxRuns); err == nil {
			m.best = runs
		}
		if runs, err := m.store.RecentRuns(id, recentRuns); err == nil {
			m.recent = runs
		}
		if st, err := m.store.Stats(id); err == nil {
			m.stats = st
		}
	}
	m.table.SetRows(RunRows(m.best))
	m.table.GotoTop()
}

// RunRows formats runs as table rows, best first.
func RunRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			humanize.Comma(int64(r.Points)),
			humanize.Comma(int64(r.Distance)),
			humanize.Time(r.CreatedAt()),
		}
	}
	return rows
}

// StatsLine summarises all runs of a mode.
func StatsLine(st storage.Stats) string {
	if st.Runs == 0 {
		return "No flights yet"
	}
	return fmt.Sprintf("%s %s · best %s pts · furthest %s · %s tiles flown · avg %.1f pts",
		humanize.Comma(int64(st.Runs)),
		plural(st.Runs, "flight", "flights"),
		humanize.Comma(int64(st.BestPoints)),
		humanize.Comma(int64(st.BestDistance)),
		humanize.Comma(int64(st.TotalDistance)),
		st.AvgPoints,
	)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.table.SetRows(RunRows(m.best))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) cycle(step int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + step + len(m.modes)) % len(m.modes)
	m.load()
}

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardStatsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	boardBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("22")).Padding(0, 1)
	boardEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("BEST FLIGHTS"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(boardStatsStyle.Render(StatsLine(m.stats)), m.width))
	b.WriteString("\n\n")

	board := boardBoxStyle.Render(m.tableView())
	if m.showRecent() {
		board = lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", m.recentView())
	}
	b.WriteString(centerText(board, m.width))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders the mode selector. When the tabs do not fit only the
// current mode is shown.
func (m ScoreboardModel) tabs() string {
	if len(m.modes) == 0 {
		return ""
	}
	parts := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			parts[i] = boardActiveStyle.Render(g.Title)
		} else {
			parts[i] = boardTabStyle.Render(g.Title)
		}
	}
	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = "< " + m.modes[m.mode].Title + " >"
	}
	return line
}

func (m ScoreboardModel) tableView() string {
	if len(m.best) == 0 {
		return boardEmptyStyle.Render("No flights recorded yet.\nLand once to start the board!")
	}
	return m.table.View()
}

// recentView lists the latest flights, newest first.
func (m ScoreboardModel) recentView() string {
	var b strings.Builder
	b.WriteString(boardTitleStyle.Render("Latest"))
	b.WriteString("\n")
	if len(m.recent) == 0 {
		b.WriteString("-")
	}
	for i, r := range m.recent {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%6s pts %4s tiles", humanize.Comma(int64(r.Points)), humanize.Comma(int64(r.Distance)))
	}
	return boardBoxStyle.Width(recentWidth).Render(b.String())
}

// IsGoingBack returns true if the user closed the board with back.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if the user closed it with back, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}

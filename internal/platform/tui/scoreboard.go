package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crossing/internal/registry"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

const (
	boardRuns    = 50 // Runs loaded per variant
	boardLedger  = 50 // Wallet entries loaded
	boardChrome  = 9  // Title, stats, tabs, borders and help
	dateColWidth = 14
)

// boardView selects what the scoreboard table lists.
type boardView int

const (
	viewRuns boardView = iota
	viewCoins
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Scroll  key.Binding
	Variant key.Binding
	Coins   key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the help bar.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Variant, k.Coins, k.Back, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll: key.NewBinding(
			key.WithKeys("up", "k", "down", "j"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Variant: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "h", "right", "l"),
			key.WithHelp("tab/←/→", "variant"),
		),
		Coins: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "runs/coins"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best runs per crossing variant and the coin
// history of the shared wallet.
type ScoreboardModel struct {
	variants []registry.GameInfo
	current  int
	store    *storage.Store
	view     boardView

	runs    []storage.ScoreEntry
	stats   storage.GameStats
	ledger  []storage.LedgerEntry
	balance int

	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over every registered variant.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		help:     help.New(),
		keys:     DefaultScoreboardKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.newTable()
	m.loadWallet()
	if len(m.variants) > 0 {
		m.loadVariant(m.variants[0].ID)
	}
	m.refreshRows()
	return m
}

// newTable builds an empty table sized for the current view.
func (m *ScoreboardModel) newTable() table.Model {
	first := table.Column{Title: "Rank", Width: 6}
	second := table.Column{Title: "Roads", Width: 8}
	if m.view == viewCoins {
		first = table.Column{Title: "Coins", Width: 6}
		second = table.Column{Title: "Variant", Width: 18}
	}

	t := table.New(
		table.WithColumns([]table.Column{first, second, {Title: "When", Width: dateColWidth}}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-boardChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// loadVariant loads the best runs and run statistics for one variant.
func (m *ScoreboardModel) loadVariant(id string) {
	m.runs = nil
	m.stats = storage.GameStats{GameID: id}
	if m.store == nil {
		return
	}

	if stats, err := m.store.GetGameStats(id); err == nil && stats != nil {
		m.stats = *stats
	}
	if runs, err := m.store.TopScores(id, boardRuns); err == nil {
		m.runs = runs
	}
}

// loadWallet loads the balance and the most recent coin awards.
func (m *ScoreboardModel) loadWallet() {
	m.balance, m.ledger = 0, nil
	if m.store == nil {
		return
	}
	if balance, err := m.store.Balance(); err == nil {
		m.balance = balance
	}
	if ledger, err := m.store.Ledger(boardLedger); err == nil {
		m.ledger = ledger
	}
}

// refreshRows fills the table from the active view.
func (m *ScoreboardModel) refreshRows() {
	var rows []table.Row
	switch m.view {
	case viewRuns:
		for i, r := range m.runs {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", r.Score),
				r.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	case viewCoins:
		for _, e := range m.ledger {
			rows = append(rows, table.Row{
				fmt.Sprintf("+%d", e.Amount),
				m.variantTitle(e.GameID),
				e.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) variantTitle(id string) string {
	for _, v := range m.variants {
		if v.ID == id {
			return v.Title
		}
	}
	return id
}

// cycle moves the variant cursor by delta, wrapping around.
func (m *ScoreboardModel) cycle(delta int) {
	if len(m.variants) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.variants)) % len(m.variants)
	m.loadVariant(m.variants[m.current].ID)
	m.refreshRows()
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

		case key.Matches(msg, m.keys.Coins):
			if m.view == viewRuns {
				m.view = viewCoins
			} else {
				m.view = viewRuns
			}
			m.table = m.newTable()
			m.refreshRows()
			return m, nil

		case key.Matches(msg, m.keys.Variant):
			switch msg.String() {
			case "shift+tab", "left", "h":
				m.cycle(-1)
			default:
				m.cycle(1)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.refreshRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	title := "HIGH SCORES"
	if m.view == viewCoins {
		title = "HIGH SCORES - coin history"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText(m.renderStats(), m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(m.renderBody()))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderStats renders the run summary of the selected variant and the
// wallet balance.
func (m ScoreboardModel) renderStats() string {
	line := fmt.Sprintf("Runs: %d  Best: %d  Avg: %.1f  Coins: %d",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.balance)
	if !m.stats.LastPlayed.IsZero() {
		line += "  Last: " + m.stats.LastPlayed.Format("Jan 02 15:04")
	}
	return line
}

// renderTabs renders one tab per variant, the selected one highlighted.
func (m ScoreboardModel) renderTabs() string {
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	idle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)

	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			tabs[i] = active.Render(v.Title)
		} else {
			tabs[i] = idle.Render(v.Title)
		}
	}
	return strings.Join(tabs, " ")
}

func (m ScoreboardModel) renderBody() string {
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
	switch {
	case m.view == viewRuns && len(m.runs) == 0:
		return empty.Render("No runs recorded yet.\nCross a road to get on the board!")
	case m.view == viewCoins && len(m.ledger) == 0:
		return empty.Render("No coins earned yet.")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
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

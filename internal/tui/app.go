// Package tui provides the interactive Bubble Tea expense form for fintrack.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/fintrack/internal/config"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model. It drives a ledger owned by the caller.
type App struct {
	ledger *ledger.Ledger
	cfg    config.Config
	now    func() time.Time

	// Add form; values live behind a pointer so copies of App share them
	addForm *huh.Form
	addVals *addValues

	// Export prompt, nil unless the user is choosing a destination
	exportForm *huh.Form
	exportPath *string

	// Blocking notice, nil when none is shown
	notice *components.Notice

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	entries  entriesState
	settings settingsState
}

const (
	minTerminalWidth = 60
	compactWidth     = 100
	maxContentWidth  = 140

	minContentHeight = 5
	appTitle         = "◈ FinTrack · Smart Personal Expense Tracker"
)

// NewApp creates the TUI model around l.
func NewApp(l *ledger.Ledger, cfg config.Config) App {
	a := App{
		ledger:     l,
		cfg:        cfg,
		now:        time.Now,
		addVals:    &addValues{},
		exportPath: new(string),
	}
	a.addVals.date = a.today()
	a.addForm = a.newAddForm()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		a.addForm.Init(),
	)
}

func (a App) today() string {
	return a.now().Format(a.cfg.General.DateLayout)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.addForm = a.addForm.WithWidth(a.formWidth())
		if a.exportForm != nil {
			a.exportForm = a.exportForm.WithWidth(a.formWidth())
		}
		return a, nil

	case tea.MouseMsg:
		if a.notice != nil || a.showHelp || a.exportForm != nil {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// A notice blocks everything until dismissed
		if a.notice != nil {
			switch key {
			case "enter", "esc", " ", "q":
				a.notice = nil
			}
			return a, nil
		}

		if a.exportForm != nil {
			return a.updateExportForm(msg)
		}

		if a.activeTab == components.TabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// The add form owns the keyboard; esc leaves it, ctrl+e exports
		if a.activeTab == components.TabAdd {
			switch key {
			case "esc":
				a.activeTab = components.TabOverview
				return a, nil
			case "ctrl+e":
				return a.startExport()
			}
			return a.updateAddForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if a.activeTab == components.TabEntries {
			if handled, next := a.updateEntries(key); handled {
				return next, nil
			}
		}

		if a.activeTab == components.TabSettings {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "e", "ctrl+e":
			return a.startExport()
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if r := []rune(key); len(r) == 1 {
			if idx := components.TabIdxByKey(r[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil
	}

	// Forward everything else (cursor blinks etc.) to the focused form
	if a.exportForm != nil {
		return a.updateExportForm(msg)
	}
	if a.activeTab == components.TabAdd && a.notice == nil {
		return a.updateAddForm(msg)
	}
	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

func (a App) formWidth() int {
	if a.isCompactLayout() {
		return components.CardInnerWidth(a.contentWidth())
	}
	return components.CardInnerWidth(components.LayoutRow(a.contentWidth(), 2)[0])
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.notice != nil {
		return components.RenderNotice(*a.notice, a.width, a.height)
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  fintrack needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.Title).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		name     string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"a o l x", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Move through entries"},
		}},
		{"Add form", []struct{ key, desc string }{
			{"Tab", "Next field"},
			{"Enter", "Next field / Add expense"},
			{"Esc", "Leave the form"},
			{"^e", "Export from the form"},
		}},
		{"Actions", []struct{ key, desc string }{
			{"e", "Export data"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.name))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := a.renderHeader(w)

	hints := "[?]help  [e]xport  [q]uit"
	switch {
	case a.exportForm != nil:
		hints = "[Enter]export  [Esc]cancel"
	case a.activeTab == components.TabAdd:
		hints = "[Enter]next/add  [Esc]leave form  [^e]xport"
	}
	statusBar := components.RenderStatusBar(w, a.ledger.Count(), hints)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch {
	case a.exportForm != nil:
		content = a.renderExportPrompt(cw)
	case a.activeTab == components.TabAdd:
		content = a.renderAddTab(cw)
	case a.activeTab == components.TabOverview:
		content = a.renderOverviewTab(cw)
	case a.activeTab == components.TabEntries:
		content = a.renderEntriesTab(cw, contentH)
	case a.activeTab == components.TabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// renderHeader draws the tab bar with the app title right-aligned.
func (a App) renderHeader(w int) string {
	t := theme.Active

	tabs := components.RenderTabBar(a.activeTab, 0)
	title := lipgloss.NewStyle().Foreground(t.Title).Background(t.Surface).Bold(true).Render(appTitle + " ")

	gap := w - lipgloss.Width(tabs) - lipgloss.Width(title)
	if gap < 1 {
		return lipgloss.NewStyle().Background(t.Surface).Width(w).Render(tabs)
	}
	filler := lipgloss.NewStyle().Background(t.Surface).Render(strings.Repeat(" ", gap))
	return tabs + filler + title
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

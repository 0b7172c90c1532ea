package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fintrack/internal/export"
	"github.com/theirongolddev/fintrack/internal/logger"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	nothingToExportMsg = "Nothing to export."
	exportedMsg        = "Data exported successfully"
)

// startExport opens the destination prompt, or reports that there is
// nothing to write.
func (a App) startExport() (tea.Model, tea.Cmd) {
	if a.ledger.Count() == 0 {
		a.notice = &components.Notice{Kind: components.NoticeInfo, Title: "No Data", Message: nothingToExportMsg}
		return a, nil
	}

	*a.exportPath = a.cfg.General.ExportPath
	if *a.exportPath == "" {
		*a.exportPath = "expenses" + export.DefaultExt
	}

	a.exportForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Save expenses to").
				Description("Use .csv for a spreadsheet or .db for SQLite").
				Value(a.exportPath),
		),
	).WithTheme(theme.Form()).WithShowHelp(false)

	if a.width > 0 {
		a.exportForm = a.exportForm.WithWidth(a.formWidth())
	}
	return a, a.exportForm.Init()
}

// updateExportForm drives the destination prompt. Esc cancels without
// touching anything.
func (a App) updateExportForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		a.exportForm = nil
		return a, nil
	}

	model, cmd := a.exportForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		a.exportForm = f
	}

	switch a.exportForm.State {
	case huh.StateCompleted:
		a.exportForm = nil
		a.runExport(*a.exportPath)
		return a, nil
	case huh.StateAborted:
		a.exportForm = nil
		return a, nil
	}
	return a, cmd
}

// runExport writes the ledger to path and raises the outcome notice. A blank
// path is treated as a cancel.
func (a *App) runExport(path string) {
	if strings.TrimSpace(path) == "" {
		return
	}

	written, err := export.ToFile(path, a.ledger)
	if err != nil {
		logger.Error("export failed", zap.String("path", path), zap.Error(err))
		a.notice = &components.Notice{Kind: components.NoticeError, Title: "Export Failed", Message: err.Error()}
		return
	}

	logger.Info("export written", zap.String("path", written), zap.Int("rows", a.ledger.Count()))
	a.notice = &components.Notice{
		Kind:    components.NoticeInfo,
		Title:   "Success",
		Message: fmt.Sprintf("%s\n%s", exportedMsg, written),
	}
}

func (a App) renderExportPrompt(cw int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	body := a.exportForm.View() + "\n" +
		muted.Render(fmt.Sprintf("%d entries  ·  [Enter] export  [Esc] cancel", a.ledger.Count()))

	w := cw
	if !a.isCompactLayout() {
		w = components.LayoutRow(cw, 2)[0]
	}
	return components.ContentCard("Export Data", body, w)
}

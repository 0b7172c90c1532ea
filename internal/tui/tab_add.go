package tui

import (
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/logger"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Notice texts shown after a submit or export.
const (
	inputErrorTitle    = "Input Error"
	inputErrorMsg      = "Please fill all fields."
	invalidAmountTitle = "Invalid Amount"
	invalidAmountMsg   = "Enter a valid number for amount."
	addFailedTitle     = "Could Not Add"
)

// addValues are the fields bound to the add form.
type addValues struct {
	date        string
	category    string
	amount      string
	description string
}

func (a App) newAddForm() *huh.Form {
	opts := []huh.Option[string]{huh.NewOption("Select a category", "")}
	for _, c := range a.cfg.General.Categories {
		opts = append(opts, huh.NewOption(c, c))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("date").
				Title("Date").
				Description(a.dateHint()).
				Value(&a.addVals.date),

			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(opts...).
				Value(&a.addVals.category),

			huh.NewInput().
				Key("amount").
				Title("Amount (" + a.cfg.General.CurrencySymbol + ")").
				Placeholder("0.00").
				Value(&a.addVals.amount),

			huh.NewInput().
				Key("description").
				Title("Description").
				Placeholder("optional").
				Value(&a.addVals.description),
		),
	).WithTheme(theme.Form()).WithShowHelp(false)

	if a.width > 0 {
		form = form.WithWidth(a.formWidth())
	}
	return form
}

func (a App) dateHint() string {
	if a.cfg.General.DateLayout == "02/01/2006" {
		return "DD/MM/YYYY"
	}
	return a.now().Format(a.cfg.General.DateLayout)
}

// updateAddForm forwards msg to the add form and submits once it completes.
func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.addForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		a.addForm = f
	}

	switch a.addForm.State {
	case huh.StateCompleted:
		a.submit()
		a.addForm = a.newAddForm()
		return a, a.addForm.Init()
	case huh.StateAborted:
		a.addForm = a.newAddForm()
		return a, a.addForm.Init()
	}
	return a, cmd
}

// submit appends the bound values to the ledger. A rejected entry leaves the
// values in place and raises a notice; an accepted one clears everything
// except the date.
func (a *App) submit() {
	v := a.addVals
	rec, err := a.ledger.Add(v.date, v.category, v.amount, v.description)
	if err != nil {
		logger.Warn("expense rejected",
			zap.String("date", v.date),
			zap.String("category", v.category),
			zap.String("amount", v.amount),
			zap.Error(err))
		a.notice = noticeForAddError(err)
		return
	}

	logger.Info("expense added",
		zap.String("date", rec.Date),
		zap.String("category", rec.Category),
		zap.String("amount", rec.AmountString()),
		zap.Int("entries", a.ledger.Count()))

	v.category = ""
	v.amount = ""
	v.description = ""
}

func noticeForAddError(err error) *components.Notice {
	switch {
	case errors.Is(err, ledger.ErrValidation):
		return &components.Notice{Kind: components.NoticeWarning, Title: inputErrorTitle, Message: inputErrorMsg}
	case errors.Is(err, ledger.ErrFormat):
		return &components.Notice{Kind: components.NoticeError, Title: invalidAmountTitle, Message: invalidAmountMsg}
	default:
		return &components.Notice{Kind: components.NoticeError, Title: addFailedTitle, Message: err.Error()}
	}
}

func (a App) renderAddTab(cw int) string {
	summary := a.renderSummaryCards(cw)

	if a.isCompactLayout() {
		form := components.ContentCard("New Expense", a.addForm.View(), cw)
		return summary + "\n" + form
	}

	halves := components.LayoutRow(cw, 2)
	form := components.ContentCard("New Expense", a.addForm.View(), halves[0])
	chart := a.renderDistributionCard(halves[1])
	return summary + "\n" + components.CardRow([]string{form, chart})
}

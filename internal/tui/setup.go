package tui

import (
	"errors"
	"strings"

	"github.com/theirongolddev/fintrack/internal/config"
	"github.com/theirongolddev/fintrack/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupChoices holds the answers of the first-run wizard.
type SetupChoices struct {
	Theme      string
	Currency   string
	DateLayout string
	ExportPath string
}

var errBlank = errors.New("required")

var dateLayoutOptions = []struct {
	label  string
	layout string
}{
	{"DD/MM/YYYY", "02/01/2006"},
	{"MM/DD/YYYY", "01/02/2006"},
	{"YYYY-MM-DD", "2006-01-02"},
}

// ChoicesFromConfig seeds the wizard with the current settings.
func ChoicesFromConfig(cfg config.Config) SetupChoices {
	return SetupChoices{
		Theme:      cfg.Appearance.Theme,
		Currency:   cfg.General.CurrencySymbol,
		DateLayout: cfg.General.DateLayout,
		ExportPath: cfg.General.ExportPath,
	}
}

// NewSetupForm builds the wizard. Answers are written into c.
func NewSetupForm(c *SetupChoices) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	layoutOpts := make([]huh.Option[string], 0, len(dateLayoutOptions))
	for _, o := range dateLayoutOptions {
		layoutOpts = append(layoutOpts, huh.NewOption(o.label, o.layout))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to fintrack!").
				Description("Let's set up a few things. Run `fintrack setup` anytime to change them."),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&c.Theme),
			huh.NewInput().
				Title("Currency symbol").
				CharLimit(8).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errBlank
					}
					return nil
				}).
				Value(&c.Currency),
			huh.NewSelect[string]().
				Title("Date format").
				Options(layoutOpts...).
				Value(&c.DateLayout),
			huh.NewInput().
				Title("Default export file").
				Placeholder("expenses.csv").
				Value(&c.ExportPath),
		),
	).WithTheme(theme.Form())
}

// Apply copies the answers onto cfg. Blank answers keep the current value.
func (c SetupChoices) Apply(cfg *config.Config) {
	if v := strings.TrimSpace(c.Theme); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := strings.TrimSpace(c.Currency); v != "" {
		cfg.General.CurrencySymbol = v
	}
	if v := strings.TrimSpace(c.DateLayout); v != "" {
		cfg.General.DateLayout = v
	}
	if v := strings.TrimSpace(c.ExportPath); v != "" {
		cfg.General.ExportPath = v
	}
}

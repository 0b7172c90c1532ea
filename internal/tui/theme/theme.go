// Package theme defines color themes for the fintrack TUI.
package theme

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceBright lipgloss.Color // Selected rows
	Border        lipgloss.Color
	BorderAccent  lipgloss.Color // Notices and focus
	TextDim       lipgloss.Color
	TextMuted     lipgloss.Color // Labels
	TextPrimary   lipgloss.Color
	Title         lipgloss.Color // App title
	Accent        lipgloss.Color
	Value         lipgloss.Color // Summary card values
	Orange        lipgloss.Color
	Red           lipgloss.Color
	Blue          lipgloss.Color
	Yellow        lipgloss.Color
	Magenta       lipgloss.Color
	Cyan          lipgloss.Color
}

// Active is the currently selected theme.
var Active = CatppuccinMocha

// Classic is the amber-on-navy look of the first FinTrack window.
var Classic = Theme{
	Name:          "classic",
	Background:    lipgloss.Color("#1E1E2E"),
	Surface:       lipgloss.Color("#2E2E3E"),
	SurfaceBright: lipgloss.Color("#3E3E52"),
	Border:        lipgloss.Color("#4A4A5E"),
	BorderAccent:  lipgloss.Color("#F0A500"),
	TextDim:       lipgloss.Color("#6C6C80"),
	TextMuted:     lipgloss.Color("#C8C8D0"),
	TextPrimary:   lipgloss.Color("#FFFFFF"),
	Title:         lipgloss.Color("#F0A500"),
	Accent:        lipgloss.Color("#F0A500"),
	Value:         lipgloss.Color("#00FF99"),
	Orange:        lipgloss.Color("#FF9F43"),
	Red:           lipgloss.Color("#FF5C5C"),
	Blue:          lipgloss.Color("#4DA3FF"),
	Yellow:        lipgloss.Color("#FFD166"),
	Magenta:       lipgloss.Color("#E86AF0"),
	Cyan:          lipgloss.Color("#3DDBD9"),
}

// CatppuccinMocha is the default theme, soft pastels on the same base.
var CatppuccinMocha = Theme{
	Name:          "catppuccin-mocha",
	Background:    lipgloss.Color("#1E1E2E"),
	Surface:       lipgloss.Color("#313244"),
	SurfaceBright: lipgloss.Color("#585B70"),
	Border:        lipgloss.Color("#585B70"),
	BorderAccent:  lipgloss.Color("#89B4FA"),
	TextDim:       lipgloss.Color("#6C7086"),
	TextMuted:     lipgloss.Color("#A6ADC8"),
	TextPrimary:   lipgloss.Color("#CDD6F4"),
	Title:         lipgloss.Color("#FAB387"),
	Accent:        lipgloss.Color("#89B4FA"),
	Value:         lipgloss.Color("#A6E3A1"),
	Orange:        lipgloss.Color("#FAB387"),
	Red:           lipgloss.Color("#F38BA8"),
	Blue:          lipgloss.Color("#89B4FA"),
	Yellow:        lipgloss.Color("#F9E2AF"),
	Magenta:       lipgloss.Color("#F5C2E7"),
	Cyan:          lipgloss.Color("#94E2D5"),
}

// FlexokiDark is a warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Title:         lipgloss.Color("#DA702C"),
	Accent:        lipgloss.Color("#3AA99F"),
	Value:         lipgloss.Color("#A3B859"),
	Orange:        lipgloss.Color("#DA702C"),
	Red:           lipgloss.Color("#D14D41"),
	Blue:          lipgloss.Color("#4385BE"),
	Yellow:        lipgloss.Color("#D0A215"),
	Magenta:       lipgloss.Color("#CE5D97"),
	Cyan:          lipgloss.Color("#24837B"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Title:         lipgloss.Color("3"),
	Accent:        lipgloss.Color("6"),
	Value:         lipgloss.Color("10"),
	Orange:        lipgloss.Color("3"),
	Red:           lipgloss.Color("1"),
	Blue:          lipgloss.Color("4"),
	Yellow:        lipgloss.Color("3"),
	Magenta:       lipgloss.Color("5"),
	Cyan:          lipgloss.Color("6"),
}

// All available themes.
var All = []Theme{CatppuccinMocha, Classic, FlexokiDark, Terminal}

// Names lists theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName returns a theme by its name, defaulting to CatppuccinMocha.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return CatppuccinMocha
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// SliceColors returns the palette used to tell categories apart in charts.
func (t Theme) SliceColors() []lipgloss.Color {
	return []lipgloss.Color{t.Blue, t.Orange, t.Value, t.Magenta, t.Yellow, t.Cyan, t.Red}
}

// Form returns a huh theme matching the active colors.
func Form() *huh.Theme {
	t := Active
	h := huh.ThemeBase()

	h.Focused.Base = h.Focused.Base.BorderForeground(t.BorderAccent)
	h.Focused.Title = h.Focused.Title.Foreground(t.Accent).Bold(true)
	h.Focused.Description = h.Focused.Description.Foreground(t.TextMuted)
	h.Focused.ErrorIndicator = h.Focused.ErrorIndicator.Foreground(t.Red)
	h.Focused.ErrorMessage = h.Focused.ErrorMessage.Foreground(t.Red)
	h.Focused.SelectSelector = h.Focused.SelectSelector.Foreground(t.Accent)
	h.Focused.SelectedOption = h.Focused.SelectedOption.Foreground(t.Value)
	h.Focused.Option = h.Focused.Option.Foreground(t.TextPrimary)
	h.Focused.TextInput.Cursor = h.Focused.TextInput.Cursor.Foreground(t.Accent)
	h.Focused.TextInput.Placeholder = h.Focused.TextInput.Placeholder.Foreground(t.TextDim)
	h.Focused.TextInput.Prompt = h.Focused.TextInput.Prompt.Foreground(t.Accent)
	h.Focused.TextInput.Text = h.Focused.TextInput.Text.Foreground(t.TextPrimary)

	h.Blurred = h.Focused
	h.Blurred.Base = h.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	h.Blurred.Title = h.Blurred.Title.Foreground(t.TextMuted).Bold(false)

	return h
}

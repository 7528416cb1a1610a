package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for one catppuccin flavour
type Styles struct {
	Prompt    lipgloss.Style
	Input     lipgloss.Style
	Cursor    lipgloss.Style
	Item      lipgloss.Style
	Selected  lipgloss.Style
	Separator lipgloss.Style
	Empty     lipgloss.Style
	Status    lipgloss.Style

	// Help styles are applied to the bubbles help footer
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	HelpSep  lipgloss.Style
}

// Flavor maps a theme name to its catppuccin flavour. Unknown names use mocha.
func Flavor(name string) catppuccin.Flavor {
	switch name {
	case "latte":
		return catppuccin.Latte
	case "frappe":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	default:
		return catppuccin.Mocha
	}
}

func hex(c catppuccin.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex)
}

// NewStyles builds the styles for a theme name
func NewStyles(theme string) Styles {
	f := Flavor(theme)

	return Styles{
		Prompt: lipgloss.NewStyle().
			Foreground(hex(f.Mauve())).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(hex(f.Text())),

		Cursor: lipgloss.NewStyle().
			Foreground(hex(f.Rosewater())),

		Item: lipgloss.NewStyle().
			Foreground(hex(f.Subtext1())).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(hex(f.Surface1())).
			Foreground(hex(f.Green())).
			Bold(true).
			Padding(0, 1),

		Separator: lipgloss.NewStyle().
			Foreground(hex(f.Overlay0())),

		Empty: lipgloss.NewStyle().
			Foreground(hex(f.Overlay1())).
			Italic(true),

		Status: lipgloss.NewStyle().
			Foreground(hex(f.Peach())),

		HelpKey: lipgloss.NewStyle().
			Foreground(hex(f.Blue())),

		HelpDesc: lipgloss.NewStyle().
			Foreground(hex(f.Overlay1())),

		HelpSep: lipgloss.NewStyle().
			Foreground(hex(f.Surface2())),
	}
}

// applyHelp copies the help styles onto a help.Model
func (s Styles) applyHelp(h *help.Model) {
	h.Styles.ShortKey = s.HelpKey
	h.Styles.ShortDesc = s.HelpDesc
	h.Styles.ShortSeparator = s.HelpSep
	h.Styles.FullKey = s.HelpKey
	h.Styles.FullDesc = s.HelpDesc
	h.Styles.FullSeparator = s.HelpSep
	h.Styles.Ellipsis = s.HelpSep
}

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Xausdorf/vietqr-receive/internal/usecase/receive"
)

type palette struct {
	background lipgloss.Color
	card       lipgloss.Color
	input      lipgloss.Color
	border     lipgloss.Color
	text       lipgloss.Color
	muted      lipgloss.Color
	name       lipgloss.Color
	focus      lipgloss.Color
	napas      lipgloss.Color
	bank       lipgloss.Color
	errorFg    lipgloss.Color
}

var (
	lightPalette = palette{
		background: "#0056D2",
		card:       "#1E2330",
		input:      "#2C3240",
		border:     "#374151",
		text:       "#FFFFFF",
		muted:      "#9CA3AF",
		name:       "#60A5FA",
		focus:      "#3B82F6",
		napas:      "#1E3A8A",
		bank:       "#16A34A",
		errorFg:    "#F87171",
	}
	darkPalette = palette{
		background: "#111827",
		card:       "#1E2330",
		input:      "#2C3240",
		border:     "#374151",
		text:       "#FFFFFF",
		muted:      "#6B7280",
		name:       "#60A5FA",
		focus:      "#3B82F6",
		napas:      "#93C5FD",
		bank:       "#4ADE80",
		errorFg:    "#F87171",
	}
)

type styles struct {
	header  lipgloss.Style
	card    lipgloss.Style
	qr      lipgloss.Style
	marks   lipgloss.Style
	napas   lipgloss.Style
	bank    lipgloss.Style
	name    lipgloss.Style
	muted   lipgloss.Style
	input   lipgloss.Style
	focused lipgloss.Style
	button  lipgloss.Style
	modal   lipgloss.Style
	err     lipgloss.Style
	help    lipgloss.Style
}

func newStyles(theme receive.Theme) styles {
	p := lightPalette
	if theme == receive.ThemeDark {
		p = darkPalette
	}

	input := lipgloss.NewStyle().
		Background(p.input).
		Foreground(p.text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Padding(0, 1).
		Width(cardWidth - 4)

	return styles{
		header: lipgloss.NewStyle().
			Foreground(p.text).
			Background(p.background).
			Bold(true).
			Padding(1, 2).
			Width(cardWidth),
		card: lipgloss.NewStyle().
			Background(p.card).
			Foreground(p.text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(1, 1).
			Width(cardWidth).
			Align(lipgloss.Center),
		qr: lipgloss.NewStyle().
			Background(lipgloss.Color("#FFFFFF")).
			Foreground(lipgloss.Color("#000000")),
		marks: lipgloss.NewStyle().Width(cardWidth - 4),
		napas: lipgloss.NewStyle().Foreground(p.napas).Bold(true).Italic(true),
		bank:  lipgloss.NewStyle().Foreground(p.bank).Bold(true),
		name:  lipgloss.NewStyle().Foreground(p.name).Bold(true),
		muted: lipgloss.NewStyle().Foreground(p.muted),
		input: input,
		focused: input.
			BorderForeground(p.focus),
		button: lipgloss.NewStyle().
			Background(p.input).
			Foreground(p.text).
			Bold(true).
			Padding(0, 2),
		modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.focus).
			Foreground(p.text).
			Bold(true).
			Padding(0, 2),
		err:  lipgloss.NewStyle().Foreground(p.errorFg),
		help: lipgloss.NewStyle().Foreground(p.muted),
	}
}

package browser

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

type styles struct {
	header   lipgloss.Style
	summary  lipgloss.Style
	reserved lipgloss.Style
	status   lipgloss.Style
}

type palette struct {
	accent, background string
}

var (
	lightPalette = palette{accent: "#005faf", background: "#ffffff"}
	darkPalette  = palette{accent: "#87d7ff", background: "#1c1c1c"}
)

// faint is the accent pulled most of the way towards the background.
func (p palette) faint(amount float64) string {
	a, err := colorful.Hex(p.accent)
	if err != nil {
		return p.accent
	}
	bg, err := colorful.Hex(p.background)
	if err != nil {
		return p.accent
	}
	return a.BlendLab(bg, amount).Clamped().Hex()
}

func defaultStyles() styles {
	p := lightPalette
	if termenv.HasDarkBackground() {
		p = darkPalette
	}
	return newStyles(p)
}

func newStyles(p palette) styles {
	faint := p.faint(0.55)
	return styles{
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.accent)),
		summary:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(faint)),
		reserved: lipgloss.NewStyle().Foreground(lipgloss.Color(p.faint(0.7))),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color(faint)),
	}
}

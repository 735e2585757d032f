package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bjulian5/menubar/internal/bitbar"
)

const (
	largeSize = 16
	smallSize = 12
)

// Preview draws host markup in a terminal so plugins can be checked without
// installing them in the menu bar.
type Preview struct {
	r     *lipgloss.Renderer
	width int
}

// NewPreview creates a preview drawing separators width columns wide
func NewPreview(r *lipgloss.Renderer, width int) *Preview {
	return &Preview{r: r, width: width}
}

// Render formats one line. It satisfies bitbar.Renderer.
func (p *Preview) Render(l bitbar.Line) string {
	if l.IsSeparator() {
		return p.r.NewStyle().Foreground(ColorBorder).Render(strings.Repeat("─", p.width))
	}

	text := l.Text
	if trim, ok := l.Attrs.Get("trim"); !ok || trim != "False" {
		text = strings.TrimSpace(text)
	}

	style := p.r.NewStyle()
	if value, ok := l.Attrs.Get("color"); ok {
		if c, ok := ResolveColor(value); ok {
			style = style.Foreground(c)
		}
	}
	if value, ok := l.Attrs.Get("size"); ok {
		if size, err := strconv.Atoi(value); err == nil {
			switch {
			case size >= largeSize:
				style = style.Bold(true)
			case size <= smallSize:
				style = style.Faint(true)
			}
		}
	}

	out := style.Render(text)
	if href, ok := l.Attrs.Get("href"); ok {
		out += " " + p.r.NewStyle().Foreground(ColorLink).Underline(true).Render(href)
	}
	return out
}

package cli

import (
	"strings"

	"github.com/theirongolddev/budgie/internal/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Color is a palette entry understood by every renderer.
type Color int

// Palette.
const (
	Red Color = iota
	Green
	Yellow
	Blue
	Pink
	Cyan
	White
)

// Renderer names.
const (
	RendererColor = "color"
	RendererPlain = "plain"
)

// Renderer turns display content into terminal text. Implementations decide
// how boxes, highlights and colors look; cursor control is shared.
type Renderer interface {
	RenderBox(lines []string) string
	HighlightItem(text string) string
	Colorize(c Color, text string) string
	ClearLine() string
	MoveCursorUp(n int) string
}

// NewRenderer returns the renderer registered under name, using t for the
// styled one. Unknown names get the styled renderer.
func NewRenderer(name string, t theme.Theme) Renderer {
	if strings.EqualFold(name, RendererPlain) {
		return Plain{}
	}
	return NewStyled(t)
}

type cursor struct{}

func (cursor) ClearLine() string {
	return ansi.EraseEntireLine + "\r"
}

func (cursor) MoveCursorUp(n int) string {
	if n <= 0 {
		return ""
	}
	return ansi.CursorUp(n)
}

// Plain renders monochrome output with block-drawn boxes.
type Plain struct {
	cursor
}

// RenderBox draws lines inside a frame of full blocks.
func (Plain) RenderBox(lines []string) string {
	return Box(lines, "█")
}

// HighlightItem returns text unchanged.
func (Plain) HighlightItem(text string) string {
	return text
}

// Colorize returns text unchanged.
func (Plain) Colorize(_ Color, text string) string {
	return text
}

// Styled renders with lipgloss using a color theme.
type Styled struct {
	cursor
	theme theme.Theme
}

// NewStyled returns a styled renderer for t.
func NewStyled(t theme.Theme) Styled {
	return Styled{theme: t}
}

// RenderBox draws lines inside a rounded border.
func (s Styled) RenderBox(lines []string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.theme.Border).
		Padding(1, 1)
	return box.Render(strings.Join(lines, "\n"))
}

// HighlightItem renders text bold in the accent color.
func (s Styled) HighlightItem(text string) string {
	return lipgloss.NewStyle().
		Foreground(s.theme.Accent).
		Bold(true).
		Render(text)
}

// Colorize renders text in the theme's color for c.
func (s Styled) Colorize(c Color, text string) string {
	return lipgloss.NewStyle().Foreground(s.color(c)).Render(text)
}

func (s Styled) color(c Color) lipgloss.Color {
	switch c {
	case Red:
		return s.theme.Red
	case Green:
		return s.theme.Green
	case Yellow:
		return s.theme.Yellow
	case Blue:
		return s.theme.Blue
	case Pink:
		return s.theme.Pink
	case Cyan:
		return s.theme.Cyan
	default:
		return s.theme.White
	}
}

package view

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const progressWidth = 20

// Theme holds the terminal styles used by Render.
type Theme struct {
	Header    lipgloss.Style
	Summary   lipgloss.Style
	Open      lipgloss.Style
	Completed lipgloss.Style
	Muted     lipgloss.Style
	Bar       lipgloss.Style
}

// Adaptive colors (dark terminal value, light terminal value).
var (
	colorRed  = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	colorPink = lipgloss.AdaptiveColor{Dark: "#F8B4C0", Light: "#B83280"}
	colorGray = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
)

func DefaultTheme() Theme {
	return Theme{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(colorRed),
		Summary:   lipgloss.NewStyle().Foreground(colorPink),
		Open:      lipgloss.NewStyle(),
		Completed: lipgloss.NewStyle().Strikethrough(true).Foreground(colorGray),
		Muted:     lipgloss.NewStyle().Foreground(colorGray),
		Bar:       lipgloss.NewStyle().Foreground(colorRed),
	}
}

// PlainTheme renders without any escape sequences.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Header:    plain,
		Summary:   plain,
		Open:      plain,
		Completed: plain,
		Muted:     plain,
		Bar:       plain,
	}
}

// Render writes a text rendering of s: a header with the completion summary,
// one line per todo and, when the list is not empty, the totals with a
// progress bar.
func Render(w io.Writer, s State, theme Theme) error {
	var b strings.Builder

	if s.Loading {
		b.WriteString(theme.Muted.Render("Loading...") + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	stats := s.Stats()
	b.WriteString(theme.Header.Render("ToDo List") + "\n")
	b.WriteString(theme.Summary.Render(fmt.Sprintf("%d of %d tasks completed", stats.Completed, stats.Total)) + "\n\n")

	if stats.Total == 0 {
		b.WriteString(theme.Muted.Render("No tasks yet. Add the first one!") + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	for _, todo := range s.Todos {
		mark, style := "[ ]", theme.Open
		if todo.Completed {
			mark, style = "[x]", theme.Completed
		}
		fmt.Fprintf(&b, "%s %s %s\n", mark, theme.Muted.Render(fmt.Sprintf("#%-4d", todo.ID)), style.Render(todo.Title))
	}

	fmt.Fprintf(&b, "\nTotal: %d  Completed: %d  Remaining: %d\n", stats.Total, stats.Completed, stats.Remaining)
	b.WriteString(progressBar(stats.Percent, theme) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func progressBar(percent float64, theme Theme) string {
	filled := int(math.Round(percent / 100 * progressWidth))
	bar := theme.Bar.Render(strings.Repeat("#", filled)) + strings.Repeat("-", progressWidth-filled)
	return fmt.Sprintf("[%s] %.0f%%", bar, percent)
}

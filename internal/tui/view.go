package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	b.WriteString(titleStyle.Render("graphptol"))
	b.WriteString(statsStyle.Render(fmt.Sprintf("  %d nodes  %d edges", m.sess.NodeCount(), m.sess.EdgeCount())))
	if src, format := m.sess.Source(); src != "" {
		b.WriteString(statsStyle.Render(fmt.Sprintf("  %s (%s)", src, format)))
	}
	b.WriteString("\n")

	var canvas strings.Builder
	if err := m.sess.Render(&canvas, "ascii"); err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
	} else {
		b.WriteString(colorize(canvas.String()))
	}

	b.WriteString(m.selectorLine())
	b.WriteString("\n")

	if m.action != promptNone {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpDescStyle.Render("enter confirm  esc cancel"))
		return b.String()
	}

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.helpLine())

	return b.String()
}

func (m Model) selectorLine() string {
	controls := m.sess.Controls()
	cell := func(s Selector) string {
		text := "--"
		if id, ok := m.Selection(s); ok {
			text = id.String()
		}
		style := selectorStyle
		if s == m.focus {
			style = focusedSelectorStyle
		}
		return style.Render(text)
	}
	group := func(label string, enabled bool, a, b Selector, sep string) string {
		l := helpDescStyle.Render(label)
		if !enabled {
			l = disabledStyle.Render(label)
		}
		return l + " " + cell(a) + sep + cell(b)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		group("edge", controls.AddEdge, EdgeFrom, EdgeTo, " - "),
		"    ",
		group("path", controls.FindPath, PathFrom, PathTo, " -> "),
	)
}

func (m Model) statusLine() string {
	switch m.statusKind {
	case statusWarn:
		return warnStyle.Render(m.status)
	case statusError:
		return errorStyle.Render(m.status)
	}

	return statusStyle.Render(m.status)
}

func (m Model) helpLine() string {
	keys := []struct{ key, desc string }{
		{"n", "node"}, {"e", "edge"}, {"p", "path"},
		{"tab", "select"}, {"↑↓", "change"},
		{"l/L", "load list/matrix"}, {"w/W", "save list/matrix"},
		{"r", "reload"}, {"q", "quit"},
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = helpKeyStyle.Render(k.key) + " " + helpDescStyle.Render(k.desc)
	}

	return strings.Join(parts, "  ")
}

// colorize paints path glyphs of the ASCII canvas.
func colorize(canvas string) string {
	var b strings.Builder
	for _, r := range canvas {
		switch r {
		case '*', '#':
			b.WriteString(pathStyle.Render(string(r)))
		case 'o':
			b.WriteString(nodeStyle.Render(string(r)))
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// =============================================================================
// Styles
// =============================================================================

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	nodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true)

	selectorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Padding(0, 1)

	focusedSelectorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))
)

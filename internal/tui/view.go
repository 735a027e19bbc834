package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/kamusis/launchkit/internal/search"
)

var (
	rowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0"))
	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	descStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.index.Len() == 0:
		b.WriteString(emptyStyle.Render("no applications"))
		b.WriteString("\n")
	case len(m.matches) == 0:
		b.WriteString(emptyStyle.Render("no matches"))
		b.WriteString("\n")
	default:
		end := m.offset + m.maxRows
		if end > len(m.matches) {
			end = len(m.matches)
		}
		for i := m.offset; i < end; i++ {
			b.WriteString(m.renderRow(m.matches[i], i == m.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	status := fmt.Sprintf("%d/%d", len(m.matches), m.index.Len())
	b.WriteString(helpStyle.Render(status + "  " + m.keys.help()))
	return b.String()
}

func (m Model) renderRow(match search.Match, selected bool) string {
	nameWidth := m.width / 2
	if nameWidth < 10 {
		nameWidth = 10
	}
	name := runewidth.Truncate(match.Entry.Name, nameWidth, ellipsis)
	desc := runewidth.Truncate(match.Entry.Description, m.width-nameWidth-4, ellipsis)

	if selected {
		line := runewidth.FillRight(name, nameWidth) + "  " + desc
		return selectedStyle.Render(runewidth.FillRight(line, m.width-2))
	}
	row := highlight(name, match.Entry.Name, match.Positions)
	pad := nameWidth - runewidth.StringWidth(name)
	if pad > 0 {
		row += strings.Repeat(" ", pad)
	}
	return row + "  " + descStyle.Render(desc)
}

const ellipsis = "…"

// highlight styles the matched bytes of shown, which is full or a truncated
// prefix of it ending in an ellipsis.
func highlight(shown, full string, positions []int) string {
	hit := matchedOffsets(shown, full, positions)
	if len(hit) == 0 {
		return rowStyle.Render(shown)
	}
	var b strings.Builder
	for i, r := range shown {
		if hit[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteString(rowStyle.Render(string(r)))
		}
	}
	return b.String()
}

// matchedOffsets returns the byte offsets of shown to highlight. Positions
// index the lower-cased name, so they only apply when lower-casing kept the
// byte length, and never reach into the ellipsis of a truncated name.
func matchedOffsets(shown, full string, positions []int) map[int]bool {
	if len(positions) == 0 || len(strings.ToLower(full)) != len(full) {
		return nil
	}
	kept := len(shown)
	if shown != full {
		kept = len(strings.TrimSuffix(shown, ellipsis))
	}
	hit := make(map[int]bool, len(positions))
	for _, p := range positions {
		if p < kept {
			hit[p] = true
		}
	}
	return hit
}

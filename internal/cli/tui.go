package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// SheetListModel - Interactive sheet selection
// =============================================================================

// SheetListModel is the bubbletea model for interactive sheet selection.
type SheetListModel struct {
	Sheets   []sheetRow
	Cursor   int
	Selected *sheetRow
}

// NewSheetListModel creates a new sheet list model.
func NewSheetListModel(sheets []sheetRow) SheetListModel {
	return SheetListModel{Sheets: sheets}
}

func (m SheetListModel) Init() tea.Cmd {
	return nil
}

func (m SheetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Sheets)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Sheets[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m SheetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Sheet"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows: navigate  enter: select  q: quit"))
	b.WriteString("\n\n")

	for i, r := range m.Sheets {
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}

		var marker string
		if r.BuiltIn {
			marker = StyleSuccess.Render("*")
		} else {
			marker = StyleWarning.Render("+")
		}

		line := fmt.Sprintf("%s%s %-30s  %s", cursor, marker, r.Name, listDimStyle.Render(r.geometry()))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(strings.Repeat("-", 40)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s built-in   %s from sheet file\n",
		StyleSuccess.Render("*"), StyleWarning.Render("+")))

	return b.String()
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/tagclip/pkg/markup"
)

func (a *App) View() string {
	if a.machine.Done() {
		return ""
	}

	width := a.settings.UI.Width
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Tag XML Generator"))
	b.WriteString("\n\n")

	var form strings.Builder
	form.WriteString(LabelStyle.Render("Tag:"))
	form.WriteString("\n")
	form.WriteString(a.tagInput.View())
	form.WriteString("\n")
	form.WriteString(DimStyle.Render(strings.Repeat("─", max(width-4, 1))))
	form.WriteString("\n")
	form.WriteString(LabelStyle.Render("Attributes (Key / Value):"))

	keyWidth, _ := a.rowWidths()
	for _, row := range a.rows {
		form.WriteString("\n")
		form.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(keyWidth+2).Render(row.key.View()),
			row.value.View(),
		))
	}
	// Keep room for at least MinRows rows so the form does not jump while
	// the first attributes are added.
	for i := len(a.rows); i < a.settings.UI.MinRows; i++ {
		form.WriteString("\n")
	}

	b.WriteString(FormBorderStyle(width-2, a.machine.ErrorFlag()).Render(form.String()))

	if err := a.machine.Err(); err != nil {
		b.WriteString("\n")
		b.WriteString(ErrorTextStyle.Render(wordwrap.String("✗ "+err.Error(), width)))
	} else if a.settings.UI.ShowPreview {
		if out, err := markup.Render(a.machine.Input()); err == nil {
			b.WriteString("\n")
			b.WriteString(PreviewStyle.Render(wordwrap.String(out, width)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(a.help.ShortHelpView(a.keys.ShortHelp()))

	x, y := a.origin.PreferredOrigin()
	return lipgloss.NewStyle().
		MarginLeft(x + a.settings.UI.OffsetX).
		MarginTop(y + a.settings.UI.OffsetY).
		Render(b.String())
}

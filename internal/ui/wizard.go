package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	activeSymbol   = "◆"
	completeSymbol = "◇"
	missingSymbol  = "✗"
	separator      = " · "
	borderTop      = "┌"
	borderSide     = "│"
	borderBottom   = "└"
	checkSymbol    = "✓"
)

var (
	accent = lipgloss.Color("6")
	muted  = lipgloss.Color("8")
	red    = lipgloss.Color("1")
)

// ProductTheme styles the product form. Every field is required, so the
// error indicator is a cross rather than huh's asterisk.
func ProductTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.SetString(" " + missingSymbol).Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Blurred.ErrorIndicator = t.Focused.ErrorIndicator
	t.Blurred.ErrorMessage = t.Focused.ErrorMessage
	return t
}

// Field is one product form entry as echoed back before submit. Missing is
// set when submit would reject the value.
type Field struct {
	Label   string
	Value   string
	Missing bool
}

func borderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(muted)
}

// RenderSummary echoes a filled-in form. Rejected fields are crossed out
// and counted on the bottom border.
func RenderSummary(title string, fields []Field) string {
	var b strings.Builder

	border := borderStyle()

	b.WriteString(border.Render(borderTop))
	b.WriteString(" ")
	b.WriteString(title)
	b.WriteString("\n")

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")

	missing := 0
	for _, f := range fields {
		if f.Missing {
			missing++
		}
		b.WriteString(border.Render(borderSide))
		b.WriteString(" ")
		b.WriteString(renderField(f))
		b.WriteString("\n")
	}

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")

	b.WriteString(border.Render(borderBottom))
	if missing > 0 {
		b.WriteString(" ")
		b.WriteString(lipgloss.NewStyle().Foreground(red).Render(fmt.Sprintf("%d required field(s) missing", missing)))
	}
	b.WriteString("\n")

	return b.String()
}

// RenderSuccess summarises a saved product: verb and title on the first
// line, then subtitle, then one checked line per detail.
func RenderSuccess(verb, title, subtitle string, checks []string) string {
	var b strings.Builder

	border := borderStyle()

	b.WriteString(border.Render(borderTop))
	b.WriteString(" ")
	b.WriteString(activeSymbol)
	b.WriteString(" ")
	b.WriteString(verb)
	b.WriteString(" ")
	b.WriteString(title)
	b.WriteString("\n")

	if subtitle != "" {
		b.WriteString(border.Render(borderSide))
		b.WriteString(" ")
		b.WriteString(subtitle)
		b.WriteString("\n")
	}

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")

	for _, check := range checks {
		b.WriteString(border.Render(borderSide))
		b.WriteString(" ")
		b.WriteString(checkSymbol)
		b.WriteString(" ")
		b.WriteString(check)
		b.WriteString("\n")
	}

	b.WriteString(border.Render(borderBottom))
	b.WriteString("\n")

	return b.String()
}

func renderField(f Field) string {
	if !f.Missing {
		return completeSymbol + " " + f.Label + separator + f.Value
	}
	value := "required"
	if f.Value != "" {
		value = f.Value + " (invalid)"
	}
	return lipgloss.NewStyle().Foreground(red).Render(missingSymbol + " " + f.Label + separator + value)
}

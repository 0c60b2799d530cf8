package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tamylaa/clodo-framework-sub007/internal/domain/capability"
)

// RenderAssessment renders the capability model and its assessment.
func RenderAssessment(model capability.Model, a capability.Assessment) string {
	var b strings.Builder

	// ── header box ──
	title := headerStyle.Render("clodo")
	subtitle := dimStyle.Render("Capability Assessment")
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(maturityColor(a.Maturity)).
		Render(fmt.Sprintf("%d / 100", a.Completeness))
	maturityStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(maturityColor(a.Maturity)).
		Render(a.Maturity)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + maturityStyled))
	b.WriteString("\n\n")

	// ── slots ──
	b.WriteString(titleStyle.Render("Capabilities"))
	b.WriteString("\n")
	b.WriteString(separatorLine)
	b.WriteString("\n")
	for _, slot := range capability.Slots {
		st := model[slot]
		marker := failStyle.Render("✗")
		detail := dimStyle.Render("not configured")
		switch {
		case st.Configured:
			marker = passStyle.Render("✓")
			detail = st.Provider
			if st.Quantity > 1 {
				detail = fmt.Sprintf("%s ×%d", st.Provider, st.Quantity)
			}
		case st.Possible:
			marker = warnStyle.Render("○")
			detail = dimStyle.Render("possible")
		}
		fmt.Fprintf(&b, "  %s %-16s %s\n", marker, slot, detail)
	}

	// ── recommendations ──
	if len(a.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Recommendations"))
		b.WriteString("\n")
		b.WriteString(separatorLine)
		b.WriteString("\n")
		for _, rec := range a.Recommendations {
			fmt.Fprintf(&b, "  %s %s\n", warnStyle.Render("["+rec.Priority+"]"), rec.Message)
		}
	}

	if len(a.MissingCapabilities) > 0 {
		names := make([]string, len(a.MissingCapabilities))
		for i, s := range a.MissingCapabilities {
			names[i] = string(s)
		}
		b.WriteString("\n")
		b.WriteString(failStyle.Render("missing required: " + strings.Join(names, ", ")))
		b.WriteString("\n")
	}

	return b.String()
}

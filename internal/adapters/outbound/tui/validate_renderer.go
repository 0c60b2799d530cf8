package tui

import (
	"fmt"
	"strings"

	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
)

// RenderValidation renders a validation report.
func RenderValidation(r *domain.ValidationReport) string {
	var b strings.Builder

	if r.Valid {
		b.WriteString(passStyle.Render("✓ project is valid"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(failStyle.Render(fmt.Sprintf("✗ %d issue(s) found", len(r.Issues))))
	b.WriteString("\n")
	b.WriteString(separatorLine)
	b.WriteString("\n")
	for _, issue := range r.Issues {
		fmt.Fprintf(&b, "  %s %s\n", failStyle.Render("•"), issue)
	}
	return b.String()
}

// RenderDiagnosis renders the richer diagnose output.
func RenderDiagnosis(d *domain.Diagnosis) string {
	var b strings.Builder

	section := func(title string, style func(...string) string, items []string, marker string) {
		if len(items) == 0 {
			return
		}
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n")
		b.WriteString(separatorLine)
		b.WriteString("\n")
		for _, item := range items {
			fmt.Fprintf(&b, "  %s %s\n", style(marker), item)
		}
		b.WriteString("\n")
	}

	section("Errors", failStyle.Render, d.Errors, "✗")
	section("Warnings", warnStyle.Render, d.Warnings, "!")
	section("Recommendations", dimStyle.Render, d.Recommendations, "→")

	if len(d.Errors) == 0 && len(d.Warnings) == 0 && len(d.Recommendations) == 0 {
		b.WriteString(passStyle.Render("✓ nothing to report"))
		b.WriteString("\n")
	}
	return b.String()
}

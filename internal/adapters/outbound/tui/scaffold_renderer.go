package tui

import (
	"fmt"
	"strings"

	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
)

// RenderManifest summarizes a generation run: files by category,
// skips, overrides, and the path-set checksum.
func RenderManifest(m *domain.ServiceManifest) string {
	var b strings.Builder

	title := headerStyle.Render("clodo")
	subtitle := dimStyle.Render("Service Generated")
	name := titleStyle.Render(m.Service.Name)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + name))
	b.WriteString("\n\n")

	for _, cat := range domain.GeneratorCategories {
		paths := m.Files[string(cat)]
		if len(paths) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s\n", titleStyle.Render(string(cat)))
		for _, p := range paths {
			fmt.Fprintf(&b, "  %s %s\n", passStyle.Render("+"), p)
		}
	}

	if len(m.SkippedFiles) > 0 {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("skipped (already exist, use --overwrite to replace)"))
		b.WriteString("\n")
		for _, p := range m.SkippedFiles {
			fmt.Fprintf(&b, "  %s %s\n", warnStyle.Render("~"), p)
		}
	}

	if len(m.Modifications) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Overridden values"))
		b.WriteString("\n")
		for _, mod := range m.Modifications {
			fmt.Fprintf(&b, "  %s: %s %s %s\n",
				mod.Field,
				dimStyle.Render(mod.Assumed),
				faintStyle.Render("->"),
				mod.Chosen)
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", dimStyle.Render("checksum"), faintStyle.Render(short(m.Checksum)))
	fmt.Fprintf(&b, "%s %s\n", dimStyle.Render("manifest"), faintStyle.Render(".clodo/manifest.yaml"))
	return b.String()
}

func short(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}

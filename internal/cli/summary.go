package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/expressgen-labs/expressgen/internal/project"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	headingStyle = lipgloss.NewStyle().Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

func renderSummary(r *project.Result) string {
	var b strings.Builder

	if r.DryRun {
		fmt.Fprintf(&b, "%s\n", titleStyle.Render("Dry run for "+r.Root+": nothing was written"))
		writeList(&b, "Files", r.Plan, pathStyle)
		if len(r.Commands) > 0 {
			writeList(&b, "Commands", r.Commands, mutedStyle)
		}
		return b.String()
	}

	fmt.Fprintf(&b, "%s\n", titleStyle.Render("Created "+r.Answers.ProjectName+" at "+r.Root))
	writeList(&b, "Files", r.Files, pathStyle)
	if r.Client != nil {
		fmt.Fprintf(&b, "\n%s %s (proxy %s)\n", headingStyle.Render("Client:"), pathStyle.Render(r.Client.Path), r.Client.Proxy)
	}
	if len(r.Warnings) > 0 {
		writeList(&b, "Warnings", r.Warnings, warnStyle)
	}

	steps := []string{"cd " + r.Root}
	if len(r.Commands) == 0 {
		deps := project.Dependencies
		if r.Answers.Views {
			deps = append(append([]string(nil), deps...), project.ViewDependencies...)
		}
		steps = append(steps,
			"npm install "+strings.Join(deps, " "),
			"npm install --save-dev "+strings.Join(project.DevDependencies, " "),
		)
	}
	steps = append(steps, "npm run dev")
	if r.Client != nil {
		steps = append(steps, "cd "+filepath.Base(r.Client.Path)+" && npm start")
	}
	b.WriteString("\n" + headingStyle.Render("Next steps:") + "\n")
	for i, s := range steps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, s)
	}
	return b.String()
}

func writeList(b *strings.Builder, heading string, items []string, style lipgloss.Style) {
	fmt.Fprintf(b, "\n%s\n", headingStyle.Render(heading+":"))
	for _, it := range items {
		fmt.Fprintf(b, "  %s\n", style.Render(it))
	}
}

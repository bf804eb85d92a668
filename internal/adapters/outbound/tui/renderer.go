package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tsfix/tsfix/internal/domain"
)

// ── palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	statusStyles = map[domain.FileStatus]lipgloss.Style{
		domain.StatusModified:    lipgloss.NewStyle().Foreground(success).Bold(true),
		domain.StatusWouldModify: lipgloss.NewStyle().Foreground(warning).Bold(true),
		domain.StatusUnchanged:   lipgloss.NewStyle().Foreground(info),
		domain.StatusNotFound:    lipgloss.NewStyle().Foreground(danger).Bold(true),
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	pathStyle     = lipgloss.NewStyle().Foreground(fg)
	addStyle      = lipgloss.NewStyle().Foreground(success)
	delStyle      = lipgloss.NewStyle().Foreground(danger)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats a run summary for terminal output. Diffs are
// included only when showDiff is set.
func RenderReport(report *domain.FixReport, showDiff bool) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("tsfix")
	subtitle := dimStyle.Render("Fix run summary")
	if report.DryRun {
		subtitle = dimStyle.Render("Dry run, no files written")
	}
	counts := fmt.Sprintf("%s  %s  %s",
		statusStyles[domain.StatusModified].Render(fmt.Sprintf("%d changed", report.Modified)),
		statusStyles[domain.StatusUnchanged].Render(fmt.Sprintf("%d unchanged", report.Unchanged)),
		statusStyles[domain.StatusNotFound].Render(fmt.Sprintf("%d not found", report.NotFound)),
	)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + counts))
	b.WriteString("\n\n")

	if report.CommitHash != "" {
		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("commit"), dimStyle.Render(shortHash(report.CommitHash)))
	}
	if len(report.DirtyTargets) > 0 {
		b.WriteString("  " + warnStyle.Render("Uncommitted changes in targets, no backup is taken:") + "\n")
		for _, p := range report.DirtyTargets {
			fmt.Fprintf(&b, "    %s %s\n", warnStyle.Render("!"), pathStyle.Render(p))
		}
	}
	if report.CommitHash != "" || len(report.DirtyTargets) > 0 {
		b.WriteString("\n")
	}

	// ── Files ──
	if len(report.Files) == 0 {
		b.WriteString("  " + dimStyle.Render("No files in fix table.") + "\n")
	}
	for _, f := range report.Files {
		renderFile(&b, f, showDiff)
	}

	b.WriteString("\n  " + separatorLine + "\n")
	return b.String()
}

func renderFile(b *strings.Builder, f domain.FileResult, showDiff bool) {
	tag := statusStyles[f.Status].Render(padRight(string(f.Status), 13))
	fmt.Fprintf(b, "  %s %s", tag, pathStyle.Render(f.Path))
	if f.Applied > 0 {
		fmt.Fprintf(b, " %s", dimStyle.Render(fmt.Sprintf("(%d fixes)", f.Applied)))
	}
	b.WriteString("\n")

	for _, fix := range f.Fixes {
		fmt.Fprintf(b, "      %s %s\n", dimStyle.Render("·"), dimStyle.Render(fix))
	}

	if showDiff && f.Diff != "" {
		b.WriteString("\n")
		renderDiff(b, f.Diff)
		b.WriteString("\n")
	}
}

func renderDiff(b *strings.Builder, diff string) {
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			b.WriteString("      " + titleStyle.Render(line) + "\n")
		case strings.HasPrefix(line, "+"):
			b.WriteString("      " + addStyle.Render(line) + "\n")
		case strings.HasPrefix(line, "-"):
			b.WriteString("      " + delStyle.Render(line) + "\n")
		default:
			b.WriteString("      " + dimStyle.Render(line) + "\n")
		}
	}
}

// RenderTable lists every entry of a fix table with its descriptors.
func RenderTable(table domain.FixTable) string {
	var b strings.Builder

	total := 0
	for _, e := range table.Files {
		total += len(e.Fixes)
	}

	b.WriteString("  ")
	b.WriteString(titleStyle.Render("Fix table"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d files, %d fixes", len(table.Files), total)))
	b.WriteString("\n\n")

	for _, e := range table.Files {
		fmt.Fprintf(&b, "  %s\n", pathStyle.Render(e.Path))
		for i, d := range e.Fixes {
			fmt.Fprintf(&b, "    %s %s %s\n",
				dimStyle.Render(fmt.Sprintf("%d.", i+1)),
				warnStyle.Render(padRight(string(d.Kind), 21)),
				d.Label(),
			)
		}
	}
	return b.String()
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

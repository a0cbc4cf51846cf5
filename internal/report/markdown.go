// Package report renders quiz content and results for people.
//
// Markdown output feeds MCP tool responses and the CLI's markdown
// format; Terminal output styles the same sections with lipgloss.
// Renderers only read Results; they never recompute scores.
package report

import (
	"fmt"
	"strings"

	"github.com/HendryAvila/careerfit/internal/content"
	"github.com/HendryAvila/careerfit/internal/quiz"
	"github.com/HendryAvila/careerfit/internal/scoring"
)

// barWidth is the number of cells a 100% bar occupies.
const barWidth = 20

// Markdown renders a full results report.
func Markdown(r *scoring.Results, pack *content.Pack) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Career Profile Results\n\n")
	fmt.Fprintf(&b, "## %s\n\n", r.Profile.Title)

	if strengths := r.HighTraits(); len(strengths) > 0 {
		names := make([]string, len(strengths))
		for i, t := range strengths {
			names[i] = string(t)
		}
		fmt.Fprintf(&b, "**Primary strengths:** %s\n\n", strings.Join(names, ", "))
	}

	fmt.Fprintf(&b, "%s\n\n", r.Profile.Description)

	fmt.Fprintf(&b, "## Your Career Fitness\n\n")
	fmt.Fprintf(&b, "```\n")
	for _, d := range r.ChartData {
		fmt.Fprintf(&b, "%-12s %s %3d%%  %s\n", d.Trait, bar(d.Percent), d.Percent, d.Band)
	}
	fmt.Fprintf(&b, "```\n\n")
	fmt.Fprintf(&b, "_Profile key: `%s` · scores normalized with the %s formula._\n", r.Key, r.Normalization)

	if len(r.Profile.DevelopmentAreas) > 0 {
		fmt.Fprintf(&b, "\n## Development Areas\n")
		for _, t := range quiz.TraitOrder {
			area, ok := r.Profile.DevelopmentAreas[t]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "\n### %s (%s)\n\n", t, r.Levels[t])
			if def := pack.Definition(t); def != "" {
				fmt.Fprintf(&b, "_%s_\n\n", def)
			}
			fmt.Fprintf(&b, "%s\n\n", area.Description)
			fmt.Fprintf(&b, "> **Tip:** %s\n", area.Tip)
		}
	}

	return b.String()
}

// Profile renders a single profile looked up by key.
func Profile(key quiz.ProfileKey, p quiz.Profile, fallback bool, pack *content.Pack) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	if fallback {
		fmt.Fprintf(&b, "_No profile is defined for `%s`; showing the default profile._\n\n", key)
	} else {
		fmt.Fprintf(&b, "**Profile key:** `%s`\n\n", key)
	}
	fmt.Fprintf(&b, "%s\n", p.Description)

	for _, t := range quiz.TraitOrder {
		area, ok := p.DevelopmentAreas[t]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n", t)
		if def := pack.Definition(t); def != "" {
			fmt.Fprintf(&b, "_%s_\n\n", def)
		}
		fmt.Fprintf(&b, "%s\n\n> **Tip:** %s\n", area.Description, area.Tip)
	}
	return b.String()
}

// Questions renders the catalog grouped by trait with the answer scale.
func Questions(catalog *quiz.Catalog, pack *content.Pack) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Career Fitness Quiz\n\n")
	fmt.Fprintf(&b, "Rate each statement from %d to %d:\n\n", quiz.MinAnswer, quiz.MaxAnswer)
	for _, sp := range pack.Scale {
		fmt.Fprintf(&b, "- **%d**: %s\n", sp.Value, sp.Label)
	}

	for _, t := range quiz.TraitOrder {
		fmt.Fprintf(&b, "\n## %s\n\n", t)
		if def := pack.Definition(t); def != "" {
			fmt.Fprintf(&b, "_%s_\n\n", def)
		}
		for _, q := range catalog.ByTrait(t) {
			fmt.Fprintf(&b, "%d. %s\n", q.ID, q.Text)
		}
	}
	return b.String()
}

// bar draws a fixed-width bar; each cell is 5 percentage points.
func bar(percent int) string {
	filled := max(0, min(barWidth, (percent*barWidth+50)/100))
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}
